package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptonic/tensor"
)

func TestDenseForward(t *testing.T) {
	w, _ := tensor.FromSlice([]int{2, 3}, []int{1, 0, -1, 2, 1, 0}, tensor.RowMajor)
	b, _ := tensor.FromSlice([]int{2}, []int{5, -5}, tensor.RowMajor)
	d, err := NewDense(w, b)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, d.InputShape())
	assert.Equal(t, []int{2}, d.OutputShape())

	x, _ := tensor.FromSlice([]int{3}, []int{4, 5, 6}, tensor.RowMajor)
	y, err := d.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, y.Shape())
	assert.Equal(t, []int{3, 8}, y.Data())
	assert.Equal(t, []int{3}, x.Shape())
}

func TestDenseRejectsBadParams(t *testing.T) {
	w := tensor.New[float64]([]int{2, 3, 1}, tensor.RowMajor)
	_, err := NewDense(w, tensor.New[float64]([]int{2}, tensor.RowMajor))
	assert.ErrorIs(t, err, tensor.ErrDim)

	w = tensor.New[float64]([]int{2, 3}, tensor.RowMajor)
	_, err = NewDense(w, tensor.New[float64]([]int{3}, tensor.RowMajor))
	assert.ErrorIs(t, err, tensor.ErrReshape)
}

func TestDenseWrongInput(t *testing.T) {
	d := NewDenseRand(3, 2)
	_, err := d.Forward(tensor.New[float64]([]int{4}, tensor.RowMajor))
	assert.ErrorIs(t, err, tensor.ErrMatmulShape)
}

func TestDenseRandInit(t *testing.T) {
	d := NewDenseRand(16, 4)
	assert.Equal(t, []int{4, 16}, d.W.Shape())
	require.NoError(t, d.W.Apply(func(v float64) {
		assert.LessOrEqual(t, v, 0.25)
		assert.GreaterOrEqual(t, v, -0.25)
	}))
	assert.Equal(t, []float64{0, 0, 0, 0}, d.B.Data())
}
