package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToDense(t *testing.T) {
	m, err := FromSlice([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6}, RowMajor)
	require.NoError(t, err)
	m.Transpose()

	d, err := ToDense(m)
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, d.At(0, 1))
	assert.Equal(t, 3.0, d.At(2, 0))

	_, err = ToDense(New[float64]([]int{2, 2, 2}, RowMajor))
	assert.ErrorIs(t, err, ErrDim)
}

func TestFromDense(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	row := FromDense(d, RowMajor)
	assert.Equal(t, []float64{1, 2, 3, 4}, row.Data())

	col := FromDense(d, ColumnMajor)
	assert.Equal(t, []float64{1, 3, 2, 4}, col.Data())
	v, err := col.GetCopy([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestMultiply2DMatchesGonum(t *testing.T) {
	a := RandUniform([]int{4, 5}, RowMajor, 5)
	b := RandUniform([]int{5, 3}, ColumnMajor, 5)

	got, err := Multiply2D(a, b)
	require.NoError(t, err)

	da, err := ToDense(a)
	require.NoError(t, err)
	db, err := ToDense(b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(da, db)

	assert.True(t, mat.EqualApprox(&want, mustDense(t, got), 1e-12))
}

func TestRandUniformBounds(t *testing.T) {
	m := RandUniform([]int{10, 10}, RowMajor, 4)
	require.NoError(t, m.Apply(func(v float64) {
		assert.GreaterOrEqual(t, v, -0.5)
		assert.LessOrEqual(t, v, 0.5)
	}))
}

func mustDense(t *testing.T, m *Matrix[float64]) *mat.Dense {
	t.Helper()
	d, err := ToDense(m)
	require.NoError(t, err)
	return d
}
