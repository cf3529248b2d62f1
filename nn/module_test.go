package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptonic/tensor"
)

// dummy layer: adds a constant, keeps the shape
type addLayer struct {
	c     float64
	shape []int
}

func (l *addLayer) Forward(x *tensor.Matrix[float64]) (*tensor.Matrix[float64], error) {
	c, _ := tensor.FromSlice([]int{1}, []float64{l.c}, tensor.RowMajor)
	return tensor.Add(x, c)
}
func (l *addLayer) InputShape() []int  { return l.shape }
func (l *addLayer) OutputShape() []int { return l.shape }
func (l *addLayer) Levels() int        { return 1 }
func (l *addLayer) Encrypted() bool    { return false }

// dummy layer: error on forward
type errLayer struct{ shape []int }

func (l *errLayer) Forward(*tensor.Matrix[float64]) (*tensor.Matrix[float64], error) {
	return nil, errors.New("fail")
}
func (l *errLayer) InputShape() []int  { return l.shape }
func (l *errLayer) OutputShape() []int { return l.shape }
func (l *errLayer) Levels() int        { return 0 }
func (l *errLayer) Encrypted() bool    { return true }

func TestSequentialPlain(t *testing.T) {
	seq := &Sequential[float64]{}
	id, err := seq.Add(&addLayer{c: 2, shape: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	id, err = seq.Add(&addLayer{c: 3, shape: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	a, _ := tensor.FromSlice([]int{1}, []float64{1}, tensor.RowMajor)
	out, err := seq.Forward(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{6}, out.Data())
	assert.Equal(t, []float64{1}, a.Data())
}

func TestSequentialAddRejectsShape(t *testing.T) {
	seq := &Sequential[float64]{}
	_, err := seq.Add(&addLayer{shape: []int{3}})
	require.NoError(t, err)

	id, err := seq.Add(&addLayer{shape: []int{4}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, -1, id)
	assert.Len(t, seq.Layers, 1)
}

func TestSequentialForwardChecksInput(t *testing.T) {
	seq := &Sequential[float64]{}
	_, err := seq.Forward(tensor.New[float64]([]int{2}, tensor.RowMajor))
	assert.Error(t, err)

	_, err = seq.Add(&addLayer{shape: []int{3}})
	require.NoError(t, err)
	_, err = seq.Forward(tensor.New[float64]([]int{2}, tensor.RowMajor))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSequentialForwardError(t *testing.T) {
	seq := &Sequential[float64]{Layers: []Layer[float64]{
		&addLayer{shape: []int{1}},
		&errLayer{shape: []int{1}},
	}}
	_, err := seq.Forward(tensor.New[float64]([]int{1}, tensor.RowMajor))
	assert.EqualError(t, err, "layer 1: fail")
}

func TestSequentialLevelsEncrypted(t *testing.T) {
	seq := &Sequential[float64]{Layers: []Layer[float64]{
		&addLayer{shape: []int{2}},
		&errLayer{shape: []int{2}},
		&addLayer{shape: []int{2}},
	}}
	assert.Equal(t, 2, seq.Levels())
	assert.True(t, seq.Encrypted())
	assert.Equal(t, []int{2}, seq.InputShape())
	assert.Equal(t, []int{2}, seq.OutputShape())

	empty := &Sequential[float64]{}
	assert.False(t, empty.Encrypted())
	assert.Nil(t, empty.OutputShape())
}
