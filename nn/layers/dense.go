package layers

import (
	"fmt"

	"cryptonic/tensor"
)

// Dense is a fully-connected layer computing W·x + B for a rank-1 input x.
// W has shape [out, in] and B shape [out, 1].
type Dense[T tensor.Number] struct {
	W, B *tensor.Matrix[T]
}

// NewDense wraps existing parameters. b may be [out] or [out, 1].
func NewDense[T tensor.Number](w, b *tensor.Matrix[T]) (*Dense[T], error) {
	if w.Rank() != 2 {
		return nil, fmt.Errorf("dense: weights %v are not rank 2: %w", w.Shape(), tensor.ErrDim)
	}
	out := w.Shape()[0]
	bias := b.Clone()
	if err := bias.Reshape([]int{out, 1}); err != nil {
		return nil, fmt.Errorf("dense: bias %v for %d outputs: %w", b.Shape(), out, err)
	}
	return &Dense[T]{W: w, B: bias}, nil
}

// NewDenseRand draws W uniformly in ±1/√in and zeroes B.
func NewDenseRand(in, out int) *Dense[float64] {
	return &Dense[float64]{
		W: tensor.RandUniform([]int{out, in}, tensor.RowMajor, float64(in)),
		B: tensor.New[float64]([]int{out, 1}, tensor.RowMajor),
	}
}

func (d *Dense[T]) Forward(x *tensor.Matrix[T]) (*tensor.Matrix[T], error) {
	col := x.Clone()
	if err := col.Reshape([]int{x.Size(), 1}); err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	y, err := tensor.Multiply2D(d.W, col)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	if y, err = tensor.Add(y, d.B); err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	y.Flatten()
	return y, nil
}

func (d *Dense[T]) InputShape() []int  { return []int{d.W.Shape()[1]} }
func (d *Dense[T]) OutputShape() []int { return []int{d.W.Shape()[0]} }
func (d *Dense[T]) Encrypted() bool    { return false }
func (d *Dense[T]) Levels() int        { return 0 }
