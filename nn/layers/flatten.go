package layers

import "cryptonic/tensor"

// Flatten reshapes its input to a single axis. The input is not modified.
type Flatten[T any] struct{ in []int }

func NewFlatten[T any](inputShape []int) *Flatten[T] {
	return &Flatten[T]{in: append([]int(nil), inputShape...)}
}

func (f *Flatten[T]) Forward(x *tensor.Matrix[T]) (*tensor.Matrix[T], error) {
	y := x.Clone()
	y.Flatten()
	return y, nil
}

func (f *Flatten[T]) InputShape() []int { return append([]int(nil), f.in...) }

func (f *Flatten[T]) OutputShape() []int {
	n, err := tensor.SizeFromShape(f.in)
	if err != nil {
		return nil
	}
	return []int{n}
}

func (f *Flatten[T]) Encrypted() bool { return false }
func (f *Flatten[T]) Levels() int     { return 0 }
