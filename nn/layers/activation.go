package layers

import "cryptonic/tensor"

// ReLU clamps negative elements to zero. It has no polynomial form, so it
// only exists in plaintext.
type ReLU[T tensor.Number] struct{ shape []int }

func NewReLU[T tensor.Number](shape []int) *ReLU[T] {
	return &ReLU[T]{shape: append([]int(nil), shape...)}
}

func (r *ReLU[T]) Forward(x *tensor.Matrix[T]) (*tensor.Matrix[T], error) {
	return tensor.Map(x, func(v T) (T, error) {
		var zero T
		if v < zero {
			return zero, nil
		}
		return v, nil
	})
}

func (r *ReLU[T]) InputShape() []int  { return append([]int(nil), r.shape...) }
func (r *ReLU[T]) OutputShape() []int { return append([]int(nil), r.shape...) }
func (r *ReLU[T]) Encrypted() bool    { return false }
func (r *ReLU[T]) Levels() int        { return 0 }
