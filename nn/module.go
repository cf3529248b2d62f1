package nn

import (
	"errors"
	"fmt"

	"cryptonic/tensor"
)

// ErrShapeMismatch is returned when a layer or input does not fit the
// shape expected at its position in the network.
var ErrShapeMismatch = errors.New("nn: shape mismatch")

// Layer is a single stage of the network over elements of type T.
type Layer[T any] interface {
	Forward(x *tensor.Matrix[T]) (*tensor.Matrix[T], error)
	InputShape() []int
	OutputShape() []int
	// Encrypted reports whether the layer runs on ciphertexts.
	Encrypted() bool
	// Levels is the multiplicative depth the layer consumes.
	Levels() int
}

// Sequential chains Layers in order.
type Sequential[T any] struct {
	Layers []Layer[T]
}

// Add appends l and returns its position. l must accept the previous
// layer's output shape.
func (s *Sequential[T]) Add(l Layer[T]) (int, error) {
	if n := len(s.Layers); n > 0 {
		prev := s.Layers[n-1].OutputShape()
		if !tensor.EqualShapes(prev, l.InputShape()) {
			return -1, fmt.Errorf("layer %d takes %v, previous yields %v: %w", n, l.InputShape(), prev, ErrShapeMismatch)
		}
	}
	s.Layers = append(s.Layers, l)
	return len(s.Layers) - 1, nil
}

// Forward applies each layer in sequence. x must match the first layer's
// input shape.
func (s *Sequential[T]) Forward(x *tensor.Matrix[T]) (*tensor.Matrix[T], error) {
	if len(s.Layers) == 0 {
		return nil, errors.New("nn: forward through empty network")
	}
	if want := s.Layers[0].InputShape(); !tensor.EqualShapes(x.Shape(), want) {
		return nil, fmt.Errorf("input %v, network takes %v: %w", x.Shape(), want, ErrShapeMismatch)
	}
	out := x
	for i, layer := range s.Layers {
		var err error
		if out, err = layer.Forward(out); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return out, nil
}

// InputShape is the first layer's input shape, nil when empty.
func (s *Sequential[T]) InputShape() []int {
	if len(s.Layers) == 0 {
		return nil
	}
	return s.Layers[0].InputShape()
}

// OutputShape is the last layer's output shape, nil when empty.
func (s *Sequential[T]) OutputShape() []int {
	if len(s.Layers) == 0 {
		return nil
	}
	return s.Layers[len(s.Layers)-1].OutputShape()
}

// Levels sums Levels() of all layers.
func (s *Sequential[T]) Levels() int {
	sum := 0
	for _, layer := range s.Layers {
		sum += layer.Levels()
	}
	return sum
}

// Encrypted returns true if any layer is encrypted.
func (s *Sequential[T]) Encrypted() bool {
	for _, layer := range s.Layers {
		if layer.Encrypted() {
			return true
		}
	}
	return false
}
