package tensor

import "fmt"

// Broadcast reconciles two shapes NumPy-style.
//
// Shapes are right-aligned and the shorter one is left-padded with 1s.
// Each operand gets the canonical strides of its padded shape under its own
// layout. Per axis, equal extents are kept; an extent of 1 adopts the other
// side's extent and that operand's stride becomes 0; anything else is
// ErrBroadcast.
//
//	Broadcast([3 4], RowMajor, [7 3 4], RowMajor) -> [7 3 4], [0 4 1], [12 4 1]
//
// Applying the result with SetShape+SetStrides stretches size-1 axes without
// touching storage.
func Broadcast(lhsShape []int, lhsLayout Layout, rhsShape []int, rhsLayout Layout) (shape, lhsStrides, rhsStrides []int, err error) {
	lhs := padShape(lhsShape, len(rhsShape))
	rhs := padShape(rhsShape, len(lhsShape))

	shape = make([]int, len(lhs))
	lhsStrides = StridesFromShape(lhs, lhsLayout)
	rhsStrides = StridesFromShape(rhs, rhsLayout)

	for i := range lhs {
		switch {
		case lhs[i] == rhs[i]:
			shape[i] = lhs[i]
		case lhs[i] == 1:
			shape[i] = rhs[i]
			lhsStrides[i] = 0
		case rhs[i] == 1:
			shape[i] = lhs[i]
			rhsStrides[i] = 0
		default:
			return nil, nil, nil, fmt.Errorf("%v vs %v (axis %d: %d vs %d): %w",
				lhsShape, rhsShape, i, lhs[i], rhs[i], ErrBroadcast)
		}
	}
	return shape, lhsStrides, rhsStrides, nil
}

// BroadcastTo returns a view of m stretched to shape. The view shares m's
// storage; m itself is not modified.
func BroadcastTo[T any](m *Matrix[T], shape []int) (*Matrix[T], error) {
	out, _, _, err := Broadcast(m.shape, m.layout, shape, RowMajor)
	if err != nil {
		return nil, err
	}
	if !EqualShapes(out, shape) {
		return nil, fmt.Errorf("%v cannot stretch to %v: %w", m.shape, shape, ErrBroadcast)
	}
	return m.broadcastView(out), nil
}

// broadcastView stretches m to out, which must be a broadcast of m's shape.
// Strides are derived from m's actual strides rather than canonical ones, so
// transposed matrices and existing views stay correct.
func (m *Matrix[T]) broadcastView(out []int) *Matrix[T] {
	offset := len(out) - len(m.shape)
	strides := make([]int, len(out))
	for i := range out {
		j := i - offset
		if j < 0 || (m.shape[j] == 1 && out[i] != 1) {
			continue
		}
		strides[i] = m.strides[j]
	}
	return m.view(out, strides)
}

func padShape(shape []int, rank int) []int {
	if len(shape) >= rank {
		return cloneInts(shape)
	}
	out := make([]int, rank)
	pad := rank - len(shape)
	for i := range pad {
		out[i] = 1
	}
	copy(out[pad:], shape)
	return out
}
