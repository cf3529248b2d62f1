package tensor

import "fmt"

// StridesFromShape returns the canonical strides of shape under layout.
// For RowMajor, [3, 4] gives [4, 1]; for ColumnMajor it gives [1, 3].
func StridesFromShape(shape []int, layout Layout) []int {
	strides := make([]int, len(shape))
	step := 1
	if layout == RowMajor {
		for i := len(shape) - 1; i >= 0; i-- {
			strides[i] = step
			step *= shape[i]
		}
		return strides
	}
	for i := range shape {
		strides[i] = step
		step *= shape[i]
	}
	return strides
}

// SizeFromShape returns the number of elements addressed by shape.
// An empty shape or a negative extent is reported as ErrShape.
func SizeFromShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("size of empty shape: %w", ErrShape)
	}
	size := 1
	for i, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("negative extent %d on axis %d of %v: %w", d, i, shape, ErrShape)
		}
		size *= d
	}
	return size, nil
}

// CheckConcatDims reports whether lhs and rhs can be joined along axis:
// equal rank and equal extents on every other axis.
func CheckConcatDims(lhs, rhs []int, axis int) bool {
	if len(lhs) != len(rhs) || axis < 0 || axis >= len(lhs) {
		return false
	}
	for i := range lhs {
		if i == axis {
			continue
		}
		if lhs[i] != rhs[i] {
			return false
		}
	}
	return true
}

// ConcatShape returns lhs with its axis extent replaced by lhs[axis]+rhs[axis].
// The second result is false when CheckConcatDims fails.
func ConcatShape(lhs, rhs []int, axis int) ([]int, bool) {
	if !CheckConcatDims(lhs, rhs, axis) {
		return nil, false
	}
	out := cloneInts(lhs)
	out[axis] += rhs[axis]
	return out, true
}

// EqualShapes reports whether a and b have the same rank and extents.
func EqualShapes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneInts(s []int) []int {
	return append([]int(nil), s...)
}

// mustSize is SizeFromShape for constructors, where an invalid shape is a
// caller bug.
func mustSize(shape []int) int {
	size, err := SizeFromShape(shape)
	if err != nil {
		panic(err)
	}
	return size
}
