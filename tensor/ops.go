package tensor

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is satisfied by the built-in integer and floating-point kinds,
// which provide the + - * operators the arithmetic helpers need.
type Number interface {
	constraints.Integer | constraints.Float
}

// IntScaler is an element that can be multiplied by an integer weight,
// e.g. an encrypted value scaled by a plaintext model weight.
type IntScaler[T any] interface {
	MulInt(w int32) (T, error)
}

// ZipWith broadcasts lhs against rhs and returns a new row-major matrix of
// the broadcast shape holding fn(lhs[idx], rhs[idx]) at every idx.
//
// The operands are not modified; broadcasting happens on private views.
// An error from fn stops the walk and is returned wrapped with ErrOp.
func ZipWith[T, U, V any](lhs *Matrix[T], rhs *Matrix[U], fn func(T, U) (V, error)) (*Matrix[V], error) {
	shape, _, _, err := Broadcast(lhs.shape, lhs.layout, rhs.shape, rhs.layout)
	if err != nil {
		return nil, err
	}
	lv := lhs.broadcastView(shape)
	rv := rhs.broadcastView(shape)
	out := New[V](shape, RowMajor)

	li, ri := NewIter(lv), NewIter(rv)
	for {
		a, aIdx, aok := li.Next()
		b, bIdx, bok := ri.Next()
		if aok != bok {
			panic(fmt.Sprintf("tensor: ZipWith iterators out of step over shape %v", shape))
		}
		if !aok {
			break
		}
		if !EqualShapes(aIdx, bIdx) {
			panic(fmt.Sprintf("tensor: ZipWith index mismatch %v vs %v", aIdx, bIdx))
		}
		v, err := fn(a, b)
		if err != nil {
			return nil, fmt.Errorf("at %v: %w: %w", aIdx, ErrOp, err)
		}
		if err := out.Set(aIdx, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Map returns a matrix of m's shape and layout holding fn of every element.
func Map[T, U any](m *Matrix[T], fn func(T) (U, error)) (*Matrix[U], error) {
	out := New[U](m.shape, m.layout)
	for idx, v := range m.All() {
		u, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("at %v: %w: %w", idx, ErrOp, err)
		}
		if err := out.Set(idx, u); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Add returns lhs + rhs with broadcasting.
func Add[T Number](lhs, rhs *Matrix[T]) (*Matrix[T], error) {
	return ZipWith(lhs, rhs, func(a, b T) (T, error) { return a + b, nil })
}

// Subtract returns lhs - rhs with broadcasting.
func Subtract[T Number](lhs, rhs *Matrix[T]) (*Matrix[T], error) {
	return ZipWith(lhs, rhs, func(a, b T) (T, error) { return a - b, nil })
}

// MultiplyElem returns the elementwise product of lhs and rhs with
// broadcasting.
func MultiplyElem[T Number](lhs, rhs *Matrix[T]) (*Matrix[T], error) {
	return ZipWith(lhs, rhs, func(a, b T) (T, error) { return a * b, nil })
}

// MultiplyScalar multiplies every stored element of m by s in place and
// returns m. Storage is walked physically, so each slot is scaled once even
// when it is aliased by a broadcast view.
func MultiplyScalar[T Number](m *Matrix[T], s T) *Matrix[T] {
	for i := range m.data {
		m.data[i] *= s
	}
	return m
}

// MultiplyScalarGeneric scales a scalar of another element type by each
// integer weight in m. The result has m's shape and layout.
func MultiplyScalarGeneric[T IntScaler[T]](m *Matrix[int32], s T) (*Matrix[T], error) {
	return Map(m, func(w int32) (T, error) { return s.MulInt(w) })
}

// MultiplyByInt multiplies every stored element of m by the integer weight
// w in place and returns m. Storage is walked physically, as in
// MultiplyScalar. On error the slots before the failing one are already
// scaled.
func MultiplyByInt[T IntScaler[T]](m *Matrix[T], w int32) (*Matrix[T], error) {
	for i, v := range m.data {
		s, err := v.MulInt(w)
		if err != nil {
			return nil, fmt.Errorf("at slot %d: %w: %w", i, ErrOp, err)
		}
		m.data[i] = s
	}
	return m, nil
}

// Multiply2D returns the matrix product lhs × rhs. Both operands must be
// rank 2 with lhs.shape[1] == rhs.shape[0]; otherwise ErrMatmulShape.
// The result is row-major with shape [lhs.shape[0], rhs.shape[1]].
func Multiply2D[T Number](lhs, rhs *Matrix[T]) (*Matrix[T], error) {
	if lhs.Rank() != 2 || rhs.Rank() != 2 {
		return nil, fmt.Errorf("multiply %v by %v: %w", lhs.shape, rhs.shape, ErrMatmulShape)
	}
	n, k := lhs.shape[0], lhs.shape[1]
	p := rhs.shape[1]
	if rhs.shape[0] != k {
		return nil, fmt.Errorf("multiply %v by %v: inner dimensions %d vs %d: %w",
			lhs.shape, rhs.shape, k, rhs.shape[0], ErrMatmulShape)
	}

	out := New[T]([]int{n, p}, RowMajor)
	ls0, ls1 := lhs.strides[0], lhs.strides[1]
	rs0, rs1 := rhs.strides[0], rhs.strides[1]
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			var sum T
			for l := 0; l < k; l++ {
				sum += lhs.data[i*ls0+l*ls1] * rhs.data[l*rs0+j*rs1]
			}
			out.data[i*p+j] = sum
		}
	}
	return out, nil
}

// Multiply1D returns the dot product of two rank-1 matrices of equal length.
func Multiply1D[T Number](lhs, rhs *Matrix[T]) (T, error) {
	var sum T
	if lhs.Rank() != 1 || rhs.Rank() != 1 || lhs.shape[0] != rhs.shape[0] {
		return sum, fmt.Errorf("dot %v with %v: %w", lhs.shape, rhs.shape, ErrMatmulShape)
	}
	for i := 0; i < lhs.shape[0]; i++ {
		sum += lhs.data[i*lhs.strides[0]] * rhs.data[i*rhs.strides[0]]
	}
	return sum, nil
}

// Concat joins lhs and rhs along axis into a new row-major matrix. All other
// extents must match (ErrDim otherwise). rhs cells land after lhs's cells on
// axis, shifted by lhs's full extent there.
func Concat[T any](lhs, rhs *Matrix[T], axis int) (*Matrix[T], error) {
	shape, ok := ConcatShape(lhs.shape, rhs.shape, axis)
	if !ok {
		return nil, fmt.Errorf("concat %v with %v on axis %d: %w", lhs.shape, rhs.shape, axis, ErrDim)
	}
	out := New[T](shape, RowMajor)
	for idx, v := range lhs.All() {
		if err := out.Set(idx, v); err != nil {
			return nil, err
		}
	}
	shift := lhs.shape[axis]
	for idx, v := range rhs.All() {
		idx[axis] += shift
		if err := out.Set(idx, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
