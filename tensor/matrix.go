package tensor

import (
	"fmt"
	"iter"
	"strings"
)

// Matrix is a strided n-D array backed by a flat []T.
//
// The element at logical index idx lives at data[Σ idx[i]*strides[i]].
// Right after construction len(data) == product(shape); SetShape and
// SetStrides may break that, so every access goes through the strides.
//
// Matrix places no arithmetic requirement on T. Each free function states
// the capability it needs (see Number, IntScaler).
type Matrix[T any] struct {
	shape   []int
	strides []int
	data    []T
	layout  Layout
}

// New allocates a zero-valued Matrix of the given shape.
// It panics if shape is empty.
func New[T any](shape []int, layout Layout) *Matrix[T] {
	size := mustSize(shape)
	return &Matrix[T]{
		shape:   cloneInts(shape),
		strides: StridesFromShape(shape, layout),
		data:    make([]T, size),
		layout:  layout,
	}
}

// FromIter builds a Matrix by pulling exactly product(shape) values from seq,
// stored in physical order. It panics if shape is empty or seq runs dry
// first; both are caller bugs.
func FromIter[T any](shape []int, seq iter.Seq[T], layout Layout) *Matrix[T] {
	size := mustSize(shape)
	data := make([]T, 0, size)
	if size > 0 {
		for v := range seq {
			data = append(data, v)
			if len(data) == size {
				break
			}
		}
	}
	if len(data) != size {
		panic(fmt.Sprintf("tensor: FromIter: source yielded %d values, shape %v needs %d", len(data), shape, size))
	}
	return &Matrix[T]{
		shape:   cloneInts(shape),
		strides: StridesFromShape(shape, layout),
		data:    data,
		layout:  layout,
	}
}

// FromSlice copies data into a new Matrix of the given shape.
func FromSlice[T any](shape []int, data []T, layout Layout) (*Matrix[T], error) {
	size, err := SizeFromShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("FromSlice: %d values for shape %v: %w", len(data), shape, ErrInvalidParams)
	}
	m := New[T](shape, layout)
	copy(m.data, data)
	return m, nil
}

// Shape returns a copy of the per-axis extents.
func (m *Matrix[T]) Shape() []int { return cloneInts(m.shape) }

// Strides returns a copy of the per-axis strides.
func (m *Matrix[T]) Strides() []int { return cloneInts(m.strides) }

// Layout returns the layout tag.
func (m *Matrix[T]) Layout() Layout { return m.layout }

// Rank returns the number of axes.
func (m *Matrix[T]) Rank() int { return len(m.shape) }

// Size returns product(shape), recomputed from the current shape.
func (m *Matrix[T]) Size() int {
	size, err := SizeFromShape(m.shape)
	if err != nil {
		panic(err)
	}
	return size
}

// Data returns the backing storage in physical order. Callers must not
// assume len(Data()) == Size() once SetShape/SetStrides have been used.
func (m *Matrix[T]) Data() []T { return m.data }

// IsCanonical reports whether the strides are the canonical strides of the
// shape and layout and the storage covers exactly the shape. Matrices built
// by New/FromIter, and ones only reshaped or transposed since, are canonical.
func (m *Matrix[T]) IsCanonical() bool {
	size, err := SizeFromShape(m.shape)
	if err != nil || size != len(m.data) {
		return false
	}
	return EqualShapes(m.strides, StridesFromShape(m.shape, m.layout))
}

// Clone returns a deep copy with the same metadata.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		shape:   cloneInts(m.shape),
		strides: cloneInts(m.strides),
		data:    append([]T(nil), m.data...),
		layout:  m.layout,
	}
}

// Reshape changes the shape, keeping the layout and recomputing strides.
// It fails with ErrReshape, leaving m untouched, unless the new shape has
// the same size. A non-canonical matrix is first compacted into fresh
// storage so the reshape sees its logical contents.
func (m *Matrix[T]) Reshape(newShape []int) error {
	size, err := SizeFromShape(newShape)
	if err != nil {
		return fmt.Errorf("reshape %v to %v: %w: %w", m.shape, newShape, ErrReshape, err)
	}
	if size != m.Size() {
		return fmt.Errorf("reshape %v to %v: %w", m.shape, newShape, ErrReshape)
	}
	if !m.IsCanonical() {
		m.compact()
	}
	m.shape = cloneInts(newShape)
	m.strides = StridesFromShape(newShape, m.layout)
	return nil
}

// SetShape overwrites the shape without any check. Always pair it with
// SetStrides.
func (m *Matrix[T]) SetShape(shape []int) { m.shape = cloneInts(shape) }

// SetStrides overwrites the strides without any check. Always pair it with
// SetShape.
func (m *Matrix[T]) SetStrides(strides []int) { m.strides = cloneInts(strides) }

// CheckBounds returns ErrDim if idx has the wrong rank and ErrOutOfBounds if
// any coordinate falls outside its axis.
func (m *Matrix[T]) CheckBounds(idx []int) (bool, error) {
	if len(idx) != len(m.shape) {
		return false, fmt.Errorf("index %v for shape %v: %w", idx, m.shape, ErrDim)
	}
	for i, x := range idx {
		if x < 0 || x >= m.shape[i] {
			return false, fmt.Errorf("index %v for shape %v: %w", idx, m.shape, ErrOutOfBounds)
		}
	}
	return true, nil
}

// PhysicalIndex maps a logical index to its offset in the storage.
func (m *Matrix[T]) PhysicalIndex(idx []int) (int, error) {
	if _, err := m.CheckBounds(idx); err != nil {
		return 0, err
	}
	off := 0
	for i, x := range idx {
		off += x * m.strides[i]
	}
	return off, nil
}

// Get returns a pointer to the element at idx.
func (m *Matrix[T]) Get(idx []int) (*T, error) {
	off, err := m.PhysicalIndex(idx)
	if err != nil {
		return nil, err
	}
	return &m.data[off], nil
}

// GetCopy returns the element at idx by value.
func (m *Matrix[T]) GetCopy(idx []int) (T, error) {
	off, err := m.PhysicalIndex(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[off], nil
}

// GetMut returns a pointer to the element at idx for in-place updates.
// Writing through it on a broadcast view changes every logical cell that
// aliases the same slot.
func (m *Matrix[T]) GetMut(idx []int) (*T, error) {
	return m.Get(idx)
}

// Set stores v at idx.
func (m *Matrix[T]) Set(idx []int, v T) error {
	p, err := m.GetMut(idx)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// GetCopyRow copies the innermost row selected by prefix, which must index
// every axis but the last.
func (m *Matrix[T]) GetCopyRow(prefix []int) ([]T, error) {
	if len(prefix) != len(m.shape)-1 {
		return nil, fmt.Errorf("row prefix %v for shape %v: %w", prefix, m.shape, ErrDim)
	}
	last := len(m.shape) - 1
	for i, x := range prefix {
		if x < 0 || x >= m.shape[i] {
			return nil, fmt.Errorf("row prefix %v for shape %v: %w", prefix, m.shape, ErrOutOfBounds)
		}
	}
	idx := append(cloneInts(prefix), 0)
	row := make([]T, m.shape[last])
	for i := range row {
		idx[last] = i
		off, err := m.PhysicalIndex(idx)
		if err != nil {
			return nil, err
		}
		row[i] = m.data[off]
	}
	return row, nil
}

// Apply calls fn on every element in physical storage order.
//
// Physical order matches logical order only for canonical matrices, and a
// broadcast view aliases slots, so Apply refuses non-canonical matrices
// with ErrView. Use All for logical traversal.
func (m *Matrix[T]) Apply(fn func(T)) error {
	if !m.IsCanonical() {
		return fmt.Errorf("apply on strides %v for shape %v: %w", m.strides, m.shape, ErrView)
	}
	for _, v := range m.data {
		fn(v)
	}
	return nil
}

// ApplyMut is Apply with a pointer to each element, for in-place updates.
func (m *Matrix[T]) ApplyMut(fn func(*T)) error {
	if !m.IsCanonical() {
		return fmt.Errorf("apply on strides %v for shape %v: %w", m.strides, m.shape, ErrView)
	}
	for i := range m.data {
		fn(&m.data[i])
	}
	return nil
}

// Transpose reverses shape and strides and flips the layout. No data moves.
func (m *Matrix[T]) Transpose() {
	for i, j := 0, len(m.shape)-1; i < j; i, j = i+1, j-1 {
		m.shape[i], m.shape[j] = m.shape[j], m.shape[i]
		m.strides[i], m.strides[j] = m.strides[j], m.strides[i]
	}
	m.layout = m.layout.Flip()
}

// Flatten reshapes m to a single axis of length Size().
func (m *Matrix[T]) Flatten() {
	if err := m.Reshape([]int{m.Size()}); err != nil {
		panic(err)
	}
}

// All yields (index, value) pairs in odometer order. The index slice is
// owned by the caller. Each call starts a fresh MatrixIter.
func (m *Matrix[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		it := NewIter(m)
		for {
			v, idx, ok := it.Next()
			if !ok || !yield(idx, v) {
				return
			}
		}
	}
}

// compact copies the logical contents into fresh storage with canonical
// strides for the current shape and layout.
func (m *Matrix[T]) compact() {
	strides := StridesFromShape(m.shape, m.layout)
	data := make([]T, m.Size())
	for idx, v := range m.All() {
		off := 0
		for i, x := range idx {
			off += x * strides[i]
		}
		data[off] = v
	}
	m.data = data
	m.strides = strides
}

// view returns a header over the same storage with different metadata.
func (m *Matrix[T]) view(shape, strides []int) *Matrix[T] {
	return &Matrix[T]{
		shape:   cloneInts(shape),
		strides: cloneInts(strides),
		data:    m.data,
		layout:  m.layout,
	}
}

func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix%v(%s)[", m.shape, m.layout)
	first := true
	for _, v := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
