package tensor

// MatrixIter walks a Matrix in odometer order: the last axis moves fastest
// and carries propagate toward axis 0. It reads the Matrix but never
// changes it, and cannot be rewound; create a new one to iterate again.
type MatrixIter[T any] struct {
	m     *Matrix[T]
	index []int
	done  bool
}

// NewIter returns an iterator positioned at the first element of m.
func NewIter[T any](m *Matrix[T]) *MatrixIter[T] {
	return &MatrixIter[T]{
		m:     m,
		index: make([]int, len(m.shape)),
	}
}

// Next returns a copy of the current element and its logical index, then
// advances. ok is false once the iterator is exhausted. The returned index
// is a fresh slice.
func (it *MatrixIter[T]) Next() (v T, idx []int, ok bool) {
	if it.done {
		return v, nil, false
	}
	v, err := it.m.GetCopy(it.index)
	if err != nil {
		// Only reachable for a zero-extent axis.
		it.done = true
		return v, nil, false
	}
	idx = cloneInts(it.index)

	for i := len(it.index) - 1; i >= 0; i-- {
		it.index[i]++
		if it.index[i] < it.m.shape[i] {
			return v, idx, true
		}
		it.index[i] = 0
	}
	it.done = true
	return v, idx, true
}
