package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixIterOrder(t *testing.T) {
	m := New[int]([]int{2, 3}, RowMajor)
	it := NewIter(m)

	var got [][]int
	for {
		_, idx, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, idx)
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, got)

	_, _, ok := it.Next()
	assert.False(t, ok, "exhausted iterator must stay exhausted")
}

func TestMatrixIterLogicalValues(t *testing.T) {
	m := FromIter([]int{2, 3}, counter(1), RowMajor)
	m.Transpose()

	var vals []int
	for _, v := range m.All() {
		vals = append(vals, v)
	}
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, vals)
}

func TestMatrixIterZeroExtent(t *testing.T) {
	m := New[int]([]int{2, 0}, RowMajor)
	_, _, ok := NewIter(m).Next()
	assert.False(t, ok)
}

func TestMatrixIterIndexIsCopy(t *testing.T) {
	m := FromIter([]int{2, 2}, counter(0), RowMajor)
	it := NewIter(m)
	_, idx, ok := it.Next()
	require.True(t, ok)
	idx[0] = 1

	v, idx2, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, idx2)
	assert.Equal(t, 1, v)
}

func TestAllStopsEarly(t *testing.T) {
	m := FromIter([]int{3, 3}, counter(0), RowMajor)
	n := 0
	for range m.All() {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)

	// A fresh traversal starts from the beginning again.
	for idx, v := range m.All() {
		assert.Equal(t, []int{0, 0}, idx)
		assert.Equal(t, 0, v)
		break
	}
}
