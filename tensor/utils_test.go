package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStridesFromShape(t *testing.T) {
	tests := []struct {
		shape  []int
		layout Layout
		want   []int
	}{
		{[]int{3, 4}, RowMajor, []int{4, 1}},
		{[]int{3, 4}, ColumnMajor, []int{1, 3}},
		{[]int{3, 4, 7}, ColumnMajor, []int{1, 3, 12}},
		{[]int{10, 10, 10}, RowMajor, []int{100, 10, 1}},
		{[]int{2, 3, 4, 5, 6, 7}, ColumnMajor, []int{1, 2, 6, 24, 120, 720}},
		{[]int{5}, RowMajor, []int{1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StridesFromShape(tt.shape, tt.layout), "shape %v %s", tt.shape, tt.layout)
	}
}

func TestSizeFromShape(t *testing.T) {
	size, err := SizeFromShape([]int{3, 4, 7})
	require.NoError(t, err)
	assert.Equal(t, 84, size)

	size, err = SizeFromShape([]int{2, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, 0, size)

	_, err = SizeFromShape(nil)
	assert.ErrorIs(t, err, ErrShape)

	_, err = SizeFromShape([]int{-2, -3})
	assert.ErrorIs(t, err, ErrShape)
}

func TestCheckConcatDims(t *testing.T) {
	lhs := []int{3, 2, 4}
	rhs := []int{3, 2, 5}
	assert.True(t, CheckConcatDims(lhs, rhs, 2))
	assert.False(t, CheckConcatDims(lhs, rhs, 0))
	assert.False(t, CheckConcatDims(lhs, rhs, 1))
	assert.False(t, CheckConcatDims(lhs, rhs, 3))
	assert.False(t, CheckConcatDims(lhs, []int{3, 2}, 1))
}

func TestConcatShape(t *testing.T) {
	got, ok := ConcatShape([]int{3, 4, 5}, []int{3, 2, 5}, 1)
	require.True(t, ok)
	assert.Equal(t, []int{3, 6, 5}, got)

	_, ok = ConcatShape([]int{3, 4, 5}, []int{3, 2, 5}, 0)
	assert.False(t, ok)
}
