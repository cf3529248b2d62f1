package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a rank-2 float64 matrix into a gonum Dense, reading in
// logical order so transposed matrices and broadcast views convert correctly.
func ToDense(m *Matrix[float64]) (*mat.Dense, error) {
	if m.Rank() != 2 {
		return nil, fmt.Errorf("ToDense of shape %v: %w", m.shape, ErrDim)
	}
	d := mat.NewDense(m.shape[0], m.shape[1], nil)
	for idx, v := range m.All() {
		d.Set(idx[0], idx[1], v)
	}
	return d, nil
}

// FromDense copies any gonum matrix into a new Matrix with the given layout.
func FromDense(d mat.Matrix, layout Layout) *Matrix[float64] {
	r, c := d.Dims()
	m := New[float64]([]int{r, c}, layout)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*m.strides[0]+j*m.strides[1]] = d.At(i, j)
		}
	}
	return m
}
