package tensor

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandUniform fills a new matrix with draws from U(-1/√fanIn, 1/√fanIn),
// the usual initialisation for a layer with fanIn inputs.
func RandUniform(shape []int, layout Layout, fanIn float64) *Matrix[float64] {
	dist := distuv.Uniform{
		Min: -1 / math.Sqrt(fanIn),
		Max: 1 / math.Sqrt(fanIn),
	}
	m := New[float64](shape, layout)
	for i := range m.data {
		m.data[i] = dist.Rand()
	}
	return m
}
