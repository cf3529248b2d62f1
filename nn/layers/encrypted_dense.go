package layers

import (
	"fmt"
	"math"

	"cryptonic/cipher"
	"cryptonic/tensor"
)

// EncryptedDense is Dense over ciphertexts with plaintext int32 parameters.
// Only integer constants touch the ciphertexts, so the layer consumes no
// level.
type EncryptedDense struct {
	W *tensor.Matrix[int32] // [out, in]
	B *tensor.Matrix[int32] // [out]

	// columns[i] is W[:, i], laid out as [out].
	columns []*tensor.Matrix[int32]
}

func NewEncryptedDense(w, b *tensor.Matrix[int32]) (*EncryptedDense, error) {
	if w.Rank() != 2 {
		return nil, fmt.Errorf("encrypted dense: weights %v are not rank 2: %w", w.Shape(), tensor.ErrDim)
	}
	out, in := w.Shape()[0], w.Shape()[1]
	if b.Size() != out {
		return nil, fmt.Errorf("encrypted dense: bias %v for %d outputs: %w", b.Shape(), out, tensor.ErrDim)
	}
	bias := b.Clone()
	bias.Flatten()

	wt := w.Clone()
	wt.Transpose()
	columns := make([]*tensor.Matrix[int32], in)
	for i := range columns {
		row, err := wt.GetCopyRow([]int{i})
		if err != nil {
			return nil, err
		}
		if columns[i], err = tensor.FromSlice([]int{out}, row, tensor.RowMajor); err != nil {
			return nil, err
		}
	}
	return &EncryptedDense{W: w, B: bias, columns: columns}, nil
}

// Quantize rounds d's parameters times scale to int32. The quantized layer
// computes roughly scale × d.Forward(x).
func Quantize(d *Dense[float64], scale float64) (*EncryptedDense, error) {
	round := func(v float64) (int32, error) {
		q := math.Round(v * scale)
		if q > math.MaxInt32 || q < math.MinInt32 {
			return 0, fmt.Errorf("%g×%g overflows int32", v, scale)
		}
		return int32(q), nil
	}
	w, err := tensor.Map(d.W, round)
	if err != nil {
		return nil, fmt.Errorf("quantize weights: %w", err)
	}
	b, err := tensor.Map(d.B, round)
	if err != nil {
		return nil, fmt.Errorf("quantize bias: %w", err)
	}
	return NewEncryptedDense(w, b)
}

// Forward accumulates x[i]·W[:, i] over every input, then adds B.
func (d *EncryptedDense) Forward(x *tensor.Matrix[cipher.Value]) (*tensor.Matrix[cipher.Value], error) {
	if !tensor.EqualShapes(x.Shape(), d.InputShape()) {
		return nil, fmt.Errorf("encrypted dense: input %v, want %v: %w", x.Shape(), d.InputShape(), tensor.ErrDim)
	}
	acc := tensor.New[cipher.Value](d.OutputShape(), tensor.RowMajor)
	for i, col := range d.columns {
		xi, err := x.GetCopy([]int{i})
		if err != nil {
			return nil, err
		}
		term, err := tensor.MultiplyScalarGeneric(col, xi)
		if err != nil {
			return nil, fmt.Errorf("encrypted dense: input %d: %w", i, err)
		}
		if acc, err = cipher.Add(acc, term); err != nil {
			return nil, fmt.Errorf("encrypted dense: input %d: %w", i, err)
		}
	}
	out, err := tensor.ZipWith(acc, d.B, cipher.Value.AddInt)
	if err != nil {
		return nil, fmt.Errorf("encrypted dense: bias: %w", err)
	}
	return out, nil
}

func (d *EncryptedDense) InputShape() []int  { return []int{d.W.Shape()[1]} }
func (d *EncryptedDense) OutputShape() []int { return []int{d.W.Shape()[0]} }
func (d *EncryptedDense) Encrypted() bool    { return true }
func (d *EncryptedDense) Levels() int        { return 0 }
