// Package cipher wraps a CKKS ciphertext as a matrix element so the tensor
// engine can run integer-weighted layers over encrypted inputs.
package cipher

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// ErrUnset is returned when an operation needs a ciphertext and both
// operands are the zero Value.
var ErrUnset = errors.New("cipher: value holds no ciphertext")

// Value is one encrypted scalar, held in slot 0 of a ciphertext.
//
// The zero Value is unset. It behaves as the additive identity and absorbs
// multiplication, so a zero-initialised Matrix[Value] is a valid
// accumulator.
type Value struct {
	ct   *rlwe.Ciphertext
	eval *Evaluator
}

// NewValue binds ct to the evaluator that will operate on it.
func NewValue(ct *rlwe.Ciphertext, eval *Evaluator) Value {
	return Value{ct: ct, eval: eval}
}

// IsZero reports whether v is unset.
func (v Value) IsZero() bool { return v.ct == nil }

// Ciphertext returns the underlying ciphertext, nil when unset.
func (v Value) Ciphertext() *rlwe.Ciphertext { return v.ct }

// Level returns the remaining multiplicative depth, or -1 when unset.
func (v Value) Level() int {
	if v.ct == nil {
		return -1
	}
	return v.ct.Level()
}

// Add returns v + w.
func (v Value) Add(w Value) (Value, error) {
	switch {
	case v.IsZero():
		return w, nil
	case w.IsZero():
		return v, nil
	}
	ct, err := v.eval.addNew(v.ct, w.ct)
	if err != nil {
		return Value{}, fmt.Errorf("add: %w", err)
	}
	return Value{ct: ct, eval: v.eval}, nil
}

// Sub returns v - w. Subtracting from an unset Value negates w.
func (v Value) Sub(w Value) (Value, error) {
	switch {
	case w.IsZero():
		return v, nil
	case v.IsZero():
		return w.MulInt(-1)
	}
	ct, err := v.eval.subNew(v.ct, w.ct)
	if err != nil {
		return Value{}, fmt.Errorf("sub: %w", err)
	}
	return Value{ct: ct, eval: v.eval}, nil
}

// MulInt returns v scaled by a plaintext integer weight. Integer constants
// keep the ciphertext's scale and level. An unset Value stays unset.
func (v Value) MulInt(k int32) (Value, error) {
	if v.IsZero() {
		return v, nil
	}
	ct, err := v.eval.mulConstNew(v.ct, k)
	if err != nil {
		return Value{}, fmt.Errorf("mul by %d: %w", k, err)
	}
	return Value{ct: ct, eval: v.eval}, nil
}

// AddInt returns v + k. It fails with ErrUnset on an unset Value, since
// there is no key material to encrypt k under.
func (v Value) AddInt(k int32) (Value, error) {
	if v.IsZero() {
		return Value{}, fmt.Errorf("add %d: %w", k, ErrUnset)
	}
	ct, err := v.eval.addConstNew(v.ct, k)
	if err != nil {
		return Value{}, fmt.Errorf("add %d: %w", k, err)
	}
	return Value{ct: ct, eval: v.eval}, nil
}
