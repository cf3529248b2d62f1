package cipher

import (
	"fmt"

	"cryptonic/core/ckkswrapper"
	"cryptonic/tensor"
)

// Kit pairs the key holder's context with an evaluator so matrices can be
// moved in and out of the encrypted domain.
type Kit struct {
	He     *ckkswrapper.HeContext
	Server *ckkswrapper.ServerKit
	Eval   *Evaluator

	// RefreshBelow is the level at or under which Refresh re-encrypts.
	// Zero means 1.
	RefreshBelow int
}

// NewKit generates the evaluation keys for he. No rotations are needed:
// every element lives in its own ciphertext.
func NewKit(he *ckkswrapper.HeContext) *Kit {
	server := he.GenServerKit(nil)
	return &Kit{He: he, Server: server, Eval: NewEvaluator(server.Evaluator)}
}

// EncryptValue encrypts a single scalar.
func (k *Kit) EncryptValue(x float64) (Value, error) {
	ct, err := k.He.EncryptValue(x)
	if err != nil {
		return Value{}, err
	}
	return NewValue(ct, k.Eval), nil
}

// DecryptValue decrypts v. An unset Value decrypts to 0.
func (k *Kit) DecryptValue(v Value) (float64, error) {
	if v.IsZero() {
		return 0, nil
	}
	return k.He.DecryptValue(v.ct)
}

// Refresh re-encrypts v at the top level once it is running low.
func (k *Kit) Refresh(v Value) (Value, error) {
	if v.IsZero() || !ckkswrapper.NeedsRefresh(v.ct, k.RefreshBelow) {
		return v, nil
	}
	ct, err := k.He.Refresh(v.ct)
	if err != nil {
		return Value{}, fmt.Errorf("refresh at level %d: %w", v.Level(), err)
	}
	return NewValue(ct, k.Eval), nil
}

// Encrypt encrypts every element of m into a matrix of the same shape and
// layout.
func Encrypt(k *Kit, m *tensor.Matrix[float64]) (*tensor.Matrix[Value], error) {
	return tensor.Map(m, k.EncryptValue)
}

// Decrypt is the inverse of Encrypt.
func Decrypt(k *Kit, m *tensor.Matrix[Value]) (*tensor.Matrix[float64], error) {
	return tensor.Map(m, k.DecryptValue)
}
