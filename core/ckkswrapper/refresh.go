package ckkswrapper

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// Refresh returns a top-level encryption of the scalar held in slot 0 of
// ct. Decryption needs the secret key, so this stays on the key holder's
// side.
func (h *HeContext) Refresh(ct *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	v, err := h.DecryptValue(ct)
	if err != nil {
		return nil, fmt.Errorf("refresh at level %d: %w", ct.Level(), err)
	}
	return h.EncryptValue(v)
}

// NeedsRefresh reports whether ct is down to threshold levels or fewer.
// Thresholds below 1 count as 1.
func NeedsRefresh(ct *rlwe.Ciphertext, threshold int) bool {
	return ct.Level() <= max(threshold, 1)
}
