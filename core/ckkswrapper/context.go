package ckkswrapper

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/ckks"
)

// DefaultLogN is the ring degree used by NewHeContext.
const DefaultLogN = 13

// HeContext holds the client-side CKKS material: parameters, the secret and
// public keys, and the encoder/encryptor/decryptor built from them.
type HeContext struct {
	Params    ckks.Parameters
	Encoder   *ckks.Encoder
	Encryptor *rlwe.Encryptor
	Decryptor *rlwe.Decryptor
	KeyGen    *rlwe.KeyGenerator

	sk *rlwe.SecretKey
	pk *rlwe.PublicKey
}

// ServerKit is the evaluation side: everything needed to compute on
// ciphertexts without being able to decrypt them.
type ServerKit struct {
	Params    ckks.Parameters
	Evaluator *ckks.Evaluator
}

// NewHeContext builds a context with DefaultLogN. It panics if the
// parameter set is rejected, which only happens on a broken build.
func NewHeContext() *HeContext {
	h, err := NewHeContextWithLogN(DefaultLogN)
	if err != nil {
		panic(err)
	}
	return h
}

// NewHeContextWithLogN builds a context over a ring of degree 2^logN.
// Rings of degree 2^12 and below get a two-prime chain meant for tests.
func NewHeContextWithLogN(logN int) (*HeContext, error) {
	params, err := ckks.NewParametersFromLiteral(literalFor(logN))
	if err != nil {
		return nil, fmt.Errorf("ckks parameters for logN=%d: %w", logN, err)
	}

	kgen := rlwe.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()

	return &HeContext{
		Params:    params,
		Encoder:   ckks.NewEncoder(params),
		Encryptor: rlwe.NewEncryptor(params, pk),
		Decryptor: rlwe.NewDecryptor(params, sk),
		KeyGen:    kgen,
		sk:        sk,
		pk:        pk,
	}, nil
}

func literalFor(logN int) ckks.ParametersLiteral {
	if logN <= 12 {
		return ckks.ParametersLiteral{
			LogN:            logN,
			LogQ:            []int{40, 30},
			LogP:            []int{40},
			LogDefaultScale: 30,
		}
	}
	return ckks.ParametersLiteral{
		LogN:            logN,
		LogQ:            []int{55, 45, 45, 45},
		LogP:            []int{55},
		LogDefaultScale: 45,
	}
}

// GenServerKit generates a relinearization key plus one Galois key per
// rotation in rots and returns an evaluator bound to them.
func (h *HeContext) GenServerKit(rots []int) *ServerKit {
	rlk := h.KeyGen.GenRelinearizationKeyNew(h.sk)

	var galEls []uint64
	for _, r := range rots {
		galEls = append(galEls, h.Params.GaloisElement(r))
	}
	var gks []*rlwe.GaloisKey
	if len(galEls) > 0 {
		gks = h.KeyGen.GenGaloisKeysNew(galEls, h.sk)
	}

	evk := rlwe.NewMemEvaluationKeySet(rlk, gks...)
	return &ServerKit{
		Params:    h.Params,
		Evaluator: ckks.NewEvaluator(h.Params, evk),
	}
}

// EncryptValue encrypts v into slot 0 of a fresh ciphertext at the top
// level. The other slots hold zero.
func (h *HeContext) EncryptValue(v float64) (*rlwe.Ciphertext, error) {
	pt := ckks.NewPlaintext(h.Params, h.Params.MaxLevel())
	if err := h.Encoder.Encode([]float64{v}, pt); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	ct, err := h.Encryptor.EncryptNew(pt)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return ct, nil
}

// DecryptValue returns the real part of slot 0 of ct.
func (h *HeContext) DecryptValue(ct *rlwe.Ciphertext) (float64, error) {
	pt := h.Decryptor.DecryptNew(ct)
	vals := make([]float64, h.Params.MaxSlots())
	if err := h.Encoder.Decode(pt, vals); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	return vals[0], nil
}
