package prf

// Package prf provides the deterministic expansion layer of the scheme: a
// SHAKE-256 extendable-output function for seed, digest and target
// derivation, and an AES-128-CTR keystream for bulk public-map expansion.
// Both are pure functions of their inputs.

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// XOF models the extendable-output function used for seed expansion, message
// digesting and per-attempt randomness derivation.
type XOF interface {
	Expand(outLen int, parts ...[]byte) []byte
}

// Shake256XOF is the SHAKE-256 backed implementation of XOF.
type Shake256XOF struct{}

// Expand concatenates parts and squeezes outLen bytes.
func (Shake256XOF) Expand(outLen int, parts ...[]byte) []byte {
	return SHAKE256(outLen, parts...)
}

// SHAKE256 absorbs the concatenation of parts and squeezes outLen bytes.
func SHAKE256(outLen int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			panic(fmt.Errorf("prf: shake256 write: %w", err))
		}
	}
	out := make([]byte, outLen)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("prf: shake256 read: %w", err))
	}
	return out
}
