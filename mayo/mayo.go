package mayo

// Package mayo implements a multivariate quadratic signature scheme over
// GF(16) built on an Oil-and-Vinegar trapdoor with a whipped public map.
// A signature solves P*(s_1..s_k) = t for a message-derived target t, where
// P* combines k evaluations of the public map P with pairwise differentials
// weighted by powers of z modulo the parameter set's tail polynomial.
//
// Keys travel in compact form: the secret key is its seed, the public key is
// the public-map seed followed by the packed P3 coefficients. Callers that
// sign or verify repeatedly should expand once with ExpandSecretKey or
// ExpandPublicKey and use the Expanded variants.

import (
	"crypto/rand"
	"fmt"
	"time"

	"MAYO-Signature/params"
	"MAYO-Signature/prof"
)

// MaxSigningAttempts bounds the signing retry loop. Every attempt reuses the
// signature's salt with a fresh counter, so exhaustion is a property of one
// salt draw, not of the key.
const MaxSigningAttempts = 256

// GenerateKeypair draws a fresh seed from crypto/rand and derives the
// compact keypair from it.
func GenerateKeypair(p params.Set) (pk, sk []byte, err error) {
	seed := make([]byte, p.SKSeedBytes)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, fmt.Errorf("mayo: keypair seed: %w", err)
	}
	return GenerateKeypairFromSeed(p, seed)
}

// GenerateKeypairFromSeed derives the compact keypair determined by seed.
// The same seed always yields the same keypair bit for bit.
func GenerateKeypairFromSeed(p params.Set, seed []byte) (pk, sk []byte, err error) {
	defer prof.Track(time.Now(), "Mayo.GenerateKeypair")
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if len(seed) != p.SKSeedBytes {
		return nil, nil, fmt.Errorf("%w: sk seed is %d bytes, want %d", ErrInvalidKeyLength, len(seed), p.SKSeedBytes)
	}
	pkSeed, oil, err := expandSeed(p, seed)
	if err != nil {
		return nil, nil, err
	}
	p1, p2, err := expandP(p, pkSeed)
	if err != nil {
		return nil, nil, err
	}
	p3 := computeP3(p, oil, p1, p2)
	pk = make([]byte, 0, p.CPKBytes())
	pk = append(pk, pkSeed...)
	pk = append(pk, packMVectors(p3)...)
	sk = append([]byte(nil), seed...)
	return pk, sk, nil
}
