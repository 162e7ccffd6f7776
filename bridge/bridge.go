package bridge

// Package bridge exposes the scheme to foreign callers as byte-slice
// operations keyed by level name ("MAYO1" .. "MAYO5", any separator style).
// It goes through the public keygen, sign and verify entry points only and
// never reaches into internal matrix representations.

import (
	"MAYO-Signature/mayo"
	"MAYO-Signature/params"
)

// Keygen generates a compact keypair for the named level.
func Keygen(level string) (pk, sk []byte, err error) {
	p, err := params.ByName(level)
	if err != nil {
		return nil, nil, err
	}
	return mayo.GenerateKeypair(p)
}

// KeygenFromSeed derives the compact keypair determined by seed for the
// named level.
func KeygenFromSeed(level string, seed []byte) (pk, sk []byte, err error) {
	p, err := params.ByName(level)
	if err != nil {
		return nil, nil, err
	}
	return mayo.GenerateKeypairFromSeed(p, seed)
}

// Sign signs msg with the compact secret key under the named level.
func Sign(level string, sk, msg []byte) ([]byte, error) {
	p, err := params.ByName(level)
	if err != nil {
		return nil, err
	}
	return mayo.Sign(p, sk, msg)
}

// Verify reports whether sig covers msg under the named level. The error is
// non-nil only for an unknown level; all other malformed input reports false.
func Verify(level string, pk, msg, sig []byte) (bool, error) {
	p, err := params.ByName(level)
	if err != nil {
		return false, err
	}
	return mayo.Verify(p, pk, msg, sig), nil
}
