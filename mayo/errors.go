package mayo

import "errors"

var (
	// ErrInvalidKeyLength reports key or seed material of the wrong size.
	ErrInvalidKeyLength = errors.New("mayo: invalid key length")

	// ErrKeyGeneration reports an internal derivation inconsistency. It
	// should not occur on valid input.
	ErrKeyGeneration = errors.New("mayo: key generation failed")

	// ErrSigningFailed reports exhaustion of the signing attempt budget, a
	// legitimate low-probability outcome. The caller may retry with a fresh
	// call, which draws a new salt.
	ErrSigningFailed = errors.New("mayo: signing attempt budget exhausted")
)
