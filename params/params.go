package params

// Package params defines the public parameter sets of the signature scheme
// and the byte sizes derived from them. Sets are immutable values passed
// explicitly to every operation; nothing in the module reads parameters from
// globals.

import (
	"errors"
	"fmt"
)

// ErrParameter reports an invalid or unknown parameter set.
var ErrParameter = errors.New("params: invalid parameter set")

// Set holds one security level of the scheme. All arithmetic runs over
// GF(16), so sizes below count field elements unless the name says bytes.
type Set struct {
	Name        string   // canonical level name, e.g. "MAYO_1"
	N           int      // total variables per input vector
	M           int      // equations in the public map
	O           int      // oil variables
	K           int      // whipping factor (inputs per signature)
	SaltBytes   int      // per-signature salt
	DigestBytes int      // message digest
	SKSeedBytes int      // compact secret key seed
	PKSeedBytes int      // public map seed (AES-128 key)
	Tail        [4]uint8 // coefficients of z^M mod f(z), low degree first
}

// V returns the vinegar variable count n-o.
func (p Set) V() int { return p.N - p.O }

// MBytes returns the packed size of one m-vector.
func (p Set) MBytes() int { return (p.M + 1) / 2 }

// VBytes returns the packed size of one vinegar vector.
func (p Set) VBytes() int { return (p.V() + 1) / 2 }

// OBytes returns the packed size of the v x o oil matrix.
func (p Set) OBytes() int { return (p.V()*p.O + 1) / 2 }

// P1Positions returns the upper-triangle position count of P1.
func (p Set) P1Positions() int { return p.V() * (p.V() + 1) / 2 }

// P3Positions returns the upper-triangle position count of P3.
func (p Set) P3Positions() int { return p.O * (p.O + 1) / 2 }

// P1Bytes returns the packed size of the P1 coefficient batch.
func (p Set) P1Bytes() int { return p.M * p.P1Positions() / 2 }

// P2Bytes returns the packed size of the P2 coefficient batch.
func (p Set) P2Bytes() int { return p.M * p.V() * p.O / 2 }

// P3Bytes returns the packed size of the P3 coefficient batch.
func (p Set) P3Bytes() int { return p.M * p.P3Positions() / 2 }

// LBytes returns the packed size of the secret L matrix batch. L has the
// same v x o shape as P2.
func (p Set) LBytes() int { return p.P2Bytes() }

// RBytes returns the packed size of the per-attempt free-variable elements.
func (p Set) RBytes() int { return (p.K*p.O + 1) / 2 }

// CSKBytes returns the compact secret key size.
func (p Set) CSKBytes() int { return p.SKSeedBytes }

// CPKBytes returns the compact public key size.
func (p Set) CPKBytes() int { return p.PKSeedBytes + p.P3Bytes() }

// SigBytes returns the signature size: k packed input vectors plus the salt.
func (p Set) SigBytes() int { return (p.N*p.K+1)/2 + p.SaltBytes }

// Validate performs consistency checks on the parameter set.
func (p Set) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrParameter)
	}
	if p.N <= 0 || p.M <= 0 || p.O <= 0 || p.K <= 0 {
		return fmt.Errorf("%w: %s: n/m/o/k must be >0", ErrParameter, p.Name)
	}
	if p.O >= p.N {
		return fmt.Errorf("%w: %s: o (%d) must be below n (%d)", ErrParameter, p.Name, p.O, p.N)
	}
	if p.M%2 != 0 {
		return fmt.Errorf("%w: %s: m (%d) must be even", ErrParameter, p.Name, p.M)
	}
	if p.K*p.O < p.M {
		return fmt.Errorf("%w: %s: k*o (%d) must reach m (%d)", ErrParameter, p.Name, p.K*p.O, p.M)
	}
	if p.SaltBytes <= 0 || p.DigestBytes <= 0 || p.SKSeedBytes <= 0 {
		return fmt.Errorf("%w: %s: salt/digest/seed sizes must be >0", ErrParameter, p.Name)
	}
	if p.PKSeedBytes != 16 {
		return fmt.Errorf("%w: %s: pk seed must be 16 bytes (AES-128 key)", ErrParameter, p.Name)
	}
	if p.Tail[0] == 0 {
		return fmt.Errorf("%w: %s: reduction polynomial has zero constant term", ErrParameter, p.Name)
	}
	for _, c := range p.Tail {
		if c > 15 {
			return fmt.Errorf("%w: %s: tail coefficient %d outside GF(16)", ErrParameter, p.Name, c)
		}
	}
	return nil
}
