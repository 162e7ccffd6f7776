package gf16

// Package gf16 implements arithmetic over GF(16) = F_2[x]/(x^4+x+1) together
// with the vector, matrix and batched m-vector containers the signature
// scheme builds on. Elements are 4-bit values stored one per byte; the packed
// byte form keeps two elements per byte, low nibble first.

import "fmt"

// Elem is a GF(16) element. Only the low four bits are significant.
type Elem uint8

// mulTab caches all 256 products, indexed by (a<<4)|b.
var mulTab [256]Elem

// invTab caches multiplicative inverses. invTab[0] stays 0.
var invTab [16]Elem

func init() {
	for a := 0; a < 16; a++ {
		for b := 0; b < 16; b++ {
			mulTab[a<<4|b] = mulGeneric(Elem(a), Elem(b))
		}
	}
	// a^14 = a^8 * a^4 * a^2 is the inverse of a, since a^15 = 1.
	for a := Elem(1); a < 16; a++ {
		a2 := Mul(a, a)
		a4 := Mul(a2, a2)
		a8 := Mul(a4, a4)
		invTab[a] = Mul(a8, Mul(a4, a2))
	}
}

// mulGeneric multiplies by carry-less multiplication over GF(2) followed by
// reduction modulo x^4+x+1. Each product term is a single shifted copy of b,
// so plain integer multiplication never carries.
func mulGeneric(a, b Elem) Elem {
	p := (a & 1) * b
	p ^= (a & 2) * b
	p ^= (a & 4) * b
	p ^= (a & 8) * b
	top := p & 0xf0
	return (p ^ top>>4 ^ top>>3) & 0x0f
}

// Add returns a + b. Addition is its own inverse in characteristic 2.
func Add(a, b Elem) Elem { return (a ^ b) & 0x0f }

// Sub returns a - b, which coincides with Add in GF(16).
func Sub(a, b Elem) Elem { return (a ^ b) & 0x0f }

// Mul returns a * b.
func Mul(a, b Elem) Elem { return mulTab[(a&0x0f)<<4|(b&0x0f)] }

// Inv returns the multiplicative inverse of a. The zero element has none.
func Inv(a Elem) (Elem, error) {
	if a&0x0f == 0 {
		return 0, fmt.Errorf("gf16: inverse of zero element")
	}
	return invTab[a&0x0f], nil
}

// Div returns a / b. It fails when b is zero.
func Div(a, b Elem) (Elem, error) {
	if b&0x0f == 0 {
		return 0, fmt.Errorf("gf16: division by zero")
	}
	return Mul(a, invTab[b&0x0f]), nil
}

// mustInv is Inv for callers that have already established a is non-zero.
func mustInv(a Elem) Elem {
	if a&0x0f == 0 {
		panic("gf16: inverse of zero element")
	}
	return invTab[a&0x0f]
}
