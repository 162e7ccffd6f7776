package gf16

import "fmt"

// Vector is an ordered sequence of GF(16) elements, one element per byte.
type Vector []Elem

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector { return make(Vector, n) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector { return append(Vector(nil), v...) }

// Encode packs v into ceil(len/2) bytes, low nibble first. An odd length
// leaves the final high nibble zero.
func (v Vector) Encode() []byte {
	out := make([]byte, (len(v)+1)/2)
	for i, e := range v {
		if i&1 == 0 {
			out[i/2] = byte(e & 0x0f)
		} else {
			out[i/2] |= byte(e&0x0f) << 4
		}
	}
	return out
}

// DecodeVector unpacks n elements from packed byte form. The input must be
// exactly ceil(n/2) bytes long.
func DecodeVector(data []byte, n int) (Vector, error) {
	if len(data) != (n+1)/2 {
		return nil, fmt.Errorf("gf16: decode vector: %d bytes, want %d for %d elements", len(data), (n+1)/2, n)
	}
	v := make(Vector, n)
	for i := range v {
		b := data[i/2]
		if i&1 == 0 {
			v[i] = Elem(b & 0x0f)
		} else {
			v[i] = Elem(b >> 4)
		}
	}
	return v, nil
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) Elem {
	if len(a) != len(b) {
		panic("gf16: dot product length mismatch")
	}
	var acc Elem
	for i := range a {
		if a[i] != 0 && b[i] != 0 {
			acc ^= Mul(a[i], b[i])
		}
	}
	return acc
}
