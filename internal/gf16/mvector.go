package gf16

// MVector aggregates one coefficient slot across all m public equations, so
// the whole equation batch advances as a single algebraic value instead of m
// separate field operations.
type MVector []Elem

// NewMVector returns a zero m-vector for the given equation count.
func NewMVector(m int) MVector { return make(MVector, m) }

// Clone returns an independent copy of u.
func (u MVector) Clone() MVector { return append(MVector(nil), u...) }

// AddInPlace adds w into u elementwise.
func (u MVector) AddInPlace(w MVector) {
	for i := range u {
		u[i] ^= w[i]
	}
}

// MulAddInPlace adds c*w into u elementwise.
func (u MVector) MulAddInPlace(c Elem, w MVector) {
	if c == 0 {
		return
	}
	for i := range u {
		if w[i] != 0 {
			u[i] ^= Mul(c, w[i])
		}
	}
}

// MulByZ multiplies u by the indeterminate z of the whipped polynomial and
// reduces modulo f(z): the top slot is dropped, every other slot moves up one
// place, and the dropped element scaled by the tail coefficients of
// z^m mod f(z) is folded back into slots 0..3.
func (u MVector) MulByZ(tail []Elem) {
	m := len(u)
	top := u[m-1]
	copy(u[1:], u[:m-1])
	u[0] = 0
	if top == 0 {
		return
	}
	for t, f := range tail {
		if f != 0 {
			u[t] ^= Mul(top, f)
		}
	}
}

// PolyMulByXAndAdd performs one Horner step of the whipped-polynomial
// evaluation: u = u*z + addend, reduced by tail.
func (u MVector) PolyMulByXAndAdd(tail []Elem, addend MVector) {
	u.MulByZ(tail)
	u.AddInPlace(addend)
}
