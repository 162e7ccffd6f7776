package mayo

import (
	"MAYO-Signature/internal/gf16"
	"MAYO-Signature/params"
)

// tailElems returns the parameter set's reduction tail as field elements.
func tailElems(p params.Set) []gf16.Elem {
	return []gf16.Elem{
		gf16.Elem(p.Tail[0]),
		gf16.Elem(p.Tail[1]),
		gf16.Elem(p.Tail[2]),
		gf16.Elem(p.Tail[3]),
	}
}

// computeL derives the signing batch L = (P1+P1^T)O + P2. The diagonal of
// P1+P1^T vanishes in characteristic 2, so each strict upper position (r,c)
// of P1 feeds row r of L through O[c,*] and row c through O[r,*].
func computeL(p params.Set, oil *gf16.Matrix, p1, p2 []gf16.MVector) []gf16.MVector {
	v, o := p.V(), p.O
	l := make([]gf16.MVector, v*o)
	for i := range l {
		l[i] = p2[i].Clone()
	}
	for r := 0; r < v; r++ {
		base := gf16.TriangularIndex(r, r, v)
		for c := r + 1; c < v; c++ {
			pv := p1[base+c-r]
			for j := 0; j < o; j++ {
				if e := oil.At(c, j); e != 0 {
					l[r*o+j].MulAddInPlace(e, pv)
				}
				if e := oil.At(r, j); e != 0 {
					l[c*o+j].MulAddInPlace(e, pv)
				}
			}
		}
	}
	return l
}

// computeP3 derives the public batch P3 = Upper(O^T (P1 O + P2)), the choice
// that makes the public map vanish on the oil space.
func computeP3(p params.Set, oil *gf16.Matrix, p1, p2 []gf16.MVector) []gf16.MVector {
	v, o, m := p.V(), p.O, p.M

	// q = P1 O + P2, dense v x o. P1 is upper triangular, so row r only
	// picks up positions (r, c) with c >= r.
	q := make([]gf16.MVector, v*o)
	for i := range q {
		q[i] = p2[i].Clone()
	}
	for r := 0; r < v; r++ {
		base := gf16.TriangularIndex(r, r, v)
		for c := r; c < v; c++ {
			pv := p1[base+c-r]
			for j := 0; j < o; j++ {
				if e := oil.At(c, j); e != 0 {
					q[r*o+j].MulAddInPlace(e, pv)
				}
			}
		}
	}

	p3 := make([]gf16.MVector, p.P3Positions())
	for i := 0; i < o; i++ {
		for j := i; j < o; j++ {
			acc := gf16.NewMVector(m)
			for r := 0; r < v; r++ {
				if e := oil.At(r, i); e != 0 {
					acc.MulAddInPlace(e, q[r*o+j])
				}
				if i != j {
					if e := oil.At(r, j); e != 0 {
						acc.MulAddInPlace(e, q[r*o+i])
					}
				}
			}
			p3[gf16.TriangularIndex(i, j, o)] = acc
		}
	}
	return p3
}

// evalQuad evaluates the quadratic form a^T P a for a triangular coefficient
// batch holding one m-vector per upper-triangle position.
func evalQuad(batch []gf16.MVector, a gf16.Vector, m int) gf16.MVector {
	acc := gf16.NewMVector(m)
	n := len(a)
	for r := 0; r < n; r++ {
		if a[r] == 0 {
			continue
		}
		base := gf16.TriangularIndex(r, r, n)
		for c := r; c < n; c++ {
			if w := gf16.Mul(a[r], a[c]); w != 0 {
				acc.MulAddInPlace(w, batch[base+c-r])
			}
		}
	}
	return acc
}

// evalPolar evaluates the polar form a^T P b + b^T P a of a triangular
// batch. Diagonal positions cancel in characteristic 2.
func evalPolar(batch []gf16.MVector, a, b gf16.Vector, m int) gf16.MVector {
	acc := gf16.NewMVector(m)
	n := len(a)
	for r := 0; r < n; r++ {
		base := gf16.TriangularIndex(r, r, n)
		for c := r; c < n; c++ {
			w := gf16.Add(gf16.Mul(a[r], b[c]), gf16.Mul(a[c], b[r]))
			if w != 0 {
				acc.MulAddInPlace(w, batch[base+c-r])
			}
		}
	}
	return acc
}

// evalBilinear evaluates a^T P b for a dense batch of len(a) x cols
// positions.
func evalBilinear(batch []gf16.MVector, a, b gf16.Vector, m, cols int) gf16.MVector {
	acc := gf16.NewMVector(m)
	for r := range a {
		if a[r] == 0 {
			continue
		}
		for c := range b {
			if w := gf16.Mul(a[r], b[c]); w != 0 {
				acc.MulAddInPlace(w, batch[r*cols+c])
			}
		}
	}
	return acc
}

// hornerFold reduces the k x k upper grid of pair evaluations into one
// m-vector. Pairs are visited with i descending and j ascending, the exact
// reverse of the z-power assignment, so every step is one multiply-by-z of
// the accumulator followed by one addition.
func hornerFold(u [][]gf16.MVector, k int, tail []gf16.Elem, m int) gf16.MVector {
	acc := gf16.NewMVector(m)
	for i := k - 1; i >= 0; i-- {
		for j := i; j < k; j++ {
			acc.MulByZ(tail)
			acc.AddInPlace(u[i][j])
		}
	}
	return acc
}
