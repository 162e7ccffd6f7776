package mayo

import (
	"testing"

	"MAYO-Signature/internal/gf16"
	"MAYO-Signature/params"
)

// publicEval evaluates the full map [P1 P2; 0 P3] at one n-element input
// split into vinegar part a and oil part b.
func publicEval(p params.Set, p1, p2, p3 []gf16.MVector, a, b gf16.Vector) gf16.MVector {
	out := evalQuad(p1, a, p.M)
	out.AddInPlace(evalBilinear(p2, a, b, p.M, p.O))
	out.AddInPlace(evalQuad(p3, b, p.M))
	return out
}

func TestPublicMapVanishesOnOilSpace(t *testing.T) {
	p := params.Mayo2()
	seed := make([]byte, p.SKSeedBytes)
	seed[0] = 0x42
	pkSeed, oil, err := expandSeed(p, seed)
	if err != nil {
		t.Fatalf("expandSeed: %v", err)
	}
	p1, p2, err := expandP(p, pkSeed)
	if err != nil {
		t.Fatalf("expandP: %v", err)
	}
	p3 := computeP3(p, oil, p1, p2)

	// Inputs of the form (O x || x) span the oil space.
	for trial := 0; trial < 4; trial++ {
		x := make(gf16.Vector, p.O)
		for i := range x {
			x[i] = gf16.Elem((trial + 3*i + 1) % 16)
		}
		y := publicEval(p, p1, p2, p3, oil.MulVec(x), x)
		for s, e := range y {
			if e != 0 {
				t.Fatalf("trial %d: oil-space evaluation has nonzero slot %d = %d", trial, s, e)
			}
		}
	}
}

func TestSigningIdentityMatchesPublicMap(t *testing.T) {
	// P(v + O x || x) must equal P(v || 0) + (v^T L) x, the identity the
	// signing solver relies on.
	p := params.Mayo2()
	seed := make([]byte, p.SKSeedBytes)
	seed[0] = 0x17
	pkSeed, oil, err := expandSeed(p, seed)
	if err != nil {
		t.Fatalf("expandSeed: %v", err)
	}
	p1, p2, err := expandP(p, pkSeed)
	if err != nil {
		t.Fatalf("expandP: %v", err)
	}
	p3 := computeP3(p, oil, p1, p2)
	l := computeL(p, oil, p1, p2)

	v := make(gf16.Vector, p.V())
	for i := range v {
		v[i] = gf16.Elem((5*i + 2) % 16)
	}
	x := make(gf16.Vector, p.O)
	for i := range x {
		x[i] = gf16.Elem((7*i + 1) % 16)
	}

	a := oil.MulVec(x)
	for r := range a {
		a[r] ^= v[r]
	}
	lhs := publicEval(p, p1, p2, p3, a, x)

	rhs := evalQuad(p1, v, p.M)
	for j := 0; j < p.O; j++ {
		if x[j] == 0 {
			continue
		}
		col := gf16.NewMVector(p.M)
		for r := 0; r < p.V(); r++ {
			if v[r] != 0 {
				col.MulAddInPlace(v[r], l[r*p.O+j])
			}
		}
		rhs.MulAddInPlace(x[j], col)
	}

	for s := range lhs {
		if lhs[s] != rhs[s] {
			t.Fatalf("identity fails at slot %d: %d vs %d", s, lhs[s], rhs[s])
		}
	}
}

func TestHornerFoldSingleInput(t *testing.T) {
	// With k = 1 the fold is a single addition: no z multiplication remains.
	u := [][]gf16.MVector{{gf16.MVector{1, 2, 3, 4}}}
	y := hornerFold(u, 1, []gf16.Elem{1, 1, 0, 0}, 4)
	for i, w := range []gf16.Elem{1, 2, 3, 4} {
		if y[i] != w {
			t.Fatalf("slot %d = %d, want %d", i, y[i], w)
		}
	}
}
