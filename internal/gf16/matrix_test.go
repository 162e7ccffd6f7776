package gf16

import (
	"errors"
	"testing"
)

func TestTriangularIndexIsSequential(t *testing.T) {
	n := 6
	next := 0
	for r := 0; r < n; r++ {
		for c := r; c < n; c++ {
			if idx := TriangularIndex(r, c, n); idx != next {
				t.Fatalf("TriangularIndex(%d,%d,%d) = %d, want %d", r, c, n, idx, next)
			}
			next++
		}
	}
	if next != n*(n+1)/2 {
		t.Fatalf("covered %d positions, want %d", next, n*(n+1)/2)
	}
}

func TestMulVec(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)
	got := a.MulVec(Vector{1, 1})
	if got[0] != 3 || got[1] != 7 {
		t.Fatalf("MulVec = %v, want [3 7]", got)
	}
}

func TestMatrixMul(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 1, 1)
	b := NewMatrix(2, 2)
	b.Set(0, 0, 1)
	b.Set(1, 0, 1)
	b.Set(1, 1, 1)
	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	want := [2][2]Elem{{3, 2}, {1, 1}}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if got.At(r, c) != want[r][c] {
				t.Fatalf("product (%d,%d) = %d, want %d", r, c, got.At(r, c), want[r][c])
			}
		}
	}
	if _, err := a.Mul(NewMatrix(3, 2)); err == nil {
		t.Fatal("dimension mismatch should fail")
	}
}

func TestTranspose(t *testing.T) {
	a := NewMatrix(2, 3)
	a.Set(0, 1, 5)
	a.Set(1, 2, 7)
	at := a.Transpose()
	if at.Rows() != 3 || at.Cols() != 2 {
		t.Fatalf("transpose shape %dx%d", at.Rows(), at.Cols())
	}
	if at.At(1, 0) != 5 || at.At(2, 1) != 7 {
		t.Fatal("transpose moved entries to the wrong place")
	}
}

func TestUpper(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)
	u, err := a.Upper()
	if err != nil {
		t.Fatalf("upper: %v", err)
	}
	if u.At(0, 0) != 1 || u.At(0, 1) != 1 || u.At(1, 0) != 0 || u.At(1, 1) != 4 {
		t.Fatalf("upper fold wrong: %v %v %v %v", u.At(0, 0), u.At(0, 1), u.At(1, 0), u.At(1, 1))
	}
	if _, err := NewMatrix(2, 3).Upper(); err == nil {
		t.Fatal("non-square upper should fail")
	}
}

func TestEchelonizeAndSolve(t *testing.T) {
	a := NewMatrix(3, 3)
	vals := [3][3]Elem{{2, 1, 0}, {0, 1, 1}, {1, 0, 1}}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a.Set(r, c, vals[r][c])
		}
	}
	orig := NewMatrix(3, 3)
	copy(orig.data, a.data)
	y := a.MulVec(Vector{1, 2, 3})

	rank := EchelonizeAugmented(a, y)
	if rank != 3 {
		t.Fatalf("rank = %d, want 3", rank)
	}
	x, err := SolveFromEchelon(a, y)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	got := orig.MulVec(x)
	want := orig.MulVec(Vector{1, 2, 3})
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("solution does not satisfy system at row %d", i)
		}
	}
}

func TestSolveWithFreeVariables(t *testing.T) {
	// Two equations, three unknowns: the third column has no pivot.
	a := NewMatrix(2, 3)
	a.Set(0, 0, 1)
	a.Set(0, 2, 1)
	a.Set(1, 1, 1)
	a.Set(1, 2, 1)
	orig := NewMatrix(2, 3)
	copy(orig.data, a.data)
	y := Vector{5, 6}

	if rank := EchelonizeAugmented(a, y); rank != 2 {
		t.Fatalf("rank = %d, want 2", rank)
	}
	x, err := SolveFromEchelonWith(a, y, Vector{0, 0, 7})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if x[2] != 7 {
		t.Fatalf("free variable overwritten: %d", x[2])
	}
	got := orig.MulVec(x)
	if got[0] != 5 || got[1] != 6 {
		t.Fatalf("solution does not satisfy system: %v", got)
	}
}

func TestSolveInconsistent(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 1)
	a.Set(1, 0, 1)
	a.Set(1, 1, 1)
	y := Vector{1, 2}
	EchelonizeAugmented(a, y)
	if _, err := SolveFromEchelon(a, y); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("want ErrInconsistent, got %v", err)
	}
}
