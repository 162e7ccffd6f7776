package gf16

import (
	"errors"
	"fmt"
)

// ErrInconsistent reports an unsolvable augmented system: a zero coefficient
// row paired with a non-zero right-hand side entry.
var ErrInconsistent = errors.New("gf16: inconsistent linear system")

// Matrix is a dense rows x cols matrix of GF(16) elements in row-major order.
type Matrix struct {
	rows, cols int
	data       []Elem
}

// NewMatrix returns a zero matrix with the given shape.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("gf16: invalid matrix shape %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]Elem, rows*cols)}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) Elem { return m.data[r*m.cols+c] }

// Set stores e at row r, column c.
func (m *Matrix) Set(r, c int, e Elem) { m.data[r*m.cols+c] = e & 0x0f }

// Row returns row r as a slice sharing the matrix storage.
func (m *Matrix) Row(r int) Vector { return Vector(m.data[r*m.cols : (r+1)*m.cols]) }

// MulVec returns m * x.
func (m *Matrix) MulVec(x Vector) Vector {
	if len(x) != m.cols {
		panic("gf16: matrix-vector dimension mismatch")
	}
	out := make(Vector, m.rows)
	for r := 0; r < m.rows; r++ {
		row := m.data[r*m.cols : (r+1)*m.cols]
		var acc Elem
		for c, e := range row {
			if e != 0 && x[c] != 0 {
				acc ^= Mul(e, x[c])
			}
		}
		out[r] = acc
	}
	return out
}

// Mul returns the product m * other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("gf16: matrix product %dx%d * %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	out := NewMatrix(m.rows, other.cols)
	for r := 0; r < m.rows; r++ {
		for k := 0; k < m.cols; k++ {
			e := m.At(r, k)
			if e == 0 {
				continue
			}
			orow := other.data[k*other.cols : (k+1)*other.cols]
			dst := out.data[r*out.cols : (r+1)*out.cols]
			for c, oe := range orow {
				if oe != 0 {
					dst[c] ^= Mul(e, oe)
				}
			}
		}
	}
	return out, nil
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}

// Upper folds a square matrix into upper-triangular form: the diagonal is
// kept and each pair M[i][j], M[j][i] with i < j is summed into the upper
// slot. The input must be square.
func (m *Matrix) Upper() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("gf16: upper of non-square %dx%d matrix", m.rows, m.cols)
	}
	out := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		out.Set(i, i, m.At(i, i))
		for j := i + 1; j < m.cols; j++ {
			out.Set(i, j, m.At(i, j)^m.At(j, i))
		}
	}
	return out, nil
}

// TriangularIndex maps an upper-triangle coordinate (r, c) with r <= c of an
// n x n matrix to its position in packed row-major triangular storage. Every
// consumer of triangular batches goes through this one mapping.
func TriangularIndex(r, c, n int) int {
	return r*n - r*(r-1)/2 + (c - r)
}

// EchelonizeAugmented transforms [a|y] in place to reduced row-echelon form
// using partial pivoting (scan down for a non-zero pivot, swap, normalize by
// the pivot inverse, eliminate the column from every other row) and returns
// the rank of a.
func EchelonizeAugmented(a *Matrix, y Vector) int {
	if len(y) != a.rows {
		panic("gf16: augmented right-hand side length mismatch")
	}
	rank := 0
	for col := 0; col < a.cols && rank < a.rows; col++ {
		pivot := -1
		for r := rank; r < a.rows; r++ {
			if a.At(r, col) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if pivot != rank {
			pr, rr := a.Row(pivot), a.Row(rank)
			for c := col; c < a.cols; c++ {
				pr[c], rr[c] = rr[c], pr[c]
			}
			y[pivot], y[rank] = y[rank], y[pivot]
		}
		inv := mustInv(a.At(rank, col))
		if inv != 1 {
			rr := a.Row(rank)
			for c := col; c < a.cols; c++ {
				rr[c] = Mul(rr[c], inv)
			}
			y[rank] = Mul(y[rank], inv)
		}
		pr := a.Row(rank)
		for r := 0; r < a.rows; r++ {
			if r == rank {
				continue
			}
			f := a.At(r, col)
			if f == 0 {
				continue
			}
			rr := a.Row(r)
			for c := col; c < a.cols; c++ {
				if pr[c] != 0 {
					rr[c] ^= Mul(f, pr[c])
				}
			}
			y[r] ^= Mul(f, y[rank])
		}
		rank++
	}
	return rank
}

// SolveFromEchelon back-substitutes a particular solution from a system in
// echelon form, fixing every pivot-less (free) variable to zero.
func SolveFromEchelon(a *Matrix, y Vector) (Vector, error) {
	return SolveFromEchelonWith(a, y, make(Vector, a.cols))
}

// SolveFromEchelonWith back-substitutes like SolveFromEchelon but reads the
// value of each free variable from free instead of zero. It reports
// ErrInconsistent when a zero coefficient row carries a non-zero right-hand
// side entry.
func SolveFromEchelonWith(a *Matrix, y Vector, free Vector) (Vector, error) {
	if len(y) != a.rows || len(free) != a.cols {
		panic("gf16: solve dimension mismatch")
	}
	type pivot struct{ row, col int }
	pivots := make([]pivot, 0, a.rows)
	for r := 0; r < a.rows; r++ {
		col := -1
		for c := 0; c < a.cols; c++ {
			if a.At(r, c) != 0 {
				col = c
				break
			}
		}
		if col < 0 {
			if y[r] != 0 {
				return nil, ErrInconsistent
			}
			continue
		}
		pivots = append(pivots, pivot{row: r, col: col})
	}
	x := free.Clone()
	for i := len(pivots) - 1; i >= 0; i-- {
		p := pivots[i]
		row := a.Row(p.row)
		acc := y[p.row]
		for c := p.col + 1; c < a.cols; c++ {
			if row[c] != 0 && x[c] != 0 {
				acc ^= Mul(row[c], x[c])
			}
		}
		x[p.col] = Mul(acc, mustInv(row[p.col]))
	}
	return x, nil
}
