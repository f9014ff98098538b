// Package zmat: LU factorization with partial pivoting for complex128
// matrices, in the unblocked LAPACK getf2/getrs scheme on top of gonum's
// complex BLAS. Every block inversion in the Green's function recursions
// funnels through Inverse below, so a zero pivot here is the single
// numerical failure point of the whole library.

package zmat

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// LU holds the factorization P·A = L·U of a square matrix. L is unit
// lower triangular, U upper triangular, both packed into lu; piv records
// the row interchange applied at each elimination step.
type LU struct {
	lu  General
	piv []int
}

// Factorize computes the pivoted LU factorization of the square matrix a.
// The input is copied, never overwritten. A zero pivot returns
// ErrSingular; no partial factorization is exposed.
//
// Complexity: O(n³).
func Factorize(a General) (*LU, error) {
	if a.Rows != a.Cols {
		panic(panicNonSquare)
	}
	if a.Stride < a.Cols {
		panic(panicStride)
	}

	n := a.Rows
	m := Clone(a)
	piv := make([]int, n)

	for j := 0; j < n; j++ {
		// Pivot: largest absolute entry on or below the diagonal.
		sub := cblas128.Vector{N: n - j, Inc: m.Stride, Data: m.Data[j*m.Stride+j:]}
		p := j + cblas128.Iamax(sub)
		if cmplx.Abs(m.Data[p*m.Stride+j]) == 0 {
			return nil, ErrSingular
		}
		piv[j] = p
		if p != j {
			rj := cblas128.Vector{N: n, Inc: 1, Data: m.Data[j*m.Stride:]}
			rp := cblas128.Vector{N: n, Inc: 1, Data: m.Data[p*m.Stride:]}
			cblas128.Swap(rj, rp)
		}
		if j == n-1 {
			continue
		}
		// Eliminate below the pivot, then rank-1 update the trailing block.
		col := cblas128.Vector{N: n - j - 1, Inc: m.Stride, Data: m.Data[(j+1)*m.Stride+j:]}
		cblas128.Scal(1/m.Data[j*m.Stride+j], col)
		row := cblas128.Vector{N: n - j - 1, Inc: 1, Data: m.Data[j*m.Stride+j+1:]}
		trail := General{
			Rows:   n - j - 1,
			Cols:   n - j - 1,
			Stride: m.Stride,
			Data:   m.Data[(j+1)*m.Stride+j+1:],
		}
		cblas128.Geru(-1, col, row, trail)
	}

	return &LU{lu: m, piv: piv}, nil
}

// Solve returns the matrix X satisfying A·X = B for the factorized A.
// B is copied; its shape must chain with A.
func (f *LU) Solve(b General) General {
	n := f.lu.Rows
	if b.Rows != n {
		panic(panicShape)
	}

	x := Clone(b)
	// Apply the recorded row interchanges to the right-hand side.
	for j, p := range f.piv {
		if p == j {
			continue
		}
		rj := cblas128.Vector{N: x.Cols, Inc: 1, Data: x.Data[j*x.Stride:]}
		rp := cblas128.Vector{N: x.Cols, Inc: 1, Data: x.Data[p*x.Stride:]}
		cblas128.Swap(rj, rp)
	}
	lower := cblas128.Triangular{
		N: n, Stride: f.lu.Stride, Data: f.lu.Data,
		Uplo: blas.Lower, Diag: blas.Unit,
	}
	upper := cblas128.Triangular{
		N: n, Stride: f.lu.Stride, Data: f.lu.Data,
		Uplo: blas.Upper, Diag: blas.NonUnit,
	}
	cblas128.Trsm(blas.Left, blas.NoTrans, 1, lower, x)
	cblas128.Trsm(blas.Left, blas.NoTrans, 1, upper, x)

	return x
}

// Inverse returns A⁻¹ for the factorized A.
func (f *LU) Inverse() General {
	return f.Solve(Eye(f.lu.Rows))
}

// Inverse returns the dense inverse of the square matrix a, or ErrSingular
// when a zero pivot is met. a is never modified.
func Inverse(a General) (General, error) {
	f, err := Factorize(a)
	if err != nil {
		return General{}, err
	}

	return f.Inverse(), nil
}

// Solve returns X with a·X = b, or ErrSingular when a cannot be
// factorized.
func Solve(a, b General) (General, error) {
	f, err := Factorize(a)
	if err != nil {
		return General{}, err
	}

	return f.Solve(b), nil
}
