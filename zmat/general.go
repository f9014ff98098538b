// Package zmat: constructors and elementwise/product helpers for
// cblas128.General matrices. All results are freshly allocated with a
// compact stride; inputs may carry any stride >= cols, which lets the
// block-view layer hand sub-matrix aliases straight into these kernels.

package zmat

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// General is the dense complex matrix representation used across the
// library. It is gonum's conventional row-major storage: Data[i*Stride+j].
type General = cblas128.General

// NewGeneral returns a zero-initialized rows×cols matrix with a compact
// stride. Panics when rows or cols is not positive.
func NewGeneral(rows, cols int) General {
	if rows <= 0 || cols <= 0 {
		panic(panicBadDim)
	}

	return General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]complex128, rows*cols),
	}
}

// Eye returns the n×n identity matrix.
func Eye(n int) General {
	m := NewGeneral(n, n)
	for i := 0; i < n; i++ {
		m.Data[i*m.Stride+i] = 1
	}

	return m
}

// Clone returns a compact deep copy of a. The copy never aliases a.Data,
// so it is safe to factorize or overwrite in place.
func Clone(a General) General {
	m := NewGeneral(a.Rows, a.Cols)
	for i := 0; i < a.Rows; i++ {
		copy(m.Data[i*m.Stride:i*m.Stride+a.Cols], a.Data[i*a.Stride:i*a.Stride+a.Cols])
	}

	return m
}

// Add returns a + b. Panics on shape mismatch.
func Add(a, b General) General {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic(panicShape)
	}
	m := Clone(a)
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			m.Data[i*m.Stride+j] += b.Data[i*b.Stride+j]
		}
	}

	return m
}

// Sub returns a - b. Panics on shape mismatch.
func Sub(a, b General) General {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic(panicShape)
	}
	m := Clone(a)
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			m.Data[i*m.Stride+j] -= b.Data[i*b.Stride+j]
		}
	}

	return m
}

// AddTo accumulates src into dst in place (dst += src). Panics on shape
// mismatch. dst keeps its own stride.
func AddTo(dst General, src General) {
	if dst.Rows != src.Rows || dst.Cols != src.Cols {
		panic(panicShape)
	}
	for i := 0; i < src.Rows; i++ {
		for j := 0; j < src.Cols; j++ {
			dst.Data[i*dst.Stride+j] += src.Data[i*src.Stride+j]
		}
	}
}

// SubFrom subtracts src from dst in place (dst -= src). Panics on shape
// mismatch.
func SubFrom(dst General, src General) {
	if dst.Rows != src.Rows || dst.Cols != src.Cols {
		panic(panicShape)
	}
	for i := 0; i < src.Rows; i++ {
		for j := 0; j < src.Cols; j++ {
			dst.Data[i*dst.Stride+j] -= src.Data[i*src.Stride+j]
		}
	}
}

// Scale returns alpha * a.
func Scale(alpha complex128, a General) General {
	m := Clone(a)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			m.Data[i*m.Stride+j] *= alpha
		}
	}

	return m
}

// Mul returns the matrix product a·b via Zgemm. Panics when the inner
// dimensions disagree.
func Mul(a, b General) General {
	if a.Cols != b.Rows {
		panic(panicShape)
	}
	c := NewGeneral(a.Rows, b.Cols)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 0, c)

	return c
}

// Product returns the left-to-right product of all factors. It needs at
// least one factor; adjacent shapes must chain. The triple products of the
// Green's function recursions (H_{b+1,b}·g_b·H_{b,b+1}) are the intended
// call sites.
func Product(ms ...General) General {
	if len(ms) == 0 {
		panic(panicShape)
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		acc = Mul(acc, m)
	}

	return acc
}

// Adjoint returns the conjugate transpose a^†.
func Adjoint(a General) General {
	m := NewGeneral(a.Cols, a.Rows)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			m.Data[j*m.Stride+i] = cmplx.Conj(a.Data[i*a.Stride+j])
		}
	}

	return m
}

// Trace returns the sum of diagonal entries. Panics when a is not square.
func Trace(a General) complex128 {
	if a.Rows != a.Cols {
		panic(panicNonSquare)
	}
	var t complex128
	for i := 0; i < a.Rows; i++ {
		t += a.Data[i*a.Stride+i]
	}

	return t
}

// MaxAbs returns the largest absolute entry of a, or 0 for an empty
// matrix. This is the decimation solver's convergence measure.
func MaxAbs(a General) float64 {
	var max float64
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			if v := cmplx.Abs(a.Data[i*a.Stride+j]); v > max {
				max = v
			}
		}
	}

	return max
}

// EqualApprox reports whether a and b have the same shape and all entries
// agree within tol in absolute value.
func EqualApprox(a, b General, tol float64) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			if cmplx.Abs(a.Data[i*a.Stride+j]-b.Data[i*b.Stride+j]) > tol {
				return false
			}
		}
	}

	return true
}
