package zmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negf/zmat"
)

const tol = 1e-12

// TestNewGeneral_BadShapePanics verifies that non-positive dimensions are
// treated as programmer errors.
func TestNewGeneral_BadShapePanics(t *testing.T) {
	assert.Panics(t, func() { zmat.NewGeneral(0, 3) }, "zero rows must panic")
	assert.Panics(t, func() { zmat.NewGeneral(3, -1) }, "negative cols must panic")
}

// TestClone_Independence verifies that a clone never aliases its source.
func TestClone_Independence(t *testing.T) {
	a := zmat.Eye(3)
	b := zmat.Clone(a)
	b.Data[0] = 42

	assert.Equal(t, complex128(1), a.Data[0], "mutating the clone must not touch the source")
}

// TestClone_Strided verifies that cloning a strided alias (a sub-matrix of
// a larger buffer) copies the right window.
func TestClone_Strided(t *testing.T) {
	// 3x3 buffer, alias the top-right 2x2 window.
	full := zmat.NewGeneral(3, 3)
	for i := range full.Data {
		full.Data[i] = complex(float64(i), 0)
	}
	sub := zmat.General{Rows: 2, Cols: 2, Stride: full.Stride, Data: full.Data[1:]}

	got := zmat.Clone(sub)
	require.Equal(t, 2, got.Stride, "clone must be compact")
	assert.Equal(t, []complex128{1, 2, 4, 5}, got.Data)
}

// TestMul_HandComputed checks a 2x2 complex product against a worked
// example.
func TestMul_HandComputed(t *testing.T) {
	a := zmat.NewGeneral(2, 2)
	copy(a.Data, []complex128{1 + 1i, 2, 0, 1 - 1i})
	b := zmat.NewGeneral(2, 2)
	copy(b.Data, []complex128{1, 1i, 3, 0})

	got := zmat.Mul(a, b)
	want := zmat.NewGeneral(2, 2)
	copy(want.Data, []complex128{7 + 1i, -1 + 1i, 3 - 3i, 0})

	assert.True(t, zmat.EqualApprox(got, want, tol), "Zgemm product mismatch")
}

// TestProduct_Chains verifies the variadic product against pairwise Mul.
func TestProduct_Chains(t *testing.T) {
	a := zmat.Eye(2)
	a.Data[1] = 2i
	b := zmat.Eye(2)
	b.Data[2] = -1
	c := zmat.Eye(2)
	c.Data[3] = 3

	assert.True(t, zmat.EqualApprox(zmat.Product(a, b, c), zmat.Mul(zmat.Mul(a, b), c), tol))
}

// TestAdjoint_Conjugates verifies conjugate transposition.
func TestAdjoint_Conjugates(t *testing.T) {
	a := zmat.NewGeneral(2, 3)
	copy(a.Data, []complex128{1 + 2i, 0, 3, 4i, 5, 6 - 1i})

	h := zmat.Adjoint(a)
	require.Equal(t, 3, h.Rows)
	require.Equal(t, 2, h.Cols)
	assert.Equal(t, complex128(1-2i), h.Data[0])
	assert.Equal(t, complex128(-4i), h.Data[1])
	assert.Equal(t, complex128(6+1i), h.Data[2*h.Stride+1])
}

// TestTrace_And_MaxAbs covers the two scalar reductions.
func TestTrace_And_MaxAbs(t *testing.T) {
	a := zmat.NewGeneral(2, 2)
	copy(a.Data, []complex128{1 + 1i, -5, 2, 3i})

	assert.Equal(t, complex128(1+4i), zmat.Trace(a))
	assert.InDelta(t, 5.0, zmat.MaxAbs(a), tol)
	assert.Panics(t, func() { zmat.Trace(zmat.NewGeneral(2, 3)) }, "trace of non-square must panic")
}

// TestAddTo_SubFrom covers the in-place accumulators used by the
// decimation iteration.
func TestAddTo_SubFrom(t *testing.T) {
	a := zmat.Eye(2)
	b := zmat.Eye(2)

	zmat.AddTo(a, b)
	assert.Equal(t, complex128(2), a.Data[0])

	zmat.SubFrom(a, b)
	zmat.SubFrom(a, b)
	assert.Equal(t, complex128(0), a.Data[0])
	assert.Equal(t, complex128(1), b.Data[0], "source operand must stay intact")
}
