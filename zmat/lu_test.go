package zmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negf/zmat"
)

// testMatrix returns a well-conditioned 3x3 complex matrix that needs a
// row interchange (zero leading entry) so the pivoting path is exercised.
func testMatrix() zmat.General {
	a := zmat.NewGeneral(3, 3)
	copy(a.Data, []complex128{
		0, 2 + 1i, -1,
		3, 1, 1i,
		1 - 1i, 0, 2,
	})

	return a
}

// TestFactorize_SolveRoundTrip checks A·X == B after a solve.
func TestFactorize_SolveRoundTrip(t *testing.T) {
	a := testMatrix()
	b := zmat.NewGeneral(3, 2)
	copy(b.Data, []complex128{1, 0, 0, 1i, 2 - 1i, 3})

	f, err := zmat.Factorize(a)
	require.NoError(t, err, "well-conditioned matrix must factorize")

	x := f.Solve(b)
	assert.True(t, zmat.EqualApprox(zmat.Mul(a, x), b, 1e-11), "A·X must reproduce B")
}

// TestInverse_Identity checks A·A⁻¹ == I.
func TestInverse_Identity(t *testing.T) {
	a := testMatrix()

	inv, err := zmat.Inverse(a)
	require.NoError(t, err)
	assert.True(t, zmat.EqualApprox(zmat.Mul(a, inv), zmat.Eye(3), 1e-11))
	assert.True(t, zmat.EqualApprox(zmat.Mul(inv, a), zmat.Eye(3), 1e-11))
}

// TestInverse_LeavesInputIntact verifies the factorization copies.
func TestInverse_LeavesInputIntact(t *testing.T) {
	a := testMatrix()
	want := zmat.Clone(a)

	_, err := zmat.Inverse(a)
	require.NoError(t, err)
	assert.True(t, zmat.EqualApprox(a, want, 0), "Inverse must not overwrite its input")
}

// TestFactorize_Singular verifies the zero-pivot signal.
func TestFactorize_Singular(t *testing.T) {
	// Second row is a multiple of the first.
	a := zmat.NewGeneral(2, 2)
	copy(a.Data, []complex128{1, 2, 2, 4})

	_, err := zmat.Factorize(a)
	assert.ErrorIs(t, err, zmat.ErrSingular)

	_, err = zmat.Inverse(zmat.NewGeneral(2, 2))
	assert.ErrorIs(t, err, zmat.ErrSingular, "zero matrix must be singular")
}

// TestInverse_Idempotent verifies bit-identical results across repeated
// calls on the same input.
func TestInverse_Idempotent(t *testing.T) {
	a := testMatrix()

	first, err := zmat.Inverse(a)
	require.NoError(t, err)
	second, err := zmat.Inverse(a)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data, "same input must give identical output")
}

// TestSolve_Strided verifies solving against a strided right-hand side,
// the shape the block-view layer produces.
func TestSolve_Strided(t *testing.T) {
	a := testMatrix()
	full := zmat.NewGeneral(3, 4)
	for i := range full.Data {
		full.Data[i] = complex(float64(i%5), float64(i%3))
	}
	b := zmat.General{Rows: 3, Cols: 2, Stride: full.Stride, Data: full.Data[1:]}

	x, err := zmat.Solve(a, b)
	require.NoError(t, err)
	assert.True(t, zmat.EqualApprox(zmat.Mul(a, x), zmat.Clone(b), 1e-11))
}
