package chain_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negf/chain"
	"github.com/katalvlaran/negf/zmat"
)

// scalar wraps one complex value as a 1×1 block.
func scalar(v complex128) zmat.General {
	m := zmat.NewGeneral(1, 1)
	m.Data[0] = v

	return m
}

// TestSurface_ClosedForm checks the scalar chain against the analytic
// surface Green's function g = (x − √(x²−4t²)) / (2t²), x = E−ε, valid
// outside the band where the decimation converges on the real axis.
func TestSurface_ClosedForm(t *testing.T) {
	// x = 3, t = 1: g = (3 − √5)/2.
	g, err := chain.Surface(scalar(3), scalar(-1), chain.FromLeft)
	require.NoError(t, err)

	want := (3 - math.Sqrt(5)) / 2
	assert.InDelta(t, want, real(g.Data[0]), 1e-10)
	assert.InDelta(t, 0, imag(g.Data[0]), 1e-10)
}

// TestSurface_BandCenter checks the retarded branch inside the band: at
// x = iη with t = 1 the surface Green's function tends to −i as η → 0.
// η is kept large enough (1e-6) that the doubling map stays stable in
// float64 at the exact band center; the finite-η error is O(η).
func TestSurface_BandCenter(t *testing.T) {
	g, err := chain.Surface(scalar(complex(0, 1e-6)), scalar(-1), chain.FromLeft)
	require.NoError(t, err)

	assert.Less(t, cmplx.Abs(g.Data[0]-(-1i)), 1e-3)
	assert.Negative(t, imag(g.Data[0]), "retarded surface function must have negative imaginary part")
}

// TestSurface_Orientations verifies that for a Hermitian coupling the two
// chain ends are equivalent, and that both orientations accept block
// input.
func TestSurface_Orientations(t *testing.T) {
	h := zmat.NewGeneral(2, 2)
	h.Data[0], h.Data[3] = 5+0.1i, 6+0.1i
	h.Data[1], h.Data[2] = 0.3, 0.3
	v := zmat.NewGeneral(2, 2)
	v.Data[0], v.Data[3] = -1, -0.7
	v.Data[1], v.Data[2] = 0.2, 0.2

	left, err := chain.Surface(h, v, chain.FromLeft)
	require.NoError(t, err)
	right, err := chain.Surface(h, v, chain.FromRight)
	require.NoError(t, err)

	assert.True(t, zmat.EqualApprox(left, right, 1e-10))
}

// TestSurface_FixedPoint verifies the defining identity
// g = (h − v·g·v†)⁻¹ on a block chain.
func TestSurface_FixedPoint(t *testing.T) {
	h := zmat.NewGeneral(2, 2)
	h.Data[0], h.Data[3] = 5+0.2i, 7+0.2i
	h.Data[1], h.Data[2] = 0.4+0.1i, 0.1-0.2i
	v := zmat.NewGeneral(2, 2)
	v.Data[0], v.Data[1] = -1, 0.3
	v.Data[2], v.Data[3] = -0.2, -0.8

	g, err := chain.Surface(h, v, chain.FromLeft)
	require.NoError(t, err)

	rhs, err := zmat.Inverse(zmat.Sub(h, zmat.Product(v, g, zmat.Adjoint(v))))
	require.NoError(t, err)
	assert.True(t, zmat.EqualApprox(g, rhs, 1e-9))
}

// TestSurface_NotConverged verifies the soft failure: the estimate comes
// back together with ErrNotConverged.
func TestSurface_NotConverged(t *testing.T) {
	g, err := chain.Surface(scalar(complex(0, 1e-8)), scalar(-1), chain.FromLeft,
		chain.WithMaxIterations(1))

	require.ErrorIs(t, err, chain.ErrNotConverged)
	require.Len(t, g.Data, 1, "a non-converged run must still return its estimate")
	assert.False(t, math.IsNaN(real(g.Data[0])))
}

// TestSurface_InputIntact verifies the iteration works on private copies.
func TestSurface_InputIntact(t *testing.T) {
	h, v := scalar(3), scalar(-1)
	_, err := chain.Surface(h, v, chain.FromLeft)
	require.NoError(t, err)

	assert.Equal(t, complex128(3), h.Data[0])
	assert.Equal(t, complex128(-1), v.Data[0])
}

// TestSurface_Deterministic verifies that repeated calls reproduce the
// result bit for bit.
func TestSurface_Deterministic(t *testing.T) {
	a, err := chain.Surface(scalar(3), scalar(-1), chain.FromLeft)
	require.NoError(t, err)
	b, err := chain.Surface(scalar(3), scalar(-1), chain.FromLeft)
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data)
}

// TestSurface_Validation covers shape and option errors.
func TestSurface_Validation(t *testing.T) {
	_, err := chain.Surface(zmat.NewGeneral(2, 2), zmat.NewGeneral(3, 3), chain.FromLeft)
	assert.ErrorIs(t, err, chain.ErrShapeMismatch)

	_, err = chain.Surface(scalar(3), scalar(-1), chain.FromLeft, chain.WithTolerance(-1))
	assert.ErrorIs(t, err, chain.ErrBadOption)

	_, err = chain.Surface(scalar(3), scalar(-1), chain.FromLeft, chain.WithMaxIterations(0))
	assert.ErrorIs(t, err, chain.ErrBadOption)
}
