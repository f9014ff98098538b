// Package chain: the decimation iteration.

package chain

import (
	"fmt"

	"github.com/katalvlaran/negf/zmat"
)

// Surface computes the surface Green's function of the semi-infinite
// chain with on-site block h and inter-cell coupling v, both square and
// same-shape, in inverse-Green's-function form. Orientation o picks the
// chain end.
//
// On exceeding MaxIterations the best estimate is returned together with
// ErrNotConverged; the result is still usable. A singular intermediate
// inverse returns zmat.ErrSingular (wrapped) with no result.
func Surface(h, v zmat.General, o Orientation, opts ...Option) (zmat.General, error) {
	if h.Rows != h.Cols || v.Rows != v.Cols || h.Rows != v.Rows {
		return zmat.General{}, fmt.Errorf("h %d×%d, v %d×%d: %w", h.Rows, h.Cols, v.Rows, v.Cols, ErrShapeMismatch)
	}
	opt, err := gatherOptions(opts)
	if err != nil {
		return zmat.General{}, err
	}

	// Iteration state: all same-shape dense blocks, reset on every call.
	epsilon := zmat.Clone(h)
	epsilonSurf := zmat.Clone(h)
	var alpha, beta zmat.General
	switch o {
	case FromRight:
		alpha, beta = zmat.Adjoint(v), zmat.Clone(v)
	default:
		alpha, beta = zmat.Clone(v), zmat.Adjoint(v)
	}
	g, err := zmat.Inverse(epsilon)
	if err != nil {
		return zmat.General{}, fmt.Errorf("chain: on-site block: %w", err)
	}

	converged := false
	iter := 0
	for ; iter < opt.maxIterations; iter++ {
		if zmat.MaxAbs(alpha) < opt.tolerance && zmat.MaxAbs(beta) < opt.tolerance {
			converged = true

			break
		}

		// The blocks are in inverse-Green's-function form, so eliminating a
		// neighbor subtracts its self-energy fold.
		agb := zmat.Product(alpha, g, beta)
		bga := zmat.Product(beta, g, alpha)
		zmat.SubFrom(epsilon, agb)
		zmat.SubFrom(epsilon, bga)
		zmat.SubFrom(epsilonSurf, agb)

		alpha = zmat.Product(alpha, g, alpha)
		beta = zmat.Product(beta, g, beta)

		g, err = zmat.Inverse(epsilon)
		if err != nil {
			return zmat.General{}, fmt.Errorf("chain: renormalized on-site block at iteration %d: %w", iter, err)
		}
	}

	// Fold in the residual coupling once more before inverting the
	// surface term.
	zmat.SubFrom(epsilonSurf, zmat.Product(alpha, g, beta))

	surf, err := zmat.Inverse(epsilonSurf)
	if err != nil {
		return zmat.General{}, fmt.Errorf("chain: surface term: %w", err)
	}

	opt.logf("orientation=%s iterations=%d converged=%t", o, iter, converged)
	if !converged {
		return surf, fmt.Errorf("after %d iterations: %w", iter, ErrNotConverged)
	}

	return surf, nil
}
