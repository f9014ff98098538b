// Package greens: the recursive partial-inverse solver.

package greens

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/negf/blockmat"
	"github.com/katalvlaran/negf/zmat"
)

// Solve computes the part of H⁻¹ selected by mode. H must be
// block-square; apart from FullMatrix, it must also be genuinely
// block-tridiagonal (unchecked precondition). The input view is never
// mutated. On a singular diagonal block the error is a
// *SingularBlockError carrying the failing block index.
func Solve(h *blockmat.View, mode Mode, opts ...Option) (zmat.General, error) {
	if h == nil {
		return zmat.General{}, ErrNilView
	}
	if h.BlockRows() != h.BlockCols() || h.Rows() != h.Cols() {
		return zmat.General{}, fmt.Errorf("%d×%d blocks, %d×%d elements: %w",
			h.BlockRows(), h.BlockCols(), h.Rows(), h.Cols(), ErrNotBlockSquare)
	}

	o := gatherOptions(opts)
	o.logf("mode=%s blocks=%d size=%d", mode, h.BlockRows(), h.Rows())

	switch mode {
	case FullMatrix:
		return fullMatrix(h)
	case LastBlock:
		return lastBlock(h)
	case FirstBlock:
		g, err := lastBlock(h.Reverse())

		return g, mirrorBlockIndex(err, h.BlockRows())
	case LastBlockColumn:
		pieces, err := lastColumn(h)
		if err != nil {
			return zmat.General{}, err
		}

		return assembleColumn(h, pieces, false), nil
	case FirstBlockColumn:
		pieces, err := lastColumn(h.Reverse())
		if err != nil {
			return zmat.General{}, mirrorBlockIndex(err, h.BlockRows())
		}

		return assembleColumn(h, pieces, true), nil
	default:
		return zmat.General{}, fmt.Errorf("mode %d: %w", mode, ErrUnknownMode)
	}
}

// fullMatrix is the dense fallback: one O(n³) inverse of the active
// range.
func fullMatrix(h *blockmat.View) (zmat.General, error) {
	inv, err := zmat.Inverse(h.Matrix())
	if err != nil {
		return zmat.General{}, fmt.Errorf("dense inverse: %w: %w", ErrSingularBlock, err)
	}

	return inv, nil
}

// lastBlock runs the forward elimination sweep and returns the
// bottom-right block of the inverse.
func lastBlock(h *blockmat.View) (zmat.General, error) {
	k := h.BlockRows()

	s0, err := h.BlockRowSize(0)
	if err != nil {
		return zmat.General{}, err
	}
	sigma := zmat.NewGeneral(s0, s0)

	for b := 0; b < k-1; b++ {
		hbb, _ := h.Block(b, b)
		g, err := zmat.Inverse(zmat.Sub(hbb, sigma))
		if err != nil {
			return zmat.General{}, &SingularBlockError{Block: b}
		}
		lower, _ := h.Block(b+1, b)
		upper, _ := h.Block(b, b+1)
		sigma = zmat.Product(lower, g, upper)
	}

	hkk, _ := h.Block(k-1, k-1)
	g, err := zmat.Inverse(zmat.Sub(hkk, sigma))
	if err != nil {
		return zmat.General{}, &SingularBlockError{Block: k - 1}
	}

	return g, nil
}

// lastColumn runs the forward sweep retaining every intermediate g_b,
// then back-substitutes the last block-column of the inverse. pieces[b]
// is G_{b,k-1} in the view's own block ordering.
func lastColumn(h *blockmat.View) ([]zmat.General, error) {
	k := h.BlockRows()

	// Forward sweep: local arena of per-step Green's blocks.
	gs := make([]zmat.General, k)
	s0, err := h.BlockRowSize(0)
	if err != nil {
		return nil, err
	}
	sigma := zmat.NewGeneral(s0, s0)
	for b := 0; b < k; b++ {
		hbb, _ := h.Block(b, b)
		g, err := zmat.Inverse(zmat.Sub(hbb, sigma))
		if err != nil {
			return nil, &SingularBlockError{Block: b}
		}
		gs[b] = g
		if b < k-1 {
			lower, _ := h.Block(b+1, b)
			upper, _ := h.Block(b, b+1)
			sigma = zmat.Product(lower, g, upper)
		}
	}

	// Back-substitution, seeded with the exact corner block.
	pieces := make([]zmat.General, k)
	pieces[k-1] = gs[k-1]
	for b := k - 2; b >= 0; b-- {
		upper, _ := h.Block(b, b+1)
		pieces[b] = zmat.Scale(-1, zmat.Product(gs[b], upper, pieces[b+1]))
	}

	return pieces, nil
}

// assembleColumn stacks per-block column pieces into one dense column.
// With mirror set, pieces come from a reversed sweep: piece b' holds the
// block at original index k-1-b'.
func assembleColumn(h *blockmat.View, pieces []zmat.General, mirror bool) zmat.General {
	k := h.BlockRows()
	out := zmat.NewGeneral(h.Rows(), pieces[k-1].Cols)

	off := 0
	for i := 0; i < k; i++ {
		p := pieces[i]
		if mirror {
			p = pieces[k-1-i]
		}
		for r := 0; r < p.Rows; r++ {
			copy(out.Data[(off+r)*out.Stride:(off+r)*out.Stride+p.Cols], p.Data[r*p.Stride:r*p.Stride+p.Cols])
		}
		off += p.Rows
	}

	return out
}

// mirrorBlockIndex rewrites a SingularBlockError reported by a reversed
// sweep back into the caller's block ordering.
func mirrorBlockIndex(err error, k int) error {
	var sbe *SingularBlockError
	if errors.As(err, &sbe) {
		return &SingularBlockError{Block: k - 1 - sbe.Block}
	}

	return err
}
