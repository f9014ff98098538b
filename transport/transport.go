// Package transport: the transmission composition.

package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/negf/blockmat"
	"github.com/katalvlaran/negf/chain"
	"github.com/katalvlaran/negf/ensemble"
	"github.com/katalvlaran/negf/greens"
	"github.com/katalvlaran/negf/zmat"
)

// Transmission computes the Landauer transmission coefficient of sys at
// the energy its matrices were assembled for. All blocks are taken in
// inverse-Green's-function form E·I − H; the caller folds the energy
// (and any broadening iη) into them before the call.
//
// The lead decimation may exit without converging; in that case the
// returned figure is still the best estimate and the error wraps
// chain.ErrNotConverged. Every other error leaves the result at zero.
func Transmission(sys System, dir Direction, opts ...Option) (float64, error) {
	if dir != LeftToRight && dir != RightToLeft {
		return 0, fmt.Errorf("%d: %w", dir, ErrUnknownDirection)
	}
	if sys.Device == nil {
		return 0, ErrNilDevice
	}
	o := gatherOptions(opts)

	// Surface Green's functions of the two leads. A non-converged
	// decimation still yields a usable block; collect those soft errors
	// and keep going.
	var soft []error
	gL, err := chain.Surface(sys.Left.H, sys.Left.V, chain.FromLeft, o.chainOpts...)
	if err != nil {
		if !errors.Is(err, chain.ErrNotConverged) {
			return 0, fmt.Errorf("transport: left lead: %w", err)
		}
		soft = append(soft, fmt.Errorf("left lead: %w", err))
	}
	gR, err := chain.Surface(sys.Right.H, sys.Right.V, chain.FromRight, o.chainOpts...)
	if err != nil {
		if !errors.Is(err, chain.ErrNotConverged) {
			return 0, fmt.Errorf("transport: right lead: %w", err)
		}
		soft = append(soft, fmt.Errorf("right lead: %w", err))
	}

	first, err := sys.Device.Block(0, 0)
	if err != nil {
		return 0, err
	}
	last, err := sys.Device.Block(-1, -1)
	if err != nil {
		return 0, err
	}

	vL, vR := sys.CouplingLeft, sys.CouplingRight
	if vL.Rows != first.Rows || vL.Cols != gL.Rows {
		return 0, fmt.Errorf("left coupling %d×%d against device block %d and lead surface %d: %w",
			vL.Rows, vL.Cols, first.Rows, gL.Rows, ErrLeadMismatch)
	}
	if vR.Rows != gR.Rows || vR.Cols != last.Cols {
		return 0, fmt.Errorf("right coupling %d×%d against lead surface %d and device block %d: %w",
			vR.Rows, vR.Cols, gR.Rows, last.Cols, ErrLeadMismatch)
	}

	sigmaL := zmat.Product(vL, gL, zmat.Adjoint(vL))
	sigmaR := zmat.Product(zmat.Adjoint(vR), gR, vR)
	o.logf("self-energies: left %d×%d, right %d×%d", sigmaL.Rows, sigmaL.Cols, sigmaR.Rows, sigmaR.Cols)

	// Dress a private copy of the device with the self-energies so the
	// caller's view survives the call intact.
	dressed, err := blockmat.NewViewRect(sys.Device.Matrix(), sys.Device.BlockRowSizes(), sys.Device.BlockColSizes())
	if err != nil {
		return 0, err
	}
	b00, err := dressed.Block(0, 0)
	if err != nil {
		return 0, err
	}
	bkk, err := dressed.Block(-1, -1)
	if err != nil {
		return 0, err
	}
	zmat.SubFrom(b00, sigmaL)
	zmat.SubFrom(bkk, sigmaR)

	gammaL := broadening(sigmaL)
	gammaR := broadening(sigmaR)

	// Only one off-corner block of the device Green's function enters the
	// trace; the block-column modes give it without the dense inverse.
	var trace complex128
	switch dir {
	case RightToLeft:
		col, err := greens.Solve(dressed, greens.FirstBlockColumn)
		if err != nil {
			return 0, fmt.Errorf("transport: device: %w", err)
		}
		g := rowBand(col, col.Rows-bkk.Rows, bkk.Rows) // G_{k-1,0}
		trace = zmat.Trace(zmat.Product(gammaR, g, gammaL, zmat.Adjoint(g)))
	default:
		col, err := greens.Solve(dressed, greens.LastBlockColumn)
		if err != nil {
			return 0, fmt.Errorf("transport: device: %w", err)
		}
		g := rowBand(col, 0, b00.Rows) // G_{0,k-1}
		trace = zmat.Trace(zmat.Product(gammaL, g, gammaR, zmat.Adjoint(g)))
	}

	o.logf("direction=%s transmission=%g", dir, real(trace))

	return real(trace), errors.Join(soft...)
}

// broadening is Γ = i(Σ − Σ†), the anti-Hermitian part of a lead
// self-energy scaled onto the real axis.
func broadening(sigma zmat.General) zmat.General {
	return zmat.Scale(1i, zmat.Sub(sigma, zmat.Adjoint(sigma)))
}

// rowBand aliases rows [off, off+rows) of a.
func rowBand(a zmat.General, off, rows int) zmat.General {
	lo := off * a.Stride
	hi := lo + (rows-1)*a.Stride + a.Cols

	return zmat.General{Rows: rows, Cols: a.Cols, Stride: a.Stride, Data: a.Data[lo:hi]}
}

// Sweep evaluates the transmission of n independently assembled systems,
// typically one per energy point, fanned out across the batch workers.
// Per-point failures land in the matching Result and never abort the
// sweep.
func Sweep(n int, at func(i int) System, dir Direction, batchOpts []ensemble.Option, opts ...Option) []ensemble.Result[float64] {
	return ensemble.Map(n, func(i int) (float64, error) {
		return Transmission(at(i), dir, opts...)
	}, batchOpts...)
}
