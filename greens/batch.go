// Package greens: batched solving over a matrix ensemble. Each unit
// builds its own private view (no shared scratch), so a singular matrix
// in the batch fails only its own slot.

package greens

import (
	"github.com/katalvlaran/negf/blockmat"
	"github.com/katalvlaran/negf/ensemble"
	"github.com/katalvlaran/negf/zmat"
)

// SolveBatch applies Solve with one mode and one block-size sequence to
// every matrix of the ensemble. The result slice has one entry per
// input, in input order regardless of execution order. Batch scheduling
// and progress reporting are configured through batchOpts.
func SolveBatch(src ensemble.Source, sizes []int, mode Mode, batchOpts []ensemble.Option, opts ...Option) []ensemble.Result[zmat.General] {
	return ensemble.Map(src.Len(), func(i int) (zmat.General, error) {
		v, err := blockmat.NewView(src.At(i), sizes)
		if err != nil {
			return zmat.General{}, err
		}

		return Solve(v, mode, opts...)
	}, batchOpts...)
}
