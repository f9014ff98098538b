package greens_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negf/ensemble"
	"github.com/katalvlaran/negf/greens"
	"github.com/katalvlaran/negf/zmat"
)

// TestSolveBatch verifies order preservation, per-unit isolation of a
// singular member, and the mandatory final progress report.
func TestSolveBatch(t *testing.T) {
	sizes := []int{2, 3, 2}
	const n = 8

	src := ensemble.FromFunc(n, func(i int) zmat.General {
		m := tridiagonal(sizes)
		if i == 3 {
			return zmat.NewGeneral(7, 7) // all-zero: fails its own slot only
		}
		// Perturb the diagonal so every unit has a distinct inverse.
		for d := 0; d < 7; d++ {
			m.Data[d*m.Stride+d] += complex(float64(i), 0)
		}

		return m
	})

	var mu sync.Mutex
	var final float64
	results := greens.SolveBatch(src, sizes, greens.LastBlock,
		[]ensemble.Option{
			ensemble.WithWorkers(3),
			ensemble.WithProgress(func(f float64) {
				mu.Lock()
				final = f
				mu.Unlock()
			}),
		})

	require.Len(t, results, n)
	assert.Equal(t, 1.0, final, "the batch must end with a fraction-1.0 report")

	for i, r := range results {
		if i == 3 {
			assert.ErrorIs(t, r.Err, greens.ErrSingularBlock, "unit %d", i)

			continue
		}
		require.NoError(t, r.Err, "unit %d", i)

		// Re-solve sequentially: slot i must hold unit i's answer.
		v := src.At(i)
		want, err := zmat.Inverse(v)
		require.NoError(t, err)
		assert.True(t, zmat.EqualApprox(r.Value, corner(want, 5, 5, 2, 2), tol), "unit %d", i)
	}
}
