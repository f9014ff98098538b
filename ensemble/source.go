// Package ensemble: the one input shape for "a sequence of matrices".
// Arrays, slices and index→matrix generator functions all collapse into
// Source, so solver cores depend on a single ensemble representation.

package ensemble

import "github.com/katalvlaran/negf/zmat"

// Source is a finite, restartable sequence of matrices addressed by
// index. At may be called concurrently from multiple workers and should
// return an independent matrix per call (or one that callers treat as
// read-only).
type Source interface {
	// Len returns the number of matrices in the ensemble.
	Len() int
	// At returns the matrix at index i, 0 ≤ i < Len().
	At(i int) zmat.General
}

type sliceSource struct {
	ms []zmat.General
}

func (s sliceSource) Len() int              { return len(s.ms) }
func (s sliceSource) At(i int) zmat.General { return s.ms[i] }

// FromSlice adapts a slice of matrices into a Source. The slice is not
// copied; callers must not mutate it while a batch is running.
func FromSlice(ms []zmat.General) Source {
	return sliceSource{ms: ms}
}

type funcSource struct {
	n  int
	at func(int) zmat.General
}

func (s funcSource) Len() int              { return s.n }
func (s funcSource) At(i int) zmat.General { return s.at(i) }

// FromFunc adapts an index→matrix generator into a Source of n matrices.
// The generator must be safe for concurrent calls.
func FromFunc(n int, at func(int) zmat.General) Source {
	return funcSource{n: n, at: at}
}

// Solve runs task once per matrix of the ensemble over the worker pool.
// It is Map specialized to matrix-valued tasks, the common case for the
// solver packages.
func Solve(src Source, task func(i int, m zmat.General) (zmat.General, error), opts ...Option) []Result[zmat.General] {
	return Map(src.Len(), func(i int) (zmat.General, error) {
		return task(i, src.At(i))
	}, opts...)
}
