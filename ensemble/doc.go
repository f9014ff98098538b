// Package ensemble runs one compute task per matrix of a batch — one
// energy or k-point sample out of an ensemble — across a bounded pool of
// workers.
//
// The scheduling model is data-parallel with no shared mutable state:
// every unit allocates its own scratch and writes its Result into a
// pre-sized slot at its own index, so completion order never affects the
// output. One failing unit (say, a singular matrix) never aborts the
// rest of the batch; batched operations always return the per-unit
// result/error slice, never a single aggregate error that discards
// partial progress.
//
// Progress reporting uses one counter slot per worker, merged only when
// a fraction is read — there is no globally locked counter to contend
// on. Mid-batch cancellation is not supported; a caller wanting early
// exit should simply stop submitting batches.
package ensemble
