// Package blockmat: sentinel error set. All public operations return
// these sentinels (possibly wrapped with context via fmt.Errorf and %w);
// tests and callers match with errors.Is. No public entry point panics on
// user input.

package blockmat

import "errors"

var (
	// ErrInvalidPartition indicates block sizes that are non-positive,
	// empty, or inconsistent with the governing matrix dimension. The
	// constructor rejects such partitions outright; it never clamps or
	// truncates to fit.
	ErrInvalidPartition = errors.New("blockmat: invalid partition")

	// ErrIndexOutOfRange indicates a block index that is still invalid
	// after negative-index normalization.
	ErrIndexOutOfRange = errors.New("blockmat: block index out of range")

	// ErrDimensionMismatch indicates a re-partition or assignment between
	// incompatibly shaped operands.
	ErrDimensionMismatch = errors.New("blockmat: dimension mismatch")

	// ErrPartitionMismatch indicates an assignment between views whose
	// active block structures disagree.
	ErrPartitionMismatch = errors.New("blockmat: partition mismatch")

	// ErrNotOwner indicates a re-partitioning call on a reference view.
	ErrNotOwner = errors.New("blockmat: operation requires an owner view")

	// ErrBadMatrix indicates an input matrix with non-positive dimensions,
	// a stride below its column count, or a short data slice.
	ErrBadMatrix = errors.New("blockmat: invalid input matrix")
)
