// Package greens: error kinds. A numerically singular block inversion
// aborts the computation with SingularBlockError — never a silent
// continue — so batched callers can report it per unit.

package greens

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/negf/zmat"
)

var (
	// ErrSingularBlock is the sentinel behind SingularBlockError; match
	// with errors.Is when the failing index is irrelevant.
	ErrSingularBlock = errors.New("greens: singular block")

	// ErrUnknownMode indicates a Mode value outside the defined set.
	ErrUnknownMode = errors.New("greens: unknown compute mode")

	// ErrNilView indicates a nil input view.
	ErrNilView = errors.New("greens: nil view")

	// ErrNotBlockSquare indicates a view whose active range is not
	// block-square (the recursion needs matching row/column partitions).
	ErrNotBlockSquare = errors.New("greens: view is not block-square")
)

// SingularBlockError reports which diagonal block failed to invert during
// the elimination sweep. Block is an index into the input view's own
// block ordering. It matches both ErrSingularBlock and zmat.ErrSingular
// under errors.Is.
type SingularBlockError struct {
	Block int
}

func (e *SingularBlockError) Error() string {
	return fmt.Sprintf("greens: diagonal block %d is numerically singular", e.Block)
}

func (e *SingularBlockError) Unwrap() []error {
	return []error{ErrSingularBlock, zmat.ErrSingular}
}
