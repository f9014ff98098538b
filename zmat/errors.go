// Package zmat: sentinel errors and panic strings.
//
// Numerical failures are returned as errors and matched with errors.Is.
// Shape violations panic with the messages below; they indicate misuse of
// the API, not bad data.

package zmat

import "errors"

// ErrSingular is returned when a factorization or solve meets an exactly
// zero pivot. Callers that need the failing block index wrap this error.
var ErrSingular = errors.New("zmat: matrix is singular")

const (
	panicShape     = "zmat: dimension mismatch"
	panicNonSquare = "zmat: matrix is not square"
	panicBadDim    = "zmat: dimensions must be > 0"
	panicStride    = "zmat: invalid stride"
)
