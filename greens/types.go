// Package greens: compute modes and solver options.

package greens

import (
	"io"
	"log"
)

// Mode selects which part of the inverse a Solve call produces.
type Mode int

const (
	// FullMatrix computes the dense inverse of the whole view. It is the
	// fallback with no recursion savings and is correct for any matrix,
	// block-tridiagonal or not.
	FullMatrix Mode = iota

	// FirstBlock computes the top-left diagonal block of the inverse.
	FirstBlock

	// LastBlock computes the bottom-right diagonal block of the inverse.
	LastBlock

	// FirstBlockColumn computes the first block-column of the inverse.
	FirstBlockColumn

	// LastBlockColumn computes the last block-column of the inverse.
	LastBlockColumn
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case FirstBlock:
		return "FirstBlock"
	case LastBlock:
		return "LastBlock"
	case FirstBlockColumn:
		return "FirstBlockColumn"
	case LastBlockColumn:
		return "LastBlockColumn"
	default:
		return "Mode(?)"
	}
}

// Option mutates solver options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogging enables informational diagnostics on w. Purely
// informational: logging never affects results and is excluded from the
// tested contract.
func WithLogging(w io.Writer) Option {
	return func(o *options) {
		o.logger = log.New(w, "greens: ", 0)
	}
}

func gatherOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func (o *options) logf(format string, args ...any) {
	if o.logger != nil {
		o.logger.Printf(format, args...)
	}
}
