// Package chain: orientations, options and error kinds.

package chain

import (
	"errors"
	"io"
	"log"
)

// Orientation selects which end of the semi-infinite chain the surface
// belongs to. It swaps the roles of the coupling and its adjoint in the
// decimation iteration.
type Orientation int

const (
	// FromLeft grows the chain to the right: alpha = V, beta = V^†.
	FromLeft Orientation = iota

	// FromRight grows the chain to the left: alpha = V^†, beta = V.
	FromRight
)

// String implements fmt.Stringer for diagnostics.
func (o Orientation) String() string {
	if o == FromRight {
		return "FromRight"
	}

	return "FromLeft"
}

// Defaults for the decimation iteration. MaxIterations is generous: each
// iteration doubles the folded chain length, so 100 iterations cover a
// chain of 2^100 cells.
const (
	// DefaultMaxIterations bounds the doubling iteration.
	DefaultMaxIterations = 100

	// DefaultTolerance is the max-abs-entry threshold below which the
	// renormalized couplings count as vanished.
	DefaultTolerance = 1e-11
)

var (
	// ErrNotConverged signals that the couplings had not vanished within
	// MaxIterations. The returned surface Green's function is still the
	// best available estimate; treat this as a warning, not a failure.
	ErrNotConverged = errors.New("chain: decimation did not converge")

	// ErrShapeMismatch indicates on-site and coupling blocks of different
	// or non-square shapes.
	ErrShapeMismatch = errors.New("chain: on-site and coupling blocks must be square and same-shape")

	// ErrBadOption indicates a nonsensical option value.
	ErrBadOption = errors.New("chain: invalid option value")
)

// Option mutates solver options.
type Option func(*options)

type options struct {
	maxIterations int
	tolerance     float64
	logger        *log.Logger
}

// WithMaxIterations overrides DefaultMaxIterations. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithTolerance overrides DefaultTolerance. tol must be positive.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithLogging enables informational diagnostics on w. Never required for
// correctness and excluded from the tested contract.
func WithLogging(w io.Writer) Option {
	return func(o *options) {
		o.logger = log.New(w, "chain: ", 0)
	}
}

func gatherOptions(opts []Option) (options, error) {
	o := options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.maxIterations <= 0 || o.tolerance <= 0 {
		return o, ErrBadOption
	}

	return o, nil
}

func (o *options) logf(format string, args ...any) {
	if o.logger != nil {
		o.logger.Printf(format, args...)
	}
}
