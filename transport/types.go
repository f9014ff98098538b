// Package transport: directions, system description, options and error
// kinds.

package transport

import (
	"errors"
	"io"
	"log"

	"github.com/katalvlaran/negf/blockmat"
	"github.com/katalvlaran/negf/chain"
	"github.com/katalvlaran/negf/zmat"
)

// Direction selects which corner column of the device Green's function
// carries the transmission trace.
type Direction int

const (
	// LeftToRight injects from the left lead and collects on the right.
	LeftToRight Direction = iota

	// RightToLeft injects from the right lead and collects on the left.
	RightToLeft
)

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	if d == RightToLeft {
		return "RightToLeft"
	}

	return "LeftToRight"
}

// Lead describes one periodic semi-infinite lead: its repeated on-site
// block H and inter-cell coupling V, both in inverse-Green's-function
// form at the energy of interest.
type Lead struct {
	H zmat.General
	V zmat.General
}

// System is a finite device wired to two semi-infinite leads.
// CouplingLeft connects the device's first block to the left lead
// surface; CouplingRight connects the last block to the right lead
// surface. Device must be a non-reversed block-square view.
type System struct {
	Device        *blockmat.View
	Left, Right   Lead
	CouplingLeft  zmat.General
	CouplingRight zmat.General
}

var (
	// ErrNilDevice indicates a System without a device view.
	ErrNilDevice = errors.New("transport: nil device view")

	// ErrLeadMismatch indicates lead self-energies whose shapes do not
	// match the device's corner blocks.
	ErrLeadMismatch = errors.New("transport: lead self-energy does not match device corner block")

	// ErrUnknownDirection indicates a Direction outside the defined set.
	ErrUnknownDirection = errors.New("transport: unknown direction")
)

// Option mutates solver options.
type Option func(*options)

type options struct {
	chainOpts []chain.Option
	logger    *log.Logger
}

// WithChainOptions forwards options (iteration bound, tolerance) to the
// lead decimation solver.
func WithChainOptions(opts ...chain.Option) Option {
	return func(o *options) {
		o.chainOpts = append(o.chainOpts, opts...)
	}
}

// WithLogging enables informational diagnostics on w.
func WithLogging(w io.Writer) Option {
	return func(o *options) {
		o.logger = log.New(w, "transport: ", 0)
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
