// SPDX-License-Identifier: MIT
package solver

import (
	"github.com/rs/zerolog"
)

// DefaultMaxIterations bounds the number of pivots Solve will perform
// before giving up with ErrStoppedPrematurely. Set high enough that no
// correctly-terminating strategy on a reasonably sized problem should ever
// hit it; it exists purely as a backstop against a pathological or
// mis-specified degenerate input cycling forever.
const DefaultMaxIterations = 10_000

// Options configures a solver instance.
//
// Logger    – structured logger for per-pivot tracing; defaults to
//
//	zerolog.Nop() so callers who never configure logging pay nothing.
//
// MaxIterations – pivot cap passed to Solve; must be positive.
type Options struct {
	Logger        zerolog.Logger
	MaxIterations int
}

// Option is a functional option for configuring a solver.
type Option func(*Options)

// NewOptions builds an Options with defaults applied, then overridden by opts.
func NewOptions(opts ...Option) Options {
	o := Options{Logger: zerolog.Nop(), MaxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches a structured logger. PrimalSolver logs each pivot
// (iteration, row, column) at Debug level; every strategy logs a failed
// Init at Error level. Terminal statuses are not logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxIterations overrides DefaultMaxIterations. Panics on a non-positive
// value — an invalid configuration caught at construction time, in the same
// spirit as this codebase's other functional-option validators.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}
