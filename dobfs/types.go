// Package dobfs defines tunable options, sentinel errors, and the result
// type for direction-optimizing BFS.
package dobfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/crisp/csr"
)

// Default tuning constants for the direction-switching heuristic, from the
// direction-optimizing BFS literature. They govern the crossover point and
// the bottom-up exit condition; override per call with WithAlpha/WithBeta.
const (
	// DefaultAlpha is the top-down→bottom-up crossover divisor.
	DefaultAlpha = 15
	// DefaultBeta is the bottom-up exit divisor.
	DefaultBeta = 18
)

// Sentinel errors for DOBFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dobfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source id is not a valid
	// vertex of the graph.
	ErrSourceOutOfRange = errors.New("dobfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dobfs: invalid option supplied")
)

// Option configures Run via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Run starts.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// Ctx allows cancellation between parallel regions.
	Ctx context.Context

	// Alpha is the top-down→bottom-up crossover divisor (> 0).
	Alpha int

	// Beta is the bottom-up exit divisor (> 0).
	Beta int

	// Workers is the fixed executor pool size for parallel regions (> 0).
	Workers int

	// Logger, when non-nil, receives one debug line per step with the
	// direction taken and its counters. Silent by default.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the baseline configuration:
// alpha=15, beta=18, one executor per CPU, background context, no logging.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Alpha:   DefaultAlpha,
		Beta:    DefaultBeta,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  nil,
		err:     nil,
	}
}

// WithAlpha overrides the crossover divisor. Must be positive.
func WithAlpha(a int) Option {
	return func(o *Options) {
		if a <= 0 {
			o.err = fmt.Errorf("%w: Alpha must be positive (%d)", ErrOptionViolation, a)
			return
		}
		o.Alpha = a
	}
}

// WithBeta overrides the bottom-up exit divisor. Must be positive.
func WithBeta(b int) Option {
	return func(o *Options) {
		if b <= 0 {
			o.err = fmt.Errorf("%w: Beta must be positive (%d)", ErrOptionViolation, b)
			return
		}
		o.Beta = b
	}
}

// WithWorkers fixes the executor pool size. Must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithContext sets a custom context; cancellation is observed at chunk
// granularity inside parallel regions.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger enables per-step debug logging on l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of one traversal.
//
// Parent has one entry per vertex: res.Parent[v] >= 0 is the id of the
// vertex that first claimed v (the source claims itself); a negative
// value means v was never reached and still carries its initialization
// (-outdegree(v), or -1 for sinks).
type Result struct {
	Parent []csr.NodeID
}

// Reached reports whether v was claimed by the traversal.
func (r *Result) Reached(v csr.NodeID) bool { return r.Parent[v] >= 0 }

// TreeSize returns the number of vertices in the BFS tree, source included.
func (r *Result) TreeSize() int {
	size := 0
	for _, p := range r.Parent {
		if p >= 0 {
			size++
		}
	}

	return size
}
