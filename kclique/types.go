// Package kclique defines options and sentinel errors for clique counting.
package kclique

import (
	"errors"
	"fmt"
)

// Sentinel errors for clique counting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("kclique: graph is nil")

	// ErrUndirectedGraph is returned when the input graph carries no
	// orientation; Count requires a rank-oriented DAG.
	ErrUndirectedGraph = errors.New("kclique: undirected graphs not supported, orient first")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kclique: invalid option supplied")
)

// Option configures Count via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Count runs.
type Option func(*countOptions)

// countOptions holds the parameters of one counting run.
type countOptions struct {
	// workers sizes the executor pool for the seed loop; 1 means serial.
	workers int

	// internal error recorded during option parsing
	err error
}

// defaultCountOptions returns the baseline configuration: serial.
func defaultCountOptions() countOptions {
	return countOptions{workers: 1, err: nil}
}

// WithWorkers distributes the top-level seed loop over n executors, each
// with its own scratch state; partial counts are summed at the end.
// The result is identical to the serial count. Must be positive.
func WithWorkers(n int) Option {
	return func(o *countOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}
