// Package csr defines the vertex/edge types, sentinel errors, and
// functional build options for the compressed-sparse-row graph store.
package csr

import (
	"errors"
	"fmt"
)

// NodeID identifies a vertex by its dense position in [0, NumNodes).
// Identity is purely positional; vertices carry no payload.
type NodeID int32

// Edge is a pair of vertex ids. For undirected builds the pair is
// unordered; for directed builds it reads U→V. Multiplicity is irrelevant:
// Build drops duplicates before assembling the graph.
type Edge struct {
	U, V NodeID
}

// Sentinel errors for graph construction.
var (
	// ErrNegativeNode is returned when an edge references a vertex id < 0.
	ErrNegativeNode = errors.New("csr: negative vertex id")

	// ErrNodeOutOfRange is returned when an edge references a vertex id
	// >= the explicit node count supplied via WithNumNodes.
	ErrNodeOutOfRange = errors.New("csr: vertex id out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("csr: invalid option supplied")
)

// Option configures Build via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Build runs.
type Option func(*buildOptions)

// buildOptions holds the parameters that shape CSR assembly.
type buildOptions struct {
	// directed stores each edge once (U→V) and additionally assembles the
	// transpose for in-neighbor iteration. When false, each edge appears
	// in both endpoints' neighbor lists.
	directed bool

	// numNodes fixes the vertex-id space to [0, numNodes). Zero means
	// "infer from the edge list" (max id + 1).
	numNodes int

	// internal error recorded during option parsing
	err error
}

// defaultBuildOptions returns the baseline configuration:
// undirected, node count inferred from the edge list.
func defaultBuildOptions() buildOptions {
	return buildOptions{directed: false, numNodes: 0, err: nil}
}

// WithDirected stores edges in their given U→V orientation and keeps a
// transpose so InNeighbors remains O(degree).
func WithDirected() Option {
	return func(o *buildOptions) { o.directed = true }
}

// WithNumNodes fixes the vertex-id space to [0, n) instead of inferring it.
// Useful for graphs with trailing isolated vertices.
//
//	n > 0: explicit node count; edges must stay within [0, n)
//	n == 0: infer from the edge list
//	n < 0: invalid option → ErrOptionViolation
func WithNumNodes(n int) Option {
	return func(o *buildOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NumNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.numNodes = n
	}
}
