// Package degeneracy defines the ordering result type and sentinel errors
// for the peeling and orientation stages.
package degeneracy

import (
	"errors"

	"github.com/katalvlaran/crisp/csr"
)

// Sentinel errors for ordering and orientation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("degeneracy: graph is nil")

	// ErrDirectedGraph is returned when peeling is run on a directed
	// graph; the ordering is defined over undirected neighborhoods.
	ErrDirectedGraph = errors.New("degeneracy: directed graphs not supported")

	// ErrBadRanking is returned by Orient when the supplied ordering does
	// not match the graph or is not a permutation of its vertices.
	ErrBadRanking = errors.New("degeneracy: ranking is not a permutation of the graph's vertices")
)

// Ordering is the outcome of min-degree peeling.
//
// Rank is a permutation of [0, N): Rank[v] is the step at which v was
// removed, 0 first. Degeneracy is the maximum residual degree observed at
// any removal, which equals the smallest d such that every subgraph has a
// vertex of degree ≤ d.
type Ordering struct {
	Rank       []csr.NodeID
	Degeneracy int
}
