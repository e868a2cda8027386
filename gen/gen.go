// SPDX-License-Identifier: MIT
// Package: crisp/gen
//
// gen.go — deterministic edge-list constructors for canonical topologies.
//
// Contract (all constructors):
//   • Validate size parameters first; return only sentinel errors, never panic.
//   • Emit edges in a fixed, documented order (csr.Build sorts anyway, but a
//     stable emission order keeps golden tests trivial).
//   • Vertex ids are dense, starting at 0; hubs/corners get the low ids.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/crisp/csr"
)

// Minimum sizes for each topology.
const (
	minPathNodes     = 2 // fewer has no edge
	minCycleNodes    = 3 // smaller rings need loops or multi-edges
	minStarNodes     = 2 // a center plus at least one leaf
	minWheelNodes    = 4 // outer ring of size n-1 must be a valid cycle
	minCompleteNodes = 1
	minGridSide      = 1
)

// ErrTooFewVertices indicates a size parameter below the topology's minimum.
var ErrTooFewVertices = errors.New("gen: parameter too small")

// ErrInvalidEdgeCount indicates a negative requested edge count.
var ErrInvalidEdgeCount = errors.New("gen: edge count out of range")

// Path returns the edge list of a simple path 0–1–…–(n-1).
// Degeneracy 1, no cycles. Requires n ≥ 2.
func Path(n int) ([]csr.Edge, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	edges := make([]csr.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, csr.Edge{U: csr.NodeID(i), V: csr.NodeID(i + 1)})
	}

	return edges, nil
}

// Cycle returns the edge list of the ring 0–1–…–(n-1)–0. Requires n ≥ 3.
func Cycle(n int) ([]csr.Edge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([]csr.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, csr.Edge{U: csr.NodeID(i), V: csr.NodeID((i + 1) % n)})
	}

	return edges, nil
}

// Star returns the edge list of a star: center 0 joined to leaves 1..n-1.
// Degeneracy 1, no triangles. Requires n ≥ 2.
func Star(n int) ([]csr.Edge, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	edges := make([]csr.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, csr.Edge{U: 0, V: csr.NodeID(i)})
	}

	return edges, nil
}

// Wheel returns the edge list of Wₙ: hub 0 joined to every vertex of the
// ring 1–2–…–(n-1)–1. Exactly n-1 triangles and no 4-clique (for n ≥ 6).
// Requires n ≥ 4.
func Wheel(n int) ([]csr.Edge, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}
	ring := n - 1
	edges := make([]csr.Edge, 0, 2*ring)
	for i := 1; i <= ring; i++ {
		next := i%ring + 1 // ring wraps 1..ring
		edges = append(edges, csr.Edge{U: csr.NodeID(i), V: csr.NodeID(next)})
	}
	for i := 1; i <= ring; i++ {
		edges = append(edges, csr.Edge{U: 0, V: csr.NodeID(i)})
	}

	return edges, nil
}

// Complete returns the edge list of Kₙ: every unordered pair once.
// Degeneracy n-1; C(n,k) cliques of size k. Requires n ≥ 1.
func Complete(n int) ([]csr.Edge, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	edges := make([]csr.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, csr.Edge{U: csr.NodeID(i), V: csr.NodeID(j)})
		}
	}

	return edges, nil
}

// Grid returns the edge list of a rows×cols lattice; vertex (r,c) has id
// r*cols+c, joined to its right and down neighbors. Bipartite, so it has
// no triangle; BFS depth from a corner equals Manhattan distance.
// Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int) ([]csr.Edge, error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("Grid: %dx%d below min side %d: %w", rows, cols, minGridSide, ErrTooFewVertices)
	}
	edges := make([]csr.Edge, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := csr.NodeID(r*cols + c)
			if c+1 < cols {
				edges = append(edges, csr.Edge{U: id, V: id + 1})
			}
			if r+1 < rows {
				edges = append(edges, csr.Edge{U: id, V: id + csr.NodeID(cols)})
			}
		}
	}

	return edges, nil
}

// RandomSparse returns m uniformly sampled non-loop edges over n vertices,
// reproducible for a fixed seed. Collisions are not rejected: the list may
// contain duplicates, which csr.Build drops — the resulting graph can
// carry fewer than m distinct edges. Requires n ≥ 2 and m ≥ 0.
func RandomSparse(n, m int, seed int64) ([]csr.Edge, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	if m < 0 {
		return nil, fmt.Errorf("RandomSparse: m=%d: %w", m, ErrInvalidEdgeCount)
	}
	rng := rand.New(rand.NewSource(seed))
	edges := make([]csr.Edge, 0, m)
	for len(edges) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, csr.Edge{U: csr.NodeID(u), V: csr.NodeID(v)})
	}

	return edges, nil
}
