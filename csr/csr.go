package csr

// Graph is an immutable compressed-sparse-row graph.
//
// Description:
//
//	A Graph stores, for each vertex u, the half-open range
//	outOff[u] .. outOff[u+1] into the flat outAdj array; the slice between
//	those offsets is u's out-neighbor list, sorted by ascending NodeID.
//	Directed graphs additionally keep the transpose (inOff/inAdj) so that
//	in-neighbor iteration has the same cost profile. Undirected graphs
//	share one symmetric adjacency for both directions.
//
// Invariant: never mutated after Build returns. All methods are safe for
// concurrent use; returned slices alias internal storage and must not be
// written to by callers.
type Graph struct {
	directed bool

	outOff []int
	outAdj []NodeID

	// inOff/inAdj alias outOff/outAdj for undirected graphs.
	inOff []int
	inAdj []NodeID
}

// NumNodes returns the number of vertices N; valid ids are [0, N).
func (g *Graph) NumNodes() int { return len(g.outOff) - 1 }

// NumEdges returns the directed edge count, i.e. the sum of out-degrees.
// For undirected graphs each undirected edge contributes 2.
func (g *Graph) NumEdges() int64 { return int64(g.outOff[g.NumNodes()]) }

// Directed reports whether the graph stores a one-way orientation.
func (g *Graph) Directed() bool { return g.directed }

// OutDegree returns the number of out-neighbors of u in O(1).
func (g *Graph) OutDegree(u NodeID) int { return g.outOff[u+1] - g.outOff[u] }

// InDegree returns the number of in-neighbors of u in O(1).
// Equal to OutDegree for undirected graphs.
func (g *Graph) InDegree(u NodeID) int { return g.inOff[u+1] - g.inOff[u] }

// OutNeighbors returns u's out-neighbor list as a read-only subslice of
// the backing array, sorted ascending. No allocation.
func (g *Graph) OutNeighbors(u NodeID) []NodeID {
	return g.outAdj[g.outOff[u]:g.outOff[u+1]]
}

// InNeighbors returns u's in-neighbor list as a read-only subslice of the
// backing array, sorted ascending. Identical to OutNeighbors for
// undirected graphs. No allocation.
func (g *Graph) InNeighbors(u NodeID) []NodeID {
	return g.inAdj[g.inOff[u]:g.inOff[u+1]]
}

// HasNode reports whether u is a valid vertex id for this graph.
func (g *Graph) HasNode(u NodeID) bool { return u >= 0 && int(u) < g.NumNodes() }
