package degeneracy

import "github.com/katalvlaran/crisp/csr"

// Order computes the degeneracy ordering of an undirected graph by
// min-degree peeling.
//
// Algorithm:
//  1. Seed an indexed min-heap with every vertex keyed by its degree.
//  2. Extract a minimum-degree vertex, assign it the next rank
//     (rank 0 = first removed), and record its residual degree.
//  3. Decrease-key each still-present neighbor.
//  4. Repeat until every vertex is ranked.
//
// The degeneracy reported is the maximum key seen at extraction time.
//
// Returns ErrGraphNil for a nil graph and ErrDirectedGraph for a
// directed one.
//
// Complexity: O((V + E) log V) time, O(V) memory beyond the graph.
func Order(g *csr.Graph) (*Ordering, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	n := g.NumNodes()
	keys := make([]int, n)
	for v := 0; v < n; v++ {
		keys[v] = g.OutDegree(csr.NodeID(v))
	}
	h := newDegreeHeap(keys)

	ord := &Ordering{Rank: make([]csr.NodeID, n)}
	for r := 0; r < n; r++ {
		v, residual := h.popMin()
		if residual > ord.Degeneracy {
			ord.Degeneracy = residual
		}
		ord.Rank[v] = csr.NodeID(r)
		for _, w := range g.OutNeighbors(v) {
			h.decrease(w)
		}
	}

	return ord, nil
}
