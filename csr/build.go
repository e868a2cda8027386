package csr

import (
	"fmt"
	"slices"
)

// Build assembles an immutable CSR Graph from an edge list.
//
// Semantics:
//
//   - Undirected (default): every edge {U,V} appears in both endpoints'
//     neighbor lists.
//   - Directed (WithDirected): every edge is stored as U→V, and the
//     transpose is assembled so InNeighbors stays O(degree).
//   - Self-loops are dropped. Duplicate edges are dropped, so input
//     multiplicity can never skew degrees or double-count cliques.
//   - Neighbor lists come out sorted by ascending NodeID, making
//     iteration order independent of the input edge order.
//
// Returns ErrNegativeNode or ErrNodeOutOfRange for invalid vertex ids,
// or ErrOptionViolation for a bad option.
//
// Complexity: O(V + E log E) time, O(V + E) memory.
func Build(edges []Edge, opts ...Option) (*Graph, error) {
	// 1) Build and validate options.
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate vertex ids and settle the node count.
	n := o.numNodes
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("%w: edge %d-%d", ErrNegativeNode, e.U, e.V)
		}
		if o.numNodes > 0 && (int(e.U) >= o.numNodes || int(e.V) >= o.numNodes) {
			return nil, fmt.Errorf("%w: edge %d-%d vs N=%d", ErrNodeOutOfRange, e.U, e.V, o.numNodes)
		}
		if o.numNodes == 0 {
			if int(e.U)+1 > n {
				n = int(e.U) + 1
			}
			if int(e.V)+1 > n {
				n = int(e.V) + 1
			}
		}
	}

	// 3) Degree-count pass (self-loops excluded), then prefix-sum into offsets.
	off := make([]int, n+1)
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		off[e.U+1]++
		if !o.directed {
			off[e.V+1]++
		}
	}
	for u := 1; u <= n; u++ {
		off[u] += off[u-1]
	}

	// 4) Fill pass: scatter endpoints using a moving cursor per vertex.
	adj := make([]NodeID, off[n])
	cur := make([]int, n)
	copy(cur, off[:n])
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		adj[cur[e.U]] = e.V
		cur[e.U]++
		if !o.directed {
			adj[cur[e.V]] = e.U
			cur[e.V]++
		}
	}

	// 5) Sort each neighbor list, then compact duplicates in place.
	//    The write cursor never overtakes the read cursor, so one array
	//    serves both roles.
	newOff := make([]int, n+1)
	w := 0
	for u := 0; u < n; u++ {
		seg := adj[off[u]:off[u+1]]
		slices.Sort(seg)
		for i, v := range seg {
			if i > 0 && v == seg[i-1] {
				continue
			}
			adj[w] = v
			w++
		}
		newOff[u+1] = w
	}
	adj = adj[:w]

	g := &Graph{directed: o.directed, outOff: newOff, outAdj: adj}

	// 6) Undirected adjacency is symmetric: share it for both directions.
	//    Directed graphs get a proper transpose.
	if !o.directed {
		g.inOff, g.inAdj = g.outOff, g.outAdj
		return g, nil
	}
	g.inOff, g.inAdj = transpose(n, newOff, adj)

	return g, nil
}

// transpose assembles the in-neighbor CSR from a deduplicated out-neighbor
// CSR. Scanning sources in ascending order keeps every in-list sorted
// without a second sort pass.
func transpose(n int, outOff []int, outAdj []NodeID) (inOff []int, inAdj []NodeID) {
	inOff = make([]int, n+1)
	for _, v := range outAdj {
		inOff[v+1]++
	}
	for v := 1; v <= n; v++ {
		inOff[v] += inOff[v-1]
	}
	inAdj = make([]NodeID, len(outAdj))
	cur := make([]int, n)
	copy(cur, inOff[:n])
	for u := 0; u < n; u++ {
		for _, v := range outAdj[outOff[u]:outOff[u+1]] {
			inAdj[cur[v]] = NodeID(u)
			cur[v]++
		}
	}

	return inOff, inAdj
}
