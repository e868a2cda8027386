package kclique

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crisp/csr"
)

// Count returns the number of distinct k-cliques in a rank-oriented DAG.
// Idempotent and side-effect-free on the graph; see the package
// documentation for the trust contract and the O(m·d^(k-2)) bound.
//
// Returns ErrGraphNil, ErrUndirectedGraph, or ErrOptionViolation.
// k < 2, and any k exceeding the largest clique, yield 0.
func Count(dag *csr.Graph, k int, opts ...Option) (uint64, error) {
	if dag == nil {
		return 0, ErrGraphNil
	}
	o := defaultCountOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if !dag.Directed() {
		return 0, ErrUndirectedGraph
	}

	// Degenerate sizes first: no allocation, no scan.
	if k < 2 || k > dag.NumNodes() {
		return 0, nil
	}
	// Every undirected edge of the source graph is exactly one arc here.
	if k == 2 {
		return uint64(dag.NumEdges()), nil
	}

	n := dag.NumNodes()
	if o.workers == 1 {
		c := newCounter(dag, k)
		var total uint64
		for u := 0; u < n; u++ {
			total += c.seed(csr.NodeID(u))
		}

		return total, nil
	}

	// Parallel seed loop: independent subtrees, per-executor scratch,
	// partial sums reduced at the end.
	var total atomic.Uint64
	var cursor atomic.Int64
	grp := new(errgroup.Group)
	for w := 0; w < o.workers; w++ {
		grp.Go(func() error {
			c := newCounter(dag, k)
			var local uint64
			for {
				u := cursor.Add(1) - 1
				if u >= int64(n) {
					break
				}
				local += c.seed(csr.NodeID(u))
			}
			total.Add(local)

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}

	return total.Load(), nil
}

// counter holds one executor's recursion state.
//
// label[v] == l means v belongs to the depth-l candidate set; every label
// starts (and, between seeds, rests) at k. cand[l] is the reusable
// candidate buffer for depth l.
type counter struct {
	dag   *csr.Graph
	k     int
	label []int32
	cand  [][]csr.NodeID
}

// newCounter allocates scratch for one executor: O(V) labels plus one
// candidate buffer per recursion depth, each bounded by the DAG's max
// out-degree (the degeneracy of the source graph).
func newCounter(dag *csr.Graph, k int) *counter {
	n := dag.NumNodes()
	maxOut := 0
	for u := 0; u < n; u++ {
		if d := dag.OutDegree(csr.NodeID(u)); d > maxOut {
			maxOut = d
		}
	}
	label := make([]int32, n)
	for v := range label {
		label[v] = int32(k)
	}
	cand := make([][]csr.NodeID, k)
	for l := 2; l < k; l++ {
		cand[l] = make([]csr.NodeID, 0, maxOut)
	}

	return &counter{dag: dag, k: k, label: label, cand: cand}
}

// seed explores every clique whose lowest-ranked vertex is u: u's
// successors form the depth-(k-1) candidate set, are relabelled for the
// descent, and restored afterwards so the counter is clean for the next
// seed.
func (c *counter) seed(u csr.NodeID) uint64 {
	succ := c.dag.OutNeighbors(u)
	if len(succ) < c.k-1 {
		return 0 // not enough successors to finish a clique
	}
	for _, v := range succ {
		c.label[v] = int32(c.k - 1)
	}
	total := c.extend(succ, c.k-1)
	for _, v := range succ {
		c.label[v] = int32(c.k)
	}

	return total
}

// extend counts completions of the current partial clique using the
// candidate set cand, whose members are labelled l.
func (c *counter) extend(cand []csr.NodeID, l int) uint64 {
	// Base: each in-set arc closes one clique.
	if l == 2 {
		var cnt uint64
		for _, u := range cand {
			for _, v := range c.dag.OutNeighbors(u) {
				if c.label[v] == 2 {
					cnt++
				}
			}
		}

		return cnt
	}

	var total uint64
	next := c.cand[l][:0]
	for _, u := range cand {
		// restrict to u's successors still in the set, one level down
		next = next[:0]
		for _, v := range c.dag.OutNeighbors(u) {
			if c.label[v] == int32(l) {
				c.label[v] = int32(l - 1)
				next = append(next, v)
			}
		}
		total += c.extend(next, l-1)
		for _, v := range next {
			c.label[v] = int32(l)
		}
	}
	c.cand[l] = next[:0]

	return total
}
