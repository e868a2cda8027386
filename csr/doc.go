// Package csr provides an immutable compressed-sparse-row graph store,
// the shared foundation consumed by every analytics kernel in crisp.
//
// What
//
//   - Graph: vertex-indexed offset array plus a flat neighbor array, for
//     out-neighbors and (in directed graphs) in-neighbors.
//   - Dense integer vertex ids (NodeID) in [0, NumNodes).
//   - O(1) degree lookup; O(degree) neighbor iteration returning a
//     subslice of the backing array — no allocation per call.
//   - Build: counting-sort assembly from an edge list, with neighbor lists
//     sorted ascending, duplicate edges and self-loops dropped.
//
// Why
//
//	Adjacency maps are flexible but cache-hostile. Traversal and clique
//	kernels touch millions of edges per run; a flat CSR layout keeps the
//	neighbor scan sequential in memory and makes degrees a single array
//	read. All kernels in crisp assume this contract.
//
// Immutability
//
//	A Graph is never mutated after Build returns. Accessors are therefore
//	safe for concurrent use without synchronization, and the neighbor
//	subslices they return must be treated as read-only by callers.
//
// Determinism
//
//	Neighbor lists are sorted by ascending NodeID, so iteration order is
//	stable and reproducible for a fixed input edge list regardless of the
//	order edges were supplied in.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Build:         O(V + E log E)  (counting sort + per-list sort/dedup)
//   - OutDegree:     O(1)
//   - OutNeighbors:  O(1) to obtain the slice, O(degree) to scan
//   - Memory:        O(V + E), doubled for directed graphs (transpose kept)
//
// Usage
//
//	g, err := csr.Build([]csr.Edge{{0, 1}, {1, 2}, {2, 0}})
//	if err != nil { ... }
//	for _, v := range g.OutNeighbors(0) {
//	    // v ∈ {1, 2}
//	}
package csr
