// Package kclique counts k-vertex cliques in a rank-oriented DAG by
// recursive successor-set intersection.
//
// What
//
//   - Count: given a DAG produced by degeneracy.Orient and a target size
//     k, return the number of distinct k-cliques. Counting only — no
//     clique is ever materialized for the caller.
//   - k < 2 and k beyond the largest clique are valid inputs yielding 0.
//   - k == 2 short-circuits to the DAG's edge count: each undirected edge
//     of the original graph became exactly one arc.
//
// Why
//
//	Because every edge points from lower to higher rank, a clique's
//	vertices are explored in exactly one order — its ranked order — so
//	no clique is counted twice and no pair is ever revisited reversed.
//	With out-degrees bounded by the degeneracy d, the recursion does
//	O(m·d^(k-2)) work, which is the entire reason the orientation stage
//	exists. Running the same recursion on an unoriented graph would
//	forfeit both the bound and the once-per-clique guarantee.
//
// How
//
//	A label array tracks membership of the shrinking candidate set: a
//	vertex labelled l belongs to the depth-l candidate set. Each
//	recursion step picks a candidate u, relabels u's in-set successors
//	from l to l-1, descends, then restores the labels. At depth 2 the
//	count is the number of arcs with both endpoints still in the set.
//	Scratch buffers are reused per depth, so a serial count allocates
//	O(V + k·d) once.
//
// Trust
//
//	Count assumes its input is acyclic and rank-oriented. It does not
//	verify this, since verification would cost more than the bound it
//	protects. Feeding an arbitrary directed graph yields an undefined
//	count.
//
// Parallelism
//
//	The seed loop commutes: every top-level vertex explores an
//	independent subtree. WithWorkers(p) distributes seeds over p
//	executors with per-executor scratch state and a final partial-sum
//	reduction; the count is identical to the serial one. Default is
//	serial.
//
// Usage
//
//	ord, _ := degeneracy.Order(g)
//	dag, _ := degeneracy.Orient(g, ord)
//	triangles, err := kclique.Count(dag, 3)
package kclique
