// Package degeneracy computes a degeneracy ordering of an undirected
// csr.Graph by iterative minimum-degree peeling, and orients the graph
// into a DAG along that order.
//
// What
//
//   - Order: repeatedly extract a vertex of minimum residual degree using
//     an indexed binary heap with decrease-key, assigning ranks in removal
//     order (rank 0 = first removed). Also reports the degeneracy: the
//     largest residual degree ever seen at extraction time.
//   - Orient: rewrite every undirected edge {u,v} as u→v iff
//     rank[u] < rank[v]. The result is acyclic by construction, and every
//     vertex's out-degree is bounded by the degeneracy.
//
// Why
//
//	Clique enumeration explodes on the raw graph but stays tractable on a
//	low-out-degree orientation: each vertex's candidate successors shrink
//	to at most d (the degeneracy), which is tiny for real sparse graphs.
//	Ordering before orienting is what buys kclique its O(m·d^(k-2)) bound.
//
// Determinism and tie-breaking
//
//	When several vertices share the minimum residual degree, the heap
//	yields them in its internal array order, which is seeded by ascending
//	vertex id and evolves only through sift operations. The rule is
//	arbitrary but fixed: the same input always produces the same ranking.
//	(Different valid rankings change which ordering a clique is counted
//	under, never how many cliques are counted.)
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Order:  O((V + E) log V) time — each removal pops once, each edge
//     decrease-keys once; a rescan-for-minimum fallback would be O(V²)
//     and is deliberately not offered.
//   - Orient: O(V + E) time; O(V + E) memory for the new graph.
//
// Usage
//
//	ord, err := degeneracy.Order(g)
//	if err != nil { ... }
//	dag, err := degeneracy.Orient(g, ord)
//	if err != nil { ... }
//	// dag is ready for kclique.Count
package degeneracy
