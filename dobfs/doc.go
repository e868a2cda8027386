// Package dobfs implements direction-optimizing breadth-first search over
// a csr.Graph, returning the parent array of the traversal tree.
//
// What
//
//   - Run: parallel BFS from a source vertex that adaptively switches
//     between top-down frontier expansion and bottom-up frontier
//     discovery to minimize total edge examinations.
//   - Result: one parent entry per vertex. Claimed vertices hold the id
//     of the vertex that first claimed them (the source claims itself);
//     unreached vertices keep their negative initialization.
//   - Verify: an independent serial re-check of a parent array against
//     the graph, for tests and distrustful callers.
//
// Why
//
//	Plain top-down BFS examines every edge leaving the frontier. On
//	low-diameter graphs the frontier quickly covers most vertices, and it
//	becomes cheaper to flip the scan: let each undiscovered vertex look
//	for any parent already in the frontier and stop at the first hit.
//	Switching directions at the right moment routinely saves an order of
//	magnitude of edge examinations on social-network-like inputs.
//
// Encoding
//
//	The parent array doubles as the unvisited-degree table. Before the
//	traversal, parent[v] = -outdegree(v) (or -1 when v has no out-edges);
//	a top-down claim therefore learns the newly claimed vertex's degree
//	from the magnitude of the value it swapped out, with no extra lookup.
//	Each entry flips from negative to non-negative exactly once — a
//	single-assignment cell resolved by compare-and-swap under contention.
//	A failed CAS means another executor claimed the vertex first; it is
//	never retried.
//
// Heuristic
//
//	scout counts edges about to be explored top-down; edgesToCheck counts
//	directed edges not yet examined. When scout > edgesToCheck/alpha the
//	engine converts the queue window into a bitmap and runs bottom-up
//	steps until a step discovers fewer vertices than the one before AND
//	no more than NumNodes/beta, then converts back and resets scout to 1
//	to force re-evaluation. Defaults alpha=15, beta=18, tunable per call.
//
// Concurrency
//
//	Fork-join: each step is one parallel region with an implicit barrier
//	at exit; no cross-step parallelism. Top-down partitions the queue
//	window statically; bottom-up hands out dynamic vertex chunks because
//	per-vertex cost varies with degree. The only state shared within a
//	region is the parent array (CAS) and the frontier bitmap (atomic or
//	word-disjoint set). The traversal always terminates: the reachable
//	remainder strictly shrinks every generation.
//
// Determinism
//
//	The reachable set is exact and stable. The specific parent recorded
//	for a vertex with several valid parents depends on which executor
//	claims it first; that race is benign and by contract.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E) work; direction switching only reduces the
//     constant, never the bound.
//   - Memory: O(V) beyond the graph (parent array, two bitmaps, queue).
//
// Usage
//
//	res, err := dobfs.Run(g, 0)
//	if err != nil { ... }
//	if res.Reached(42) {
//	    fmt.Println("parent of 42:", res.Parent[42])
//	}
//
//	// tuned, cancellable, chatty:
//	res, err = dobfs.Run(g, 0,
//	    dobfs.WithAlpha(4),
//	    dobfs.WithBeta(24),
//	    dobfs.WithWorkers(8),
//	    dobfs.WithContext(ctx),
//	    dobfs.WithLogger(logger),
//	)
package dobfs
