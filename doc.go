// Package crisp is an in-memory toolkit for analyzing large sparse graphs
// held in a compact compressed-sparse-row representation.
//
// 🚀 What is crisp?
//
//	A library of high-performance graph-analytics kernels that brings together:
//		• csr/        — immutable CSR graph store: O(1) degrees, zero-alloc neighbor slices
//		• frontier/   — concurrent traversal primitives: atomic bitmap, sliding queue, thread-local buffers
//		• dobfs/      — direction-optimizing parallel BFS with an independent serial verifier
//		• degeneracy/ — min-degree peeling order (decrease-key heap) and rank-based DAG orientation
//		• kclique/    — k-clique counting over the oriented DAG, O(m·d^(k-2)) work
//		• gen/        — deterministic edge-list generators for tests, examples and benchmarks
//
// ✨ Why choose crisp?
//
//   - Tight data model – dense integer vertex ids, flat arrays, no per-call allocation
//   - Predictable concurrency – fork-join parallel regions, single-assignment CAS claims
//   - Tunable, never global – alpha/beta and worker counts are per-call functional options
//   - Verifiable – every parallel result can be re-checked against a serial reference
//
// Data flows in one direction:
//
//	edges → csr.Build → Graph ─┬─→ dobfs.Run → parent array
//	                           └─→ degeneracy.Order → Orient → kclique.Count
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	a 4-vertex diamond: two triangles {0,1,2} and {0,2,3}, degeneracy 2.
//
// Dive into the per-package documentation for contracts, complexity notes,
// and worked examples.
//
//	go get github.com/katalvlaran/crisp
package crisp
