// SPDX-License-Identifier: MIT
// Package: crisp/gen
//
// Package gen provides deterministic edge-list generators for canonical
// topologies — Path, Cycle, Star, Wheel, Complete, Grid and RandomSparse —
// emitting []csr.Edge ready for csr.Build.
//
// What
//
//   - Each generator returns a plain edge list over dense ids [0, n);
//     feeding it to csr.Build (with or without WithDirected) is the
//     caller's choice.
//   - Shapes with well-known analytic properties: a Path has degeneracy 1,
//     Complete(n) has degeneracy n-1 and C(n,k) k-cliques, a Wheel has
//     exactly n-1 triangles, a Grid has no odd cycle at all.
//
// Why
//
//	Tests, examples and benchmarks across crisp need graphs whose BFS
//	depths, degeneracy and clique counts are known in closed form.
//	Generating edge lists (rather than graphs) keeps the generators
//	decoupled from build options.
//
// Determinism
//
//	All generators are fully deterministic; RandomSparse takes an explicit
//	seed and uses its own rand.Rand, never the global source.
//
// Error policy
//
//	Only sentinel errors (ErrTooFewVertices, ErrInvalidEdgeCount);
//	callers branch with errors.Is. Generators never panic at runtime.
package gen
