package dobfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/crisp/csr"
	"github.com/katalvlaran/crisp/dobfs"
	"github.com/katalvlaran/crisp/gen"
)

// benchGraph builds a reproducible sparse graph for the benchmarks.
func benchGraph(b *testing.B, n, m int) *csr.Graph {
	b.Helper()
	edges, err := gen.RandomSparse(n, m, 1)
	if err != nil {
		b.Fatal(err)
	}
	g, err := csr.Build(edges)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkRun_Sparse measures the full adaptive traversal on a random
// sparse graph (avg degree ≈ 8).
func BenchmarkRun_Sparse(b *testing.B) {
	g := benchGraph(b, 100_000, 400_000)

	b.ReportAllocs()
	b.SetBytes(g.NumEdges())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dobfs.Run(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_TopDownOnly pins the heuristic to pure top-down (alpha=1
// keeps the crossover threshold above any possible scout count),
// isolating the classic frontier expansion for comparison.
func BenchmarkRun_TopDownOnly(b *testing.B) {
	g := benchGraph(b, 100_000, 400_000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dobfs.Run(g, 0, dobfs.WithAlpha(1)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Workers sweeps the executor pool size on a fixed graph.
func BenchmarkRun_Workers(b *testing.B) {
	g := benchGraph(b, 100_000, 400_000)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := dobfs.Run(g, 0, dobfs.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
