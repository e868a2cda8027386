package kclique_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/crisp/csr"
	"github.com/katalvlaran/crisp/degeneracy"
	"github.com/katalvlaran/crisp/gen"
	"github.com/katalvlaran/crisp/kclique"
)

func benchDAG(b *testing.B, n, m int) *csr.Graph {
	b.Helper()
	edges, err := gen.RandomSparse(n, m, 7)
	if err != nil {
		b.Fatal(err)
	}
	g, err := csr.Build(edges, csr.WithNumNodes(n))
	if err != nil {
		b.Fatal(err)
	}
	ord, err := degeneracy.Order(g)
	if err != nil {
		b.Fatal(err)
	}
	dag, err := degeneracy.Orient(g, ord)
	if err != nil {
		b.Fatal(err)
	}

	return dag
}

func BenchmarkCount_Triangles(b *testing.B) {
	dag := benchDAG(b, 2000, 20000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kclique.Count(dag, 3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCount_K5(b *testing.B) {
	dag := benchDAG(b, 2000, 20000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kclique.Count(dag, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCount_Workers(b *testing.B) {
	dag := benchDAG(b, 2000, 20000)
	for _, w := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := kclique.Count(dag, 4, kclique.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
