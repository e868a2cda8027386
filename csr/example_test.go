package csr_test

import (
	"fmt"

	"github.com/katalvlaran/crisp/csr"
)

// ExampleBuild demonstrates assembling an undirected square with one
// diagonal and reading degrees and neighbor lists back out.
func ExampleBuild() {
	//	0───1
	//	│ ╲ │
	//	3───2
	g, err := csr.Build([]csr.Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", g.NumNodes())
	fmt.Println("directed edges:", g.NumEdges())
	fmt.Println("deg(0):", g.OutDegree(0))
	fmt.Println("adj(0):", g.OutNeighbors(0))
	// Output:
	// nodes: 4
	// directed edges: 10
	// deg(0): 3
	// adj(0): [1 2 3]
}

// ExampleBuild_directed shows a one-way orientation with its transpose.
func ExampleBuild_directed() {
	g, err := csr.Build([]csr.Edge{{0, 1}, {0, 2}, {2, 1}}, csr.WithDirected())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("out(0):", g.OutNeighbors(0))
	fmt.Println("in(1):", g.InNeighbors(1))
	// Output:
	// out(0): [1 2]
	// in(1): [0 2]
}
