package degeneracy_test

import (
	"fmt"

	"github.com/katalvlaran/crisp/csr"
	"github.com/katalvlaran/crisp/degeneracy"
)

// ExampleOrder peels a wheel: the hub survives until the rim thins out,
// and the maximum residual degree at removal is 3.
func ExampleOrder() {
	// Hub 0 plus a five-cycle 1..5.
	edges := []csr.Edge{
		{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 1},
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
	}
	g, _ := csr.Build(edges)

	ord, _ := degeneracy.Order(g)
	fmt.Println("degeneracy:", ord.Degeneracy)
	// Output:
	// degeneracy: 3
}

// ExampleOrient turns a triangle into an acyclic orientation whose max
// out-degree equals the degeneracy.
func ExampleOrient() {
	g, _ := csr.Build([]csr.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})

	ord, _ := degeneracy.Order(g)
	dag, _ := degeneracy.Orient(g, ord)

	maxOut := 0
	for v := 0; v < dag.NumNodes(); v++ {
		if d := dag.OutDegree(csr.NodeID(v)); d > maxOut {
			maxOut = d
		}
	}
	fmt.Println("arcs:", dag.NumEdges())
	fmt.Println("max out-degree:", maxOut)
	fmt.Println("degeneracy:", ord.Degeneracy)
	// Output:
	// arcs: 3
	// max out-degree: 2
	// degeneracy: 2
}
