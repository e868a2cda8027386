package degeneracy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crisp/csr"
	"github.com/katalvlaran/crisp/degeneracy"
	"github.com/katalvlaran/crisp/gen"
)

// mustBuild assembles an undirected graph or fails the test.
func mustBuild(t *testing.T, edges []csr.Edge, opts ...csr.Option) *csr.Graph {
	t.Helper()
	g, err := csr.Build(edges, opts...)
	require.NoError(t, err)

	return g
}

// requirePermutation asserts rank is a bijection [0,N) → [0,N).
func requirePermutation(t *testing.T, rank []csr.NodeID) {
	t.Helper()
	seen := make([]bool, len(rank))
	for v, r := range rank {
		require.True(t, r >= 0 && int(r) < len(rank), "rank[%d] = %d out of range", v, r)
		require.False(t, seen[r], "rank %d assigned twice", r)
		seen[r] = true
	}
}

// TestOrder_Errors verifies nil and directed graphs are rejected.
func TestOrder_Errors(t *testing.T) {
	_, err := degeneracy.Order(nil)
	require.ErrorIs(t, err, degeneracy.ErrGraphNil)

	dg := mustBuild(t, []csr.Edge{{U: 0, V: 1}}, csr.WithDirected())
	_, err = degeneracy.Order(dg)
	require.ErrorIs(t, err, degeneracy.ErrDirectedGraph)
}

// TestOrder_KnownDegeneracies pins the degeneracy of shapes where the
// value is textbook-known.
func TestOrder_KnownDegeneracies(t *testing.T) {
	cases := []struct {
		name  string
		edges func() ([]csr.Edge, error)
		want  int
	}{
		{"path", func() ([]csr.Edge, error) { return gen.Path(10) }, 1},
		{"star", func() ([]csr.Edge, error) { return gen.Star(12) }, 1},
		{"cycle", func() ([]csr.Edge, error) { return gen.Cycle(9) }, 2},
		{"triangle", func() ([]csr.Edge, error) { return gen.Complete(3) }, 2},
		{"wheel", func() ([]csr.Edge, error) { return gen.Wheel(7) }, 3},
		{"complete6", func() ([]csr.Edge, error) { return gen.Complete(6) }, 5},
		{"grid", func() ([]csr.Edge, error) { return gen.Grid(5, 8) }, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := tc.edges()
			require.NoError(t, err)
			g := mustBuild(t, edges)

			ord, err := degeneracy.Order(g)
			require.NoError(t, err)
			require.Equal(t, tc.want, ord.Degeneracy)
			requirePermutation(t, ord.Rank)
		})
	}
}

// TestOrder_Deterministic runs the peeling twice and expects identical
// rankings: the tie-break is fixed for a fixed input.
func TestOrder_Deterministic(t *testing.T) {
	edges, err := gen.RandomSparse(500, 2000, 11)
	require.NoError(t, err)
	g := mustBuild(t, edges)

	a, err := degeneracy.Order(g)
	require.NoError(t, err)
	b, err := degeneracy.Order(g)
	require.NoError(t, err)
	require.Equal(t, a.Rank, b.Rank)
	require.Equal(t, a.Degeneracy, b.Degeneracy)
}

// TestOrder_EmptyAndIsolated covers graphs with no edges at all.
func TestOrder_EmptyAndIsolated(t *testing.T) {
	g := mustBuild(t, nil, csr.WithNumNodes(4))
	ord, err := degeneracy.Order(g)
	require.NoError(t, err)
	require.Equal(t, 0, ord.Degeneracy)
	requirePermutation(t, ord.Rank)
}

// TestOrient_Properties checks acyclicity (every edge ascends in rank),
// the out-degree bound, and the halved edge count.
func TestOrient_Properties(t *testing.T) {
	shapes := map[string]func() ([]csr.Edge, error){
		"wheel":    func() ([]csr.Edge, error) { return gen.Wheel(9) },
		"complete": func() ([]csr.Edge, error) { return gen.Complete(8) },
		"grid":     func() ([]csr.Edge, error) { return gen.Grid(6, 6) },
		"random":   func() ([]csr.Edge, error) { return gen.RandomSparse(400, 1600, 5) },
	}
	for name, mk := range shapes {
		t.Run(name, func(t *testing.T) {
			edges, err := mk()
			require.NoError(t, err)
			g := mustBuild(t, edges)

			ord, err := degeneracy.Order(g)
			require.NoError(t, err)
			dag, err := degeneracy.Orient(g, ord)
			require.NoError(t, err)

			require.True(t, dag.Directed())
			require.Equal(t, g.NumEdges()/2, dag.NumEdges(), "one arc per undirected edge")

			maxOut := 0
			for u := csr.NodeID(0); int(u) < dag.NumNodes(); u++ {
				if d := dag.OutDegree(u); d > maxOut {
					maxOut = d
				}
				for _, v := range dag.OutNeighbors(u) {
					require.Less(t, ord.Rank[u], ord.Rank[v], "edge %d→%d descends in rank", u, v)
				}
			}
			// the bound is tight: max out-degree IS the degeneracy
			require.Equal(t, ord.Degeneracy, maxOut)
		})
	}
}

// TestOrient_Errors verifies ranking validation.
func TestOrient_Errors(t *testing.T) {
	g := mustBuild(t, []csr.Edge{{U: 0, V: 1}, {U: 1, V: 2}})

	_, err := degeneracy.Orient(nil, &degeneracy.Ordering{})
	require.ErrorIs(t, err, degeneracy.ErrGraphNil)

	dg := mustBuild(t, []csr.Edge{{U: 0, V: 1}}, csr.WithDirected())
	_, err = degeneracy.Orient(dg, &degeneracy.Ordering{Rank: []csr.NodeID{0, 1}})
	require.ErrorIs(t, err, degeneracy.ErrDirectedGraph)

	// nil and wrong-length orderings
	_, err = degeneracy.Orient(g, nil)
	require.ErrorIs(t, err, degeneracy.ErrBadRanking)
	_, err = degeneracy.Orient(g, &degeneracy.Ordering{Rank: []csr.NodeID{0, 1}})
	require.ErrorIs(t, err, degeneracy.ErrBadRanking)

	// repeated rank
	_, err = degeneracy.Orient(g, &degeneracy.Ordering{Rank: []csr.NodeID{0, 1, 1}})
	require.ErrorIs(t, err, degeneracy.ErrBadRanking)

	// out-of-range rank
	_, err = degeneracy.Orient(g, &degeneracy.Ordering{Rank: []csr.NodeID{0, 1, 5}})
	require.ErrorIs(t, err, degeneracy.ErrBadRanking)
}
