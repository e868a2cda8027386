package dobfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/crisp/csr"
)

// ErrVerifyFailed is returned when a parent array contradicts an
// independent serial traversal of the graph.
var ErrVerifyFailed = errors.New("dobfs: verification failed")

// Verify re-checks a parent array against g with a serial BFS from source.
// It asserts, independently of how the array was produced:
//
//   - parent[source] == source, at depth 0;
//   - every claimed vertex's parent is a true graph neighbor (an
//     in-neighbor for directed graphs);
//   - a parent's depth is exactly one less than its child's;
//   - the claimed set equals the serially reachable set, both ways.
//
// Any valid BFS tree passes: Verify does not require the same parent
// choices as the run that produced the array, only a consistent tree.
//
// Complexity: O(V + E) time, O(V) memory.
func Verify(g *csr.Graph, source csr.NodeID, parent []csr.NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasNode(source) {
		return ErrSourceOutOfRange
	}
	if len(parent) != g.NumNodes() {
		return fmt.Errorf("%w: parent array has %d entries for %d vertices",
			ErrVerifyFailed, len(parent), g.NumNodes())
	}

	// Reference depths by serial BFS.
	depth := make([]int, g.NumNodes())
	for i := range depth {
		depth[i] = -1
	}
	depth[source] = 0
	toVisit := make([]csr.NodeID, 0, g.NumNodes())
	toVisit = append(toVisit, source)
	for i := 0; i < len(toVisit); i++ {
		u := toVisit[i]
		for _, v := range g.OutNeighbors(u) {
			if depth[v] == -1 {
				depth[v] = depth[u] + 1
				toVisit = append(toVisit, v)
			}
		}
	}

	for u := csr.NodeID(0); int(u) < g.NumNodes(); u++ {
		claimed, reachable := parent[u] >= 0, depth[u] != -1
		switch {
		case claimed && !reachable:
			return fmt.Errorf("%w: vertex %d claimed (parent %d) but unreachable from %d",
				ErrVerifyFailed, u, parent[u], source)
		case !claimed && reachable:
			return fmt.Errorf("%w: vertex %d reachable at depth %d but never claimed",
				ErrVerifyFailed, u, depth[u])
		case !claimed:
			continue
		}

		if u == source {
			if parent[u] != u {
				return fmt.Errorf("%w: source parent is %d, want self", ErrVerifyFailed, parent[u])
			}
			continue
		}
		// The recorded parent must supply an actual edge parent→u.
		if !slices.Contains(g.InNeighbors(u), parent[u]) {
			return fmt.Errorf("%w: no edge from %d to %d", ErrVerifyFailed, parent[u], u)
		}
		if depth[parent[u]] != depth[u]-1 {
			return fmt.Errorf("%w: vertex %d at depth %d has parent %d at depth %d",
				ErrVerifyFailed, u, depth[u], parent[u], depth[parent[u]])
		}
	}

	return nil
}
