package degeneracy

import "github.com/katalvlaran/crisp/csr"

// degreeHeap is an array-backed binary min-heap over vertex ids keyed by
// residual degree, with a position index so a neighbor's key can be
// decremented in place in O(log N). container/heap is not used: the
// interface hides positions, forcing the lazy duplicate-entry workaround,
// while peeling wants the true decrease-key.
//
// Tie-break: equal keys are served in whatever order the sift operations
// left them; the heap is seeded with vertices in ascending id order, so
// the result is deterministic for a fixed input.
type degreeHeap struct {
	key  []int        // key[v] = current residual degree of v
	heap []csr.NodeID // binary heap of vertex ids, min key at the root
	pos  []int        // pos[v] = index of v in heap, posRemoved once extracted
}

// posRemoved marks a vertex no longer present in the heap.
const posRemoved = -1

// newDegreeHeap builds a heap over vertices 0..len(keys)-1 with the given
// initial keys, in O(N) by Floyd's heapify.
func newDegreeHeap(keys []int) *degreeHeap {
	n := len(keys)
	h := &degreeHeap{
		key:  keys,
		heap: make([]csr.NodeID, n),
		pos:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		h.heap[v] = csr.NodeID(v)
		h.pos[v] = v
	}
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// len returns the number of vertices still in the heap.
func (h *degreeHeap) len() int { return len(h.heap) }

// popMin extracts the vertex with minimum residual degree and its key.
func (h *degreeHeap) popMin() (csr.NodeID, int) {
	v := h.heap[0]
	k := h.key[v]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	h.pos[v] = posRemoved
	if last > 0 {
		h.siftDown(0)
	}

	return v, k
}

// decrease decrements v's key and restores heap order. A no-op when v has
// already been extracted, which lets the caller skip its own bookkeeping.
func (h *degreeHeap) decrease(v csr.NodeID) {
	if h.pos[v] == posRemoved {
		return
	}
	h.key[v]--
	h.siftUp(h.pos[v])
}

func (h *degreeHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i]] = i
	h.pos[h.heap[j]] = j
}

func (h *degreeHeap) less(i, j int) bool {
	return h.key[h.heap[i]] < h.key[h.heap[j]]
}

func (h *degreeHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *degreeHeap) siftDown(i int) {
	n := len(h.heap)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
