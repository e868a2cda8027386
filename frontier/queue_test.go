package frontier_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crisp/csr"
	"github.com/katalvlaran/crisp/frontier"
)

// TestSlidingQueue_WindowSemantics verifies that each Slide exposes
// exactly the elements appended since the previous Slide.
func TestSlidingQueue_WindowSemantics(t *testing.T) {
	q := frontier.NewSlidingQueue(16)
	require.True(t, q.Empty(), "fresh queue should have an empty window")

	// generation 1
	q.PushBack(3)
	q.PushBack(5)
	require.True(t, q.Empty(), "pushes are invisible until Slide")
	q.Slide()
	require.Equal(t, []csr.NodeID{3, 5}, q.Window())
	require.Equal(t, 2, q.Size())

	// generation 2
	q.PushBack(7)
	q.Slide()
	require.Equal(t, []csr.NodeID{7}, q.Window())

	// generation 3: nothing appended → empty window terminates consumers
	q.Slide()
	require.True(t, q.Empty())
	require.Empty(t, q.Window())
}

// TestBuffer_FlushMergesIntoQueue checks single-buffer staging, including
// the automatic flush when the buffer bound is hit.
func TestBuffer_FlushMergesIntoQueue(t *testing.T) {
	const total = frontier.DefaultBufferSize + 10 // force one auto-flush
	q := frontier.NewSlidingQueue(total)
	buf := frontier.NewBuffer(q)

	for v := 0; v < total; v++ {
		buf.Push(csr.NodeID(v))
	}
	buf.Flush()
	buf.Flush() // empty flush is a no-op
	q.Slide()

	require.Equal(t, total, q.Size())
	got := append([]csr.NodeID(nil), q.Window()...)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for v := 0; v < total; v++ {
		require.Equal(t, csr.NodeID(v), got[v])
	}
}

// TestBuffer_ConcurrentFlush runs many executors, each staging through its
// own Buffer, and asserts the shared queue ends up with every element
// exactly once — the multiset union of all buffers.
func TestBuffer_ConcurrentFlush(t *testing.T) {
	const (
		executors = 8
		perExec   = 5000
	)
	q := frontier.NewSlidingQueue(executors * perExec)

	var wg sync.WaitGroup
	wg.Add(executors)
	for e := 0; e < executors; e++ {
		go func(base int) {
			defer wg.Done()
			buf := frontier.NewBuffer(q)
			for i := 0; i < perExec; i++ {
				buf.Push(csr.NodeID(base + i))
			}
			buf.Flush()
		}(e * perExec)
	}
	wg.Wait()
	q.Slide()

	require.Equal(t, executors*perExec, q.Size())
	seen := make(map[csr.NodeID]int, executors*perExec)
	for _, v := range q.Window() {
		seen[v]++
	}
	for v := 0; v < executors*perExec; v++ {
		require.Equal(t, 1, seen[csr.NodeID(v)], "element %d", v)
	}
}
