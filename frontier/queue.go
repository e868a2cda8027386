package frontier

import (
	"sync/atomic"

	"github.com/katalvlaran/crisp/csr"
)

// DefaultBufferSize bounds a thread-local Buffer between flushes.
// Large enough to amortize the shared fetch-and-add, small enough to keep
// per-executor memory negligible.
const DefaultBufferSize = 1024

// SlidingQueue is a two-generation concurrent work queue.
//
// Elements are appended past the current window (directly via PushBack,
// or in bulk via Buffer.Flush). Slide advances the window boundary so a
// subsequent Window call sees exactly the elements appended since the
// previous Slide. Elements behind the boundary are inert: the queue never
// revisits or reclaims them, which is what makes concurrent bulk appends
// safe with a single reservation counter.
type SlidingQueue struct {
	shared      []csr.NodeID
	in          atomic.Int64 // next free slot; advanced by reserve
	windowStart int
	windowEnd   int
}

// NewSlidingQueue creates a queue able to hold capacity elements over its
// whole lifetime. Sizing at one slot per vertex suffices for traversals
// that claim each vertex at most once.
func NewSlidingQueue(capacity int) *SlidingQueue {
	return &SlidingQueue{shared: make([]csr.NodeID, capacity)}
}

// PushBack appends v past the current window. Safe for concurrent use,
// but per-element reservation makes it the slow path — executors should
// stage through a Buffer instead.
func (q *SlidingQueue) PushBack(v csr.NodeID) {
	q.shared[q.reserve(1)] = v
}

// reserve claims a contiguous range of k slots and returns its start.
// One atomic add regardless of k.
func (q *SlidingQueue) reserve(k int) int {
	return int(q.in.Add(int64(k))) - k
}

// Slide advances the window boundary: the next Window exposes exactly the
// elements appended since the previous Slide. Must only be called between
// parallel regions, after all buffers have flushed.
func (q *SlidingQueue) Slide() {
	q.windowStart = q.windowEnd
	q.windowEnd = int(q.in.Load())
}

// Window returns the current generation [begin, end) as a subslice.
// Read-only; valid until the next Slide.
func (q *SlidingQueue) Window() []csr.NodeID {
	return q.shared[q.windowStart:q.windowEnd]
}

// Size returns the number of elements in the current window.
func (q *SlidingQueue) Size() int { return q.windowEnd - q.windowStart }

// Empty reports whether the current window holds no elements.
func (q *SlidingQueue) Empty() bool { return q.windowStart == q.windowEnd }

// Buffer is a bounded thread-local staging area for one executor.
// Push appends locally and self-flushes when the bound is reached; Flush
// merges the buffered elements into the shared queue with one atomic
// reservation followed by an unsynchronized copy into the claimed range.
type Buffer struct {
	queue *SlidingQueue
	local []csr.NodeID
}

// NewBuffer creates a Buffer bound to q with the default capacity.
func NewBuffer(q *SlidingQueue) *Buffer {
	return &Buffer{queue: q, local: make([]csr.NodeID, 0, DefaultBufferSize)}
}

// Push stages v locally, flushing first if the buffer is full.
func (b *Buffer) Push(v csr.NodeID) {
	if len(b.local) == cap(b.local) {
		b.Flush()
	}
	b.local = append(b.local, v)
}

// Flush drains the buffer into the shared queue. A no-op when empty.
func (b *Buffer) Flush() {
	if len(b.local) == 0 {
		return
	}
	start := b.queue.reserve(len(b.local))
	copy(b.queue.shared[start:], b.local)
	b.local = b.local[:0]
}
