// Package frontier provides the concurrent frontier primitives shared by
// parallel traversal kernels: a fixed-size atomic bitmap and a
// two-generation sliding queue fed by thread-local buffers.
//
// What
//
//   - Bitmap: one bit per vertex. SetAtomic is safe under concurrent
//     writers with no lost updates; Get and Set are plain (unsynchronized)
//     accesses for phases where callers guarantee exclusive ownership of
//     the touched words by construction.
//   - SlidingQueue: a growable ordered sequence split into "past" and
//     "current window" regions. Appends land past the window; Slide
//     advances the boundary so the next iteration sees exactly the
//     elements added since the previous Slide. Slid-over elements become
//     permanently inert — never revisited, never freed.
//   - Buffer: a bounded thread-local staging area. Push appends locally;
//     Flush claims a contiguous range of the shared queue with a single
//     fetch-and-add, then copies without further synchronization. One
//     atomic bump per flush, not per element.
//
// Why
//
//	A parallel BFS generation has many executors discovering vertices at
//	once. Funneling every discovery through one shared cursor would
//	serialize the step; per-executor buffers amortize the contention down
//	to one atomic per buffer-load. The bitmap serves the bottom-up
//	direction, where membership tests must be O(1) and race-free.
//
// Ownership rules (callers must uphold)
//
//   - Bitmap.Reset and Bitmap.Get must not run concurrently with writers
//     of the same words.
//   - SlidingQueue.Slide must only run between parallel regions, after
//     every Buffer has flushed.
//   - The total number of elements pushed over a queue's lifetime must not
//     exceed the capacity it was created with (one slot per vertex is the
//     usual sizing, since BFS claims each vertex at most once).
//
// Complexity
//
//   - Bitmap Set/SetAtomic/Get: O(1); Reset: O(N/64).
//   - Buffer.Push: amortized O(1); Flush: one atomic + O(len) copy.
//   - SlidingQueue.Slide/Empty/Size: O(1).
package frontier
