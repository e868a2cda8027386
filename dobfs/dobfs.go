package dobfs

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crisp/csr"
	"github.com/katalvlaran/crisp/frontier"
)

// buChunk is the dynamic-scheduling grain for bottom-up steps. It must be
// a multiple of the bitmap word size so that vertex chunks never share a
// bitmap word and the next-frontier bits can be set without atomics.
const buChunk = 1024

// Run performs a direction-optimizing BFS on g from source and returns
// the parent array (see Result for its encoding).
//
// Validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be well-formed (ErrOptionViolation).
//  3. source must lie in [0, NumNodes) (ErrSourceOutOfRange).
//
// The run is a strict sequence of parallel regions; a cancelled context
// aborts between chunks and Run returns the context's error.
func Run(g *csr.Graph, source csr.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(source) {
		return nil, ErrSourceOutOfRange
	}

	e := &engine{g: g, n: g.NumNodes(), opts: o}
	if err := e.run(source); err != nil {
		return nil, err
	}

	return &Result{Parent: e.parent}, nil
}

// engine holds the mutable state of a single traversal.
type engine struct {
	g    *csr.Graph
	n    int
	opts Options

	parent []csr.NodeID
}

// run executes the INIT → TOP_DOWN ⇄ BOTTOM_UP → DONE state machine.
func (e *engine) run(source csr.NodeID) error {
	// INIT: parent[v] = -outdegree(v) (or -1 for sinks), source seeds the
	// queue and claims itself.
	e.initParent()
	e.parent[source] = source

	queue := frontier.NewSlidingQueue(e.n)
	queue.PushBack(source)
	queue.Slide()
	front := frontier.NewBitmap(e.n)
	next := frontier.NewBitmap(e.n)

	edgesToCheck := e.g.NumEdges()
	scout := int64(e.g.OutDegree(source))

	for !queue.Empty() {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}

		if scout > edgesToCheck/int64(e.opts.Alpha) {
			// BOTTOM_UP: the frontier is wide enough that scanning
			// undiscovered vertices against it is the cheaper direction.
			if err := e.queueToBitmap(queue, front); err != nil {
				return err
			}
			awake := int64(queue.Size())
			queue.Slide()
			for {
				oldAwake := awake
				var err error
				if awake, err = e.buStep(front, next); err != nil {
					return err
				}
				front.Swap(next)
				e.logStep("bu", awake)
				// keep going while the frontier still grows, or is still
				// too large for top-down to be worthwhile
				if awake < oldAwake && awake <= int64(e.n/e.opts.Beta) {
					break
				}
			}
			if err := e.bitmapToQueue(front, queue); err != nil {
				return err
			}
			// force the heuristic to re-evaluate from a clean slate
			scout = 1
		} else {
			// TOP_DOWN: expand the queue window, claiming neighbors by CAS.
			edgesToCheck -= scout
			var err error
			if scout, err = e.tdStep(queue); err != nil {
				return err
			}
			queue.Slide()
			e.logStep("td", int64(queue.Size()))
		}
	}

	return nil
}

// initParent encodes each vertex's unvisited state as the negative of its
// out-degree, so a top-down claim recovers the degree from the value its
// CAS displaced.
func (e *engine) initParent() {
	e.parent = make([]csr.NodeID, e.n)
	for v := 0; v < e.n; v++ {
		if d := e.g.OutDegree(csr.NodeID(v)); d != 0 {
			e.parent[v] = csr.NodeID(-d)
		} else {
			e.parent[v] = -1
		}
	}
}

// region runs task on every executor of the fixed pool and waits for the
// implicit barrier at region exit.
func (e *engine) region(task func(w int) error) error {
	grp := new(errgroup.Group)
	for w := 0; w < e.opts.Workers; w++ {
		w := w // per-iteration copy: required under the go 1.21 directive
		grp.Go(func() error { return task(w) })
	}

	return grp.Wait()
}

// split returns the w-th of workers contiguous sub-ranges of [0, total).
func split(total, workers, w int) (lo, hi int) {
	lo = total * w / workers
	hi = total * (w + 1) / workers

	return lo, hi
}

// tdStep scans the queue window top-down: every unvisited out-neighbor is
// claimed by compare-and-swap, winners are staged into the executor's
// local buffer, and the displaced negative value contributes the new
// vertex's out-degree to the scout total. A failed CAS means another
// executor won; there is nothing to do.
func (e *engine) tdStep(queue *frontier.SlidingQueue) (int64, error) {
	window := queue.Window()
	var scout atomic.Int64

	err := e.region(func(w int) error {
		lo, hi := split(len(window), e.opts.Workers, w)
		buf := frontier.NewBuffer(queue)
		var local int64
		for i := lo; i < hi; i++ {
			if err := e.opts.Ctx.Err(); err != nil {
				return err
			}
			for _, v := range e.g.OutNeighbors(window[i]) {
				cur := atomic.LoadInt32((*int32)(&e.parent[v]))
				if cur >= 0 {
					continue
				}
				if atomic.CompareAndSwapInt32((*int32)(&e.parent[v]), cur, int32(window[i])) {
					buf.Push(v)
					local += int64(-cur)
				}
			}
		}
		buf.Flush()
		scout.Add(local)

		return nil
	})

	return scout.Load(), err
}

// buStep scans unvisited vertices bottom-up: the first in-neighbor found
// in the frontier becomes the parent, the vertex joins the next frontier,
// and its remaining neighbors are skipped. Vertices are handed out in
// dynamic chunks since per-vertex cost varies with degree; chunks are
// word-aligned, so each executor owns the bitmap words it writes and no
// CAS is needed anywhere in this step.
func (e *engine) buStep(front, next *frontier.Bitmap) (int64, error) {
	next.Reset()
	var awake atomic.Int64
	var cursor atomic.Int64

	err := e.region(func(int) error {
		var local int64
		for {
			if err := e.opts.Ctx.Err(); err != nil {
				return err
			}
			lo := int(cursor.Add(buChunk)) - buChunk
			if lo >= e.n {
				break
			}
			hi := min(lo+buChunk, e.n)
			for u := lo; u < hi; u++ {
				if e.parent[u] >= 0 {
					continue
				}
				for _, v := range e.g.InNeighbors(csr.NodeID(u)) {
					if front.Get(v) {
						e.parent[u] = v
						next.Set(csr.NodeID(u))
						local++
						break
					}
				}
			}
		}
		awake.Add(local)

		return nil
	})

	return awake.Load(), err
}

// queueToBitmap projects the queue's current window onto bm. Concurrent
// executors may touch the same word, hence the atomic set.
func (e *engine) queueToBitmap(queue *frontier.SlidingQueue, bm *frontier.Bitmap) error {
	bm.Reset()
	window := queue.Window()

	return e.region(func(w int) error {
		lo, hi := split(len(window), e.opts.Workers, w)
		for i := lo; i < hi; i++ {
			bm.SetAtomic(window[i])
		}

		return nil
	})
}

// bitmapToQueue converts the frontier bitmap back into the sliding queue
// and exposes it as the new window.
func (e *engine) bitmapToQueue(bm *frontier.Bitmap, queue *frontier.SlidingQueue) error {
	err := e.region(func(w int) error {
		lo, hi := split(e.n, e.opts.Workers, w)
		buf := frontier.NewBuffer(queue)
		for u := lo; u < hi; u++ {
			if bm.Get(csr.NodeID(u)) {
				buf.Push(csr.NodeID(u))
			}
		}
		buf.Flush()

		return nil
	})
	queue.Slide()

	return err
}

// logStep emits one debug line per step when a logger is configured.
func (e *engine) logStep(direction string, count int64) {
	if e.opts.Logger != nil {
		e.opts.Logger.Debug("step", "dir", direction, "count", count)
	}
}
