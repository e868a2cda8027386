package frontier

import (
	"sync/atomic"

	"github.com/katalvlaran/crisp/csr"
)

// wordBits is the width of one bitmap word.
const wordBits = 64

// Bitmap is a fixed-size bit-per-vertex set.
//
// SetAtomic tolerates any number of concurrent writers. Get, Set and
// Reset are plain memory operations: callers must guarantee no concurrent
// writer targets the same word (disjoint-partition parallel loops satisfy
// this by construction).
type Bitmap struct {
	words []uint64
	size  int
}

// NewBitmap creates a cleared bitmap for vertex ids in [0, n).
func NewBitmap(n int) *Bitmap {
	return &Bitmap{
		words: make([]uint64, (n+wordBits-1)/wordBits),
		size:  n,
	}
}

// Len returns the number of bits the bitmap tracks.
func (b *Bitmap) Len() int { return b.size }

// Reset clears every bit. Not synchronized with concurrent readers.
func (b *Bitmap) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Set marks v with a plain store. Only for single-writer-per-word phases.
func (b *Bitmap) Set(v csr.NodeID) {
	b.words[v/wordBits] |= 1 << (uint(v) % wordBits)
}

// SetAtomic marks v with an atomic OR: safe under concurrent calls from
// multiple executors, no data race, no lost updates.
func (b *Bitmap) SetAtomic(v csr.NodeID) {
	// atomic OR via CAS: atomic.OrUint64 requires Go 1.23+.
	addr := &b.words[v/wordBits]
	mask := uint64(1) << (uint(v) % wordBits)
	for {
		old := atomic.LoadUint64(addr)
		if old&mask != 0 || atomic.CompareAndSwapUint64(addr, old, old|mask) {
			return
		}
	}
}

// Get reports whether v is marked. Plain read; safe only when no
// concurrent writer targets v's word.
func (b *Bitmap) Get(v csr.NodeID) bool {
	return b.words[v/wordBits]&(1<<(uint(v)%wordBits)) != 0
}

// Swap exchanges the contents of b and o in O(1) by swapping backing
// storage. Both bitmaps must have been created with the same size.
func (b *Bitmap) Swap(o *Bitmap) {
	b.words, o.words = o.words, b.words
}
