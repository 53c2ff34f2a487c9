// Package wordpool provides size-classed pooling of uint32 word slices to
// reduce GC pressure in the division inner loop.
package wordpool

import (
	"math/bits"
	"sync"
)

// pools holds one sync.Pool per size class. Classes are powers of 4
// starting at 4 words, which covers scratch buffers from single-primitive
// values up to multi-kiloword magnitudes without fragmentation.
var pools = [...]sync.Pool{
	{New: func() any { return make([]uint32, 4) }},
	{New: func() any { return make([]uint32, 16) }},
	{New: func() any { return make([]uint32, 64) }},
	{New: func() any { return make([]uint32, 256) }},
	{New: func() any { return make([]uint32, 1024) }},
	{New: func() any { return make([]uint32, 4096) }},
}

// sizes defines the size classes, matching pools index for index.
var sizes = [...]int{4, 16, 64, 256, 1024, 4096}

// poolIndex returns the pool index for a given size, or -1 if the size is
// too large for pooling.
//
// Sizes are powers of 4 starting from 4^1, so bits.Len maps directly to the
// index without a linear search.
func poolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > sizes[len(sizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 1) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Acquire gets a zeroed word slice of exactly the given length from the
// pool, allocating directly when the request exceeds the largest size
// class.
//
// The returned slice should be given back with Release, preferably with
// defer:
//
//	buf := wordpool.Acquire(n)
//	defer wordpool.Release(buf)
func Acquire(size int) []uint32 {
	idx := poolIndex(size)
	if idx < 0 {
		return make([]uint32, size)
	}
	buf := pools[idx].Get().([]uint32)
	clear(buf)
	return buf[:size]
}

// Release returns a slice obtained from Acquire to its pool. Slices whose
// capacity does not match a size class were directly allocated and are left
// to the garbage collector. Safe to call with nil.
func Release(buf []uint32) {
	if buf == nil {
		return
	}
	c := cap(buf)
	idx := poolIndex(c)
	if idx >= 0 && sizes[idx] == c {
		pools[idx].Put(buf[:c])
	}
}
