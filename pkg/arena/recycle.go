//go:build go1.22

package arena

import (
	"math/bits"

	"wavltree/pkg/xunsafe"
)

// Recycled is an Arena that threads released blocks onto per-size-class
// free lists, so that repeated insert/delete churn on a container does
// not grow the arena without bound.
//
// Released blocks are singly linked through their own first machine
// word, so recycling costs no extra metadata. Blocks smaller than Align
// are too small to hold a free-list link and are simply dropped.
type Recycled struct {
	Arena

	free []*byte // indexed by size-class (log2 of the block size); head of each list
}

// Alloc returns size bytes, preferring a recycled block of the matching
// size class over growing the arena.
func (a *Recycled) Alloc(size int) *byte {
	if size == 0 {
		return a.Arena.Alloc(size)
	}

	class := sizeClass(alignUp(size))

	if class < len(a.free) && a.free[class] != nil {
		p := a.free[class]
		a.free[class] = *xunsafe.Cast[*byte](p)

		xunsafe.Clear(p, 1<<class)

		return p
	}

	return a.Arena.Alloc(size)
}

// Release threads p onto the free list for its size class.
func (a *Recycled) Release(p *byte, size int) {
	if size < Align {
		return
	}

	class := sizeClass(alignUp(size))

	a.ensureFreeList(class)

	*xunsafe.Cast[*byte](p) = a.free[class]
	a.free[class] = p
}

// Reset clears every free list and resets the embedded Arena. As with
// Arena.Reset, every previously allocated pointer becomes invalid.
func (a *Recycled) Reset() {
	for i := range a.free {
		a.free[i] = nil
	}

	a.Arena.Reset()
}

func (a *Recycled) ensureFreeList(class int) {
	if class >= len(a.free) {
		grown := make([]*byte, class+1)
		copy(grown, a.free)
		a.free = grown
	}
}

// sizeClass returns the smallest log2 size class whose block size is at
// least size, i.e. ceil(log2(size)).
func sizeClass(size int) int {
	return bits.Len(uint(size) - 1)
}
