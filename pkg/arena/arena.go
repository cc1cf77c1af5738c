//go:build go1.22

// Package arena provides a small bump allocator used by the owning
// wrappers in this module to hand out node storage without going through
// one small heap allocation per insert.
//
// The intrusive wavl core never allocates; it only manipulates pointers
// handed to it by the caller. This package exists for callers (see the
// ordered package) that want a conventional container built on top of the
// core without giving up the "no allocation per insert" property the core
// is designed to preserve.
package arena

import (
	"unsafe"

	"wavltree/internal/debug"
	"wavltree/pkg/xunsafe"
	"wavltree/pkg/xunsafe/layout"
)

// Align is the alignment of every object handed out by an Arena.
//
// The wavl node header packs a rank-parity bit into the low bits of its
// parent pointer, so any type embedding it must not be allocated at an
// alignment finer than Align.
const Align = int(unsafe.Sizeof(uintptr(0)))

// Allocator is the minimal interface required to hand out and reclaim
// node storage.
type Allocator interface {
	// Alloc returns size bytes of zeroed, Align-aligned memory.
	Alloc(size int) *byte

	// Release returns a block previously returned by Alloc back to the
	// allocator. size must match the size passed to Alloc.
	Release(p *byte, size int)
}

var _ Allocator = (*Arena)(nil)
var _ Allocator = (*Recycled)(nil)

// Arena is a bump allocator over successively doubling blocks of memory.
//
// A zero Arena is empty and ready to use. Release is a no-op: memory is
// only reclaimed in bulk, by Reset.
type Arena struct {
	_ xunsafe.NoCopy

	next, end uintptr
	cap       int // always a power of two, 0 until the first grow

	blocks []*byte
}

// New allocates a value of type T from a, copies value into it, and
// returns a pointer to the copy.
func New[T any](a Allocator, value T) *T {
	l := layout.Of[T]()
	if l.Align > Align {
		panic("arena: over-aligned object")
	}

	p := xunsafe.Cast[T](a.Alloc(l.Size))
	*p = value

	return p
}

// Free returns a value of type T previously allocated with New back to a.
func Free[T any](a Allocator, p *T) {
	a.Release(xunsafe.Cast[byte](p), layout.Of[T]().Size)
}

// Alloc returns size bytes of memory, growing the arena if the current
// block cannot satisfy the request.
func (a *Arena) Alloc(size int) *byte {
	size = alignUp(size)

	if a.next == 0 || a.next+uintptr(size) > a.end {
		a.grow(size)
	}

	p := (*byte)(unsafe.Pointer(a.next))
	a.next += uintptr(size)

	debug.Log([]any{"%p", a}, "alloc", "%d bytes, %d remaining", size, a.end-a.next)

	clearBytes(p, size)

	return p
}

// Release is a no-op for Arena: memory is only reclaimed by Reset.
func (a *Arena) Release(p *byte, size int) {}

// Reset discards all but the largest allocated block and makes that
// block's memory available for reuse. Every pointer previously returned
// by Alloc becomes invalid.
func (a *Arena) Reset() {
	if len(a.blocks) == 0 {
		return
	}

	last := len(a.blocks) - 1
	a.blocks = a.blocks[last:]

	size := a.cap
	clearBytes(a.blocks[0], size)

	a.next = uintptr(unsafe.Pointer(a.blocks[0]))
	a.end = a.next + uintptr(size)
	a.cap = size
}

func (a *Arena) grow(size int) {
	n := max(size, a.cap*2, 64)
	// Round n up to a power of two so block sizes (and hence the
	// size-class index used by Recycled) stay predictable.
	p2 := 64
	for p2 < n {
		p2 *= 2
	}
	n = p2

	buf := make([]byte, n)
	p := unsafe.SliceData(buf)

	a.blocks = append(a.blocks, p)
	a.next = uintptr(unsafe.Pointer(p))
	a.end = a.next + uintptr(n)
	a.cap = n

	debug.Log([]any{"%p", a}, "grow", "%d bytes", n)
}

// alignUp rounds size up to the next power of two no smaller than Align.
//
// Rounding to a power of two, rather than merely to a multiple of Align,
// keeps every block's real size equal to the size-class Recycled files it
// under, so a recycled block is never smaller than what its class implies.
func alignUp(size int) int {
	n := Align
	for n < size {
		n *= 2
	}

	return n
}

func clearBytes(p *byte, n int) {
	if n == 0 {
		return
	}

	xunsafe.Clear(p, n)
}
