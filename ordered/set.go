package ordered

import (
	"cmp"
	"unsafe"

	"wavltree/pkg/arena"
	"wavltree/wavl"
)

// setNode is the owning record behind every element of a SetFunc: the
// intrusive header embedded first, exactly as the core requires, plus the
// value the caller actually cares about.
type setNode[T any] struct {
	wavl.Node
	value T
}

func asSetNode[T any](n *wavl.Node) *setNode[T] {
	return (*setNode[T])(unsafe.Pointer(n))
}

// SetFunc is an ordered set of T, comparing elements with a caller-supplied
// function. Use Set for the common case where T already orders itself via
// cmp.Ordered.
//
// The zero value is not ready to use; construct one with NewSetFunc.
type SetFunc[T any] struct {
	root  wavl.Root
	cmp   func(a, b T) int
	alloc arena.Allocator
	n     int
}

// NewSetFunc returns an empty set ordered by cmp.
func NewSetFunc[T any](cmp func(a, b T) int) *SetFunc[T] {
	return &SetFunc[T]{cmp: cmp, alloc: new(arena.Recycled)}
}

// Len returns the number of elements in the set.
func (s *SetFunc[T]) Len() int { return s.n }

// Contains reports whether v is in the set.
func (s *SetFunc[T]) Contains(v T) bool {
	_, ok := s.find(v)

	return ok
}

func (s *SetFunc[T]) find(v T) (*setNode[T], bool) {
	n := s.root.Node
	for n != nil {
		cur := asSetNode[T](n)

		switch c := s.cmp(v, cur.value); {
		case c < 0:
			n = n.Left
		case c > 0:
			n = n.Right
		default:
			return cur, true
		}
	}

	return nil, false
}

// Insert adds v to the set, reporting whether it was not already present.
func (s *SetFunc[T]) Insert(v T) bool {
	if s.root.Node == nil {
		s.linkAndFixup(nil, &s.root.Node, v)

		return true
	}

	n := s.root.Node
	for {
		cur := asSetNode[T](n)

		switch c := s.cmp(v, cur.value); {
		case c == 0:
			return false
		case c < 0:
			if n.Left == nil {
				s.linkAndFixup(n, &n.Left, v)

				return true
			}

			n = n.Left
		default:
			if n.Right == nil {
				s.linkAndFixup(n, &n.Right, v)

				return true
			}

			n = n.Right
		}
	}
}

func (s *SetFunc[T]) linkAndFixup(parent *wavl.Node, slot **wavl.Node, v T) {
	nd := arena.New(s.alloc, setNode[T]{value: v})

	wavl.Link(&nd.Node, parent, slot)
	wavl.InsertFixup(&nd.Node, &s.root)

	s.n++
}

// Delete removes v from the set, reporting whether it was present.
func (s *SetFunc[T]) Delete(v T) bool {
	cur, ok := s.find(v)
	if !ok {
		return false
	}

	wavl.Erase(&cur.Node, &s.root)
	arena.Free(s.alloc, cur)
	s.n--

	return true
}

// Min returns the smallest element, or the zero value and false if the
// set is empty.
func (s *SetFunc[T]) Min() (v T, ok bool) {
	n := s.root.First()
	if n == nil {
		return v, false
	}

	return asSetNode[T](n).value, true
}

// Max returns the largest element, or the zero value and false if the set
// is empty.
func (s *SetFunc[T]) Max() (v T, ok bool) {
	n := s.root.Last()
	if n == nil {
		return v, false
	}

	return asSetNode[T](n).value, true
}

// Floor returns the largest element ≤ v, or the zero value and false if
// no such element exists.
func (s *SetFunc[T]) Floor(v T) (r T, ok bool) {
	var best *setNode[T]

	n := s.root.Node
	for n != nil {
		cur := asSetNode[T](n)

		switch c := s.cmp(v, cur.value); {
		case c == 0:
			return cur.value, true
		case c < 0:
			n = n.Left
		default:
			best = cur
			n = n.Right
		}
	}

	if best == nil {
		return r, false
	}

	return best.value, true
}

// Ceiling returns the smallest element ≥ v, or the zero value and false
// if no such element exists.
func (s *SetFunc[T]) Ceiling(v T) (r T, ok bool) {
	var best *setNode[T]

	n := s.root.Node
	for n != nil {
		cur := asSetNode[T](n)

		switch c := s.cmp(v, cur.value); {
		case c == 0:
			return cur.value, true
		case c > 0:
			n = n.Right
		default:
			best = cur
			n = n.Left
		}
	}

	if best == nil {
		return r, false
	}

	return best.value, true
}

// Range calls fn for every element in ascending order, stopping early if
// fn returns false.
func (s *SetFunc[T]) Range(fn func(T) bool) {
	for n := s.root.First(); n != nil; n = wavl.Next(n) {
		if !fn(asSetNode[T](n).value) {
			return
		}
	}
}

// RangeDescending calls fn for every element in descending order,
// stopping early if fn returns false.
func (s *SetFunc[T]) RangeDescending(fn func(T) bool) {
	for n := s.root.Last(); n != nil; n = wavl.Prev(n) {
		if !fn(asSetNode[T](n).value) {
			return
		}
	}
}

// Set is an ordered set of T using T's natural ordering.
type Set[T cmp.Ordered] struct {
	SetFunc[T]
}

// NewSet returns an empty set ordered by cmp.Compare.
func NewSet[T cmp.Ordered]() *Set[T] {
	return &Set[T]{SetFunc: SetFunc[T]{cmp: cmp.Compare[T], alloc: new(arena.Recycled)}}
}
