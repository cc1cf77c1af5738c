package ordered

import (
	"cmp"
	"unsafe"

	"wavltree/pkg/arena"
	"wavltree/wavl"
)

// mapNode is the owning record behind every entry of a MapFunc.
type mapNode[K, V any] struct {
	wavl.Node
	key   K
	value V
}

func asMapNode[K, V any](n *wavl.Node) *mapNode[K, V] {
	return (*mapNode[K, V])(unsafe.Pointer(n))
}

// MapFunc is an ordered map keyed by K, comparing keys with a
// caller-supplied function. Use Map for the common case where K already
// orders itself via cmp.Ordered.
//
// The zero value is not ready to use; construct one with NewMapFunc.
type MapFunc[K, V any] struct {
	root  wavl.Root
	cmp   func(a, b K) int
	alloc arena.Allocator
	n     int
}

// NewMapFunc returns an empty map keyed by K, ordered by cmp.
func NewMapFunc[K, V any](cmp func(a, b K) int) *MapFunc[K, V] {
	return &MapFunc[K, V]{cmp: cmp, alloc: new(arena.Recycled)}
}

// Len returns the number of entries in the map.
func (m *MapFunc[K, V]) Len() int { return m.n }

func (m *MapFunc[K, V]) find(k K) (*mapNode[K, V], bool) {
	n := m.root.Node
	for n != nil {
		cur := asMapNode[K, V](n)

		switch c := m.cmp(k, cur.key); {
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

// Get returns the value stored for k, and whether it was present.
func (m *MapFunc[K, V]) Get(k K) (v V, ok bool) {
	cur, ok := m.find(k)
	if !ok {
		return v, false
	}

	return cur.value, true
}

// Contains reports whether k has an entry in the map.
func (m *MapFunc[K, V]) Contains(k K) bool {
	_, ok := m.find(k)

	return ok
}

// Put inserts or overwrites the entry for k, reporting whether k was
// already present.
func (m *MapFunc[K, V]) Put(k K, v V) bool {
	if m.root.Node == nil {
		m.linkAndFixup(nil, &m.root.Node, k, v)

		return false
	}

	n := m.root.Node
	for {
		cur := asMapNode[K, V](n)

		switch c := m.cmp(k, cur.key); {
		case c == 0:
			cur.value = v

			return true
		case c < 0:
			if n.Left == nil {
				m.linkAndFixup(n, &n.Left, k, v)

				return false
			}

			n = n.Left
		default:
			if n.Right == nil {
				m.linkAndFixup(n, &n.Right, k, v)

				return false
			}

			n = n.Right
		}
	}
}

func (m *MapFunc[K, V]) linkAndFixup(parent *wavl.Node, slot **wavl.Node, k K, v V) {
	nd := arena.New(m.alloc, mapNode[K, V]{key: k, value: v})

	wavl.Link(&nd.Node, parent, slot)
	wavl.InsertFixup(&nd.Node, &m.root)

	m.n++
}

// Delete removes k's entry, reporting whether it was present.
func (m *MapFunc[K, V]) Delete(k K) bool {
	cur, ok := m.find(k)
	if !ok {
		return false
	}

	wavl.Erase(&cur.Node, &m.root)
	arena.Free(m.alloc, cur)
	m.n--

	return true
}

// Min returns the entry with the smallest key, or zero values and false
// if the map is empty.
func (m *MapFunc[K, V]) Min() (k K, v V, ok bool) {
	n := m.root.First()
	if n == nil {
		return k, v, false
	}

	cur := asMapNode[K, V](n)

	return cur.key, cur.value, true
}

// Max returns the entry with the largest key, or zero values and false
// if the map is empty.
func (m *MapFunc[K, V]) Max() (k K, v V, ok bool) {
	n := m.root.Last()
	if n == nil {
		return k, v, false
	}

	cur := asMapNode[K, V](n)

	return cur.key, cur.value, true
}

// Range calls fn for every entry in ascending key order, stopping early
// if fn returns false.
func (m *MapFunc[K, V]) Range(fn func(K, V) bool) {
	for n := m.root.First(); n != nil; n = wavl.Next(n) {
		cur := asMapNode[K, V](n)
		if !fn(cur.key, cur.value) {
			return
		}
	}
}

// RangeDescending calls fn for every entry in descending key order,
// stopping early if fn returns false.
func (m *MapFunc[K, V]) RangeDescending(fn func(K, V) bool) {
	for n := m.root.Last(); n != nil; n = wavl.Prev(n) {
		cur := asMapNode[K, V](n)
		if !fn(cur.key, cur.value) {
			return
		}
	}
}

// Map is an ordered map keyed by K using K's natural ordering.
type Map[K cmp.Ordered, V any] struct {
	MapFunc[K, V]
}

// NewMap returns an empty map ordered by cmp.Compare.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{MapFunc: MapFunc[K, V]{cmp: cmp.Compare[K], alloc: new(arena.Recycled)}}
}
