package wavl

import "wavltree/internal/debug"

// Link installs n as a new leaf under parent, in the slot the caller has
// already chosen (parent's left or right child pointer, or root.Node if
// the tree is currently empty).
//
// n is reinitialized as a rank-0 leaf: parity 0, both children absent.
// The caller is responsible for having picked parent and slot so that
// in-order (BST) order is preserved; Link does not compare keys. The
// tree may now violate the rank invariants, so the caller must follow
// this call with InsertFixup(n, root).
func Link(n, parent *Node, slot **Node) {
	debug.Assert(slot != nil, "slot must not be nil")
	debug.Assert(*slot == nil, "slot must be empty")

	n.SetParentParity(parent, 0)
	n.Left, n.Right = nil, nil

	*slot = n
}
