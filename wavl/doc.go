// Package wavl implements the rank-balanced maintenance algorithm for a
// weak AVL (wavl) tree, in the style of Haeupler, Sen and Tarjan (2015).
//
// # Overview
//
// A wavl tree is a self-balancing binary search tree whose rebalancing
// rules sit between those of a red-black tree and an AVL tree: it
// rebalances after insertion with at most one single or double rotation
// (like a red-black tree) while keeping an AVL-like height bound, and it needs only a
// single bit of per-node state — the node's rank parity — to drive every
// rebalancing decision.
//
// # Scope
//
// This package is intentionally narrow. It owns exactly the rank-balance
// maintenance algorithm: linking a new leaf and restoring the rank
// invariants afterward, splicing an arbitrary node out of the tree and
// restoring the rank invariants afterward, swapping one node's header for
// another's, and walking the tree in order. It does not compare keys, does
// not allocate nodes, and does not provide a search function: the caller
// locates the parent/child slot for an insertion itself and hands it to
// Link.
//
// # Node header
//
// Node is an intrusive, three-word header meant to be embedded in a
// caller-defined record:
//
//	type Item struct {
//	    wavl.Node
//	    Key   int
//	    Value string
//	}
//
// The header packs the parent pointer and the node's rank parity into a
// single machine word (see [Node.Parent] and [Node.Parity]), which is why
// Item (or anything embedding Node) must not be allocated at an alignment
// finer than [Align].
//
// # Usage
//
// A typical insertion walks the tree using the caller's own comparison
// function to find the parent and the empty child slot, links the new
// node there, and then calls InsertFixup:
//
//	n := &Item{Key: k}
//	parent, slot := findInsertionPoint(root, k)
//	wavl.Link(&n.Node, parent, slot)
//	wavl.InsertFixup(&n.Node, root)
//
// Deletion passes a node reference straight to Erase:
//
//	wavl.Erase(&victim.Node, root)
//
// See the ordered package for a complete container built this way.
package wavl
