package wavl

// Root owns the root reference of a wavl tree.
//
// The core never owns node storage, only this single reference (spec
// section on ownership). The zero Root describes an empty tree.
type Root struct {
	Node *Node
}

// Empty reports whether the tree has no nodes.
func (r *Root) Empty() bool { return r.Node == nil }

// First returns the smallest node in the tree, or nil if it is empty.
func (r *Root) First() *Node { return First(r.Node) }

// Last returns the largest node in the tree, or nil if it is empty.
func (r *Root) Last() *Node { return Last(r.Node) }

// replaceChild rewrites whichever of old's slots held old so that it
// holds new instead: the root reference if old was the root, or the
// matching child slot of old's parent otherwise.
func (r *Root) replaceChild(old, new *Node) {
	if p := old.Parent(); p != nil {
		setChild(p, old, new)
	} else {
		r.Node = new
	}
}
