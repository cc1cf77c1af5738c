package wavl

import "wavltree/internal/debug"

// Erase removes v from the tree and restores the rank invariants.
//
// v is first spliced out structurally: if it has at most one child, that
// child takes its place directly; otherwise its in-order successor is
// relocated into v's position, carrying v's rank verbatim, and the
// resulting gap at the successor's old position is what gets rebalanced.
// Either way the rebalance proper walks up from a single point using only
// parent pointers, performing at most one demote-and-continue chain
// followed by at most one (possibly double) rotation, so total work is
// O(log N).
//
// After Erase returns, v's header is left in an unspecified state; the
// caller may re-link it elsewhere or discard it.
func Erase(v *Node, root *Root) {
	child, parent, childWasLeft, wasTwoChild := splice(v, root)

	if parent == nil {
		// v was the tree's only node, or its structural replacement is
		// already installed with nothing left to rebalance.
		return
	}

	if wasTwoChild {
		// The node that vacated this position was a 2-child of parent,
		// so child is now a 3-child: a real I1 violation.
		eraseFixup(child, parent, childWasLeft, root)

		return
	}

	// The vacating node was a 1-child, so child is a safe 2-child of
	// parent on its own. But if parent's other child is also absent,
	// parent just became a leaf, and by the leaf rule (I2) a leaf must
	// be rank 0 — demote it, which may in turn make it a 3-child of its
	// own parent.
	if parent.Left == nil && parent.Right == nil {
		g := parent.Parent()
		gWasTwoChild := g != nil && parent.Parity() == g.Parity()

		parent.FlipParity()

		if g == nil || !gWasTwoChild {
			return
		}

		eraseFixup(parent, g, g.Left == parent, root)
	}
}

// splice performs the structural part of Erase: it removes v from the
// tree, replacing it with at most one child, relocating its in-order
// successor first if v has two children. It returns the child that ended
// up in the vacated slot, the parent under which that slot lives, which
// side of that parent the slot is on, and whether the node that vacated
// the slot was a 2-child of that parent immediately before the splice.
//
// parent is nil only when v was the tree's only node (child is also nil)
// or its sole child (child is non-nil, now installed as the new root);
// either way there is nothing left to rebalance.
func splice(v *Node, root *Root) (child, parent *Node, childWasLeft, wasTwoChild bool) {
	L, R := v.Left, v.Right

	if L == nil || R == nil {
		if L != nil {
			child = L
		} else {
			child = R
		}

		pv := v.Parent()
		if pv == nil {
			root.Node = child
			if child != nil {
				child.SetParent(nil)
			}

			return nil, nil, false, false
		}

		childWasLeft = pv.Left == v
		wasTwoChild = v.Parity() == pv.Parity()

		setChild(pv, v, child)
		if child != nil {
			child.SetParent(pv)
		}

		return child, pv, childWasLeft, wasTwoChild
	}

	// v has two children: relocate its in-order successor into v's slot.
	s := First(R)
	c := s.Right
	ps := s.Parent()

	if ps == v {
		// s is v's direct right child (R itself), so it already has no
		// left child and keeps its own right child c — s simply takes
		// over v's identity in place.
		wasTwoChild = s.Parity() == v.Parity()

		s.parentAndParity = v.parentAndParity
		s.Left = L
		if L != nil {
			L.SetParent(s)
		}
		// s.Right is already c; v's right subtree below s is untouched.

		root.replaceChild(v, s)

		return c, s, false, wasTwoChild
	}

	wasTwoChild = s.Parity() == ps.Parity()

	ps.Left = c
	if c != nil {
		c.SetParent(ps)
	}

	s.parentAndParity = v.parentAndParity
	s.Left, s.Right = L, R
	L.SetParent(s)
	R.SetParent(s)

	root.replaceChild(v, s)

	return c, ps, true, wasTwoChild
}

// eraseFixup restores the rank invariants given that x is a 3-child of p
// (a violation of I1). It walks up through parent pointers, applying one
// of four cases at each step, exactly mirroring InsertFixup's structure:
// demote-and-continue cases (1 and 2) may propagate the violation
// further up, while the rotation cases (3 and 4) always terminate the
// walk.
func eraseFixup(x, p *Node, xWasLeft bool, root *Root) {
	for {
		var s *Node
		if xWasLeft {
			s = p.Right
		} else {
			s = p.Left
		}

		debug.Assert(s != nil, "sibling of a 3-child must not be absent")

		if s.Parity() == p.Parity() {
			// Case 1: p is a 3,2-node. Demoting p repairs x's edge.
			if done := demoteAndContinue(&x, &p, &xWasLeft, root); done {
				return
			}

			continue
		}

		// p is a 3,1-node: s is a 1-child. Classify s's own children
		// relative to x's side to choose among cases 2-4.
		var near, far *Node
		if xWasLeft {
			near, far = s.Left, s.Right
		} else {
			near, far = s.Right, s.Left
		}

		if near.Parity() == s.Parity() && far.Parity() == s.Parity() {
			// Case 2: s is a 2,2-node. Demote both p and s.
			s.FlipParity()

			if done := demoteAndContinue(&x, &p, &xWasLeft, root); done {
				return
			}

			continue
		}

		if far.Parity() != s.Parity() {
			// Case 3: s has a 1-child on the far side. A single
			// rotation brings s into p's position.
			if xWasLeft {
				rotateLeft(root, p)
			} else {
				rotateRight(root, p)
			}

			s.FlipParity()

			if p.Left != nil || p.Right != nil {
				p.FlipParity()
			}
			// If p became a leaf, it is demoted twice: a no-op.

			return
		}

		// Case 4: s has a 1-child only on the near side. A double
		// rotation through that child (z) restores the invariant; p
		// and z are each touched twice, which is a no-op on parity.
		if xWasLeft {
			rotateRight(root, s)
			rotateLeft(root, p)
		} else {
			rotateLeft(root, s)
			rotateRight(root, p)
		}

		s.FlipParity()

		return
	}
}

// demoteAndContinue demotes *p (the shared first step of erase Cases 1
// and 2), then reports whether the fixup is done. If p was root, or if
// the demotion did not leave p a 3-child of its own parent, it is done
// and the caller should return; otherwise *x and *p are advanced one
// level up the tree and the caller should continue its loop.
func demoteAndContinue(x, p *Node, xWasLeft *bool, root *Root) (done bool) {
	g := (*p).Parent()
	gWasTwoChild := g != nil && (*p).Parity() == g.Parity()

	(*p).FlipParity()

	if g == nil || !gWasTwoChild {
		return true
	}

	*xWasLeft = g.Left == *p
	*x, *p = *p, g

	return false
}
