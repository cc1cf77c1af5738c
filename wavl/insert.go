package wavl

// InsertFixup restores the rank invariants after Link has attached x as a
// new leaf.
//
// It walks up from x only through parent pointers (never recursing down),
// performing bottom-up rank promotions until the root is reached, a
// promotion leaves x a 1-child of its parent, or a single (possibly
// double) rotation absorbs the violation, at which point the tree is
// immediately balanced and the walk stops. Total work
// is O(log N): every iteration either promotes and ascends one level, or
// rotates and returns.
func InsertFixup(x *Node, root *Root) {
	for {
		p := x.Parent()
		if p == nil {
			// x is the root.
			return
		}

		if x.Parity() != p.Parity() {
			// x is a 1-child of p: the rank rule already holds here.
			return
		}

		// x is a 0-child of p, a rank-rule violation.
		s := sibling(x, p)

		if s.Parity() != p.Parity() {
			// Case A: s is a 1-child, so p is a 0,1-node. Promoting p
			// repairs the violation here, but may push a new 0-child
			// violation up to p's own parent.
			p.FlipParity()
			x = p

			continue
		}

		// Case B: s is a 2-child, so p is a 0,2-node. x's children
		// decide between a single and a double rotation.
		left := isLeftChild(x, p)

		var outer, inner *Node
		if left {
			outer, inner = x.Left, x.Right
		} else {
			outer, inner = x.Right, x.Left
		}

		if outer.Parity() != x.Parity() {
			// B1: outer is a 1-child. A single rotation at p, opposite
			// x's side, puts x in p's place with p as its inner child.
			if left {
				rotateRight(root, p)
			} else {
				rotateLeft(root, p)
			}

			p.FlipParity()

			return
		}

		// B2: outer is a 2-child, so (by I3) inner is a 1-child. A
		// double rotation brings inner (z) to the top.
		z := inner

		if left {
			rotateLeft(root, x)
			rotateRight(root, p)
		} else {
			rotateRight(root, x)
			rotateLeft(root, p)
		}

		x.FlipParity()
		p.FlipParity()
		z.FlipParity()

		return
	}
}
