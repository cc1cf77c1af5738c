package wavl

// rotateLeft performs a standard BST left rotation around x, promoting
// x.Right into x's former position. It only rewires pointers; callers
// are responsible for any parity flips the rebalance case calls for.
func rotateLeft(root *Root, x *Node) *Node {
	y := x.Right

	x.Right = y.Left
	if y.Left != nil {
		y.Left.SetParent(x)
	}

	y.SetParent(x.Parent())
	root.replaceChild(x, y)

	y.Left = x
	x.SetParent(y)

	return y
}

// rotateRight performs a standard BST right rotation around x, promoting
// x.Left into x's former position.
func rotateRight(root *Root, x *Node) *Node {
	y := x.Left

	x.Left = y.Right
	if y.Right != nil {
		y.Right.SetParent(x)
	}

	y.SetParent(x.Parent())
	root.replaceChild(x, y)

	y.Right = x
	x.SetParent(y)

	return y
}
