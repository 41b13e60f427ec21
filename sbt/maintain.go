package sbt

// maintainRight restores the size balance of n after its right subtree grew
// (or its left subtree shrank). It returns the new root of the subtree.
//
// After a rotation has fired, subtrees may have been moved to positions where
// they are locally out of balance, so the check cascades to both children and
// then to the new root again. Each step reduces the size discrepancy, which
// bounds the cascade by the height of the tree.
func (t *Tree[T]) maintainRight(n *Node[T]) *Node[T] {
	switch {
	case n.left.size < n.right.left.size:
		n.right = t.rotateRight(n.right)
		n = t.rotateLeft(n)
	case n.left.size < n.right.right.size:
		n = t.rotateLeft(n)
	default:
		return n
	}
	n.left = t.maintainLeft(n.left)
	n.right = t.maintainRight(n.right)
	n = t.maintainLeft(n)
	return t.maintainRight(n)
}

// maintainLeft is the mirror of maintainRight, to be called after the left
// subtree of n grew (or its right subtree shrank).
func (t *Tree[T]) maintainLeft(n *Node[T]) *Node[T] {
	switch {
	case n.right.size < n.left.right.size:
		n.left = t.rotateLeft(n.left)
		n = t.rotateRight(n)
	case n.right.size < n.left.left.size:
		n = t.rotateRight(n)
	default:
		return n
	}
	n.left = t.maintainLeft(n.left)
	n.right = t.maintainRight(n.right)
	n = t.maintainLeft(n)
	return t.maintainRight(n)
}
