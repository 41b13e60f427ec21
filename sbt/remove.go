package sbt

// removeAt removes the element at rank index from the subtree of root. It
// returns the new subtree root and the removed value.
//
// If the node holding the element has children, it is not unlinked. Instead its
// value is replaced by the value of its in-order predecessor (or successor),
// which is removed from the child subtree.
func (t *Tree[T]) removeAt(root *Node[T], index int) (*Node[T], T) {
	assert(index >= 0 && index < root.size, "removeAt: index out of range")
	var value T
	leftSize := root.left.size
	switch {
	case index < leftSize:
		root.left, value = t.removeAt(root.left, index)
		root.size--
		return t.maintainRight(root), value
	case index > leftSize:
		root.right, value = t.removeAt(root.right, index-(leftSize+1))
		root.size--
		return t.maintainLeft(root), value
	}
	value = root.value
	switch {
	case root.left.size > 0:
		root.left, root.value = t.removeMax(root.left)
		root.size--
		return t.maintainRight(root), value
	case root.right.size > 0:
		root.right, root.value = t.removeMin(root.right)
		root.size--
		return t.maintainLeft(root), value
	}
	assert(root.IsLeaf(), "removeAt: node without children is not a leaf")
	return t.null, value
}

// removeMax removes the rightmost element of the subtree of root.
func (t *Tree[T]) removeMax(root *Node[T]) (*Node[T], T) {
	if root.IsLeaf() {
		return t.null, root.value
	}
	if root.right.size == 0 { // root holds the maximum
		assert(root.left.IsLeaf(), "removeMax: single child of extreme node is not a leaf")
		return root.left, root.value
	}
	var value T
	root.right, value = t.removeMax(root.right)
	root.size--
	return t.maintainLeft(root), value
}

// removeMin removes the leftmost element of the subtree of root.
func (t *Tree[T]) removeMin(root *Node[T]) (*Node[T], T) {
	if root.IsLeaf() {
		return t.null, root.value
	}
	if root.left.size == 0 { // root holds the minimum
		assert(root.right.IsLeaf(), "removeMin: single child of extreme node is not a leaf")
		return root.right, root.value
	}
	var value T
	root.left, value = t.removeMin(root.left)
	root.size--
	return t.maintainRight(root), value
}
