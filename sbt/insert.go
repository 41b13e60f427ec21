package sbt

// insertAt inserts value at rank index into the subtree of root and returns
// the new subtree root.
func (t *Tree[T]) insertAt(root *Node[T], index int, value T) *Node[T] {
	assert(index >= 0 && index <= root.size, "insertAt: index out of range")
	if root.size == 0 {
		assert(index == 0, "insertAt: non-zero index for empty subtree")
		return newLeaf(value, t.null)
	}
	root.size++
	leftSize := root.left.size
	if index <= leftSize {
		root.left = t.insertAt(root.left, index, value)
		return t.maintainLeft(root)
	}
	root.right = t.insertAt(root.right, index-(leftSize+1), value)
	return t.maintainRight(root)
}

// insertAtEnd appends value as the rightmost element of the subtree of root.
func (t *Tree[T]) insertAtEnd(root *Node[T], value T) *Node[T] {
	if root.size == 0 {
		return newLeaf(value, t.null)
	}
	root.right = t.insertAtEnd(root.right, value)
	root.size++
	return t.maintainRight(root)
}
