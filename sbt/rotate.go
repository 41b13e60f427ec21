package sbt

// rotateLeft lifts the right child of root into root's position and returns it.
//
//	    root                pivot
//	   /    \              /     \
//	  a    pivot   =>   root      c
//	      /     \      /    \
//	     b       c    a      b
//
// The overall subtree size does not change; only root and pivot are touched.
func (t *Tree[T]) rotateLeft(root *Node[T]) *Node[T] {
	pivot := root.right
	root.right = pivot.left
	pivot.left = root
	pivot.size = root.size
	root.size = root.left.size + root.right.size + 1
	t.rotations++
	return pivot
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[T]) rotateRight(root *Node[T]) *Node[T] {
	pivot := root.left
	root.left = pivot.right
	pivot.right = root
	pivot.size = root.size
	root.size = root.left.size + root.right.size + 1
	t.rotations++
	return pivot
}
