package sbt

// Node is the structural unit of a tree.
//
// A node holds one element of the sequence and the number of nodes in the
// subtree rooted at it. Empty subtrees are represented by the tree's sentinel,
// a node of size 0 whose children reference the sentinel itself. Algorithms
// therefore never test for nil; they compare sizes instead.
//
// Clients get read-only access to nodes, e.g. for rendering a tree.
type Node[T any] struct {
	left, right *Node[T]
	size        int
	value       T
}

// newSentinel creates the empty-subtree marker for a tree.
func newSentinel[T any]() *Node[T] {
	z := &Node[T]{}
	z.left, z.right = z, z
	return z
}

// newLeaf creates a one-element subtree terminated by sentinel z.
func newLeaf[T any](value T, z *Node[T]) *Node[T] {
	return &Node[T]{left: z, right: z, size: 1, value: value}
}

// Value returns the element held by n.
func (n *Node[T]) Value() T {
	return n.value
}

// Size returns the number of elements in the subtree rooted at n.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Left returns the left child of n, which is empty if n has none.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of n, which is empty if n has none.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsEmpty reports whether n represents an empty subtree.
func (n *Node[T]) IsEmpty() bool {
	return n == nil || n.size == 0
}

// IsLeaf reports whether n is a single element without children.
func (n *Node[T]) IsLeaf() bool {
	if n == nil || n.size != 1 {
		return false
	}
	assert(n.left.size == 0 && n.right.size == 0, "leaf node has non-empty children")
	return true
}
