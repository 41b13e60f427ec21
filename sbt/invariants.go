package sbt

import "fmt"

// Check validates the structural invariants of the tree: the size of every
// node equals the sizes of its children plus one, the four size-balance
// inequalities hold for every node, and the sentinel is untouched.
//
// Check walks the whole tree in O(n) and is meant for tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil || t.null == nil {
		return fmt.Errorf("%w: tree not initialized", ErrIllegalArguments)
	}
	if t.null.size != 0 || t.null.left != t.null || t.null.right != t.null {
		return fmt.Errorf("%w: sentinel has been modified", ErrCorrupted)
	}
	_, err := t.checkNode(t.root, 0)
	return err
}

// checkNode validates the subtree of n, whose leftmost element has rank
// offset. It returns the number of elements found in the subtree.
func (t *Tree[T]) checkNode(n *Node[T], offset int) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node at rank %d", ErrCorrupted, offset)
	}
	if n.size == 0 {
		if n != t.null {
			return 0, fmt.Errorf("%w: foreign empty node at rank %d", ErrCorrupted, offset)
		}
		return 0, nil
	}
	l, err := t.checkNode(n.left, offset)
	if err != nil {
		return 0, err
	}
	rank := offset + l
	r, err := t.checkNode(n.right, rank+1)
	if err != nil {
		return 0, err
	}
	if n.size != l+r+1 {
		return 0, fmt.Errorf("%w: node at rank %d has size %d, children hold %d+%d",
			ErrCorrupted, rank, n.size, l, r)
	}
	if n.left.size < n.right.left.size || n.left.size < n.right.right.size {
		return 0, fmt.Errorf("%w: node at rank %d: left size %d < right grandchildren (%d, %d)",
			ErrCorrupted, rank, n.left.size, n.right.left.size, n.right.right.size)
	}
	if n.right.size < n.left.left.size || n.right.size < n.left.right.size {
		return 0, fmt.Errorf("%w: node at rank %d: right size %d < left grandchildren (%d, %d)",
			ErrCorrupted, rank, n.right.size, n.left.left.size, n.left.right.size)
	}
	return n.size, nil
}

// IsBalanced reports whether every node satisfies the size-balance
// inequalities. Size bookkeeping is not validated, use Check for that.
func (t *Tree[T]) IsBalanced() bool {
	return isBalanced(t.root)
}

func isBalanced[T any](n *Node[T]) bool {
	if n.size == 0 {
		return true
	}
	if n.left.size < n.right.left.size || n.left.size < n.right.right.size {
		return false
	}
	if n.right.size < n.left.left.size || n.right.size < n.left.right.size {
		return false
	}
	return isBalanced(n.left) && isBalanced(n.right)
}
