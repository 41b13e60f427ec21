package sbt

import (
	"fmt"
)

// Tree is a size-balanced binary tree representing a mutable sequence of T.
//
// A tree created by New is empty. The zero value is not usable, as every tree
// owns the sentinel terminating its subtrees.
//
//	Operation     |   Tree          |  Slice
//	--------------+-----------------+--------
//	At / Set      |   O(log n)      |   O(1)
//	Append        |   O(log n)      |   O(1) amortized
//	InsertAt      |   O(log n)      |   O(n)
//	RemoveAt      |   O(log n)      |   O(n)
//	Iterate       |   O(n)          |   O(n)
type Tree[T any] struct {
	root      *Node[T]
	null      *Node[T] // sentinel, never mutated
	rotations uint64   // number of rotations performed since creation
}

// Stats carries diagnostic information about a tree.
type Stats struct {
	Len       int
	Height    int
	Rotations uint64
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	z := newSentinel[T]()
	return &Tree[T]{root: z, null: z}
}

// Root returns the root node of the tree. The root of an empty tree is the
// sentinel, for which IsEmpty reports true.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Stats returns size, height and rotation count of the tree.
func (t *Tree[T]) Stats() Stats {
	return Stats{
		Len:       t.Len(),
		Height:    t.Height(),
		Rotations: t.rotations,
	}
}

// At returns the element at rank index.
func (t *Tree[T]) At(index int) (T, error) {
	var zero T
	if err := t.checkIndex(index, t.Len()); err != nil {
		return zero, err
	}
	return elementAt(t.root, index).value, nil
}

// Set replaces the element at rank index.
func (t *Tree[T]) Set(index int, value T) error {
	if err := t.checkIndex(index, t.Len()); err != nil {
		return err
	}
	elementAt(t.root, index).value = value
	return nil
}

// InsertAt inserts value at rank index, shifting all subsequent elements
// one position to the right. index may be equal to Len, which appends value.
func (t *Tree[T]) InsertAt(index int, value T) error {
	if err := t.checkIndex(index, t.Len()+1); err != nil {
		return err
	}
	if index == t.Len() {
		t.root = t.insertAtEnd(t.root, value)
	} else {
		t.root = t.insertAt(t.root, index, value)
	}
	t.debugCheck("InsertAt")
	return nil
}

// Append adds value to the end of the sequence.
func (t *Tree[T]) Append(value T) {
	t.root = t.insertAtEnd(t.root, value)
	t.debugCheck("Append")
}

// RemoveAt removes the element at rank index and returns it.
func (t *Tree[T]) RemoveAt(index int) (T, error) {
	var value T
	if err := t.checkIndex(index, t.Len()); err != nil {
		return value, err
	}
	t.root, value = t.removeAt(t.root, index)
	t.debugCheck("RemoveAt")
	return value, nil
}

// Clear drops all elements. Nodes are left to the garbage collector.
func (t *Tree[T]) Clear() {
	t.root = t.null
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n.size == 0 {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}

// checkIndex validates 0 <= index < bound.
func (t *Tree[T]) checkIndex(index, bound int) error {
	if index < 0 || index >= bound {
		return rangeError(index, bound)
	}
	return nil
}

func rangeError(index, bound int) error {
	return fmt.Errorf("%w: index %d not in [0,%d)", ErrIndexOutOfBounds, index, bound)
}

// elementAt finds the node at rank index within the subtree of root.
func elementAt[T any](root *Node[T], index int) *Node[T] {
	assert(index >= 0 && index < root.size, "elementAt: index out of range")
	for {
		leftSize := root.left.size
		switch {
		case index == leftSize:
			return root
		case index < leftSize:
			root = root.left
		default:
			root = root.right
			index -= leftSize + 1
		}
	}
}
