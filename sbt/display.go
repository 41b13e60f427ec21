package sbt

import (
	"fmt"
	"io"
	"strings"
)

// Display writes an indented in-order rendering of the tree to w, for
// debugging purposes. Every level of depth is indented by four dashes, empty
// subtrees are shown as `<empty>`.
//
// For a tree holding the sequence 0, 1, 2 the output is
//
//	-------- <empty>
//	---- 0
//	-------- <empty>
//	 1
//	-------- <empty>
//	---- 2
//	-------- <empty>
func (t *Tree[T]) Display(w io.Writer) {
	display(w, t.root, 0)
}

func display[T any](w io.Writer, n *Node[T], depth int) {
	indent := strings.Repeat("-", depth*4)
	if n.size == 0 {
		fmt.Fprintf(w, "%s <empty>\n", indent)
		return
	}
	display(w, n.left, depth+1)
	fmt.Fprintf(w, "%s %v\n", indent, n.value)
	display(w, n.right, depth+1)
}

// DeepEqual reports whether t and other have the same shape, the same subtree
// sizes and equal values at every node. Two trees holding the same sequence
// but shaped differently are not deeply equal.
func (t *Tree[T]) DeepEqual(other *Tree[T], eq func(a, b T) bool) bool {
	if t == nil || other == nil || eq == nil {
		return t == other
	}
	return deepEqual(t.root, other.root, eq)
}

func deepEqual[T any](a, b *Node[T], eq func(a, b T) bool) bool {
	if a.size == 0 {
		return b.size == 0
	}
	if a.size != b.size || !eq(a.value, b.value) {
		return false
	}
	return deepEqual(a.left, b.left, eq) && deepEqual(a.right, b.right, eq)
}
