package sbt

import "iter"

// maxDepth bounds the height of any tree which fits into memory. The size
// balance guarantees at least Fibonacci-like growth of subtree sizes with
// height, so 64 levels are far beyond reach.
const maxDepth = 64

// All returns an iterator over all elements in ascending rank order.
//
// Each call starts a fresh traversal. Mutating the tree while the iteration is
// in progress is undefined.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack [maxDepth]*Node[T]
		sp := 0
		n := t.root
		for n.size > 0 || sp > 0 {
			for n.size > 0 {
				assert(sp < maxDepth, "sbt.All: traversal stack overflow")
				stack[sp] = n
				sp++
				n = n.left
			}
			sp--
			n = stack[sp]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Backward returns an iterator over all elements in descending rank order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack [maxDepth]*Node[T]
		sp := 0
		n := t.root
		for n.size > 0 || sp > 0 {
			for n.size > 0 {
				assert(sp < maxDepth, "sbt.Backward: traversal stack overflow")
				stack[sp] = n
				sp++
				n = n.right
			}
			sp--
			n = stack[sp]
			if !yield(n.value) {
				return
			}
			n = n.left
		}
	}
}

// Enumerate returns an iterator over (rank, element) pairs in ascending order.
func (t *Tree[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range t.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
