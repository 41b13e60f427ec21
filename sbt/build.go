package sbt

// FromSlice creates a tree holding a copy of values, in order.
//
// The tree is built exactly balanced in O(n), which is considerably faster than
// appending the values one by one. No rotation is performed.
func FromSlice[T any](values []T) *Tree[T] {
	t := New[T]()
	t.root = t.fromArray(values, 0, len(values))
	tracer().Debugf("sbt: built balanced tree of %d elements", t.root.size)
	return t
}

// fromArray builds a balanced subtree from a[start:start+length]. The element
// in the middle becomes the root, the halves left and right of it become the
// children.
func (t *Tree[T]) fromArray(a []T, start, length int) *Node[T] {
	assert(start >= 0 && length >= 0 && start+length <= len(a), "fromArray: range out of bounds")
	switch length {
	case 0:
		return t.null
	case 1:
		return newLeaf(a[start], t.null)
	}
	mid := start + length/2
	return &Node[T]{
		value: a[mid],
		size:  length,
		left:  t.fromArray(a, start, length/2),
		right: t.fromArray(a, mid+1, (length-1)/2),
	}
}

// CopyTo copies all elements of t, in order, to dst[at:]. dst must have room
// for Len elements starting at at.
func (t *Tree[T]) CopyTo(dst []T, at int) error {
	if at < 0 || at > len(dst) {
		return rangeError(at, len(dst)+1)
	}
	if len(dst)-at < t.Len() {
		return rangeError(at+t.Len(), len(dst)+1)
	}
	copyTo(t.root, dst, at)
	return nil
}

// Slice returns a new slice holding all elements of t, in order.
func (t *Tree[T]) Slice() []T {
	s := make([]T, t.Len())
	copyTo(t.root, s, 0)
	return s
}

// copyTo writes the subtree of root in-order to dst, starting at index at.
// It returns the index following the last element written.
func copyTo[T any](root *Node[T], dst []T, at int) int {
	for root.size > 0 {
		at = copyTo(root.left, dst, at)
		dst[at] = root.value
		at++
		root = root.right
	}
	return at
}
