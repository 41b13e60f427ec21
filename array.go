package dsarray

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/dsarray/sbt"
)

// Array is a mutable sequence of elements of type T, addressed by position.
//
// An array created by
//
//	Array[T]{}
//
// is a valid object and behaves like an empty sequence. A nil *Array reads as
// an empty sequence as well; Set and Insert return ErrIllegalArguments for it,
// and Append panics, like a write to a nil map does.
//
// Methods taking an index return an error wrapping ErrIndexOutOfBounds if the
// index is outside the valid range. The array is left unchanged in this case.
type Array[T any] struct {
	tree *sbt.Tree[T]
}

// New creates an empty array.
func New[T any]() *Array[T] {
	return &Array[T]{tree: sbt.New[T]()}
}

// Of creates an array holding values, in order.
func Of[T any](values ...T) *Array[T] {
	return FromSlice(values)
}

// FromSlice creates an array holding a copy of values, in order.
// The array is built in O(n).
func FromSlice[T any](values []T) *Array[T] {
	return &Array[T]{tree: sbt.FromSlice(values)}
}

// Collect creates an array from the values of seq, in order.
func Collect[T any](seq iter.Seq[T]) *Array[T] {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return FromSlice(values)
}

// t returns the backing tree, creating it for zero-value arrays. For a nil
// array it returns a detached empty tree.
func (a *Array[T]) t() *sbt.Tree[T] {
	if a == nil {
		return sbt.New[T]()
	}
	if a.tree == nil {
		a.tree = sbt.New[T]()
	}
	return a.tree
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a == nil || a.tree == nil {
		return 0
	}
	return a.tree.Len()
}

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	return a.t().At(i)
}

// Set replaces the element at index i. Setting the element at index Len
// appends value.
func (a *Array[T]) Set(i int, value T) error {
	if a == nil {
		return ErrIllegalArguments
	}
	if i == a.Len() {
		a.t().Append(value)
		return nil
	}
	return a.t().Set(i, value)
}

// Insert inserts value at index i, shifting all subsequent elements. i may be
// equal to Len, which appends value.
func (a *Array[T]) Insert(i int, value T) error {
	if a == nil {
		return ErrIllegalArguments
	}
	return a.t().InsertAt(i, value)
}

// Append adds values to the end of the array.
func (a *Array[T]) Append(values ...T) {
	if a == nil {
		panic("dsarray: Append to nil array")
	}
	tree := a.t()
	for _, v := range values {
		tree.Append(v)
	}
}

// RemoveAt removes the element at index i and returns it.
func (a *Array[T]) RemoveAt(i int) (T, error) {
	return a.t().RemoveAt(i)
}

// RemoveFunc removes the first element for which pred returns true. It
// reports whether an element has been removed. This is an O(n) operation.
func (a *Array[T]) RemoveFunc(pred func(T) bool) bool {
	i := a.IndexFunc(pred)
	if i < 0 {
		return false
	}
	_, err := a.t().RemoveAt(i)
	assert(err == nil, "RemoveFunc: index found by scan is out of range")
	return true
}

// IndexFunc returns the index of the first element for which pred returns
// true, or -1 if there is none. This is an O(n) operation.
func (a *Array[T]) IndexFunc(pred func(T) bool) int {
	for i, v := range a.Enumerate() {
		if pred(v) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether at least one element satisfies pred.
func (a *Array[T]) ContainsFunc(pred func(T) bool) bool {
	return a.IndexFunc(pred) >= 0
}

// Clear removes all elements.
func (a *Array[T]) Clear() {
	if a != nil && a.tree != nil {
		a.tree.Clear()
		tracer().Debugf("dsarray: cleared array")
	}
}

// ToSlice returns the elements of the array as a new slice.
func (a *Array[T]) ToSlice() []T {
	return a.t().Slice()
}

// CopyTo copies all elements to dst, starting at dst[at]. dst must have room
// for Len elements.
func (a *Array[T]) CopyTo(dst []T, at int) error {
	return a.t().CopyTo(dst, at)
}

// All returns an iterator over all elements in order.
func (a *Array[T]) All() iter.Seq[T] {
	return a.t().All()
}

// Backward returns an iterator over all elements in reverse order.
func (a *Array[T]) Backward() iter.Seq[T] {
	return a.t().Backward()
}

// Enumerate returns an iterator over (index, element) pairs in order.
func (a *Array[T]) Enumerate() iter.Seq2[int, T] {
	return a.t().Enumerate()
}

// Stats returns diagnostic information about the backing tree.
func (a *Array[T]) Stats() sbt.Stats {
	return a.t().Stats()
}

// Check validates the invariants of the backing tree. It is an O(n) operation
// intended for tests and debugging.
func (a *Array[T]) Check() error {
	return a.t().Check()
}

// String returns the elements formatted like a slice, e.g. "[1 2 3]".
// This may be an expensive operation for large arrays.
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Enumerate() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func rangeError(index, bound int) error {
	return fmt.Errorf("%w: index %d not in [0,%d)", ErrIndexOutOfBounds, index, bound)
}
