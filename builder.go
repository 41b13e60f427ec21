package dsarray

import (
	"github.com/npillmayer/dsarray/sbt"
)

// Builder incrementally stages elements and finalizes them into an Array.
//
// Builder collects elements at both ends and materializes the array only when
// Array() is called. The array is then built in one O(n) pass, which is faster
// than appending elements to an Array one by one.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended elements in reverse logical order.
	front []T
	// back keeps appended elements in logical order.
	back []T

	done  bool
	dirty bool
	array *Array[T]
}

// NewBuilder creates a new and empty array builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Array returns the array built from all staged elements.
//
// It is illegal to continue adding elements after Array has been called, but
// Array may be called multiple times. Repeated calls return the same array
// until Reset is called.
func (b *Builder[T]) Array() *Array[T] {
	if b == nil {
		return New[T]()
	}
	if b.dirty || b.array == nil {
		b.array = &Array[T]{tree: sbt.FromSlice(b.ordered())}
		b.dirty = false
	}
	b.done = true
	if b.array.IsEmpty() {
		tracer().Debugf("array builder: array is void")
	}
	return b.array
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.array = nil
}

// Append appends values to the staged build.
func (b *Builder[T]) Append(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrArrayCompleted
	}
	if len(values) == 0 {
		return nil
	}
	b.back = append(b.back, values...)
	b.dirty = true
	return nil
}

// Prepend prepends values to the staged build. The values keep their order,
// i.e. after Prepend(1, 2) the build starts with 1, 2.
func (b *Builder[T]) Prepend(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrArrayCompleted
	}
	// front is stored in reverse logical order.
	for i := len(values) - 1; i >= 0; i-- {
		b.front = append(b.front, values[i])
	}
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Len returns the number of staged elements.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

func (b *Builder[T]) ordered() []T {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]T, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
