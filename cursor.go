package dsarray

// Cursor navigates an array by position.
//
// A cursor sits between elements: position 0 is before the first element,
// position Len after the last one. Next returns the element after the cursor
// and moves forward, Prev returns the element before the cursor and moves
// backward. Every step is an O(log n) lookup, so a cursor stays valid while
// the array is edited, as long as its position remains within bounds.
type Cursor[T any] struct {
	array *Array[T]
	pos   int
}

// NewCursor creates a cursor positioned at the start of a.
func (a *Array[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{array: a}
}

// Pos returns the current cursor position.
func (c *Cursor[T]) Pos() int {
	if c == nil {
		return 0
	}
	return c.pos
}

// Seek moves the cursor to position pos, which must be in [0,Len].
func (c *Cursor[T]) Seek(pos int) error {
	if c == nil || c.array == nil {
		return ErrIllegalArguments
	}
	if pos < 0 || pos > c.array.Len() {
		return rangeError(pos, c.array.Len()+1)
	}
	c.pos = pos
	return nil
}

// Next returns the element after the cursor and advances the cursor by one.
// At the end of the array Next returns false and does not move the cursor.
func (c *Cursor[T]) Next() (T, bool) {
	var zero T
	if c == nil || c.array == nil || c.pos >= c.array.Len() {
		return zero, false
	}
	v, err := c.array.At(c.pos)
	if err != nil {
		return zero, false
	}
	c.pos++
	return v, true
}

// Prev returns the element before the cursor and moves the cursor back by
// one. At the start of the array Prev returns false.
func (c *Cursor[T]) Prev() (T, bool) {
	var zero T
	if c == nil || c.array == nil || c.pos <= 0 || c.pos > c.array.Len() {
		return zero, false
	}
	v, err := c.array.At(c.pos - 1)
	if err != nil {
		return zero, false
	}
	c.pos--
	return v, true
}

// Insert inserts value at the cursor position and moves the cursor behind it.
func (c *Cursor[T]) Insert(value T) error {
	if c == nil || c.array == nil {
		return ErrIllegalArguments
	}
	if err := c.array.Insert(c.pos, value); err != nil {
		return err
	}
	c.pos++
	return nil
}

// Delete removes the element after the cursor and returns it. The cursor
// position does not change.
func (c *Cursor[T]) Delete() (T, error) {
	if c == nil || c.array == nil {
		var zero T
		return zero, ErrIllegalArguments
	}
	return c.array.RemoveAt(c.pos)
}
