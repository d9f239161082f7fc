// SPDX-License-Identifier: MIT

// Package dynarray - cursors over the live range.
//
// Begin/End and CBegin/CEnd delimit [0, Len()). A cursor remembers the
// array's epoch at the moment it was obtained; once the array reallocates or
// its length changes, the cursor reports ErrIteratorInvalidated instead of
// touching storage. Cursors are plain values and allocate nothing.

package dynarray

// cursor is the shared state of Iterator and ConstIterator.
type cursor[T any] struct {
	arr   *DynamicArray[T]
	epoch uint64
	pos   int
}

func newCursor[T any](a *DynamicArray[T], pos int) cursor[T] {
	return cursor[T]{arr: a, epoch: a.epoch, pos: pos}
}

// valid reports whether the array is unchanged since the cursor was taken.
func (c *cursor[T]) valid() bool {
	return c.arr != nil && c.arr.epoch == c.epoch
}

// check validates the cursor and, when deref is set, that it points at a live element.
func (c *cursor[T]) check(deref bool) error {
	if !c.valid() {
		return arrayErrorf(ctxIter, c.pos, ErrIteratorInvalidated)
	}
	if deref && c.pos >= c.arr.length {
		return arrayErrorf(ctxIter, c.pos, ErrIndexOutOfRange)
	}

	return nil
}

func (c *cursor[T]) value() (T, error) {
	if err := c.check(true); err != nil {
		var zero T
		return zero, err
	}

	return c.arr.buf.slots[c.pos], nil
}

func (c *cursor[T]) next() error {
	if err := c.check(true); err != nil {
		return err
	}
	c.pos++

	return nil
}

// Iterator is a mutable forward cursor into a DynamicArray.
type Iterator[T any] struct {
	c cursor[T]
}

// Begin returns a mutable cursor at index 0.
func (a *DynamicArray[T]) Begin() Iterator[T] {
	return Iterator[T]{c: newCursor(a, 0)}
}

// End returns a mutable cursor one past the last element.
func (a *DynamicArray[T]) End() Iterator[T] {
	return Iterator[T]{c: newCursor(a, a.length)}
}

// Value returns the element under the cursor.
//
// Errors:
//   - ErrIteratorInvalidated if the array changed since the cursor was taken.
//   - ErrIndexOutOfRange at End().
func (it *Iterator[T]) Value() (T, error) {
	return it.c.value()
}

// Set overwrites the element under the cursor. Writing does not invalidate cursors.
func (it *Iterator[T]) Set(v T) error {
	if err := it.c.check(true); err != nil {
		return err
	}
	it.c.arr.buf.slots[it.c.pos] = v

	return nil
}

// Next advances the cursor by one.
// Advancing from End() returns ErrIndexOutOfRange and leaves the cursor in place.
func (it *Iterator[T]) Next() error {
	return it.c.next()
}

// Index returns the cursor position.
func (it *Iterator[T]) Index() int {
	return it.c.pos
}

// Valid reports whether the cursor may still be used.
func (it *Iterator[T]) Valid() bool {
	return it.c.valid()
}

// Equal reports whether both cursors refer to the same position of the same array.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.c.arr == other.c.arr && it.c.pos == other.c.pos
}

// ConstIterator is a read-only forward cursor into a DynamicArray.
type ConstIterator[T any] struct {
	c cursor[T]
}

// CBegin returns a read-only cursor at index 0.
func (a *DynamicArray[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{c: newCursor(a, 0)}
}

// CEnd returns a read-only cursor one past the last element.
func (a *DynamicArray[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{c: newCursor(a, a.length)}
}

// Value returns the element under the cursor; errors as for Iterator.Value.
func (it *ConstIterator[T]) Value() (T, error) {
	return it.c.value()
}

// Next advances the cursor by one.
func (it *ConstIterator[T]) Next() error {
	return it.c.next()
}

// Index returns the cursor position.
func (it *ConstIterator[T]) Index() int {
	return it.c.pos
}

// Valid reports whether the cursor may still be used.
func (it *ConstIterator[T]) Valid() bool {
	return it.c.valid()
}

// Equal reports whether both cursors refer to the same position of the same array.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.c.arr == other.c.arr && it.c.pos == other.c.pos
}
