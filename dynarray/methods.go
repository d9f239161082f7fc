// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Element access, assignment, capacity management and observers.
// Policy:
//   - Every buffer replacement goes through replace (allocate, copy, release).
//   - Allocation happens before any field is mutated, so a failed call leaves
//     the array exactly as it was.
//   - Slots in [Len(), Cap()) are kept at the zero value.

package dynarray

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// replace swaps in a fresh block of exactly n slots holding a copy of src
// (len(src) ≤ n). src may alias the current buffer: it is read before the old
// block is released.
func (a *DynamicArray[T]) replace(n int, src []T) error {
	next, err := allocate[T](n, &a.opts)
	if err != nil {
		return err
	}
	copy(next.slots, src)
	length := len(src)
	a.buf.release(&a.opts)
	a.buf = next
	a.length = length
	a.reallocs++
	a.epoch++

	return nil
}

// ---------- Element access ----------

// inRange reports whether 0 ≤ index < Len().
func (a *DynamicArray[T]) inRange(index int) bool {
	return index >= 0 && index < a.length
}

// At returns the element at index.
//
// Errors:
//   - ErrIndexOutOfRange unless 0 ≤ index < Len(). Never clamps or wraps.
//
// Complexity: O(1).
func (a *DynamicArray[T]) At(index int) (T, error) {
	if !a.inRange(index) {
		var zero T
		return zero, arrayErrorf(ctxAt, index, ErrIndexOutOfRange)
	}

	return a.buf.slots[index], nil
}

// Ref returns a pointer to the element at index, for in-place mutation.
// The pointer is valid only until the next call that reallocates or changes
// Len(); see the package documentation.
//
// Errors:
//   - ErrIndexOutOfRange unless 0 ≤ index < Len().
//
// Complexity: O(1).
func (a *DynamicArray[T]) Ref(index int) (*T, error) {
	if !a.inRange(index) {
		return nil, arrayErrorf(ctxRef, index, ErrIndexOutOfRange)
	}

	return &a.buf.slots[index], nil
}

// Set overwrites the element at index with v. Cursors stay valid.
//
// Errors:
//   - ErrIndexOutOfRange unless 0 ≤ index < Len().
//
// Complexity: O(1).
func (a *DynamicArray[T]) Set(index int, v T) error {
	if !a.inRange(index) {
		return arrayErrorf(ctxSet, index, ErrIndexOutOfRange)
	}
	a.buf.slots[index] = v

	return nil
}

// ---------- Assignment ----------

// Assign replaces the contents of a with a deep copy of src.
//
// Implementation:
//   - Stage 1: allocate exactly src.Len() slots and copy src's elements.
//   - Stage 2: release the previous buffer; Len()==Cap()==src.Len().
//   - Stage 3: Reallocations() increases by one.
//
// a.Assign(a) is safe: the copy is taken before the old block is released.
//
// Errors:
//   - ErrNilArray when src is nil.
//   - ErrAllocationFailure (a unchanged).
//
// Complexity: O(src.Len()).
func (a *DynamicArray[T]) Assign(src *DynamicArray[T]) error {
	if src == nil {
		return arrayErrorf(ctxAssign, 0, ErrNilArray)
	}
	a.init()
	if err := a.replace(src.length, src.live()); err != nil {
		return arrayErrorf(ctxAssign, src.length, err)
	}

	return nil
}

// AssignSlice replaces the contents of a with a copy of seq.
// Same rules as Assign: exact sizing, one reallocation, strong guarantee.
func (a *DynamicArray[T]) AssignSlice(seq []T) error {
	a.init()
	if err := a.replace(len(seq), seq); err != nil {
		return arrayErrorf(ctxAssign, len(seq), err)
	}

	return nil
}

// ---------- Capacity management ----------

// Reserve replaces the buffer with one of exactly n slots.
//
// Behavior highlights:
//   - Always reallocates, even when n ≤ Cap(); no-op requests are not optimized away.
//   - Copies the first min(Len(), n) elements; when n < Len() the tail is dropped
//     and Len() becomes n.
//   - Reallocations() increases by one.
//
// Errors:
//   - ErrInvalidSize when n < 0.
//   - ErrAllocationFailure (a unchanged).
//
// Complexity: O(n).
func (a *DynamicArray[T]) Reserve(n int) error {
	if n < 0 {
		return arrayErrorf(ctxReserve, n, ErrInvalidSize)
	}
	a.init()
	keep := min(a.length, n)
	if err := a.replace(n, a.buf.slots[:keep]); err != nil {
		return arrayErrorf(ctxReserve, n, err)
	}

	return nil
}

// Resize sets Len() to n.
//
// Behavior highlights:
//   - n == Len(): no-op.
//   - n ≤ Cap(): Len() becomes n without reallocation; excess capacity is kept.
//   - n > Cap(): Reserve(n) (exactly n, not doubled), then Len() becomes n.
//   - Elements that become live hold the zero value of T.
//
// Errors:
//   - ErrInvalidSize when n < 0.
//   - ErrAllocationFailure (a unchanged).
//
// Complexity: O(|n - Len()|) within capacity, O(n) when growing past it.
func (a *DynamicArray[T]) Resize(n int) error {
	if n < 0 {
		return arrayErrorf(ctxResize, n, ErrInvalidSize)
	}
	if n == a.length {
		return nil
	}
	if n <= a.buf.size() {
		if n > a.length {
			clear(a.buf.slots[a.length:n])
		} else {
			clear(a.buf.slots[n:a.length])
		}
		a.length = n
		a.epoch++

		return nil
	}
	a.init()
	if err := a.replace(n, a.live()); err != nil {
		return arrayErrorf(ctxResize, n, err)
	}
	a.length = n

	return nil
}

// PushBack appends v.
//
// Growth policy:
//   - Cap()==0:      reserve 1 slot.
//   - Len()==Cap():  reserve 2·Cap() slots (geometric doubling).
//
// Doubling bounds the total copy work of k appends to O(k), at the cost of
// up to 2× over-allocation.
//
// Errors:
//   - ErrAllocationFailure when growth is needed and cannot be satisfied (a unchanged).
//
// Complexity: amortized O(1); O(Len()) on a growth step.
func (a *DynamicArray[T]) PushBack(v T) error {
	if a.length == a.buf.size() {
		a.init()
		next, err := a.grownCapacity()
		if err != nil {
			return arrayErrorf(ctxPushBack, a.length, err)
		}
		if err = a.replace(next, a.live()); err != nil {
			return arrayErrorf(ctxPushBack, a.length, err)
		}
	}
	a.buf.slots[a.length] = v
	a.length++
	a.epoch++

	return nil
}

// grownCapacity returns the capacity PushBack grows to from a full buffer.
func (a *DynamicArray[T]) grownCapacity() (int, error) {
	c := a.buf.size()
	if c == 0 {
		return 1, nil
	}
	if c > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: doubling %d slots overflows", ErrAllocationFailure, c)
	}

	return c * 2, nil
}

// PopBack removes the last element. Capacity is unchanged.
//
// Errors:
//   - ErrUnderflow when the array is empty.
//
// Complexity: O(1).
func (a *DynamicArray[T]) PopBack() error {
	if a.length == 0 {
		return arrayErrorf(ctxPopBack, 0, ErrUnderflow)
	}
	a.length--
	var zero T
	a.buf.slots[a.length] = zero
	a.epoch++

	return nil
}

// Swap exchanges storage, Len, Cap and Reallocations between a and other in
// O(1); no element is copied. Options stay with their instance. Cursors of
// both arrays are invalidated.
//
// Errors:
//   - ErrNilArray when other is nil.
func (a *DynamicArray[T]) Swap(other *DynamicArray[T]) error {
	if other == nil {
		return arrayErrorf(ctxSwap, 0, ErrNilArray)
	}
	if other == a {
		return nil
	}
	a.init()
	other.init()
	a.buf, other.buf = other.buf, a.buf
	a.length, other.length = other.length, a.length
	a.reallocs, other.reallocs = other.reallocs, a.reallocs
	a.epoch++
	other.epoch++

	return nil
}

// Release drops the buffer. Len() and Cap() become 0; Reallocations() is kept.
// Calling Release again is a no-op, so a buffer is released exactly once.
// The array remains usable afterwards.
func (a *DynamicArray[T]) Release() {
	if a.buf.size() == 0 && a.length == 0 {
		return
	}
	a.init()
	a.buf.release(&a.opts)
	a.length = 0
	a.epoch++
}

// ---------- Observers ----------

// Len returns the number of live elements.
func (a *DynamicArray[T]) Len() int {
	if a == nil {
		return 0
	}

	return a.length
}

// Cap returns the number of allocated slots.
func (a *DynamicArray[T]) Cap() int {
	if a == nil {
		return 0
	}

	return a.buf.size()
}

// Reallocations returns how many times the buffer has been replaced.
func (a *DynamicArray[T]) Reallocations() int {
	if a == nil {
		return 0
	}

	return a.reallocs
}

// Empty reports whether Len() == 0.
func (a *DynamicArray[T]) Empty() bool {
	return a.Len() == 0
}

// Values returns a copy of the live elements. The result shares nothing with a.
func (a *DynamicArray[T]) Values() []T {
	if a == nil {
		return nil
	}
	out := make([]T, a.length)
	copy(out, a.live())

	return out
}

// All returns an iterator over (index, value) pairs in [0, Len()).
//
// Mutating the array's length or buffer from inside the loop body panics with
// an error wrapping ErrIteratorInvalidated; Set on existing indices is fine.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if a == nil {
			return
		}
		epoch := a.epoch
		for i := 0; i < a.length; i++ {
			if !yield(i, a.buf.slots[i]) {
				return
			}
			if a.epoch != epoch {
				panic(arrayErrorf(ctxAll, i, ErrIteratorInvalidated))
			}
		}
	}
}

// String implements fmt.Stringer, e.g. "[1 2 3]".
func (a *DynamicArray[T]) String() string {
	if a == nil {
		return "<nil>"
	}

	return fmt.Sprint(a.live())
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacity and reallocation counts are ignored. Two nil arrays are equal.
func Equal[T comparable](a, b *DynamicArray[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return slices.Equal(a.live(), b.live())
}
