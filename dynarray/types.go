// SPDX-License-Identifier: MIT
// Package dynarray defines the DynamicArray type and its constructors.
//
// This file declares DynamicArray and the four ways to create one:
// New (empty), NewSized (n zero values), FromSlice / Of (copy of a literal
// sequence) and Clone (deep copy of another array).

package dynarray

// DynamicArray is a growable, contiguous sequence of T that owns its storage.
//
// length counts live elements in buf.slots[:length]; slots past length are
// allocated but hold the zero value and are not part of the sequence.
// reallocs counts buffer-replacing events. epoch changes whenever length or
// the buffer changes, which is how cursors detect invalidation.
//
// The zero value is an empty array with default options, ready to use.
type DynamicArray[T any] struct {
	buf      buffer[T] // exclusively owned storage; Cap() == buf.size()
	length   int       // live elements, 0 ≤ length ≤ buf.size()
	reallocs int       // buffer-replacing events so far
	epoch    uint64    // bumped on every length change or reallocation
	opts     Options   // resolved construction options
	ready    bool      // opts resolved (false only for the zero value)
}

// New creates an empty array: Len()==0, Cap()==0, Reallocations()==0.
// No storage is allocated until the first growth.
//
// Complexity: O(len(opts)).
func New[T any](opts ...Option) *DynamicArray[T] {
	return &DynamicArray[T]{opts: gatherOptions(opts...), ready: true}
}

// NewSized creates an array holding n zero values of T.
//
// Implementation:
//   - Stage 1: validate n ≥ 0.
//   - Stage 2: allocate exactly n zero-initialized slots.
//   - Stage 3: Len()==Cap()==n, Reallocations()==1.
//
// Errors:
//   - ErrInvalidSize when n < 0.
//   - ErrAllocationFailure when n slots cannot be obtained.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewSized[T any](n int, opts ...Option) (*DynamicArray[T], error) {
	if n < 0 {
		return nil, arrayErrorf(ctxNewSized, n, ErrInvalidSize)
	}
	a := New[T](opts...)
	buf, err := allocate[T](n, &a.opts)
	if err != nil {
		return nil, arrayErrorf(ctxNewSized, n, err)
	}
	a.buf = buf
	a.length = n
	a.reallocs = 1

	return a, nil
}

// FromSlice creates an array holding a copy of seq, in order.
// Len()==Cap()==len(seq) and Reallocations()==1, even for an empty seq.
// Later changes to seq do not affect the array.
//
// Complexity: O(len(seq)).
func FromSlice[T any](seq []T, opts ...Option) (*DynamicArray[T], error) {
	a := New[T](opts...)
	buf, err := allocate[T](len(seq), &a.opts)
	if err != nil {
		return nil, arrayErrorf(ctxFromSlice, len(seq), err)
	}
	copy(buf.slots, seq)
	a.buf = buf
	a.length = len(seq)
	a.reallocs = 1

	return a, nil
}

// Of is FromSlice for literal values with default options.
// It panics if the values cannot be stored, which for literal input
// indicates a programmer error.
func Of[T any](values ...T) *DynamicArray[T] {
	a, err := FromSlice(values)
	if err != nil {
		panic(err)
	}

	return a
}

// Clone returns a deep copy of a: a fresh buffer of exactly a.Len() slots,
// the same elements, the same options, and Reallocations()==1.
// Spare capacity of a is not carried over.
//
// Element values are copied with assignment; for pointer-like T the copy
// shares the pointees.
//
// Complexity: O(Len()).
func (a *DynamicArray[T]) Clone() (*DynamicArray[T], error) {
	if a == nil {
		return nil, arrayErrorf(ctxClone, 0, ErrNilArray)
	}
	a.init()
	c := &DynamicArray[T]{opts: a.opts, ready: true}
	buf, err := allocate[T](a.length, &c.opts)
	if err != nil {
		return nil, arrayErrorf(ctxClone, a.length, err)
	}
	copy(buf.slots, a.live())
	c.buf = buf
	c.length = a.length
	c.reallocs = 1

	return c, nil
}

// init resolves default options for a zero-value DynamicArray.
func (a *DynamicArray[T]) init() {
	if !a.ready {
		a.opts = defaultOptions()
		a.ready = true
	}
}

// live returns the observable range buf.slots[:length].
func (a *DynamicArray[T]) live() []T {
	return a.buf.slots[:a.length]
}
