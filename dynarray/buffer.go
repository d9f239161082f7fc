// SPDX-License-Identifier: MIT

// Package dynarray - owned storage block.
//
// Purpose:
//   - Model the backing store as a fixed-size block that is allocated,
//     filled by copying, and released; it never grows in place.
//   - Route every acquisition through allocate and every release through
//     release so that accounting (Event) and the release-once rule live in
//     one place.

package dynarray

import (
	"fmt"
	"runtime"
)

// buffer is an exclusively owned block of slots. len(slots) is the capacity.
// A nil slots slice means "no buffer held".
type buffer[T any] struct {
	slots []T
}

// size reports the number of slots held.
func (b *buffer[T]) size() int {
	return len(b.slots)
}

// allocate obtains a zero-initialized block of exactly n slots.
//
// Behavior highlights:
//   - n == 0 yields an empty buffer (no memory, no Event).
//   - n above the configured limit fails before touching memory.
//   - A runtime refusal (e.g. "makeslice: len out of range") is converted
//     into ErrAllocationFailure; any other panic is re-raised.
//
// Complexity: O(n) for zeroing.
func allocate[T any](n int, o *Options) (buffer[T], error) {
	if n < 0 {
		return buffer[T]{}, ErrInvalidSize
	}
	if n == 0 {
		return buffer[T]{}, nil
	}
	if n > o.maxCapacity {
		return buffer[T]{}, fmt.Errorf("%w: %d slots exceeds limit %d", ErrAllocationFailure, n, o.maxCapacity)
	}
	slots, err := makeSlots[T](n)
	if err != nil {
		return buffer[T]{}, err
	}
	o.notify(Event{Kind: EventAllocate, Slots: n})

	return buffer[T]{slots: slots}, nil
}

// makeSlots calls make and recovers the runtime error raised for sizes the
// runtime refuses outright.
func makeSlots[T any](n int) (slots []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			slots, err = nil, fmt.Errorf("%w: %v", ErrAllocationFailure, re)
		}
	}()

	return make([]T, n), nil
}

// release drops the block. Calling it on an empty buffer is a no-op, so a
// block is reported released at most once.
func (b *buffer[T]) release(o *Options) {
	if b.slots == nil {
		return
	}
	n := len(b.slots)
	clear(b.slots)
	b.slots = nil
	o.notify(Event{Kind: EventRelease, Slots: n})
}
