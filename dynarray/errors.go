// SPDX-License-Identifier: MIT
// Package dynarray: sentinel error set.
// Every exported operation returns one of these sentinels, possibly wrapped
// with call-site context; tests match them via errors.Is.

package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	// Detected before any storage is touched.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrUnderflow indicates PopBack on an array that is already empty.
	ErrUnderflow = errors.New("dynarray: pop from empty array")

	// ErrAllocationFailure indicates that a buffer of the requested size could
	// not be obtained (limit exceeded, size overflow, or runtime refusal).
	ErrAllocationFailure = errors.New("dynarray: allocation failure")

	// ErrInvalidSize indicates a negative size or capacity argument.
	ErrInvalidSize = errors.New("dynarray: invalid size")

	// ErrNilArray indicates that a nil *DynamicArray was passed as an operand.
	ErrNilArray = errors.New("dynarray: nil array")

	// ErrIteratorInvalidated indicates use of a cursor after the array was
	// reallocated or its length changed.
	ErrIteratorInvalidated = errors.New("dynarray: iterator invalidated")
)

// Method tags used in error wrappers.
const (
	ctxAt        = "At"
	ctxRef       = "Ref"
	ctxSet       = "Set"
	ctxReserve   = "Reserve"
	ctxResize    = "Resize"
	ctxPushBack  = "PushBack"
	ctxPopBack   = "PopBack"
	ctxNewSized  = "NewSized"
	ctxFromSlice = "FromSlice"
	ctxClone     = "Clone"
	ctxAssign    = "Assign"
	ctxSwap      = "Swap"
	ctxIter      = "Iterator"
	ctxAll       = "All"
)

// arrayErrorf wraps a sentinel with the method name and the offending
// index or size, e.g. "DynamicArray.At(7): dynarray: index out of range".
func arrayErrorf(method string, arg int, err error) error {
	return fmt.Errorf("DynamicArray.%s(%d): %w", method, arg, err)
}
