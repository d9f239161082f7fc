// Package dynarray provides DynamicArray, a generic resizable array that owns
// its backing storage explicitly instead of delegating growth to append.
//
// 🚀 What is a DynamicArray?
//
//	An ordered, index-addressable, contiguous sequence of T with a visible
//	split between Len (live elements) and Cap (allocated slots). Every buffer
//	replacement is counted, so the growth policy is observable and testable:
//	  • PushBack doubles capacity when full (amortized O(1) append)
//	  • Reserve and Resize size the buffer exactly, with no hidden inflation
//	  • Reallocations() reports how many times the buffer was replaced
//
// ✨ Key guarantees:
//   - Len() ≤ Cap() at all times; Cap() == 0 iff no buffer is held.
//   - Sized construction and growth zero-initialize every new slot.
//   - At/Ref/Set never clamp or wrap: out-of-range indices return ErrIndexOutOfRange.
//   - PopBack on an empty array returns ErrUnderflow.
//   - Failed allocations return ErrAllocationFailure and leave the array untouched.
//   - Clone and Assign deep-copy element values into independent storage;
//     Swap exchanges buffers in O(1) without copying.
//
// Lifecycle:
//
//	a := dynarray.New[int]()             // len=0 cap=0 reallocs=0
//	_ = a.PushBack(1)                    // cap 1
//	_ = a.PushBack(2)                    // cap 2
//	_ = a.PushBack(3)                    // cap 4
//	_ = a.Resize(10)                     // cap 10 exactly
//	a.Release()                          // buffer released once
//
// Iteration:
//
//	for it := a.CBegin(); !it.Equal(a.CEnd()); it.Next() {
//		v, _ := it.Value()
//		_ = v
//	}
//
//	for i, v := range a.All() { ... }
//
// Any operation that reallocates or changes Len invalidates every cursor
// obtained earlier; stale cursors report ErrIteratorInvalidated instead of
// reading freed or shifted storage. Pointers returned by Ref follow the same
// rule but cannot be checked, so do not hold them across mutations.
//
// Concurrency:
//
//	DynamicArray is not safe for concurrent mutation. Distinct instances share
//	no state (Clone copies), so they may be used from different goroutines.
//
// Errors:
//
//	ErrIndexOutOfRange     - index outside [0, Len()).
//	ErrUnderflow           - PopBack on an empty array.
//	ErrAllocationFailure   - a buffer request could not be satisfied.
//	ErrInvalidSize         - negative size or capacity argument.
//	ErrNilArray            - nil *DynamicArray passed as an operand.
//	ErrIteratorInvalidated - cursor used after a reallocating or resizing call.
package dynarray
