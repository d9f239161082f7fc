// SPDX-License-Identifier: MIT

// Package dynarray: functional configuration for DynamicArray.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values,
//   - gatherOptions, which resolves a ...Option list into Options.
//
// Notes:
//   - Options are fixed at construction and carried over by Clone.
//   - Swap exchanges storage only; each instance keeps its own Options.
package dynarray

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxCapacity bounds the number of slots a single allocation may
	// request. Larger requests fail with ErrAllocationFailure before any
	// memory is touched.
	DefaultMaxCapacity = math.MaxInt32
)

// ---------- Internal panic messages ----------

const (
	panicMaxCapacityInvalid = "dynarray: WithMaxCapacity: limit must be > 0"
	panicObserverNil        = "dynarray: WithObserver: observer must be non-nil"
)

// EventKind classifies a buffer lifecycle event.
type EventKind int

const (
	// EventAllocate is emitted when a new non-empty buffer is acquired.
	EventAllocate EventKind = iota

	// EventRelease is emitted when a non-empty buffer is released.
	EventRelease
)

// String returns "allocate" or "release".
func (k EventKind) String() string {
	switch k {
	case EventAllocate:
		return "allocate"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event describes one buffer acquisition or release.
// Slots is the size of the buffer involved.
type Event struct {
	Kind  EventKind
	Slots int
}

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	maxCapacity int         // DefaultMaxCapacity
	observer    func(Event) // nil ⇒ no accounting callbacks
}

// WithMaxCapacity caps the number of slots any single allocation may request.
//
// Behavior highlights:
//   - Reserve, Resize, PushBack growth, construction and assignment all honor it.
//   - Exceeding it yields ErrAllocationFailure with the array unchanged.
//
// Errors:
//   - Panics when limit ≤ 0 (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxCapacity(limit int) Option {
	if limit <= 0 {
		panic(panicMaxCapacityInvalid)
	}

	return func(o *Options) { o.maxCapacity = limit }
}

// WithObserver registers fn to receive an Event for every buffer acquired or
// released by the array. Zero-slot requests allocate nothing and emit nothing.
// The callback runs synchronously inside the mutating call.
func WithObserver(fn func(Event)) Option {
	if fn == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = fn }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{maxCapacity: DefaultMaxCapacity}
}

// gatherOptions applies opts left-to-right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// notify forwards ev to the observer, if any.
func (o *Options) notify(ev Event) {
	if o.observer != nil {
		o.observer(ev)
	}
}
