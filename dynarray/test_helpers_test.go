// SPDX-License-Identifier: MIT
// Package dynarray_test contains shared fixtures for dynarray tests.

package dynarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynarray/dynarray"
)

// pushRange appends 0..n-1 to a and fails the test on any error.
func pushRange(t testing.TB, a *dynarray.DynamicArray[int], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, a.PushBack(i), "PushBack(%d)", i)
	}
}

// mustFromSlice builds an array from seq and fails the test on error.
func mustFromSlice[T any](t testing.TB, seq []T, opts ...dynarray.Option) *dynarray.DynamicArray[T] {
	t.Helper()
	a, err := dynarray.FromSlice(seq, opts...)
	require.NoError(t, err)

	return a
}

// expectedGrowth returns the capacity and reallocation count after k appends
// to an empty array: the first power of two ≥ k, and ⌈log2 k⌉ + 1.
func expectedGrowth(k int) (capacity, reallocs int) {
	if k == 0 {
		return 0, 0
	}
	capacity, reallocs = 1, 1
	for capacity < k {
		capacity *= 2
		reallocs++
	}

	return capacity, reallocs
}

// eventCounter tallies observer events.
type eventCounter struct {
	allocs, releases       int
	allocSlots, freedSlots int
}

func (c *eventCounter) observe(ev dynarray.Event) {
	switch ev.Kind {
	case dynarray.EventAllocate:
		c.allocs++
		c.allocSlots += ev.Slots
	case dynarray.EventRelease:
		c.releases++
		c.freedSlots += ev.Slots
	}
}
