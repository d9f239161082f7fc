package dynarray_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynarray/dynarray"
)

// ExampleDynamicArray_PushBack shows the doubling growth policy.
//
// Scenario:
//
//	Append 0..4 to an empty array and watch capacity follow 1, 2, 4, 4, 8.
//
// Complexity: amortized O(1) per append.
func ExampleDynamicArray_PushBack() {
	a := dynarray.New[int]()
	for i := 0; i < 5; i++ {
		_ = a.PushBack(i)
		fmt.Printf("len=%d cap=%d reallocs=%d\n", a.Len(), a.Cap(), a.Reallocations())
	}
	// Output:
	// len=1 cap=1 reallocs=1
	// len=2 cap=2 reallocs=2
	// len=3 cap=4 reallocs=3
	// len=4 cap=4 reallocs=3
	// len=5 cap=8 reallocs=4
}

// ExampleDynamicArray_At shows bounds-checked access on a literal sequence.
func ExampleDynamicArray_At() {
	a := dynarray.Of("x", "y", "z")
	v, _ := a.At(1)
	fmt.Println(a.Len(), v)

	_, err := a.At(3)
	fmt.Println(errors.Is(err, dynarray.ErrIndexOutOfRange))
	// Output:
	// 3 y
	// true
}

// ExampleDynamicArray_Resize shows capacity retention on shrink and exact growth.
func ExampleDynamicArray_Resize() {
	a := dynarray.New[int]()
	for i := 0; i < 5; i++ {
		_ = a.PushBack(i)
	}
	_ = a.Resize(2)
	fmt.Println(a.Len(), a.Cap(), a.Reallocations())
	_ = a.Resize(10)
	fmt.Println(a.Len(), a.Cap(), a.Reallocations())
	// Output:
	// 2 8 4
	// 10 10 5
}

// ExampleDynamicArray_CBegin walks the live range with read-only cursors.
func ExampleDynamicArray_CBegin() {
	a := dynarray.Of(3, 1, 4)
	var seen []int
	for it := a.CBegin(); !it.Equal(a.CEnd()); it.Next() {
		v, _ := it.Value()
		seen = append(seen, v)
	}
	fmt.Println(seen)

	it := a.CBegin()
	_ = a.PushBack(1)
	_, err := it.Value()
	fmt.Println(errors.Is(err, dynarray.ErrIteratorInvalidated))
	// Output:
	// [3 1 4]
	// true
}

// ExampleDynamicArray_Swap exchanges storage without copying.
func ExampleDynamicArray_Swap() {
	a := dynarray.Of(1, 2, 3)
	b := dynarray.Of(9)
	_ = a.Swap(b)
	fmt.Println(a, b)
	// Output:
	// [9] [1 2 3]
}
