// Package dynarray is the module root of a from-scratch resizable array for Go.
//
// 🚀 What is in here?
//
//	dynarray/       — DynamicArray[T]: explicit storage ownership, Len/Cap split,
//	                  doubling PushBack, exact Reserve/Resize, checked cursors
//	internal/config — YAML settings for the trace tool
//	internal/trace  — growth traces, ASCII charts and end-to-end scenarios
//	cmd/dynarray    — CLI: trace, scenario, config init
//	examples/       — runnable demonstrations
//
// ✨ Why not just append?
//
//	append hides when and how much it grows. DynamicArray makes every buffer
//	replacement explicit and countable, so the amortized-growth contract can
//	be asserted in tests rather than assumed.
//
//	go get github.com/katalvlaran/dynarray/dynarray
package dynarray
