// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/dynarray/dynarray"
	"github.com/katalvlaran/dynarray/internal/config"
)

// Op names the operation that produced a Sample.
type Op string

const (
	OpPush   Op = "push"
	OpResize Op = "resize"
)

// Sample is the array state right after one operation.
type Sample struct {
	Step     int
	Op       Op
	Len      int
	Cap      int
	Reallocs int
	Grew     bool // the operation replaced the buffer
}

// Summary aggregates a finished trace.
type Summary struct {
	Operations    int
	FinalLen      int
	FinalCap      int
	Reallocations int
	Copied        int     // elements copied across all reallocations
	PeakOverAlloc float64 // max Cap/Len over samples with Len > 0
}

// Trace holds the samples of one run, stored in a DynamicArray itself.
type Trace struct {
	Samples *dynarray.DynamicArray[Sample]
	copied  int
}

// Logger is the subset of *log.Logger used by Run.
type Logger interface {
	Printf(format string, v ...any)
}

// Run appends cfg.Appends integers to an empty array, then resizes to
// cfg.ResizeTo when it is non-negative, sampling the state after every step.
// A nil logger discards step logs.
func Run(cfg *config.Config, logger Logger) (*Trace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var opts []dynarray.Option
	if cfg.MaxCapacity > 0 {
		opts = append(opts, dynarray.WithMaxCapacity(cfg.MaxCapacity))
	}
	arr := dynarray.New[int](opts...)
	tr := &Trace{Samples: dynarray.New[Sample]()}

	for i := 0; i < cfg.Appends; i++ {
		before := arr.Reallocations()
		prevLen := arr.Len()
		if err := arr.PushBack(i); err != nil {
			return tr, fmt.Errorf("trace: step %d: %w", i+1, err)
		}
		s := tr.record(arr, OpPush, before, prevLen)
		if s.Grew {
			logger.Printf("step %d: grew to cap=%d (copied %d)", s.Step, s.Cap, prevLen)
		}
	}

	if cfg.ResizeTo >= 0 {
		before := arr.Reallocations()
		prevLen := arr.Len()
		if err := arr.Resize(cfg.ResizeTo); err != nil {
			return tr, fmt.Errorf("trace: resize to %d: %w", cfg.ResizeTo, err)
		}
		s := tr.record(arr, OpResize, before, prevLen)
		logger.Printf("resize %d -> %d: cap=%d reallocated=%t", prevLen, s.Len, s.Cap, s.Grew)
	}

	return tr, nil
}

// record appends a Sample for the current state of arr. prevLen elements were
// live before the operation, which is what a reallocation copied.
func (t *Trace) record(arr *dynarray.DynamicArray[int], op Op, reallocsBefore, prevLen int) Sample {
	s := Sample{
		Step:     t.Samples.Len() + 1,
		Op:       op,
		Len:      arr.Len(),
		Cap:      arr.Cap(),
		Reallocs: arr.Reallocations(),
		Grew:     arr.Reallocations() != reallocsBefore,
	}
	if s.Grew {
		t.copied += min(prevLen, s.Cap)
	}
	// Samples has no limit, so PushBack can only fail on runtime refusal.
	if err := t.Samples.PushBack(s); err != nil {
		panic(err)
	}

	return s
}

// Summary folds the samples into totals.
func (t *Trace) Summary() Summary {
	sum := Summary{Operations: t.Samples.Len(), Copied: t.copied}
	for _, s := range t.Samples.All() {
		if s.Len > 0 {
			ratio := float64(s.Cap) / float64(s.Len)
			if ratio > sum.PeakOverAlloc {
				sum.PeakOverAlloc = ratio
			}
		}
		sum.FinalLen, sum.FinalCap, sum.Reallocations = s.Len, s.Cap, s.Reallocs
	}

	return sum
}

// Capacities returns Cap after each step, for plotting.
func (t *Trace) Capacities() []float64 {
	out := make([]float64, 0, t.Samples.Len())
	for _, s := range t.Samples.All() {
		out = append(out, float64(s.Cap))
	}

	return out
}
