// SPDX-License-Identifier: MIT

package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynarray/dynarray"
)

// Outcome is the verdict of one scenario.
type Outcome struct {
	Name   string
	Pass   bool
	Detail string
}

// Scenario is a named end-to-end check of the container contract.
type Scenario struct {
	Name        string
	Description string
	Run         func() Outcome
}

// Scenarios returns the built-in checks in a stable order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "append",
			Description: "append 0..4 to an empty array",
			Run:         scenarioAppend,
		},
		{
			Name:        "literal",
			Description: `build {"x","y","z"} and index it`,
			Run:         scenarioLiteral,
		},
		{
			Name:        "resize",
			Description: "shrink 5→2 within capacity 8, then grow to 10",
			Run:         scenarioResize,
		},
	}
}

// RunAll executes every scenario.
func RunAll() []Outcome {
	sc := Scenarios()
	out := make([]Outcome, 0, len(sc))
	for _, s := range sc {
		out = append(out, s.Run())
	}

	return out
}

// verdict builds an Outcome from a list of failed expectations.
func verdict(name string, failures []string, ok string) Outcome {
	if len(failures) == 0 {
		return Outcome{Name: name, Pass: true, Detail: ok}
	}

	return Outcome{Name: name, Detail: fmt.Sprint(failures)}
}

func expect(failures []string, cond bool, format string, args ...any) []string {
	if !cond {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	return failures
}

func scenarioAppend() Outcome {
	var failures []string
	a := dynarray.New[int]()
	for i := 0; i < 5; i++ {
		if err := a.PushBack(i); err != nil {
			return Outcome{Name: "append", Detail: err.Error()}
		}
	}
	failures = expect(failures, a.Len() == 5, "len=%d want 5", a.Len())
	failures = expect(failures, a.Cap() == 8, "cap=%d want 8", a.Cap())
	failures = expect(failures, a.Reallocations() == 4, "reallocs=%d want 4", a.Reallocations())

	return verdict("append", failures, fmt.Sprintf("len=%d cap=%d reallocs=%d", a.Len(), a.Cap(), a.Reallocations()))
}

func scenarioLiteral() Outcome {
	var failures []string
	a := dynarray.Of("x", "y", "z")
	v, err := a.At(1)
	failures = expect(failures, a.Len() == 3, "len=%d want 3", a.Len())
	failures = expect(failures, err == nil && v == "y", "At(1)=%q,%v want \"y\"", v, err)
	_, err = a.At(3)
	failures = expect(failures, errors.Is(err, dynarray.ErrIndexOutOfRange), "At(3) err=%v want index out of range", err)

	return verdict("literal", failures, fmt.Sprintf("%s At(1)=%s At(3) rejected", a, v))
}

func scenarioResize() Outcome {
	var failures []string
	a := dynarray.New[int]()
	for i := 0; i < 5; i++ {
		if err := a.PushBack(i); err != nil {
			return Outcome{Name: "resize", Detail: err.Error()}
		}
	}
	base := a.Reallocations()
	if err := a.Resize(2); err != nil {
		return Outcome{Name: "resize", Detail: err.Error()}
	}
	failures = expect(failures, a.Len() == 2 && a.Cap() == 8, "after Resize(2): len=%d cap=%d want 2/8", a.Len(), a.Cap())
	failures = expect(failures, a.Reallocations() == base, "Resize(2) reallocated")
	if err := a.Resize(10); err != nil {
		return Outcome{Name: "resize", Detail: err.Error()}
	}
	failures = expect(failures, a.Cap() == 10, "after Resize(10): cap=%d want 10", a.Cap())
	failures = expect(failures, a.Reallocations() == base+1, "Resize(10) reallocs=%d want %d", a.Reallocations(), base+1)

	return verdict("resize", failures, fmt.Sprintf("cap 8→10, reallocs %d→%d", base, a.Reallocations()))
}
