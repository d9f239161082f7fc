// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/dynarray/internal/config"
)

// RenderTable writes one row per sample, marking steps that reallocated.
func RenderTable(w io.Writer, t *Trace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tOP\tLEN\tCAP\tREALLOCS\tGREW")
	for _, s := range t.Samples.All() {
		grew := ""
		if s.Grew {
			grew = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n", s.Step, s.Op, s.Len, s.Cap, s.Reallocs, grew)
	}

	return tw.Flush()
}

// RenderSummary writes the aggregate line block.
func RenderSummary(w io.Writer, t *Trace) error {
	sum := t.Summary()
	_, err := fmt.Fprintf(w,
		"operations=%d len=%d cap=%d reallocations=%d copied=%d peak_over_alloc=%.2fx\n",
		sum.Operations, sum.FinalLen, sum.FinalCap, sum.Reallocations, sum.Copied, sum.PeakOverAlloc)

	return err
}

// Plot returns the capacity chart, or "" when there is nothing to draw.
func Plot(t *Trace, pc config.PlotConfig) string {
	data := t.Capacities()
	if len(data) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(pc.Height),
		asciigraph.Caption(pc.Caption),
	}
	if pc.Width > 0 {
		opts = append(opts, asciigraph.Width(pc.Width))
	}

	return asciigraph.Plot(data, opts...)
}
