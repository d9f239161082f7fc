package trace_test

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/dynarray/dynarray"
	"github.com/katalvlaran/dynarray/internal/config"
	"github.com/katalvlaran/dynarray/internal/trace"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

var _ = Describe("Run", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.DefaultConfig()
	})

	It("samples every append and doubles capacity", func() {
		cfg.Appends = 5
		tr, err := trace.Run(cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.Samples.Len()).To(Equal(5))
		Expect(tr.Capacities()).To(Equal([]float64{1, 2, 4, 4, 8}))

		sum := tr.Summary()
		Expect(sum.FinalLen).To(Equal(5))
		Expect(sum.FinalCap).To(Equal(8))
		Expect(sum.Reallocations).To(Equal(4))
		// Growth copied 0 + 1 + 2 + 4 elements.
		Expect(sum.Copied).To(Equal(7))
		Expect(sum.PeakOverAlloc).To(BeNumerically("~", 8.0/5.0, 1e-9))
	})

	It("keeps total copy work under 2k", func() {
		cfg.Appends = 1000
		tr, err := trace.Run(cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.Summary().Copied).To(BeNumerically("<", 2*cfg.Appends))
		Expect(tr.Summary().Reallocations).To(Equal(11)) // ⌈log2 1000⌉ + 1
	})

	It("records a resize step with exact growth", func() {
		cfg.Appends = 5
		cfg.ResizeTo = 10
		tr, err := trace.Run(cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		last, err := tr.Samples.At(tr.Samples.Len() - 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(last.Op).To(Equal(trace.OpResize))
		Expect(last.Cap).To(Equal(10))
		Expect(last.Grew).To(BeTrue())
	})

	It("does not reallocate when resizing within capacity", func() {
		cfg.Appends = 5
		cfg.ResizeTo = 2
		tr, err := trace.Run(cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		sum := tr.Summary()
		Expect(sum.FinalLen).To(Equal(2))
		Expect(sum.FinalCap).To(Equal(8))
		Expect(sum.Reallocations).To(Equal(4))
	})

	It("logs growth steps", func() {
		cfg.Appends = 3
		logger := &recordingLogger{}
		_, err := trace.Run(cfg, logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.lines).To(HaveLen(3))
		Expect(logger.lines[2]).To(ContainSubstring("cap=4"))
	})

	It("surfaces allocation failures from the capacity limit", func() {
		cfg.Appends = 10
		cfg.MaxCapacity = 4
		tr, err := trace.Run(cfg, nil)
		Expect(err).To(MatchError(dynarray.ErrAllocationFailure))
		Expect(tr.Samples.Len()).To(Equal(4))
	})

	It("rejects invalid configuration", func() {
		cfg.Appends = -1
		_, err := trace.Run(cfg, nil)
		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})
})

var _ = Describe("Rendering", func() {
	var tr *trace.Trace

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		cfg.Appends = 4
		var err error
		tr, err = trace.Run(cfg, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("writes a table with one row per step", func() {
		var buf bytes.Buffer
		Expect(trace.RenderTable(&buf, tr)).To(Succeed())
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(5))
		Expect(lines[0]).To(HavePrefix("STEP"))
		Expect(lines[3]).To(HaveSuffix("*"))
		Expect(lines[4]).NotTo(HaveSuffix("*"))
	})

	It("writes a summary line", func() {
		var buf bytes.Buffer
		Expect(trace.RenderSummary(&buf, tr)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("reallocations=3"))
		Expect(buf.String()).To(ContainSubstring("cap=4"))
	})

	It("plots capacities with the configured caption", func() {
		pc := config.DefaultConfig().Plot
		pc.Caption = "growth"
		out := trace.Plot(tr, pc)
		Expect(out).To(ContainSubstring("growth"))
	})

	It("plots nothing for an empty trace", func() {
		cfg := config.DefaultConfig()
		cfg.Appends = 0
		empty, err := trace.Run(cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(trace.Plot(empty, cfg.Plot)).To(BeEmpty())
	})
})

var _ = Describe("Scenarios", func() {
	It("passes every built-in scenario", func() {
		outcomes := trace.RunAll()
		Expect(outcomes).To(HaveLen(len(trace.Scenarios())))
		for _, o := range outcomes {
			Expect(o.Pass).To(BeTrue(), "%s: %s", o.Name, o.Detail)
		}
	})

	It("names scenarios in a stable order", func() {
		var names []string
		for _, s := range trace.Scenarios() {
			names = append(names, s.Name)
		}
		Expect(names).To(Equal([]string{"append", "literal", "resize"}))
	})
})
