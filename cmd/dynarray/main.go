// Command dynarray traces the growth policy of dynarray.DynamicArray and runs
// its end-to-end scenarios.
//
//	dynarray trace --appends 100 --resize 10
//	dynarray trace --config trace.yaml --plot=false
//	dynarray scenario
//	dynarray config init trace.yaml
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynarray/internal/config"
	"github.com/katalvlaran/dynarray/internal/trace"
)

var (
	verbose     bool
	configFile  string
	appends     int
	resizeTo    int
	maxCapacity int
	plot        bool
	plotHeight  int
	plotWidth   int
)

// main registers commands and flags and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dynarray",
		Short:        "inspect the dynamic array growth policy",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every reallocation")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "append integers and report capacity after each step",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	traceCmd.Flags().IntVarP(&appends, "appends", "n", config.DefaultAppends, "number of PushBack calls")
	traceCmd.Flags().IntVar(&resizeTo, "resize", config.DefaultResizeTo, "resize to this length afterwards (negative: skip)")
	traceCmd.Flags().IntVar(&maxCapacity, "max-capacity", config.DefaultMaxCapacity, "per-allocation slot limit (0: library default)")
	traceCmd.Flags().BoolVar(&plot, "plot", true, "draw an ASCII capacity chart")
	traceCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "chart height")
	traceCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "chart width (0: one column per step)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario",
		Short: "run the built-in end-to-end scenarios",
		Args:  cobra.NoArgs,
		RunE:  runScenarios,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage trace configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(traceCmd, scenarioCmd, configCmd)

	return rootCmd
}

// newLogger returns a stderr logger when --verbose is set, otherwise nil.
func newLogger(cmd *cobra.Command) trace.Logger {
	if !verbose {
		return nil
	}

	return log.New(cmd.ErrOrStderr(), "dynarray: ", log.Lmsgprefix)
}

// resolveConfig loads --config (or the defaults) and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("appends") {
		cfg.Appends = appends
	}
	if flags.Changed("resize") {
		cfg.ResizeTo = resizeTo
	}
	if flags.Changed("max-capacity") {
		cfg.MaxCapacity = maxCapacity
	}
	if flags.Changed("plot") {
		cfg.Plot.Enabled = plot
	}
	if flags.Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if flags.Changed("width") {
		cfg.Plot.Width = plotWidth
	}

	return cfg, cfg.Validate()
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	tr, runErr := trace.Run(cfg, newLogger(cmd))
	if tr == nil {
		return runErr
	}
	if err := writeTrace(out, tr, cfg); err != nil {
		return err
	}

	return runErr
}

func writeTrace(out io.Writer, tr *trace.Trace, cfg *config.Config) error {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("dynarray trace: %d appends", cfg.Appends)))
	if err := trace.RenderTable(out, tr); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if cfg.Plot.Enabled {
		if chart := trace.Plot(tr, cfg.Plot); chart != "" {
			fmt.Fprintln(out, chart)
			fmt.Fprintln(out)
		}
	}

	return trace.RenderSummary(out, tr)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, s := range trace.Scenarios() {
		o := s.Run()
		if !o.Pass {
			failed++
		}
		fmt.Fprintf(out, "%s %-8s %s\n", verdictLabel(o.Pass), o.Name, subtleStyle.Render(s.Description))
		fmt.Fprintf(out, "         %s\n", o.Detail)
	}
	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}

	return nil
}
