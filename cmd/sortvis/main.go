package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	logFile     string
	logLevel    string
	metricsAddr string
	watch       bool

	flagN         int
	flagMin       int
	flagMax       int
	flagWidth     int
	flagHeight    int
	flagTickRate  int
	flagSeed      int64
	flagAlgorithm string
	flagDirection string
	flagTheme     string
	flagSound     bool

	// trace, bench and snapshot
	sampleEvery   int
	curveFile     string
	benchSizes    []int
	snapshotFile  string
	snapshotSteps int
)

// main registers the sortvis commands and runs the terminal visualizer when
// no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortvis",
		Short:         "watch sorting algorithms work, one step at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")

	pf.IntVar(&flagN, "n", 0, "number of values")
	pf.IntVar(&flagMin, "min", 0, "smallest value")
	pf.IntVar(&flagMax, "max", 0, "largest value")
	pf.IntVar(&flagWidth, "width", 0, "viewport width in pixels")
	pf.IntVar(&flagHeight, "height", 0, "viewport height in pixels")
	pf.IntVar(&flagTickRate, "tick-rate", 0, "steps per second")
	pf.Int64Var(&flagSeed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&flagAlgorithm, "algorithm", "", "initial algorithm (bubble, insertion, quick, merge)")
	pf.StringVar(&flagDirection, "direction", "", "initial direction (ascending, descending)")
	pf.StringVar(&flagTheme, "theme", "", "color theme")
	pf.BoolVar(&flagSound, "sound", false, "play a tone per step")
	pf.BoolVar(&watch, "watch", false, "reload the config file when it changes")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal visualizer",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "window visualizer",
		RunE:  runGUI,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "run one algorithm headless and plot its progress",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&sampleEvery, "sample", 0, "steps between sortedness samples (0 = auto)")
	traceCmd.Flags().StringVar(&curveFile, "svg", "", "write the sortedness curve as svg")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare all algorithms on the same datasets",
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{10, 50, 200}, "dataset sizes")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write one frame as svg",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&snapshotFile, "out", "o", "frame.svg", "output file")
	snapshotCmd.Flags().IntVar(&snapshotSteps, "steps", 0, "steps to run before the snapshot")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, traceCmd, benchCmd, snapshotCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
