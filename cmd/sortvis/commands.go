package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/export"
	"github.com/san-kum/sortvis/internal/gui"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/registry"
	"github.com/san-kum/sortvis/internal/sorting"
	"github.com/san-kum/sortvis/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	reg := prometheus.NewRegistry()
	obs, stopAudio, err := observers(cfg, reg, log)
	if err != nil {
		return err
	}
	defer stopAudio()

	ctrl, err := newController(cfg, log, obs...)
	if err != nil {
		return err
	}
	prog := tea.NewProgram(viz.NewModel(ctrl, cfg, log), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	stopWatch, err := watchConfig(ctx, cmd, log, func(msg viz.ConfigMsg) { prog.Send(msg) })
	if err != nil {
		return err
	}
	defer stopWatch()

	g.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		prog.Quit()
		return nil
	})
	serveMetrics(ctx, g, reg, log)

	return g.Wait()
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	reg := prometheus.NewRegistry()
	obs, stopAudio, err := observers(cfg, reg, log)
	if err != nil {
		return err
	}
	defer stopAudio()

	ctrl, err := newController(cfg, log, obs...)
	if err != nil {
		return err
	}
	app := gui.NewApp(ctrl, cfg, log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reloads := make(chan viz.ConfigMsg, 1)
	stopWatch, err := watchConfig(ctx, cmd, log, func(msg viz.ConfigMsg) {
		// keep only the newest reload
		select {
		case <-reloads:
		default:
		}
		reloads <- msg
	})
	if err != nil {
		return err
	}
	defer stopWatch()
	app.Reloads(reloads)

	g, gctx := errgroup.WithContext(ctx)
	serveMetrics(gctx, g, reg, log)

	// raylib must own the main goroutine.
	app.Run()
	cancel()
	return g.Wait()
}

func autoSample(n int) int {
	return max(1, n*n/1000)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Algorithm = args[0]
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	entry, err := registry.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return err
	}
	dir := cfg.SortDirection()
	seed := seedFor(cfg)
	data := sorting.NewGenerator(seed, cfg.N, cfg.MinVal, cfg.MaxVal).Generate()
	initial := data.Values()

	every := sampleEvery
	if every <= 0 {
		every = autoSample(cfg.N)
	}
	r := engine.NewRunner()
	r.SampleEvery(every)
	r.AddMetric(metrics.NewWriteRatio())
	r.AddMetric(metrics.NewCoverage())
	r.AddMetric(metrics.NewMonotonicity(dir))

	log.Debug("trace starting", "algorithm", entry.Key, "n", cfg.N, "seed", seed)
	res, err := r.Run(cmd.Context(), entry, data, dir)
	if err != nil {
		return err
	}

	fmt.Printf("%s (n=%d, range [%d, %d], seed %d)\n\n", viz.Title(entry.Name, dir), cfg.N, cfg.MinVal, cfg.MaxVal, seed)
	fmt.Printf("steps:        %d\n", res.Stats.Steps)
	fmt.Printf("writes:       %d\n", res.Stats.Mutations)
	fmt.Printf("inversions:   %d\n", sorting.Inversions(initial, dir))
	for _, name := range []string{"write_ratio", "coverage", "monotonicity"} {
		fmt.Printf("%-13s %.3f\n", name+":", res.Metrics[name])
	}
	fmt.Printf("elapsed:      %v\n\n", res.Elapsed)

	if curveFile != "" {
		svg := export.CurveSVG(res.Sortedness, 640, 240, viz.GetTheme(cfg.Theme))
		if err := export.WriteFile(curveFile, svg); err != nil {
			return err
		}
	}

	if len(res.Sortedness) > 1 {
		graph := asciigraph.Plot(res.Sortedness,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Precision(2),
			asciigraph.Caption(fmt.Sprintf("sortedness, one sample every %d steps", every)),
		)
		fmt.Println(graph)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	reg := registry.NewRegistry()
	dir := cfg.SortDirection()
	seed := seedFor(cfg)

	fmt.Printf("benchmarking %s, range [%d, %d], seed %d\n\n", strings.ToLower(dir.String()), cfg.MinVal, cfg.MaxVal, seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tALGORITHM\tSTEPS\tWRITES\tWRITE RATIO\tCOVERAGE\tTIME")

	for _, n := range benchSizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d", sorting.ErrEmptyDataset, n)
		}
		data := sorting.NewGenerator(seed, n, cfg.MinVal, cfg.MaxVal).Generate()
		results, err := engine.Compare(cmd.Context(), reg.List(), data, dir, func(r *engine.Runner) {
			r.SampleEvery(autoSample(n))
			r.AddMetric(metrics.NewWriteRatio())
			r.AddMetric(metrics.NewCoverage())
		})
		if err != nil {
			return err
		}
		log.Debug("bench size done", "n", n)

		for _, res := range results {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.3f\t%.3f\t%v\n",
				n, res.Run.Algorithm, res.Stats.Steps, res.Stats.Mutations,
				res.Metrics["write_ratio"], res.Metrics["coverage"], res.Elapsed)
		}
	}
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, err := newController(cfg, log)
	if err != nil {
		return err
	}
	if snapshotSteps > 0 {
		if err := ctrl.Start(); err != nil {
			return err
		}
		for i := 0; i < snapshotSteps && ctrl.Mode() == engine.Running; i++ {
			ctrl.Tick()
		}
	}

	data := ctrl.Dataset()
	layout := viz.NewLayout(cfg.Width, cfg.Height, data)
	frame := viz.Project(layout, data.Values(), ctrl.Highlights(), ctrl.Algorithm().Name, ctrl.Direction())
	if err := export.WriteFile(snapshotFile, export.FrameSVG(frame, viz.GetTheme(cfg.Theme))); err != nil {
		return err
	}
	log.Info("snapshot written", "path", snapshotFile, "steps", ctrl.Stats().Steps)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME")
	for _, e := range registry.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Name)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tN\tRANGE\tVIEWPORT\tRATE\tALGORITHM\tDIRECTION\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t[%d, %d]\t%dx%d\t%d/s\t%s\t%s\t%s\n",
			name, p.N, p.MinVal, p.MaxVal, p.Width, p.Height, p.TickRate, p.Algorithm, p.Direction, p.Theme)
	}
	return w.Flush()
}
