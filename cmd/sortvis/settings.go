package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/san-kum/sortvis/internal/audio"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/logging"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/registry"
	"github.com/san-kum/sortvis/internal/sorting"
	"github.com/san-kum/sortvis/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// resolveConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (try: sortvis presets)", preset)
		}
	}
	if configFile != "" {
		if err := config.LoadInto(cfg, configFile); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	applyFlags(cmd, cfg)
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("n") {
		cfg.N = flagN
	}
	if changed("min") {
		cfg.MinVal = flagMin
	}
	if changed("max") {
		cfg.MaxVal = flagMax
	}
	if changed("width") {
		cfg.Width = flagWidth
	}
	if changed("height") {
		cfg.Height = flagHeight
	}
	if changed("tick-rate") {
		cfg.TickRate = flagTickRate
	}
	if changed("seed") {
		cfg.Seed = flagSeed
	}
	if changed("algorithm") {
		cfg.Algorithm = flagAlgorithm
	}
	if changed("direction") {
		cfg.Direction = flagDirection
	}
	if changed("theme") {
		cfg.Theme = flagTheme
	}
	if changed("sound") {
		cfg.Sound = flagSound
	}
}

func checkConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !viz.HasTheme(cfg.Theme) {
		return fmt.Errorf("%w: unknown theme %q", config.ErrInvalidConfig, cfg.Theme)
	}
	return nil
}

// newLogger opens the log destination. Interactive front ends own the
// terminal, so they log nowhere unless --log-file is set.
func newLogger(interactive bool) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = nil
	}
	return logging.New(w, level), closer, nil
}

func seedFor(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func newController(cfg *config.Config, log *slog.Logger, observers ...engine.Observer) (*engine.Controller, error) {
	opts := []engine.Option{engine.WithLogger(log)}
	for _, o := range observers {
		opts = append(opts, engine.WithObserver(o))
	}
	gen := sorting.NewGenerator(seedFor(cfg), cfg.N, cfg.MinVal, cfg.MaxVal)
	return engine.NewController(registry.NewRegistry(), gen, cfg.Algorithm, cfg.SortDirection(), opts...)
}

// observers builds the controller observers the configuration asks for.
// stop releases the audio device.
func observers(cfg *config.Config, reg *prometheus.Registry, log *slog.Logger) (obs []engine.Observer, stop func(), err error) {
	stop = func() {}
	if metricsAddr != "" {
		obs = append(obs, metrics.NewRecorder(reg))
	}
	if cfg.Sound {
		p := audio.NewPlayer(log)
		if err := p.Start(); err != nil {
			return nil, nil, err
		}
		obs = append(obs, p)
		stop = p.Stop
	}
	return obs, stop, nil
}

// serveMetrics serves reg until ctx is done.
func serveMetrics(ctx context.Context, g *errgroup.Group, reg *prometheus.Registry, log *slog.Logger) {
	if metricsAddr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g.Go(func() error {
		log.Info("serving metrics", "addr", metricsAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// watchConfig delivers reloads of the config file to send. Flags keep
// precedence over reloaded file values.
func watchConfig(ctx context.Context, cmd *cobra.Command, log *slog.Logger, send func(viz.ConfigMsg)) (func(), error) {
	if !watch {
		return func() {}, nil
	}
	if configFile == "" {
		return nil, errors.New("--watch needs --config")
	}

	base := config.DefaultConfig()
	if preset != "" {
		base = config.GetPreset(preset)
	}
	w, err := config.NewWatcher(configFile, base, config.DefaultDebounce, func(cfg *config.Config, err error) {
		if err == nil {
			applyFlags(cmd, cfg)
			err = checkConfig(cfg)
		}
		if err != nil {
			log.Warn("config reload rejected", "path", configFile, "err", err)
			send(viz.ConfigMsg{Err: err})
			return
		}
		log.Info("config reloaded", "path", configFile)
		send(viz.ConfigMsg{Config: cfg})
	})
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	w.Start(ctx)
	return w.Stop, nil
}
