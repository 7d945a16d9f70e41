package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/sortvis/internal/sorting"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.N != 50 || cfg.MinVal != 0 || cfg.MaxVal != 100 {
		t.Errorf("unexpected dataset shape: n=%d range=[%d, %d]", cfg.N, cfg.MinVal, cfg.MaxVal)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("expected 800x600 viewport, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("expected 60 Hz, got %v", cfg.TickInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty dataset", func(c *Config) { c.N = 0 }},
		{"inverted range", func(c *Config) { c.MinVal, c.MaxVal = 10, 5 }},
		{"narrow viewport", func(c *Config) { c.Width = 100 }},
		{"short viewport", func(c *Config) { c.Height = 150 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "bogo" }},
		{"unknown direction", func(c *Config) { c.Direction = "sideways" }},
		{"missing theme", func(c *Config) { c.Theme = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.MinVal, cfg.MaxVal = 7, 7
	if err := cfg.Validate(); err != nil {
		t.Errorf("constant range should validate: %v", err)
	}
}

func TestSortDirection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = "desc"
	if cfg.SortDirection() != sorting.Descending {
		t.Errorf("expected descending, got %s", cfg.SortDirection())
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortvis.yaml")

	cfg := DefaultConfig()
	cfg.N = 12
	cfg.Algorithm = "quick"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadIntoKeepsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("n: 9\ndirection: descending\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("wide")
	if err := LoadInto(cfg, path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.N != 9 || cfg.Direction != "descending" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Width != 1600 || cfg.Theme != "ocean" {
		t.Errorf("preset values lost: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}

	cfg := GetPreset("tiny")
	cfg.N = 99
	if Presets["tiny"].N == 99 {
		t.Error("GetPreset must return a copy")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortvis.yaml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	got := make(chan *Config, 4)
	errs := make(chan error, 4)
	w, err := NewWatcher(path, DefaultConfig(), 20*time.Millisecond, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
			return
		}
		got <- cfg
	})
	if err != nil {
		t.Fatalf("watcher failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	if err := os.WriteFile(path, []byte("n: 20\ntick_rate: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-got:
		if cfg.N != 20 || cfg.TickRate != 30 || cfg.Width != DefaultWidth {
			t.Errorf("unexpected reload: %+v", cfg)
		}
	case err := <-errs:
		t.Fatalf("reload failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	if err := os.WriteFile(path, []byte("n: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-errs:
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			return
		case cfg := <-got:
			if cfg.N != 20 {
				t.Fatalf("invalid config delivered: %+v", cfg)
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}
