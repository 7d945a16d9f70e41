package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 150 * time.Millisecond

// Handler receives the reloaded configuration, or the error that prevented
// loading it.
type Handler func(cfg *Config, err error)

// Watcher reloads a config file when it changes on disk. Bursts of events
// (editors often write, chmod and rename in quick succession) are collapsed
// into a single reload.
type Watcher struct {
	path     string
	base     *Config
	debounce time.Duration
	handler  Handler
	watcher  *fsnotify.Watcher

	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher watches path. Each reload overlays the file onto a copy of base.
func NewWatcher(path string, base *Config, debounce time.Duration, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory so replace-by-rename saves are still seen.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		base:     base.Clone(),
		debounce: debounce,
		handler:  handler,
		watcher:  fw,
		done:     make(chan struct{}),
	}, nil
}

func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.handler(nil, err)
		}
	}
}

func (w *Watcher) reload() {
	cfg := w.base.Clone()
	if err := LoadInto(cfg, w.path); err != nil {
		w.handler(nil, err)
		return
	}
	if err := cfg.Validate(); err != nil {
		w.handler(nil, err)
		return
	}
	w.handler(cfg, nil)
}
