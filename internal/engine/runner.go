package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortvis/internal/registry"
	"github.com/san-kum/sortvis/internal/sorting"
	"golang.org/x/sync/errgroup"
)

// Runner drives a producer to completion without a display.
type Runner struct {
	metrics     []Metric
	observers   []Observer
	sampleEvery int
}

func NewRunner() *Runner {
	return &Runner{sampleEvery: 1}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// SampleEvery sets how many steps pass between sortedness samples.
func (r *Runner) SampleEvery(n int) {
	if n < 1 {
		n = 1
	}
	r.sampleEvery = n
}

type Result struct {
	Run        Run
	Stats      Stats
	Final      []int
	Sortedness []float64
	Metrics    map[string]float64
	Elapsed    time.Duration
}

// Run sorts data in place. On cancellation the partial result is returned
// together with the context error.
func (r *Runner) Run(ctx context.Context, entry registry.Entry, data *sorting.Dataset, dir sorting.Direction) (*Result, error) {
	if data == nil || data.Len() == 0 {
		return nil, sorting.ErrNoDataset
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", sorting.ErrInvalidDirection, int(dir))
	}

	run := Run{
		ID:        uuid.New(),
		Algorithm: entry.Key,
		Direction: dir,
		Size:      data.Len(),
		Started:   time.Now(),
	}
	result := &Result{
		Run:        run,
		Sortedness: []float64{sorting.Sortedness(data.Values(), dir)},
		Metrics:    make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	for _, obs := range r.observers {
		obs.OnStart(run)
	}

	finish := func(interrupted bool) {
		result.Stats.Interrupted = interrupted
		result.Final = data.Values()
		result.Elapsed = time.Since(run.Started)
		for _, m := range r.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
		for _, obs := range r.observers {
			obs.OnFinish(run, result.Stats)
		}
	}

	p := entry.New(data, dir)
	for {
		select {
		case <-ctx.Done():
			finish(true)
			return result, ctx.Err()
		default:
		}

		step, ok := p.Advance()
		if !ok {
			break
		}

		result.Stats.Steps++
		if step.Mutated {
			result.Stats.Mutations++
		}
		for _, m := range r.metrics {
			m.Observe(step, data)
		}
		for _, obs := range r.observers {
			obs.OnStep(run, step, data)
		}
		if result.Stats.Steps%r.sampleEvery == 0 {
			result.Sortedness = append(result.Sortedness, sorting.Sortedness(data.Values(), dir))
		}
	}

	if result.Stats.Steps%r.sampleEvery != 0 {
		result.Sortedness = append(result.Sortedness, sorting.Sortedness(data.Values(), dir))
	}
	finish(false)
	return result, nil
}

// Compare runs every entry over its own clone of data concurrently. setup,
// when non-nil, configures each runner; metrics must not be shared between
// runners.
func Compare(ctx context.Context, entries []registry.Entry, data *sorting.Dataset, dir sorting.Direction, setup func(*Runner)) ([]*Result, error) {
	results := make([]*Result, len(entries))
	g, ctx := errgroup.WithContext(ctx)

	for i, entry := range entries {
		clone := data.Clone()
		g.Go(func() error {
			r := NewRunner()
			if setup != nil {
				setup(r)
			}
			res, err := r.Run(ctx, entry, clone, dir)
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Key, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
