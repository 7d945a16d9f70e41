package engine

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/san-kum/sortvis/internal/registry"
	"github.com/san-kum/sortvis/internal/sorting"
)

type countMetric struct {
	name  string
	count int
}

func (m *countMetric) Name() string                                     { return m.name }
func (m *countMetric) Observe(step sorting.Step, data *sorting.Dataset) { m.count++ }
func (m *countMetric) Value() float64                                   { return float64(m.count) }
func (m *countMetric) Reset()                                           { m.count = 0 }

func TestRunnerRun(t *testing.T) {
	reg := registry.NewRegistry()
	entry, err := reg.Get("insertion")
	if err != nil {
		t.Fatal(err)
	}

	in := []int{5, 3, 4, 1, 2}
	data := sorting.NewDataset(slices.Clone(in), 0, 5)

	r := NewRunner()
	r.AddMetric(&countMetric{name: "steps"})
	obs := &recorder{}
	r.AddObserver(obs)

	res, err := r.Run(context.Background(), entry, data, sorting.Ascending)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !slices.Equal(res.Final, []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected sorted result, got %v", res.Final)
	}
	if res.Stats.Mutations != 8 {
		t.Errorf("expected 8 shifts, got %d", res.Stats.Mutations)
	}
	if res.Metrics["steps"] != float64(res.Stats.Steps) {
		t.Errorf("metric saw %v steps, runner counted %d", res.Metrics["steps"], res.Stats.Steps)
	}
	if len(obs.starts) != 1 || len(obs.finishes) != 1 || obs.steps != res.Stats.Steps {
		t.Errorf("unexpected observer calls: %+v", obs)
	}
	if len(res.Sortedness) != res.Stats.Steps+1 {
		t.Errorf("expected %d samples, got %d", res.Stats.Steps+1, len(res.Sortedness))
	}
	if first, last := res.Sortedness[0], res.Sortedness[len(res.Sortedness)-1]; math.Abs(first-0.2) > 1e-9 || last != 1 {
		t.Errorf("expected sortedness 0.2 -> 1, got %v -> %v", first, last)
	}
}

func TestRunnerSampling(t *testing.T) {
	entry, _ := registry.NewRegistry().Get("bubble")
	data := sorting.NewDataset([]int{5, 3, 4, 1, 2}, 0, 5)

	r := NewRunner()
	r.SampleEvery(3)
	res, err := r.Run(context.Background(), entry, data, sorting.Ascending)
	if err != nil {
		t.Fatal(err)
	}

	// 10 steps: initial, 3, 6, 9 and the final state.
	if len(res.Sortedness) != 5 {
		t.Errorf("expected 5 samples, got %d", len(res.Sortedness))
	}
	if res.Sortedness[len(res.Sortedness)-1] != 1 {
		t.Error("last sample must be the sorted state")
	}
}

func TestRunnerCancelled(t *testing.T) {
	entry, _ := registry.NewRegistry().Get("quick")
	data := sorting.NewGenerator(1, 50, 0, 100).Generate()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewRunner().Run(ctx, entry, data, sorting.Ascending)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !res.Stats.Interrupted || res.Stats.Steps != 0 {
		t.Errorf("expected interrupted run with no steps, got %+v", res.Stats)
	}
}

func TestRunnerRejectsEmpty(t *testing.T) {
	entry, _ := registry.NewRegistry().Get("merge")
	_, err := NewRunner().Run(context.Background(), entry, sorting.NewDataset(nil, 0, 1), sorting.Ascending)
	if !errors.Is(err, sorting.ErrNoDataset) {
		t.Errorf("expected ErrNoDataset, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	reg := registry.NewRegistry()
	data := sorting.NewGenerator(3, 40, 0, 100).Generate()
	orig := data.Values()

	results, err := Compare(context.Background(), reg.List(), data, sorting.Descending, func(r *Runner) {
		r.AddMetric(&countMetric{name: "steps"})
	})
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Run.Algorithm != reg.List()[i].Key {
			t.Errorf("result %d out of order: %s", i, res.Run.Algorithm)
		}
		if !sorting.IsSorted(res.Final, sorting.Descending) {
			t.Errorf("%s: not sorted", res.Run.Algorithm)
		}
		if res.Metrics["steps"] != float64(res.Stats.Steps) {
			t.Errorf("%s: metric mismatch", res.Run.Algorithm)
		}
	}
	if !slices.Equal(data.Values(), orig) {
		t.Error("compare must not modify the shared dataset")
	}
}
