package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/registry"
	"github.com/san-kum/sortvis/internal/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, algo string, values []int, dir sorting.Direction, ms ...engine.Metric) *engine.Result {
	t.Helper()
	entry, err := registry.NewRegistry().Get(algo)
	require.NoError(t, err)

	r := engine.NewRunner()
	for _, m := range ms {
		r.AddMetric(m)
	}
	res, err := r.Run(context.Background(), entry, sorting.NewDataset(values, 0, 10), dir)
	require.NoError(t, err)
	return res
}

func TestWriteRatio(t *testing.T) {
	m := NewWriteRatio()
	assert.Equal(t, 0.0, m.Value())

	res := runWith(t, "bubble", []int{5, 3, 4, 1, 2}, sorting.Ascending, m)
	assert.InDelta(t, 0.8, res.Metrics["write_ratio"], 1e-9)

	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}

func TestWriteRatioInsertionAlwaysWrites(t *testing.T) {
	res := runWith(t, "insertion", []int{9, 1, 8, 2, 7}, sorting.Ascending, NewWriteRatio())
	assert.Equal(t, 1.0, res.Metrics["write_ratio"])
}

func TestCoverage(t *testing.T) {
	m := NewCoverage()
	data := sorting.NewDataset([]int{1, 2, 3, 4}, 0, 4)

	m.Observe(sorting.Step{Marks: []sorting.Mark{{Index: 0, Role: sorting.RolePrimary}, {Index: 1, Role: sorting.RoleSecondary}}}, data)
	m.Observe(sorting.Step{Marks: []sorting.Mark{{Index: 2, Role: sorting.RolePrimary}, {Index: 9, Role: sorting.RolePrimary}}}, data)
	assert.Equal(t, 0.5, m.Value())

	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}

func TestSortednessReachesOne(t *testing.T) {
	for _, algo := range registry.NewRegistry().Keys() {
		t.Run(algo, func(t *testing.T) {
			res := runWith(t, algo, []int{7, 2, 9, 4, 4, 0, 3}, sorting.Descending,
				NewSortedness(sorting.Descending), NewMonotonicity(sorting.Descending))

			assert.Equal(t, 1.0, res.Metrics["sortedness"])
			assert.GreaterOrEqual(t, res.Metrics["monotonicity"], 0.0)
			assert.LessOrEqual(t, res.Metrics["monotonicity"], 1.0)
		})
	}
}

func TestMonotonicityExchangeSort(t *testing.T) {
	res := runWith(t, "bubble", []int{6, 5, 4, 3, 2, 1}, sorting.Ascending, NewMonotonicity(sorting.Ascending))
	assert.Equal(t, 1.0, res.Metrics["monotonicity"])
}

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	c, err := engine.NewController(registry.NewRegistry(), sorting.NewGenerator(5, 6, 0, 10), "quick", sorting.Ascending,
		engine.WithObserver(rec))
	require.NoError(t, err)

	require.NoError(t, c.Start())
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Active))

	for c.Mode() == engine.Running {
		c.Tick()
	}
	stats := c.Stats()

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsStarted.WithLabelValues("quick")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsFinished.WithLabelValues("quick", "completed")))
	assert.Equal(t, float64(stats.Steps), testutil.ToFloat64(rec.Steps.WithLabelValues("quick")))
	assert.Equal(t, float64(stats.Mutations), testutil.ToFloat64(rec.Mutations.WithLabelValues("quick")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Active))

	require.NoError(t, c.Start())
	c.Tick()
	c.Reset()
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsFinished.WithLabelValues("quick", "interrupted")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.RunSteps))
}
