package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sorting"
)

const namespace = "sortvis"

// Recorder exports controller activity as Prometheus metrics. It implements
// engine.Observer.
type Recorder struct {
	RunsStarted  *prometheus.CounterVec
	RunsFinished *prometheus.CounterVec
	Steps        *prometheus.CounterVec
	Mutations    *prometheus.CounterVec
	RunSteps     *prometheus.HistogramVec
	Active       prometheus.Gauge
}

// NewRecorder registers the recorder's collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		RunsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_started_total",
			Help:      "Runs started by algorithm",
		}, []string{"algorithm"}),
		RunsFinished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_finished_total",
			Help:      "Runs finished by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		Steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Producer steps by algorithm",
		}, []string{"algorithm"}),
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Steps that changed the dataset by algorithm",
		}, []string{"algorithm"}),
		RunSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_steps",
			Help:      "Steps per finished run",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 12),
		}, []string{"algorithm"}),
		Active: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_runs",
			Help:      "Runs currently in progress",
		}),
	}
}

func (r *Recorder) OnStart(run engine.Run) {
	r.RunsStarted.WithLabelValues(run.Algorithm).Inc()
	r.Active.Inc()
}

func (r *Recorder) OnStep(run engine.Run, step sorting.Step, data *sorting.Dataset) {
	r.Steps.WithLabelValues(run.Algorithm).Inc()
	if step.Mutated {
		r.Mutations.WithLabelValues(run.Algorithm).Inc()
	}
}

func (r *Recorder) OnFinish(run engine.Run, stats engine.Stats) {
	outcome := "completed"
	if stats.Interrupted {
		outcome = "interrupted"
	}
	r.RunsFinished.WithLabelValues(run.Algorithm, outcome).Inc()
	r.RunSteps.WithLabelValues(run.Algorithm).Observe(float64(stats.Steps))
	r.Active.Dec()
}
