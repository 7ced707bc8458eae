// Package metrics exposes Prometheus instruments for refinement runs.
//
// A Registry owns its own prometheus.Registry, so several registries can
// coexist in one process (tests, parallel runs). Batch tools export a
// snapshot with WriteTextfile for the node_exporter textfile collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wlrefine/wl"
)

// Run outcome label values for RunsTotal.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Registry holds all refinement metrics.
type Registry struct {
	RunsTotal          *prometheus.CounterVec
	StepsTotal         prometheus.Counter
	SignaturesMinted   prometheus.Counter
	LastDistinctLabels prometheus.Gauge
	RunDuration        prometheus.Histogram
	CandidateVerdicts  *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with every instrument registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.RunsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wlrefine_runs_total",
			Help: "Total number of refinement runs by outcome",
		},
		[]string{"status"},
	)
	r.StepsTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "wlrefine_steps_total",
		Help: "Total number of refinement steps produced (k = 0 included)",
	})
	r.SignaturesMinted = f.NewCounter(prometheus.CounterOpts{
		Name: "wlrefine_signatures_minted_total",
		Help: "Total number of label ids minted",
	})
	r.LastDistinctLabels = f.NewGauge(prometheus.GaugeOpts{
		Name: "wlrefine_last_distinct_labels",
		Help: "Distinct labels in use across both graphs at the most recent step",
	})
	r.RunDuration = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "wlrefine_run_duration_seconds",
		Help:    "Refinement run duration in seconds",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})
	r.CandidateVerdicts = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wlrefine_candidate_verdicts_total",
			Help: "Final verdicts of successful runs",
		},
		[]string{"verdict"},
	)

	return r
}

// ObserveStep records one step. It fits wl.WithOnStep directly:
//
//	wl.Refine(a, b, k, wl.WithOnStep(reg.ObserveStep))
func (r *Registry) ObserveStep(step wl.Step) {
	r.StepsTotal.Inc()
	r.SignaturesMinted.Add(float64(len(step.Mappings)))
	r.LastDistinctLabels.Set(float64(len(step.UniqueLabels)))
}

// ObserveRun records the outcome of one Refine call. A nil err counts as
// success and records the final verdict of steps.
func (r *Registry) ObserveRun(steps []wl.Step, err error, duration time.Duration) {
	r.RunDuration.Observe(duration.Seconds())
	if err != nil {
		r.RunsTotal.WithLabelValues(StatusError).Inc()
		return
	}
	r.RunsTotal.WithLabelValues(StatusOK).Inc()
	r.CandidateVerdicts.WithLabelValues(strconv.FormatBool(wl.Verdict(steps))).Inc()
}

// Gatherer exposes the underlying registry for scraping or inspection.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics in the text exposition format to path,
// atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
