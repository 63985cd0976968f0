package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
	OutcomeCached  = "cached"
)

var (
	FlowRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flow_runs_total",
			Help: "Total number of AI flow runs by outcome",
		},
		[]string{"flow", "outcome"},
	)

	FlowRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flow_run_duration_seconds",
			Help:    "Duration of AI flow runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"flow"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_calls_total",
			Help: "Total number of calls to the model provider",
		},
		[]string{"provider", "kind", "outcome"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)
