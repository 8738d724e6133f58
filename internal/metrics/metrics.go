// Package metrics provides Prometheus metrics for the leaderboard pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Ingestion metrics
	PagesFetched      prometheus.Counter
	SwapsFetched      prometheus.Counter
	SourceErrors      *prometheus.CounterVec
	SourceCallLatency prometheus.Histogram

	// Aggregation metrics
	SwapsProcessed prometheus.Counter
	SwapsSkipped   *prometheus.CounterVec

	// Pipeline metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram
}

// NewMetrics creates a Metrics instance registered against reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "dexboard"
	}
	f := promauto.With(reg)

	return &Metrics{
		PagesFetched: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "pages_fetched_total",
			Help:      "Total number of swap pages fetched from the source",
		}),
		SwapsFetched: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "swaps_fetched_total",
			Help:      "Total number of swap records fetched from the source",
		}),
		SourceErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "source_errors_total",
			Help:      "Total number of failed page requests by error kind",
		}, []string{"kind"}),
		SourceCallLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "source_call_latency_seconds",
			Help:      "Latency of a single page request in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		SwapsProcessed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "swaps_processed_total",
			Help:      "Total number of swaps classified and aggregated",
		}),
		SwapsSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "swaps_skipped_total",
			Help:      "Total number of swaps skipped by reason",
		}, []string{"reason"}),

		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of leaderboard runs by status",
		}, []string{"status"}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Leaderboard run duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("", prometheus.DefaultRegisterer)

// RecordPage records one successfully fetched page.
func RecordPage(swaps int, seconds float64) {
	DefaultMetrics.PagesFetched.Inc()
	DefaultMetrics.SwapsFetched.Add(float64(swaps))
	DefaultMetrics.SourceCallLatency.Observe(seconds)
}

// RecordSourceError records a failed page request.
func RecordSourceError(kind string) {
	DefaultMetrics.SourceErrors.WithLabelValues(kind).Inc()
}

// RecordProcessed adds n aggregated swaps.
func RecordProcessed(n int) {
	DefaultMetrics.SwapsProcessed.Add(float64(n))
}

// RecordSkipped records one skipped swap.
func RecordSkipped(reason string) {
	DefaultMetrics.SwapsSkipped.WithLabelValues(reason).Inc()
}

// RecordRun records a pipeline run outcome.
func RecordRun(status string, durationSeconds float64) {
	DefaultMetrics.RunsTotal.WithLabelValues(status).Inc()
	DefaultMetrics.RunDuration.Observe(durationSeconds)
}
