package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the ingestion and
// alerting pipelines.
type Metrics struct {
	CitiesIngested  prometheus.Counter
	IngestFailures  prometheus.Counter
	EvaluationRuns  prometheus.Counter
	AlertsGenerated prometheus.Counter

	SourceFetchDuration prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.CitiesIngested,
		m.IngestFailures,
		m.EvaluationRuns,
		m.AlertsGenerated,
		m.SourceFetchDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CitiesIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "cities_ingested_total",
			Help:      "Total successful per-city ingestion runs.",
		}),
		IngestFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "ingest_failures_total",
			Help:      "Total per-city ingestion failures.",
		}),
		EvaluationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "evaluation_runs_total",
			Help:      "Total alert evaluation sweeps.",
		}),
		AlertsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "alerts_generated_total",
			Help:      "Total alerts persisted by the evaluator.",
		}),
		SourceFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_api",
			Name:      "source_fetch_duration_seconds",
			Help:      "Duration of OpenWeatherMap current-conditions fetches.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
