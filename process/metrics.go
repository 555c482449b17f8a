package process

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes used as the "result" label.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultPanic    = "panic"
)

// Metrics holds the Prometheus collectors of the traversal engine.
// All methods are safe on a nil receiver, which records nothing.
type Metrics struct {
	// queries counts finished queries.
	// Labels: strategy, operation, result (found, not_found, panic)
	queries *prometheus.CounterVec

	// tested counts predicate evaluations.
	// Labels: strategy
	tested *prometheus.CounterVec

	// levels counts distance levels drained by level-synchronized search.
	// Labels: strategy
	levels *prometheus.CounterVec

	// duration measures wall time per query.
	// Labels: strategy, operation
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nodify",
			Name:      "queries_total",
			Help:      "Total traversal queries by strategy, operation and result",
		}, []string{"strategy", "operation", "result"}),
		tested: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nodify",
			Name:      "nodes_tested_total",
			Help:      "Total nodes tested against a query predicate",
		}, []string{"strategy"}),
		levels: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nodify",
			Name:      "levels_total",
			Help:      "Total distance levels processed by level-synchronized search",
		}, []string{"strategy"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nodify",
			Name:      "query_duration_seconds",
			Help:      "Traversal query latency in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"strategy", "operation"}),
	}
}

// observe records one finished query.
func (m *Metrics) observe(strategy string, op Operation, result string, tested, levels int64, took time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(strategy, string(op), result).Inc()
	m.tested.WithLabelValues(strategy).Add(float64(tested))
	if levels > 0 {
		m.levels.WithLabelValues(strategy).Add(float64(levels))
	}
	m.duration.WithLabelValues(strategy, string(op)).Observe(took.Seconds())
}
