// Package middleware provides cross-cutting concerns for the election
// simulation: metrics collection and tracing observers.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/abtinsr/rank-based-elections/internal/ports"
)

// Metric names understood by ElectionMetrics.
const (
	MetricRoundsTotal       = "election_rounds_total"
	MetricEliminationsTotal = "election_eliminations_total"
	MetricLeadingShare      = "election_leading_vote_share"
	MetricDroppedVotes      = "election_dropped_votes_total"
)

// ElectionMetrics implements the MetricsCollector interface using
// Prometheus. It provides monitoring of round counts, eliminations,
// the leading vote share, and simulation latency.
type ElectionMetrics struct {
	roundsTotal        prometheus.Counter
	eliminationsTotal  *prometheus.CounterVec
	leadingShare       prometheus.Gauge
	droppedVotes       prometheus.Counter
	simulationDuration *prometheus.HistogramVec
	operationCounter   *prometheus.CounterVec
}

// NewElectionMetrics creates an ElectionMetrics instance and registers
// all metrics with the given registerer. Tests pass a fresh
// prometheus.NewRegistry; production callers typically pass
// prometheus.DefaultRegisterer.
func NewElectionMetrics(reg prometheus.Registerer) *ElectionMetrics {
	factory := promauto.With(reg)
	return &ElectionMetrics{
		roundsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricRoundsTotal,
			Help: "Total number of redistribution rounds executed.",
		}),
		eliminationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricEliminationsTotal,
			Help: "Total number of party eliminations, by party.",
		}, []string{"party"}),
		leadingShare: factory.NewGauge(prometheus.GaugeOpts{
			Name: MetricLeadingShare,
			Help: "Combined vote share of the currently leading party.",
		}),
		droppedVotes: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricDroppedVotes,
			Help: "Votes dropped because their destination was absent from the table.",
		}),
		simulationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "election_simulation_duration_seconds",
			Help:    "Execution time of simulation operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		operationCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "election_operations_total",
			Help: "Total number of simulation operations by status.",
		}, []string{"operation", "status"}),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (em *ElectionMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	em.simulationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if status, ok := labels["status"]; ok {
		em.operationCounter.WithLabelValues(operation, status).Inc()
	}
}

// RecordCounter implements the MetricsCollector interface by
// incrementing Prometheus counters.
func (em *ElectionMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case MetricRoundsTotal:
		em.roundsTotal.Add(value)
	case MetricEliminationsTotal:
		em.eliminationsTotal.WithLabelValues(labels["party"]).Add(value)
	case MetricDroppedVotes:
		em.droppedVotes.Add(value)
	default:
		status, ok := labels["status"]
		if !ok {
			status = "success"
		}
		em.operationCounter.WithLabelValues(metric, status).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (em *ElectionMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case MetricLeadingShare:
		em.leadingShare.Set(value)
	}
}

// Compile-time verification that ElectionMetrics implements
// MetricsCollector.
var _ ports.MetricsCollector = (*ElectionMetrics)(nil)
