package ports

import (
	"context"
	"time"

	"github.com/abtinsr/rank-based-elections/internal/domain"
)

// RoundObserver receives diagnostic notifications from the simulation
// loop. Observers must not mutate the simulation; notifications are
// observability, not part of the return contract.
type RoundObserver interface {
	// SimulationStarted is called once before the elimination loop
	// begins, with the number of distinct parties in the table.
	SimulationStarted(ctx context.Context, partyCount int)

	// RoundCompleted is called after each redistribution round with the
	// 1-based round number and the elimination details.
	RoundCompleted(ctx context.Context, round int, elim domain.Elimination)

	// SimulationCompleted is called once when the loop terminates.
	// tally is nil when the simulation failed; err carries the failure.
	SimulationCompleted(ctx context.Context, tally *domain.Tally, elapsed time.Duration, err error)
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations should integrate with observability
// platforms like Prometheus or custom monitoring solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)
}
