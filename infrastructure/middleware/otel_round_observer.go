package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/abtinsr/rank-based-elections/internal/domain"
	"github.com/abtinsr/rank-based-elections/internal/ports"
)

var _ ports.RoundObserver = (*OTelRoundObserver)(nil)

// OTelRoundObserver implements observability for the simulation loop
// using OpenTelemetry tracing. It creates a span per simulation run,
// records an event per elimination round, and forwards counters to an
// optional metrics collector.
//
// One observer instance tracks one simulation run at a time; it is not
// safe for concurrent simulations.
type OTelRoundObserver struct {
	metrics ports.MetricsCollector
	span    trace.Span
}

// NewOTelRoundObserver creates a new OpenTelemetry round observer.
// metrics may be nil when only tracing is wanted.
func NewOTelRoundObserver(metrics ports.MetricsCollector) *OTelRoundObserver {
	return &OTelRoundObserver{metrics: metrics}
}

// SimulationStarted implements the RoundObserver interface. It starts
// the simulation span and records the table size.
func (o *OTelRoundObserver) SimulationStarted(ctx context.Context, partyCount int) {
	tracer := otel.Tracer("election-simulator")
	_, span := tracer.Start(ctx, "Simulator.Simulate")
	o.span = span

	o.span.SetAttributes(attribute.Int("election.party_count", partyCount))
}

// RoundCompleted implements the RoundObserver interface. It records a
// span event for the elimination and updates round metrics.
func (o *OTelRoundObserver) RoundCompleted(ctx context.Context, round int, elim domain.Elimination) {
	if o.span != nil {
		o.span.AddEvent("election.party_eliminated", trace.WithAttributes(
			attribute.Int("election.round", round),
			attribute.String("election.party", elim.Party),
			attribute.Float64("election.leading_share", elim.LeadingShare),
			attribute.Float64("election.transferred", elim.Transferred),
			attribute.Float64("election.dropped", elim.Dropped),
		))
	}

	if o.metrics == nil {
		return
	}
	o.metrics.RecordCounter(MetricRoundsTotal, 1, nil)
	o.metrics.RecordCounter(MetricEliminationsTotal, 1, map[string]string{"party": elim.Party})
	o.metrics.RecordCounter(MetricDroppedVotes, elim.Dropped, nil)
	o.metrics.RecordGauge(MetricLeadingShare, elim.LeadingShare, nil)
}

// SimulationCompleted implements the RoundObserver interface. It
// finalizes the span, records the simulation latency, and handles any
// error condition that occurred.
func (o *OTelRoundObserver) SimulationCompleted(
	ctx context.Context,
	tally *domain.Tally,
	elapsed time.Duration,
	err error,
) {
	if o.span == nil {
		return
	}
	defer func() {
		o.span.End()
		o.span = nil
	}()

	status := "success"
	if err != nil {
		status = "error"
		o.span.SetStatus(codes.Error, err.Error())
	} else {
		o.span.SetAttributes(attribute.Int("election.rounds", tally.Rounds))
		o.span.SetStatus(codes.Ok, "simulation completed")
	}

	if o.metrics != nil {
		o.metrics.RecordLatency("simulate", elapsed, map[string]string{"status": status})
	}
}
