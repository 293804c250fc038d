package middleware

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestElectionMetrics_RecordCounter(t *testing.T) {
	metrics := NewElectionMetrics(prometheus.NewRegistry())

	metrics.RecordCounter(MetricRoundsTotal, 1, nil)
	metrics.RecordCounter(MetricRoundsTotal, 1, nil)
	metrics.RecordCounter(MetricEliminationsTotal, 1, map[string]string{"party": "KD"})
	metrics.RecordCounter(MetricDroppedVotes, 4.5, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.roundsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.eliminationsTotal.WithLabelValues("KD")))
	assert.Equal(t, 4.5, testutil.ToFloat64(metrics.droppedVotes))
}

func TestElectionMetrics_RecordCounter_UnknownMetric(t *testing.T) {
	metrics := NewElectionMetrics(prometheus.NewRegistry())

	metrics.RecordCounter("table_loads", 1, map[string]string{"status": "error"})
	assert.Equal(t, 1.0, testutil.ToFloat64(
		metrics.operationCounter.WithLabelValues("table_loads", "error")))

	metrics.RecordCounter("table_loads", 1, nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		metrics.operationCounter.WithLabelValues("table_loads", "success")))
}

func TestElectionMetrics_RecordGauge(t *testing.T) {
	metrics := NewElectionMetrics(prometheus.NewRegistry())

	metrics.RecordGauge(MetricLeadingShare, 47.5, nil)
	assert.Equal(t, 47.5, testutil.ToFloat64(metrics.leadingShare))

	// Unknown gauges are ignored rather than exploding label space.
	metrics.RecordGauge("unknown", 1, nil)
}

func TestElectionMetrics_RecordLatency(t *testing.T) {
	metrics := NewElectionMetrics(prometheus.NewRegistry())

	metrics.RecordLatency("simulate", 150*time.Millisecond, map[string]string{"status": "success"})

	count := testutil.CollectAndCount(metrics.simulationDuration)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		metrics.operationCounter.WithLabelValues("simulate", "success")))
}
