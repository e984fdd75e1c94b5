package carrier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/carrier"

	"github.com/stretchr/testify/assert"
)

func recordOutcomes(r *carrier.PerformanceRecord, successes, failures int) {
	for i := 0; i < successes; i++ {
		r.Record(carrier.Outcome{Success: true, DeliveryDays: 2, Cost: 60})
	}
	for i := 0; i < failures; i++ {
		r.Record(carrier.Outcome{Success: false, DeliveryDays: 4, Cost: 60})
	}
}

func TestPerformanceRecord(t *testing.T) {
	t.Run("should keep counters consistent", func(t *testing.T) {
		var record carrier.PerformanceRecord
		recordOutcomes(&record, 3, 2)

		assert.Equal(t, 5, record.TotalShipments)
		assert.Equal(t, 3, record.Successful)
		assert.Equal(t, 2, record.Failed)
		assert.Equal(t, record.TotalShipments, record.Successful+record.Failed)
	})

	t.Run("should maintain running averages", func(t *testing.T) {
		var record carrier.PerformanceRecord
		record.Record(carrier.Outcome{Success: true, DeliveryDays: 1, Cost: 50})
		record.Record(carrier.Outcome{Success: true, DeliveryDays: 3, Cost: 70})
		record.Record(carrier.Outcome{Success: false, DeliveryDays: 5, Cost: 90})

		assert.InDelta(t, 3.0, record.AvgDeliveryDays, 1e-9)
		assert.InDelta(t, 70.0, record.AvgCost, 1e-9)
	})

	t.Run("should update averages on failed shipments too", func(t *testing.T) {
		var record carrier.PerformanceRecord
		record.Record(carrier.Outcome{Success: false, DeliveryDays: 6, Cost: 100})

		assert.InDelta(t, 6.0, record.AvgDeliveryDays, 1e-9)
		assert.InDelta(t, 100.0, record.AvgCost, 1e-9)
	})
}

func TestReliabilityScore(t *testing.T) {
	t.Run("should use neutral prior with sparse history", func(t *testing.T) {
		var record carrier.PerformanceRecord
		recordOutcomes(&record, 1, 4)

		// 5 shipments is still below the cold-start threshold.
		assert.InDelta(t, 80.0, record.ReliabilityScore(), 1e-9)
	})

	t.Run("should use observed ratio once history is sufficient", func(t *testing.T) {
		var record carrier.PerformanceRecord
		recordOutcomes(&record, 3, 3)

		assert.InDelta(t, 50.0, record.ReliabilityScore(), 1e-9)
	})

	t.Run("should return prior for empty record", func(t *testing.T) {
		var record carrier.PerformanceRecord

		assert.InDelta(t, 80.0, record.ReliabilityScore(), 1e-9)
		assert.InDelta(t, 0.0, record.SuccessRatio(), 1e-9)
	})
}

func TestDegradation(t *testing.T) {
	t.Run("should not flag carriers with small history", func(t *testing.T) {
		var record carrier.PerformanceRecord
		recordOutcomes(&record, 2, 8)

		// 10 shipments at 20% success: poor, but not enough history yet.
		assert.False(t, record.IsDegraded)
	})

	t.Run("should flag carriers past the threshold with poor success", func(t *testing.T) {
		var record carrier.PerformanceRecord
		recordOutcomes(&record, 5, 6)

		// 11 shipments at ~45% success.
		assert.True(t, record.IsDegraded)
	})

	t.Run("should not flag carriers past the threshold with good success", func(t *testing.T) {
		var record carrier.PerformanceRecord
		recordOutcomes(&record, 9, 2)

		assert.False(t, record.IsDegraded)
	})

	t.Run("should clear the flag when the ratio recovers", func(t *testing.T) {
		var record carrier.PerformanceRecord
		recordOutcomes(&record, 5, 6)
		assert.True(t, record.IsDegraded)

		recordOutcomes(&record, 10, 0)

		// 15 of 21 successful is back above the cutoff.
		assert.False(t, record.IsDegraded)
	})
}
