package jobs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPerformanceStore struct{ mock.Mock }

func (m *mockPerformanceStore) ZoneHistory(ctx context.Context, zone kernel.Zone) (carrier.ZoneHistory, error) {
	args := m.Called(ctx, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(carrier.ZoneHistory), args.Error(1)
}

func (m *mockPerformanceStore) UpdateZoneHistory(
	ctx context.Context, zone kernel.Zone, mutate func(carrier.ZoneHistory),
) error {
	args := m.Called(ctx, zone, mutate)
	return args.Error(0)
}

func degradedRecord() carrier.PerformanceRecord {
	var record carrier.PerformanceRecord
	for range 3 {
		record.Record(carrier.Outcome{Success: true, DeliveryDays: 2, Cost: 50})
	}
	for range 9 {
		record.Record(carrier.Outcome{Success: false, DeliveryDays: 4, Cost: 50})
	}
	return record
}

func TestCarrierHealthJob_Sweep_LogsDegradedLanes(t *testing.T) {
	ctx := t.Context()

	store := new(mockPerformanceStore)
	store.On("ZoneHistory", ctx, kernel.ZoneMetro).
		Return(carrier.ZoneHistory{"delhivery": degradedRecord()}, nil).Once()
	store.On("ZoneHistory", ctx, mock.AnythingOfType("kernel.Zone")).
		Return(carrier.ZoneHistory{}, nil).Times(3)

	var buf bytes.Buffer
	job := NewCarrierHealthJob(
		carrier.DefaultRegistry(), store,
		slog.New(slog.NewTextHandler(&buf, nil)),
	)

	job.sweep(ctx)

	output := buf.String()
	assert.Contains(t, output, "carrier lane degraded")
	assert.Contains(t, output, "carrier=delhivery")
	assert.Contains(t, output, "zone=metro")
	store.AssertExpectations(t)
}

func TestCarrierHealthJob_Sweep_HealthyLanesStayQuiet(t *testing.T) {
	ctx := t.Context()

	var healthy carrier.PerformanceRecord
	for range 12 {
		healthy.Record(carrier.Outcome{Success: true, DeliveryDays: 2, Cost: 50})
	}

	store := new(mockPerformanceStore)
	store.On("ZoneHistory", ctx, mock.AnythingOfType("kernel.Zone")).
		Return(carrier.ZoneHistory{"delhivery": healthy}, nil).Times(4)

	var buf bytes.Buffer
	job := NewCarrierHealthJob(
		carrier.DefaultRegistry(), store,
		slog.New(slog.NewTextHandler(&buf, nil)),
	)

	job.sweep(ctx)

	assert.NotContains(t, buf.String(), "carrier lane degraded")
}

func TestCarrierHealthJob_Sweep_StoreOutageAbortsSweep(t *testing.T) {
	ctx := t.Context()

	store := new(mockPerformanceStore)
	store.On("ZoneHistory", ctx, kernel.ZoneMetro).
		Return(nil, ports.ErrStoreUnavailable).Once()

	var buf bytes.Buffer
	job := NewCarrierHealthJob(
		carrier.DefaultRegistry(), store,
		slog.New(slog.NewTextHandler(&buf, nil)),
	)

	job.sweep(ctx)

	assert.Contains(t, buf.String(), "Carrier health sweep aborted")
	store.AssertExpectations(t)
}
