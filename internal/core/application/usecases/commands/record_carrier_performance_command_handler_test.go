package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordCarrierPerformanceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordCarrierPerformanceCommand(
		"delhivery", kernel.ZoneMetro, carrier.Outcome{Success: true, DeliveryDays: 1, Cost: 52.5},
	)

	history := carrier.ZoneHistory{}
	store := new(MockPerformanceStore)
	store.On("UpdateZoneHistory", ctx, kernel.ZoneMetro, mock.AnythingOfType("func(carrier.ZoneHistory)")).
		Run(func(args mock.Arguments) {
			mutate := args.Get(2).(func(carrier.ZoneHistory))
			mutate(history)
		}).
		Return(nil).Once()

	h := commands.NewRecordCarrierPerformanceCommandHandler(carrier.DefaultRegistry(), store)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	record := history["delhivery"]
	assert.Equal(t, 1, record.TotalShipments)
	assert.Equal(t, 1, record.Successful)
	assert.InDelta(t, 1.0, record.AvgDeliveryDays, 1e-9)
	assert.InDelta(t, 52.5, record.AvgCost, 1e-9)
	store.AssertExpectations(t)
}

func TestRecordCarrierPerformanceCommandHandler_Handle_UnknownCarrier(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordCarrierPerformanceCommand(
		"nope", kernel.ZoneMetro, carrier.Outcome{Success: true},
	)

	store := new(MockPerformanceStore)
	h := commands.NewRecordCarrierPerformanceCommandHandler(carrier.DefaultRegistry(), store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	store.AssertNotCalled(t, "UpdateZoneHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordCarrierPerformanceCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordCarrierPerformanceCommand(
		"delhivery", kernel.ZoneMetro, carrier.Outcome{Success: false, DeliveryDays: 3, Cost: 60},
	)

	store := new(MockPerformanceStore)
	store.On("UpdateZoneHistory", ctx, kernel.ZoneMetro, mock.Anything).
		Return(errors.New("store down")).Once()

	h := commands.NewRecordCarrierPerformanceCommandHandler(carrier.DefaultRegistry(), store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRecordCarrierPerformanceCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordCarrierPerformanceCommand{} // not constructed properly
	h := commands.NewRecordCarrierPerformanceCommandHandler(carrier.DefaultRegistry(), new(MockPerformanceStore))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
