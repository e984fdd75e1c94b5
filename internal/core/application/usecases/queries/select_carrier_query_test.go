package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPerformanceStore struct{ mock.Mock }

func (m *MockPerformanceStore) ZoneHistory(ctx context.Context, zone kernel.Zone) (carrier.ZoneHistory, error) {
	args := m.Called(ctx, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(carrier.ZoneHistory), args.Error(1)
}

func (m *MockPerformanceStore) UpdateZoneHistory(
	ctx context.Context, zone kernel.Zone, mutate func(carrier.ZoneHistory),
) error {
	args := m.Called(ctx, zone, mutate)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSelectCarrierHandler(store ports.PerformanceStore) queries.SelectCarrierQueryHandler {
	router := services.NewCarrierRouter(carrier.DefaultRegistry())
	return queries.NewSelectCarrierQueryHandler(router, store, discardLogger())
}

func TestNewSelectCarrierQuery_Valid(t *testing.T) {
	request := services.RoutingRequest{Pincode: "400001", Zone: kernel.ZoneMetro, WeightKg: 1}
	query, err := queries.NewSelectCarrierQuery(request)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, request, query.Request())
	assert.Equal(t, kernel.ZoneMetro, query.Zone())
}

func TestNewSelectCarrierQuery_InvalidRequest(t *testing.T) {
	_, err := queries.NewSelectCarrierQuery(services.RoutingRequest{})
	require.Error(t, err)
}

func TestNewSelectCarrierQuery_MissingPincode(t *testing.T) {
	_, err := queries.NewSelectCarrierQuery(services.RoutingRequest{
		Zone: kernel.ZoneTier3, WeightKg: 1,
	})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSelectCarrierQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.SelectCarrierQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSelectCarrierQueryIsNotConstructed)
}

func TestSelectCarrierQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewSelectCarrierQuery(services.RoutingRequest{
		Pincode: "793001", Zone: kernel.ZoneTier3, WeightKg: 0.5,
	})

	store := new(MockPerformanceStore)
	store.On("ZoneHistory", ctx, kernel.ZoneTier3).Return(carrier.ZoneHistory{}, nil).Once()

	result, err := newSelectCarrierHandler(store).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "delhivery", result.Selected.CarrierID)
	store.AssertExpectations(t)
}

func TestSelectCarrierQueryHandler_Handle_UsesHistory(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewSelectCarrierQuery(services.RoutingRequest{
		Pincode: "793001", Zone: kernel.ZoneTier3, WeightKg: 1,
	})

	var degraded carrier.PerformanceRecord
	for i := 0; i < 5; i++ {
		degraded.Record(carrier.Outcome{Success: true, DeliveryDays: 4, Cost: 80})
	}
	for i := 0; i < 6; i++ {
		degraded.Record(carrier.Outcome{Success: false, DeliveryDays: 6, Cost: 80})
	}

	store := new(MockPerformanceStore)
	store.On("ZoneHistory", ctx, kernel.ZoneTier3).
		Return(carrier.ZoneHistory{"delhivery": degraded}, nil).Once()

	result, err := newSelectCarrierHandler(store).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "xpressbees", result.Selected.CarrierID)
}

func TestSelectCarrierQueryHandler_Handle_StoreUnavailable(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewSelectCarrierQuery(services.RoutingRequest{
		Pincode: "400001", Zone: kernel.ZoneMetro, WeightKg: 1,
	})

	store := new(MockPerformanceStore)
	store.On("ZoneHistory", ctx, kernel.ZoneMetro).
		Return(nil, ports.ErrStoreUnavailable).Once()

	// The outage degrades to prior-based scoring instead of failing.
	result, err := newSelectCarrierHandler(store).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "delhivery", result.Selected.CarrierID)
}

func TestSelectCarrierQueryHandler_Handle_OtherStoreError(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewSelectCarrierQuery(services.RoutingRequest{
		Pincode: "400001", Zone: kernel.ZoneMetro, WeightKg: 1,
	})

	store := new(MockPerformanceStore)
	store.On("ZoneHistory", ctx, kernel.ZoneMetro).
		Return(nil, errors.New("corrupt payload")).Once()

	_, err := newSelectCarrierHandler(store).Handle(ctx, query)
	require.Error(t, err)
}

func TestSelectCarrierQueryHandler_Handle_NoEligibleCarrier(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewSelectCarrierQuery(services.RoutingRequest{
		Pincode: "793001", Zone: kernel.ZoneTier3, WeightKg: 99,
	})

	store := new(MockPerformanceStore)
	store.On("ZoneHistory", ctx, kernel.ZoneTier3).Return(carrier.ZoneHistory{}, nil).Once()

	_, err := newSelectCarrierHandler(store).Handle(ctx, query)
	assert.ErrorIs(t, err, services.ErrNoEligibleCarrier)
}
