package queries

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// SelectCarrierQueryHandler recommends a carrier for a shipment.
// Combines the routing engine with the zone's performance history; when the
// history store is unreachable the selection degrades to the neutral
// reliability prior instead of failing.
type SelectCarrierQueryHandler struct {
	router services.CarrierRouter
	store  ports.PerformanceStore
	logger *slog.Logger
}

// NewSelectCarrierQueryHandler creates a handler for carrier selection
// queries.
func NewSelectCarrierQueryHandler(
	router services.CarrierRouter,
	store ports.PerformanceStore,
	logger *slog.Logger,
) SelectCarrierQueryHandler {
	return SelectCarrierQueryHandler{
		router: router,
		store:  store,
		logger: logger,
	}
}

// Handle executes the carrier selection query.
// A store outage is logged and treated as empty history; any other store
// failure propagates.
func (h SelectCarrierQueryHandler) Handle(
	ctx context.Context,
	query SelectCarrierQuery,
) (services.RoutingResult, error) {
	if err := query.Validate(); err != nil {
		return services.RoutingResult{}, err
	}

	history, err := h.store.ZoneHistory(ctx, query.Zone())
	if err != nil {
		if !errors.Is(err, ports.ErrStoreUnavailable) {
			return services.RoutingResult{}, err
		}
		h.logger.WarnContext(ctx, "performance store unavailable, scoring without history",
			"zone", query.Zone().String(),
			"error", err,
		)
		history = carrier.ZoneHistory{}
	}

	return h.router.SelectCarrier(query.Request(), history)
}
