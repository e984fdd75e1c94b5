package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var ErrSelectCarrierQueryIsNotConstructed = errors.New(
	"SelectCarrierQuery must be created via NewSelectCarrierQuery constructor",
)

// SelectCarrierQuery requests a carrier recommendation for one shipment.
// Selection never mutates state: the zone's performance history is read,
// the eligible carriers are scored, and the ranking is returned.
//
// Example:
//
//	query, err := NewSelectCarrierQuery(services.RoutingRequest{
//	    Pincode:  "400001",
//	    Zone:     kernel.ZoneMetro,
//	    WeightKg: 1.2,
//	    Express:  true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSelectCarrierQueryHandler(router, store, logger)
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrNoEligibleCarrier) {
//	    // No carrier can take this shipment
//	}
type SelectCarrierQuery struct {
	request services.RoutingRequest

	guard guard.ConstructorGuard
}

// NewSelectCarrierQuery creates a carrier selection query.
// Validates the routing request up front so handlers never see a malformed
// one.
func NewSelectCarrierQuery(request services.RoutingRequest) (SelectCarrierQuery, error) {
	if err := request.Validate(); err != nil {
		return SelectCarrierQuery{}, err
	}

	return SelectCarrierQuery{
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSelectCarrierQueryIsNotConstructed if validation fails.
func (q SelectCarrierQuery) Validate() error {
	return q.guard.Validate(ErrSelectCarrierQueryIsNotConstructed)
}

// Request returns the routing request.
func (q SelectCarrierQuery) Request() services.RoutingRequest {
	return q.request
}

// Zone returns the destination zone of the request.
func (q SelectCarrierQuery) Zone() kernel.Zone {
	return q.request.Zone
}
