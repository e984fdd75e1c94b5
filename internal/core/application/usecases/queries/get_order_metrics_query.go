package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderMetricsQueryIsNotConstructed = errors.New(
	"GetOrderMetricsQuery must be created via NewGetOrderMetricsQuery constructor",
)

// GetOrderMetricsQuery retrieves lifecycle metrics for one order: how long
// it spent in processing, in transit, and end to end, derived from its
// status history.
//
// Example:
//
//	query, err := NewGetOrderMetricsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderMetricsQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order metrics: %w", err)
//	}
//
//	if response.Metrics.HasTotalTime {
//	    fmt.Printf("Delivered in %d days\n", response.Metrics.TotalDays)
//	}
type GetOrderMetricsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderMetricsQuery creates a query for one order's lifecycle metrics.
// Validates that the order ID is valid.
func NewGetOrderMetricsQuery(orderID kernel.UUID) (GetOrderMetricsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderMetricsQuery{}, err
	}

	return GetOrderMetricsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderMetricsQueryIsNotConstructed if validation fails.
func (q GetOrderMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMetricsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (q GetOrderMetricsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderMetricsQueryResponse carries an order's current status and its
// derived lifecycle metrics.
type GetOrderMetricsQueryResponse struct {
	OrderID kernel.UUID
	Status  order.Status
	Metrics order.Metrics
}
