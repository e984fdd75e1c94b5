// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for the read side of the CQRS architecture.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetValidNextStatusesQueryIsNotConstructed = errors.New(
	"GetValidNextStatusesQuery must be created via NewGetValidNextStatusesQuery constructor",
)

// GetValidNextStatusesQuery retrieves the permitted destinations from a
// workflow status. Drives UI choice lists without loading any order.
//
// Example:
//
//	query, err := NewGetValidNextStatusesQuery(order.Pending)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetValidNextStatusesQueryHandler()
//	response, _ := handler.Handle(query)
//	fmt.Printf("%s permits %d destinations\n", response.Current, len(response.Next))
type GetValidNextStatusesQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetValidNextStatusesQuery creates a query for one status's permitted
// destinations. Validates that the status is a workflow status.
func NewGetValidNextStatusesQuery(status order.Status) (GetValidNextStatusesQuery, error) {
	if err := status.Validate(); err != nil {
		return GetValidNextStatusesQuery{}, err
	}

	return GetValidNextStatusesQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetValidNextStatusesQueryIsNotConstructed if validation fails.
func (q GetValidNextStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetValidNextStatusesQueryIsNotConstructed)
}

// Status returns the status whose destinations are requested.
func (q GetValidNextStatusesQuery) Status() order.Status {
	return q.status
}

// GetValidNextStatusesQueryResponse carries a status and its permitted
// destination set. Next is empty for terminal statuses.
type GetValidNextStatusesQueryResponse struct {
	Current order.Status
	Next    []order.Status
}
