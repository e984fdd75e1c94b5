package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// BulkFailure records one order that could not be transitioned during a bulk
// operation. ValidOptions carries the permitted destinations for the order's
// current status when the failure was an impermissible transition, so callers
// can present the available choices per order.
type BulkFailure struct {
	OrderID      kernel.UUID
	Err          error
	ValidOptions []order.Status
}

// BulkResult summarizes a bulk transition: which orders moved, which did not
// and why, and how many were attempted. Successful+Failed always adds up to
// TotalAttempted.
type BulkResult struct {
	Successful     []kernel.UUID
	Failed         []BulkFailure
	TotalAttempted int
}

// BulkTransitioner is a domain service that applies one status change to a
// batch of orders.
//
// Business rules:
//   - Orders are processed in the given sequence
//   - Each order is validated independently against the transition table
//   - A failed order never blocks the rest of the batch
//   - Failed orders are left untouched
type BulkTransitioner struct{}

// NewBulkTransitioner creates a new BulkTransitioner instance.
func NewBulkTransitioner() BulkTransitioner {
	return BulkTransitioner{}
}

// Apply transitions every order in the batch to target with the same
// metadata and collects the per-order outcomes. The operation is partial by
// design: it never returns an error for individual order failures, only a
// result accounting for all of them.
func (b BulkTransitioner) Apply(orders []*order.Order, target order.Status, meta order.TransitionMeta) BulkResult {
	result := BulkResult{TotalAttempted: len(orders)}

	for _, o := range orders {
		if err := o.Transition(target, meta); err != nil {
			failure := BulkFailure{Err: err}
			if o != nil {
				failure.OrderID = o.ID()
			}

			var invalidErr *order.InvalidTransitionError
			if errors.As(err, &invalidErr) {
				failure.ValidOptions = invalidErr.ValidOptions
			}

			result.Failed = append(result.Failed, failure)
			continue
		}
		result.Successful = append(result.Successful, o.ID())
	}

	return result
}
