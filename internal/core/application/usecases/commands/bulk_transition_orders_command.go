package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrBulkTransitionOrdersCommandIsNotConstructed = errors.New(
	"BulkTransitionOrdersCommand must be created via NewBulkTransitionOrdersCommand constructor",
)

// BulkTransitionOrdersCommand represents a request to move a batch of orders
// to the same target status with shared metadata. The operation is partial:
// orders that cannot make the change are reported individually and never
// block the rest of the batch.
type BulkTransitionOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	target   order.Status
	meta     order.TransitionMeta

	guard guard.ConstructorGuard
}

// NewBulkTransitionOrdersCommand creates a command to change a batch of
// orders' status. Validates that at least one order ID is given and that
// every ID and the target status are valid.
func NewBulkTransitionOrdersCommand(
	orderIDs []kernel.UUID,
	target order.Status,
	meta order.TransitionMeta,
) (BulkTransitionOrdersCommand, error) {
	bulkCommand := BulkTransitionOrdersCommand{
		meta:  meta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bulkCommand.setOrderIDs(orderIDs),
		bulkCommand.setTarget(target),
	); err != nil {
		return BulkTransitionOrdersCommand{}, err
	}

	return bulkCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkTransitionOrdersCommandIsNotConstructed if validation fails.
func (c BulkTransitionOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkTransitionOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to transition.
func (c BulkTransitionOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Target returns the requested destination status.
func (c BulkTransitionOrdersCommand) Target() order.Status {
	return c.target
}

// Meta returns the shared transition metadata.
func (c BulkTransitionOrdersCommand) Meta() order.TransitionMeta {
	return c.meta
}

func (c *BulkTransitionOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("order ids")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *BulkTransitionOrdersCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
