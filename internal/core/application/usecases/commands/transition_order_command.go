package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move one order to a new
// workflow status. Meta carries the actor and the optional status-specific
// fields (carrier, AWB, delivery date, RTO reason); the aggregate decides
// which of them apply to the target status.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.CarrierAssigned, order.TransitionMeta{
//	    User:    "ops",
//	    Carrier: "delhivery",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, recorder, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var invalidErr *order.InvalidTransitionError
//	    if errors.As(err, &invalidErr) {
//	        // Present invalidErr.ValidOptions to the caller
//	    }
//	    return err
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	meta    order.TransitionMeta

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to change an order's status.
// Validates that the order ID and the target status are valid; whether the
// transition itself is permitted is decided by the aggregate at handling
// time.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	meta order.TransitionMeta,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		meta:  meta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Meta returns the transition metadata.
func (c TransitionOrderCommand) Meta() order.TransitionMeta {
	return c.meta
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
