package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// TransitionOrderCommandHandler handles single-order status changes.
// Loads the order, lets the aggregate validate and apply the transition,
// persists the result, and emits audit and notification events after the
// transaction commits.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	recorder   ports.ActivityRecorder
	notifier   ports.NotificationPublisher
}

// NewTransitionOrderCommandHandler creates a handler for status change
// operations. The recorder and notifier run only after a successful commit,
// so consumers never observe a change that was rolled back.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	recorder ports.ActivityRecorder,
	notifier ports.NotificationPublisher,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		notifier:   notifier,
	}
}

// Handle processes the transition command.
// Returns *order.InvalidTransitionError (wrapped in the aggregate's error)
// when the requested change is not permitted from the order's current
// status; the order is left untouched in that case.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if err = aggregate.Transition(cmd.Target(), cmd.Meta()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	history := aggregate.History()
	h.recorder.RecordTransition(ctx, aggregate.ID(), history[len(history)-1])
	h.notifier.PublishStatusChange(ctx, aggregate.ID(), from, aggregate.Status())

	return nil
}
