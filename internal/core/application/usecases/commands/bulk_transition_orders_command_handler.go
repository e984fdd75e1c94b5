package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// BulkTransitionOrdersCommandHandler handles batch status changes.
// Orders that cannot be loaded or cannot make the transition are reported
// per order; the successfully transitioned orders are persisted together in
// one transaction, with events emitted for each after commit.
type BulkTransitionOrdersCommandHandler struct {
	uowFactory   OrderUoWFactory
	transitioner services.BulkTransitioner
	recorder     ports.ActivityRecorder
	notifier     ports.NotificationPublisher
}

// NewBulkTransitionOrdersCommandHandler creates a handler for batch status
// change operations.
func NewBulkTransitionOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	transitioner services.BulkTransitioner,
	recorder ports.ActivityRecorder,
	notifier ports.NotificationPublisher,
) BulkTransitionOrdersCommandHandler {
	return BulkTransitionOrdersCommandHandler{
		uowFactory:   uowFactory,
		transitioner: transitioner,
		recorder:     recorder,
		notifier:     notifier,
	}
}

// Handle processes the batch transition command.
// Returns the per-order accounting; the error return covers command
// validation and transaction failures only, never individual order
// failures.
func (h *BulkTransitionOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd BulkTransitionOrdersCommand,
) (services.BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.BulkResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.BulkResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	result := services.BulkResult{TotalAttempted: len(cmd.OrderIDs())}

	loaded, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return services.BulkResult{}, err
	}

	fromStatuses := make(map[string]order.Status, len(loaded))
	for _, aggregate := range loaded {
		fromStatuses[aggregate.ID().String()] = aggregate.Status()
	}

	// GetMany skips unknown identifiers; account for each as a failure.
	for _, id := range cmd.OrderIDs() {
		if _, ok := fromStatuses[id.String()]; !ok {
			result.Failed = append(result.Failed, services.BulkFailure{
				OrderID: id,
				Err:     errs.NewObjectNotFoundError("order", id.String()),
			})
		}
	}

	applied := h.transitioner.Apply(loaded, cmd.Target(), cmd.Meta())
	result.Successful = applied.Successful
	result.Failed = append(result.Failed, applied.Failed...)

	succeeded := make(map[string]bool, len(applied.Successful))
	for _, id := range applied.Successful {
		succeeded[id.String()] = true
	}

	for _, aggregate := range loaded {
		if !succeeded[aggregate.ID().String()] {
			continue
		}
		if err := orderRepo.Update(ctx, aggregate); err != nil {
			return services.BulkResult{}, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return services.BulkResult{}, err
	}

	for _, aggregate := range loaded {
		if !succeeded[aggregate.ID().String()] {
			continue
		}
		history := aggregate.History()
		h.recorder.RecordTransition(ctx, aggregate.ID(), history[len(history)-1])
		h.notifier.PublishStatusChange(
			ctx, aggregate.ID(), fromStatuses[aggregate.ID().String()], aggregate.Status(),
		)
	}

	return result, nil
}
