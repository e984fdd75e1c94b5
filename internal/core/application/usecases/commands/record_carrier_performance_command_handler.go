package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/ports"
)

// RecordCarrierPerformanceCommandHandler folds observed shipment outcomes
// into the per-zone carrier performance history.
type RecordCarrierPerformanceCommandHandler struct {
	registry *carrier.Registry
	store    ports.PerformanceStore
}

// NewRecordCarrierPerformanceCommandHandler creates a handler for
// performance recording operations. The registry rejects outcomes reported
// against carriers that do not exist.
func NewRecordCarrierPerformanceCommandHandler(
	registry *carrier.Registry,
	store ports.PerformanceStore,
) RecordCarrierPerformanceCommandHandler {
	return RecordCarrierPerformanceCommandHandler{
		registry: registry,
		store:    store,
	}
}

// Handle processes the performance recording command.
// The history update is atomic per zone: concurrent reports against the same
// zone never lose outcomes.
func (h *RecordCarrierPerformanceCommandHandler) Handle(
	ctx context.Context,
	cmd RecordCarrierPerformanceCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.registry.Get(cmd.CarrierID()); err != nil {
		return err
	}

	return h.store.UpdateZoneHistory(ctx, cmd.Zone(), func(history carrier.ZoneHistory) {
		record := history[cmd.CarrierID()]
		record.Record(cmd.Outcome())
		history[cmd.CarrierID()] = record
	})
}
