// Package activity provides a structured-log implementation of the activity
// recorder. Each applied status change is emitted as one log record, giving
// an audit trail without a dedicated store.
package activity

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// SlogRecorder records order transitions as structured log entries.
type SlogRecorder struct {
	logger *slog.Logger
}

// NewSlogRecorder creates a recorder writing to the given logger.
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	return &SlogRecorder{logger: logger}
}

// RecordTransition records one applied status change.
func (r *SlogRecorder) RecordTransition(ctx context.Context, orderID kernel.UUID, record order.Transition) {
	attrs := []any{
		"order_id", orderID.String(),
		"from", record.From.String(),
		"to", record.To.String(),
		"user", record.User,
		"at", record.Timestamp,
	}
	if record.Reason != "" {
		attrs = append(attrs, "reason", record.Reason)
	}
	if record.Notes != "" {
		attrs = append(attrs, "notes", record.Notes)
	}

	r.logger.InfoContext(ctx, "order status changed", attrs...)
}
