package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ActivityRecorder captures audit activity emitted after successful state
// changes. Recording is fire-and-forget: implementations must never fail the
// business operation that produced the activity.
type ActivityRecorder interface {
	// RecordTransition records one applied status change.
	RecordTransition(ctx context.Context, orderID kernel.UUID, record order.Transition)
}

// NotificationPublisher pushes order change notifications to interested
// consumers (dashboards, webhooks). Publishing failures are logged by
// implementations, never propagated.
type NotificationPublisher interface {
	// PublishStatusChange announces that an order moved to a new status.
	PublishStatusChange(ctx context.Context, orderID kernel.UUID, from order.Status, to order.Status)
}
