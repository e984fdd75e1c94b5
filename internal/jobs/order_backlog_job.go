package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// backlogStatuses are the parked statuses operators review: holds and
// return-to-origin legs do not progress without manual action.
var backlogStatuses = []order.Status{order.OnHold, order.RTOInitiated, order.RTOInTransit}

// OrderBacklogJob periodically counts orders parked in statuses that need
// manual follow-up and logs the non-empty backlogs. Like the carrier health
// sweep, the log stream is the alerting surface.
type OrderBacklogJob struct {
	orders ports.OrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderBacklogJob creates a job reporting parked-order backlogs every ten
// minutes.
func NewOrderBacklogJob(orders ports.OrderRepository, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		orders: orders,
		cron:   cron.New(),
		logger: logger.With("component", "order_backlog_job"),
	}
}

// Start begins the order backlog job to run every ten minutes.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started (running every ten minutes)")
	return nil
}

// Stop stops the order backlog job.
func (j *OrderBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}

// sweep counts the orders parked in each watched status and logs the lanes
// holding work. A repository failure is logged once and ends the sweep.
func (j *OrderBacklogJob) sweep(ctx context.Context) {
	for _, status := range backlogStatuses {
		parked, err := j.orders.GetAllInStatus(ctx, status)
		if err != nil {
			j.logger.WarnContext(ctx, "Order backlog sweep aborted", "status", status.String(), "error", err)
			return
		}

		if len(parked) == 0 {
			continue
		}

		j.logger.WarnContext(ctx, "orders awaiting manual follow-up",
			"status", status.String(),
			"count", len(parked),
		)
	}
}
