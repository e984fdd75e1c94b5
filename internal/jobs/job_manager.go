package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	carrierHealthJob *CarrierHealthJob
	orderBacklogJob  *OrderBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	registry *carrier.Registry,
	store ports.PerformanceStore,
	orders ports.OrderRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		carrierHealthJob: NewCarrierHealthJob(registry, store, logger),
		orderBacklogJob:  NewOrderBacklogJob(orders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.carrierHealthJob.Start(); err != nil {
		return fmt.Errorf("failed to start carrier health job: %w", err)
	}

	if err := jm.orderBacklogJob.Start(); err != nil {
		jm.carrierHealthJob.Stop()
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.carrierHealthJob.Stop()
	jm.orderBacklogJob.Stop()
}
