// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. CarrierHealthJob - Runs every minute to sweep per-zone carrier
// performance and log degraded lanes
//
// 2. OrderBacklogJob - Runs every ten minutes to count orders parked in
// statuses that need manual follow-up (holds and return-to-origin legs)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(registry, performanceStore, orderRepository, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sweeps log and skip when their backing store is unreachable
// - Failed job starts will stop any already running jobs
package jobs
