package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CarrierHealthJob periodically sweeps every zone's performance history and
// logs carriers whose lanes have degraded. The log stream is the alerting
// surface: operators watch for the "carrier lane degraded" records.
type CarrierHealthJob struct {
	registry *carrier.Registry
	store    ports.PerformanceStore
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCarrierHealthJob creates a job sweeping carrier health once a minute.
func NewCarrierHealthJob(
	registry *carrier.Registry,
	store ports.PerformanceStore,
	logger *slog.Logger,
) *CarrierHealthJob {
	return &CarrierHealthJob{
		registry: registry,
		store:    store,
		cron:     cron.New(),
		logger:   logger.With("component", "carrier_health_job"),
	}
}

// Start begins the carrier health job to run every minute.
func (j *CarrierHealthJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Carrier health job started (running every minute)")
	return nil
}

// Stop stops the carrier health job.
func (j *CarrierHealthJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Carrier health job stopped")
}

// sweep checks every (carrier, zone) lane and logs the degraded ones.
// A store outage is logged once per sweep and skips the remaining zones.
func (j *CarrierHealthJob) sweep(ctx context.Context) {
	for _, zone := range kernel.AllZones() {
		history, err := j.store.ZoneHistory(ctx, zone)
		if err != nil {
			j.logger.WarnContext(ctx, "Carrier health sweep aborted", "zone", zone.String(), "error", err)
			return
		}

		for _, profile := range j.registry.ByZone(zone) {
			record, ok := history[profile.ID()]
			if !ok || !record.IsDegraded {
				continue
			}

			j.logger.WarnContext(ctx, "carrier lane degraded",
				"carrier", profile.ID(),
				"zone", zone.String(),
				"success_ratio", record.SuccessRatio(),
				"total_shipments", record.TotalShipments,
			)
		}
	}
}
