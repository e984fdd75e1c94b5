package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
)

// ErrStoreUnavailable is returned when the performance store cannot be
// reached. Routing treats it as "no history" and falls back to the neutral
// reliability prior rather than failing the selection.
var ErrStoreUnavailable = errors.New("performance store unavailable")

// PerformanceStore defines the contract for the per-zone carrier performance
// history. One zone maps to one history document holding a record per
// carrier.
type PerformanceStore interface {
	// ZoneHistory retrieves the accumulated history for a zone. A zone with
	// no recorded shipments yields an empty (non-nil) history.
	ZoneHistory(ctx context.Context, zone kernel.Zone) (carrier.ZoneHistory, error)

	// UpdateZoneHistory applies mutate to the zone's history atomically with
	// respect to concurrent updates of the same zone. Implementations retry
	// mutate on write conflicts, so it must be side-effect free.
	UpdateZoneHistory(ctx context.Context, zone kernel.Zone, mutate func(carrier.ZoneHistory)) error
}
