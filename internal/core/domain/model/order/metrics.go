package order

import "time"

// Metrics holds lifecycle durations derived from an order's status history.
// A milestone that never happened leaves its metric absent rather than zero;
// callers must treat "absent" and "zero" as distinct, which is why each
// duration is paired with a presence flag.
type Metrics struct {
	// ProcessingHours is the whole hours between order creation (first entry
	// into Pending) and pickup. Valid only when HasProcessingTime is true.
	ProcessingHours   int
	HasProcessingTime bool

	// TransitDays is the whole days between pickup and delivery.
	// Valid only when HasTransitTime is true.
	TransitDays    int
	HasTransitTime bool

	// TotalDays is the whole days between creation and delivery.
	// Valid only when HasTotalTime is true.
	TotalDays    int
	HasTotalTime bool

	// TransitionCount is the length of the order's status history.
	TransitionCount int
}

// firstEntryInto returns the timestamp of the first history record whose
// destination is the given status.
func (o *Order) firstEntryInto(status Status) (time.Time, bool) {
	for _, t := range o.history {
		if t.To == status {
			return t.Timestamp, true
		}
	}
	return time.Time{}, false
}

// CalculateMetrics derives lifecycle metrics by scanning the status history
// for the first entries into Pending (creation), Picked-Up, and Delivered.
// Metrics whose milestones are missing are left absent.
func (o *Order) CalculateMetrics() Metrics {
	metrics := Metrics{TransitionCount: len(o.history)}

	createdAt, hasCreated := o.firstEntryInto(Pending)
	pickedAt, hasPicked := o.firstEntryInto(PickedUp)
	deliveredAt, hasDelivered := o.firstEntryInto(Delivered)

	if hasCreated && hasPicked {
		metrics.ProcessingHours = int(pickedAt.Sub(createdAt).Round(time.Hour).Hours())
		metrics.HasProcessingTime = true
	}

	if hasPicked && hasDelivered {
		metrics.TransitDays = roundToDays(deliveredAt.Sub(pickedAt))
		metrics.HasTransitTime = true
	}

	if hasCreated && hasDelivered {
		metrics.TotalDays = roundToDays(deliveredAt.Sub(createdAt))
		metrics.HasTotalTime = true
	}

	return metrics
}

// roundToDays converts a duration to whole days, rounding half up.
func roundToDays(d time.Duration) int {
	return int((d + 12*time.Hour) / (24 * time.Hour))
}
