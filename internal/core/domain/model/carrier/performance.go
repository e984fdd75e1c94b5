package carrier

// Reliability and degradation thresholds.
const (
	// reliabilityPrior is the neutral score assumed for carriers without
	// enough history to judge.
	reliabilityPrior = 80.0

	// coldStartShipments is the minimum history size before observed
	// reliability replaces the prior.
	coldStartShipments = 6

	// degradedMinShipments is the history size a carrier must exceed before
	// it can be flagged degraded.
	degradedMinShipments = 10

	// degradedSuccessRatio is the success ratio below which a carrier with
	// enough history is flagged degraded.
	degradedSuccessRatio = 0.6
)

// Outcome is a single observed shipment result reported against a carrier.
type Outcome struct {
	// Success reports whether the shipment was delivered.
	Success bool

	// DeliveryDays is the observed delivery time in days.
	DeliveryDays float64

	// Cost is the observed shipping cost.
	Cost float64
}

// PerformanceRecord accumulates a carrier's observed shipment history within
// one zone. Averages are maintained as running averages so the record stays
// constant-size no matter how many outcomes it has absorbed.
//
// Fields are exported with JSON tags because records travel to and from the
// performance store as JSON documents.
type PerformanceRecord struct {
	TotalShipments  int     `json:"total_shipments"`
	Successful      int     `json:"successful"`
	Failed          int     `json:"failed"`
	AvgDeliveryDays float64 `json:"avg_delivery_days"`
	AvgCost         float64 `json:"avg_cost"`
	IsDegraded      bool    `json:"is_degraded"`
}

// ZoneHistory maps carrier identifiers to their accumulated performance
// within a single zone.
type ZoneHistory map[string]PerformanceRecord

// Record absorbs one observed outcome: counters are bumped, the running
// averages are advanced, and the degraded flag is recomputed. The flag is
// recomputed from scratch each time, so a carrier whose success ratio
// recovers above the threshold is automatically un-flagged.
func (r *PerformanceRecord) Record(outcome Outcome) {
	r.TotalShipments++
	if outcome.Success {
		r.Successful++
	} else {
		r.Failed++
	}

	n := float64(r.TotalShipments)
	r.AvgDeliveryDays = (r.AvgDeliveryDays*(n-1) + outcome.DeliveryDays) / n
	r.AvgCost = (r.AvgCost*(n-1) + outcome.Cost) / n

	r.IsDegraded = r.TotalShipments > degradedMinShipments &&
		r.SuccessRatio() < degradedSuccessRatio
}

// SuccessRatio returns the fraction of shipments delivered successfully,
// or 0 for an empty record.
func (r PerformanceRecord) SuccessRatio() float64 {
	if r.TotalShipments == 0 {
		return 0
	}
	return float64(r.Successful) / float64(r.TotalShipments)
}

// ReliabilityScore returns the carrier's reliability on a 0-100 scale.
// Carriers with fewer shipments than the cold-start threshold get the
// neutral prior instead of their (statistically meaningless) observed ratio.
func (r PerformanceRecord) ReliabilityScore() float64 {
	if r.TotalShipments < coldStartShipments {
		return reliabilityPrior
	}
	return 100 * r.SuccessRatio()
}
