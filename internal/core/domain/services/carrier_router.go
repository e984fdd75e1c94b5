package services

import (
	"errors"
	"math"
	"sort"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrNoEligibleCarrier is returned when no registered carrier can take the
// shipment. This occurs when no carrier serves the destination zone, the
// shipment exceeds every serving carrier's weight limit, or cash-on-delivery
// is requested and no serving carrier supports it.
var ErrNoEligibleCarrier = errors.New("no eligible carrier")

// Scoring weights and constants.
const (
	costWeight        = 0.4
	slaWeight         = 0.3
	reliabilityWeight = 0.3

	// costCeiling is the estimated cost at which the cost score bottoms out.
	costCeiling = 300.0

	// perKgSurcharge applies to every half kilogram above the base weight.
	baseWeightKg   = 0.5
	perKgSurcharge = 15.0

	// codFeeRate is the cash-on-delivery fee as a fraction of the COD amount.
	codFeeRate = 0.01

	// expressSLABonus rewards carriers that can deliver express shipments
	// within a day; expressPremiumBonus rewards the premium lineup.
	expressSLABonus     = 15.0
	expressPremiumBonus = 10.0

	// degradedPenalty pushes degraded carriers to the bottom of the ranking
	// without making them ineligible.
	degradedPenalty = 50.0

	// maxAlternatives caps the runner-up carriers reported alongside the
	// selection.
	maxAlternatives = 2
)

// RoutingRequest describes one shipment to route.
type RoutingRequest struct {
	// Pincode is the destination postal code.
	Pincode string

	// Zone is the destination zone.
	Zone kernel.Zone

	// WeightKg is the shipment weight in kilograms.
	WeightKg float64

	// COD marks cash-on-delivery shipments; CODAmount is the amount to
	// collect and feeds the COD handling fee.
	COD       bool
	CODAmount float64

	// Express requests expedited handling and activates the express bonuses.
	Express bool
}

// Validate checks the request fields before routing.
func (r RoutingRequest) Validate() error {
	if r.Pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	if err := r.Zone.Validate(); err != nil {
		return err
	}
	if r.WeightKg <= 0 {
		return errs.NewValueIsRequiredError("weight")
	}
	if r.COD && r.CODAmount <= 0 {
		return errs.NewValueIsRequiredError("cod amount")
	}
	return nil
}

// CarrierScore is one carrier's evaluation for a routing request. Score is
// clamped to the 0-100 range and rounded to one decimal for presentation;
// ranking happens on the unclamped value, so bonuses can still break ties
// above 100.
type CarrierScore struct {
	CarrierID     string
	CarrierName   string
	EstimatedCost float64
	SLADays       int
	Score         float64
	Degraded      bool
}

// RoutingResult is the routing decision: the selected carrier plus up to two
// runners-up, all scored, best first.
type RoutingResult struct {
	Selected     CarrierScore
	Alternatives []CarrierScore
}

// CarrierRouter is a domain service that selects the optimal shipping
// carrier for a shipment.
//
// Selection blends three weighted components:
//   - cost (40%): the estimated shipping cost against a fixed ceiling
//   - SLA (30%): the carrier's promised delivery days for the zone
//   - reliability (30%): observed success ratio, or a neutral prior when the
//     carrier's history in the zone is too thin to judge
//
// Express shipments add bonuses for same-day-capable and premium carriers.
// Carriers flagged degraded take a flat penalty so they only win when
// nothing healthier is eligible.
type CarrierRouter struct {
	registry *carrier.Registry
}

// NewCarrierRouter creates a router over the given carrier registry.
func NewCarrierRouter(registry *carrier.Registry) CarrierRouter {
	return CarrierRouter{registry: registry}
}

// SelectCarrier scores every eligible carrier for the request and returns
// the ranking. history holds the accumulated per-carrier performance for the
// request's zone; a nil or empty history scores every carrier on the neutral
// reliability prior.
//
// Returns ErrNoEligibleCarrier when no registered carrier serves the zone
// within its weight limit and COD capability.
func (r CarrierRouter) SelectCarrier(request RoutingRequest, history carrier.ZoneHistory) (RoutingResult, error) {
	if err := request.Validate(); err != nil {
		return RoutingResult{}, err
	}

	type rankedScore struct {
		score CarrierScore
		raw   float64
	}

	var ranked []rankedScore
	for _, profile := range r.registry.ByZone(request.Zone) {
		if request.WeightKg > profile.WeightLimitKg() {
			continue
		}
		if request.COD && !profile.CODEnabled() {
			continue
		}

		slaDays, _ := profile.SLADays(request.Zone)
		cost := r.estimateCost(profile, request)
		record := history[profile.ID()]
		raw := r.score(profile, request, cost, slaDays, record)

		ranked = append(ranked, rankedScore{
			score: CarrierScore{
				CarrierID:     profile.ID(),
				CarrierName:   profile.Name(),
				EstimatedCost: cost,
				SLADays:       slaDays,
				Score:         clampScore(raw),
				Degraded:      record.IsDegraded,
			},
			raw: raw,
		})
	}

	if len(ranked) == 0 {
		return RoutingResult{}, ErrNoEligibleCarrier
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].raw > ranked[j].raw
	})

	result := RoutingResult{Selected: ranked[0].score}
	for _, candidate := range ranked[1:] {
		if len(result.Alternatives) == maxAlternatives {
			break
		}
		result.Alternatives = append(result.Alternatives, candidate.score)
	}

	return result, nil
}

// estimateCost computes the carrier's estimated shipping cost: base rate,
// weight surcharge above the base half kilogram, the zone premium, and the
// COD handling fee.
func (r CarrierRouter) estimateCost(profile carrier.Profile, request RoutingRequest) float64 {
	cost := profile.BaseRate()
	cost += math.Max(0, request.WeightKg-baseWeightKg) * perKgSurcharge
	cost += request.Zone.Premium()
	if request.COD {
		cost += math.Ceil(request.CODAmount * codFeeRate)
	}
	return cost
}

// score computes the unclamped weighted score for one carrier.
func (r CarrierRouter) score(
	profile carrier.Profile,
	request RoutingRequest,
	cost float64,
	slaDays int,
	record carrier.PerformanceRecord,
) float64 {
	costScore := math.Max(0, 100-(cost/costCeiling)*100)
	slaScore := math.Max(0, 100-float64(slaDays-1)*20)
	reliability := record.ReliabilityScore()

	score := costWeight*costScore + slaWeight*slaScore + reliabilityWeight*reliability

	if request.Express {
		if slaDays <= 1 {
			score += expressSLABonus
		}
		if profile.Premium() {
			score += expressPremiumBonus
		}
	}

	if record.IsDegraded {
		score -= degradedPenalty
	}

	return score
}

// clampScore bounds a raw score to 0-100 and rounds to one decimal.
func clampScore(raw float64) float64 {
	clamped := math.Min(100, math.Max(0, raw))
	return math.Round(clamped*10) / 10
}
