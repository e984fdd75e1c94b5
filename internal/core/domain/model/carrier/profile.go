package carrier

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through the NewProfile factory method.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile describes a shipping carrier's capabilities and rates: the zones
// it serves, its per-zone SLA in days, its weight limit, whether it supports
// cash-on-delivery, and its base rate.
//
// Profiles are static configuration: they are loaded into the Registry at
// startup and never mutated at runtime.
type Profile struct {
	// id is the stable carrier identifier ("delhivery", "bluedart", ...)
	id string

	// name is the display name
	name string

	// weightLimitKg is the maximum shipment weight the carrier accepts
	weightLimitKg float64

	// codEnabled reports cash-on-delivery support
	codEnabled bool

	// baseRate is the base shipping rate before surcharges
	baseRate float64

	// slaDays maps each served zone to the promised delivery days
	slaDays map[kernel.Zone]int

	// premium marks carriers trusted for express shipments
	premium bool

	// isConstructed ensures the profile was created via NewProfile
	isConstructed bool
}

// NewProfile creates a validated carrier profile. The served-zone set is
// derived from the slaDays keys: a carrier serves exactly the zones it has
// an SLA for.
//
// Returns an error when the identifier or name is empty, the weight limit or
// base rate is not positive, no zone is configured, or any configured zone
// or SLA is invalid.
func NewProfile(
	id string,
	name string,
	weightLimitKg float64,
	codEnabled bool,
	baseRate float64,
	slaDays map[kernel.Zone]int,
	premium bool,
) (Profile, error) {
	if id == "" {
		return Profile{}, errs.NewValueIsRequiredError("carrier id")
	}
	if name == "" {
		return Profile{}, errs.NewValueIsRequiredError("carrier name")
	}
	if weightLimitKg <= 0 {
		return Profile{}, errs.NewValueIsInvalidErrorWithCause(
			"weight limit is invalid", fmt.Errorf("%v is not greater than 0", weightLimitKg),
		)
	}
	if baseRate <= 0 {
		return Profile{}, errs.NewValueIsInvalidErrorWithCause(
			"base rate is invalid", fmt.Errorf("%v is not greater than 0", baseRate),
		)
	}
	if len(slaDays) == 0 {
		return Profile{}, errs.NewValueIsRequiredError("sla days")
	}

	sla := make(map[kernel.Zone]int, len(slaDays))
	for zone, days := range slaDays {
		if err := zone.Validate(); err != nil {
			return Profile{}, err
		}
		if days <= 0 {
			return Profile{}, errs.NewValueIsInvalidErrorWithCause(
				"sla days is invalid", fmt.Errorf("%d is not greater than 0", days),
			)
		}
		sla[zone] = days
	}

	return Profile{
		id:            id,
		name:          name,
		weightLimitKg: weightLimitKg,
		codEnabled:    codEnabled,
		baseRate:      baseRate,
		slaDays:       sla,
		premium:       premium,
		isConstructed: true,
	}, nil
}

// Validate ensures the Profile was created through NewProfile.
func (p Profile) Validate() error {
	if !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// ID returns the stable carrier identifier.
func (p Profile) ID() string {
	return p.id
}

// Name returns the display name.
func (p Profile) Name() string {
	return p.name
}

// WeightLimitKg returns the maximum accepted shipment weight.
func (p Profile) WeightLimitKg() float64 {
	return p.weightLimitKg
}

// CODEnabled reports whether the carrier supports cash-on-delivery.
func (p Profile) CODEnabled() bool {
	return p.codEnabled
}

// BaseRate returns the base shipping rate before surcharges.
func (p Profile) BaseRate() float64 {
	return p.baseRate
}

// Premium reports whether the carrier is trusted for express shipments.
func (p Profile) Premium() bool {
	return p.premium
}

// ServesZone reports whether the carrier delivers to the given zone.
func (p Profile) ServesZone(zone kernel.Zone) bool {
	_, ok := p.slaDays[zone]
	return ok
}

// SLADays returns the promised delivery days for the zone, and whether the
// carrier serves it at all.
func (p Profile) SLADays(zone kernel.Zone) (int, bool) {
	days, ok := p.slaDays[zone]
	return days, ok
}

// Zones returns the zones the carrier serves, in tier order.
func (p Profile) Zones() []kernel.Zone {
	zones := make([]kernel.Zone, 0, len(p.slaDays))
	for _, zone := range kernel.AllZones() {
		if p.ServesZone(zone) {
			zones = append(zones, zone)
		}
	}
	return zones
}
