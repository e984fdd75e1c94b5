package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Zone is a value object representing the coarse geographic tier of a
// delivery destination. Carrier rates, SLAs, and performance statistics are
// all bucketed per zone.
//
// Zone is a value object that validates membership in the known tier set
// and provides string representations for persistence and display.
type Zone int

const (
	// ZoneUnknown represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	// ZoneMetro covers the major metropolitan cities.
	ZoneMetro

	// ZoneTier1 covers large non-metro cities.
	ZoneTier1

	// ZoneTier2 covers mid-sized cities.
	ZoneTier2

	// ZoneTier3 covers small towns and rural destinations.
	ZoneTier3
)

// getZoneStrings returns a map of Zone values to their string
// representations. All zones are included for string conversion.
func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown: "unknown",
		ZoneMetro:   "metro",
		ZoneTier1:   "tier1",
		ZoneTier2:   "tier2",
		ZoneTier3:   "tier3",
	}
}

// getValidZoneStrings returns a map of only valid Zone values.
func getValidZoneStrings() map[Zone]string {
	//nolint:exhaustive // ZoneUnknown is intentionally excluded as it's invalid
	return map[Zone]string{
		ZoneMetro: "metro",
		ZoneTier1: "tier1",
		ZoneTier2: "tier2",
		ZoneTier3: "tier3",
	}
}

// AllZones returns the valid zones in tier order. Used to iterate carrier
// performance buckets and to drive the health sweep.
func AllZones() []Zone {
	return []Zone{ZoneMetro, ZoneTier1, ZoneTier2, ZoneTier3}
}

// ZoneFromString parses a zone label ("metro", "tier1", ...) into a Zone.
// Returns an error for unrecognized labels.
func ZoneFromString(s string) (Zone, error) {
	for zone, str := range getValidZoneStrings() {
		if str == s {
			return zone, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause(
		"zone is invalid", fmt.Errorf("%q is not a known zone", s),
	)
}

// Validate checks if the Zone value is valid.
//
// Returns:
//   - nil if the zone is one of metro, tier1, tier2, tier3
//   - error with details if the zone is invalid
func (z Zone) Validate() error {
	if _, ok := getValidZoneStrings()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"zone is invalid", fmt.Errorf("%d is not a valid zone", z),
		)
	}
	return nil
}

// String returns the lowercase zone label, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "unknown"
}

// Premium returns the flat shipping surcharge applied to destinations in
// this zone: metro 0, tier1 10, tier2 20, tier3 30. Unknown zones carry no
// premium.
func (z Zone) Premium() float64 {
	switch z {
	case ZoneTier1:
		return 10
	case ZoneTier2:
		return 20
	case ZoneTier3:
		return 30
	default:
		return 0
	}
}
