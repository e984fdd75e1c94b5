package carrier

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Registry holds the set of carriers the routing engine selects from.
// Lookups by identifier are constant time; enumeration preserves the order
// carriers were registered in so scoring output is deterministic.
type Registry struct {
	profiles map[string]Profile
	order    []string
}

// NewRegistry creates a registry from the given profiles. Every profile must
// be constructed and carrier identifiers must be unique.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	registry := &Registry{
		profiles: make(map[string]Profile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}

	for _, profile := range profiles {
		if err := profile.Validate(); err != nil {
			return nil, err
		}
		if _, exists := registry.profiles[profile.ID()]; exists {
			return nil, errs.NewValueIsInvalidError("carrier id is duplicated: " + profile.ID())
		}
		registry.profiles[profile.ID()] = profile
		registry.order = append(registry.order, profile.ID())
	}

	return registry, nil
}

// Get returns the profile for the given carrier identifier.
func (r *Registry) Get(id string) (Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return Profile{}, errs.NewObjectNotFoundError("carrier id", id)
	}
	return profile, nil
}

// All returns every registered profile in registration order.
func (r *Registry) All() []Profile {
	profiles := make([]Profile, 0, len(r.order))
	for _, id := range r.order {
		profiles = append(profiles, r.profiles[id])
	}
	return profiles
}

// ByZone returns the profiles serving the given zone, in registration order.
func (r *Registry) ByZone(zone kernel.Zone) []Profile {
	profiles := make([]Profile, 0, len(r.order))
	for _, id := range r.order {
		if r.profiles[id].ServesZone(zone) {
			profiles = append(profiles, r.profiles[id])
		}
	}
	return profiles
}

// DefaultRegistry returns the built-in carrier lineup.
func DefaultRegistry() *Registry {
	delhivery := mustProfile(NewProfile(
		"delhivery", "Delhivery", 30, true, 45,
		map[kernel.Zone]int{
			kernel.ZoneMetro: 1,
			kernel.ZoneTier1: 2,
			kernel.ZoneTier2: 3,
			kernel.ZoneTier3: 5,
		},
		false,
	))
	bluedart := mustProfile(NewProfile(
		"bluedart", "Blue Dart", 35, true, 65,
		map[kernel.Zone]int{
			kernel.ZoneMetro: 1,
			kernel.ZoneTier1: 2,
		},
		true,
	))
	xpressbees := mustProfile(NewProfile(
		"xpressbees", "XpressBees", 25, true, 50,
		map[kernel.Zone]int{
			kernel.ZoneMetro: 2,
			kernel.ZoneTier1: 2,
			kernel.ZoneTier2: 3,
			kernel.ZoneTier3: 5,
		},
		false,
	))
	fedex := mustProfile(NewProfile(
		"fedex", "FedEx", 50, false, 75,
		map[kernel.Zone]int{
			kernel.ZoneMetro: 1,
			kernel.ZoneTier1: 1,
		},
		false,
	))

	registry, err := NewRegistry(delhivery, bluedart, xpressbees, fedex)
	if err != nil {
		panic(err)
	}
	return registry
}

// mustProfile panics on a profile construction error. Only used for the
// built-in lineup, whose values are fixed.
func mustProfile(profile Profile, err error) Profile {
	if err != nil {
		panic(err)
	}
	return profile
}
