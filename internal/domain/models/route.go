package models

// TransportKind enumerates ground transport modes on a documented route.
type TransportKind string

const (
	ModeBus   TransportKind = "bus"
	ModeVan   TransportKind = "van"
	ModeFerry TransportKind = "ferry"
)

// FareRange is the documented per-seat fare band in pesos.
type FareRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Average returns the midpoint fare of the documented band.
func (f FareRange) Average() int64 {
	return (f.Min + f.Max) / 2
}

// RouteFlags carry qualitative markers on a documented ground route.
type RouteFlags struct {
	Scenic bool `json:"scenic,omitempty"`
	// HasFerry means at least one leg is a sea crossing.
	HasFerry bool `json:"has_ferry,omitempty"`
	// HasOvernightOption means a sleeper/overnight departure exists.
	HasOvernightOption bool `json:"has_overnight_option,omitempty"`
	// PreferenceOverride documents a curated "take the ground route
	// anyway" decision, e.g. an overnight corridor that beats a
	// multi-leg daytime flight.
	PreferenceOverride bool `json:"preference_override,omitempty"`
}

// GroundRoute is one documented intercity travel option. The pair key is
// unordered: a route between A and B answers lookups in both directions.
type GroundRoute struct {
	CityA         string          `json:"city_a"`
	CityB         string          `json:"city_b"`
	DistanceKm    float64         `json:"distance_km"`
	DurationHours float64         `json:"duration_hours"`
	Modes         []TransportKind `json:"modes"`
	Fare          FareRange       `json:"fare"`
	Frequency     string          `json:"frequency,omitempty"`
	Flags         RouteFlags      `json:"flags,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// PrimaryMode returns the first documented mode, the one a traveler
// would usually book.
func (r GroundRoute) PrimaryMode() TransportKind {
	if len(r.Modes) == 0 {
		return ModeBus
	}
	return r.Modes[0]
}
