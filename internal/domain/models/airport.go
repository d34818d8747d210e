package models

// ServiceStatus describes the commercial usability of an airport.
type ServiceStatus string

const (
	StatusActive   ServiceStatus = "active"
	StatusLimited  ServiceStatus = "limited"
	StatusInactive ServiceStatus = "inactive"
	StatusMilitary ServiceStatus = "military"
	StatusPrivate  ServiceStatus = "private"
)

// AirportClass separates domestic-only fields from international gateways.
type AirportClass string

const (
	ClassDomestic      AirportClass = "domestic"
	ClassInternational AirportClass = "international"
)

// Airport is one entry of the immutable airport registry.
type Airport struct {
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	City         string        `json:"city"`
	Coordinates  Coordinates   `json:"coordinates"`
	Status       ServiceStatus `json:"status"`
	Class        AirportClass  `json:"class"`
	Alternatives []string      `json:"alternatives,omitempty"` // non-empty iff Status == inactive
	Aliases      []string      `json:"aliases,omitempty"`
}

// Serviceable reports whether the airport can appear in a final
// recommendation. Inactive, military and private fields never can.
func (a Airport) Serviceable() bool {
	return a.Status == StatusActive || a.Status == StatusLimited
}

// AirportMatch is the locator's answer for one endpoint.
type AirportMatch struct {
	Airport          Airport        `json:"airport"`
	DistanceKm       float64        `json:"distance_km"`
	TravelTimeHours  float64        `json:"travel_time_hours"`
	HasDirectAirport bool           `json:"has_direct_airport"`
	Alternatives     []AirportMatch `json:"alternatives,omitempty"`
	Warnings         []string       `json:"warnings,omitempty"`
	// LocalStatus is the service status of the city's own airport when
	// it has one, even if the returned Airport is an alternate. Lets
	// callers see "this city's field is inactive/limited" without a
	// second registry lookup.
	LocalStatus ServiceStatus `json:"local_status,omitempty"`
	// NoCommercialService is set when the city's own airport exists but
	// cannot take commercial flights, so Airport is an alternate hub.
	NoCommercialService bool `json:"no_commercial_service,omitempty"`
	// UsedDefault is set when the city could not be resolved at all and
	// the capital-region airport was substituted.
	UsedDefault bool `json:"used_default,omitempty"`
}
