package models

// Coordinates is a WGS84 lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is the resolved form of a free-text place name.
type Location struct {
	Name             string       `json:"name"`
	NormalizedKey    string       `json:"normalized_key"`
	RegionCode       string       `json:"region_code,omitempty"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
	HasDirectAirport bool         `json:"has_direct_airport,omitempty"`
}

// HasCoordinates reports whether the gazetteer (or a geocoder) produced
// a usable position for this location.
func (l Location) HasCoordinates() bool {
	return l.Coordinates != nil
}
