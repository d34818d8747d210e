package services

import (
	"context"

	"lakbay/internal/domain/models"
	"lakbay/internal/refdata"
	"lakbay/internal/utils"
)

// LocationResolver turns free-text place names into gazetteer-backed
// locations. Resolution order: alias table, gazetteer, fuzzy match,
// optional remote geocoder. It never errors; a miss is a valid answer.
type LocationResolver struct {
	Store     *refdata.Store
	Geocoder  *GeocoderClient
	RequestID string
}

// Resolve normalizes and looks up a place name. The second return is
// false when nothing, not even the geocoder, could place it.
func (r LocationResolver) Resolve(ctx context.Context, raw string) (models.Location, bool) {
	normalized := refdata.Normalize(raw)
	if normalized == "" {
		return models.Location{Name: raw}, false
	}

	if loc, ok := r.Store.ResolveCity(normalized); ok {
		loc.Name = raw
		r.markDirectAirport(&loc)
		return loc, true
	}

	// Typos: closest gazetteer name within the documented threshold.
	if match := utils.FuzzyMatch(normalized, r.Store.CityNames()); match != "" {
		if loc, ok := r.Store.ResolveCity(match); ok {
			utils.LogEvent(r.RequestID, "location", "fuzzy_resolve", normalized+" -> "+match)
			loc.Name = raw
			r.markDirectAirport(&loc)
			return loc, true
		}
	}

	if r.Geocoder != nil && r.Geocoder.BaseURL != "" {
		coords, err := r.Geocoder.Geocode(ctx, raw)
		if err == nil {
			return models.Location{
				Name:          raw,
				NormalizedKey: normalized,
				Coordinates:   &coords,
			}, true
		}
		utils.LogWarn(r.RequestID, "location", "geocode_fallback", err.Error())
	}

	return models.Location{Name: raw, NormalizedKey: normalized}, false
}

func (r LocationResolver) markDirectAirport(loc *models.Location) {
	if a, ok := r.Store.AirportForCity(loc.NormalizedKey); ok && a.Serviceable() {
		loc.HasDirectAirport = true
	}
}
