package services

import (
	"context"
	"fmt"
	"sort"

	"lakbay/internal/config"
	"lakbay/internal/domain/models"
	"lakbay/internal/geo"
	"lakbay/internal/refdata"
	"lakbay/internal/utils"
)

// maxAlternatives bounds the ranked list returned next to the nearest
// airport.
const maxAlternatives = 3

// AirportLocator finds the nearest serviceable airport for a city.
type AirportLocator struct {
	Store     *refdata.Store
	Resolver  LocationResolver
	Tunables  config.Tunables
	RequestID string
}

// FindNearest resolves a city and returns its best airport. It always
// produces an answer: resolution failures degrade to the capital
// default with a warning, and inactive local fields are replaced by
// their documented alternates.
func (l AirportLocator) FindNearest(ctx context.Context, city string) models.AirportMatch {
	normalized := refdata.Normalize(city)

	// City's own airport, if it has one.
	if local, ok := l.Store.AirportForCity(normalized); ok {
		switch {
		case local.Status == models.StatusInactive:
			return l.inactiveFallback(normalized, local)
		case local.Serviceable():
			return models.AirportMatch{
				Airport:          local,
				DistanceKm:       0,
				HasDirectAirport: true,
				LocalStatus:      local.Status,
			}
		default:
			// military/private fields are invisible to travelers; rank
			// by distance as if the city had no airport.
		}
	}

	loc, ok := l.Resolver.Resolve(ctx, city)
	if !ok || !loc.HasCoordinates() {
		def := l.Store.DefaultAirport()
		utils.LogWarn(l.RequestID, "airport", "default_fallback", "cannot resolve "+city)
		return models.AirportMatch{
			Airport:     def,
			UsedDefault: true,
			Warnings: []string{
				fmt.Sprintf("could not resolve %q; defaulting to %s (%s)", city, def.Name, def.Code),
			},
		}
	}

	ranked := l.rankByDistance(*loc.Coordinates, loc.RegionCode)
	if len(ranked) == 0 {
		def := l.Store.DefaultAirport()
		return models.AirportMatch{
			Airport:     def,
			UsedDefault: true,
			Warnings:    []string{"airport registry empty; defaulting to " + def.Code},
		}
	}

	best := ranked[0]
	if len(ranked) > 1 {
		n := len(ranked) - 1
		if n > maxAlternatives {
			n = maxAlternatives
		}
		best.Alternatives = ranked[1 : 1+n]
	}
	return best
}

// inactiveFallback handles cities whose own field lost commercial
// service. Documented ground routes to the city mean travelers should
// ride ground from a hub rather than fly to an alternate; either way
// the inactive field itself is never the final answer.
func (l AirportLocator) inactiveFallback(normalized string, local models.Airport) models.AirportMatch {
	hasGroundAccess := false
	for _, r := range l.Store.Routes() {
		if refdata.Normalize(r.CityA) == normalized || refdata.Normalize(r.CityB) == normalized {
			hasGroundAccess = true
			break
		}
	}

	alternate, altDistance := l.nearestAlternative(local)
	match := models.AirportMatch{
		Airport:             alternate,
		DistanceKm:          altDistance,
		TravelTimeHours:     l.groundTravelTime(altDistance, normalized),
		LocalStatus:         models.StatusInactive,
		NoCommercialService: true,
	}
	if hasGroundAccess {
		match.Warnings = append(match.Warnings,
			fmt.Sprintf("%s (%s) has no commercial service; documented ground routes serve %s directly", local.Name, local.Code, local.City))
	} else {
		match.Warnings = append(match.Warnings,
			fmt.Sprintf("%s (%s) has no commercial service; nearest alternative is %s (%s)", local.Name, local.Code, alternate.Name, alternate.Code))
	}
	return match
}

// nearestAlternative picks the great-circle-closest active airport out
// of an inactive entry's documented alternatives.
func (l AirportLocator) nearestAlternative(local models.Airport) (models.Airport, float64) {
	var (
		best     models.Airport
		bestDist = -1.0
	)
	for _, code := range local.Alternatives {
		alt, ok := l.Store.AirportByCode(code)
		if !ok || !alt.Serviceable() {
			continue
		}
		d := geo.HaversineKm(local.Coordinates, alt.Coordinates)
		if bestDist < 0 || d < bestDist {
			best = alt
			bestDist = d
		}
	}
	if bestDist < 0 {
		// Registry invariant guarantees alternatives exist, but guard
		// against every alternative being unserviceable.
		return l.Store.DefaultAirport(), geo.HaversineKm(local.Coordinates, l.Store.DefaultAirport().Coordinates)
	}
	return best, bestDist
}

// rankByDistance computes Haversine distance from the coordinates to
// every serviceable airport, ascending.
func (l AirportLocator) rankByDistance(from models.Coordinates, regionCode string) []models.AirportMatch {
	matches := make([]models.AirportMatch, 0, len(l.Store.Airports()))
	for _, a := range l.Store.Airports() {
		if !a.Serviceable() {
			continue
		}
		d := geo.HaversineKm(from, a.Coordinates)
		matches = append(matches, models.AirportMatch{
			Airport:         a,
			DistanceKm:      d,
			TravelTimeHours: l.groundTravelTimeForRegion(d, regionCode),
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})
	return matches
}

func (l AirportLocator) groundTravelTime(distanceKm float64, normalizedCity string) float64 {
	corridor := ""
	if c, ok := l.Store.CorridorForCity(normalizedCity); ok {
		corridor = c.Name
	}
	return l.groundTravelTimeForRegion(distanceKm, corridor)
}

// groundTravelTimeForRegion estimates the bus transfer time from city
// to airport using the corridor's terrain class.
func (l AirportLocator) groundTravelTimeForRegion(distanceKm float64, corridorName string) float64 {
	terrain := geo.TerrainNormal
	if c, ok := l.Store.CorridorByName(corridorName); ok {
		terrain = terrainForCorridor(c)
	}

	speed := l.Tunables.Speeds["bus"]
	mult := l.Tunables.Terrain[string(terrain)]
	return geo.TravelTimeHours(distanceKm, speed, mult)
}

// terrainForCorridor maps corridor characteristics onto the terrain
// table used for speed adjustment.
func terrainForCorridor(c models.RegionalCorridor) geo.Terrain {
	if c.Characteristics.PrimaryMode == models.ModeFerry {
		return geo.TerrainIsland
	}
	switch c.Characteristics.InfrastructureQuality {
	case "good":
		return geo.TerrainHighway
	case "rough":
		return geo.TerrainMountainous
	default:
		return geo.TerrainNormal
	}
}
