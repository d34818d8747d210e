// Package geo holds the great-circle distance model and terrain-aware
// travel time estimation used by the airport locator and the decision
// engine.
package geo

import (
	"math"

	"lakbay/internal/domain/models"
)

const earthRadiusKm = 6371.0

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineKm returns the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(a, b models.Coordinates) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// clamp to account for floating point error
	h = math.Max(0, math.Min(1, h))

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Terrain classifies the ground between a city and its airport for
// travel-time estimation.
type Terrain string

const (
	TerrainNormal      Terrain = "normal"
	TerrainHighway     Terrain = "highway"
	TerrainUrban       Terrain = "urban"
	TerrainMountainous Terrain = "mountainous"
	TerrainIsland      Terrain = "island"
)

// TravelTimeHours estimates ground travel time for a distance given a
// base speed (km/h) and a terrain multiplier. Multipliers above 1 slow
// the trip down; highway corridors speed it up.
func TravelTimeHours(distanceKm, baseSpeedKmh, terrainMultiplier float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	if baseSpeedKmh <= 0 {
		baseSpeedKmh = 60
	}
	if terrainMultiplier <= 0 {
		terrainMultiplier = 1
	}
	return distanceKm / baseSpeedKmh * terrainMultiplier
}

// FlightTimeHours estimates point-to-point flight time from distance
// using a constant cruise speed plus fixed taxi/climb overhead.
func FlightTimeHours(distanceKm, cruiseSpeedKmh, overheadHours float64) float64 {
	if cruiseSpeedKmh <= 0 {
		cruiseSpeedKmh = 700
	}
	return distanceKm/cruiseSpeedKmh + overheadHours
}
