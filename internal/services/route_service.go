package services

import (
	"lakbay/internal/domain/models"
	"lakbay/internal/refdata"
)

// RouteMatcher answers "is there a documented ground route between
// these two cities". Absence is an expected outcome, not a failure.
type RouteMatcher struct {
	Store *refdata.Store
}

// Find normalizes both names and looks the pair up in either order.
func (m RouteMatcher) Find(cityA, cityB string) (models.GroundRoute, bool) {
	a := refdata.Normalize(cityA)
	b := refdata.Normalize(cityB)
	if a == "" || b == "" {
		return models.GroundRoute{}, false
	}

	// Aliases ("cdo", "gensan") document routes under canonical names.
	if loc, ok := m.Store.ResolveCity(a); ok {
		a = loc.NormalizedKey
	}
	if loc, ok := m.Store.ResolveCity(b); ok {
		b = loc.NormalizedKey
	}

	return m.Store.RouteForPair(a, b)
}
