package services

import (
	"lakbay/internal/domain/models"
	"lakbay/internal/refdata"
	"lakbay/internal/utils"
)

// RegionalClassifier determines corridor membership and island-group
// boundary crossings for a city pair.
type RegionalClassifier struct {
	Store *refdata.Store
}

// Classify reports whether the two cities share a corridor, whether
// the specific pair is curated as recommended or avoided, and which
// island boundary (if any) separates them.
func (c RegionalClassifier) Classify(cityA, cityB string) models.RegionalContext {
	a := c.canonical(cityA)
	b := c.canonical(cityB)

	corridorA, okA := c.Store.CorridorForCity(a)
	corridorB, okB := c.Store.CorridorForCity(b)

	ctx := models.RegionalContext{}
	if !okA || !okB {
		return ctx
	}

	if corridorA.Name == corridorB.Name {
		ctx.SameRegion = true
		ctx.CorridorName = corridorA.Name
		pair := utils.PairKey(a, b)
		for _, rec := range corridorA.RecommendedRoutes {
			if rec == pair {
				ctx.IsRecommendedRoute = true
				break
			}
		}
		for _, avoid := range corridorA.AvoidedRoutes {
			if avoid == pair {
				ctx.IsAvoidedRoute = true
				break
			}
		}
		return ctx
	}

	groupA, _ := c.Store.IslandGroupOf(corridorA.Name)
	groupB, _ := c.Store.IslandGroupOf(corridorB.Name)
	if groupA != "" && groupB != "" && groupA != groupB {
		ctx.CrossesIslandBoundary = true
		// boundary names read "smaller|larger" alphabetically, same as
		// pair keys, e.g. "luzon-visayas".
		if groupA > groupB {
			groupA, groupB = groupB, groupA
		}
		ctx.BoundaryType = groupA + "-" + groupB
	}
	return ctx
}

func (c RegionalClassifier) canonical(city string) string {
	n := refdata.Normalize(city)
	if loc, ok := c.Store.ResolveCity(n); ok {
		return loc.NormalizedKey
	}
	return n
}
