// Package refdata loads the immutable reference tables the decision
// engine runs on: airports, the city gazetteer, documented ground
// routes, regional corridors and cost indices. Everything is built once
// at startup and read-only afterwards.
package refdata

import (
	"fmt"
	"strings"

	"lakbay/internal/domain/models"
	"lakbay/internal/utils"
)

// Normalize reduces a free-text place name to its gazetteer key: first
// comma segment, lowercased, whitespace collapsed, administrative
// suffixes stripped. Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	s := utils.FirstSegment(name)
	s = strings.ToLower(utils.NormalizeSpace(s))
	s = strings.TrimPrefix(s, "city of ")
	for changed := true; changed; {
		changed = false
		for _, suf := range adminSuffixes {
			if strings.HasSuffix(s, suf) {
				s = strings.TrimSpace(strings.TrimSuffix(s, suf))
				changed = true
			}
		}
	}
	return s
}

// Store is the read-only view over all reference tables.
type Store struct {
	airportsByCode map[string]models.Airport
	airportsByCity map[string]models.Airport
	airportList    []models.Airport

	gazetteerByName map[string]gazetteerEntry
	aliasByName     map[string]string
	cityNames       []string

	routesByPair   map[string]models.GroundRoute
	routeList      []models.GroundRoute
	corridorByCity map[string]models.RegionalCorridor
	corridorByName map[string]models.RegionalCorridor
	groupByCorridor map[string]string
}

// NewStore builds the keyed lookups from the embedded tables and
// verifies the data invariants. A broken table is a build artifact
// problem, so it fails loudly at boot.
func NewStore() (*Store, error) {
	s := &Store{
		airportsByCode:  make(map[string]models.Airport, len(airports)),
		airportsByCity:  make(map[string]models.Airport, len(airports)*2),
		airportList:     make([]models.Airport, 0, len(airports)),
		gazetteerByName: make(map[string]gazetteerEntry, len(gazetteer)),
		aliasByName:     make(map[string]string, len(cityAliases)),
		routesByPair:    make(map[string]models.GroundRoute, len(groundRoutes)),
		routeList:       make([]models.GroundRoute, 0, len(groundRoutes)),
		corridorByCity:  make(map[string]models.RegionalCorridor),
		corridorByName:  make(map[string]models.RegionalCorridor, len(corridors)),
		groupByCorridor: make(map[string]string),
	}

	for _, a := range airports {
		if a.Status == models.StatusInactive && len(a.Alternatives) == 0 {
			return nil, fmt.Errorf("airport %s is inactive but lists no alternatives", a.Code)
		}
		if _, dup := s.airportsByCode[a.Code]; dup {
			return nil, fmt.Errorf("duplicate airport code %s", a.Code)
		}
		s.airportsByCode[a.Code] = a
		s.airportList = append(s.airportList, a)
		s.airportsByCity[Normalize(a.City)] = a
		for _, alias := range a.Aliases {
			key := Normalize(alias)
			if _, taken := s.airportsByCity[key]; !taken {
				s.airportsByCity[key] = a
			}
		}
	}
	for _, a := range airports {
		for _, alt := range a.Alternatives {
			if _, ok := s.airportsByCode[alt]; !ok {
				return nil, fmt.Errorf("airport %s references unknown alternative %s", a.Code, alt)
			}
		}
	}

	for _, g := range gazetteer {
		key := Normalize(g.Name)
		if _, dup := s.gazetteerByName[key]; dup {
			return nil, fmt.Errorf("duplicate gazetteer entry %q", g.Name)
		}
		s.gazetteerByName[key] = g
		s.cityNames = append(s.cityNames, key)
	}
	for alias, canonical := range cityAliases {
		if _, ok := s.gazetteerByName[Normalize(canonical)]; !ok {
			return nil, fmt.Errorf("alias %q points at unknown city %q", alias, canonical)
		}
		s.aliasByName[Normalize(alias)] = Normalize(canonical)
	}

	for _, r := range groundRoutes {
		key := utils.PairKey(Normalize(r.CityA), Normalize(r.CityB))
		if _, dup := s.routesByPair[key]; dup {
			return nil, fmt.Errorf("duplicate ground route %s", key)
		}
		if len(r.Modes) == 0 {
			return nil, fmt.Errorf("ground route %s has no transport modes", key)
		}
		s.routesByPair[key] = r
		s.routeList = append(s.routeList, r)
	}

	for _, c := range corridors {
		s.corridorByName[c.Name] = c
		for _, city := range c.Cities {
			s.corridorByCity[Normalize(city)] = c
		}
	}
	for group, names := range islandGroups {
		for _, name := range names {
			if _, ok := s.corridorByName[name]; !ok {
				return nil, fmt.Errorf("island group %s references unknown corridor %s", group, name)
			}
			s.groupByCorridor[name] = group
		}
	}

	if _, ok := s.airportsByCode[defaultAirportCode]; !ok {
		return nil, fmt.Errorf("default airport %s missing from registry", defaultAirportCode)
	}

	return s, nil
}

// AirportByCode returns the registry entry for an IATA code.
func (s *Store) AirportByCode(code string) (models.Airport, bool) {
	a, ok := s.airportsByCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// AirportForCity matches a normalized city name against airport cities
// and aliases.
func (s *Store) AirportForCity(normalized string) (models.Airport, bool) {
	a, ok := s.airportsByCity[normalized]
	return a, ok
}

// Airports returns all registry entries in table order.
func (s *Store) Airports() []models.Airport {
	return s.airportList
}

// DefaultAirport is the capital-region fallback used when a location
// cannot be resolved at all.
func (s *Store) DefaultAirport() models.Airport {
	return s.airportsByCode[defaultAirportCode]
}

// ResolveCity looks a normalized name up via the alias table first,
// then the gazetteer.
func (s *Store) ResolveCity(normalized string) (models.Location, bool) {
	if canonical, ok := s.aliasByName[normalized]; ok {
		normalized = canonical
	}
	g, ok := s.gazetteerByName[normalized]
	if !ok {
		return models.Location{}, false
	}
	return models.Location{
		Name:          g.Name,
		NormalizedKey: normalized,
		RegionCode:    g.Region,
		Coordinates:   &models.Coordinates{Lat: g.Lat, Lng: g.Lng},
	}, true
}

// CityNames lists all gazetteer keys, for fuzzy matching.
func (s *Store) CityNames() []string {
	return s.cityNames
}

// RouteForPair returns the documented route between two normalized
// cities, direction independent.
func (s *Store) RouteForPair(a, b string) (models.GroundRoute, bool) {
	r, ok := s.routesByPair[utils.PairKey(a, b)]
	return r, ok
}

// Routes returns all documented routes in table order.
func (s *Store) Routes() []models.GroundRoute {
	return s.routeList
}

// CorridorForCity returns the corridor a normalized city belongs to.
func (s *Store) CorridorForCity(normalized string) (models.RegionalCorridor, bool) {
	c, ok := s.corridorByCity[normalized]
	return c, ok
}

// CorridorByName returns a corridor by its identifier.
func (s *Store) CorridorByName(name string) (models.RegionalCorridor, bool) {
	c, ok := s.corridorByName[name]
	return c, ok
}

// Corridors returns every corridor in table order.
func (s *Store) Corridors() []models.RegionalCorridor {
	out := make([]models.RegionalCorridor, 0, len(s.corridorByName))
	for _, c := range corridors {
		out = append(out, s.corridorByName[c.Name])
	}
	return out
}

// IslandGroupOf maps a corridor name to its island group ("luzon",
// "visayas", "mindanao", "palawan").
func (s *Store) IslandGroupOf(corridorName string) (string, bool) {
	g, ok := s.groupByCorridor[corridorName]
	return g, ok
}

// CostIndex returns a region's price level against the capital
// baseline of 100, with a documented default for unknown regions.
func (s *Store) CostIndex(region string) float64 {
	if v, ok := regionCostIndex[region]; ok {
		return v
	}
	return defaultCostIndex
}

// DestinationMultiplier returns the per-destination premium for a
// normalized city, 1.0 when none is curated.
func (s *Store) DestinationMultiplier(normalized string) float64 {
	if v, ok := destinationMultipliers[normalized]; ok {
		return v
	}
	return 1.0
}

// RegionForKeyword resolves free destination text to a region code.
// The longest matching keyword wins so specific names beat substrings.
func (s *Store) RegionForKeyword(text string) (string, bool) {
	text = strings.ToLower(utils.NormalizeSpace(text))
	best := ""
	bestLen := 0
	for _, kw := range regionKeywords {
		if len(kw.Keyword) > bestLen && strings.Contains(text, kw.Keyword) {
			best = kw.Region
			bestLen = len(kw.Keyword)
		}
	}
	return best, best != ""
}

// TierBaseline returns the per-person per-day category baselines for a
// canonical tier id.
func (s *Store) TierBaseline(tier string) (TierBaseline, bool) {
	b, ok := tierBaselines[tier]
	return b, ok
}

// FlightBaseline returns the round-trip per-person baseline fare for an
// island-group pair; same-group hops use the short-haul entry and
// undocumented pairs a conservative default.
func (s *Store) FlightBaseline(groupA, groupB string) int64 {
	if groupA != "" && groupA == groupB {
		return flightBaselines["domestic_short"]
	}
	if v, ok := flightBaselines[utils.PairKey(groupA, groupB)]; ok {
		return v
	}
	return defaultFlightBaseline
}
