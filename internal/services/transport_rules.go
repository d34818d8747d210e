package services

import (
	"fmt"

	"lakbay/internal/domain/models"
	"lakbay/internal/geo"
)

// decisionContext carries everything the rule list needs, resolved
// once up front. Rules read it, never mutate it.
type decisionContext struct {
	origin      string
	destination string

	originLoc models.Location
	destLoc   models.Location
	originOK  bool
	destOK    bool

	originAirport models.AirportMatch
	destAirport   models.AirportMatch

	route         *models.GroundRoute
	convenience   models.ConvenienceTier
	convRationale string

	regional models.RegionalContext

	includeFlights bool
}

// decisionRule is one guard/result pair of the ordered decision list.
// The first rule whose guard fires produces the recommendation.
type decisionRule struct {
	name  string
	when  func(*decisionContext) bool
	build func(*decisionContext) models.TransportRecommendation
}

func (c *decisionContext) destUnserviceable() bool {
	return c.destAirport.LocalStatus == models.StatusLimited ||
		c.destAirport.LocalStatus == models.StatusInactive
}

func (c *decisionContext) bothHaveAirports() bool {
	return !c.originAirport.UsedDefault && !c.destAirport.UsedDefault &&
		c.originAirport.Airport.Serviceable() && c.destAirport.Airport.Serviceable()
}

// rules returns the decision list in evaluation order. Keeping each
// branch a named rule makes the former nested-conditional tree
// independently testable.
func (s TransportService) rules() []decisionRule {
	return []decisionRule{
		{
			// Limited or dead destination field with a documented ground
			// route: ride ground from wherever the traveler is, even if an
			// alternate hub exists. Flight data is attached only as a
			// secondary option.
			name: "destination-unserviceable-with-ground-route",
			when: func(c *decisionContext) bool {
				return c.destUnserviceable() && c.route != nil
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				rec := models.TransportRecommendation{
					Mode:          models.ModeGroundPreferred,
					PrimaryMode:   c.route.PrimaryMode(),
					SearchFlights: false,
					Ground: &models.GroundDetail{
						Route:       c.route,
						Mode:        c.route.PrimaryMode(),
						Convenience: c.convenience,
					},
					Rationale: fmt.Sprintf("%s has no reliable commercial flights; the documented %s route takes %.1fh",
						c.destLoc.NormalizedKey, c.route.PrimaryMode(), c.route.DurationHours),
				}
				rec.Warnings = append(rec.Warnings, c.destAirport.Warnings...)
				if c.bothHaveAirports() {
					rec.FlightAlternative = s.flightEstimate(c)
				}
				return rec
			},
		},
		{
			// Dead destination field, no documented ground route: fly to
			// the alternate hub and transfer.
			name: "destination-inactive-no-route",
			when: func(c *decisionContext) bool {
				return c.destAirport.NoCommercialService && c.route == nil
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				flight := s.flightEstimate(c)
				return models.TransportRecommendation{
					Mode:              models.ModeFlightWithGround,
					SearchFlights:     c.includeFlights,
					FlightAlternative: flight,
					Ground: &models.GroundDetail{
						Mode:                models.ModeBus,
						TransferFromAirport: c.destAirport.Airport.Code,
						TransferTimeHours:   c.destAirport.TravelTimeHours,
					},
					Warnings: append([]string{}, c.destAirport.Warnings...),
					Rationale: fmt.Sprintf("no commercial service at %s; fly into %s and continue by ground (~%.1fh transfer)",
						c.destLoc.NormalizedKey, c.destAirport.Airport.Code, c.destAirport.TravelTimeHours),
				}
			},
		},
		{
			// Curated ground-first corridor: the override beats a faster
			// point-to-point flight.
			name: "curated-ground-override",
			when: func(c *decisionContext) bool {
				return c.route != nil && c.route.Flags.PreferenceOverride
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				rec := models.TransportRecommendation{
					Mode:          models.ModeGroundPreferred,
					PrimaryMode:   c.route.PrimaryMode(),
					SearchFlights: false,
					Ground: &models.GroundDetail{
						Route:       c.route,
						Mode:        c.route.PrimaryMode(),
						Convenience: c.convenience,
					},
					Rationale: c.convRationale,
				}
				if c.bothHaveAirports() {
					rec.FlightAlternative = s.flightEstimate(c)
				}
				return rec
			},
		},
		{
			name: "route-impractical",
			when: func(c *decisionContext) bool {
				return c.route != nil && c.convenience == models.Impractical
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				return models.TransportRecommendation{
					Mode:              models.ModeFlightRequired,
					SearchFlights:     true,
					FlightAlternative: s.flightEstimate(c),
					Ground: &models.GroundDetail{
						Route:       c.route,
						Mode:        c.route.PrimaryMode(),
						Convenience: c.convenience,
					},
					Rationale: c.convRationale,
				}
			},
		},
		{
			// Comfortable ground route: suppress the automatic flight
			// search, but keep a flight alternative visible when one is
			// directly available.
			name: "route-convenient",
			when: func(c *decisionContext) bool {
				return c.route != nil &&
					(c.convenience == models.VeryConvenient || c.convenience == models.Convenient)
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				rec := models.TransportRecommendation{
					Mode:          models.ModeGroundPreferred,
					PrimaryMode:   c.route.PrimaryMode(),
					SearchFlights: false,
					Ground: &models.GroundDetail{
						Route:       c.route,
						Mode:        c.route.PrimaryMode(),
						Convenience: c.convenience,
					},
					Rationale: c.convRationale,
				}
				if c.originAirport.HasDirectAirport && c.destAirport.HasDirectAirport {
					rec.FlightAlternative = s.flightEstimate(c)
				}
				return rec
			},
		},
		{
			// Acceptable: ground is the recommendation, flights stay on
			// the table when the caller asked for them.
			name: "route-acceptable",
			when: func(c *decisionContext) bool {
				return c.route != nil
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				rec := models.TransportRecommendation{
					Mode:          models.ModeGround,
					PrimaryMode:   c.route.PrimaryMode(),
					SearchFlights: c.includeFlights,
					Ground: &models.GroundDetail{
						Route:       c.route,
						Mode:        c.route.PrimaryMode(),
						Convenience: c.convenience,
					},
					Warnings:  []string{fmt.Sprintf("ground trip runs %.1fh; compare a flight if your schedule is tight", c.route.DurationHours)},
					Rationale: c.convRationale,
				}
				if c.includeFlights && c.bothHaveAirports() {
					rec.FlightAlternative = s.flightEstimate(c)
				}
				return rec
			},
		},
		{
			name: "island-boundary-crossing",
			when: func(c *decisionContext) bool {
				return c.regional.CrossesIslandBoundary
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				return models.TransportRecommendation{
					Mode:              models.ModeFlightRequired,
					SearchFlights:     true,
					FlightAlternative: s.flightEstimate(c),
					Rationale: fmt.Sprintf("no documented ground route across the %s boundary; flying is the practical option",
						c.regional.BoundaryType),
				}
			},
		},
		{
			// Same corridor but nothing documented: flight when both
			// cities have their own airports, otherwise a bus suggestion
			// with a caveat.
			name: "same-region-no-route",
			when: func(c *decisionContext) bool {
				return c.regional.SameRegion
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				if c.originAirport.HasDirectAirport && c.destAirport.HasDirectAirport {
					return models.TransportRecommendation{
						Mode:              models.ModeFlightPreferred,
						SearchFlights:     true,
						FlightAlternative: s.flightEstimate(c),
						Rationale:         "no documented ground route; both cities have airports",
					}
				}
				rec := models.TransportRecommendation{
					Mode:        models.ModeGround,
					PrimaryMode: models.ModeBus,
					Ground:      &models.GroundDetail{Mode: models.ModeBus},
					Warnings:    []string{"no documented route for this pair; verify schedules locally"},
					Rationale:   fmt.Sprintf("both cities sit in the %s corridor; local bus services usually connect them", c.regional.CorridorName),
				}
				if c.regional.IsAvoidedRoute {
					rec.Warnings = append(rec.Warnings, "this specific pair is flagged as a route to avoid; consider routing through the corridor hub")
				}
				return rec
			},
		},
		{
			name: "default-flight",
			when: func(c *decisionContext) bool {
				return c.bothHaveAirports()
			},
			build: func(c *decisionContext) models.TransportRecommendation {
				return models.TransportRecommendation{
					Mode:              models.ModeFlightPreferred,
					SearchFlights:     true,
					FlightAlternative: s.flightEstimate(c),
					Rationale:         "no documented ground option between these cities; flights connect their airports",
				}
			},
		},
		{
			// Terminal rule: always applies.
			name: "insufficient-data",
			when: func(c *decisionContext) bool { return true },
			build: func(c *decisionContext) models.TransportRecommendation {
				return models.TransportRecommendation{
					Mode: models.ModeInsufficientData,
					Warnings: []string{fmt.Sprintf("not enough reference data to recommend transport between %q and %q",
						c.origin, c.destination)},
					Rationale: "insufficient data",
				}
			},
		},
	}
}

// flightEstimate builds the flight block from the two airport matches
// using the cruise-speed-plus-overhead model.
func (s TransportService) flightEstimate(c *decisionContext) *models.FlightDetail {
	from := c.originAirport.Airport
	to := c.destAirport.Airport
	dist := geo.HaversineKm(from.Coordinates, to.Coordinates)
	return &models.FlightDetail{
		FromAirport:        from.Code,
		ToAirport:          to.Code,
		EstimatedKm:        dist,
		EstimatedHours:     geo.FlightTimeHours(dist, s.Tunables.Flight.CruiseSpeedKmh, s.Tunables.Flight.OverheadHours),
		DirectServiceKnown: c.originAirport.HasDirectAirport && c.destAirport.HasDirectAirport,
	}
}
