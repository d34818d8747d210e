package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"lakbay/internal/cache"
	"lakbay/internal/config"
	"lakbay/internal/domain"
	"lakbay/internal/domain/models"
	"lakbay/internal/metrics"
	"lakbay/internal/refdata"
	"lakbay/internal/utils"
)

// budget tier canonical ids and the alias keys callers may use.
var tierAliases = map[string]string{
	"economy":  "budget",
	"moderate": "midRange",
	"luxury":   "premium",
}

// BudgetParams is the input of one estimation request.
type BudgetParams struct {
	Destination    string `json:"destination"`
	Departure      string `json:"departure"`
	DurationDays   int    `json:"duration_days"`
	Travelers      int    `json:"travelers"`
	IncludeFlights bool   `json:"include_flights"`
	// StartDate (YYYY-MM-DD, optional) drives the booking-horizon fare
	// multiplier; empty means a far-out booking at the 1.0 floor.
	StartDate string `json:"start_date,omitempty"`
	// TransportHint lets callers reuse an already-computed
	// recommendation instead of re-running the decision engine.
	TransportHint *models.TransportRecommendation `json:"-"`
}

// BudgetService prices a trip in three tiers from the regional cost
// tables and the decision engine's transport preference.
type BudgetService struct {
	Store     *refdata.Store
	Transport TransportService
	Pricing   PricingAdjuster
	Cache     cache.Store
	CacheTTL  time.Duration
	Tunables  config.Tunables
	RequestID string
	// Now is injectable for deterministic horizon tests.
	Now func() time.Time
}

// Estimate returns the three budget tiers keyed by canonical tier id
// plus documented alias keys. Missing destination or non-positive
// numbers return a ValidationError.
func (s BudgetService) Estimate(ctx context.Context, p BudgetParams) (map[string]models.BudgetTier, error) {
	p.Destination = utils.TrimOrEmpty(p.Destination)
	if p.Destination == "" {
		return nil, domain.ValidationError{Field: "destination", Msg: "required"}
	}
	if p.DurationDays <= 0 {
		return nil, domain.ValidationError{Field: "duration_days", Msg: "must be positive"}
	}
	if p.Travelers <= 0 {
		return nil, domain.ValidationError{Field: "travelers", Msg: "must be positive"}
	}

	if s.Cache == nil || p.TransportHint != nil {
		return s.estimate(ctx, p), nil
	}

	key := cache.Key("budget", map[string]string{
		"dest":     refdata.Normalize(p.Destination),
		"from":     refdata.Normalize(p.Departure),
		"days":     strconv.Itoa(p.DurationDays),
		"pax":      strconv.Itoa(p.Travelers),
		"flights":  strconv.FormatBool(p.IncludeFlights),
		"start":    p.StartDate,
	})
	tiers, hit, _ := cache.Memoize(s.Cache, key, s.CacheTTL, func() (map[string]models.BudgetTier, error) {
		return s.estimate(ctx, p), nil
	})
	if hit {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}
	return tiers, nil
}

func (s BudgetService) estimate(ctx context.Context, p BudgetParams) map[string]models.BudgetTier {
	cfg := s.Tunables.Budget
	destKey := s.canonicalCity(p.Destination)

	region, ok := s.Store.RegionForKeyword(p.Destination)
	if !ok {
		// Fall back to the gazetteer's region before giving up on a
		// curated index.
		if loc, resolved := s.Store.ResolveCity(destKey); resolved {
			region = loc.RegionCode
		}
	}

	costIndex := clamp(s.Store.CostIndex(region), cfg.CostIndexMin, cfg.CostIndexMax)
	destMult := clamp(s.Store.DestinationMultiplier(destKey), cfg.DestMultiplierMin, cfg.DestMultiplierMax)
	scale := costIndex / 100 * destMult

	transportCost, transportWarnings := s.transportCost(ctx, p)

	out := make(map[string]models.BudgetTier, len(tierAliases)*2)
	for _, tierID := range []string{"economy", "moderate", "luxury"} {
		base, _ := s.Store.TierBaseline(tierID)
		tier := s.buildTier(tierID, base, scale, transportCost, p)
		tier.Warnings = append(tier.Warnings, transportWarnings...)
		out[tierID] = tier
		out[tierAliases[tierID]] = tier
	}
	return out
}

func (s BudgetService) buildTier(tierID string, base refdata.TierBaseline, scale float64, transportCost int64, p BudgetParams) models.BudgetTier {
	cfg := s.Tunables.Budget
	people := int64(p.Travelers)
	days := int64(p.DurationDays)

	raw := func(amount int64) int64 {
		return int64(math.Round(float64(amount)*scale)) * days * people
	}

	rawAcc := raw(base.Accommodation)
	rawFood := raw(base.Food)
	rawAct := raw(base.Activities)
	rawLocal := raw(base.LocalTransport)
	rawMisc := raw(base.Miscellaneous)

	breakdown := models.BudgetBreakdown{
		Accommodation:   utils.RoundTo(rawAcc, cfg.RoundTo),
		Food:            utils.RoundTo(rawFood, cfg.RoundTo),
		Activities:      utils.RoundTo(rawAct, cfg.RoundTo),
		LocalTransport:  utils.RoundTo(rawLocal, cfg.RoundTo),
		Miscellaneous:   utils.RoundTo(rawMisc, cfg.RoundTo),
		FlightsOrGround: utils.RoundTo(transportCost, cfg.RoundTo),
	}

	total := utils.RoundTo(rawAcc+rawFood+rawAct+rawLocal+rawMisc+transportCost, cfg.RoundTo)
	tier := models.BudgetTier{
		Tier:      tierID,
		Total:     total,
		PerPerson: total / people,
		PerDay:    total / days,
		Breakdown: breakdown,
	}

	if diff := total - breakdown.Sum(); diff > cfg.ToleranceAbs || diff < -cfg.ToleranceAbs {
		// Best effort: report, never block.
		metrics.BudgetToleranceBreaches.Inc()
		utils.LogWarn(s.RequestID, "budget", "tolerance",
			fmt.Sprintf("tier=%s total=%s breakdown=%s",
				tierID, utils.FormatPeso(total), utils.FormatPeso(breakdown.Sum())))
		tier.Warnings = append(tier.Warnings, "budget breakdown does not reconcile exactly; totals are best effort")
	}
	return tier
}

// transportCost returns the intercity component: a flight estimate
// scaled by the booking horizon, or the documented ground fare plus
// contingency when ground is the preferred mode.
func (s BudgetService) transportCost(ctx context.Context, p BudgetParams) (int64, []string) {
	if p.Departure == "" {
		return 0, nil
	}

	rec := p.TransportHint
	if rec == nil {
		r := s.Transport.Recommend(ctx, p.Departure, p.Destination, p.IncludeFlights)
		rec = &r
	}

	groundPreferred := rec.Mode == models.ModeGroundPreferred || rec.Mode == models.ModeGround
	people := int64(p.Travelers)

	if groundPreferred {
		if rec.Ground != nil && rec.Ground.Route != nil {
			// Round trip of the documented fare midpoint plus contingency.
			avg := float64(rec.Ground.Route.Fare.Average())
			cost := int64(math.Round(avg*(1+s.Tunables.Budget.GroundContingencyPct))) * 2 * people
			return cost, nil
		}
		// Ground is the suggestion but no fare is documented; a flight
		// baseline would misprice the trip.
		return 0, []string{"no documented fare for the suggested ground leg; verify prices locally"}
	}

	if !p.IncludeFlights {
		return 0, []string{"intercity transport excluded; no documented ground fare and flights were not requested"}
	}

	baseline := s.Store.FlightBaseline(s.islandGroup(p.Departure), s.islandGroup(p.Destination))
	mult := s.Pricing.Multiplier(s.daysUntilStart(p.StartDate))
	cost := int64(math.Round(float64(baseline)*mult)) * people

	var warnings []string
	if mult >= s.Tunables.Flight.PricingCap {
		warnings = append(warnings, "departure is close; flight fares are estimated at their peak multiplier")
	}
	return cost, warnings
}

func (s BudgetService) daysUntilStart(start string) int {
	if start == "" {
		// No date given: price as a far-out booking.
		return 365
	}
	t, err := utils.ParseDate(start)
	if err != nil {
		utils.LogWarn(s.RequestID, "budget", "start_date", "unparseable start date "+start)
		return 365
	}
	now := utils.NowUTC
	if s.Now != nil {
		now = s.Now
	}
	return utils.DaysUntil(t, now())
}

func (s BudgetService) islandGroup(city string) string {
	key := s.canonicalCity(city)
	corridor, ok := s.Store.CorridorForCity(key)
	if !ok {
		return ""
	}
	group, _ := s.Store.IslandGroupOf(corridor.Name)
	return group
}

func (s BudgetService) canonicalCity(city string) string {
	n := refdata.Normalize(city)
	if loc, ok := s.Store.ResolveCity(n); ok {
		return loc.NormalizedKey
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
