package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"lakbay/internal/config"
	"lakbay/internal/domain"
	"lakbay/internal/domain/models"
)

func newTestBudget(t *testing.T) BudgetService {
	t.Helper()
	store := newTestStore(t)
	return BudgetService{
		Store:     store,
		Transport: newTestTransport(store),
		Pricing:   PricingAdjuster{Flight: config.DefaultTunables().Flight},
		Tunables:  config.DefaultTunables(),
		RequestID: "test",
		Now: func() time.Time {
			return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		},
	}
}

func TestEstimateTiersAndAliases(t *testing.T) {
	b := newTestBudget(t)

	tiers, err := b.Estimate(context.Background(), BudgetParams{
		Destination:    "Cebu",
		Departure:      "Manila",
		DurationDays:   4,
		Travelers:      2,
		IncludeFlights: true,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	for canonical, alias := range map[string]string{
		"economy": "budget", "moderate": "midRange", "luxury": "premium",
	} {
		c, ok := tiers[canonical]
		if !ok {
			t.Fatalf("missing tier %s", canonical)
		}
		a, ok := tiers[alias]
		if !ok {
			t.Fatalf("missing alias key %s", alias)
		}
		if c.Total != a.Total {
			t.Fatalf("alias %s diverges from %s: %d vs %d", alias, canonical, a.Total, c.Total)
		}
	}

	if !(tiers["economy"].Total < tiers["moderate"].Total && tiers["moderate"].Total < tiers["luxury"].Total) {
		t.Fatalf("tiers out of order: %d / %d / %d",
			tiers["economy"].Total, tiers["moderate"].Total, tiers["luxury"].Total)
	}
}

func TestEstimateBreakdownReconciles(t *testing.T) {
	b := newTestBudget(t)
	roundTo := b.Tunables.Budget.RoundTo

	tiers, err := b.Estimate(context.Background(), BudgetParams{
		Destination:    "Boracay",
		Departure:      "Manila",
		DurationDays:   5,
		Travelers:      3,
		IncludeFlights: true,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	for id, tier := range tiers {
		diff := tier.Total - tier.Breakdown.Sum()
		if diff < 0 {
			diff = -diff
		}
		// Each of the six categories plus the total rounds independently
		// to the nearest granule.
		if diff > 4*roundTo {
			t.Fatalf("%s: total %d vs breakdown %d differ by %d", id, tier.Total, tier.Breakdown.Sum(), diff)
		}
		if tier.Breakdown.FlightsOrGround%roundTo != 0 {
			t.Fatalf("%s: transport %d not rounded to %d", id, tier.Breakdown.FlightsOrGround, roundTo)
		}
		if tier.PerPerson != tier.Total/3 {
			t.Fatalf("%s: per-person %d, want %d", id, tier.PerPerson, tier.Total/3)
		}
		if tier.PerDay != tier.Total/5 {
			t.Fatalf("%s: per-day %d, want %d", id, tier.PerDay, tier.Total/5)
		}
	}
}

func TestEstimateMonotonic(t *testing.T) {
	b := newTestBudget(t)
	base := BudgetParams{
		Destination:    "Cebu",
		Departure:      "Manila",
		DurationDays:   2,
		Travelers:      1,
		IncludeFlights: true,
	}

	short, err := b.Estimate(context.Background(), base)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	longer := base
	longer.DurationDays = 6
	long, err := b.Estimate(context.Background(), longer)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if long["moderate"].Total <= short["moderate"].Total {
		t.Fatalf("longer trip should cost more: %d vs %d",
			long["moderate"].Total, short["moderate"].Total)
	}

	crowd := base
	crowd.Travelers = 3
	group, err := b.Estimate(context.Background(), crowd)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if group["moderate"].Total <= short["moderate"].Total {
		t.Fatalf("more travelers should cost more: %d vs %d",
			group["moderate"].Total, short["moderate"].Total)
	}
}

func TestEstimateLastMinuteFlightCap(t *testing.T) {
	b := newTestBudget(t)

	// Three days out: the booking-horizon multiplier sits at its cap.
	tiers, err := b.Estimate(context.Background(), BudgetParams{
		Destination:    "Siargao",
		Departure:      "Manila",
		DurationDays:   4,
		Travelers:      2,
		IncludeFlights: true,
		StartDate:      "2026-03-04",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	// luzon-mindanao baseline at the 1.8 cap for two travelers.
	want := int64(7000*1.8) * 2
	got := tiers["economy"].Breakdown.FlightsOrGround
	if got != want {
		t.Fatalf("flight component = %d, want %d", got, want)
	}

	peakWarned := false
	for _, w := range tiers["economy"].Warnings {
		if strings.Contains(w, "peak") {
			peakWarned = true
		}
	}
	if !peakWarned {
		t.Fatalf("expected a peak-fare warning, got %v", tiers["economy"].Warnings)
	}

	// Far out the same trip prices at the 1.0 floor.
	relaxed, err := b.Estimate(context.Background(), BudgetParams{
		Destination:    "Siargao",
		Departure:      "Manila",
		DurationDays:   4,
		Travelers:      2,
		IncludeFlights: true,
		StartDate:      "2026-08-20",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if relaxed["economy"].Breakdown.FlightsOrGround != 7000*2 {
		t.Fatalf("far-out flight component = %d, want %d",
			relaxed["economy"].Breakdown.FlightsOrGround, 7000*2)
	}
}

func TestEstimateGroundSubstitution(t *testing.T) {
	b := newTestBudget(t)

	route, ok := b.Store.RouteForPair("zamboanga", "pagadian")
	if !ok {
		t.Fatalf("missing zamboanga-pagadian reference route")
	}
	hint := &models.TransportRecommendation{
		Mode: models.ModeGroundPreferred,
		Ground: &models.GroundDetail{
			Route: &route,
			Mode:  route.PrimaryMode(),
		},
	}

	tiers, err := b.Estimate(context.Background(), BudgetParams{
		Destination:    "Pagadian",
		Departure:      "Zamboanga",
		DurationDays:   3,
		Travelers:      2,
		IncludeFlights: true,
		TransportHint:  hint,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	// Fare midpoint 375, plus 15% contingency, round trip, two
	// travelers, rounded to the nearest 50.
	if got := tiers["economy"].Breakdown.FlightsOrGround; got != 1700 {
		t.Fatalf("ground transport component = %d, want 1700", got)
	}
}

func TestEstimateGroundSuggestionWithoutFare(t *testing.T) {
	b := newTestBudget(t)

	// A bus suggestion with no documented fare must not be priced as a
	// flight, even when the caller asked for flights.
	hint := &models.TransportRecommendation{
		Mode:   models.ModeGround,
		Ground: &models.GroundDetail{Mode: models.ModeBus},
	}

	tiers, err := b.Estimate(context.Background(), BudgetParams{
		Destination:    "Banaue",
		Departure:      "Sagada",
		DurationDays:   3,
		Travelers:      2,
		IncludeFlights: true,
		TransportHint:  hint,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if got := tiers["economy"].Breakdown.FlightsOrGround; got != 0 {
		t.Fatalf("transport component = %d, want 0 without a documented fare", got)
	}
	warned := false
	for _, w := range tiers["economy"].Warnings {
		if strings.Contains(w, "verify") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("expected a verify-locally warning, got %v", tiers["economy"].Warnings)
	}
}

func TestEstimateValidation(t *testing.T) {
	b := newTestBudget(t)

	if _, err := b.Estimate(context.Background(), BudgetParams{Departure: "Manila", DurationDays: 3, Travelers: 1}); !domain.IsValidation(err) {
		t.Fatalf("missing destination should be a validation error, got %v", err)
	}
	if _, err := b.Estimate(context.Background(), BudgetParams{Destination: "Cebu", DurationDays: 0, Travelers: 1}); !domain.IsValidation(err) {
		t.Fatalf("zero duration should be a validation error, got %v", err)
	}
	if _, err := b.Estimate(context.Background(), BudgetParams{Destination: "Cebu", DurationDays: 2, Travelers: -1}); !domain.IsValidation(err) {
		t.Fatalf("negative travelers should be a validation error, got %v", err)
	}
}
