package services

import (
	"context"
	"testing"

	"lakbay/internal/domain/models"
)

func TestFindNearestDirectAirport(t *testing.T) {
	l := newTestLocator(newTestStore(t))

	m := l.FindNearest(context.Background(), "Cebu")
	if m.Airport.Code != "CEB" {
		t.Fatalf("cebu airport = %s, want CEB", m.Airport.Code)
	}
	if m.DistanceKm != 0 {
		t.Fatalf("own airport distance = %f, want 0", m.DistanceKm)
	}
	if !m.HasDirectAirport {
		t.Fatalf("expected HasDirectAirport")
	}
}

func TestFindNearestInactiveNeverReturned(t *testing.T) {
	l := newTestLocator(newTestStore(t))

	m := l.FindNearest(context.Background(), "Baguio")
	if m.Airport.Code == "BAG" {
		t.Fatalf("inactive BAG must never be the answer")
	}
	if !m.NoCommercialService {
		t.Fatalf("expected NoCommercialService for a city whose field is inactive")
	}
	if m.LocalStatus != models.StatusInactive {
		t.Fatalf("local status = %s, want inactive", m.LocalStatus)
	}
	if !m.Airport.Serviceable() {
		t.Fatalf("fallback airport %s is not serviceable", m.Airport.Code)
	}
	if len(m.Warnings) == 0 {
		t.Fatalf("expected a warning about the lost commercial service")
	}
	if m.Airport.Code != "MNL" && m.Airport.Code != "CRK" {
		t.Fatalf("fallback = %s, want one of the documented alternatives", m.Airport.Code)
	}
}

func TestFindNearestRankedForAirportlessCity(t *testing.T) {
	l := newTestLocator(newTestStore(t))

	m := l.FindNearest(context.Background(), "Sagada")
	if m.UsedDefault {
		t.Fatalf("sagada is in the gazetteer; ranking should not fall back to the default")
	}
	if !m.Airport.Serviceable() {
		t.Fatalf("nearest airport %s is not serviceable", m.Airport.Code)
	}
	if m.DistanceKm <= 0 {
		t.Fatalf("distance to a remote airport must be positive, got %f", m.DistanceKm)
	}
	if m.TravelTimeHours <= 0 {
		t.Fatalf("ground transfer time must be positive, got %f", m.TravelTimeHours)
	}

	prev := m.DistanceKm
	if len(m.Alternatives) == 0 || len(m.Alternatives) > 3 {
		t.Fatalf("alternatives = %d, want 1..3", len(m.Alternatives))
	}
	for _, alt := range m.Alternatives {
		if alt.DistanceKm < prev {
			t.Fatalf("alternatives out of order: %f before %f", prev, alt.DistanceKm)
		}
		prev = alt.DistanceKm
	}
}

func TestFindNearestDefaultFallback(t *testing.T) {
	l := newTestLocator(newTestStore(t))

	m := l.FindNearest(context.Background(), "Atlantis Prime")
	if !m.UsedDefault {
		t.Fatalf("unresolvable city must fall back to the default airport")
	}
	if m.Airport.Code != "MNL" {
		t.Fatalf("default airport = %s, want MNL", m.Airport.Code)
	}
	if len(m.Warnings) == 0 {
		t.Fatalf("default fallback must carry a warning")
	}
}
