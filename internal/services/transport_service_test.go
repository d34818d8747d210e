package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lakbay/internal/cache"
	"lakbay/internal/domain/models"
)

func TestRecommendShortIntraRegional(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	rec := s.Recommend(context.Background(), "Zamboanga", "Pagadian", true)
	if rec.Mode != models.ModeGroundPreferred {
		t.Fatalf("mode = %s, want ground_preferred", rec.Mode)
	}
	if rec.SearchFlights {
		t.Fatalf("a convenient ground route must suppress the flight search")
	}
	if rec.Ground == nil || rec.Ground.Route == nil {
		t.Fatalf("expected the documented zamboanga-pagadian route")
	}
	if rec.Ground.Route.DurationHours != 3 {
		t.Fatalf("route duration = %v, want 3", rec.Ground.Route.DurationHours)
	}
	if rec.Ground.Convenience != models.Convenient {
		t.Fatalf("convenience = %s, want convenient", rec.Ground.Convenience)
	}
	if rec.Provenance != models.ProvenanceLocal {
		t.Fatalf("provenance = %s, want local", rec.Provenance)
	}
}

func TestRecommendInactiveDestinationAirport(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	rec := s.Recommend(context.Background(), "Manila", "Baguio", true)
	if rec.Mode != models.ModeGroundPreferred {
		t.Fatalf("mode = %s, want ground_preferred", rec.Mode)
	}
	if rec.PrimaryMode != models.ModeBus {
		t.Fatalf("primary mode = %s, want bus", rec.PrimaryMode)
	}
	if rec.SearchFlights {
		t.Fatalf("no commercial service at the destination; flights are not the answer")
	}
	if rec.Ground == nil || rec.Ground.Route == nil {
		t.Fatalf("expected the documented manila-baguio route")
	}
}

func TestRecommendSameCorridorWithoutAirports(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	// Both cordillera towns, no documented route, neither has its own
	// airport: the answer is a local bus suggestion, not a flight
	// between faraway fields.
	rec := s.Recommend(context.Background(), "Sagada", "Banaue", true)
	if rec.Mode != models.ModeGround {
		t.Fatalf("mode = %s, want ground", rec.Mode)
	}
	if rec.PrimaryMode != models.ModeBus {
		t.Fatalf("primary mode = %s, want bus", rec.PrimaryMode)
	}
	if rec.FlightAlternative != nil {
		t.Fatalf("airport-less towns should not get a flight estimate")
	}
	caveat := false
	for _, w := range rec.Warnings {
		if strings.Contains(w, "verify") {
			caveat = true
		}
	}
	if !caveat {
		t.Fatalf("expected a verify-locally caveat, got %v", rec.Warnings)
	}
}

func TestRecommendLimitedDestinationKeepsFlightAlternative(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	// Mambajao's field has limited service and a documented ferry-bus
	// route; ground leads but the flight option stays visible.
	rec := s.Recommend(context.Background(), "Cagayan de Oro", "Mambajao", true)
	if rec.Mode != models.ModeGroundPreferred {
		t.Fatalf("mode = %s, want ground_preferred", rec.Mode)
	}
	if rec.Ground == nil || rec.Ground.Route == nil {
		t.Fatalf("expected the documented cagayan de oro-mambajao route")
	}
	if rec.FlightAlternative == nil {
		t.Fatalf("expected a secondary flight option for the limited field")
	}
	if rec.FlightAlternative.FromAirport != "CGY" || rec.FlightAlternative.ToAirport != "CGM" {
		t.Fatalf("flight = %s-%s, want CGY-CGM",
			rec.FlightAlternative.FromAirport, rec.FlightAlternative.ToAirport)
	}
}

func TestRecommendCuratedOvernightCorridor(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	rec := s.Recommend(context.Background(), "Manila", "Legazpi", true)
	if rec.Mode != models.ModeGroundPreferred {
		t.Fatalf("mode = %s, want ground_preferred for the curated corridor", rec.Mode)
	}
	if rec.SearchFlights {
		t.Fatalf("curated ground-first corridor must not trigger a flight search")
	}
}

func TestRecommendIslandBoundary(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	rec := s.Recommend(context.Background(), "Manila", "Davao", true)
	if rec.Mode != models.ModeFlightRequired {
		t.Fatalf("mode = %s, want flight_required across luzon-mindanao", rec.Mode)
	}
	if !rec.SearchFlights {
		t.Fatalf("crossing an island boundary must search flights")
	}
	if rec.FlightAlternative == nil {
		t.Fatalf("expected a flight estimate")
	}
	if rec.FlightAlternative.FromAirport != "MNL" || rec.FlightAlternative.ToAirport != "DVO" {
		t.Fatalf("flight = %s-%s, want MNL-DVO",
			rec.FlightAlternative.FromAirport, rec.FlightAlternative.ToAirport)
	}
}

func TestRecommendIdentity(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	rec := s.Recommend(context.Background(), "Cebu City", "cebu", true)
	if rec.Mode != models.ModeNoTransportNeeded {
		t.Fatalf("mode = %s, want no_transport_needed", rec.Mode)
	}
}

func TestRecommendMissingInput(t *testing.T) {
	s := newTestTransport(newTestStore(t))

	rec := s.Recommend(context.Background(), "", "Cebu", true)
	if rec.Mode != models.ModeInsufficientData {
		t.Fatalf("mode = %s, want insufficient_data", rec.Mode)
	}
	if len(rec.Warnings) == 0 {
		t.Fatalf("missing input must carry a warning")
	}
}

func TestRecommendRemoteAuthorityWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"mode":"flight_preferred","searchFlights":true,"recommendation":"remote says fly"}`))
	}))
	defer srv.Close()

	s := newTestTransport(newTestStore(t))
	s.Authority = NewAuthorityClient(srv.URL, time.Second)

	rec := s.Recommend(context.Background(), "Zamboanga", "Pagadian", true)
	if rec.Provenance != models.ProvenanceRemote {
		t.Fatalf("provenance = %s, want remote", rec.Provenance)
	}
	if rec.Mode != models.ModeFlightPreferred {
		t.Fatalf("mode = %s, want the remote verdict", rec.Mode)
	}
}

func TestRecommendRemoteFailureFallsBackLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := newTestTransport(newTestStore(t))
	s.Authority = NewAuthorityClient(srv.URL, time.Second)

	rec := s.Recommend(context.Background(), "Zamboanga", "Pagadian", true)
	if rec.Provenance != models.ProvenanceLocal {
		t.Fatalf("provenance = %s, want local after remote failure", rec.Provenance)
	}
	if rec.Mode != models.ModeGroundPreferred {
		t.Fatalf("mode = %s, want the local verdict", rec.Mode)
	}
}

func TestRecommendCached(t *testing.T) {
	s := newTestTransport(newTestStore(t))
	mem := cache.NewMemory(16)
	s.Cache = mem
	s.CacheTTL = time.Minute

	first := s.Recommend(context.Background(), "Manila", "Cebu", true)
	second := s.Recommend(context.Background(), "MANILA", "Cebu City", true)
	if mem.Len() != 1 {
		t.Fatalf("cache entries = %d, want 1 (same normalized key)", mem.Len())
	}
	if first.Mode != second.Mode || first.Rationale != second.Rationale {
		t.Fatalf("cached answer differs: %s vs %s", first.Mode, second.Mode)
	}

	// Different flight preference is a different key.
	s.Recommend(context.Background(), "Manila", "Cebu", false)
	if mem.Len() != 2 {
		t.Fatalf("cache entries = %d, want 2 after flag change", mem.Len())
	}
}
