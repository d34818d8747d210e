package services

import (
	"context"
	"testing"
)

func TestResolveCanonicalCity(t *testing.T) {
	r := newTestResolver(newTestStore(t))

	loc, ok := r.Resolve(context.Background(), "Cebu City")
	if !ok {
		t.Fatalf("expected cebu to resolve")
	}
	if loc.NormalizedKey != "cebu" {
		t.Fatalf("normalized key = %q, want cebu", loc.NormalizedKey)
	}
	if !loc.HasCoordinates() {
		t.Fatalf("expected coordinates")
	}
	if !loc.HasDirectAirport {
		t.Fatalf("cebu has a serviceable airport")
	}
}

func TestResolveAlias(t *testing.T) {
	r := newTestResolver(newTestStore(t))

	loc, ok := r.Resolve(context.Background(), "CDO")
	if !ok {
		t.Fatalf("alias cdo should resolve")
	}
	if loc.NormalizedKey != "cagayan de oro" {
		t.Fatalf("alias resolved to %q, want cagayan de oro", loc.NormalizedKey)
	}
}

func TestResolveFuzzyTypo(t *testing.T) {
	r := newTestResolver(newTestStore(t))

	loc, ok := r.Resolve(context.Background(), "Cebuu")
	if !ok {
		t.Fatalf("one-character typo should fuzzy-resolve")
	}
	if loc.NormalizedKey != "cebu" {
		t.Fatalf("fuzzy resolved to %q, want cebu", loc.NormalizedKey)
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := newTestResolver(newTestStore(t))

	first, ok := r.Resolve(context.Background(), "Baguio City, Philippines")
	if !ok {
		t.Fatalf("baguio should resolve")
	}
	second, ok := r.Resolve(context.Background(), first.NormalizedKey)
	if !ok || second.NormalizedKey != first.NormalizedKey {
		t.Fatalf("re-resolving the normalized key changed the answer: %q vs %q",
			second.NormalizedKey, first.NormalizedKey)
	}
}

func TestResolveMiss(t *testing.T) {
	r := newTestResolver(newTestStore(t))

	if _, ok := r.Resolve(context.Background(), "Atlantis Prime"); ok {
		t.Fatalf("unknown place without a geocoder must miss")
	}
	if _, ok := r.Resolve(context.Background(), "   "); ok {
		t.Fatalf("blank input must miss")
	}
}
