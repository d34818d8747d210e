package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lakbay/internal/domain"
	"lakbay/internal/domain/models"
)

func TestAuthoritySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["departureCity"] != "Manila" {
			t.Errorf("departureCity = %v", req["departureCity"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"mode":           "ground_preferred",
			"searchFlights":  false,
			"recommendation": "take the bus",
		})
	}))
	defer srv.Close()

	c := NewAuthorityClient(srv.URL, 2*time.Second)
	rec, err := c.Recommend(context.Background(), "Manila", "Baguio", true)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.Mode != models.ModeGroundPreferred {
		t.Fatalf("mode = %s, want ground_preferred", rec.Mode)
	}
	if rec.SearchFlights {
		t.Fatalf("searchFlights should be false")
	}
	if rec.Provenance != models.ProvenanceRemote {
		t.Fatalf("provenance = %s, want remote", rec.Provenance)
	}
	if rec.Rationale != "take the bus" {
		t.Fatalf("rationale = %q", rec.Rationale)
	}
}

func TestAuthorityLegacyModeSpelling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"mode": "flight"})
	}))
	defer srv.Close()

	c := NewAuthorityClient(srv.URL, 2*time.Second)
	rec, err := c.Recommend(context.Background(), "Manila", "Davao", true)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.Mode != models.ModeFlightRequired {
		t.Fatalf("legacy \"flight\" mapped to %s, want flight_required", rec.Mode)
	}
}

func TestAuthorityBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewAuthorityClient(srv.URL, 2*time.Second)
	if _, err := c.Recommend(context.Background(), "Manila", "Cebu", true); !domain.IsRemoteUnavailable(err) {
		t.Fatalf("5xx should be RemoteUnavailableError, got %v", err)
	}
}

func TestAuthorityMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewAuthorityClient(srv.URL, 2*time.Second)
	if _, err := c.Recommend(context.Background(), "Manila", "Cebu", true); !domain.IsRemoteUnavailable(err) {
		t.Fatalf("malformed body should be RemoteUnavailableError, got %v", err)
	}
}

func TestAuthorityUnknownMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"mode": "teleport"})
	}))
	defer srv.Close()

	c := NewAuthorityClient(srv.URL, 2*time.Second)
	if _, err := c.Recommend(context.Background(), "Manila", "Cebu", true); !domain.IsRemoteUnavailable(err) {
		t.Fatalf("unknown mode should be RemoteUnavailableError, got %v", err)
	}
}

func TestAuthorityTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewAuthorityClient(srv.URL, 50*time.Millisecond)
	if _, err := c.Recommend(context.Background(), "Manila", "Cebu", true); !domain.IsRemoteUnavailable(err) {
		t.Fatalf("timeout should be RemoteUnavailableError, got %v", err)
	}
}
