package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"lakbay/internal/domain"
	"lakbay/internal/domain/models"
)

// GeocoderClient resolves free-text locations the gazetteer does not
// know. Optional: a nil client simply means gazetteer-only resolution.
type GeocoderClient struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

// NewGeocoderClient builds a client with a bounded per-call timeout.
func NewGeocoderClient(baseURL string, timeout time.Duration) *GeocoderClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &GeocoderClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

type geocodeResponse struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Geocode looks a place name up remotely. Every failure is returned as
// a RemoteUnavailableError so callers degrade without propagating it.
func (g *GeocoderClient) Geocode(ctx context.Context, name string) (models.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.BaseURL+"?q="+url.QueryEscape(name), nil)
	if err != nil {
		return models.Coordinates{}, domain.RemoteUnavailableError{Service: "geocoder", Err: err}
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return models.Coordinates{}, domain.RemoteUnavailableError{Service: "geocoder", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, domain.RemoteUnavailableError{
			Service: "geocoder",
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Coordinates{}, domain.RemoteUnavailableError{Service: "geocoder", Err: err}
	}
	if body.Lat == nil || body.Lng == nil {
		return models.Coordinates{}, domain.RemoteUnavailableError{
			Service: "geocoder",
			Err:     fmt.Errorf("payload missing coordinates"),
		}
	}
	return models.Coordinates{Lat: *body.Lat, Lng: *body.Lng}, nil
}
