package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lakbay/internal/domain"
	"lakbay/internal/domain/models"
)

// AuthorityClient calls the optional remote transport-mode service.
// One bounded attempt per request; every failure mode is surfaced as a
// RemoteUnavailableError so the caller falls back to local evaluation.
type AuthorityClient struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

// NewAuthorityClient builds a client with a bounded per-call timeout.
func NewAuthorityClient(baseURL string, timeout time.Duration) *AuthorityClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &AuthorityClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

type authorityRequest struct {
	DepartureCity   string `json:"departureCity"`
	DestinationCity string `json:"destinationCity"`
	IncludeFlights  bool   `json:"includeFlights"`
}

// authorityResponse mirrors the remote contract. Every field is
// optional; missing essentials invalidate the response.
type authorityResponse struct {
	Mode            string                  `json:"mode"`
	SearchFlights   *bool                   `json:"searchFlights"`
	HasAirport      *bool                   `json:"hasAirport"`
	Recommendation  string                  `json:"recommendation"`
	GroundRoute     *models.GroundRoute     `json:"groundRoute"`
	RegionalContext *models.RegionalContext `json:"regionalContext"`
	Warning         string                  `json:"warning"`
}

// Recommend asks the remote authority for a verdict and maps it into
// the local result shape with provenance = remote.
func (c *AuthorityClient) Recommend(ctx context.Context, origin, destination string, includeFlights bool) (models.TransportRecommendation, error) {
	var zero models.TransportRecommendation

	body, err := json.Marshal(authorityRequest{
		DepartureCity:   origin,
		DestinationCity: destination,
		IncludeFlights:  includeFlights,
	})
	if err != nil {
		return zero, domain.InternalError{Msg: "encode authority request", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return zero, domain.RemoteUnavailableError{Service: "transport-authority", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return zero, domain.RemoteUnavailableError{Service: "transport-authority", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zero, domain.RemoteUnavailableError{
			Service: "transport-authority",
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	var payload authorityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return zero, domain.RemoteUnavailableError{Service: "transport-authority", Err: err}
	}

	return mapAuthorityResponse(payload)
}

// mapAuthorityResponse converts the remote payload into the local
// shape, rejecting responses whose mode is missing or unknown.
func mapAuthorityResponse(payload authorityResponse) (models.TransportRecommendation, error) {
	mode, ok := authorityModes[payload.Mode]
	if !ok {
		return models.TransportRecommendation{}, domain.RemoteUnavailableError{
			Service: "transport-authority",
			Err:     fmt.Errorf("unusable mode %q", payload.Mode),
		}
	}

	rec := models.TransportRecommendation{
		Mode:            mode,
		Rationale:       payload.Recommendation,
		RegionalContext: payload.RegionalContext,
		Provenance:      models.ProvenanceRemote,
	}
	if payload.SearchFlights != nil {
		rec.SearchFlights = *payload.SearchFlights
	}
	if payload.GroundRoute != nil && len(payload.GroundRoute.Modes) > 0 {
		rec.Ground = &models.GroundDetail{
			Route: payload.GroundRoute,
			Mode:  payload.GroundRoute.PrimaryMode(),
		}
		rec.PrimaryMode = payload.GroundRoute.PrimaryMode()
	}
	if payload.Warning != "" {
		rec.Warnings = append(rec.Warnings, payload.Warning)
	}
	if rec.Rationale == "" {
		rec.Rationale = "remote transport authority recommendation"
	}
	return rec, nil
}

// authorityModes maps remote mode strings (including a few legacy
// spellings) onto the local enumeration.
var authorityModes = map[string]models.TransportMode{
	"no_transport_needed":         models.ModeNoTransportNeeded,
	"ground_preferred":            models.ModeGroundPreferred,
	"ground":                      models.ModeGround,
	"bus":                         models.ModeGround,
	"flight_required":             models.ModeFlightRequired,
	"flight":                      models.ModeFlightRequired,
	"flight_preferred":            models.ModeFlightPreferred,
	"flight_with_ground_transfer": models.ModeFlightWithGround,
	"insufficient_data":           models.ModeInsufficientData,
}
