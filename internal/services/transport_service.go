package services

import (
	"context"
	"strconv"
	"time"

	"lakbay/internal/cache"
	"lakbay/internal/config"
	"lakbay/internal/domain/models"
	"lakbay/internal/metrics"
	"lakbay/internal/refdata"
	"lakbay/internal/utils"
)

// TransportService is the decision engine: it orchestrates location
// resolution, airport lookup, route matching and regional context, and
// asks the remote authority first when one is configured.
type TransportService struct {
	Store     *refdata.Store
	Resolver  LocationResolver
	Locator   AirportLocator
	Routes    RouteMatcher
	Regional  RegionalClassifier
	Authority *AuthorityClient
	Cache     cache.Store
	CacheTTL  time.Duration
	Tunables  config.Tunables
	RequestID string
}

// Recommend produces the transport verdict for an origin/destination
// pair. It never returns an error: missing input and reference-data
// gaps come back as typed insufficient results.
func (s TransportService) Recommend(ctx context.Context, origin, destination string, includeFlights bool) models.TransportRecommendation {
	origin = utils.TrimOrEmpty(origin)
	destination = utils.TrimOrEmpty(destination)
	if origin == "" || destination == "" {
		return models.TransportRecommendation{
			Mode:       models.ModeInsufficientData,
			Warnings:   []string{"origin and destination are both required"},
			Rationale:  "insufficient input",
			Provenance: models.ProvenanceLocal,
		}
	}

	// Identity check before any heavier work.
	if refdata.Normalize(origin) == refdata.Normalize(destination) {
		return models.TransportRecommendation{
			Mode:       models.ModeNoTransportNeeded,
			Rationale:  "origin and destination are the same place",
			Provenance: models.ProvenanceLocal,
		}
	}

	if s.Cache == nil {
		return s.recommendUncached(ctx, origin, destination, includeFlights)
	}

	key := cache.Key("recommend", map[string]string{
		"from":    refdata.Normalize(origin),
		"to":      refdata.Normalize(destination),
		"flights": strconv.FormatBool(includeFlights),
	})
	rec, hit, err := cache.Memoize(s.Cache, key, s.CacheTTL, func() (models.TransportRecommendation, error) {
		return s.recommendUncached(ctx, origin, destination, includeFlights), nil
	})
	if err != nil {
		// Memoize only errors when compute does, which it never does here.
		return s.recommendUncached(ctx, origin, destination, includeFlights)
	}
	if hit {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}
	return rec
}

func (s TransportService) recommendUncached(ctx context.Context, origin, destination string, includeFlights bool) models.TransportRecommendation {
	// Remote authority first when configured; any failure is logged
	// and replaced by local evaluation.
	if s.Authority != nil && s.Authority.BaseURL != "" {
		rec, err := s.Authority.Recommend(ctx, origin, destination, includeFlights)
		if err == nil {
			metrics.Recommendations.WithLabelValues(string(rec.Mode), string(models.ProvenanceRemote)).Inc()
			return rec
		}
		metrics.RemoteFallbacks.WithLabelValues("transport-authority").Inc()
		utils.LogWarn(s.RequestID, "transport", "remote_fallback", err.Error())
	}

	dc := s.buildContext(ctx, origin, destination, includeFlights)
	for _, rule := range s.rules() {
		if !rule.when(dc) {
			continue
		}
		rec := rule.build(dc)
		rec.Provenance = models.ProvenanceLocal
		if rec.RegionalContext == nil && (dc.regional.SameRegion || dc.regional.CrossesIslandBoundary) {
			regional := dc.regional
			rec.RegionalContext = &regional
		}
		utils.LogEvent(s.RequestID, "transport", "recommend",
			origin+" -> "+destination+" rule="+rule.name+" mode="+string(rec.Mode))
		metrics.Recommendations.WithLabelValues(string(rec.Mode), string(models.ProvenanceLocal)).Inc()
		return rec
	}

	// Unreachable: the terminal rule always fires.
	return models.TransportRecommendation{Mode: models.ModeInsufficientData, Provenance: models.ProvenanceLocal}
}

// buildContext resolves everything the rule list consumes.
func (s TransportService) buildContext(ctx context.Context, origin, destination string, includeFlights bool) *decisionContext {
	dc := &decisionContext{
		origin:         origin,
		destination:    destination,
		includeFlights: includeFlights,
	}

	dc.originLoc, dc.originOK = s.Resolver.Resolve(ctx, origin)
	dc.destLoc, dc.destOK = s.Resolver.Resolve(ctx, destination)

	dc.originAirport = s.Locator.FindNearest(ctx, origin)
	dc.destAirport = s.Locator.FindNearest(ctx, destination)

	if route, ok := s.Routes.Find(origin, destination); ok {
		dc.route = &route
		dc.convenience, dc.convRationale = ClassifyConvenience(
			route.DurationHours, route.DistanceKm, route.Flags, s.Tunables.Convenience)
	}

	dc.regional = s.Regional.Classify(origin, destination)
	return dc
}
