// Package metrics exposes the engine's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lakbay_cache_hits_total",
		Help: "Result cache hits.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lakbay_cache_misses_total",
		Help: "Result cache misses (computation performed).",
	})
	RemoteFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lakbay_remote_fallbacks_total",
		Help: "Remote service failures that fell back to local evaluation.",
	}, []string{"service"})
	Recommendations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lakbay_recommendations_total",
		Help: "Transport recommendations by mode and provenance.",
	}, []string{"mode", "provenance"})
	BudgetToleranceBreaches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lakbay_budget_tolerance_breaches_total",
		Help: "Budget breakdowns whose sum missed the total beyond tolerance.",
	})
)
