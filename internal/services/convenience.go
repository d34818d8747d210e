package services

import (
	"fmt"

	"lakbay/internal/config"
	"lakbay/internal/domain/models"
)

// ClassifyConvenience buckets a documented route into a qualitative
// tier. Pure function over the configured cutoffs; deterministic for
// identical inputs.
//
// A curated preference override (overnight corridors and similar) can
// lift a route out of IMPRACTICAL, but never makes it better than
// ACCEPTABLE on its own.
func ClassifyConvenience(durationHours, distanceKm float64, flags models.RouteFlags, cfg config.ConvenienceTunables) (models.ConvenienceTier, string) {
	switch {
	case durationHours <= cfg.VeryConvenientMaxHours:
		return models.VeryConvenient,
			fmt.Sprintf("%.1fh by ground is faster than any flight once airport time is counted", durationHours)

	case durationHours <= cfg.ConvenientMaxHours:
		return models.Convenient,
			fmt.Sprintf("%.1fh / %.0f km is a comfortable single-leg ground trip", durationHours, distanceKm)

	case durationHours <= cfg.AcceptableMaxHours:
		return models.Acceptable,
			fmt.Sprintf("%.1fh is workable by ground but a flight may be worth comparing", durationHours)

	case flags.PreferenceOverride:
		rationale := fmt.Sprintf("%.1fh would normally be impractical, but this corridor is curated ground-first", durationHours)
		if flags.HasOvernightOption {
			rationale = fmt.Sprintf("%.1fh overnight service uses travel hours you would otherwise sleep through", durationHours)
		}
		return models.Acceptable, rationale

	default:
		return models.Impractical,
			fmt.Sprintf("%.1fh / %.0f km by ground exceeds the practical cutoff", durationHours, distanceKm)
	}
}
