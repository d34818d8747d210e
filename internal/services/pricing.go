package services

import "lakbay/internal/config"

// PricingAdjuster converts days-until-departure into a fare inflation
// multiplier. Non-increasing as the horizon grows, capped near
// departure, and exactly 1.0 for far-out bookings.
type PricingAdjuster struct {
	Flight config.FlightTunables
}

// Multiplier returns the bracket multiplier for the booking horizon.
// Negative day counts (already past the date) price like same-day.
func (p PricingAdjuster) Multiplier(daysUntilDeparture int) float64 {
	if daysUntilDeparture < 0 {
		daysUntilDeparture = 0
	}
	for _, b := range p.Flight.PricingBrackets {
		if daysUntilDeparture <= b.MaxDays {
			return p.clamp(b.Multiplier)
		}
	}
	return 1.0
}

func (p PricingAdjuster) clamp(m float64) float64 {
	if limit := p.Flight.PricingCap; limit >= 1 && m > limit {
		return limit
	}
	if m < 1 {
		return 1
	}
	return m
}
