package models

// BudgetBreakdown splits a tier total into spend categories. Amounts are
// whole pesos.
type BudgetBreakdown struct {
	Accommodation  int64 `json:"accommodation"`
	Food           int64 `json:"food"`
	Activities     int64 `json:"activities"`
	LocalTransport int64 `json:"local_transport"`
	// FlightsOrGround holds whichever intercity cost applied: the flight
	// estimate or the documented ground fare.
	FlightsOrGround int64 `json:"flights_or_ground"`
	Miscellaneous   int64 `json:"miscellaneous"`
}

// Sum adds the category amounts. It should match Total within the
// configured rounding tolerance.
func (b BudgetBreakdown) Sum() int64 {
	return b.Accommodation + b.Food + b.Activities + b.LocalTransport +
		b.FlightsOrGround + b.Miscellaneous
}

// BudgetTier is one of the three cost presentations for the same trip.
type BudgetTier struct {
	Tier      string          `json:"tier"`
	Total     int64           `json:"total"`
	PerPerson int64           `json:"per_person"`
	PerDay    int64           `json:"per_day"`
	Breakdown BudgetBreakdown `json:"breakdown"`
	Warnings  []string        `json:"warnings,omitempty"`
}
