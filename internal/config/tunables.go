package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables hold every numeric knob of the decision and budget engines.
// They ship with defaults and can be overridden wholesale from a YAML
// file so cutoffs can be retuned without touching the algorithms.
type Tunables struct {
	Convenience ConvenienceTunables `yaml:"convenience"`
	Terrain     map[string]float64  `yaml:"terrain_multipliers"`
	Speeds      map[string]float64  `yaml:"base_speeds_kmh"`
	Flight      FlightTunables      `yaml:"flight"`
	Budget      BudgetTunables      `yaml:"budget"`
}

type ConvenienceTunables struct {
	VeryConvenientMaxHours float64 `yaml:"very_convenient_max_hours"`
	ConvenientMaxHours     float64 `yaml:"convenient_max_hours"`
	AcceptableMaxHours     float64 `yaml:"acceptable_max_hours"`
}

type FlightTunables struct {
	CruiseSpeedKmh float64 `yaml:"cruise_speed_kmh"`
	OverheadHours  float64 `yaml:"overhead_hours"`
	// Pricing brackets: bookings at most MaxDays out pay Multiplier.
	// The list must be sorted by MaxDays ascending with non-increasing
	// multipliers; anything beyond the last bracket pays the floor 1.0.
	PricingBrackets []PricingBracket `yaml:"pricing_brackets"`
	PricingCap      float64          `yaml:"pricing_cap"`
}

type PricingBracket struct {
	MaxDays    int     `yaml:"max_days"`
	Multiplier float64 `yaml:"multiplier"`
}

type BudgetTunables struct {
	RoundTo              int64   `yaml:"round_to"`
	ToleranceAbs         int64   `yaml:"tolerance_abs"`
	CostIndexMin         float64 `yaml:"cost_index_min"`
	CostIndexMax         float64 `yaml:"cost_index_max"`
	DestMultiplierMin    float64 `yaml:"dest_multiplier_min"`
	DestMultiplierMax    float64 `yaml:"dest_multiplier_max"`
	GroundContingencyPct float64 `yaml:"ground_contingency_pct"`
}

// DefaultTunables are the compiled-in values; the YAML file overrides
// the whole struct when present.
func DefaultTunables() Tunables {
	return Tunables{
		Convenience: ConvenienceTunables{
			VeryConvenientMaxHours: 2,
			ConvenientMaxHours:     4,
			AcceptableMaxHours:     8,
		},
		Terrain: map[string]float64{
			"normal":      1.0,
			"highway":     0.8,
			"urban":       1.5,
			"mountainous": 1.6,
			"island":      1.4,
		},
		Speeds: map[string]float64{
			"bus":   60,
			"van":   65,
			"ferry": 30,
		},
		Flight: FlightTunables{
			CruiseSpeedKmh: 720,
			OverheadHours:  0.75,
			PricingBrackets: []PricingBracket{
				{MaxDays: 3, Multiplier: 1.8},
				{MaxDays: 7, Multiplier: 1.5},
				{MaxDays: 14, Multiplier: 1.3},
				{MaxDays: 30, Multiplier: 1.15},
				{MaxDays: 60, Multiplier: 1.05},
			},
			PricingCap: 1.8,
		},
		Budget: BudgetTunables{
			RoundTo:              50,
			ToleranceAbs:         100,
			CostIndexMin:         50,
			CostIndexMax:         150,
			DestMultiplierMin:    0.5,
			DestMultiplierMax:    2.0,
			GroundContingencyPct: 0.15,
		},
	}
}

// LoadTunables reads the YAML overrides when path is non-empty. Missing
// file or bad YAML is an error; a half-applied config is worse than a
// loud boot failure.
func LoadTunables(path string) (Tunables, error) {
	t := DefaultTunables()
	if path == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read engine config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("parse engine config: %w", err)
	}
	if err := t.validate(); err != nil {
		return t, fmt.Errorf("engine config: %w", err)
	}
	return t, nil
}

func (t Tunables) validate() error {
	c := t.Convenience
	if !(c.VeryConvenientMaxHours > 0 && c.VeryConvenientMaxHours <= c.ConvenientMaxHours && c.ConvenientMaxHours <= c.AcceptableMaxHours) {
		return fmt.Errorf("convenience cutoffs must be ascending and positive")
	}
	if t.Flight.PricingCap < 1 {
		return fmt.Errorf("pricing cap must be at least 1.0")
	}
	prevDays := 0
	prevMult := t.Flight.PricingCap + 1
	for _, b := range t.Flight.PricingBrackets {
		if b.MaxDays <= prevDays {
			return fmt.Errorf("pricing brackets must be sorted by max_days ascending")
		}
		if b.Multiplier > prevMult {
			return fmt.Errorf("pricing multipliers must be non-increasing")
		}
		if b.Multiplier < 1 {
			return fmt.Errorf("pricing multipliers floor at 1.0")
		}
		prevDays = b.MaxDays
		prevMult = b.Multiplier
	}
	if t.Budget.CostIndexMin <= 0 || t.Budget.CostIndexMax < t.Budget.CostIndexMin {
		return fmt.Errorf("cost index bounds invalid")
	}
	return nil
}
