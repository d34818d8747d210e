package services

import (
	"strings"
	"testing"

	"lakbay/internal/config"
	"lakbay/internal/domain/models"
)

func TestClassifyConvenienceTiers(t *testing.T) {
	cfg := config.DefaultTunables().Convenience

	cases := []struct {
		hours float64
		want  models.ConvenienceTier
	}{
		{1.5, models.VeryConvenient},
		{2.0, models.VeryConvenient},
		{2.5, models.Convenient},
		{4.0, models.Convenient},
		{4.5, models.Acceptable},
		{8.0, models.Acceptable},
		{8.5, models.Impractical},
		{14, models.Impractical},
	}
	for _, c := range cases {
		got, rationale := ClassifyConvenience(c.hours, c.hours*60, models.RouteFlags{}, cfg)
		if got != c.want {
			t.Fatalf("%vh classified as %s, want %s", c.hours, got, c.want)
		}
		if rationale == "" {
			t.Fatalf("%vh produced an empty rationale", c.hours)
		}
	}
}

func TestClassifyConvenienceOverride(t *testing.T) {
	cfg := config.DefaultTunables().Convenience

	got, _ := ClassifyConvenience(11, 550, models.RouteFlags{PreferenceOverride: true}, cfg)
	if got != models.Acceptable {
		t.Fatalf("curated override classified as %s, want acceptable", got)
	}

	got, rationale := ClassifyConvenience(11, 550,
		models.RouteFlags{PreferenceOverride: true, HasOvernightOption: true}, cfg)
	if got != models.Acceptable {
		t.Fatalf("overnight override classified as %s, want acceptable", got)
	}
	if !strings.Contains(rationale, "overnight") {
		t.Fatalf("overnight rationale missing: %q", rationale)
	}

	// The override only rescues impractical routes; shorter routes are
	// classified by duration alone.
	got, _ = ClassifyConvenience(3, 150, models.RouteFlags{PreferenceOverride: true}, cfg)
	if got != models.Convenient {
		t.Fatalf("short route with override classified as %s, want convenient", got)
	}
}

func TestClassifyConvenienceDeterministic(t *testing.T) {
	cfg := config.DefaultTunables().Convenience
	a, ra := ClassifyConvenience(6.5, 320, models.RouteFlags{}, cfg)
	b, rb := ClassifyConvenience(6.5, 320, models.RouteFlags{}, cfg)
	if a != b || ra != rb {
		t.Fatalf("same input produced different answers: %s/%s", a, b)
	}
}
