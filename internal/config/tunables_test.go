package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTunables_Validate(t *testing.T) {
	if err := DefaultTunables().validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadTunables_EmptyPathKeepsDefaults(t *testing.T) {
	got, err := LoadTunables("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Convenience.ConvenientMaxHours != 4 {
		t.Fatalf("defaults not applied, got %v", got.Convenience.ConvenientMaxHours)
	}
}

func TestLoadTunables_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	body := `
convenience:
  very_convenient_max_hours: 1.5
  convenient_max_hours: 3
  acceptable_max_hours: 7
flight:
  pricing_cap: 2.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTunables(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Convenience.ConvenientMaxHours != 3 {
		t.Fatalf("override not applied, got %v", got.Convenience.ConvenientMaxHours)
	}
	if got.Flight.PricingCap != 2.0 {
		t.Fatalf("pricing cap override not applied, got %v", got.Flight.PricingCap)
	}
	// Untouched sections keep their defaults.
	if got.Budget.RoundTo != 50 {
		t.Fatalf("unrelated defaults lost, got %v", got.Budget.RoundTo)
	}
}

func TestLoadTunables_RejectsDescendingBrackets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	body := `
flight:
  pricing_cap: 1.8
  pricing_brackets:
    - max_days: 7
      multiplier: 1.2
    - max_days: 3
      multiplier: 1.8
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTunables(path); err == nil {
		t.Fatal("expected validation error for unsorted brackets")
	}
}

func TestLoadTunables_MissingFileFails(t *testing.T) {
	if _, err := LoadTunables("/definitely/not/here.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
