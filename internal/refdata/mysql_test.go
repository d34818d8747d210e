package refdata

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"lakbay/internal/domain/models"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	t.Helper()
	s, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return s, mock, func() {
		if err := LoadOverrides(context.Background(), db, s); err != nil {
			t.Fatalf("LoadOverrides: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}
}

func airportColumns() []string {
	return []string{"code", "name", "city", "lat", "lng", "status", "class", "alternatives", "aliases"}
}

func routeColumns() []string {
	return []string{"city_a", "city_b", "distance_km", "duration_hours", "modes",
		"fare_min", "fare_max", "frequency", "scenic", "has_ferry",
		"has_overnight", "preference_override", "notes"}
}

func TestLoadOverrides_MergesNewAirport(t *testing.T) {
	s, mock, run := newMock(t)

	mock.ExpectQuery("FROM airports").WillReturnRows(
		sqlmock.NewRows(airportColumns()).
			AddRow("XPL", "Test Field", "Testville", 12.0, 122.0, "active", "domestic", "", "tv"))
	mock.ExpectQuery("FROM ground_routes").WillReturnRows(sqlmock.NewRows(routeColumns()))

	run()

	a, ok := s.AirportByCode("XPL")
	if !ok {
		t.Fatal("merged airport not found by code")
	}
	if a.City != "Testville" {
		t.Fatalf("unexpected city %q", a.City)
	}
	if _, ok := s.AirportForCity("tv"); !ok {
		t.Fatal("merged airport alias not indexed")
	}
}

func TestLoadOverrides_SkipsInvalidInactiveRow(t *testing.T) {
	s, mock, run := newMock(t)

	// inactive with no alternatives violates the registry invariant
	mock.ExpectQuery("FROM airports").WillReturnRows(
		sqlmock.NewRows(airportColumns()).
			AddRow("BAD", "Broken Field", "Nowhere", 12.0, 122.0, "inactive", "domestic", "", ""))
	mock.ExpectQuery("FROM ground_routes").WillReturnRows(sqlmock.NewRows(routeColumns()))

	run()

	if _, ok := s.AirportByCode("BAD"); ok {
		t.Fatal("invalid inactive airport must not be merged")
	}
}

func TestLoadOverrides_ReplacesExistingRoute(t *testing.T) {
	s, mock, run := newMock(t)

	mock.ExpectQuery("FROM airports").WillReturnRows(sqlmock.NewRows(airportColumns()))
	mock.ExpectQuery("FROM ground_routes").WillReturnRows(
		sqlmock.NewRows(routeColumns()).
			AddRow("Zamboanga", "Pagadian", 150.0, 3.25, "bus,van",
				320, 480, "hourly", false, false, false, false, "updated survey"))

	run()

	r, ok := s.RouteForPair("zamboanga", "pagadian")
	if !ok {
		t.Fatal("route lost after merge")
	}
	if r.DurationHours != 3.25 || r.Fare.Max != 480 {
		t.Fatalf("route not replaced: %+v", r)
	}
	if len(r.Modes) != 2 || r.Modes[0] != models.ModeBus {
		t.Fatalf("modes not parsed: %+v", r.Modes)
	}
}
