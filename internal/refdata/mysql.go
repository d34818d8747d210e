package refdata

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"lakbay/internal/domain/models"
	"lakbay/internal/utils"
)

// LoadOverrides reads curated airport and ground-route rows from the
// reference MySQL instance and merges them over the embedded tables.
// The DB is an editorial convenience, not a runtime dependency: any
// error leaves the embedded data in place and is reported to the
// caller for a warning log.
func LoadOverrides(ctx context.Context, db *sql.DB, s *Store) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := loadAirportRows(ctx, db, s); err != nil {
		return err
	}
	return loadRouteRows(ctx, db, s)
}

func loadAirportRows(ctx context.Context, db *sql.DB, s *Store) error {
	rows, err := db.QueryContext(ctx, `
		SELECT code, name, city, lat, lng, status, class, alternatives, aliases
		FROM airports`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a            models.Airport
			status       string
			class        string
			alternatives sql.NullString
			aliases      sql.NullString
		)
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Coordinates.Lat, &a.Coordinates.Lng, &status, &class, &alternatives, &aliases); err != nil {
			return err
		}
		a.Status = models.ServiceStatus(status)
		a.Class = models.AirportClass(class)
		a.Alternatives = splitCSV(alternatives.String)
		a.Aliases = splitCSV(aliases.String)

		if a.Status == models.StatusInactive && len(a.Alternatives) == 0 {
			// Row violates the registry invariant; skip it rather than
			// poison the in-memory registry.
			utils.LogWarn("", "refdata", "load_airports", "skipping inactive airport without alternatives: "+a.Code)
			continue
		}
		s.mergeAirport(a)
	}
	return rows.Err()
}

func loadRouteRows(ctx context.Context, db *sql.DB, s *Store) error {
	rows, err := db.QueryContext(ctx, `
		SELECT city_a, city_b, distance_km, duration_hours, modes,
		       fare_min, fare_max, frequency, scenic, has_ferry,
		       has_overnight, preference_override, notes
		FROM ground_routes`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r     models.GroundRoute
			modes string
			notes sql.NullString
		)
		if err := rows.Scan(&r.CityA, &r.CityB, &r.DistanceKm, &r.DurationHours, &modes,
			&r.Fare.Min, &r.Fare.Max, &r.Frequency, &r.Flags.Scenic, &r.Flags.HasFerry,
			&r.Flags.HasOvernightOption, &r.Flags.PreferenceOverride, &notes); err != nil {
			return err
		}
		for _, m := range splitCSV(modes) {
			r.Modes = append(r.Modes, models.TransportKind(m))
		}
		if len(r.Modes) == 0 {
			utils.LogWarn("", "refdata", "load_routes", "skipping route without modes: "+r.CityA+"-"+r.CityB)
			continue
		}
		r.Notes = notes.String
		s.mergeRoute(r)
	}
	return rows.Err()
}

// mergeAirport replaces or appends one registry entry. Only used during
// startup loading, before the store is shared.
func (s *Store) mergeAirport(a models.Airport) {
	if _, exists := s.airportsByCode[a.Code]; !exists {
		s.airportList = append(s.airportList, a)
	} else {
		for i := range s.airportList {
			if s.airportList[i].Code == a.Code {
				s.airportList[i] = a
				break
			}
		}
	}
	s.airportsByCode[a.Code] = a
	s.airportsByCity[Normalize(a.City)] = a
	for _, alias := range a.Aliases {
		s.airportsByCity[Normalize(alias)] = a
	}
}

// mergeRoute replaces or appends one documented route during startup
// loading.
func (s *Store) mergeRoute(r models.GroundRoute) {
	key := utils.PairKey(Normalize(r.CityA), Normalize(r.CityB))
	if _, exists := s.routesByPair[key]; !exists {
		s.routeList = append(s.routeList, r)
	} else {
		for i := range s.routeList {
			if utils.PairKey(Normalize(s.routeList[i].CityA), Normalize(s.routeList[i].CityB)) == key {
				s.routeList[i] = r
				break
			}
		}
	}
	s.routesByPair[key] = r
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
