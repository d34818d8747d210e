package refdata

import "lakbay/internal/domain/models"

// groundRoutes is the curated table of documented intercity options.
// City names are canonical gazetteer names; lookup is unordered so each
// pair is listed once.
var groundRoutes = []models.GroundRoute{
	// Luzon
	{CityA: "manila", CityB: "baguio", DistanceKm: 250, DurationHours: 4.5, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 450, Max: 760}, Frequency: "hourly, 24h", Flags: models.RouteFlags{HasOvernightOption: true}, Notes: "Victory Liner / Joy Bus point-to-point"},
	{CityA: "manila", CityB: "angeles", DistanceKm: 85, DurationHours: 1.5, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 150, Max: 250}, Frequency: "every 30 min"},
	{CityA: "manila", CityB: "olongapo", DistanceKm: 130, DurationHours: 2.5, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 220, Max: 350}, Frequency: "hourly"},
	{CityA: "manila", CityB: "tagaytay", DistanceKm: 60, DurationHours: 1.5, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 100, Max: 180}, Frequency: "every 30 min"},
	{CityA: "manila", CityB: "batangas", DistanceKm: 110, DurationHours: 2, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 180, Max: 280}, Frequency: "every 30 min"},
	{CityA: "manila", CityB: "lucena", DistanceKm: 130, DurationHours: 2.5, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 200, Max: 300}, Frequency: "hourly"},
	{CityA: "manila", CityB: "vigan", DistanceKm: 400, DurationHours: 7, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 700, Max: 1000}, Frequency: "several daily", Flags: models.RouteFlags{HasOvernightOption: true}},
	{CityA: "manila", CityB: "laoag", DistanceKm: 480, DurationHours: 8.5, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 800, Max: 1200}, Frequency: "several daily", Flags: models.RouteFlags{HasOvernightOption: true}},
	{CityA: "manila", CityB: "naga", DistanceKm: 380, DurationHours: 7, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 650, Max: 1000}, Frequency: "several daily", Flags: models.RouteFlags{HasOvernightOption: true}},
	// Overnight sleeper buses beat the Manila-Legazpi flight once
	// airport transfers and layovers are counted in; curated override.
	{CityA: "manila", CityB: "legazpi", DistanceKm: 550, DurationHours: 11, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 900, Max: 1400}, Frequency: "nightly", Flags: models.RouteFlags{HasOvernightOption: true, PreferenceOverride: true}, Notes: "sleeper coaches, arrives early morning"},
	{CityA: "manila", CityB: "tuguegarao", DistanceKm: 480, DurationHours: 9, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 800, Max: 1300}, Frequency: "nightly", Flags: models.RouteFlags{HasOvernightOption: true}},
	{CityA: "baguio", CityB: "sagada", DistanceKm: 140, DurationHours: 5, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 300, Max: 450}, Frequency: "morning departures", Flags: models.RouteFlags{Scenic: true}, Notes: "Halsema highway"},
	{CityA: "baguio", CityB: "vigan", DistanceKm: 200, DurationHours: 4.5, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 350, Max: 500}, Frequency: "several daily"},
	{CityA: "manila", CityB: "calapan", DistanceKm: 130, DurationHours: 3.5, Modes: []models.TransportKind{models.ModeBus, models.ModeFerry}, Fare: models.FareRange{Min: 400, Max: 700}, Frequency: "several daily", Flags: models.RouteFlags{HasFerry: true}, Notes: "RORO via Batangas pier"},
	{CityA: "manila", CityB: "puerto galera", DistanceKm: 130, DurationHours: 3.5, Modes: []models.TransportKind{models.ModeBus, models.ModeFerry}, Fare: models.FareRange{Min: 500, Max: 900}, Frequency: "several daily", Flags: models.RouteFlags{HasFerry: true, Scenic: true}},

	// Western Visayas
	{CityA: "iloilo", CityB: "bacolod", DistanceKm: 55, DurationHours: 1.5, Modes: []models.TransportKind{models.ModeFerry}, Fare: models.FareRange{Min: 300, Max: 550}, Frequency: "hourly fastcraft", Flags: models.RouteFlags{HasFerry: true}},
	{CityA: "iloilo", CityB: "roxas", DistanceKm: 125, DurationHours: 2.5, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 200, Max: 350}, Frequency: "hourly"},
	{CityA: "iloilo", CityB: "kalibo", DistanceKm: 170, DurationHours: 3, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 250, Max: 400}, Frequency: "hourly"},
	{CityA: "kalibo", CityB: "malay", DistanceKm: 68, DurationHours: 1.5, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 150, Max: 300}, Frequency: "every 30 min", Notes: "Caticlan jetty for Boracay"},

	// Central Visayas
	{CityA: "cebu", CityB: "moalboal", DistanceKm: 90, DurationHours: 2.5, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 150, Max: 250}, Frequency: "every 30 min"},
	{CityA: "cebu", CityB: "oslob", DistanceKm: 120, DurationHours: 3, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 180, Max: 280}, Frequency: "hourly"},
	{CityA: "cebu", CityB: "tagbilaran", DistanceKm: 72, DurationHours: 2, Modes: []models.TransportKind{models.ModeFerry}, Fare: models.FareRange{Min: 500, Max: 800}, Frequency: "hourly fastcraft", Flags: models.RouteFlags{HasFerry: true}},
	{CityA: "cebu", CityB: "dumaguete", DistanceKm: 165, DurationHours: 5.5, Modes: []models.TransportKind{models.ModeBus, models.ModeFerry}, Fare: models.FareRange{Min: 400, Max: 700}, Frequency: "several daily", Flags: models.RouteFlags{HasFerry: true}, Notes: "via Bato-Tampi crossing"},
	{CityA: "dumaguete", CityB: "siquijor", DistanceKm: 25, DurationHours: 1.5, Modes: []models.TransportKind{models.ModeFerry}, Fare: models.FareRange{Min: 200, Max: 400}, Frequency: "several daily", Flags: models.RouteFlags{HasFerry: true, Scenic: true}},

	// Eastern Visayas
	{CityA: "tacloban", CityB: "ormoc", DistanceKm: 105, DurationHours: 2, Modes: []models.TransportKind{models.ModeVan, models.ModeBus}, Fare: models.FareRange{Min: 150, Max: 250}, Frequency: "every 30 min"},
	{CityA: "tacloban", CityB: "calbayog", DistanceKm: 160, DurationHours: 3.5, Modes: []models.TransportKind{models.ModeVan}, Fare: models.FareRange{Min: 250, Max: 400}, Frequency: "hourly", Notes: "crosses San Juanico bridge"},
	{CityA: "tacloban", CityB: "catbalogan", DistanceKm: 100, DurationHours: 2, Modes: []models.TransportKind{models.ModeVan}, Fare: models.FareRange{Min: 150, Max: 250}, Frequency: "hourly"},

	// Palawan
	{CityA: "puerto princesa", CityB: "el nido", DistanceKm: 230, DurationHours: 5, Modes: []models.TransportKind{models.ModeVan, models.ModeBus}, Fare: models.FareRange{Min: 500, Max: 800}, Frequency: "several daily", Flags: models.RouteFlags{Scenic: true}},

	// Mindanao
	{CityA: "zamboanga", CityB: "pagadian", DistanceKm: 145, DurationHours: 3, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 300, Max: 450}, Frequency: "hourly"},
	{CityA: "zamboanga", CityB: "dipolog", DistanceKm: 410, DurationHours: 7.5, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 600, Max: 900}, Frequency: "several daily"},
	{CityA: "pagadian", CityB: "ozamiz", DistanceKm: 90, DurationHours: 2, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 150, Max: 250}, Frequency: "hourly"},
	{CityA: "cagayan de oro", CityB: "iligan", DistanceKm: 90, DurationHours: 1.75, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 150, Max: 250}, Frequency: "every 30 min"},
	{CityA: "cagayan de oro", CityB: "butuan", DistanceKm: 180, DurationHours: 3.75, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 300, Max: 450}, Frequency: "hourly"},
	{CityA: "cagayan de oro", CityB: "mambajao", DistanceKm: 90, DurationHours: 3.5, Modes: []models.TransportKind{models.ModeBus, models.ModeFerry}, Fare: models.FareRange{Min: 350, Max: 600}, Frequency: "several daily", Flags: models.RouteFlags{HasFerry: true, Scenic: true}, Notes: "via Balingoan port"},
	{CityA: "cagayan de oro", CityB: "davao", DistanceKm: 390, DurationHours: 7, Modes: []models.TransportKind{models.ModeBus}, Fare: models.FareRange{Min: 700, Max: 1000}, Frequency: "several daily", Flags: models.RouteFlags{HasOvernightOption: true}, Notes: "Bukidnon highland highway"},
	{CityA: "butuan", CityB: "surigao", DistanceKm: 125, DurationHours: 2.5, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 200, Max: 350}, Frequency: "hourly"},
	{CityA: "surigao", CityB: "siargao", DistanceKm: 60, DurationHours: 2.5, Modes: []models.TransportKind{models.ModeFerry}, Fare: models.FareRange{Min: 300, Max: 500}, Frequency: "2-3 daily", Flags: models.RouteFlags{HasFerry: true, Scenic: true}, Notes: "Dapa port crossings, weather dependent"},
	{CityA: "davao", CityB: "tagum", DistanceKm: 55, DurationHours: 1.25, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 100, Max: 180}, Frequency: "every 15 min"},
	{CityA: "davao", CityB: "general santos", DistanceKm: 150, DurationHours: 3, Modes: []models.TransportKind{models.ModeBus, models.ModeVan}, Fare: models.FareRange{Min: 250, Max: 400}, Frequency: "every 30 min"},
	{CityA: "general santos", CityB: "koronadal", DistanceKm: 60, DurationHours: 1.25, Modes: []models.TransportKind{models.ModeVan}, Fare: models.FareRange{Min: 100, Max: 160}, Frequency: "every 15 min"},
}
