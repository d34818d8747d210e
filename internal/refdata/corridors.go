package refdata

import "lakbay/internal/domain/models"

// corridors groups cities that share transport infrastructure. Route
// keys in the recommended/avoided lists use the unordered "a|b" form.
var corridors = []models.RegionalCorridor{
	{
		Name:   "metro_manila",
		Cities: []string{"manila", "quezon city", "makati", "pasay"},
		Hub:    "manila",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "good",
		},
	},
	{
		Name:   "cordillera",
		Cities: []string{"baguio", "sagada", "banaue"},
		Hub:    "baguio",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "rough",
		},
		RecommendedRoutes: []string{"baguio|sagada"},
		// The direct Baguio-Banaue mountain road is slow and unreliable;
		// the curated advice is to backtrack through the lowland highway.
		AvoidedRoutes: []string{"baguio|banaue"},
	},
	{
		Name:   "ilocos",
		Cities: []string{"vigan", "laoag", "san fernando"},
		Hub:    "vigan",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "good",
		},
	},
	{
		Name:   "cagayan_valley",
		Cities: []string{"tuguegarao", "cauayan", "basco"},
		Hub:    "tuguegarao",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeVan, InfrastructureQuality: "fair",
		},
	},
	{
		Name:   "central_luzon",
		Cities: []string{"angeles", "olongapo", "subic"},
		Hub:    "angeles",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "good",
		},
	},
	{
		Name:   "calabarzon",
		Cities: []string{"tagaytay", "batangas", "lucena", "cavite"},
		Hub:    "batangas",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "good",
		},
	},
	{
		Name:   "bicol",
		Cities: []string{"naga", "legazpi", "daraga", "virac", "masbate"},
		Hub:    "legazpi",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "fair",
		},
		RecommendedRoutes: []string{"legazpi|naga"},
	},
	{
		Name:   "mimaropa",
		Cities: []string{"calapan", "puerto galera", "san jose", "boac", "romblon"},
		Hub:    "calapan",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeFerry, InfrastructureQuality: "fair",
		},
	},
	{
		Name:   "palawan",
		Cities: []string{"puerto princesa", "el nido", "coron"},
		Hub:    "puerto princesa",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeVan, InfrastructureQuality: "fair",
		},
		RecommendedRoutes: []string{"el nido|puerto princesa"},
		// No road link: Coron sits on a separate island of the chain.
		AvoidedRoutes: []string{"coron|puerto princesa"},
	},
	{
		Name:   "western_visayas",
		Cities: []string{"iloilo", "bacolod", "roxas", "kalibo", "malay", "boracay", "san jose de buenavista"},
		Hub:    "iloilo",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "good",
		},
		RecommendedRoutes: []string{"kalibo|malay", "bacolod|iloilo"},
	},
	{
		Name:   "central_visayas",
		Cities: []string{"cebu", "mandaue", "lapu-lapu", "moalboal", "oslob", "tagbilaran", "panglao", "dumaguete", "siquijor"},
		Hub:    "cebu",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeFerry, InfrastructureQuality: "good",
		},
		RecommendedRoutes: []string{"cebu|tagbilaran", "dumaguete|siquijor"},
	},
	{
		Name:   "eastern_visayas",
		Cities: []string{"tacloban", "ormoc", "calbayog", "catbalogan", "catarman"},
		Hub:    "tacloban",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeVan, InfrastructureQuality: "fair",
		},
	},
	{
		Name:   "northern_mindanao",
		Cities: []string{"cagayan de oro", "iligan", "ozamiz", "mambajao"},
		Hub:    "cagayan de oro",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "good",
		},
	},
	{
		Name:   "caraga",
		Cities: []string{"butuan", "surigao", "siargao", "del carmen", "tandag"},
		Hub:    "butuan",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "fair",
		},
		RecommendedRoutes: []string{"siargao|surigao"},
	},
	{
		Name:   "zamboanga_peninsula",
		Cities: []string{"zamboanga", "pagadian", "dipolog"},
		Hub:    "zamboanga",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "fair",
		},
		RecommendedRoutes: []string{"pagadian|zamboanga"},
	},
	{
		Name:   "davao_region",
		Cities: []string{"davao", "tagum"},
		Hub:    "davao",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeBus, InfrastructureQuality: "good",
		},
	},
	{
		Name:   "soccsksargen",
		Cities: []string{"general santos", "koronadal", "cotabato"},
		Hub:    "general santos",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeVan, InfrastructureQuality: "fair",
		},
	},
	{
		Name:   "bangsamoro",
		Cities: []string{"marawi", "jolo", "bongao"},
		Hub:    "cotabato",
		Characteristics: models.CorridorCharacteristics{
			PrimaryMode: models.ModeVan, InfrastructureQuality: "rough",
		},
	},
}

// islandGroups bucket corridors into the archipelago's major groups;
// crossing between groups implies a sea or air leg.
var islandGroups = map[string][]string{
	"luzon":    {"metro_manila", "cordillera", "ilocos", "cagayan_valley", "central_luzon", "calabarzon", "bicol", "mimaropa"},
	"visayas":  {"western_visayas", "central_visayas", "eastern_visayas"},
	"mindanao": {"northern_mindanao", "caraga", "zamboanga_peninsula", "davao_region", "soccsksargen", "bangsamoro"},
	"palawan":  {"palawan"},
}
