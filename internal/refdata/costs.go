package refdata

// regionCostIndex is the regional price level versus the capital
// baseline of 100.
var regionCostIndex = map[string]float64{
	"metro_manila":        100,
	"cordillera":          85,
	"ilocos":              75,
	"cagayan_valley":      70,
	"central_luzon":       85,
	"calabarzon":          90,
	"bicol":               70,
	"mimaropa":            75,
	"palawan":             110,
	"western_visayas":     80,
	"central_visayas":     95,
	"eastern_visayas":     70,
	"northern_mindanao":   75,
	"caraga":              85,
	"zamboanga_peninsula": 70,
	"davao_region":        85,
	"soccsksargen":        70,
	"bangsamoro":          65,
}

const defaultCostIndex = 85.0

// destinationMultipliers add a per-destination premium or discount on
// top of the regional index; resort islands run well above their
// region's baseline.
var destinationMultipliers = map[string]float64{
	"boracay":  1.50,
	"malay":    1.35,
	"el nido":  1.60,
	"coron":    1.40,
	"siargao":  1.45,
	"panglao":  1.25,
	"tagaytay": 1.15,
	"baguio":   1.10,
	"mambajao": 1.10,
	"sagada":   1.05,
}

// regionKeyword maps destination keywords to region codes for budget
// lookups on free-text destinations. Longest keyword match wins, so
// "general santos" beats "santos" style collisions regardless of table
// order.
type regionKeyword struct {
	Keyword string
	Region  string
}

var regionKeywords = []regionKeyword{
	{"manila", "metro_manila"},
	{"quezon city", "metro_manila"},
	{"makati", "metro_manila"},
	{"baguio", "cordillera"},
	{"sagada", "cordillera"},
	{"banaue", "cordillera"},
	{"vigan", "ilocos"},
	{"laoag", "ilocos"},
	{"ilocos", "ilocos"},
	{"tuguegarao", "cagayan_valley"},
	{"batanes", "cagayan_valley"},
	{"basco", "cagayan_valley"},
	{"clark", "central_luzon"},
	{"angeles", "central_luzon"},
	{"subic", "central_luzon"},
	{"tagaytay", "calabarzon"},
	{"batangas", "calabarzon"},
	{"bicol", "bicol"},
	{"legazpi", "bicol"},
	{"naga", "bicol"},
	{"mindoro", "mimaropa"},
	{"puerto galera", "mimaropa"},
	{"palawan", "palawan"},
	{"puerto princesa", "palawan"},
	{"el nido", "palawan"},
	{"coron", "palawan"},
	{"boracay", "western_visayas"},
	{"caticlan", "western_visayas"},
	{"kalibo", "western_visayas"},
	{"iloilo", "western_visayas"},
	{"bacolod", "western_visayas"},
	{"cebu", "central_visayas"},
	{"moalboal", "central_visayas"},
	{"oslob", "central_visayas"},
	{"bohol", "central_visayas"},
	{"panglao", "central_visayas"},
	{"tagbilaran", "central_visayas"},
	{"dumaguete", "central_visayas"},
	{"siquijor", "central_visayas"},
	{"tacloban", "eastern_visayas"},
	{"leyte", "eastern_visayas"},
	{"samar", "eastern_visayas"},
	{"cagayan de oro", "northern_mindanao"},
	{"camiguin", "northern_mindanao"},
	{"iligan", "northern_mindanao"},
	{"siargao", "caraga"},
	{"surigao", "caraga"},
	{"butuan", "caraga"},
	{"zamboanga", "zamboanga_peninsula"},
	{"pagadian", "zamboanga_peninsula"},
	{"dipolog", "zamboanga_peninsula"},
	{"davao", "davao_region"},
	{"general santos", "soccsksargen"},
	{"gensan", "soccsksargen"},
	{"cotabato", "soccsksargen"},
}

// TierBaseline holds per-person per-day peso baselines at capital
// prices (index 100) for one budget tier.
type TierBaseline struct {
	Accommodation  int64
	Food           int64
	Activities     int64
	LocalTransport int64
	Miscellaneous  int64
}

var tierBaselines = map[string]TierBaseline{
	"economy":  {Accommodation: 800, Food: 600, Activities: 400, LocalTransport: 300, Miscellaneous: 200},
	"moderate": {Accommodation: 2000, Food: 1200, Activities: 1000, LocalTransport: 600, Miscellaneous: 400},
	"luxury":   {Accommodation: 6000, Food: 3000, Activities: 2500, LocalTransport: 1500, Miscellaneous: 1000},
}

// flightBaselines are round-trip per-person peso baselines keyed by the
// unordered island-group pair ("luzon|visayas"). Same-group hops use
// the "domestic_short" entry; undocumented pairs the default.
var flightBaselines = map[string]int64{
	"luzon|visayas":    5000,
	"luzon|mindanao":   7000,
	"luzon|palawan":    6000,
	"mindanao|visayas": 4000,
	"palawan|visayas":  5600,
	"mindanao|palawan": 7600,
	"domestic_short":   3600,
}

const defaultFlightBaseline = 6000
