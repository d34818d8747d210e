package refdata

// gazetteerEntry pins a normalized city name to coordinates and the
// region (corridor) it belongs to.
type gazetteerEntry struct {
	Name   string
	Region string
	Lat    float64
	Lng    float64
}

var gazetteer = []gazetteerEntry{
	// Metro Manila
	{Name: "manila", Region: "metro_manila", Lat: 14.5995, Lng: 120.9842},
	{Name: "quezon city", Region: "metro_manila", Lat: 14.6760, Lng: 121.0437},
	{Name: "makati", Region: "metro_manila", Lat: 14.5547, Lng: 121.0244},
	{Name: "pasay", Region: "metro_manila", Lat: 14.5378, Lng: 121.0014},

	// Northern Luzon
	{Name: "baguio", Region: "cordillera", Lat: 16.4023, Lng: 120.5960},
	{Name: "sagada", Region: "cordillera", Lat: 17.0847, Lng: 120.9005},
	{Name: "banaue", Region: "cordillera", Lat: 16.9112, Lng: 121.0575},
	{Name: "vigan", Region: "ilocos", Lat: 17.5747, Lng: 120.3869},
	{Name: "laoag", Region: "ilocos", Lat: 18.1960, Lng: 120.5927},
	{Name: "san fernando", Region: "ilocos", Lat: 16.6159, Lng: 120.3166},
	{Name: "tuguegarao", Region: "cagayan_valley", Lat: 17.6132, Lng: 121.7270},
	{Name: "cauayan", Region: "cagayan_valley", Lat: 16.9347, Lng: 121.7705},
	{Name: "basco", Region: "cagayan_valley", Lat: 20.4487, Lng: 121.9702},

	// Central Luzon
	{Name: "angeles", Region: "central_luzon", Lat: 15.1450, Lng: 120.5887},
	{Name: "olongapo", Region: "central_luzon", Lat: 14.8386, Lng: 120.2842},
	{Name: "subic", Region: "central_luzon", Lat: 14.8797, Lng: 120.2345},
	{Name: "cavite", Region: "calabarzon", Lat: 14.4791, Lng: 120.8970},

	// Southern Luzon
	{Name: "tagaytay", Region: "calabarzon", Lat: 14.1153, Lng: 120.9621},
	{Name: "batangas", Region: "calabarzon", Lat: 13.7565, Lng: 121.0583},
	{Name: "lucena", Region: "calabarzon", Lat: 13.9411, Lng: 121.6236},
	{Name: "naga", Region: "bicol", Lat: 13.6218, Lng: 123.1948},
	{Name: "legazpi", Region: "bicol", Lat: 13.1391, Lng: 123.7438},
	{Name: "daraga", Region: "bicol", Lat: 13.1486, Lng: 123.7122},
	{Name: "virac", Region: "bicol", Lat: 13.5842, Lng: 124.2326},
	{Name: "masbate", Region: "bicol", Lat: 12.3700, Lng: 123.6210},

	// Mindoro, Marinduque, Romblon, Palawan
	{Name: "calapan", Region: "mimaropa", Lat: 13.4117, Lng: 121.1803},
	{Name: "puerto galera", Region: "mimaropa", Lat: 13.5032, Lng: 120.9540},
	{Name: "san jose", Region: "mimaropa", Lat: 12.3528, Lng: 121.0676},
	{Name: "boac", Region: "mimaropa", Lat: 13.4464, Lng: 121.8399},
	{Name: "romblon", Region: "mimaropa", Lat: 12.5754, Lng: 122.2698},
	{Name: "puerto princesa", Region: "palawan", Lat: 9.7392, Lng: 118.7353},
	{Name: "el nido", Region: "palawan", Lat: 11.1800, Lng: 119.3912},
	{Name: "coron", Region: "palawan", Lat: 12.0050, Lng: 120.2043},

	// Western Visayas
	{Name: "iloilo", Region: "western_visayas", Lat: 10.7202, Lng: 122.5621},
	{Name: "bacolod", Region: "western_visayas", Lat: 10.6770, Lng: 122.9500},
	{Name: "roxas", Region: "western_visayas", Lat: 11.5853, Lng: 122.7511},
	{Name: "kalibo", Region: "western_visayas", Lat: 11.7086, Lng: 122.3648},
	{Name: "malay", Region: "western_visayas", Lat: 11.8996, Lng: 121.9093},
	{Name: "boracay", Region: "western_visayas", Lat: 11.9674, Lng: 121.9248},
	{Name: "san jose de buenavista", Region: "western_visayas", Lat: 10.7463, Lng: 121.9373},

	// Central Visayas
	{Name: "cebu", Region: "central_visayas", Lat: 10.3157, Lng: 123.8854},
	{Name: "mandaue", Region: "central_visayas", Lat: 10.3236, Lng: 123.9223},
	{Name: "lapu-lapu", Region: "central_visayas", Lat: 10.3103, Lng: 123.9494},
	{Name: "moalboal", Region: "central_visayas", Lat: 9.9394, Lng: 123.3923},
	{Name: "oslob", Region: "central_visayas", Lat: 9.3590, Lng: 123.3894},
	{Name: "tagbilaran", Region: "central_visayas", Lat: 9.6475, Lng: 123.8556},
	{Name: "panglao", Region: "central_visayas", Lat: 9.5778, Lng: 123.7464},
	{Name: "dumaguete", Region: "central_visayas", Lat: 9.3068, Lng: 123.3054},
	{Name: "siquijor", Region: "central_visayas", Lat: 9.2142, Lng: 123.5151},

	// Eastern Visayas
	{Name: "tacloban", Region: "eastern_visayas", Lat: 11.2433, Lng: 125.0039},
	{Name: "ormoc", Region: "eastern_visayas", Lat: 11.0059, Lng: 124.6075},
	{Name: "calbayog", Region: "eastern_visayas", Lat: 12.0668, Lng: 124.5962},
	{Name: "catbalogan", Region: "eastern_visayas", Lat: 11.7753, Lng: 124.8861},
	{Name: "catarman", Region: "eastern_visayas", Lat: 12.4989, Lng: 124.6377},

	// Mindanao
	{Name: "cagayan de oro", Region: "northern_mindanao", Lat: 8.4542, Lng: 124.6319},
	{Name: "iligan", Region: "northern_mindanao", Lat: 8.2280, Lng: 124.2452},
	{Name: "ozamiz", Region: "northern_mindanao", Lat: 8.1462, Lng: 123.8444},
	{Name: "mambajao", Region: "northern_mindanao", Lat: 9.2506, Lng: 124.7156},
	{Name: "butuan", Region: "caraga", Lat: 8.9475, Lng: 125.5406},
	{Name: "surigao", Region: "caraga", Lat: 9.7844, Lng: 125.4888},
	{Name: "siargao", Region: "caraga", Lat: 9.8482, Lng: 126.0458},
	{Name: "del carmen", Region: "caraga", Lat: 9.8690, Lng: 125.9704},
	{Name: "tandag", Region: "caraga", Lat: 9.0786, Lng: 126.1986},
	{Name: "zamboanga", Region: "zamboanga_peninsula", Lat: 6.9214, Lng: 122.0790},
	{Name: "pagadian", Region: "zamboanga_peninsula", Lat: 7.8257, Lng: 123.4370},
	{Name: "dipolog", Region: "zamboanga_peninsula", Lat: 8.5880, Lng: 123.3410},
	{Name: "davao", Region: "davao_region", Lat: 7.1907, Lng: 125.4553},
	{Name: "tagum", Region: "davao_region", Lat: 7.4478, Lng: 125.8078},
	{Name: "general santos", Region: "soccsksargen", Lat: 6.1164, Lng: 125.1716},
	{Name: "koronadal", Region: "soccsksargen", Lat: 6.5008, Lng: 124.8470},
	{Name: "cotabato", Region: "soccsksargen", Lat: 7.2236, Lng: 124.2464},
	{Name: "marawi", Region: "bangsamoro", Lat: 8.0034, Lng: 124.2830},
	{Name: "jolo", Region: "bangsamoro", Lat: 6.0522, Lng: 121.0023},
	{Name: "bongao", Region: "bangsamoro", Lat: 5.0292, Lng: 119.7731},
}

// cityAliases maps common alternate spellings and shorthand to the
// canonical gazetteer name. Keys are already normalized.
var cityAliases = map[string]string{
	"metro manila":      "manila",
	"ncr":               "manila",
	"cdo":               "cagayan de oro",
	"gensan":            "general santos",
	"general luna":      "siargao",
	"siargao island":    "siargao",
	"caticlan":          "malay",
	"boracay island":    "boracay",
	"bohol":             "tagbilaran",
	"camiguin":          "mambajao",
	"batanes":           "basco",
	"catanduanes":       "virac",
	"marinduque":        "boac",
	"tawi-tawi":         "bongao",
	"la union":          "san fernando",
	"clark":             "angeles",
	"legaspi":           "legazpi",
	"albay":             "legazpi",
	"samal":             "davao",
	"davao city proper": "davao",
	"zamboanga city":    "zamboanga",
}

// ph country suffixes stripped during normalization, beyond the generic
// trailing "city".
var adminSuffixes = []string{
	" city",
	" municipality",
	" province",
	" philippines",
}

// Gazetteer coordinates for the capital default used when resolution
// fails entirely.
const defaultAirportCode = "MNL"
