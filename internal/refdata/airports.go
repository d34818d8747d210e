package refdata

import "lakbay/internal/domain/models"

// airports is the embedded registry of Philippine airfields relevant to
// domestic trip planning. Inactive entries carry the active airports a
// traveler actually flies into instead.
var airports = []models.Airport{
	// Luzon gateways
	{Code: "MNL", Name: "Ninoy Aquino International", City: "Manila", Coordinates: models.Coordinates{Lat: 14.5086, Lng: 121.0194}, Status: models.StatusActive, Class: models.ClassInternational, Aliases: []string{"naia", "metro manila", "pasay", "makati", "quezon city"}},
	{Code: "CRK", Name: "Clark International", City: "Angeles", Coordinates: models.Coordinates{Lat: 15.1859, Lng: 120.5600}, Status: models.StatusActive, Class: models.ClassInternational, Aliases: []string{"clark", "pampanga"}},
	{Code: "SFS", Name: "Subic Bay International", City: "Olongapo", Coordinates: models.Coordinates{Lat: 14.7944, Lng: 120.2711}, Status: models.StatusLimited, Class: models.ClassInternational, Aliases: []string{"subic"}},
	{Code: "SGL", Name: "Sangley Point", City: "Cavite", Coordinates: models.Coordinates{Lat: 14.4954, Lng: 120.9034}, Status: models.StatusMilitary, Class: models.ClassDomestic},
	{Code: "LAO", Name: "Laoag International", City: "Laoag", Coordinates: models.Coordinates{Lat: 18.1781, Lng: 120.5316}, Status: models.StatusActive, Class: models.ClassInternational},
	{Code: "TUG", Name: "Tuguegarao", City: "Tuguegarao", Coordinates: models.Coordinates{Lat: 17.6434, Lng: 121.7331}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "CYZ", Name: "Cauayan", City: "Cauayan", Coordinates: models.Coordinates{Lat: 16.9299, Lng: 121.7530}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "BSO", Name: "Basco", City: "Basco", Coordinates: models.Coordinates{Lat: 20.4513, Lng: 121.9798}, Status: models.StatusActive, Class: models.ClassDomestic, Aliases: []string{"batanes"}},

	// Baguio's Loakan field lost commercial service; travelers fly into
	// Manila or Clark and take the bus up.
	{Code: "BAG", Name: "Loakan", City: "Baguio", Coordinates: models.Coordinates{Lat: 16.3751, Lng: 120.6198}, Status: models.StatusInactive, Class: models.ClassDomestic, Alternatives: []string{"MNL", "CRK"}},
	{Code: "SFE", Name: "San Fernando", City: "San Fernando", Coordinates: models.Coordinates{Lat: 16.5956, Lng: 120.3032}, Status: models.StatusLimited, Class: models.ClassDomestic, Aliases: []string{"la union"}},

	// Southern Luzon and Bicol
	{Code: "LGP", Name: "Legazpi", City: "Legazpi", Coordinates: models.Coordinates{Lat: 13.1575, Lng: 123.7350}, Status: models.StatusInactive, Class: models.ClassDomestic, Alternatives: []string{"DRP"}},
	{Code: "DRP", Name: "Bicol International", City: "Daraga", Coordinates: models.Coordinates{Lat: 13.1240, Lng: 123.7310}, Status: models.StatusActive, Class: models.ClassInternational, Aliases: []string{"legazpi", "albay"}},
	{Code: "WNP", Name: "Naga", City: "Naga", Coordinates: models.Coordinates{Lat: 13.5848, Lng: 123.2705}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "VRC", Name: "Virac", City: "Virac", Coordinates: models.Coordinates{Lat: 13.5764, Lng: 124.2056}, Status: models.StatusActive, Class: models.ClassDomestic, Aliases: []string{"catanduanes"}},
	{Code: "MBT", Name: "Moises R. Espinosa", City: "Masbate", Coordinates: models.Coordinates{Lat: 12.3694, Lng: 123.6290}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "SJI", Name: "San Jose", City: "San Jose", Coordinates: models.Coordinates{Lat: 12.3615, Lng: 121.0473}, Status: models.StatusLimited, Class: models.ClassDomestic, Aliases: []string{"occidental mindoro"}},
	{Code: "MRQ", Name: "Marinduque", City: "Gasan", Coordinates: models.Coordinates{Lat: 13.3610, Lng: 121.8260}, Status: models.StatusLimited, Class: models.ClassDomestic, Aliases: []string{"marinduque", "boac"}},

	// Palawan
	{Code: "PPS", Name: "Puerto Princesa International", City: "Puerto Princesa", Coordinates: models.Coordinates{Lat: 9.7421, Lng: 118.7585}, Status: models.StatusActive, Class: models.ClassInternational},
	{Code: "USU", Name: "Francisco B. Reyes", City: "Coron", Coordinates: models.Coordinates{Lat: 12.1215, Lng: 120.1000}, Status: models.StatusActive, Class: models.ClassDomestic, Aliases: []string{"busuanga"}},
	{Code: "ENI", Name: "El Nido", City: "El Nido", Coordinates: models.Coordinates{Lat: 11.2025, Lng: 119.4167}, Status: models.StatusPrivate, Class: models.ClassDomestic},

	// Visayas
	{Code: "CEB", Name: "Mactan-Cebu International", City: "Cebu", Coordinates: models.Coordinates{Lat: 10.3075, Lng: 123.9789}, Status: models.StatusActive, Class: models.ClassInternational, Aliases: []string{"mactan", "lapu-lapu", "mandaue"}},
	{Code: "ILO", Name: "Iloilo International", City: "Iloilo", Coordinates: models.Coordinates{Lat: 10.8330, Lng: 122.4933}, Status: models.StatusActive, Class: models.ClassInternational},
	{Code: "BCD", Name: "Bacolod-Silay", City: "Bacolod", Coordinates: models.Coordinates{Lat: 10.7764, Lng: 123.0146}, Status: models.StatusActive, Class: models.ClassInternational, Aliases: []string{"silay"}},
	{Code: "KLO", Name: "Kalibo International", City: "Kalibo", Coordinates: models.Coordinates{Lat: 11.6794, Lng: 122.3761}, Status: models.StatusActive, Class: models.ClassInternational},
	{Code: "MPH", Name: "Godofredo P. Ramos", City: "Malay", Coordinates: models.Coordinates{Lat: 11.9245, Lng: 121.9541}, Status: models.StatusActive, Class: models.ClassDomestic, Aliases: []string{"caticlan", "boracay"}},
	{Code: "RXS", Name: "Roxas", City: "Roxas", Coordinates: models.Coordinates{Lat: 11.5977, Lng: 122.7519}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "EUQ", Name: "Evelio Javier", City: "San Jose de Buenavista", Coordinates: models.Coordinates{Lat: 10.7660, Lng: 121.9330}, Status: models.StatusLimited, Class: models.ClassDomestic, Aliases: []string{"antique"}},
	{Code: "TAG", Name: "Bohol-Panglao International", City: "Panglao", Coordinates: models.Coordinates{Lat: 9.5733, Lng: 123.7717}, Status: models.StatusActive, Class: models.ClassInternational, Aliases: []string{"tagbilaran", "bohol"}},
	{Code: "DGT", Name: "Sibulan", City: "Dumaguete", Coordinates: models.Coordinates{Lat: 9.3337, Lng: 123.3005}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "TAC", Name: "Daniel Z. Romualdez", City: "Tacloban", Coordinates: models.Coordinates{Lat: 11.2276, Lng: 125.0278}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "OMC", Name: "Ormoc", City: "Ormoc", Coordinates: models.Coordinates{Lat: 11.0579, Lng: 124.5653}, Status: models.StatusLimited, Class: models.ClassDomestic},
	{Code: "CYP", Name: "Calbayog", City: "Calbayog", Coordinates: models.Coordinates{Lat: 12.0727, Lng: 124.5450}, Status: models.StatusLimited, Class: models.ClassDomestic},
	{Code: "CRM", Name: "Catarman National", City: "Catarman", Coordinates: models.Coordinates{Lat: 12.5024, Lng: 124.6357}, Status: models.StatusActive, Class: models.ClassDomestic},

	// Mindanao
	{Code: "DVO", Name: "Francisco Bangoy International", City: "Davao", Coordinates: models.Coordinates{Lat: 7.1254, Lng: 125.6456}, Status: models.StatusActive, Class: models.ClassInternational},
	{Code: "CGY", Name: "Laguindingan", City: "Cagayan de Oro", Coordinates: models.Coordinates{Lat: 8.6125, Lng: 124.4561}, Status: models.StatusActive, Class: models.ClassDomestic, Aliases: []string{"cdo", "laguindingan"}},
	{Code: "ZAM", Name: "Zamboanga International", City: "Zamboanga", Coordinates: models.Coordinates{Lat: 6.9224, Lng: 122.0596}, Status: models.StatusActive, Class: models.ClassInternational},
	{Code: "GES", Name: "General Santos International", City: "General Santos", Coordinates: models.Coordinates{Lat: 6.0580, Lng: 125.0965}, Status: models.StatusActive, Class: models.ClassInternational, Aliases: []string{"gensan"}},
	{Code: "BXU", Name: "Bancasi", City: "Butuan", Coordinates: models.Coordinates{Lat: 8.9515, Lng: 125.4788}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "SUG", Name: "Surigao", City: "Surigao", Coordinates: models.Coordinates{Lat: 9.7558, Lng: 125.4810}, Status: models.StatusLimited, Class: models.ClassDomestic},
	{Code: "IAO", Name: "Sayak", City: "Del Carmen", Coordinates: models.Coordinates{Lat: 9.8591, Lng: 126.0140}, Status: models.StatusActive, Class: models.ClassDomestic, Aliases: []string{"siargao", "general luna"}},
	{Code: "TDG", Name: "Tandag", City: "Tandag", Coordinates: models.Coordinates{Lat: 9.0721, Lng: 126.1709}, Status: models.StatusLimited, Class: models.ClassDomestic},
	{Code: "CGM", Name: "Camiguin", City: "Mambajao", Coordinates: models.Coordinates{Lat: 9.2535, Lng: 124.7071}, Status: models.StatusLimited, Class: models.ClassDomestic, Aliases: []string{"camiguin"}},
	{Code: "OZC", Name: "Labo", City: "Ozamiz", Coordinates: models.Coordinates{Lat: 8.1785, Lng: 123.8418}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "DPL", Name: "Dipolog", City: "Dipolog", Coordinates: models.Coordinates{Lat: 8.6020, Lng: 123.3419}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "PAG", Name: "Pagadian", City: "Pagadian", Coordinates: models.Coordinates{Lat: 7.8307, Lng: 123.4611}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "CBO", Name: "Awang", City: "Cotabato", Coordinates: models.Coordinates{Lat: 7.1652, Lng: 124.2096}, Status: models.StatusActive, Class: models.ClassDomestic},
	{Code: "JOL", Name: "Jolo", City: "Jolo", Coordinates: models.Coordinates{Lat: 6.0537, Lng: 121.0110}, Status: models.StatusLimited, Class: models.ClassDomestic},
	{Code: "TWT", Name: "Sanga-Sanga", City: "Bongao", Coordinates: models.Coordinates{Lat: 5.0470, Lng: 119.7430}, Status: models.StatusActive, Class: models.ClassDomestic, Aliases: []string{"tawi-tawi"}},
}
