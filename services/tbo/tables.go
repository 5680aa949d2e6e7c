package tbo

// Tables holds the static resolution data the TBO path depends on. It is
// loaded once at process start and injected into the service.
type Tables struct {
	// RegionToCity maps a Ratehawk region id to a TBO city code.
	RegionToCity map[string]string
	// CityHotelCodes maps a TBO city code to its curated hotel-code list.
	CityHotelCodes map[string][]string
	// FallbackHotelCodes is used when no codes can be resolved for a city.
	FallbackHotelCodes []string
}

var uaeHotelCodes = []string{
	"1402689", "1405349", "1405355", "1407362", "1413911",
	"1414353", "1415021", "1415135", "1415356", "1415518",
}

// DefaultTables returns the built-in resolution data.
func DefaultTables() Tables {
	return Tables{
		RegionToCity: map[string]string{
			"965847972": "130443",
			"966183009": "130444",
			"100765":    "100765", // Abu Dhabi
			"100687":    "100687", // Ajman
			"100812":    "100812", // Al Agah
			"100692":    "100692", // Al Ain
			"266001":    "266001", // Al Madam
			"100381":    "100381", // Al Marjan Islands
			"100492":    "100492", // Al Mirfa
			"368181":    "368181", // Al Ruwais
			"364445":    "364445", // Corniche Beach
			"116319":    "116319", // Deira
			"149287":    "149287", // Abbottabad
		},
		CityHotelCodes: map[string][]string{
			"100765": uaeHotelCodes,
			"100687": uaeHotelCodes,
			"100812": uaeHotelCodes,
			"100692": uaeHotelCodes,
			"266001": uaeHotelCodes,
			"100381": uaeHotelCodes,
			"100492": uaeHotelCodes,
			"368181": uaeHotelCodes,
			"364445": uaeHotelCodes,
			"116319": uaeHotelCodes,
			"149287": {
				"1545134", "1673692", "1673703", "1673856", "1796999",
				"1545134", "1673692", "1673703", "1673856", "1796999",
			},
		},
		FallbackHotelCodes: []string{
			"1402689", "1405349", "1405355", "1407362", "1413911",
			"1414353", "1415021", "1415135", "1415356", "1415518",
			"1415792", "1416419", "1416455", "1416461", "1416726",
			"1440549", "1440646", "1440710", "1440886", "1440924",
		},
	}
}
