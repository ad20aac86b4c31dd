package rates

// Regional utility rates, 2020-2024 EIA averages. Static data loaded once;
// never mutated at runtime.

// electricityRates in $/kWh, by census region then sub-division.
var electricityRates = map[string]map[string]float64{
	"Northeast": {
		"New England":     0.22,
		"Middle Atlantic": 0.16,
		"default":         0.19,
	},
	"Midwest": {
		"East North Central": 0.13,
		"West North Central": 0.12,
		"default":            0.125,
	},
	"South": {
		"South Atlantic":     0.12,
		"East South Central": 0.11,
		"West South Central": 0.11,
		"default":            0.113,
	},
	"West": {
		"Mountain": 0.12,
		"Pacific":  0.18,
		"default":  0.15,
	},
}

// nationalElectricityRate is the fallback for unmatched regions.
const nationalElectricityRate = 0.14

// gasRates in $/therm.
var gasRates = map[string]map[string]float64{
	"Northeast": {
		"New England":     1.80,
		"Middle Atlantic": 1.20,
		"default":         1.50,
	},
	"Midwest": {
		"East North Central": 1.00,
		"West North Central": 0.90,
		"default":            0.95,
	},
	"South": {
		"South Atlantic":     1.10,
		"East South Central": 1.00,
		"West South Central": 0.85,
		"default":            0.98,
	},
	"West": {
		"Mountain": 0.95,
		"Pacific":  1.40,
		"default":  1.18,
	},
}

const nationalGasRate = 1.20

// propaneRates in $/gallon, region-level only.
var propaneRates = map[string]float64{
	"Northeast": 2.80,
	"Midwest":   2.20,
	"South":     2.10,
	"West":      2.50,
}

const nationalPropaneRate = 2.40

// fuelOilRates in $/gallon, region-level only.
var fuelOilRates = map[string]float64{
	"Northeast": 3.20,
	"Midwest":   3.00,
	"South":     3.10,
	"West":      3.30,
}

const nationalFuelOilRate = 3.15
