// Package rates resolves a home's census division into electricity, gas,
// propane and fuel-oil unit prices and converts energy quantities into
// dollar costs.
package rates

import (
	"strings"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/pkg/formulas"
)

// BlendGasShare is the gas portion of the blended fuel cost policy. The
// remaining share is priced as electricity regardless of the home's actual
// heating fuel, a known simplification carried from the benchmark data.
const BlendGasShare = 0.6

// RateSet is the resolved per-request rate view, read-only after creation.
type RateSet struct {
	Electricity float64 `json:"electricity"`
	Gas         float64 `json:"gas"`
	Propane     float64 `json:"propane"`
	FuelOil     float64 `json:"fuel_oil"`
	Region      string  `json:"region"`
	Division    string  `json:"division"`
}

// UtilityRates resolves and serves regional energy prices. Safe for
// concurrent use; it only reads static tables and the per-request overrides
// it was constructed with.
type UtilityRates struct {
	division    string
	region      string
	customRates map[string]float64
}

// Resolve builds a UtilityRates for a census division string. The division
// is substring-matched into a region; sub-division strings select finer
// rates inside the region's table. Unknown divisions fall back to national
// averages. customRates overrides individual fuels by key
// ("elec", "gas", "propane", "fuel_oil").
func Resolve(division string, customRates map[string]float64) *UtilityRates {
	r := &UtilityRates{
		division:    division,
		customRates: customRates,
	}
	if r.division == "" {
		r.division = "default"
	}
	r.region = classifyRegion(division)
	return r
}

// classifyRegion maps a free-form division string to a census region.
func classifyRegion(division string) string {
	switch {
	case division == "":
		return "default"
	case strings.Contains(division, "Northeast"),
		strings.Contains(division, "New England"),
		strings.Contains(division, "Middle Atlantic"):
		return "Northeast"
	case strings.Contains(division, "Midwest"),
		strings.Contains(division, "North Central"):
		return "Midwest"
	case strings.Contains(division, "South"):
		return "South"
	case strings.Contains(division, "West"),
		strings.Contains(division, "Mountain"),
		strings.Contains(division, "Pacific"):
		return "West"
	default:
		return "default"
	}
}

// Region returns the resolved census region.
func (r *UtilityRates) Region() string { return r.region }

// Division returns the original division string.
func (r *UtilityRates) Division() string { return r.division }

// ElectricityRate returns $/kWh, custom override first.
func (r *UtilityRates) ElectricityRate() float64 {
	if v, ok := r.customRates["elec"]; ok {
		return v
	}
	return lookupDivision(electricityRates, r.region, r.division, nationalElectricityRate)
}

// GasRate returns $/therm, custom override first.
func (r *UtilityRates) GasRate() float64 {
	if v, ok := r.customRates["gas"]; ok {
		return v
	}
	return lookupDivision(gasRates, r.region, r.division, nationalGasRate)
}

// PropaneRate returns $/gallon, custom override first.
func (r *UtilityRates) PropaneRate() float64 {
	if v, ok := r.customRates["propane"]; ok {
		return v
	}
	if v, ok := propaneRates[r.region]; ok {
		return v
	}
	return nationalPropaneRate
}

// FuelOilRate returns $/gallon, custom override first.
func (r *UtilityRates) FuelOilRate() float64 {
	if v, ok := r.customRates["fuel_oil"]; ok {
		return v
	}
	if v, ok := fuelOilRates[r.region]; ok {
		return v
	}
	return nationalFuelOilRate
}

func lookupDivision(table map[string]map[string]float64, region, division string, national float64) float64 {
	regionRates, ok := table[region]
	if !ok {
		return national
	}
	if v, ok := regionRates[division]; ok {
		return v
	}
	if v, ok := regionRates["default"]; ok {
		return v
	}
	return national
}

// KBTUToDollars converts an energy quantity into its annual dollar cost for
// the given fuel type. The blended fuel prices 60% of the energy as gas and
// 40% as electricity. Always finite and non-negative for non-negative kbtu.
func (r *UtilityRates) KBTUToDollars(kbtu float64, fuelType string) float64 {
	switch fuelType {
	case domain.FuelElectric:
		return formulas.KBTUToKWHValue(kbtu) * r.ElectricityRate()
	case domain.FuelGas:
		return formulas.KBTUToTherms(kbtu) * r.GasRate()
	case domain.FuelPropane:
		return kbtu / formulas.PropaneKBTUPerGallon * r.PropaneRate()
	case domain.FuelOil:
		return kbtu / formulas.FuelOilKBTUPerGallon * r.FuelOilRate()
	default: // blended
		gasCost := r.KBTUToDollars(kbtu*BlendGasShare, domain.FuelGas)
		elecCost := r.KBTUToDollars(kbtu*(1-BlendGasShare), domain.FuelElectric)
		return gasCost + elecCost
	}
}

// All returns the resolved rate set for serialization.
func (r *UtilityRates) All() RateSet {
	return RateSet{
		Electricity: r.ElectricityRate(),
		Gas:         r.GasRate(),
		Propane:     r.PropaneRate(),
		FuelOil:     r.FuelOilRate(),
		Region:      r.region,
		Division:    r.division,
	}
}
