// Package savings implements the physics-based models that turn a proposed
// efficiency measure into annual energy and dollar savings. Every method is
// a pure function of its numeric inputs, the calculator's climate context
// and the resolved utility rates; degenerate inputs produce the zero-savings
// sentinel, never an error.
package savings

import (
	"strings"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/pkg/formulas"
)

// equipmentLifespans in years, by measure type.
var equipmentLifespans = map[string]int{
	"furnace":      20,
	"boiler":       25,
	"heat_pump":    15,
	"ac":           15,
	"water_heater": 12,
	"refrigerator": 15,
	"dishwasher":   12,
	"washer":       12,
	"dryer":        12,
	"windows":      25,
	"insulation":   50,
	"solar_pv":     25,
}

// Lifespan returns the expected lifetime of a measure type, defaulting to
// 20 years for unknown equipment.
func Lifespan(equipment string) int {
	if years, ok := equipmentLifespans[equipment]; ok {
		return years
	}
	return 20
}

// Window degree-day coefficients, kBTU saved per sqft per degree-day per
// U-factor unit. Empirical; the cooling side folds in typical solar gain.
const (
	windowHeatingCoeff = 0.024
	windowCoolingCoeff = 0.018
)

// windowCoolingElectricShare is the share of total window kWh priced as
// electricity, a fixed policy reflecting mixed heating/cooling fuel use.
const windowCoolingElectricShare = 0.4

// solarSystemEfficiency accounts for inverter and wiring losses.
const solarSystemEfficiency = 0.85

// sunHoursByRegion is annual production per installed kW before derating.
var sunHoursByRegion = map[string]float64{
	"Northeast": 1200,
	"Midwest":   1400,
	"South":     1600,
	"West":      1800,
}

const defaultSunHours = 1500

// orientationFactors derate solar production by roof facing.
var orientationFactors = map[string]float64{
	"south": 1.00,
	"east":  0.85,
	"west":  0.85,
	"north": 0.60,
}

// Calculator computes measure savings against a regional climate context.
type Calculator struct {
	rates *rates.UtilityRates
	hdd   float64
	cdd   float64
}

// New creates a calculator for the given rates and degree-day climate.
// Zero degree-day inputs fall back to national-typical values.
func New(r *rates.UtilityRates, hdd, cdd float64) *Calculator {
	if r == nil {
		r = rates.Resolve("", nil)
	}
	if hdd <= 0 {
		hdd = 5500
	}
	if cdd <= 0 {
		cdd = 800
	}
	return &Calculator{rates: r, hdd: hdd, cdd: cdd}
}

// Rates exposes the calculator's rate set.
func (c *Calculator) Rates() *rates.UtilityRates { return c.rates }

// zero is the no-improvement sentinel.
func zero() domain.SavingsResult { return domain.SavingsResult{} }

// clampResult floors every component at zero and attaches the lifetime.
func (c *Calculator) clampResult(kbtu, kwh, therms, dollars float64, lifetime int) domain.SavingsResult {
	return domain.SavingsResult{
		AnnualKBTU:    max0(kbtu),
		AnnualKWH:     max0(kwh),
		AnnualTherms:  max0(therms),
		AnnualDollars: max0(dollars),
		LifetimeYears: lifetime,
	}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Insulation calculates the savings of raising a surface from currentR to
// newR over sqft of area. The heat-loss model is Q = area × HDD / R with the
// temperature delta and time baked into the degree days; the +0.1 in the
// divisor guards R=0 inputs.
func (c *Calculator) Insulation(currentR, newR, sqft float64, surfaceType, heatingFuel string) domain.SavingsResult {
	if currentR >= newR {
		return zero()
	}

	heatLossOld := sqft * c.hdd / (currentR + 0.1)
	heatLossNew := sqft * c.hdd / (newR + 0.1)
	kbtu := heatLossOld - heatLossNew

	kwh := formulas.KBTUToKWHValue(kbtu)
	therms := formulas.KBTUToTherms(kbtu)
	dollars := c.rates.KBTUToDollars(kbtu, heatingFuel)

	return c.clampResult(kbtu, kwh, therms, dollars, Lifespan("insulation"))
}

// HVACUpgrade calculates heating equipment replacement savings. Efficiency
// accepts AFUE percentages (>1) or fractions; energy input = load / eff.
func (c *Calculator) HVACUpgrade(oldEff, newEff, heatingLoadKBTU float64, fuelType string) domain.SavingsResult {
	if oldEff >= newEff || oldEff <= 0 {
		return zero()
	}

	oldFrac := normalizeEfficiency(oldEff)
	newFrac := normalizeEfficiency(newEff)

	kbtu := heatingLoadKBTU/oldFrac - heatingLoadKBTU/newFrac
	kwh := formulas.KBTUToKWHValue(kbtu)
	therms := formulas.KBTUToTherms(kbtu)
	dollars := c.rates.KBTUToDollars(kbtu, fuelType)

	equipment := "heat_pump"
	if fuelType == domain.FuelGas {
		equipment = "furnace"
	}
	return c.clampResult(kbtu, kwh, therms, dollars, Lifespan(equipment))
}

// CoolingUpgrade calculates AC replacement savings from a SEER improvement.
// SEER relates BTU of cooling output to Wh of electrical input, so the load
// is converted to BTU first; cooling is always priced as electricity.
func (c *Calculator) CoolingUpgrade(oldSEER, newSEER, coolingLoadKBTU float64) domain.SavingsResult {
	if oldSEER >= newSEER || oldSEER <= 0 {
		return zero()
	}

	oldInputKWH := coolingLoadKBTU * 1000 / oldSEER
	newInputKWH := coolingLoadKBTU * 1000 / newSEER

	kwh := oldInputKWH - newInputKWH
	kbtu := formulas.KWHToKBTU(kwh)
	dollars := kwh * c.rates.ElectricityRate()

	return c.clampResult(kbtu, kwh, 0, dollars, Lifespan("ac"))
}

// WindowUpgrade calculates window replacement savings from a U-factor drop
// (lower U is better). Heating and cooling seasons use separate empirical
// degree-day coefficients; dollars price the heating side as gas plus 40%
// of the converted kWh as electricity.
func (c *Calculator) WindowUpgrade(oldU, newU, windowSqft float64, hdd, cdd float64) domain.SavingsResult {
	if oldU <= newU || oldU <= 0 {
		return zero()
	}
	if hdd <= 0 {
		hdd = c.hdd
	}
	if cdd <= 0 {
		cdd = c.cdd
	}

	heatingKBTU := (oldU - newU) * windowSqft * hdd * windowHeatingCoeff
	coolingKBTU := (oldU - newU) * windowSqft * cdd * windowCoolingCoeff

	totalKBTU := heatingKBTU + coolingKBTU
	kwh := formulas.KBTUToKWHValue(totalKBTU)

	heatingDollars := c.rates.KBTUToDollars(heatingKBTU, domain.FuelGas)
	coolingDollars := kwh * windowCoolingElectricShare * c.rates.ElectricityRate()

	return c.clampResult(totalKBTU, kwh, formulas.KBTUToTherms(heatingKBTU),
		heatingDollars+coolingDollars, Lifespan("windows"))
}

// Appliance calculates a straight kWh-for-kWh swap, priced as electricity.
func (c *Calculator) Appliance(oldKWHYear, newKWHYear float64) domain.SavingsResult {
	kwh := oldKWHYear - newKWHYear
	kbtu := formulas.KWHToKBTU(kwh)
	dollars := kwh * c.rates.ElectricityRate()

	return c.clampResult(kbtu, kwh, 0, dollars, Lifespan("refrigerator"))
}

// WaterHeater calculates water heater replacement savings using the same
// energy-factor division model as HVAC.
func (c *Calculator) WaterHeater(oldEF, newEF, waterLoadKBTU float64, fuelType string) domain.SavingsResult {
	if oldEF >= newEF || oldEF <= 0 {
		return zero()
	}

	oldFrac := normalizeEfficiency(oldEF)
	newFrac := normalizeEfficiency(newEF)

	kbtu := waterLoadKBTU/oldFrac - waterLoadKBTU/newFrac
	kwh := formulas.KBTUToKWHValue(kbtu)
	therms := formulas.KBTUToTherms(kbtu)
	dollars := c.rates.KBTUToDollars(kbtu, fuelType)

	return c.clampResult(kbtu, kwh, therms, dollars, Lifespan("water_heater"))
}

// Solar calculates PV production for a system size, roof orientation and
// shading factor (1.0 = no shading). Self-consumption is assumed: all
// production offsets grid electricity at the retail rate.
func (c *Calculator) Solar(systemSizeKW float64, orientation string, shadingFactor float64) domain.SavingsResult {
	sunHours := defaultSunHours
	if v, ok := sunHoursByRegion[c.rates.Region()]; ok {
		sunHours = int(v)
	}

	factor, ok := orientationFactors[strings.ToLower(orientation)]
	if !ok {
		factor = 1.0
	}

	kwh := systemSizeKW * float64(sunHours) * factor * shadingFactor * solarSystemEfficiency
	kbtu := formulas.KWHToKBTU(kwh)
	dollars := kwh * c.rates.ElectricityRate()

	return c.clampResult(kbtu, kwh, 0, dollars, Lifespan("solar_pv"))
}

// Lifetime returns the undiscounted lifetime savings and NPV for an annual
// dollar stream over the equipment lifetime. Non-positive annual savings
// short-circuit to zeros.
func (c *Calculator) Lifetime(annualDollars float64, lifetimeYears int) (lifetimeDollars, npv float64) {
	return formulas.LifetimeDollars(annualDollars, lifetimeYears),
		formulas.NPV(annualDollars, lifetimeYears, formulas.DefaultDiscountRate)
}

// PaybackROI returns the financial result for an upfront cost, annual
// savings stream and rebate amount.
func (c *Calculator) PaybackROI(upfrontCost, annualDollars, rebates float64) domain.FinancialResult {
	return domain.FinancialResult{
		PaybackYears: formulas.Payback(upfrontCost, annualDollars, rebates),
		ROIPercent:   formulas.ROIPercent(upfrontCost, annualDollars, rebates),
	}
}

// CO2Reduction converts saved kWh and therms into short tons of CO2.
func (c *Calculator) CO2Reduction(kwhSaved, thermsSaved float64) float64 {
	return formulas.CO2Tons(kwhSaved, thermsSaved)
}

// normalizeEfficiency accepts percentages (95) or fractions (0.95).
// Values up to 10 pass through unchanged so that COP-style energy factors
// (heat-pump water heaters run EF 2-4) are not mistaken for percentages.
func normalizeEfficiency(eff float64) float64 {
	if eff > 10 {
		return eff / 100.0
	}
	return eff
}
