package savings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
)

func northeastCalculator() *Calculator {
	return New(rates.Resolve("New England", nil), 5500, 800)
}

func TestInsulationScenario(t *testing.T) {
	// R-19 to R-49 attic upgrade, 1500 sqft, 5500 HDD:
	// 1500*5500/19.1 - 1500*5500/49.1 ≈ 264,044 kBTU/year.
	calc := northeastCalculator()
	result := calc.Insulation(19, 49, 1500, "attic", domain.FuelGas)

	want := 1500*5500/19.1 - 1500*5500/49.1
	assert.InEpsilon(t, want, result.AnnualKBTU, 0.01)
	assert.InEpsilon(t, 264044, result.AnnualKBTU, 0.01)

	// Priced at the Northeast gas rate ($1.80/therm).
	assert.InEpsilon(t, result.AnnualKBTU*0.01*1.80, result.AnnualDollars, 1e-9)
	assert.Equal(t, 50, result.LifetimeYears)
}

func TestInsulationNoImprovementSentinel(t *testing.T) {
	calc := northeastCalculator()

	assert.True(t, calc.Insulation(19, 19, 1500, "attic", domain.FuelGas).IsZero())
	assert.True(t, calc.Insulation(49, 19, 1500, "attic", domain.FuelGas).IsZero())
}

func TestInsulationMonotonicity(t *testing.T) {
	// Widening the R-value gap never decreases savings.
	calc := northeastCalculator()
	prev := 0.0
	for _, newR := range []float64{20, 30, 38, 49, 60} {
		got := calc.Insulation(11, newR, 1000, "attic", domain.FuelGas).AnnualKBTU
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestHVACUpgrade(t *testing.T) {
	calc := northeastCalculator()

	// 78% to 95% AFUE on a 45,000 kBTU load.
	result := calc.HVACUpgrade(78, 95, 45000, domain.FuelGas)
	want := 45000/0.78 - 45000/0.95
	assert.InEpsilon(t, want, result.AnnualKBTU, 1e-9)
	assert.Equal(t, 20, result.LifetimeYears)

	// Fractional inputs are equivalent to percentages.
	frac := calc.HVACUpgrade(0.78, 0.95, 45000, domain.FuelGas)
	assert.InDelta(t, result.AnnualKBTU, frac.AnnualKBTU, 1e-6)

	// Sentinels.
	assert.True(t, calc.HVACUpgrade(95, 95, 45000, domain.FuelGas).IsZero())
	assert.True(t, calc.HVACUpgrade(0, 95, 45000, domain.FuelGas).IsZero())
}

func TestCoolingUpgrade(t *testing.T) {
	calc := northeastCalculator()

	result := calc.CoolingUpgrade(10, 18, 12000)
	wantKWH := 12000*1000/10.0 - 12000*1000/18.0
	assert.InEpsilon(t, wantKWH, result.AnnualKWH, 1e-9)
	assert.InEpsilon(t, wantKWH*0.22, result.AnnualDollars, 1e-9)
	assert.Zero(t, result.AnnualTherms)
	assert.Equal(t, 15, result.LifetimeYears)

	assert.True(t, calc.CoolingUpgrade(18, 18, 12000).IsZero())
}

func TestWindowUpgrade(t *testing.T) {
	calc := New(rates.Resolve("South Atlantic", nil), 3000, 2000)

	result := calc.WindowUpgrade(1.2, 0.30, 300, 0, 0)

	heating := (1.2 - 0.30) * 300 * 3000 * 0.024
	cooling := (1.2 - 0.30) * 300 * 2000 * 0.018
	assert.InEpsilon(t, heating+cooling, result.AnnualKBTU, 1e-9)
	assert.Equal(t, 25, result.LifetimeYears)
	assert.Greater(t, result.AnnualDollars, 0.0)

	// U-factor that does not drop is not an improvement.
	assert.True(t, calc.WindowUpgrade(0.30, 0.30, 300, 0, 0).IsZero())
	assert.True(t, calc.WindowUpgrade(0.30, 1.2, 300, 0, 0).IsZero())
}

func TestApplianceScenario(t *testing.T) {
	calc := northeastCalculator()

	// 700 -> 350 kWh/year fridge swap saves exactly 350 kWh priced at the
	// electricity rate.
	result := calc.Appliance(700, 350)
	assert.Equal(t, 350.0, result.AnnualKWH)
	assert.InEpsilon(t, 350*0.22, result.AnnualDollars, 1e-9)

	// A worse appliance clamps to zero.
	assert.True(t, calc.Appliance(350, 700).IsZero())
}

func TestWaterHeater(t *testing.T) {
	calc := northeastCalculator()

	result := calc.WaterHeater(0.90, 2.50, 12000, domain.FuelElectric)
	want := 12000/0.90 - 12000/2.50
	assert.InEpsilon(t, want, result.AnnualKBTU, 1e-9)
	assert.Equal(t, 12, result.LifetimeYears)
	assert.Greater(t, result.AnnualDollars, 0.0)

	assert.True(t, calc.WaterHeater(0.90, 0.90, 12000, domain.FuelElectric).IsZero())
}

func TestEfficiencyNormalizationBoundary(t *testing.T) {
	calc := northeastCalculator()

	// A heat-pump water heater EF of 2.50 is a COP-style factor, not a
	// percentage, and must not be divided by 100.
	ef := calc.WaterHeater(0.90, 2.50, 12000, domain.FuelElectric)
	assert.False(t, ef.IsZero())
	assert.InEpsilon(t, 12000/0.90-12000/2.50, ef.AnnualKBTU, 1e-9)

	// AFUE 95 and fraction 0.95 stay interchangeable.
	pct := calc.HVACUpgrade(78, 95, 45000, domain.FuelGas)
	frac := calc.HVACUpgrade(0.78, 0.95, 45000, domain.FuelGas)
	assert.InDelta(t, pct.AnnualKBTU, frac.AnnualKBTU, 1e-6)
}

func TestSolar(t *testing.T) {
	calc := New(rates.Resolve("South Atlantic", nil), 3000, 2000)

	// 6 kW, south facing, 10% shading in the South region:
	// 6 * 1600 * 1.0 * 0.9 * 0.85 kWh.
	result := calc.Solar(6, "south", 0.9)
	assert.InEpsilon(t, 6*1600*0.9*0.85, result.AnnualKWH, 1e-9)
	assert.Equal(t, 25, result.LifetimeYears)

	// North-facing roofs derate to 60%.
	north := calc.Solar(6, "north", 0.9)
	assert.InEpsilon(t, result.AnnualKWH*0.60, north.AnnualKWH, 1e-9)
}

func TestPaybackROIScenario(t *testing.T) {
	calc := northeastCalculator()

	fin := calc.PaybackROI(2500, 500, 500)
	assert.InDelta(t, 4.0, fin.PaybackYears, 1e-9)
	assert.InDelta(t, 150.0, fin.ROIPercent, 1e-9)
}

func TestPaybackSentinel(t *testing.T) {
	calc := northeastCalculator()

	fin := calc.PaybackROI(2500, 0, 0)
	require.True(t, math.IsInf(fin.PaybackYears, 1))
	assert.Equal(t, 0.0, fin.ROIPercent)
}

func TestLifetime(t *testing.T) {
	calc := northeastCalculator()

	lifetime, npv := calc.Lifetime(500, 20)
	assert.Equal(t, 10000.0, lifetime)
	assert.Greater(t, npv, 0.0)
	assert.Less(t, npv, lifetime)

	lifetime, npv = calc.Lifetime(0, 20)
	assert.Zero(t, lifetime)
	assert.Zero(t, npv)
}

func TestNonNegativity(t *testing.T) {
	calc := northeastCalculator()

	results := []domain.SavingsResult{
		calc.Insulation(5, 49, 800, "wall", domain.FuelOil),
		calc.HVACUpgrade(60, 95, 80000, domain.FuelPropane),
		calc.CoolingUpgrade(8, 18, 25000),
		calc.WindowUpgrade(1.1, 0.3, 250, 0, 0),
		calc.Appliance(2628, 394),
		calc.WaterHeater(0.60, 0.95, 15000, domain.FuelGas),
		calc.Solar(8, "east", 1.0),
	}
	for _, r := range results {
		assert.GreaterOrEqual(t, r.AnnualKBTU, 0.0)
		assert.GreaterOrEqual(t, r.AnnualKWH, 0.0)
		assert.GreaterOrEqual(t, r.AnnualTherms, 0.0)
		assert.GreaterOrEqual(t, r.AnnualDollars, 0.0)
	}
}

func TestDefaultClimate(t *testing.T) {
	calc := New(nil, 0, 0)
	// National defaults keep the calculator total.
	result := calc.Insulation(19, 49, 1500, "attic", domain.FuelGas)
	assert.Greater(t, result.AnnualKBTU, 0.0)
}
