package rules

import (
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
)

// WaterHeating evaluates heat pump water heater conversion (electric
// resistance homes) and tankless conversion (gas/propane homes).
func WaterHeating(ctx *Context) []domain.Candidate {
	var out []domain.Candidate

	water := ctx.Usage.Water
	fuelCode := ctx.Profile.WaterHeatingFuelCode()

	switch fuelCode {
	case 1: // electric resistance
		if water <= hpwhWaterTrigger {
			return nil
		}
		s := ctx.Calc.WaterHeater(hpwhOldEF, hpwhNewEF, water, domain.FuelElectric)
		if !material(s, waterMinDollars) {
			return nil
		}
		c := finish(ctx, domain.Candidate{
			Category:          domain.CategoryWater,
			Title:             "Heat Pump Water Heater",
			Description:       "Electric resistance water heating pays full price for every BTU. A heat pump unit moves heat instead of generating it, cutting water heating energy by more than half.",
			CurrentCondition:  "Electric resistance water heater (EF ~0.90)",
			RecommendedAction: "Replace with an ENERGY STAR heat pump water heater (EF 2.5+)",
			CostEstimate:      hpwhCost,
			Savings:           s,
		}, 0)
		c.Priority = priorityByPayback(c.Financial.PaybackYears, 5)
		out = append(out, c)

	case 2, 3: // gas or propane
		if water <= tanklessWaterTrigger {
			return nil
		}
		fuel := domain.FuelGas
		condition := "Gas storage water heater (EF ~0.60)"
		if fuelCode == 3 {
			fuel = domain.FuelPropane
			condition = "Propane storage water heater (EF ~0.60)"
		}
		s := ctx.Calc.WaterHeater(tanklessOldEF, tanklessNewEF, water, fuel)
		if !material(s, waterMinDollars) {
			return nil
		}
		c := finish(ctx, domain.Candidate{
			Category:          domain.CategoryWater,
			Title:             "Tankless Water Heater",
			Description:       "A storage tank loses heat around the clock. A condensing tankless unit fires only on demand, raising the energy factor from ~0.60 to 0.95.",
			CurrentCondition:  condition,
			RecommendedAction: "Replace with a condensing tankless unit (EF 0.95)",
			CostEstimate:      tanklessCost,
			Savings:           s,
		}, 0)
		c.Priority = priorityByPayback(c.Financial.PaybackYears, 5)
		out = append(out, c)
	}

	return out
}
