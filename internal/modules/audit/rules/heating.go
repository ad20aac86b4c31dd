package rules

import (
	"fmt"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/savings"
)

// Heating evaluates heating equipment replacement and smart thermostat
// installation.
func Heating(ctx *Context) []domain.Candidate {
	var out []domain.Candidate

	heating := ctx.Usage.Heating

	// Equipment replacement: old equipment carrying a heavy load. The old
	// AFUE is estimated from age; efficiency degrades ~1.5 points/year off
	// a 95 baseline, floored at 60.
	if age := ctx.Profile.HeatingEquipmentAgeYears(); age > 15 && heating > furnaceHeatingTrigger {
		oldAFUE := 95 - float64(age)*1.5
		if oldAFUE < 60 {
			oldAFUE = 60
		}

		fuel := ctx.Profile.HeatingFuel()
		s := ctx.Calc.HVACUpgrade(oldAFUE, newAFUE, heating, fuel)

		title := "Replace Furnace with 95% AFUE Unit"
		cost := float64(furnaceCost)
		if ctx.Profile.HeatingEquipment() == 2 { // boiler
			title = "Replace Boiler with 95% AFUE Condensing Unit"
			cost = boilerCost
			s.LifetimeYears = savings.Lifespan("boiler")
		}

		if material(s, heatingMinDollars) {
			c := finish(ctx, domain.Candidate{
				Category:          domain.CategoryHeating,
				Title:             title,
				Description:       "Heating equipment past 15 years runs well below modern efficiency. A condensing unit at 95% AFUE converts nearly all fuel into delivered heat.",
				CurrentCondition:  fmt.Sprintf("Equipment ~%d years old, estimated %.0f%% AFUE", age, oldAFUE),
				RecommendedAction: "Install a 95% AFUE condensing unit sized from a Manual J calculation",
				CostEstimate:      cost,
				Savings:           s,
			}, 0)
			c.Priority = priorityByPayback(c.Financial.PaybackYears, 5)
			out = append(out, c)
		}
	}

	// Smart thermostat: no programmable control on a meaningful heating
	// load; flat 8% savings assumption.
	if ctx.Profile.ThermostatCode() < 2 && heating > thermostatTrigger {
		s := blendedSavings(ctx, thermostatSavingsFraction*heating, 10)
		if material(s, thermostatMinDollars) {
			c := finish(ctx, domain.Candidate{
				Category:          domain.CategoryHeating,
				Title:             "Install Smart Thermostat",
				Description:       "Without programmable control the system heats an empty or sleeping house at full setpoint. Scheduled setbacks typically recover about 8% of the heating load.",
				CurrentCondition:  "No programmable or smart thermostat present",
				RecommendedAction: "Install a learning thermostat with occupancy-based setbacks",
				CostEstimate:      thermostatCost,
				Savings:           s,
			}, 0)
			c.Priority = priorityByPayback(c.Financial.PaybackYears, 3)
			out = append(out, c)
		}
	}

	return out
}
