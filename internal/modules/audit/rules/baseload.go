package rules

import (
	"fmt"
	"math"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
)

// Appliances evaluates the refrigerator rule: a second fridge or an old
// primary unit on a meaningful baseload.
func Appliances(ctx *Context) []domain.Candidate {
	count := ctx.Profile.FridgeCount()
	ageCode := ctx.Profile.FridgeAgeCode()

	if (count <= 1 && ageCode < 4) || ctx.Usage.Baseload <= fridgeBaseloadTrigger {
		return nil
	}

	s := ctx.Calc.Appliance(fridgeOldKWH, fridgeNewKWH)
	if !material(s, applianceMinDollars) {
		return nil
	}

	title := "Replace Aging Refrigerator"
	condition := "Primary refrigerator over 10 years old (~700 kWh/year)"
	action := "Replace with an ENERGY STAR unit (~350 kWh/year)"
	if count > 1 {
		title = "Upgrade or Remove Second Refrigerator"
		condition = fmt.Sprintf("%d refrigerators running; extra units are typically older, inefficient models", count)
		action = "Retire the second unit, or consolidate into one ENERGY STAR refrigerator"
	}

	c := finish(ctx, domain.Candidate{
		Category:          domain.CategoryAppliances,
		Title:             title,
		Description:       "Older refrigerators draw roughly double the electricity of a current ENERGY STAR unit, around the clock.",
		CurrentCondition:  condition,
		RecommendedAction: action,
		CostEstimate:      fridgeCost,
		Savings:           s,
	}, 0)
	c.Priority = priorityByPayback(c.Financial.PaybackYears, 5)

	return []domain.Candidate{c}
}

// Lighting evaluates LED conversion from the incandescent-usage bucket,
// assuming a 30-bulb household profile.
func Lighting(ctx *Context) []domain.Candidate {
	if ctx.Profile.IncandescentCode() < 2 {
		return nil
	}

	s := ctx.Calc.Appliance(incandescentKWH, ledKWH)
	s.LifetimeYears = 10 // LED service life, not the appliance default
	if !material(s, lightingMinDollars) {
		return nil
	}

	c := finish(ctx, domain.Candidate{
		Category:          domain.CategoryLighting,
		Title:             "Convert Lighting to LED",
		Description:       "Incandescent and halogen bulbs turn ~90% of their electricity into heat. A whole-home LED conversion cuts lighting energy by about 85%.",
		CurrentCondition:  "Significant non-LED lighting in use",
		RecommendedAction: "Replace all remaining incandescent/halogen bulbs with ENERGY STAR LEDs",
		CostEstimate:      ledConversionCost,
		Savings:           s,
	}, 0)
	c.Priority = priorityByPayback(c.Financial.PaybackYears, 2)

	return []domain.Candidate{c}
}

// SmartHome evaluates the energy monitor rule: homes without a smart meter
// lack usage feedback; a monitor recovers a flat 5% of baseload.
func SmartHome(ctx *Context) []domain.Candidate {
	if ctx.Profile.HasSmartMeter() {
		return nil
	}

	s := blendedSavings(ctx, monitorSavingsFraction*ctx.Usage.Baseload, 10)
	if !material(s, smartHomeMinDollars) {
		return nil
	}

	c := finish(ctx, domain.Candidate{
		Category:          domain.CategorySmartHome,
		Title:             "Install Whole-Home Energy Monitor",
		Description:       "Without consumption feedback, phantom loads and always-on devices go unnoticed. Homes with real-time monitoring typically shave ~5% off baseload.",
		CurrentCondition:  "No smart meter or consumption monitoring",
		RecommendedAction: "Install a circuit-level energy monitor and review the always-on load",
		CostEstimate:      energyMonitorCost,
		Savings:           s,
	}, 0)
	c.Priority = priorityByPayback(c.Financial.PaybackYears, 3)

	return []domain.Candidate{c}
}

// Behavioral evaluates thermostat setback: each degree of winter setpoint
// above 72°F costs about 5% of the heating load. Zero cost; payback is
// immediate by definition.
func Behavioral(ctx *Context) []domain.Candidate {
	setpoint := ctx.Profile.HeatingSetpoint()
	if setpoint <= 72 {
		return nil
	}

	fraction := math.Min(setbackFractionPerDegree*(setpoint-72), setbackFractionCap)
	s := blendedSavings(ctx, fraction*ctx.Usage.Heating, 10)
	if !material(s, behavioralMinDollars) {
		return nil
	}

	c := domain.Candidate{
		Category:          domain.CategoryBehavioral,
		Title:             "Lower Winter Thermostat Setpoint",
		Description:       fmt.Sprintf("A %.0f°F winter setpoint costs roughly 5%% of the heating load per degree above 72°F. Dropping to 70°F is the cheapest heating upgrade available.", setpoint),
		CurrentCondition:  fmt.Sprintf("Reported winter setpoint of %.0f°F", setpoint),
		RecommendedAction: "Set the winter thermostat to 70°F or below; add layers before degrees",
		CostEstimate:      0,
		Savings:           s,
		Priority:          domain.PriorityHigh,
	}
	// No upfront cost: payback is zero and there is no invested capital to
	// earn a return on.
	c.Financial = domain.FinancialResult{PaybackYears: 0, ROIPercent: 0}
	c.LifetimeDollars, c.NPV = ctx.Calc.Lifetime(s.AnnualDollars, s.LifetimeYears)
	c.CO2Tons = candidateCO2(ctx, s)

	return []domain.Candidate{c}
}
