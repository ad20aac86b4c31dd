// Package rules holds the fixed battery of audit rules. Each rule is a pure
// function of the home profile and the predicted usage breakdown; a rule
// that fires emits one or more measure candidates with their economics
// fully computed. Rules never fail: missing profile fields resolve to
// defaults and degenerate math resolves to sentinels upstream.
package rules

import (
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/savings"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/pkg/formulas"
)

// Context carries the per-request inputs every rule evaluates against.
type Context struct {
	Profile domain.HomeProfile
	Usage   domain.UsageBreakdown
	Total   float64
	Calc    *savings.Calculator
	Rates   *rates.UtilityRates
}

// Rule is one category evaluation in the battery.
type Rule struct {
	Category string
	Evaluate func(ctx *Context) []domain.Candidate
}

// All returns the battery in its fixed evaluation order. The order is part
// of the output contract: equal-payback candidates keep this ordering after
// the final stable sort.
func All() []Rule {
	return []Rule{
		{Category: domain.CategoryEnvelope, Evaluate: Envelope},
		{Category: domain.CategoryHeating, Evaluate: Heating},
		{Category: domain.CategoryCooling, Evaluate: Cooling},
		{Category: domain.CategoryWater, Evaluate: WaterHeating},
		{Category: domain.CategoryAppliances, Evaluate: Appliances},
		{Category: domain.CategoryLighting, Evaluate: Lighting},
		{Category: domain.CategoryRenewable, Evaluate: Renewable},
		{Category: domain.CategorySmartHome, Evaluate: SmartHome},
		{Category: domain.CategoryBehavioral, Evaluate: Behavioral},
	}
}

// finish completes a candidate from its savings and cost: financial result,
// lifetime/NPV and CO2, all through the calculator so every rule prices
// identically.
func finish(ctx *Context, c domain.Candidate, rebateDollars float64) domain.Candidate {
	c.Financial = ctx.Calc.PaybackROI(c.CostEstimate, c.Savings.AnnualDollars, rebateDollars)
	c.LifetimeDollars, c.NPV = ctx.Calc.Lifetime(c.Savings.AnnualDollars, c.Savings.LifetimeYears)
	c.CO2Tons = candidateCO2(ctx, c.Savings)
	return c
}

// candidateCO2 attributes saved energy to emission factors by the fuel
// actually displaced: the kWh and therm fields of a savings result are unit
// conversions of the same kBTU, so only one side may count per fuel.
func candidateCO2(ctx *Context, s domain.SavingsResult) float64 {
	switch {
	case s.AnnualTherms == 0:
		return ctx.Calc.CO2Reduction(s.AnnualKWH, 0)
	case s.AnnualKWH == 0:
		return ctx.Calc.CO2Reduction(0, s.AnnualTherms)
	default:
		// Mixed-fuel measures follow the 60/40 blend policy.
		return ctx.Calc.CO2Reduction(s.AnnualKWH*(1-rates.BlendGasShare), s.AnnualTherms*rates.BlendGasShare)
	}
}

// material applies the per-category minimum annual-dollar gate.
func material(s domain.SavingsResult, minDollars float64) bool {
	return s.AnnualDollars >= minDollars
}

// priorityByPayback assigns High below the threshold, Medium otherwise.
func priorityByPayback(payback, highBelow float64) string {
	if payback < highBelow {
		return domain.PriorityHigh
	}
	return domain.PriorityMedium
}

// blendedSavings builds a savings result for flat-percentage measures whose
// dollar value is priced at the blended rate.
func blendedSavings(ctx *Context, kbtu float64, lifetimeYears int) domain.SavingsResult {
	if kbtu <= 0 {
		return domain.SavingsResult{}
	}
	return domain.SavingsResult{
		AnnualKBTU:    kbtu,
		AnnualKWH:     formulas.KBTUToKWHValue(kbtu),
		AnnualTherms:  formulas.KBTUToTherms(kbtu),
		AnnualDollars: ctx.Rates.KBTUToDollars(kbtu, domain.FuelBlended),
		LifetimeYears: lifetimeYears,
	}
}
