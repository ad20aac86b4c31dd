package rules

import (
	"fmt"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
)

// Cooling evaluates AC replacement. Old SEER is estimated from equipment
// age at half a point per year off a SEER-16 baseline, floored at 8.
func Cooling(ctx *Context) []domain.Candidate {
	age := ctx.Profile.ACAgeYears()
	cooling := ctx.Usage.Cooling

	if age <= 12 || cooling <= acCoolingTrigger {
		return nil
	}

	oldSEER := 16 - float64(age)*0.5
	if oldSEER < 8 {
		oldSEER = 8
	}

	s := ctx.Calc.CoolingUpgrade(oldSEER, newSEER, cooling)
	if !material(s, coolingMinDollars) {
		return nil
	}

	c := finish(ctx, domain.Candidate{
		Category:          domain.CategoryCooling,
		Title:             "Replace Central AC with SEER 18 Unit",
		Description:       "An air conditioner past 12 years runs far below modern seasonal efficiency and is approaching end of life. A SEER 18 unit delivers the same cooling on a fraction of the electricity.",
		CurrentCondition:  fmt.Sprintf("AC ~%d years old, estimated SEER %.0f", age, oldSEER),
		RecommendedAction: "Install a SEER 18 condenser and matched coil, verified refrigerant charge",
		CostEstimate:      acReplacementCost,
		Savings:           s,
	}, 0)
	c.Priority = priorityByPayback(c.Financial.PaybackYears, 5)

	return []domain.Candidate{c}
}
