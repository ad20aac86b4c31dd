package rules

import (
	"fmt"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/pkg/formulas"
)

// Renewable evaluates solar PV whenever the total load is large enough to
// justify a system. The array is sized to cover 80% of the annual kWh
// equivalent at a 1500 kWh/kW/year sizing yield, clamped to a realistic
// residential range.
func Renewable(ctx *Context) []domain.Candidate {
	if ctx.Total <= solarTotalTrigger {
		return nil
	}

	annualKWH := formulas.KBTUToKWHValue(ctx.Total)
	sizeKW := solarCoverage * annualKWH / solarYieldPerKW
	if sizeKW < solarMinKW {
		sizeKW = solarMinKW
	}
	if sizeKW > solarMaxKW {
		sizeKW = solarMaxKW
	}

	s := ctx.Calc.Solar(sizeKW, "south", 1.0)
	if !material(s, renewableMinDollars) {
		return nil
	}

	c := finish(ctx, domain.Candidate{
		Category:          domain.CategoryRenewable,
		Title:             fmt.Sprintf("Install %.1f kW Solar PV System", sizeKW),
		Description:       "Your total consumption is high enough that rooftop generation beats buying every kWh from the grid. The system is sized to offset about 80% of annual usage.",
		CurrentCondition:  fmt.Sprintf("~%.0f kWh/year purchased from the grid", annualKWH),
		RecommendedAction: fmt.Sprintf("Install a %.1f kW south-facing array with a NABCEP-certified installer", sizeKW),
		CostEstimate:      sizeKW * solarCostPerKW,
		Savings:           s,
	}, 0)

	switch {
	case c.Financial.PaybackYears < 8:
		c.Priority = domain.PriorityHigh
	case c.Financial.PaybackYears > 12:
		c.Priority = domain.PriorityLow
	default:
		c.Priority = domain.PriorityMedium
	}

	return []domain.Candidate{c}
}
