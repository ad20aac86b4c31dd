package rules

import (
	"fmt"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
)

// insulationRByCode estimates existing attic R-value from the reported
// insulation adequacy code (survey contract: 2=adequate, 3=poor, 4=none).
var insulationRByCode = map[int]float64{
	2: 19,
	3: 11,
	4: 5,
}

// windowAreaByCode maps the WINDOWS count-frequency category to an
// estimated glazed area in sqft.
var windowAreaByCode = map[int]float64{
	1: 80,
	2: 120,
	3: 180,
	4: 240,
	5: 300,
	6: 400,
}

// Envelope evaluates attic insulation, wall insulation, window replacement
// and air sealing.
func Envelope(ctx *Context) []domain.Candidate {
	var out []domain.Candidate

	heating := ctx.Usage.Heating
	cooling := ctx.Usage.Cooling
	sqft := ctx.Profile.SquareFootage()

	// Attic insulation: reported adequacy is improvable and the heating
	// load is significant.
	if code := ctx.Profile.InsulationCode(); code >= 2 && heating > atticHeatingTrigger {
		currentR, ok := insulationRByCode[code]
		if !ok {
			currentR = 19
		}
		atticSqft := sqft * 0.6
		s := ctx.Calc.Insulation(currentR, 49, atticSqft, "attic", ctx.Profile.HeatingFuel())
		if material(s, envelopeMinDollars) {
			c := finish(ctx, domain.Candidate{
				Category:          domain.CategoryEnvelope,
				Title:             "Upgrade Attic Insulation",
				Description:       "Your heating load is high for your climate. Bringing the attic to R-49 sharply reduces conductive heat loss through the roof plane.",
				CurrentCondition:  fmt.Sprintf("Attic insulation estimated at R-%.0f over ~%.0f sqft", currentR, atticSqft),
				RecommendedAction: "Air-seal the attic floor, then blow in insulation to R-49",
				CostEstimate:      atticInsulationCost,
				Savings:           s,
			}, 0)
			c.Priority = priorityByPayback(c.Financial.PaybackYears, 5)
			out = append(out, c)
		}
	}

	// Wall insulation: uninsulated-era construction with a heavy heating
	// load.
	if ctx.Profile.YearBuilt() < 1980 && heating > wallHeatingTrigger {
		wallSqft := sqft * 0.8
		s := ctx.Calc.Insulation(5, 13, wallSqft, "wall", ctx.Profile.HeatingFuel())
		if material(s, envelopeMinDollars) {
			c := finish(ctx, domain.Candidate{
				Category:          domain.CategoryEnvelope,
				Title:             "Insulate Exterior Walls",
				Description:       "Homes built before 1980 typically have little or no wall cavity insulation. Dense-pack cellulose brings walls to R-13 without opening them up.",
				CurrentCondition:  fmt.Sprintf("Built %d; wall cavities likely uninsulated", ctx.Profile.YearBuilt()),
				RecommendedAction: "Dense-pack wall cavities to R-13 via drilled access",
				CostEstimate:      wallInsulationCost,
				Savings:           s,
			}, 0)
			c.Priority = priorityByPayback(c.Financial.PaybackYears, 5)
			out = append(out, c)
		}
	}

	// Window replacement: many windows and a meaningful seasonal load.
	if code := ctx.Profile.WindowsCode(); code >= 3 && (heating > windowHeatingTrigger || cooling > windowCoolingTrigger) {
		oldU := 0.85
		if ctx.Profile.YearBuilt() < 1980 {
			oldU = 1.10
		}
		area, ok := windowAreaByCode[code]
		if !ok {
			area = 180
		}
		s := ctx.Calc.WindowUpgrade(oldU, 0.30, area, ctx.Profile.HDD(), ctx.Profile.CDD())
		if material(s, envelopeMinDollars) {
			c := finish(ctx, domain.Candidate{
				Category:          domain.CategoryEnvelope,
				Title:             "Replace Windows with Low-E Double Pane",
				Description:       "A large glazed area at a high U-factor leaks heat both seasons. ENERGY STAR windows at U-0.30 cut that loss by more than half.",
				CurrentCondition:  fmt.Sprintf("~%.0f sqft of glazing estimated at U-%.2f", area, oldU),
				RecommendedAction: "Install U-0.30 low-e double-pane replacement windows",
				CostEstimate:      area * windowCostPerSqft,
				Savings:           s,
			}, 0)
			switch {
			case c.Financial.PaybackYears < 5:
				c.Priority = domain.PriorityHigh
			case c.Financial.PaybackYears > 15:
				c.Priority = domain.PriorityLow
			default:
				c.Priority = domain.PriorityMedium
			}
			out = append(out, c)
		}
	}

	// Air sealing: reported draftiness with enough combined conditioning
	// load for the flat 15% assumption to matter.
	if ctx.Profile.DraftyCode() >= 2 && heating+cooling > sealingCombinedTrigger {
		s := blendedSavings(ctx, airSealingSavingsFraction*(heating+cooling), 15)
		if material(s, envelopeMinDollars) {
			c := finish(ctx, domain.Candidate{
				Category:          domain.CategoryEnvelope,
				Title:             "Air Sealing & Weatherstripping",
				Description:       "Reported drafts mean conditioned air is escaping through gaps and penetrations. Caulking and weatherstripping typically recover about 15% of the conditioning load.",
				CurrentCondition:  "Occupants report noticeable drafts",
				RecommendedAction: "Seal plumbing/wiring penetrations, weatherstrip doors and windows",
				CostEstimate:      airSealingCost,
				Savings:           s,
			}, 0)
			c.Priority = priorityByPayback(c.Financial.PaybackYears, 2)
			out = append(out, c)
		}
	}

	return out
}
