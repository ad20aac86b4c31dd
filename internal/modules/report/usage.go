package report

import (
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
)

// Weight of the model prediction when a reported bill is available.
// Policy constant; the remainder comes from the bill-derived estimate.
const modelBlendWeight = 0.7

// BlendWithBill reconciles the modeled annual usage with the household's
// reported average monthly bill. The bill implies an annual kBTU figure at
// the blended rate; the returned breakdown keeps the modeled end-use shares
// and rescales every component so the new total holds. A non-positive bill
// returns the model output unchanged.
func BlendWithBill(usage domain.UsageBreakdown, avgMonthlyBill float64, r *rates.UtilityRates) domain.UsageBreakdown {
	if avgMonthlyBill <= 0 || usage.Total <= 0 {
		return usage
	}
	perKBTU := r.KBTUToDollars(1, domain.FuelBlended)
	if perKBTU <= 0 {
		return usage
	}

	billKBTU := avgMonthlyBill * 12 / perKBTU
	blendedTotal := modelBlendWeight*usage.Total + (1-modelBlendWeight)*billKBTU

	scale := blendedTotal / usage.Total
	return domain.UsageBreakdown{
		Heating:  usage.Heating * scale,
		Cooling:  usage.Cooling * scale,
		Water:    usage.Water * scale,
		Baseload: usage.Baseload * scale,
		Total:    blendedTotal,
	}
}
