package formulas

import "math"

// ROIHorizonYears is the fixed horizon used for ROI percentages.
const ROIHorizonYears = 10

// DefaultDiscountRate is the discount rate applied to NPV calculations.
const DefaultDiscountRate = 0.03

// Payback calculates the simple payback period in years.
//
//	payback = (cost - rebates) / annual savings
//
// Returns +Inf when annual savings are zero or negative; financial math is
// total and never divides by a non-positive savings figure.
func Payback(upfrontCost, annualSavings, rebates float64) float64 {
	if annualSavings <= 0 {
		return math.Inf(1)
	}
	return (upfrontCost - rebates) / annualSavings
}

// ROIPercent calculates return on investment over the fixed 10-year horizon.
//
//	roi = ((annual savings × 10 − net cost) / net cost) × 100
//
// Returns 0 when annual savings or net cost are non-positive.
func ROIPercent(upfrontCost, annualSavings, rebates float64) float64 {
	netCost := upfrontCost - rebates
	if annualSavings <= 0 || netCost <= 0 {
		return 0
	}
	return ((annualSavings * ROIHorizonYears) - netCost) / netCost * 100
}

// NPV calculates the net present value of a constant annual savings stream
// discounted at rate over the given number of years.
func NPV(annualSavings float64, years int, rate float64) float64 {
	if annualSavings <= 0 || years <= 0 {
		return 0
	}
	var npv float64
	for year := 1; year <= years; year++ {
		npv += annualSavings / math.Pow(1+rate, float64(year))
	}
	return npv
}

// LifetimeDollars is the undiscounted sum of annual savings over the
// equipment lifetime.
func LifetimeDollars(annualSavings float64, years int) float64 {
	if annualSavings <= 0 || years <= 0 {
		return 0
	}
	return annualSavings * float64(years)
}
