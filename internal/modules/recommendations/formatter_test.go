package recommendations

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
)

func testFormatter() *Formatter {
	return New(zerolog.Nop())
}

func furnaceCandidate() domain.Candidate {
	return domain.Candidate{
		Category:          domain.CategoryHeating,
		Title:             "Replace Aging Furnace",
		Description:       "High-efficiency condensing furnace",
		CurrentCondition:  "18 year old furnace",
		RecommendedAction: "Install 95+ AFUE condensing furnace",
		Priority:          domain.PriorityHigh,
		CostEstimate:      6500,
		Savings: domain.SavingsResult{
			AnnualKBTU:    12000,
			AnnualTherms:  120,
			AnnualDollars: 540,
			LifetimeYears: 20,
		},
		Financial: domain.FinancialResult{
			PaybackYears: 12.04,
			ROIPercent:   66.2,
		},
		NPV:             1200,
		LifetimeDollars: 10800,
		CO2Tons:         0.702,
	}
}

func TestEstimateDifficulty(t *testing.T) {
	tests := []struct {
		name string
		cost float64
		want string
	}{
		{"led swap is diy", 120, DifficultyDIYEasy},
		{"thermostat is diy to pro", 500, DifficultyDIYToPro},
		{"furnace needs a pro", 6500, DifficultyProSuggested},
		{"solar requires a pro", 15000, DifficultyProRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimateDifficulty(tt.cost))
		})
	}
}

func TestFormatFurnace(t *testing.T) {
	rec := testFormatter().Format(furnaceCandidate())

	assert.Equal(t, domain.CategoryHeating, rec.Category)
	assert.Equal(t, domain.PriorityHigh, rec.Priority)

	// Cost bracket is 80%/100%/120% of the estimate.
	assert.Equal(t, 5200, rec.Cost.Low)
	assert.Equal(t, 6500, rec.Cost.Mid)
	assert.Equal(t, 7800, rec.Cost.High)

	assert.Equal(t, 12000000, rec.Savings.AnnualBTU)
	assert.Equal(t, 120, rec.Savings.AnnualTherms)
	assert.Equal(t, 540, rec.Savings.AnnualDollars)
	assert.Equal(t, 20, rec.Savings.LifetimeYears)

	assert.InDelta(t, 12.0, rec.Financial.PaybackYears, 1e-9)
	assert.InDelta(t, 66.2, rec.Financial.ROIPercent, 1e-9)

	assert.InDelta(t, 0.70, rec.Environmental.CO2ReductionTons, 1e-9)
	assert.InDelta(t, 14.04, rec.Environmental.CO2ReductionLifetime, 1e-9)
	assert.Equal(t, 28, rec.Environmental.EquivalentTrees)

	assert.Equal(t, DifficultyProSuggested, rec.Implementation.Difficulty)
	assert.Equal(t, "1-2 days", rec.Implementation.EstimatedTime)
	assert.Contains(t, rec.Implementation.SeasonalTiming, "Fall")
	assert.NotEmpty(t, rec.Implementation.Steps)

	guide := rec.Implementation.ContractorGuidance
	require.True(t, guide.ContractorRequired)
	assert.Contains(t, guide.Qualifications, "HVAC License")
	assert.Equal(t, "$5,200 - $7,800", guide.TypicalCostRange)
	assert.Empty(t, guide.DIYTips)

	assert.True(t, rec.Professional.PermitsRequired)
	assert.True(t, rec.Professional.InspectionRequired)
	assert.Contains(t, rec.Professional.EnergyRating, "AFUE")
	assert.Contains(t, rec.Warranty, "10-20 years")

	require.NotNil(t, rec.Maintenance["monthly"])
	assert.Contains(t, rec.Maintenance["monthly"], "Change air filter")

	assert.Equal(t, "Schedule consultation within 1-2 weeks", rec.NextSteps[0])
}

func TestFormatDIYHasNoContractorBlock(t *testing.T) {
	c := furnaceCandidate()
	c.Category = domain.CategoryLighting
	c.Title = "Switch to LED Lighting"
	c.CostEstimate = 120

	rec := testFormatter().Format(c)

	assert.Equal(t, DifficultyDIYEasy, rec.Implementation.Difficulty)
	assert.False(t, rec.Implementation.ContractorGuidance.ContractorRequired)
	assert.NotEmpty(t, rec.Implementation.ContractorGuidance.DIYTips)
	assert.Empty(t, rec.Implementation.ContractorGuidance.Qualifications)
	assert.False(t, rec.Professional.PermitsRequired)
	assert.Equal(t, []string{"Pay with cash or credit card"}, rec.Cost.FinancingOptions)
}

func TestFinancingTiers(t *testing.T) {
	assert.Len(t, financingOptions(800), 1)
	assert.Len(t, financingOptions(3000), 3)
	assert.Len(t, financingOptions(12000), 5)
}

func TestROIAnalysisProjection(t *testing.T) {
	c := furnaceCandidate()
	c.CostEstimate = 1000
	c.Savings.AnnualDollars = 500
	c.Financial.PaybackYears = 2.0
	c.Financial.ROIPercent = 400

	analysis := roiAnalysis(c)

	require.Len(t, analysis.YearByYear, 10)
	assert.Equal(t, 500, analysis.YearByYear[0].CumulativeSavings)
	assert.Equal(t, -500, analysis.YearByYear[0].NetSavings)
	assert.InDelta(t, -50.0, analysis.YearByYear[0].ROI, 1e-9)
	assert.Equal(t, 5000, analysis.YearByYear[9].CumulativeSavings)
	assert.Equal(t, 4000, analysis.YearByYear[9].NetSavings)
	assert.InDelta(t, 400.0, analysis.YearByYear[9].ROI, 1e-9)

	require.NotNil(t, analysis.BreakEven)
	assert.InDelta(t, 2.0, analysis.BreakEven.Years, 1e-9)
	assert.Equal(t, 24, analysis.BreakEven.Months)
	assert.Equal(t, 1000, analysis.BreakEven.TotalInvestment)
}

func TestInfinitePaybackStaysOutOfJSON(t *testing.T) {
	c := furnaceCandidate()
	c.Financial.PaybackYears = math.Inf(1)

	rec := testFormatter().Format(c)

	assert.False(t, math.IsInf(rec.Financial.PaybackYears, 1))
	assert.Equal(t, 999.0, rec.Financial.PaybackYears)
}

func TestRecommendationIDStable(t *testing.T) {
	id1 := recommendationID(domain.CategoryEnvelope, "Add Attic Insulation")
	id2 := recommendationID(domain.CategoryEnvelope, "Add Attic Insulation")
	id3 := recommendationID(domain.CategoryEnvelope, "Seal Air Leaks")

	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
	assert.Contains(t, id1, "rec_building_envelope_")
}

func TestPermitRules(t *testing.T) {
	assert.True(t, requiresPermit(domain.CategoryEnvelope, 6000), "high cost forces a permit")
	assert.False(t, requiresPermit(domain.CategoryEnvelope, 2500))
	assert.True(t, requiresPermit(domain.CategoryCooling, 100), "mechanical work always needs one")
	assert.True(t, requiresPermit(domain.CategoryRenewable, 100))
}

func TestFormatAllPreservesOrder(t *testing.T) {
	a := furnaceCandidate()
	b := furnaceCandidate()
	b.Category = domain.CategoryLighting
	b.Title = "Switch to LED Lighting"

	recs := testFormatter().FormatAll([]domain.Candidate{a, b})

	require.Len(t, recs, 2)
	assert.Equal(t, domain.CategoryHeating, recs[0].Category)
	assert.Equal(t, domain.CategoryLighting, recs[1].Category)
}

func TestCommaInt(t *testing.T) {
	assert.Equal(t, "950", commaInt(950))
	assert.Equal(t, "6,500", commaInt(6500))
	assert.Equal(t, "1,234,567", commaInt(1234567))
	assert.Equal(t, "-5,200", commaInt(-5200))
}
