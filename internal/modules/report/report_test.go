package report

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/recommendations"
)

func testProfile() domain.HomeProfile {
	return domain.HomeProfile{
		"DIVISION":      "New England",
		"TOTSQFT_EN":    2000.0,
		"HDD65":         6000.0,
		"CDD65":         600.0,
		"NHSLDMEM":      3.0,
		"YEARMADERANGE": 4.0,
		"TYPEHUQ":       2.0,
	}
}

func testUsage() domain.UsageBreakdown {
	return domain.UsageBreakdown{
		Heating:  40000,
		Cooling:  8000,
		Water:    12000,
		Baseload: 15000,
		Total:    80000,
	}
}

func testRecs() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Title:     "Seal Air Leaks",
			Cost:      domain.CostEstimateRange{Estimate: 1000},
			Savings:   domain.SavingsDetail{AnnualBTU: 10000000, AnnualDollars: 500, LifetimeDollars: 5000},
			Financial: domain.FinancialDetail{PaybackYears: 2.0},
		},
		{
			Title:     "Install Smart Thermostat",
			Cost:      domain.CostEstimateRange{Estimate: 200},
			Savings:   domain.SavingsDetail{AnnualBTU: 5000000, AnnualDollars: 300, LifetimeDollars: 3000},
			Financial: domain.FinancialDetail{PaybackYears: 0.5},
		},
		{
			Title:     "Add Wall Insulation",
			Cost:      domain.CostEstimateRange{Estimate: 4000},
			Savings:   domain.SavingsDetail{AnnualBTU: 0, AnnualDollars: 0},
			Financial: domain.FinancialDetail{PaybackYears: recommendations.NoPayback},
		},
	}
}

func testAssembler() *Assembler {
	return NewAssembler(zerolog.Nop())
}

func TestBuildFullReport(t *testing.T) {
	r := rates.Resolve("New England", nil)
	rep := testAssembler().Build(testProfile(), testUsage(), testRecs(), r)

	assert.Equal(t, "success", rep.Status)
	assert.Contains(t, rep.AuditID, "audit_")
	assert.False(t, rep.Timestamp.IsZero())

	assert.Equal(t, "New England", rep.HomeProfile.Location)
	assert.Equal(t, "Single Family Detached", rep.HomeProfile.Type)
	assert.Equal(t, 2000, rep.HomeProfile.SizeSqft)
	assert.Equal(t, 1975, rep.HomeProfile.YearBuilt)
	assert.Equal(t, 3, rep.HomeProfile.Occupants)
	assert.Equal(t, 6000, rep.HomeProfile.Climate.HDD)

	assert.Len(t, rep.Recommendations, 3)
}

func TestCurrentUsageSection(t *testing.T) {
	r := rates.Resolve("New England", nil)
	rep := testAssembler().Build(testProfile(), testUsage(), nil, r)

	cu := rep.CurrentUsage
	assert.Equal(t, 80000, cu.TotalKBTU)
	assert.Equal(t, 23440, cu.TotalKWH)
	assert.Equal(t, 800, cu.TotalTherms)
	// Blended New England rate is 0.6*0.018 + 0.4*0.293*0.22 per kBTU.
	assert.Equal(t, 2927, cu.AnnualCost)
	assert.Equal(t, 244, cu.MonthlyAvg)
	assert.InDelta(t, 40.0, cu.EUI, 1e-9)
	assert.InDelta(t, 14.64, cu.CarbonTons, 1e-9)
}

func TestEnergyScoreGrades(t *testing.T) {
	tests := []struct {
		name   string
		eui    float64
		target float64
		grade  string
	}{
		{"well below target", 10, 35, "A+"},
		{"at target", 35, 35, "B+"},
		{"slightly above", 40, 35, "B"},
		{"well above target", 56, 35, "C"},
		{"double target", 70, 35, "F"},
		{"triple target", 105, 35, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.grade, scoreEnergy(tt.eui, tt.target).Grade)
		})
	}
}

func TestEnergyScoreClamped(t *testing.T) {
	low := scoreEnergy(500, 35)
	high := scoreEnergy(0, 35)
	assert.Equal(t, 0, low.Overall)
	assert.Equal(t, 100, high.Overall)
}

func TestUsageBreakdownSection(t *testing.T) {
	r := rates.Resolve("New England", nil)
	bd := usageBreakdown(testUsage(), r)

	assert.Equal(t, 40000, bd.Heating.KBTU)
	assert.Equal(t, 50, bd.Heating.Pct)
	assert.Equal(t, 720, bd.Heating.Cost)

	assert.Equal(t, 10, bd.Cooling.Pct)
	assert.Equal(t, 516, bd.Cooling.Cost)

	// Baseload splits 60/40 into appliances and lighting.
	assert.Equal(t, 9000, bd.Appliances.KBTU)
	assert.Equal(t, 6000, bd.Lighting.KBTU)

	// Components left unexplained by end uses land in "other".
	assert.Equal(t, 5000, bd.Other.KBTU)
}

func TestUsageBreakdownZeroTotal(t *testing.T) {
	r := rates.Resolve("", nil)
	bd := usageBreakdown(domain.UsageBreakdown{}, r)
	assert.Equal(t, 0, bd.Heating.Pct)
	assert.Equal(t, 0, bd.Other.KBTU)
}

func TestBenchmarkComparisonRanks(t *testing.T) {
	tests := []struct {
		name string
		eui  float64
		rank string
	}{
		{"top performer", 20, "15th percentile"},
		{"below target", 33, "40th percentile"},
		{"near average", 37, "55th percentile"},
		{"above average", 45, "75th percentile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := benchmarkComparison(tt.eui, 35, 2000)
			assert.Equal(t, tt.rank, bc.YourRank)
		})
	}
}

func TestBenchmarkComparisonTargets(t *testing.T) {
	bc := benchmarkComparison(40, 35, 2000)
	assert.Equal(t, 77000, bc.SimilarHomesAvg)
	assert.Equal(t, 70000, bc.EnergyStarTarget)
	assert.Equal(t, 30000, bc.NetZeroTarget)
	assert.Equal(t, "13% below average", bc.ImprovementPotential)
}

func TestFinancialSummary(t *testing.T) {
	fs := financialSummary(testRecs())

	assert.Equal(t, 5200, fs.TotalInvestment)
	assert.Equal(t, 800, fs.TotalAnnualSavings)
	assert.Equal(t, 8000, fs.TotalLifetimeSavings)
	// Average over finite paybacks only, so the 999 sentinel drops out.
	assert.InDelta(t, 1.3, fs.AveragePayback, 1e-9)
	assert.Equal(t, 780, fs.AvailableRebates)
	assert.Equal(t, 4420, fs.NetInvestment)
}

func TestFinancialSummaryEmpty(t *testing.T) {
	fs := financialSummary(nil)
	assert.Equal(t, 0, fs.TotalInvestment)
	assert.Equal(t, 0.0, fs.AveragePayback)
}

func TestProjectedUsage(t *testing.T) {
	r := rates.Resolve("New England", nil)
	rep := testAssembler().Build(testProfile(), testUsage(), testRecs(), r)

	pu := rep.Projected
	assert.Equal(t, 65000, pu.AfterAll.TotalKBTU)
	assert.Equal(t, 19, pu.AfterAll.ReductionPct)
	assert.Equal(t, 2378, pu.AfterAll.AnnualCost)
	assert.Equal(t, "B+", pu.AfterAll.NewGrade)
	assert.InDelta(t, 11.9, pu.AfterAll.CarbonTons, 1e-9)

	assert.Equal(t, 75000, pu.AfterQuickWins.TotalKBTU)
	assert.Equal(t, 6, pu.AfterQuickWins.ReductionPct)
}

func TestProjectedUsageNeverNegative(t *testing.T) {
	r := rates.Resolve("New England", nil)
	tiny := domain.UsageBreakdown{Total: 1000}
	rep := testAssembler().Build(testProfile(), tiny, testRecs(), r)
	assert.GreaterOrEqual(t, rep.Projected.AfterAll.TotalKBTU, 0)
}

func TestRoadmapPhases(t *testing.T) {
	rm := buildRoadmap(testRecs())

	assert.Equal(t, "0-3 months", rm.Phase1.Timeline)
	assert.Equal(t, []string{"Install Smart Thermostat"}, rm.Phase1.Items)
	assert.Equal(t, 200, rm.Phase1.Cost)
	assert.Equal(t, 300, rm.Phase1.Savings)

	assert.Equal(t, []string{"Seal Air Leaks"}, rm.Phase2.Items)
	assert.Equal(t, 1000, rm.Phase2.Cost)

	// No-payback measures land in the medium-term phase.
	assert.Equal(t, []string{"Add Wall Insulation"}, rm.Phase3.Items)
	assert.Equal(t, 4000, rm.Phase3.Cost)
}

func TestRoadmapCapsItems(t *testing.T) {
	var recs []domain.Recommendation
	for i := 0; i < 8; i++ {
		recs = append(recs, domain.Recommendation{
			Title:     "Measure",
			Financial: domain.FinancialDetail{PaybackYears: 0.5},
		})
	}
	rm := buildRoadmap(recs)
	assert.Len(t, rm.Phase1.Items, 5)
	assert.Equal(t, 0, rm.Phase1.Cost)
}

func TestBlendWithBill(t *testing.T) {
	r := rates.Resolve("New England", nil)
	usage := testUsage()

	blended := BlendWithBill(usage, 300, r)

	perKBTU := r.KBTUToDollars(1, domain.FuelBlended)
	billKBTU := 300.0 * 12 / perKBTU
	want := 0.7*usage.Total + 0.3*billKBTU
	assert.InDelta(t, want, blended.Total, 1e-6)

	// End-use shares survive the rescale.
	assert.InDelta(t, usage.Heating/usage.Total, blended.Heating/blended.Total, 1e-9)
	assert.InDelta(t, usage.Baseload/usage.Total, blended.Baseload/blended.Total, 1e-9)
}

func TestBlendWithBillNoBill(t *testing.T) {
	r := rates.Resolve("New England", nil)
	usage := testUsage()
	assert.Equal(t, usage, BlendWithBill(usage, 0, r))
	assert.Equal(t, usage, BlendWithBill(usage, -50, r))
}

func TestScoreUsesNationalFallbackRegion(t *testing.T) {
	r := rates.Resolve("New England", nil)
	rep := testAssembler().Build(testProfile(), testUsage(), nil, r)

	// "New England" has no leading-word match in the benchmark table, so the
	// national 35 kBTU/sqft target applies: EUI 40 scores 68, grade B.
	require.Equal(t, 68, rep.EnergyScore.Overall)
	assert.Equal(t, "B", rep.EnergyScore.Grade)
	assert.Equal(t, "Good", rep.EnergyScore.Label)
}
