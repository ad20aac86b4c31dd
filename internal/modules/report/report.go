// Package report assembles the full audit report: scored usage, benchmark
// comparison, financial rollups, projected usage, and a phased roadmap.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/benchmarks"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/recommendations"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/pkg/formulas"
)

// Roadmap phase boundaries in payback years.
const (
	quickWinPayback  = 1.0
	shortTermPayback = 5.0
)

// assumedRebateShare is the flat rebate estimate applied to the total
// investment in the financial summary.
const assumedRebateShare = 0.15

// Baseload is split into appliance and lighting shares for presentation.
const (
	applianceBaseloadShare = 0.6
	lightingBaseloadShare  = 0.4
)

// FullReport is the complete audit response body.
type FullReport struct {
	Status          string                  `json:"status"`
	AuditID         string                  `json:"audit_id"`
	Timestamp       time.Time               `json:"timestamp"`
	HomeProfile     HomeProfileSection      `json:"home_profile"`
	EnergyScore     EnergyScore             `json:"energy_score"`
	CurrentUsage    CurrentUsage            `json:"current_usage"`
	UsageBreakdown  UsageBreakdownSection   `json:"usage_breakdown"`
	Benchmark       BenchmarkComparison     `json:"benchmark_comparison"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Financial       FinancialSummary        `json:"financial_summary"`
	Projected       ProjectedUsage          `json:"projected_usage"`
	Roadmap         Roadmap                 `json:"implementation_roadmap"`
}

// HomeProfileSection echoes the audited home's headline attributes.
type HomeProfileSection struct {
	Location  string  `json:"location"`
	Type      string  `json:"type"`
	SizeSqft  int     `json:"size_sqft"`
	YearBuilt int     `json:"year_built"`
	Occupants int     `json:"occupants"`
	Climate   Climate `json:"climate"`
}

// Climate holds the heating and cooling degree days used throughout.
type Climate struct {
	HDD int `json:"hdd"`
	CDD int `json:"cdd"`
}

// EnergyScore is the benchmark-relative efficiency score and grade.
type EnergyScore struct {
	Overall    int    `json:"overall"`
	Grade      string `json:"grade"`
	Percentile int    `json:"percentile"`
	Label      string `json:"label"`
}

// CurrentUsage summarizes annual consumption, cost, and emissions.
type CurrentUsage struct {
	TotalKBTU   int     `json:"total_kbtu"`
	TotalKWH    int     `json:"total_kwh"`
	TotalTherms int     `json:"total_therms"`
	AnnualCost  int     `json:"annual_cost"`
	MonthlyAvg  int     `json:"monthly_avg"`
	EUI         float64 `json:"eui"`
	CarbonTons  float64 `json:"carbon_tons"`
}

// BreakdownEntry is one end-use slice of the usage pie.
type BreakdownEntry struct {
	KBTU int `json:"kbtu"`
	Pct  int `json:"pct"`
	Cost int `json:"cost"`
}

// UsageBreakdownSection splits annual usage by end use. Appliances and
// lighting are presentation estimates carved out of baseload.
type UsageBreakdownSection struct {
	Heating      BreakdownEntry `json:"heating"`
	Cooling      BreakdownEntry `json:"cooling"`
	WaterHeating BreakdownEntry `json:"water_heating"`
	Appliances   BreakdownEntry `json:"appliances"`
	Lighting     BreakdownEntry `json:"lighting"`
	Other        BreakdownEntry `json:"other"`
}

// BenchmarkComparison positions the home against regional targets.
type BenchmarkComparison struct {
	SimilarHomesAvg      int    `json:"similar_homes_avg"`
	EnergyStarTarget     int    `json:"energy_star_target"`
	NetZeroTarget        int    `json:"net_zero_target"`
	YourRank             string `json:"your_rank"`
	ImprovementPotential string `json:"improvement_potential"`
}

// FinancialSummary rolls up cost and savings across all recommendations.
type FinancialSummary struct {
	TotalInvestment      int     `json:"total_investment"`
	TotalAnnualSavings   int     `json:"total_annual_savings"`
	TotalLifetimeSavings int     `json:"total_lifetime_savings"`
	AveragePayback       float64 `json:"average_payback"`
	AvailableRebates     int     `json:"available_rebates"`
	NetInvestment        int     `json:"net_investment"`
}

// ProjectedUsage shows post-implementation consumption levels.
type ProjectedUsage struct {
	AfterAll       ProjectedState `json:"after_all_recommendations"`
	AfterQuickWins ProjectedState `json:"after_quick_wins"`
}

// ProjectedState is one projected consumption scenario.
type ProjectedState struct {
	TotalKBTU    int     `json:"total_kbtu"`
	AnnualCost   int     `json:"annual_cost"`
	ReductionPct int     `json:"reduction_pct"`
	NewGrade     string  `json:"new_grade,omitempty"`
	CarbonTons   float64 `json:"carbon_tons,omitempty"`
}

// Roadmap groups recommendations into implementation phases by payback.
type Roadmap struct {
	Phase1 Phase `json:"phase_1_immediate"`
	Phase2 Phase `json:"phase_2_short_term"`
	Phase3 Phase `json:"phase_3_medium_term"`
}

// Phase is one roadmap bucket with its aggregate economics.
type Phase struct {
	Timeline string   `json:"timeline"`
	Cost     int      `json:"cost"`
	Savings  int      `json:"savings"`
	Items    []string `json:"items"`
}

// Assembler produces FullReport values. Stateless and safe for
// concurrent use.
type Assembler struct {
	log zerolog.Logger
}

// NewAssembler returns an Assembler with a component-scoped logger.
func NewAssembler(log zerolog.Logger) *Assembler {
	return &Assembler{log: log.With().Str("component", "report").Logger()}
}

// Build assembles the complete report from the audited profile, usage, the
// already formatted recommendation list, and resolved utility rates.
func (a *Assembler) Build(profile domain.HomeProfile, usage domain.UsageBreakdown, recs []domain.Recommendation, r *rates.UtilityRates) FullReport {
	sqft := profile.SquareFootage()
	eui := 0.0
	if sqft > 0 {
		eui = usage.Total / sqft
	}
	targetEUI := benchmarks.TargetEUI(profile.Division())

	rep := FullReport{
		Status:          "success",
		AuditID:         "audit_" + uuid.New().String(),
		Timestamp:       time.Now().UTC(),
		HomeProfile:     homeProfileSection(profile),
		EnergyScore:     scoreEnergy(eui, targetEUI),
		CurrentUsage:    a.currentUsage(usage, sqft, r),
		UsageBreakdown:  usageBreakdown(usage, r),
		Benchmark:       benchmarkComparison(eui, targetEUI, sqft),
		Recommendations: recs,
		Financial:       financialSummary(recs),
		Projected:       a.projectedUsage(usage, recs, targetEUI, sqft, r),
		Roadmap:         buildRoadmap(recs),
	}

	a.log.Info().
		Str("audit_id", rep.AuditID).
		Int("score", rep.EnergyScore.Overall).
		Str("grade", rep.EnergyScore.Grade).
		Int("recommendations", len(recs)).
		Msg("assembled audit report")

	return rep
}

func homeProfileSection(profile domain.HomeProfile) HomeProfileSection {
	return HomeProfileSection{
		Location:  profile.Division(),
		Type:      profile.HomeTypeLabel(),
		SizeSqft:  int(profile.SquareFootage()),
		YearBuilt: profile.YearBuilt(),
		Occupants: profile.Occupants(),
		Climate: Climate{
			HDD: int(profile.HDD()),
			CDD: int(profile.CDD()),
		},
	}
}

// scoreEnergy maps EUI against the regional target onto a 0-100 score and
// letter grade.
func scoreEnergy(eui, targetEUI float64) EnergyScore {
	ratio := eui / (targetEUI + 0.1)
	score := clamp(100-((ratio-0.5)*50), 0, 100)

	var grade, label string
	switch {
	case score >= 90:
		grade, label = "A+", "Excellent - Top Performer"
	case score >= 80:
		grade, label = "A", "Excellent"
	case score >= 70:
		grade, label = "B+", "Good - Above Average"
	case score >= 60:
		grade, label = "B", "Good"
	case score >= 50:
		grade, label = "C+", "Average - Some Improvement Potential"
	case score >= 40:
		grade, label = "C", "Average - Significant Improvement Potential"
	case score >= 30:
		grade, label = "D", "Below Average - Major Improvements Needed"
	default:
		grade, label = "F", "Poor - Urgent Action Required"
	}

	return EnergyScore{
		Overall:    int(score),
		Grade:      grade,
		Percentile: int(score),
		Label:      label,
	}
}

func (a *Assembler) currentUsage(usage domain.UsageBreakdown, sqft float64, r *rates.UtilityRates) CurrentUsage {
	totalKWH := formulas.KBTUToKWHValue(usage.Total)
	totalTherms := formulas.KBTUToTherms(usage.Total)
	annualCost := r.KBTUToDollars(usage.Total, domain.FuelBlended)

	eui := 0.0
	if sqft > 0 {
		eui = usage.Total / sqft
	}

	return CurrentUsage{
		TotalKBTU:   roundInt(usage.Total),
		TotalKWH:    roundInt(totalKWH),
		TotalTherms: roundInt(totalTherms),
		AnnualCost:  roundInt(annualCost),
		MonthlyAvg:  roundInt(annualCost / 12),
		EUI:         roundTo(eui, 1),
		CarbonTons:  roundTo(formulas.CO2Tons(totalKWH, totalTherms), 2),
	}
}

func usageBreakdown(usage domain.UsageBreakdown, r *rates.UtilityRates) UsageBreakdownSection {
	total := usage.Total
	if total <= 0 {
		total = 1
	}

	appliance := usage.Baseload * applianceBaseloadShare
	lighting := usage.Baseload * lightingBaseloadShare
	other := math.Max(0, usage.Total-usage.Heating-usage.Cooling-usage.Water-usage.Baseload)

	entry := func(kbtu float64, fuel string) BreakdownEntry {
		return BreakdownEntry{
			KBTU: roundInt(kbtu),
			Pct:  roundInt(kbtu / total * 100),
			Cost: roundInt(r.KBTUToDollars(kbtu, fuel)),
		}
	}

	return UsageBreakdownSection{
		Heating:      entry(usage.Heating, domain.FuelGas),
		Cooling:      entry(usage.Cooling, domain.FuelElectric),
		WaterHeating: entry(usage.Water, domain.FuelBlended),
		Appliances:   entry(appliance, domain.FuelElectric),
		Lighting:     entry(lighting, domain.FuelElectric),
		Other:        entry(other, domain.FuelBlended),
	}
}

func benchmarkComparison(eui, targetEUI, sqft float64) BenchmarkComparison {
	similarAvg := targetEUI * 1.1

	var rank string
	switch {
	case eui < targetEUI*0.7:
		rank = "15th percentile"
	case eui < targetEUI:
		rank = "40th percentile"
	case eui < similarAvg:
		rank = "55th percentile"
	default:
		rank = "75th percentile"
	}

	improvement := 0.0
	if eui > 0 {
		improvement = (eui - targetEUI) / eui * 100
	}

	return BenchmarkComparison{
		SimilarHomesAvg:      roundInt(similarAvg * sqft),
		EnergyStarTarget:     roundInt(targetEUI * sqft),
		NetZeroTarget:        roundInt(benchmarks.NetZeroEUI * sqft),
		YourRank:             rank,
		ImprovementPotential: fmt.Sprintf("%d%% below average", roundInt(improvement)),
	}
}

func financialSummary(recs []domain.Recommendation) FinancialSummary {
	var investment, annual, lifetime float64
	var paybackSum float64
	var paybackCount int

	for _, rec := range recs {
		investment += float64(rec.Cost.Estimate)
		annual += float64(rec.Savings.AnnualDollars)
		lifetime += float64(rec.Savings.LifetimeDollars)
		if rec.Financial.PaybackYears < recommendations.NoPayback {
			paybackSum += rec.Financial.PaybackYears
			paybackCount++
		}
	}

	avgPayback := 0.0
	if paybackCount > 0 {
		avgPayback = paybackSum / float64(paybackCount)
	}

	rebates := investment * assumedRebateShare
	return FinancialSummary{
		TotalInvestment:      roundInt(investment),
		TotalAnnualSavings:   roundInt(annual),
		TotalLifetimeSavings: roundInt(lifetime),
		AveragePayback:       roundTo(avgPayback, 1),
		AvailableRebates:     roundInt(rebates),
		NetInvestment:        roundInt(investment - rebates),
	}
}

func (a *Assembler) projectedUsage(usage domain.UsageBreakdown, recs []domain.Recommendation, targetEUI, sqft float64, r *rates.UtilityRates) ProjectedUsage {
	var allKBTU, quickKBTU float64
	for _, rec := range recs {
		kbtu := float64(rec.Savings.AnnualBTU) / 1000.0
		allKBTU += kbtu
		if rec.Financial.PaybackYears < quickWinPayback {
			quickKBTU += kbtu
		}
	}

	afterAll := math.Max(0, usage.Total-allKBTU)
	afterQuick := math.Max(0, usage.Total-quickKBTU)

	afterAllEUI := 0.0
	if sqft > 0 {
		afterAllEUI = afterAll / sqft
	}
	ratio := afterAllEUI / (targetEUI + 0.1)
	newScore := clamp(100-((ratio-0.5)*50), 0, 100)

	var newGrade string
	switch {
	case newScore >= 90:
		newGrade = "A+"
	case newScore >= 80:
		newGrade = "A-"
	case newScore >= 70:
		newGrade = "B+"
	case newScore >= 60:
		newGrade = "B"
	default:
		newGrade = "C+"
	}

	reductionPct := func(after float64) int {
		if usage.Total <= 0 {
			return 0
		}
		return roundInt((usage.Total - after) / usage.Total * 100)
	}

	afterAllCO2 := formulas.CO2Tons(formulas.KBTUToKWHValue(afterAll), formulas.KBTUToTherms(afterAll))

	return ProjectedUsage{
		AfterAll: ProjectedState{
			TotalKBTU:    roundInt(afterAll),
			AnnualCost:   roundInt(r.KBTUToDollars(afterAll, domain.FuelBlended)),
			ReductionPct: reductionPct(afterAll),
			NewGrade:     newGrade,
			CarbonTons:   roundTo(afterAllCO2, 2),
		},
		AfterQuickWins: ProjectedState{
			TotalKBTU:    roundInt(afterQuick),
			AnnualCost:   roundInt(r.KBTUToDollars(afterQuick, domain.FuelBlended)),
			ReductionPct: reductionPct(afterQuick),
		},
	}
}

func buildRoadmap(recs []domain.Recommendation) Roadmap {
	var phase1, phase2, phase3 []domain.Recommendation
	for _, rec := range recs {
		switch payback := rec.Financial.PaybackYears; {
		case payback < quickWinPayback:
			phase1 = append(phase1, rec)
		case payback < shortTermPayback:
			phase2 = append(phase2, rec)
		default:
			phase3 = append(phase3, rec)
		}
	}

	return Roadmap{
		Phase1: phaseSummary(phase1, "0-3 months"),
		Phase2: phaseSummary(phase2, "3-12 months"),
		Phase3: phaseSummary(phase3, "1-3 years"),
	}
}

func phaseSummary(recs []domain.Recommendation, timeline string) Phase {
	var cost, savings int
	items := []string{}
	for i, rec := range recs {
		cost += rec.Cost.Estimate
		savings += rec.Savings.AnnualDollars
		if i < 5 {
			items = append(items, rec.Title)
		}
	}
	return Phase{Timeline: timeline, Cost: cost, Savings: savings, Items: items}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
