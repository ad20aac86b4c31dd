// Package recommendations enriches raw audit candidates into full,
// serialization-ready recommendations: implementation guidance, cost
// brackets, financing, incentives, and year-by-year ROI projections.
package recommendations

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/pkg/formulas"
)

// Difficulty labels, assigned by cost bracket.
const (
	DifficultyDIYEasy      = "DIY - Easy"
	DifficultyDIYToPro     = "DIY to Professional"
	DifficultyProSuggested = "Professional Installation Recommended"
	DifficultyProRequired  = "Professional Installation Required"
)

// treesPerTonCO2 converts annual CO2 tons into an equivalent-trees figure.
const treesPerTonCO2 = 40

// NoPayback is the finite stand-in for an infinite payback in formatted
// output. Downstream aggregation treats values at or above it as "never".
const NoPayback = 999.0

// Formatter turns domain.Candidate values into domain.Recommendation
// values. Stateless and safe for concurrent use.
type Formatter struct {
	log zerolog.Logger
}

// New returns a Formatter with a component-scoped logger.
func New(log zerolog.Logger) *Formatter {
	return &Formatter{log: log.With().Str("component", "recommendations").Logger()}
}

// Format enriches a single candidate.
func (f *Formatter) Format(c domain.Candidate) domain.Recommendation {
	difficulty := estimateDifficulty(c.CostEstimate)

	rec := domain.Recommendation{
		ID:                recommendationID(c.Category, c.Title),
		Category:          c.Category,
		Priority:          c.Priority,
		Title:             c.Title,
		Description:       c.Description,
		CurrentCondition:  c.CurrentCondition,
		RecommendedAction: c.RecommendedAction,
		Implementation: domain.ImplementationDetail{
			Difficulty:         difficulty,
			EstimatedTime:      estimateTime(difficulty),
			SeasonalTiming:     lookupString(seasonalTiming, c.Category, genericTiming),
			Steps:              lookupList(implementationSteps, c.Category, genericSteps),
			ContractorGuidance: contractorGuidance(c.Category, difficulty, c.CostEstimate),
		},
		Cost: domain.CostEstimateRange{
			Low:              roundInt(c.CostEstimate * 0.8),
			Mid:              roundInt(c.CostEstimate),
			High:             roundInt(c.CostEstimate * 1.2),
			Estimate:         roundInt(c.CostEstimate),
			FinancingOptions: financingOptions(c.CostEstimate),
		},
		Savings: domain.SavingsDetail{
			AnnualBTU:       roundInt(c.Savings.AnnualKBTU * 1000),
			AnnualKWH:       roundInt(c.Savings.AnnualKWH),
			AnnualTherms:    roundInt(c.Savings.AnnualTherms),
			AnnualDollars:   roundInt(c.Savings.AnnualDollars),
			LifetimeDollars: roundInt(c.LifetimeDollars),
			LifetimeYears:   c.Savings.LifetimeYears,
		},
		Financial: domain.FinancialDetail{
			PaybackYears: roundTo(finitePayback(c.Financial.PaybackYears), 1),
			ROIPercent:   roundTo(c.Financial.ROIPercent, 1),
			NPV:          roundInt(c.NPV),
			ROIAnalysis:  roiAnalysis(c),
		},
		Environmental: domain.EnvironmentalDetail{
			CO2ReductionTons:     roundTo(c.CO2Tons, 2),
			CO2ReductionLifetime: roundTo(c.CO2Tons*float64(c.Savings.LifetimeYears), 2),
			EquivalentTrees:      roundInt(c.CO2Tons * treesPerTonCO2),
		},
		Incentives: domain.IncentiveDetail{
			Rebates:         nonNil(c.Rebates),
			TaxCredits:      lookupList(taxCredits, c.Category, genericTaxCredits),
			UtilityPrograms: utilityPrograms,
		},
		Warranty:    lookupString(warranties, c.Category, genericWarranty),
		Maintenance: maintenanceSchedule(c.Category),
		Professional: domain.ProfessionalNotes{
			CodeRequirements:   lookupString(codeRequirements, c.Category, genericCodeRequirements),
			PermitsRequired:    requiresPermit(c.Category, c.CostEstimate),
			InspectionRequired: inspectionCategories[c.Category],
			EnergyRating:       lookupString(energyRatings, c.Category, genericEnergyRating),
		},
		NextSteps: nextSteps(c.Priority),
	}

	f.log.Debug().
		Str("category", c.Category).
		Str("difficulty", difficulty).
		Float64("payback_years", rec.Financial.PaybackYears).
		Msg("formatted recommendation")

	return rec
}

// FormatAll enriches an already ordered candidate slice, preserving order.
func (f *Formatter) FormatAll(candidates []domain.Candidate) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, f.Format(c))
	}
	return recs
}

// recommendationID derives a stable id from category and title, so the same
// audit input always yields the same ids.
func recommendationID(category, title string) string {
	h := fnv.New32a()
	h.Write([]byte(title))
	slug := strings.ReplaceAll(strings.ToLower(category), " ", "_")
	return fmt.Sprintf("rec_%s_%04d", slug, h.Sum32()%10000)
}

func estimateDifficulty(cost float64) string {
	switch {
	case cost < 500:
		return DifficultyDIYEasy
	case cost < 2000:
		return DifficultyDIYToPro
	case cost < 10000:
		return DifficultyProSuggested
	default:
		return DifficultyProRequired
	}
}

func estimateTime(difficulty string) string {
	switch difficulty {
	case DifficultyDIYEasy:
		return "2-4 hours"
	case DifficultyDIYToPro:
		return "4-8 hours"
	case DifficultyProSuggested:
		return "1-2 days"
	case DifficultyProRequired:
		return "2-5 days"
	default:
		return "1-2 days"
	}
}

func contractorGuidance(category, difficulty string, cost float64) domain.ContractorGuidance {
	if strings.Contains(difficulty, "DIY") {
		return domain.ContractorGuidance{
			ContractorRequired: false,
			DIYTips:            diyTips,
		}
	}
	return domain.ContractorGuidance{
		ContractorRequired: true,
		Qualifications:     lookupList(contractorQualifications, category, genericQualifications),
		SelectionTips:      contractorSelectionTips,
		RedFlags:           contractorRedFlags,
		TypicalCostRange:   fmt.Sprintf("$%s - $%s", commaInt(roundInt(cost*0.8)), commaInt(roundInt(cost*1.2))),
	}
}

func financingOptions(cost float64) []string {
	switch {
	case cost < 1000:
		return []string{"Pay with cash or credit card"}
	case cost < 5000:
		return []string{
			"Home improvement credit card (0% APR promotions available)",
			"Personal loan",
			"Utility company financing programs",
		}
	default:
		return []string{
			"Home equity loan or HELOC (typically lowest rates)",
			"Energy-efficient mortgage (EEM)",
			"PACE financing (if available in your area)",
			"Utility company financing programs",
			"Manufacturer financing (for equipment purchases)",
		}
	}
}

func roiAnalysis(c domain.Candidate) domain.ROIAnalysis {
	payback := finitePayback(c.Financial.PaybackYears)
	analysis := domain.ROIAnalysis{
		Summary: fmt.Sprintf("Payback in %.1f years with %.1f%% ROI over %d years",
			payback, c.Financial.ROIPercent, formulas.ROIHorizonYears),
	}

	cumulative := 0.0
	for year := 1; year <= formulas.ROIHorizonYears; year++ {
		cumulative += c.Savings.AnnualDollars
		net := cumulative - c.CostEstimate
		roi := 0.0
		if c.CostEstimate > 0 {
			roi = roundTo(net/c.CostEstimate*100, 1)
		}
		analysis.YearByYear = append(analysis.YearByYear, domain.YearPoint{
			Year:              year,
			CumulativeSavings: roundInt(cumulative),
			NetSavings:        roundInt(net),
			ROI:               roi,
		})
	}

	if payback > 0 {
		analysis.BreakEven = &domain.BreakEven{
			Years:           roundTo(payback, 1),
			Months:          roundInt(payback * 12),
			TotalInvestment: roundInt(c.CostEstimate),
		}
	}
	return analysis
}

func nextSteps(priority string) []string {
	var steps []string
	if priority == domain.PriorityHigh {
		steps = append(steps,
			"Schedule consultation within 1-2 weeks",
			"Get quotes from 2-3 contractors")
	} else {
		steps = append(steps,
			"Research options and plan for next 1-3 months",
			"Get quotes when ready to proceed")
	}
	return append(steps,
		"Check available rebates and incentives",
		"Verify contractor credentials and references",
		"Review financing options if needed",
		"Schedule installation during optimal season")
}

func requiresPermit(category string, cost float64) bool {
	return cost > 5000 || permitCategories[category]
}

func maintenanceSchedule(category string) map[string][]string {
	if s, ok := maintenanceSchedules[category]; ok {
		return s
	}
	return genericMaintenance
}

func lookupString(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

func lookupList(table map[string][]string, key string, fallback []string) []string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// finitePayback maps the +Inf no-payback sentinel onto a large finite value
// so JSON encoding never sees an infinity.
func finitePayback(payback float64) float64 {
	if math.IsInf(payback, 1) || math.IsNaN(payback) {
		return NoPayback
	}
	return payback
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// commaInt renders an integer with thousands separators.
func commaInt(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
