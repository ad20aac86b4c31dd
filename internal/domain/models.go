package domain

import "math"

// Fuel types understood by the rate and savings layers.
const (
	FuelElectric = "elec"
	FuelGas      = "gas"
	FuelPropane  = "propane"
	FuelOil      = "fuel_oil"
	FuelBlended  = "blended"
)

// Recommendation categories. Presentation lookups key on these exact labels.
const (
	CategoryEnvelope   = "Building Envelope"
	CategoryHeating    = "Heating System"
	CategoryCooling    = "Cooling System"
	CategoryWater      = "Water Heating"
	CategoryAppliances = "Appliances"
	CategoryLighting   = "Lighting"
	CategoryRenewable  = "Renewable Energy"
	CategorySmartHome  = "Smart Home"
	CategoryBehavioral = "Behavioral"
)

// Recommendation priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// UsageBreakdown is the predicted annual energy use by end-use category,
// all in kBTU/year. Components are independent predictions and are not
// guaranteed to sum to Total; Total is the authoritative top line.
type UsageBreakdown struct {
	Heating  float64 `json:"heating_kbtu"`
	Cooling  float64 `json:"cooling_kbtu"`
	Water    float64 `json:"water_kbtu"`
	Baseload float64 `json:"baseload_kbtu"`
	Total    float64 `json:"total_kbtu"`
}

// SavingsResult is the annual savings of a single measure across units,
// plus the measure's expected lifetime. A measure that is not an actual
// improvement yields the zero value (a defined outcome, not an error).
type SavingsResult struct {
	AnnualKBTU    float64 `json:"annual_kbtu"`
	AnnualKWH     float64 `json:"annual_kwh"`
	AnnualTherms  float64 `json:"annual_therms"`
	AnnualDollars float64 `json:"annual_dollars"`
	LifetimeYears int     `json:"lifetime_years"`
}

// IsZero reports whether this is the no-savings sentinel.
func (s SavingsResult) IsZero() bool {
	return s.AnnualKBTU == 0 && s.AnnualKWH == 0 && s.AnnualTherms == 0 && s.AnnualDollars == 0
}

// FinancialResult holds payback and ROI for a measure. PaybackYears is
// +Inf when annual savings are non-positive.
type FinancialResult struct {
	PaybackYears float64
	ROIPercent   float64
}

// Candidate is what a fired audit rule emits: the core economics of one
// measure, before presentation enrichment. Full precision throughout;
// rounding happens only at the formatting boundary.
type Candidate struct {
	Category           string
	Title              string
	Description        string
	CurrentCondition   string
	RecommendedAction  string
	Priority           string
	CostEstimate       float64
	Savings            SavingsResult
	Financial          FinancialResult
	NPV                float64
	LifetimeDollars    float64
	CO2Tons            float64
	Rebates            []string
}

// SortablePayback returns the payback used for ordering; NaN is treated as
// +Inf so malformed values still sort last.
func (c Candidate) SortablePayback() float64 {
	if math.IsNaN(c.Financial.PaybackYears) {
		return math.Inf(1)
	}
	return c.Financial.PaybackYears
}

// CostEstimateRange is the presented low/mid/high installed-cost bracket.
type CostEstimateRange struct {
	Low              int      `json:"low"`
	Mid              int      `json:"mid"`
	High             int      `json:"high"`
	Estimate         int      `json:"estimate"`
	FinancingOptions []string `json:"financing_options"`
}

// SavingsDetail is the presented savings block (rounded).
type SavingsDetail struct {
	AnnualBTU       int `json:"annual_btu"`
	AnnualKWH       int `json:"annual_kwh"`
	AnnualTherms    int `json:"annual_therms"`
	AnnualDollars   int `json:"annual_dollars"`
	LifetimeDollars int `json:"lifetime_dollars"`
	LifetimeYears   int `json:"lifetime_years"`
}

// FinancialDetail is the presented financial block (rounded).
type FinancialDetail struct {
	PaybackYears float64     `json:"payback_years"`
	ROIPercent   float64     `json:"roi_percent"`
	NPV          int         `json:"npv"`
	ROIAnalysis  ROIAnalysis `json:"roi_analysis"`
}

// ROIAnalysis is the year-by-year return projection over the ROI horizon.
type ROIAnalysis struct {
	Summary    string      `json:"summary"`
	YearByYear []YearPoint `json:"year_by_year"`
	BreakEven  *BreakEven  `json:"break_even,omitempty"`
}

// YearPoint is one row of the cumulative savings projection.
type YearPoint struct {
	Year              int     `json:"year"`
	CumulativeSavings int     `json:"cumulative_savings"`
	NetSavings        int     `json:"net_savings"`
	ROI               float64 `json:"roi"`
}

// BreakEven marks when cumulative savings cover the installed cost.
type BreakEven struct {
	Years           float64 `json:"years"`
	Months          int     `json:"months"`
	TotalInvestment int     `json:"total_investment_at_break_even"`
}

// EnvironmentalDetail is the presented CO2 block.
type EnvironmentalDetail struct {
	CO2ReductionTons     float64 `json:"co2_reduction_tons"`
	CO2ReductionLifetime float64 `json:"co2_reduction_lifetime"`
	EquivalentTrees      int     `json:"equivalent_trees_planted"`
}

// ImplementationDetail carries the derived how-to-execute guidance.
type ImplementationDetail struct {
	Difficulty         string             `json:"difficulty"`
	EstimatedTime      string             `json:"estimated_time"`
	SeasonalTiming     string             `json:"seasonal_timing"`
	Steps              []string           `json:"steps"`
	ContractorGuidance ContractorGuidance `json:"contractor_guidance"`
}

// ContractorGuidance describes whether and how to hire out the work.
type ContractorGuidance struct {
	ContractorRequired bool     `json:"contractor_required"`
	Qualifications     []string `json:"qualifications,omitempty"`
	SelectionTips      []string `json:"selection_tips,omitempty"`
	RedFlags           []string `json:"red_flags,omitempty"`
	DIYTips            []string `json:"diy_tips,omitempty"`
	TypicalCostRange   string   `json:"typical_cost_range,omitempty"`
}

// IncentiveDetail lists rebates and programs for a measure.
type IncentiveDetail struct {
	Rebates         []string `json:"rebates"`
	TaxCredits      []string `json:"tax_credits"`
	UtilityPrograms []string `json:"utility_programs"`
}

// ProfessionalNotes carries code/permit/inspection flags.
type ProfessionalNotes struct {
	CodeRequirements   string `json:"code_requirements"`
	PermitsRequired    bool   `json:"permits_required"`
	InspectionRequired bool   `json:"inspection_required"`
	EnergyRating       string `json:"energy_rating"`
}

// Recommendation is the fully enriched, serialization-ready output unit.
// Constructed once per fired rule per request and never mutated after.
type Recommendation struct {
	ID                string               `json:"id"`
	Category          string               `json:"category"`
	Priority          string               `json:"priority"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	CurrentCondition  string               `json:"current_condition"`
	RecommendedAction string               `json:"recommended_action"`
	Implementation    ImplementationDetail `json:"implementation"`
	Cost              CostEstimateRange    `json:"cost"`
	Savings           SavingsDetail        `json:"savings"`
	Financial         FinancialDetail      `json:"financial"`
	Environmental     EnvironmentalDetail  `json:"environmental"`
	Incentives        IncentiveDetail      `json:"incentives"`
	Warranty          string               `json:"warranty"`
	Maintenance       map[string][]string  `json:"maintenance"`
	Professional      ProfessionalNotes    `json:"professional_notes"`
	NextSteps         []string             `json:"next_steps"`
}
