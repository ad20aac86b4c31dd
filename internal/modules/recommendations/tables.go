package recommendations

// Static per-category presentation copy. Every lookup has a fallback entry,
// so the formatter never fails for an unrecognized category.

import "github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"

var implementationSteps = map[string][]string{
	domain.CategoryEnvelope: {
		"1. Schedule energy audit to identify specific problem areas",
		"2. Obtain quotes from 2-3 licensed contractors",
		"3. Check local building codes and permit requirements",
		"4. Schedule installation during optimal season (spring/fall)",
		"5. Ensure proper ventilation and moisture control",
		"6. Verify installation meets ENERGY STAR standards",
		"7. Schedule post-installation inspection",
	},
	domain.CategoryHeating: {
		"1. Get Manual J load calculation for proper sizing",
		"2. Obtain quotes from HVAC contractors (minimum 3)",
		"3. Verify contractor licensing and insurance",
		"4. Check for available rebates and incentives",
		"5. Schedule installation before heating season",
		"6. Ensure proper ductwork inspection and sealing",
		"7. Test system efficiency after installation",
		"8. Register warranty and schedule maintenance",
	},
	domain.CategoryCooling: {
		"1. Get Manual J load calculation for proper AC sizing",
		"2. Evaluate SEER ratings (16+ recommended)",
		"3. Obtain quotes from certified HVAC contractors",
		"4. Check ductwork condition and insulation",
		"5. Schedule installation before cooling season",
		"6. Verify proper refrigerant charge",
		"7. Test system performance and efficiency",
	},
	domain.CategoryWater: {
		"1. Determine hot water usage patterns",
		"2. Calculate required capacity (gallons per minute)",
		"3. Evaluate fuel type options (gas vs electric vs heat pump)",
		"4. Check electrical/plumbing requirements",
		"5. Obtain quotes from licensed plumbers",
		"6. Verify local code compliance",
		"7. Schedule installation",
		"8. Test water temperature and flow rate",
	},
	domain.CategoryLighting: {
		"1. Audit all light fixtures in home",
		"2. Calculate total bulb count and wattage",
		"3. Purchase ENERGY STAR certified LED bulbs",
		"4. Replace bulbs starting with highest-use areas",
		"5. Consider smart lighting controls",
		"6. Dispose of old bulbs properly (recycling)",
	},
}

var genericSteps = []string{
	"1. Research product options and reviews",
	"2. Obtain professional quotes if needed",
	"3. Verify compatibility with existing systems",
	"4. Schedule installation",
	"5. Test and verify performance",
}

var contractorQualifications = map[string][]string{
	domain.CategoryHeating:   {"HVAC License", "NATE Certification", "EPA Refrigerant Certification"},
	domain.CategoryCooling:   {"HVAC License", "NATE Certification", "EPA Refrigerant Certification"},
	domain.CategoryWater:     {"Plumbing License", "Electrical License (if applicable)"},
	domain.CategoryEnvelope:  {"General Contractor License", "Insulation Certification"},
	domain.CategoryRenewable: {"Solar Installer Certification", "Electrical License", "NABCEP Certification"},
}

var genericQualifications = []string{"General Contractor License"}

var contractorSelectionTips = []string{
	"Get at least 3 detailed quotes",
	"Verify contractor is licensed, bonded, and insured",
	"Check references and online reviews",
	"Ensure contractor is certified for specific equipment (e.g., NATE for HVAC)",
	"Verify warranty coverage and service availability",
	"Get everything in writing with detailed scope of work",
}

var contractorRedFlags = []string{
	"Pressure to sign immediately",
	"Unusually low price (may indicate poor quality)",
	"No written contract or warranty",
	"Request for full payment upfront",
	"No insurance or licensing verification",
}

var diyTips = []string{
	"Watch installation videos and read manufacturer instructions",
	"Ensure you have proper tools and safety equipment",
	"Start with a small area to test your technique",
}

var maintenanceSchedules = map[string]map[string][]string{
	domain.CategoryHeating: {
		"monthly":       {"Change air filter", "Check thermostat settings"},
		"annually":      {"Professional inspection and tune-up", "Clean burners and heat exchanger", "Check ductwork"},
		"every_5_years": {"Replace air filter housing if needed"},
	},
	domain.CategoryCooling: {
		"monthly":  {"Change air filter", "Clean outdoor unit"},
		"annually": {"Professional inspection and service", "Clean coils", "Check refrigerant levels"},
		"seasonal": {"Cover outdoor unit in winter (if applicable)"},
	},
	domain.CategoryWater: {
		"monthly":       {"Check for leaks", "Test temperature and pressure relief valve"},
		"annually":      {"Flush tank to remove sediment", "Inspect anode rod", "Check for corrosion"},
		"every_5_years": {"Consider replacement if efficiency declining"},
	},
	domain.CategoryEnvelope: {
		"annually":      {"Inspect insulation for settling or damage", "Check for air leaks", "Inspect windows and doors"},
		"every_5_years": {"Professional energy audit", "Re-seal as needed"},
	},
}

var genericMaintenance = map[string][]string{
	"annually": {"Professional inspection", "Performance verification"},
}

var taxCredits = map[string][]string{
	domain.CategoryHeating:   {"Federal: Up to $600 for high-efficiency furnaces", "State: Varies by location"},
	domain.CategoryCooling:   {"Federal: Up to $500 for high-efficiency AC", "State: Varies by location"},
	domain.CategoryRenewable: {"Federal: 30% ITC for solar systems", "State: Additional incentives vary"},
	domain.CategoryWater:     {"Federal: Up to $800 for heat pump water heaters", "State: Varies"},
	domain.CategoryEnvelope:  {"Federal: Up to $500 for insulation and air sealing", "State: Varies"},
}

var genericTaxCredits = []string{"Check Energy.gov for current federal incentives"}

var utilityPrograms = []string{
	"Contact your local utility for rebate programs",
	"Check for time-of-use rate options",
	"Ask about energy efficiency programs",
	"Inquire about home energy assessments",
}

var warranties = map[string]string{
	domain.CategoryHeating:   "10-20 years parts, 1-5 years labor (varies by manufacturer)",
	domain.CategoryCooling:   "10-12 years parts, 1-5 years labor",
	domain.CategoryWater:     "6-12 years tank, 1-3 years parts",
	domain.CategoryEnvelope:  "Lifetime for materials, 1-5 years installation",
	domain.CategoryRenewable: "25 years performance, 10-12 years equipment",
}

const genericWarranty = "Varies by manufacturer and installer"

var codeRequirements = map[string]string{
	domain.CategoryHeating:  "Must meet local building codes, ASHRAE standards, and manufacturer specifications",
	domain.CategoryCooling:  "Must meet local codes, EPA refrigerant regulations, and SEER minimums",
	domain.CategoryWater:    "Must meet plumbing codes, pressure vessel regulations, and safety standards",
	domain.CategoryEnvelope: "Must meet local building codes and energy efficiency standards (IECC)",
}

const genericCodeRequirements = "Must meet all applicable local building codes"

var energyRatings = map[string]string{
	domain.CategoryHeating:  "Look for ENERGY STAR label, AFUE rating 90%+",
	domain.CategoryCooling:  "Look for ENERGY STAR label, SEER rating 16+",
	domain.CategoryWater:    "Look for ENERGY STAR label, EF rating 2.0+ for heat pump",
	domain.CategoryEnvelope: "Look for ENERGY STAR windows, R-value ratings for insulation",
}

const genericEnergyRating = "Check for ENERGY STAR certification"

var seasonalTiming = map[string]string{
	domain.CategoryHeating:   "Fall (before heating season) for best pricing and availability",
	domain.CategoryCooling:   "Spring (before cooling season) for best pricing and availability",
	domain.CategoryWater:     "Anytime, but avoid peak seasons for better pricing",
	domain.CategoryEnvelope:  "Spring or Fall (moderate weather) for comfort during installation",
	domain.CategoryRenewable: "Spring/Summer for maximum solar production",
}

const genericTiming = "Schedule during moderate weather for best conditions"

// inspectionCategories require a post-installation inspection.
var inspectionCategories = map[string]bool{
	domain.CategoryHeating:   true,
	domain.CategoryCooling:   true,
	domain.CategoryWater:     true,
	domain.CategoryRenewable: true,
}

// permitCategories require a permit regardless of cost.
var permitCategories = map[string]bool{
	domain.CategoryHeating:   true,
	domain.CategoryCooling:   true,
	domain.CategoryRenewable: true,
}
