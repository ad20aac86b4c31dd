package rules

// Load triggers, kBTU/year. A rule only fires when the relevant end use is
// large enough for the measure to matter structurally.
const (
	atticHeatingTrigger    = 20000
	wallHeatingTrigger     = 30000
	windowHeatingTrigger   = 25000
	windowCoolingTrigger   = 15000
	sealingCombinedTrigger = 25000
	furnaceHeatingTrigger  = 30000
	thermostatTrigger      = 20000
	acCoolingTrigger       = 10000
	hpwhWaterTrigger       = 10000
	tanklessWaterTrigger   = 12000
	fridgeBaseloadTrigger  = 5000
	solarTotalTrigger      = 50000
)

// Materiality gates, minimum annual dollar savings per category. Fires
// below these are suppressed even when the structural trigger holds.
const (
	envelopeMinDollars   = 100
	heatingMinDollars    = 100
	thermostatMinDollars = 50
	coolingMinDollars    = 100
	waterMinDollars      = 75
	applianceMinDollars  = 50
	lightingMinDollars   = 50
	renewableMinDollars  = 200
	smartHomeMinDollars  = 50
	behavioralMinDollars = 50
)

// Installed cost assumptions, mid-estimate dollars.
const (
	atticInsulationCost = 2500
	wallInsulationCost  = 4000
	windowCostPerSqft   = 45
	airSealingCost      = 400
	furnaceCost         = 6500
	boilerCost          = 9000
	thermostatCost      = 250
	acReplacementCost   = 5500
	hpwhCost            = 2500
	tanklessCost        = 3500
	fridgeCost          = 800
	ledConversionCost   = 120
	solarCostPerKW      = 2500
	energyMonitorCost   = 150
)

// Flat savings-fraction policy assumptions.
const (
	airSealingSavingsFraction = 0.15
	thermostatSavingsFraction = 0.08
	monitorSavingsFraction    = 0.05
	setbackFractionPerDegree  = 0.05
	setbackFractionCap        = 0.25
)

// Fixed equipment assumptions.
const (
	newAFUE         = 95.0
	newSEER         = 18.0
	hpwhOldEF       = 0.90
	hpwhNewEF       = 2.50
	tanklessOldEF   = 0.60
	tanklessNewEF   = 0.95
	fridgeOldKWH    = 700.0
	fridgeNewKWH    = 350.0
	incandescentKWH = 2628.0 // 30-bulb household, pre-conversion
	ledKWH          = 394.0
	solarYieldPerKW = 1500.0 // kWh/kW/year sizing yield
	solarCoverage   = 0.8    // fraction of annual kWh the system is sized for
	solarMinKW      = 2.0
	solarMaxKW      = 12.0
)
