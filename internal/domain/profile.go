package domain

import (
	"strconv"
	"strings"
)

// HomeProfile is the raw survey-style home description supplied with every
// audit request. Keys follow the RECS 2020 codebook (TOTSQFT_EN, HDD65,
// ADQINSUL, ...); categorical values are codebook codes, usually as strings.
// The profile is read-only: every accessor resolves a missing or malformed
// field to its documented default, never to an error.
type HomeProfile map[string]any

// Float returns a numeric field, accepting JSON numbers and numeric strings.
func (p HomeProfile) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}

// Int returns an integer field, accepting JSON numbers and numeric strings.
// Categorical codebook fields arrive as strings ("3") as often as numbers.
func (p HomeProfile) Int(key string, def int) int {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return i
		}
	}
	return def
}

// Str returns a string field.
func (p HomeProfile) Str(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return def
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return def
}

// yearMidpoints maps YEARMADERANGE codes to representative build years.
// Codebook-defined; do not infer.
var yearMidpoints = map[int]int{
	1: 1940,
	2: 1955,
	3: 1965,
	4: 1975,
	5: 1985,
	6: 1995,
	7: 2005,
	8: 2018,
}

// ageBucketYears maps equipment/appliance age bucket codes to midpoint ages
// in years (new, 1-5, 6-10, 11-15, 16-20, 20+).
var ageBucketYears = map[int]int{
	1: 2,
	2: 3,
	3: 8,
	4: 13,
	5: 18,
	6: 25,
}

// SquareFootage returns conditioned floor area (TOTSQFT_EN).
func (p HomeProfile) SquareFootage() float64 {
	sqft := p.Float("TOTSQFT_EN", 2000)
	if sqft <= 0 {
		return 2000
	}
	return sqft
}

// HDD returns annual heating degree days (base 65°F).
func (p HomeProfile) HDD() float64 { return p.Float("HDD65", 5500) }

// CDD returns annual cooling degree days (base 65°F).
func (p HomeProfile) CDD() float64 { return p.Float("CDD65", 800) }

// Occupants returns household size (NHSLDMEM).
func (p HomeProfile) Occupants() int { return p.Int("NHSLDMEM", 2) }

// Division returns the census division string.
func (p HomeProfile) Division() string { return p.Str("DIVISION", "") }

// YearBuilt resolves YEARMADERANGE to a representative year. Raw years
// (>= 1900) pass through unchanged.
func (p HomeProfile) YearBuilt() int {
	v := p.Int("YEARMADERANGE", 6)
	if v >= 1900 {
		return v
	}
	if year, ok := yearMidpoints[v]; ok {
		return year
	}
	return 2000
}

// InsulationCode returns ADQINSUL (1=well insulated .. 4=not insulated).
func (p HomeProfile) InsulationCode() int { return p.Int("ADQINSUL", 2) }

// DraftyCode returns DRAFTY (1=never .. 4=all the time).
func (p HomeProfile) DraftyCode() int { return p.Int("DRAFTY", 3) }

// WindowsCode returns the WINDOWS count-frequency category (1..6).
func (p HomeProfile) WindowsCode() int { return p.Int("WINDOWS", 3) }

// HeatingEquipment returns the EQUIPM code (2=boiler, 3=furnace, 4=heat pump).
func (p HomeProfile) HeatingEquipment() int { return p.Int("EQUIPM", 3) }

// HeatingEquipmentAgeYears resolves the EQUIPAGE bucket to midpoint years.
func (p HomeProfile) HeatingEquipmentAgeYears() int {
	if years, ok := ageBucketYears[p.Int("EQUIPAGE", 3)]; ok {
		return years
	}
	return 8
}

// ACAgeYears resolves the AC equipment age bucket to midpoint years.
func (p HomeProfile) ACAgeYears() int {
	if years, ok := ageBucketYears[p.Int("ACEQUIPAGE", 3)]; ok {
		return years
	}
	return 8
}

// HeatingFuel maps FUELHEAT to an internal fuel type.
func (p HomeProfile) HeatingFuel() string {
	switch p.Int("FUELHEAT", 1) {
	case 1:
		return FuelGas
	case 2:
		return FuelPropane
	case 3:
		return FuelOil
	case 5:
		return FuelElectric
	default:
		return FuelGas
	}
}

// WaterHeatingFuelCode returns the raw FUELH2O code
// (1=electric, 2=gas, 3=propane per the survey contract).
func (p HomeProfile) WaterHeatingFuelCode() int { return p.Int("FUELH2O", 1) }

// FridgeCount returns NUMFRIG.
func (p HomeProfile) FridgeCount() int { return p.Int("NUMFRIG", 1) }

// FridgeAgeCode returns the AGERFRI1 age bucket.
func (p HomeProfile) FridgeAgeCode() int { return p.Int("AGERFRI1", 3) }

// IncandescentCode returns the LGTINLED bucket used as an
// incandescent-usage proxy (higher = fewer LEDs installed).
func (p HomeProfile) IncandescentCode() int { return p.Int("LGTINLED", 2) }

// HasSmartMeter reports whether SMARTMETER is set.
func (p HomeProfile) HasSmartMeter() bool { return p.Int("SMARTMETER", 0) == 1 }

// ThermostatCode returns TYPETHERM (0=none, 1=manual, 2=programmable,
// 3=smart).
func (p HomeProfile) ThermostatCode() int { return p.Int("TYPETHERM", 1) }

// HeatingSetpoint returns the reported winter setpoint (TEMPHOME, °F).
func (p HomeProfile) HeatingSetpoint() float64 { return p.Float("TEMPHOME", 70) }

// HomeTypeLabel resolves TYPEHUQ to a human-readable dwelling type.
func (p HomeProfile) HomeTypeLabel() string {
	labels := map[int]string{
		1: "Mobile Home",
		2: "Single Family Detached",
		3: "Single Family Attached",
		4: "Apartment in 2-4 Unit Building",
		5: "Apartment in 5+ Unit Building",
	}
	if label, ok := labels[p.Int("TYPEHUQ", 2)]; ok {
		return label
	}
	return "Single Family Detached"
}
