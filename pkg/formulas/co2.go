package formulas

// CO2 emission factors, pounds per unit of delivered energy.
const (
	// CO2LbsPerKWH is the US grid average emission factor.
	CO2LbsPerKWH = 0.85

	// CO2LbsPerTherm is the natural gas emission factor.
	CO2LbsPerTherm = 11.7

	// LbsPerTon converts pounds to short tons.
	LbsPerTon = 2000.0
)

// CO2Tons calculates annual CO2 reduction in short tons from electricity and
// gas savings. Clamped at zero; a reduction is never negative.
func CO2Tons(kwhSaved, thermsSaved float64) float64 {
	lbs := kwhSaved*CO2LbsPerKWH + thermsSaved*CO2LbsPerTherm
	tons := lbs / LbsPerTon
	if tons < 0 {
		return 0
	}
	return tons
}
