package formulas

// Energy unit conversion factors. All engine math is carried in kBTU and
// converted at the edges with these exact constants; changing them silently
// shifts every dollar and CO2 figure downstream.
const (
	// KBTUToKWH converts kBTU to kWh (1 kBTU = 0.293 kWh).
	KBTUToKWH = 0.293

	// KBTUToTherm converts kBTU to therms (100 kBTU = 1 therm).
	KBTUToTherm = 0.01

	// ThermToKWH converts therms to kWh.
	ThermToKWH = 29.3

	// PropaneKBTUPerGallon is the energy content of a gallon of propane.
	PropaneKBTUPerGallon = 91.0

	// FuelOilKBTUPerGallon is the energy content of a gallon of fuel oil.
	FuelOilKBTUPerGallon = 138.0
)

// KBTUToKWHValue converts an energy quantity from kBTU to kWh.
func KBTUToKWHValue(kbtu float64) float64 {
	return kbtu * KBTUToKWH
}

// KWHToKBTU converts an energy quantity from kWh to kBTU.
func KWHToKBTU(kwh float64) float64 {
	return kwh / KBTUToKWH
}

// KBTUToTherms converts an energy quantity from kBTU to therms.
func KBTUToTherms(kbtu float64) float64 {
	return kbtu * KBTUToTherm
}
