package carbonscore

// Emissions in kgCO2eq, the unit every engine formula works in.
type Emissions float64

func (e Emissions) KgCO2eq() float64 {
	return float64(e)
}

func (e Emissions) TCO2eq() float64 {
	return float64(e) / 1000
}

// Conversion constants turning tonnes of CO2eq into everyday magnitudes.
// Sources: one planted tree sequesters ~25kg/year, an average car emits
// 4.6 tCO2eq/year, an average home 6.8 tCO2eq/year, a Paris-New York
// round trip ~1.8 tCO2eq.
const (
	TreesPerTCO2eq         = 40.0
	CarYearTCO2eq          = 4.6
	HomeYearTCO2eq         = 6.8
	ParisNewYorkTCO2eq     = 1.8
	CarbonPriceEurPerTonne = 100.0
)

// Equivalents expresses the emissions as common comparisons.
func (e Emissions) Equivalents() Equivalents {
	return Equivalents{
		TreesToPlant:        e.TCO2eq() * TreesPerTCO2eq,
		CarsOffRoad:         e.TCO2eq() / CarYearTCO2eq,
		HomeEnergyYears:     e.TCO2eq() / HomeYearTCO2eq,
		ParisNewYorkFlights: e.TCO2eq() / ParisNewYorkTCO2eq,
	}
}

// SocialCost prices the emissions at the reference €100/tCO2eq.
func (e Emissions) SocialCost() float64 {
	return e.TCO2eq() * CarbonPriceEurPerTonne
}
