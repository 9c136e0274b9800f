package carbonscore

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// questionnaireDoc mirrors the wire format of the questionnaire service:
// four nested groups with french field names. Absent numeric fields decode
// to zero, which the engine treats as "no contribution".
type questionnaireDoc struct {
	Company struct {
		Name         string  `mapstructure:"nom"`
		Sector       string  `mapstructure:"secteur"`
		EmployeeBand string  `mapstructure:"effectif"`
		Revenue      float64 `mapstructure:"chiffreAffaires"`
		Location     string  `mapstructure:"localisation"`
	} `mapstructure:"entreprise"`
	Energy struct {
		ElectricityKWh float64 `mapstructure:"electricite_kwh"`
		GasKWh         float64 `mapstructure:"gaz_kwh"`
		FuelLiters     float64 `mapstructure:"carburants_litres"`
	} `mapstructure:"energie"`
	Transport struct {
		VehicleKm        float64 `mapstructure:"vehicules_km_annuel"`
		DomesticFlightKm float64 `mapstructure:"vols_domestiques_km"`
		IntlFlightKm     float64 `mapstructure:"vols_internationaux_km"`
	} `mapstructure:"transport"`
	Purchases struct {
		Amount   float64 `mapstructure:"montant_achats_annuel"`
		LocalPct float64 `mapstructure:"pourcentage_local"`
	} `mapstructure:"achats"`
}

// DecodeQuestionnaire converts a raw questionnaire document into
// CompanyData. Unknown sector or employee band values pass through
// untouched: vocabulary resolution happens in the benchmark table.
func DecodeQuestionnaire(doc map[string]any) (CompanyData, error) {
	parsed := new(questionnaireDoc)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           parsed,
	})
	if err != nil {
		return CompanyData{}, fmt.Errorf("failed to build questionnaire decoder: %w", err)
	}

	if err := decoder.Decode(doc); err != nil {
		return CompanyData{}, fmt.Errorf("failed to decode questionnaire document: %w", err)
	}

	return CompanyData{
		Name:             parsed.Company.Name,
		Location:         parsed.Company.Location,
		Sector:           parsed.Company.Sector,
		EmployeeBand:     parsed.Company.EmployeeBand,
		Revenue:          parsed.Company.Revenue,
		ElectricityKWh:   parsed.Energy.ElectricityKWh,
		GasKWh:           parsed.Energy.GasKWh,
		FuelLiters:       parsed.Energy.FuelLiters,
		VehicleKm:        parsed.Transport.VehicleKm,
		DomesticFlightKm: parsed.Transport.DomesticFlightKm,
		IntlFlightKm:     parsed.Transport.IntlFlightKm,
		PurchaseAmount:   parsed.Purchases.Amount,
		LocalSourcingPct: parsed.Purchases.LocalPct,
	}, nil
}
