// Package demo provides a fictive company questionnaire for demonstration
// purpose. The figures are fixed so demo runs stay reproducible.
package demo

// Questionnaire returns a raw questionnaire document in the wire format of
// the questionnaire service.
func Questionnaire() map[string]any {
	return map[string]any{
		"entreprise": map[string]any{
			"nom":             "Demo Services SAS",
			"secteur":         "services",
			"effectif":        "10-49",
			"chiffreAffaires": 500000.0,
			"localisation":    "Paris, France",
		},
		"energie": map[string]any{
			"electricite_kwh":   25000.0,
			"gaz_kwh":           15000.0,
			"carburants_litres": 2000.0,
		},
		"transport": map[string]any{
			"vehicules_km_annuel":    15000.0,
			"vols_domestiques_km":    8000.0,
			"vols_internationaux_km": 12000.0,
		},
		"achats": map[string]any{
			"montant_achats_annuel": 300000.0,
			"pourcentage_local":     40.0,
		},
	}
}
