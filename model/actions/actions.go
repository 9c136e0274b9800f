// Package actions ranks quantified mitigation actions from the category
// breakdown. Each template yields a structured candidate holding its own
// numeric impact; ranking sorts on that number directly.
package actions

import (
	"fmt"
	"sort"

	"github.com/carbonscore/carbonscore"
	"github.com/carbonscore/carbonscore/model/benchmark"
)

const (
	maxRecommendations = 8
	topCategories      = 5

	// Categories below this share of the total are not worth an action.
	minSharePct = 5.0
)

// Reference prices for the cost hints, €.
const (
	electricityPricePerKWh = 0.15
	fuelPricePerLiter      = 1.8
	fleetLitersPer100Km    = 6.0
	offsetPricePerKg       = 0.025
)

// Ranker turns a breakdown into an ordered action list using the injected
// benchmark table and template configuration.
type Ranker struct {
	benchmarks *benchmark.Table
	config     Config
}

func NewRanker(benchmarks *benchmark.Table, config Config) *Ranker {
	return &Ranker{benchmarks: benchmarks, config: config}
}

// Rank produces at most 8 actions sorted by descending impact. The
// pipeline keeps the 5 largest categories, skips those below 5% of the
// total, applies the sector-conditioned templates, appends at most one
// strategic action, then sorts and truncates.
func (ranker *Ranker) Rank(data carbonscore.CompanyData, breakdown map[string]float64) []carbonscore.Recommendation {
	total := 0.0
	for _, emissions := range breakdown {
		total += emissions
	}
	if total == 0 {
		return nil
	}

	profile := ranker.benchmarks.Resolve(data.Sector)

	candidates := make([]carbonscore.Recommendation, 0, maxRecommendations)
	for _, category := range sortedByEmissions(breakdown)[:topCategories] {
		emissions := breakdown[category]
		if emissions/total*100 < minSharePct {
			continue
		}
		candidates = append(candidates, ranker.templates(category, emissions, data, profile)...)
	}
	if strategic, found := ranker.strategic(data, profile, breakdown); found {
		candidates = append(candidates, strategic)
	}

	kept := make([]carbonscore.Recommendation, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ImpactKgCO2e <= 0 {
			continue
		}
		candidate.SharePct = candidate.ImpactKgCO2e / total * 100
		kept = append(kept, candidate)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].ImpactKgCO2e > kept[j].ImpactKgCO2e
	})
	if len(kept) > maxRecommendations {
		kept = kept[:maxRecommendations]
	}
	return kept
}

// sortedByEmissions orders categories by descending emissions, canonical
// order breaking ties so ranking stays deterministic.
func sortedByEmissions(breakdown map[string]float64) []string {
	categories := carbonscore.Categories()
	sort.SliceStable(categories, func(i, j int) bool {
		return breakdown[categories[i]] > breakdown[categories[j]]
	})
	return categories
}

func (ranker *Ranker) templates(category string, emissions float64, data carbonscore.CompanyData, profile benchmark.Profile) []carbonscore.Recommendation {
	switch category {
	case carbonscore.CategoryElectricity:
		return ranker.electricity(emissions, data, profile)
	case carbonscore.CategoryVehicles:
		return ranker.vehicles(emissions, data, profile)
	case carbonscore.CategoryFuel:
		return ranker.fuel(emissions, data, profile)
	case carbonscore.CategoryGas:
		return ranker.gas(emissions, data, profile)
	case carbonscore.CategoryDomesticAir:
		return ranker.flights(emissions, data.DomesticFlightKm, "domestic")
	case carbonscore.CategoryIntlAir:
		return ranker.flights(emissions, data.IntlFlightKm, "international")
	case carbonscore.CategoryPurchases:
		return ranker.purchases(emissions, data, profile)
	}
	return nil
}

func (ranker *Ranker) electricity(emissions float64, data carbonscore.CompanyData, profile benchmark.Profile) []carbonscore.Recommendation {
	if profile.EnergyIntensive {
		savings := data.ElectricityKWh * ranker.config.ElectricityEfficiency * electricityPricePerKWh
		return []carbonscore.Recommendation{{
			Action:       "Upgrade lighting and equipment efficiency (LED, variable speed drives)",
			ImpactKgCO2e: emissions * ranker.config.ElectricityEfficiency,
			Hint:         fmt.Sprintf("saves ~%.0f€/yr | 3-6 months | ROI 2-3 years", savings),
		}}
	}

	surcharge := data.ElectricityKWh * 0.02
	return []carbonscore.Recommendation{{
		Action:       "Switch to a certified 100% renewable electricity tariff",
		ImpactKgCO2e: emissions * ranker.config.GreenTariff,
		Hint:         fmt.Sprintf("extra cost ~%.0f€/yr | 1 month | immediate effect", surcharge),
	}}
}

func (ranker *Ranker) vehicles(emissions float64, data carbonscore.CompanyData, profile benchmark.Profile) []carbonscore.Recommendation {
	if !profile.TransportHeavy() {
		return []carbonscore.Recommendation{{
			Action:       "Encourage carpooling and remote work (2 days a week)",
			ImpactKgCO2e: emissions * ranker.config.CarpoolTelework,
			Hint:         "no cost | immediate | improves employee satisfaction",
		}}
	}

	savedKm := data.VehicleKm * ranker.config.RouteOptimization
	fuelSavings := savedKm / 100 * fleetLitersPer100Km * fuelPricePerLiter
	recommendations := []carbonscore.Recommendation{{
		Action:       "Optimize delivery routes with routing software",
		ImpactKgCO2e: emissions * ranker.config.RouteOptimization,
		Hint:         fmt.Sprintf("fuel savings ~%.0f€/yr | 1-2 months | ROI 6 months", fuelSavings),
	}}

	if data.VehicleKm > 20000 {
		investment := data.VehicleKm / 20000 * 35000
		recommendations = append(recommendations, carbonscore.Recommendation{
			Action:       "Electrify 30% of the light vehicle fleet",
			ImpactKgCO2e: emissions * ranker.config.FleetElectrification * ranker.config.FleetElectrifiedShare,
			Hint:         fmt.Sprintf("investment ~%.0f€ | multi-year rollout | purchase subsidies available", investment),
		})
	}
	return recommendations
}

func (ranker *Ranker) fuel(emissions float64, data carbonscore.CompanyData, profile benchmark.Profile) []carbonscore.Recommendation {
	if !profile.TransportHeavy() {
		return nil
	}

	savedLiters := data.FuelLiters * ranker.config.EcoDriving
	recommendations := []carbonscore.Recommendation{{
		Action:       "Train drivers in eco-driving and enforce preventive maintenance",
		ImpactKgCO2e: emissions * ranker.config.EcoDriving,
		Hint:         fmt.Sprintf("saves ~%.0f€/yr | 2 months | immediate ROI", savedLiters*fuelPricePerLiter),
	}}

	if data.FuelLiters > 5000 {
		recommendations = append(recommendations, carbonscore.Recommendation{
			Action:       "Blend biofuels (B30/HVO) into the fleet supply",
			ImpactKgCO2e: emissions * ranker.config.Biofuel,
			Hint:         fmt.Sprintf("extra cost ~%.0f€/yr | 6 months | compatible with current vehicles", data.FuelLiters*0.1),
		})
	}
	return recommendations
}

func (ranker *Ranker) gas(emissions float64, data carbonscore.CompanyData, profile benchmark.Profile) []carbonscore.Recommendation {
	if profile.EnergyIntensive {
		investment := data.GasKWh * 0.08
		return []carbonscore.Recommendation{{
			Action:       "Replace the gas boiler with a heat pump",
			ImpactKgCO2e: emissions * ranker.config.HeatPump,
			Hint:         fmt.Sprintf("investment ~%.0f€ | 12-18 months | renovation aid schemes apply", investment),
		}}
	}

	return []carbonscore.Recommendation{{
		Action:       "Improve building insulation (walls, roof)",
		ImpactKgCO2e: emissions * ranker.config.Insulation,
		Hint:         "medium investment | 12-18 months | ROI 5-7 years",
	}}
}

func (ranker *Ranker) flights(emissions, flightKm float64, kind string) []carbonscore.Recommendation {
	savings := flightKm / 1000 * 0.15 * ranker.config.VideoConferencing
	recommendations := []carbonscore.Recommendation{{
		Action:       fmt.Sprintf("Replace 30%% of %s flights with video conferencing", kind),
		ImpactKgCO2e: emissions * ranker.config.VideoConferencing,
		Hint:         fmt.Sprintf("saves ~%.0f€/yr | immediate | requires a travel policy", savings),
	}}

	if flightKm > 10000 {
		offset := emissions * ranker.config.FlightOffset
		recommendations = append(recommendations, carbonscore.Recommendation{
			Action:       fmt.Sprintf("Offset remaining %s flights through certified projects", kind),
			ImpactKgCO2e: offset,
			Hint:         fmt.Sprintf("cost ~%.0f€/yr | immediate | certified offset label", offset*offsetPricePerKg),
		})
	}
	return recommendations
}

func (ranker *Ranker) purchases(emissions float64, data carbonscore.CompanyData, profile benchmark.Profile) []carbonscore.Recommendation {
	// Purchases are a secondary lever for transport and logistics
	// companies, their action budget is better spent on the fleet.
	if profile.Sector == "transport" || profile.Sector == "logistics" {
		return nil
	}

	recommendations := make([]carbonscore.Recommendation, 0, 2)
	if data.LocalSourcingPct < 60 {
		increase := min(30, 70-data.LocalSourcingPct)
		recommendations = append(recommendations, carbonscore.Recommendation{
			Action: fmt.Sprintf("Raise local sourcing from %.0f%% to %.0f%% of purchases",
				data.LocalSourcingPct, data.LocalSourcingPct+increase),
			ImpactKgCO2e: emissions * increase / 100 * ranker.config.LocalSourcingEffect,
			Hint:         "cost neutral | 6-12 months | improves supply chain resilience",
		})
	}

	if data.PurchaseAmount > 100000 {
		recommendations = append(recommendations, carbonscore.Recommendation{
			Action:       "Audit the three main suppliers against carbon criteria and switch",
			ImpactKgCO2e: emissions * ranker.config.SupplierSwitch,
			Hint:         fmt.Sprintf("audit ~%.0f€ | 12 months | durable supply chain", data.PurchaseAmount*0.001),
		})
	}
	return recommendations
}

// strategic appends at most one sector-specific action, gated on a raw
// quantity threshold.
func (ranker *Ranker) strategic(data carbonscore.CompanyData, profile benchmark.Profile, breakdown map[string]float64) (carbonscore.Recommendation, bool) {
	switch profile.Sector {
	case "transport", "logistics":
		if data.VehicleKm <= 50000 {
			return carbonscore.Recommendation{}, false
		}
		return carbonscore.Recommendation{
			Action:       "Shift 30% of road freight to rail and waterway",
			ImpactKgCO2e: breakdown[carbonscore.CategoryVehicles] * ranker.config.ModalShift,
			Hint:         "18-24 months | rail and waterway freight partnerships",
		}, true

	case "foodservice":
		savings := data.PurchaseAmount * 0.08
		return carbonscore.Recommendation{
			Action:       "Halve food waste across kitchen operations",
			ImpactKgCO2e: breakdown[carbonscore.CategoryPurchases] * ranker.config.FoodWasteReduction,
			Hint:         fmt.Sprintf("saves ~%.0f€/yr | 3 months | surplus resale apps", savings),
		}, true

	case "technology":
		if data.ElectricityKWh <= 30000 {
			return carbonscore.Recommendation{}, false
		}
		savings := data.ElectricityKWh * electricityPricePerKWh * ranker.config.DataCenterEfficiency
		return carbonscore.Recommendation{
			Action:       "Optimize data center cooling and server utilization",
			ImpactKgCO2e: breakdown[carbonscore.CategoryElectricity] * ranker.config.DataCenterEfficiency,
			Hint:         fmt.Sprintf("saves ~%.0f€/yr | 6 months | PUE target below 1.5", savings),
		}, true
	}

	return carbonscore.Recommendation{}, false
}
