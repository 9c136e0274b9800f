// Package scopes maps raw consumption figures to GHG Protocol scope 1/2/3
// emissions and the per-category breakdown.
package scopes

import (
	"github.com/carbonscore/carbonscore"
	"github.com/carbonscore/carbonscore/model/factors"
)

// Calculator computes emissions from an injected read-only factor table.
// It is pure: no call mutates the table or any other shared state.
type Calculator struct {
	factors *factors.Table
}

func NewCalculator(table *factors.Table) *Calculator {
	return &Calculator{factors: table}
}

// Scope1 is the direct emissions of the company: fuel combustion, gas
// heating and the vehicle fleet. Missing inputs contribute zero.
func (calc *Calculator) Scope1(data carbonscore.CompanyData) float64 {
	fuel := data.FuelLiters * calc.factors.Lookup(factors.Petrol, factors.UnitLiter)
	gas := data.GasKWh * calc.factors.Lookup(factors.NaturalGas, factors.UnitKWh)
	vehicles := data.VehicleKm * calc.factors.Lookup(factors.CarPetrol, factors.UnitKm)

	return fuel + gas + vehicles
}

// Scope2 is the indirect energy emissions: grid electricity.
func (calc *Calculator) Scope2(data carbonscore.CompanyData) float64 {
	return data.ElectricityKWh * calc.factors.Lookup(factors.Electricity, factors.UnitKWh)
}

// Scope3 covers the other indirect emissions: business flights, purchased
// goods net of the local sourcing discount, and the upstream share of the
// energy consumed in scopes 1 and 2.
func (calc *Calculator) Scope3(data carbonscore.CompanyData) float64 {
	flights := data.DomesticFlightKm*calc.factors.Lookup(factors.FlightDomestic, factors.UnitKm) +
		data.IntlFlightKm*calc.factors.Lookup(factors.FlightIntl, factors.UnitKm)

	return flights + calc.purchases(data) + calc.UpstreamResidual(data)
}

// UpstreamResidual is the upstream share of purchased energy. It belongs
// to scope 3 but to no single breakdown category, so the breakdown sum
// falls short of the total by exactly this amount. The gap is intentional
// and bounded; it must not be silently reconciled into a category.
func (calc *Calculator) UpstreamResidual(data carbonscore.CompanyData) float64 {
	return data.ElectricityKWh*calc.factors.Lookup(factors.UpstreamElectricity, factors.UnitKWh) +
		data.GasKWh*calc.factors.Lookup(factors.UpstreamGas, factors.UnitKWh)
}

func (calc *Calculator) purchases(data carbonscore.CompanyData) float64 {
	base := data.PurchaseAmount * calc.factors.Lookup(factors.PurchasedGoods, factors.UnitEuro)
	localDiscount := data.LocalSourcingPct / 100 * calc.factors.Lookup(factors.LocalTransportCut, factors.UnitRatio)

	return base * (1 - localDiscount)
}

// Breakdown recomputes every category with the same per-unit formulas as
// the scopes. All seven keys are always present, zero when the input is
// missing.
func (calc *Calculator) Breakdown(data carbonscore.CompanyData) map[string]float64 {
	return map[string]float64{
		carbonscore.CategoryElectricity: data.ElectricityKWh * calc.factors.Lookup(factors.Electricity, factors.UnitKWh),
		carbonscore.CategoryGas:         data.GasKWh * calc.factors.Lookup(factors.NaturalGas, factors.UnitKWh),
		carbonscore.CategoryFuel:        data.FuelLiters * calc.factors.Lookup(factors.Petrol, factors.UnitLiter),
		carbonscore.CategoryVehicles:    data.VehicleKm * calc.factors.Lookup(factors.CarPetrol, factors.UnitKm),
		carbonscore.CategoryDomesticAir: data.DomesticFlightKm * calc.factors.Lookup(factors.FlightDomestic, factors.UnitKm),
		carbonscore.CategoryIntlAir:     data.IntlFlightKm * calc.factors.Lookup(factors.FlightIntl, factors.UnitKm),
		carbonscore.CategoryPurchases:   calc.purchases(data),
	}
}
