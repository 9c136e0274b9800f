package scopes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbonscore/carbonscore"
	"github.com/carbonscore/carbonscore/model/factors"
)

func TestElectricityOnlyCompany(t *testing.T) {
	calc := NewCalculator(factors.New())
	data := carbonscore.CompanyData{
		Sector:         "services",
		EmployeeBand:   "10-49",
		ElectricityKWh: 10000,
	}

	assert.Equal(t, 0.0, calc.Scope1(data))
	assert.InDelta(t, 571.0, calc.Scope2(data), 1e-9)

	// scope 3 holds only the upstream electricity residual
	assert.InDelta(t, 134.0, calc.Scope3(data), 1e-9)
	assert.InDelta(t, 134.0, calc.UpstreamResidual(data), 1e-9)
}

func TestScopeFormulas(t *testing.T) {
	calc := NewCalculator(factors.New())
	data := carbonscore.CompanyData{
		ElectricityKWh:   25000,
		GasKWh:           15000,
		FuelLiters:       2000,
		VehicleKm:        15000,
		DomesticFlightKm: 8000,
		IntlFlightKm:     12000,
		PurchaseAmount:   300000,
		LocalSourcingPct: 40,
	}

	assert.InDelta(t, 2000*2.80+15000*0.227+15000*0.193, calc.Scope1(data), 1e-9)
	assert.InDelta(t, 25000*0.0571, calc.Scope2(data), 1e-9)

	purchases := 300000 * 0.45 * (1 - 0.40*0.20)
	upstream := 25000*0.0134 + 15000*0.0456
	assert.InDelta(t, 8000*0.230+12000*0.156+purchases+upstream, calc.Scope3(data), 1e-6)
}

func TestBreakdownMatchesScopesUpToUpstreamResidual(t *testing.T) {
	calc := NewCalculator(factors.New())
	data := carbonscore.CompanyData{
		ElectricityKWh:   25000,
		GasKWh:           15000,
		FuelLiters:       2000,
		VehicleKm:        15000,
		DomesticFlightKm: 8000,
		IntlFlightKm:     12000,
		PurchaseAmount:   300000,
		LocalSourcingPct: 40,
	}

	breakdown := calc.Breakdown(data)
	assert.Len(t, breakdown, len(carbonscore.Categories()))

	sum := 0.0
	for category, emissions := range breakdown {
		assert.GreaterOrEqualf(t, emissions, 0.0, "category %s", category)
		sum += emissions
	}

	total := calc.Scope1(data) + calc.Scope2(data) + calc.Scope3(data)
	assert.InDelta(t, calc.UpstreamResidual(data), total-sum, 1e-6)
}

func TestLocalSourcingDiscount(t *testing.T) {
	calc := NewCalculator(factors.New())

	fullyLocal := carbonscore.CompanyData{PurchaseAmount: 100000, LocalSourcingPct: 100}
	noLocal := carbonscore.CompanyData{PurchaseAmount: 100000}

	// 100% local sourcing removes the transport share of purchases
	assert.InDelta(t, 100000*0.45*0.80, calc.Breakdown(fullyLocal)[carbonscore.CategoryPurchases], 1e-9)
	assert.InDelta(t, 100000*0.45, calc.Breakdown(noLocal)[carbonscore.CategoryPurchases], 1e-9)
}

func TestZeroInputContributesZero(t *testing.T) {
	calc := NewCalculator(factors.New())
	data := carbonscore.CompanyData{Sector: "industry", EmployeeBand: "1-9"}

	assert.Equal(t, 0.0, calc.Scope1(data))
	assert.Equal(t, 0.0, calc.Scope2(data))
	assert.Equal(t, 0.0, calc.Scope3(data))
	for _, emissions := range calc.Breakdown(data) {
		assert.Equal(t, 0.0, emissions)
	}
}
