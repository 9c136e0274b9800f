package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonscore/carbonscore"
	"github.com/carbonscore/carbonscore/model/actions"
	"github.com/carbonscore/carbonscore/model/benchmark"
	"github.com/carbonscore/carbonscore/model/factors"
)

func newTestEngine(opts ...EngineOption) *Engine {
	return NewEngine(factors.New(), benchmark.New(), opts...)
}

func TestCalculateElectricityOnlyExample(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate(carbonscore.CompanyData{
		Sector:         "services",
		EmployeeBand:   "10-49",
		ElectricityKWh: 10000,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Scope1)
	assert.Equal(t, 571.0, result.Scope2)
	assert.Equal(t, 134.0, result.Scope3) // upstream residual only
	assert.Equal(t, 705.0, result.TotalKgCO2e)
	assert.Equal(t, 571.0, result.Breakdown[carbonscore.CategoryElectricity])
	assert.Equal(t, 28.2, result.IntensityPerEmployee)
}

func TestTotalEqualsSumOfScopes(t *testing.T) {
	engine := newTestEngine()

	inputs := []carbonscore.CompanyData{
		{Sector: "services", EmployeeBand: "10-49"},
		{Sector: "industry", EmployeeBand: "250+", ElectricityKWh: 123456, GasKWh: 7890, FuelLiters: 1234},
		{Sector: "logistics", EmployeeBand: "50-249", VehicleKm: 450000, FuelLiters: 80000},
		{Sector: "foodservice", EmployeeBand: "1-9", GasKWh: 30000, PurchaseAmount: 90000, LocalSourcingPct: 70},
	}

	for _, data := range inputs {
		result, err := engine.Calculate(data)
		require.NoError(t, err)
		assert.Equal(t, result.Scope1+result.Scope2+result.Scope3, result.TotalKgCO2e)
	}
}

func TestBreakdownSumTrailsTotalByUpstreamResidual(t *testing.T) {
	engine := newTestEngine()

	data := carbonscore.CompanyData{
		Sector:         "industry",
		EmployeeBand:   "50-249",
		ElectricityKWh: 50000,
		GasKWh:         20000,
	}
	result, err := engine.Calculate(data)
	require.NoError(t, err)

	sum := 0.0
	for _, emissions := range result.Breakdown {
		assert.GreaterOrEqual(t, emissions, 0.0)
		sum += emissions
	}

	residual := 50000*0.0134 + 20000*0.0456
	assert.InDelta(t, residual, result.TotalKgCO2e-sum, 0.05)
}

func TestCalculateIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	data := carbonscore.CompanyData{
		Sector:           "retail",
		EmployeeBand:     "50-249",
		Revenue:          3000000,
		ElectricityKWh:   80000,
		GasKWh:           25000,
		FuelLiters:       4000,
		VehicleKm:        60000,
		DomesticFlightKm: 15000,
		IntlFlightKm:     30000,
		PurchaseAmount:   900000,
		LocalSourcingPct: 35,
	}

	first, err := engine.Calculate(data)
	require.NoError(t, err)
	second, err := engine.Calculate(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUnknownSectorAndBandFallBack(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate(carbonscore.CompanyData{
		Sector:         "unknown_sector",
		EmployeeBand:   "whatever",
		ElectricityKWh: 10000,
	})
	require.NoError(t, err)

	// unrecognized band resolves to the 10-49 midpoint of 25 employees
	assert.Equal(t, 28.2, result.IntensityPerEmployee)
	assert.NotEmpty(t, result.BenchmarkPosition)
	assert.NotEmpty(t, result.KPI.Grade)
	assert.GreaterOrEqual(t, result.KPI.EfficiencyScore, 0.0)
	assert.LessOrEqual(t, result.KPI.EfficiencyScore, 100.0)
}

func TestValidateStageRejectsNegativeQuantities(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate(carbonscore.CompanyData{
		Sector:       "services",
		EmployeeBand: "10-49",
		GasKWh:       -5,
	})
	assert.Nil(t, result)

	stageErr := new(carbonscore.StageErr)
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "validate", stageErr.Stage)
}

func TestRevenueIntensity(t *testing.T) {
	engine := newTestEngine()

	disclosed, err := engine.Calculate(carbonscore.CompanyData{
		Sector:         "services",
		EmployeeBand:   "10-49",
		Revenue:        500000,
		ElectricityKWh: 10000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.41, disclosed.IntensityPerRevenue) // kg per k€

	undisclosed, err := engine.Calculate(carbonscore.CompanyData{
		Sector:         "services",
		EmployeeBand:   "10-49",
		ElectricityKWh: 10000,
	})
	require.NoError(t, err)
	assert.Zero(t, undisclosed.IntensityPerRevenue)
}

func TestRecommendationsOrderedAndBounded(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate(carbonscore.CompanyData{
		Sector:           "logistics",
		EmployeeBand:     "50-249",
		ElectricityKWh:   40000,
		GasKWh:           20000,
		FuelLiters:       60000,
		VehicleKm:        300000,
		DomesticFlightKm: 25000,
		IntlFlightKm:     40000,
		PurchaseAmount:   200000,
		LocalSourcingPct: 20,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 8)
	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			result.Recommendations[i-1].ImpactKgCO2e,
			result.Recommendations[i].ImpactKgCO2e)
	}
}

func TestMonthlyDistributionSurvivesRounding(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate(carbonscore.CompanyData{
		Sector:         "technology",
		EmployeeBand:   "10-49",
		ElectricityKWh: 123457,
	})
	require.NoError(t, err)

	sum := 0.0
	for _, month := range result.KPI.Monthly {
		sum += month.KgCO2e
	}
	// each of the 12 values is rounded to 2 decimals at the boundary
	assert.InDelta(t, result.TotalKgCO2e, sum, 0.07)
}

func TestWithActionsConfig(t *testing.T) {
	tuned := actions.DefaultConfig()
	tuned.GreenTariff = 0.20

	engine := newTestEngine(WithActionsConfig(tuned))
	result, err := engine.Calculate(carbonscore.CompanyData{
		Sector:         "services",
		EmployeeBand:   "10-49",
		ElectricityKWh: 100000,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Recommendations)
	assert.InDelta(t, 5710*0.20, result.Recommendations[0].ImpactKgCO2e, 0.01)
}
