package carbonscore

import (
	"fmt"
)

// Emission categories of the detailed breakdown. The set is fixed: every
// breakdown map carries exactly these seven keys.
const (
	CategoryElectricity = "electricity"
	CategoryGas         = "gas"
	CategoryFuel        = "fuel"
	CategoryVehicles    = "vehicles"
	CategoryDomesticAir = "domestic_flights"
	CategoryIntlAir     = "international_flights"
	CategoryPurchases   = "purchases"
)

// Categories lists the breakdown keys in their canonical order.
func Categories() []string {
	return []string{
		CategoryElectricity,
		CategoryGas,
		CategoryFuel,
		CategoryVehicles,
		CategoryDomesticAir,
		CategoryIntlAir,
		CategoryPurchases,
	}
}

// CompanyData is one questionnaire snapshot. All physical quantities are
// yearly figures and must be non negative. Revenue set to zero means the
// company did not disclose it.
type CompanyData struct {
	Name         string
	Location     string
	Sector       string
	EmployeeBand string

	Revenue float64

	ElectricityKWh float64
	GasKWh         float64
	FuelLiters     float64

	VehicleKm        float64
	DomesticFlightKm float64
	IntlFlightKm     float64

	PurchaseAmount   float64
	LocalSourcingPct float64
}

// Validate checks the numeric invariants of the questionnaire. Sector and
// employee band are not checked here: unknown vocabulary is recovered
// downstream by profile substitution, never rejected.
func (data CompanyData) Validate() error {
	quantities := []struct {
		name  string
		value float64
	}{
		{"revenue", data.Revenue},
		{"electricity_kwh", data.ElectricityKWh},
		{"gas_kwh", data.GasKWh},
		{"fuel_liters", data.FuelLiters},
		{"vehicle_km", data.VehicleKm},
		{"domestic_flight_km", data.DomesticFlightKm},
		{"international_flight_km", data.IntlFlightKm},
		{"purchase_amount", data.PurchaseAmount},
	}
	for _, q := range quantities {
		if q.value < 0 {
			return fmt.Errorf("%s must not be negative, got %f", q.name, q.value)
		}
	}
	if data.LocalSourcingPct < 0 || data.LocalSourcingPct > 100 {
		return fmt.Errorf("local sourcing percentage must be within [0,100], got %f", data.LocalSourcingPct)
	}
	return nil
}

// Recommendation is one quantified mitigation action. Ranking always sorts
// on ImpactKgCO2e, never on anything parsed back out of the text.
type Recommendation struct {
	Action       string  `json:"action"`
	ImpactKgCO2e float64 `json:"impact_kgco2e"`
	SharePct     float64 `json:"share_pct"`
	Hint         string  `json:"hint"`
}

// String renders the action the way the report layer displays it.
func (rec Recommendation) String() string {
	return fmt.Sprintf("%s → cuts %.0f kgCO2e (%.1f%% of total) | %s", rec.Action, rec.ImpactKgCO2e, rec.SharePct, rec.Hint)
}

// YearProjection is one point of the reduction trajectory path.
type YearProjection struct {
	Year   int     `json:"year"`
	KgCO2e float64 `json:"kgco2e"`
}

// Trajectory projects the footprint against the 2030 target (55% cut).
type Trajectory struct {
	Current               float64          `json:"current"`
	Target2030            float64          `json:"target_2030"`
	AnnualReductionNeeded float64          `json:"annual_reduction_needed"`
	FeasibleWithActions   float64          `json:"feasible_with_actions"`
	Path                  []YearProjection `json:"path"`
}

// Equivalents translates the footprint into everyday magnitudes.
type Equivalents struct {
	TreesToPlant        float64 `json:"trees_to_plant"`
	CarsOffRoad         float64 `json:"cars_off_road"`
	HomeEnergyYears     float64 `json:"homes_energy_year"`
	ParisNewYorkFlights float64 `json:"flights_paris_ny"`
}

// MonthlyEmissions is the seasonal share of one month. Factor weights sum
// to 12 over the year so the distributed total equals the yearly total.
type MonthlyEmissions struct {
	Month  int     `json:"month"`
	KgCO2e float64 `json:"emissions"`
	Factor float64 `json:"factor"`
}

// PeerComparison situates the company among sector peers of the same size.
type PeerComparison struct {
	Percentile        int     `json:"percentile"`
	SectorAverage     float64 `json:"sector_average"`
	BestInClass       float64 `json:"best_in_class"`
	ImprovementNeeded float64 `json:"improvement_needed"`
}

// Certifications flags which labels the company could realistically reach.
type Certifications struct {
	ISO14001            bool `json:"iso_14001"`
	BCorp               bool `json:"b_corp"`
	CarbonNeutral       bool `json:"carbon_neutral"`
	ScienceBasedTargets bool `json:"science_based_targets"`
}

// Insights are structured hooks consumed by the narrative generator.
type Insights struct {
	PrimaryFocus     string `json:"primary_focus"`
	QuickWin         string `json:"quick_win"`
	LongTermStrategy string `json:"long_term_strategy"`
}

// KPISet groups the derived indicators of a calculation.
type KPISet struct {
	EfficiencyScore    float64            `json:"carbon_efficiency_score"`
	Grade              string             `json:"sustainability_grade"`
	ReductionPotential map[string]float64 `json:"reduction_potential"`
	Trajectory         Trajectory         `json:"trajectory_2030"`
	CostOfCarbon       float64            `json:"cost_of_carbon"`
	Equivalents        Equivalents        `json:"equivalent_metrics"`
	Monthly            []MonthlyEmissions `json:"monthly_breakdown"`
	Peers              PeerComparison     `json:"peer_comparison"`
	Certifications     Certifications     `json:"certification_readiness"`
	Insights           Insights           `json:"insights"`
}

// Result is one complete footprint estimation. It is created fresh per
// calculation and never mutated once returned. Downstream consumers must
// treat it as opaque and must not recompute scopes themselves.
//
// TotalKgCO2e always equals Scope1+Scope2+Scope3. The breakdown sum may
// fall short of the total by the upstream energy residual which belongs to
// scope 3 but to no single category; the gap is bounded by
// electricity_kwh*0.0134 + gas_kwh*0.0456 and is intentional.
type Result struct {
	TotalKgCO2e float64 `json:"total_co2e"`
	Scope1      float64 `json:"scope_1"`
	Scope2      float64 `json:"scope_2"`
	Scope3      float64 `json:"scope_3"`

	Breakdown map[string]float64 `json:"breakdown"`

	Recommendations []Recommendation `json:"recommendations"`

	BenchmarkPosition    string  `json:"benchmark_position"`
	IntensityPerEmployee float64 `json:"intensity_per_employee"`
	// IntensityPerRevenue is kgCO2e per k€ of revenue, zero when the
	// company did not disclose revenue.
	IntensityPerRevenue float64 `json:"intensity_per_revenue,omitempty"`

	KPI KPISet `json:"kpi"`
}

// StageErr reports a failed engine stage. The engine never returns a
// partially populated result alongside a StageErr.
type StageErr struct {
	Err   error
	Stage string
}

func (stageErr *StageErr) Error() string {
	return fmt.Sprintf("calculation failed (stage: %s): %s", stageErr.Stage, stageErr.Err.Error())
}

func (stageErr *StageErr) Unwrap() error {
	return stageErr.Err
}
