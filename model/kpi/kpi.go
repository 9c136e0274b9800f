// Package kpi derives the composite indicators of a footprint estimation:
// efficiency score, grade, reduction potential, trajectory, equivalent
// metrics, seasonal distribution, peer comparison and certification flags.
package kpi

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/carbonscore/carbonscore"
	"github.com/carbonscore/carbonscore/model/benchmark"
)

// Reduction trajectory anchors. The baseline year is fixed so identical
// inputs always yield identical projections.
const (
	baselineYear = 2025
	targetYear   = 2030

	// EU fit-for-55 alignment: 55% cut by 2030, 5.5% per year.
	targetRemainingShare = 0.45
	annualReductionShare = 0.055
)

// Achievable, not guaranteed, abatement share per category.
var reductionShares = map[string]float64{
	carbonscore.CategoryElectricity: 0.30,
	carbonscore.CategoryVehicles:    0.50,
	carbonscore.CategoryDomesticAir: 0.25,
	carbonscore.CategoryIntlAir:     0.25,
	carbonscore.CategoryPurchases:   0.20,
}

const defaultReductionShare = 0.15

// seasonalWeights distributes a yearly total over months, winter heavy.
// The weights sum to exactly 12 so the distributed total equals the
// yearly total.
var seasonalWeights = [12]float64{1.3, 1.2, 1.1, 1.0, 0.8, 0.7, 0.6, 0.7, 1.0, 1.1, 1.2, 1.3}

// Synthesizer computes the KPI block from an injected read-only benchmark
// table. It is pure and safe for concurrent callers.
type Synthesizer struct {
	benchmarks *benchmark.Table
}

func NewSynthesizer(benchmarks *benchmark.Table) *Synthesizer {
	return &Synthesizer{benchmarks: benchmarks}
}

// Synthesize derives the full KPI block. All values stay full precision;
// rounding is the orchestrator's concern.
func (synth *Synthesizer) Synthesize(data carbonscore.CompanyData, totalKgCO2e float64, breakdown map[string]float64) carbonscore.KPISet {
	profile := synth.benchmarks.Resolve(data.Sector)
	employees := benchmark.EmployeeCount(data.EmployeeBand)

	score := efficiencyScore(profile, totalKgCO2e, employees)
	potential := reductionPotential(breakdown)
	trajectory := trajectory(totalKgCO2e, potential)
	emissions := carbonscore.Emissions(totalKgCO2e)

	return carbonscore.KPISet{
		EfficiencyScore:    score,
		Grade:              Grade(score),
		ReductionPotential: potential,
		Trajectory:         trajectory,
		CostOfCarbon:       emissions.SocialCost(),
		Equivalents:        emissions.Equivalents(),
		Monthly:            monthlyDistribution(totalKgCO2e),
		Peers:              peerComparison(profile, totalKgCO2e, employees),
		Certifications:     certifications(data, score, totalKgCO2e, trajectory),
		Insights:           insights(totalKgCO2e, breakdown, potential),
	}
}

// efficiencyScore compares the company's per-employee intensity to the
// sector average: matching the average scores 50, doing better pushes
// toward 100. A company emitting nothing scores 100.
func efficiencyScore(profile benchmark.Profile, totalKgCO2e float64, employees int) float64 {
	if employees == 0 {
		return 0
	}
	if totalKgCO2e == 0 {
		return 100
	}

	ratio := profile.PerEmployee / (totalKgCO2e / float64(employees))
	return min(100, max(0, ratio*50))
}

// Grade maps an efficiency score to its letter grade. Fixed 10 point
// bands, deterministic and monotone.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func reductionPotential(breakdown map[string]float64) map[string]float64 {
	potential := make(map[string]float64, len(breakdown))
	for _, category := range carbonscore.Categories() {
		share, found := reductionShares[category]
		if !found {
			share = defaultReductionShare
		}
		potential[category] = breakdown[category] * share
	}
	return potential
}

func trajectory(totalKgCO2e float64, potential map[string]float64) carbonscore.Trajectory {
	target := totalKgCO2e * targetRemainingShare

	feasible := make([]float64, 0, len(potential))
	for _, category := range carbonscore.Categories() {
		feasible = append(feasible, potential[category])
	}

	// Linear glide path between the baseline and the 2030 target.
	var glide interp.PiecewiseLinear
	glide.Fit(
		[]float64{baselineYear, targetYear},
		[]float64{totalKgCO2e, target},
	)

	path := make([]carbonscore.YearProjection, 0, targetYear-baselineYear+1)
	for year := baselineYear; year <= targetYear; year++ {
		path = append(path, carbonscore.YearProjection{
			Year:   year,
			KgCO2e: glide.Predict(float64(year)),
		})
	}

	return carbonscore.Trajectory{
		Current:               totalKgCO2e,
		Target2030:            target,
		AnnualReductionNeeded: totalKgCO2e * annualReductionShare,
		FeasibleWithActions:   floats.Sum(feasible),
		Path:                  path,
	}
}

func monthlyDistribution(totalKgCO2e float64) []carbonscore.MonthlyEmissions {
	monthly := make([]carbonscore.MonthlyEmissions, 0, len(seasonalWeights))
	for month, weight := range seasonalWeights {
		monthly = append(monthly, carbonscore.MonthlyEmissions{
			Month:  month + 1,
			KgCO2e: totalKgCO2e / 12 * weight,
			Factor: weight,
		})
	}
	return monthly
}

func peerComparison(profile benchmark.Profile, totalKgCO2e float64, employees int) carbonscore.PeerComparison {
	bestInClass := profile.P25 * float64(employees)
	percentile := 90
	if employees > 0 {
		percentile = profile.Percentile(totalKgCO2e / float64(employees))
	}

	return carbonscore.PeerComparison{
		Percentile:        percentile,
		SectorAverage:     profile.PerEmployee * float64(employees),
		BestInClass:       bestInClass,
		ImprovementNeeded: max(0, totalKgCO2e-bestInClass),
	}
}

func certifications(data carbonscore.CompanyData, score, totalKgCO2e float64, trajectory carbonscore.Trajectory) carbonscore.Certifications {
	return carbonscore.Certifications{
		ISO14001:            score >= 70,
		BCorp:               score >= 80 && data.LocalSourcingPct >= 50,
		CarbonNeutral:       trajectory.FeasibleWithActions >= totalKgCO2e*0.8,
		ScienceBasedTargets: trajectory.FeasibleWithActions >= trajectory.Target2030,
	}
}

// insights picks the structured hooks the narrative generator builds on.
// Category iteration follows the canonical order so ties resolve the same
// way on every run.
func insights(totalKgCO2e float64, breakdown, potential map[string]float64) carbonscore.Insights {
	primary := maxCategory(breakdown)
	quickWin := maxCategory(potential)

	strategy := "energy_efficiency"
	if breakdown[carbonscore.CategoryVehicles] > totalKgCO2e*0.2 {
		strategy = "electrification"
	}

	return carbonscore.Insights{
		PrimaryFocus:     primary,
		QuickWin:         quickWin,
		LongTermStrategy: strategy,
	}
}

func maxCategory(values map[string]float64) string {
	best := ""
	bestValue := 0.0
	for _, category := range carbonscore.Categories() {
		if best == "" || values[category] > bestValue {
			best = category
			bestValue = values[category]
		}
	}
	return best
}
