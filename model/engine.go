// Package model composes the calculation stages into the single
// entry point the surrounding service calls.
package model

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/carbonscore/carbonscore"
	"github.com/carbonscore/carbonscore/model/actions"
	"github.com/carbonscore/carbonscore/model/benchmark"
	"github.com/carbonscore/carbonscore/model/factors"
	"github.com/carbonscore/carbonscore/model/kpi"
	"github.com/carbonscore/carbonscore/model/scopes"
)

// Engine is the deterministic footprint estimator. It owns no mutable
// state: the two reference tables are read-only after construction, so any
// number of goroutines may call Calculate concurrently without locking.
type Engine struct {
	scopes     *scopes.Calculator
	benchmarks *benchmark.Table
	kpis       *kpi.Synthesizer
	ranker     *actions.Ranker
}

type EngineOption func(*Engine)

// WithActionsConfig overrides the default recommendation template shares.
func WithActionsConfig(config actions.Config) EngineOption {
	return func(engine *Engine) {
		engine.ranker = actions.NewRanker(engine.benchmarks, config)
	}
}

// NewEngine wires the calculation stages around the injected tables.
func NewEngine(factorTable *factors.Table, benchmarkTable *benchmark.Table, opts ...EngineOption) *Engine {
	engine := &Engine{
		scopes:     scopes.NewCalculator(factorTable),
		benchmarks: benchmarkTable,
		kpis:       kpi.NewSynthesizer(benchmarkTable),
		ranker:     actions.NewRanker(benchmarkTable, actions.DefaultConfig()),
	}

	for _, option := range opts {
		option(engine)
	}

	return engine
}

// Calculate runs the fixed stage order: validate, scopes, breakdown,
// benchmark, recommendations, KPIs, intensities. Any stage failure aborts
// the whole calculation; no partial result is ever returned. Rounding is
// applied here and only here, internal math stays full precision.
func (engine *Engine) Calculate(data carbonscore.CompanyData) (result *carbonscore.Result, err error) {
	if validateErr := data.Validate(); validateErr != nil {
		return nil, &carbonscore.StageErr{Stage: "validate", Err: validateErr}
	}

	stages := []struct {
		name string
		run  func(*carbonscore.Result)
	}{
		{"scopes", func(r *carbonscore.Result) {
			r.Scope1 = engine.scopes.Scope1(data)
			r.Scope2 = engine.scopes.Scope2(data)
			r.Scope3 = engine.scopes.Scope3(data)
			r.TotalKgCO2e = r.Scope1 + r.Scope2 + r.Scope3
		}},
		{"breakdown", func(r *carbonscore.Result) {
			r.Breakdown = engine.scopes.Breakdown(data)
		}},
		{"benchmark", func(r *carbonscore.Result) {
			profile := engine.benchmarks.Resolve(data.Sector)
			employees := benchmark.EmployeeCount(data.EmployeeBand)
			r.BenchmarkPosition = profile.PositionForTotal(r.TotalKgCO2e, employees)
		}},
		{"recommendations", func(r *carbonscore.Result) {
			r.Recommendations = engine.ranker.Rank(data, r.Breakdown)
		}},
		{"kpis", func(r *carbonscore.Result) {
			r.KPI = engine.kpis.Synthesize(data, r.TotalKgCO2e, r.Breakdown)
		}},
		{"intensities", func(r *carbonscore.Result) {
			employees := benchmark.EmployeeCount(data.EmployeeBand)
			r.IntensityPerEmployee = r.TotalKgCO2e / float64(employees)
			if data.Revenue > 0 {
				// kgCO2e per k€ of revenue; zero when undisclosed.
				r.IntensityPerRevenue = r.TotalKgCO2e / data.Revenue * 1000
			}
		}},
	}

	result = new(carbonscore.Result)
	for _, stage := range stages {
		if stageErr := runStage(stage.name, result, stage.run); stageErr != nil {
			return nil, stageErr
		}
	}

	roundResult(result)

	slog.Debug("calculation completed",
		"company", data.Name,
		"total_kgco2e", result.TotalKgCO2e,
		"grade", result.KPI.Grade)

	return result, nil
}

// runStage converts an unexpected panic inside a stage into a StageErr so
// the caller receives a single failure signal naming the failed stage.
func runStage(name string, result *carbonscore.Result, run func(*carbonscore.Result)) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = &carbonscore.StageErr{Stage: name, Err: fmt.Errorf("%v", recovered)}
		}
	}()

	run(result)
	return nil
}

// Output precision: 2 decimals for masses and currency, 1 decimal for
// scores and equivalents, 4 for the revenue intensity ratio.
func roundResult(result *carbonscore.Result) {
	result.Scope1 = round(result.Scope1, 2)
	result.Scope2 = round(result.Scope2, 2)
	result.Scope3 = round(result.Scope3, 2)
	// Recomputed from the rounded scopes so total == scope1+scope2+scope3
	// holds exactly on the returned record.
	result.TotalKgCO2e = result.Scope1 + result.Scope2 + result.Scope3
	result.IntensityPerEmployee = round(result.IntensityPerEmployee, 2)
	result.IntensityPerRevenue = round(result.IntensityPerRevenue, 4)

	for category, emissions := range result.Breakdown {
		result.Breakdown[category] = round(emissions, 2)
	}
	for i, recommendation := range result.Recommendations {
		result.Recommendations[i].ImpactKgCO2e = round(recommendation.ImpactKgCO2e, 2)
		result.Recommendations[i].SharePct = round(recommendation.SharePct, 1)
	}

	set := &result.KPI
	set.EfficiencyScore = round(set.EfficiencyScore, 1)
	set.CostOfCarbon = round(set.CostOfCarbon, 2)
	for category, emissions := range set.ReductionPotential {
		set.ReductionPotential[category] = round(emissions, 2)
	}

	set.Trajectory.Current = round(set.Trajectory.Current, 2)
	set.Trajectory.Target2030 = round(set.Trajectory.Target2030, 2)
	set.Trajectory.AnnualReductionNeeded = round(set.Trajectory.AnnualReductionNeeded, 2)
	set.Trajectory.FeasibleWithActions = round(set.Trajectory.FeasibleWithActions, 2)
	for i, projection := range set.Trajectory.Path {
		set.Trajectory.Path[i].KgCO2e = round(projection.KgCO2e, 2)
	}

	set.Equivalents.TreesToPlant = round(set.Equivalents.TreesToPlant, 1)
	set.Equivalents.CarsOffRoad = round(set.Equivalents.CarsOffRoad, 1)
	set.Equivalents.HomeEnergyYears = round(set.Equivalents.HomeEnergyYears, 1)
	set.Equivalents.ParisNewYorkFlights = round(set.Equivalents.ParisNewYorkFlights, 1)

	for i, month := range set.Monthly {
		set.Monthly[i].KgCO2e = round(month.KgCO2e, 2)
	}

	set.Peers.SectorAverage = round(set.Peers.SectorAverage, 2)
	set.Peers.BestInClass = round(set.Peers.BestInClass, 2)
	set.Peers.ImprovementNeeded = round(set.Peers.ImprovementNeeded, 2)
}

func round(value float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(value*pow) / pow
}
