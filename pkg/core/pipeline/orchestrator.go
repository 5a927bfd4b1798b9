// Package pipeline wires the valuation stages end to end: resolve historical
// data, validate plausibility, expand scenarios, run the DCF engine per
// scenario, sweep WACC sensitivity on the base case, and hand the aggregate
// to reporting and optional persistence.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dcf_valuation/pkg/core/assumption"
	"dcf_valuation/pkg/core/config"
	"dcf_valuation/pkg/core/ingest"
	"dcf_valuation/pkg/core/report"
	"dcf_valuation/pkg/core/scenario"
	"dcf_valuation/pkg/core/store"
	"dcf_valuation/pkg/core/validate"
	"dcf_valuation/pkg/core/valuation"
)

// Default number of synthetic periods generated when no historical data is
// supplied, matching the projection horizon default.
const defaultSyntheticPeriods = 5

// Request carries one valuation run's inputs. Historical takes precedence
// over CSVPath; with neither set a synthetic series is generated.
type Request struct {
	Assumptions assumption.Assumptions
	Historical  []validate.RevenuePoint
	CSVPath     string
}

// Orchestrator coordinates a full valuation run. Scenario computations share
// only the read-only assumptions, so runs are deterministic and individual
// scenarios could be computed in any order.
type Orchestrator struct {
	settings config.Settings
	repo     store.ResultRepository
}

// NewOrchestrator creates an orchestrator without persistence. Call
// SetRepository to enable saving runs.
func NewOrchestrator(settings config.Settings) *Orchestrator {
	return &Orchestrator{settings: settings}
}

// SetRepository injects the persistence backend (or a test double).
func (o *Orchestrator) SetRepository(repo store.ResultRepository) {
	o.repo = repo
}

// Run executes the pipeline and returns the aggregated results. Validation
// failures abort before any scenario is computed.
func (o *Orchestrator) Run(ctx context.Context, req Request) (report.Results, error) {
	runID := uuid.NewString()
	fmt.Printf("Starting valuation run %s...\n", runID)
	start := time.Now()

	if err := o.settings.EnsureDirs(); err != nil {
		return report.Results{}, err
	}

	// 1. Structural validation.
	if err := req.Assumptions.Validate(); err != nil {
		return report.Results{}, fmt.Errorf("assumption validation failed: %w", err)
	}

	// 2. Resolve historical data and check plausibility.
	historical, err := o.resolveData(req)
	if err != nil {
		return report.Results{}, err
	}
	if err := validate.CheckPlausibility(req.Assumptions, historical); err != nil {
		return report.Results{}, fmt.Errorf("plausibility check failed: %w", err)
	}
	fmt.Printf("Validation passed (%d historical periods)\n", len(historical))

	// 3. Scenario expansion.
	scenarios, err := scenario.Expand(req.Assumptions)
	if err != nil {
		return report.Results{}, fmt.Errorf("scenario expansion failed: %w", err)
	}

	// 4. Valuation per scenario.
	scenarioResults := make([]valuation.ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		result, err := valuation.RunDCF(req.Assumptions, s)
		if err != nil {
			return report.Results{}, fmt.Errorf("valuation failed for scenario %s: %w", s.Name, err)
		}
		scenarioResults = append(scenarioResults, result)
	}
	fmt.Printf("Computed %d scenarios\n", len(scenarioResults))

	// 5. WACC sensitivity on the base scenario.
	sensitivity, err := valuation.SweepWACC(req.Assumptions, scenarios[0])
	if err != nil {
		return report.Results{}, fmt.Errorf("sensitivity sweep failed: %w", err)
	}
	fmt.Printf("Sensitivity sweep: %d points\n", len(sensitivity))

	// 6. Artifacts and aggregation.
	artifacts, err := report.SaveArtifacts(o.settings.OutputDir, scenarioResults, sensitivity, historical)
	if err != nil {
		return report.Results{}, fmt.Errorf("failed to save artifacts: %w", err)
	}
	results := report.BuildResults(runID, scenarioResults, sensitivity, artifacts, historical)

	// 7. Optional persistence.
	if o.repo != nil {
		if err := o.repo.Save(ctx, results); err != nil {
			return report.Results{}, fmt.Errorf("failed to persist run: %w", err)
		}
		fmt.Printf("Persisted run %s\n", runID)
	}

	fmt.Printf("Valuation run %s completed in %v\n", runID, time.Since(start))
	return results, nil
}

// resolveData picks the historical series: explicit > CSV file > synthetic.
func (o *Orchestrator) resolveData(req Request) ([]validate.RevenuePoint, error) {
	if len(req.Historical) > 0 {
		return req.Historical, nil
	}
	if req.CSVPath != "" {
		series, err := ingest.LoadCSV(req.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load historical data: %w", err)
		}
		return series, nil
	}
	return ingest.GenerateSynthetic(req.Assumptions, defaultSyntheticPeriods), nil
}
