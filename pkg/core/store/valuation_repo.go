package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dcf_valuation/pkg/core/report"
)

// ResultRepository is the persistence contract used by the pipeline. The
// in-memory implementation in the pipeline tests satisfies it too.
type ResultRepository interface {
	Save(ctx context.Context, results report.Results) error
	Load(ctx context.Context, runID string) (report.Results, error)
}

// ValuationRepo stores each run as a single JSONB blob keyed by run ID.
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS valuation_runs (
//	  run_id TEXT PRIMARY KEY,
//	  results_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
type ValuationRepo struct{}

// NewValuationRepo creates a repository instance backed by the shared pool.
func NewValuationRepo() *ValuationRepo {
	return &ValuationRepo{}
}

// Save upserts the run payload. Re-running with the same run ID overwrites.
func (r *ValuationRepo) Save(ctx context.Context, results report.Results) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	query := `
		INSERT INTO valuation_runs (run_id, results_json, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (run_id)
		DO UPDATE SET
			results_json = EXCLUDED.results_json,
			created_at = EXCLUDED.created_at;
	`
	if _, err := pool.Exec(ctx, query, results.RunID, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save valuation run: %w", err)
	}
	return nil
}

// Load retrieves a previously saved run by ID.
func (r *ValuationRepo) Load(ctx context.Context, runID string) (report.Results, error) {
	pool := GetPool()
	if pool == nil {
		return report.Results{}, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	query := `SELECT results_json FROM valuation_runs WHERE run_id = $1`
	err := pool.QueryRow(ctx, query, runID).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.Results{}, fmt.Errorf("no valuation run found for id %s", runID)
		}
		return report.Results{}, fmt.Errorf("failed to load valuation run: %w", err)
	}

	var results report.Results
	if err := json.Unmarshal(jsonData, &results); err != nil {
		return report.Results{}, fmt.Errorf("failed to unmarshal valuation run: %w", err)
	}
	return results, nil
}
