// Package report turns pipeline output into artifacts for external consumers:
// CSV files on disk, a console summary, a markdown digest, and the aggregated
// Results payload handed to API or dashboard layers. Plot rendering is
// deliberately left to those consumers.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dcf_valuation/pkg/core/validate"
	"dcf_valuation/pkg/core/valuation"
)

// FCFFRow is one year of the cross-scenario FCFF table.
type FCFFRow struct {
	Year   int                `json:"year"`
	ByName map[string]float64 `json:"fcff"`
}

// Results is the full pipeline output payload.
type Results struct {
	RunID       string                       `json:"run_id"`
	Scenarios   []valuation.ScenarioResult   `json:"scenarios"`
	Sensitivity []valuation.SensitivityPoint `json:"sensitivity"`
	FCFFTable   []FCFFRow                    `json:"fcff_table"`
	Artifacts   map[string]string            `json:"artifacts"`
	DataPreview []validate.RevenuePoint      `json:"data_preview,omitempty"`
}

// SaveArtifacts writes the scenario summary, per-scenario FCFF tables, the
// sensitivity curve, and the historical preview as CSV files under outputDir.
// It returns artifact name -> path for everything written.
func SaveArtifacts(
	outputDir string,
	scenarios []valuation.ScenarioResult,
	sensitivity []valuation.SensitivityPoint,
	preview []validate.RevenuePoint,
) (map[string]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", outputDir, err)
	}

	artifacts := make(map[string]string)

	summaryPath := filepath.Join(outputDir, "scenario_summary.csv")
	summaryRows := [][]string{{"scenario", "wacc", "npv", "irr"}}
	for _, s := range scenarios {
		irr := ""
		if s.IRR != nil {
			irr = formatFloat(*s.IRR)
		}
		summaryRows = append(summaryRows, []string{s.Name, formatFloat(s.WACC), formatFloat(s.NPV), irr})
	}
	if err := writeCSV(summaryPath, summaryRows); err != nil {
		return nil, err
	}
	artifacts["scenario_summary"] = summaryPath

	for _, s := range scenarios {
		rows := [][]string{{"year", "revenue", "fcff"}}
		for i := range s.FCFF {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				formatFloat(s.Revenues[i]),
				formatFloat(s.FCFF[i]),
			})
		}
		name := fmt.Sprintf("fcff_%s", strings.ToLower(s.Name))
		path := filepath.Join(outputDir, name+".csv")
		if err := writeCSV(path, rows); err != nil {
			return nil, err
		}
		artifacts[name] = path
	}

	if len(sensitivity) > 0 {
		rows := [][]string{{"wacc", "npv"}}
		for _, p := range sensitivity {
			rows = append(rows, []string{formatFloat(p.WACC), formatFloat(p.NPV)})
		}
		path := filepath.Join(outputDir, "sensitivity_wacc.csv")
		if err := writeCSV(path, rows); err != nil {
			return nil, err
		}
		artifacts["sensitivity_wacc"] = path
	}

	if len(preview) > 0 {
		rows := [][]string{{"year", "revenue"}}
		for _, p := range preview {
			rows = append(rows, []string{strconv.Itoa(p.Year), formatFloat(p.Revenue)})
		}
		path := filepath.Join(outputDir, "historical_data_preview.csv")
		if err := writeCSV(path, rows); err != nil {
			return nil, err
		}
		artifacts["historical_data_preview"] = path
	}

	return artifacts, nil
}

// BuildResults assembles the aggregated payload, including the year-by-year
// FCFF table across all scenarios.
func BuildResults(
	runID string,
	scenarios []valuation.ScenarioResult,
	sensitivity []valuation.SensitivityPoint,
	artifacts map[string]string,
	preview []validate.RevenuePoint,
) Results {
	var table []FCFFRow
	if len(scenarios) > 0 {
		for year := 1; year <= len(scenarios[0].FCFF); year++ {
			row := FCFFRow{Year: year, ByName: make(map[string]float64, len(scenarios))}
			for _, s := range scenarios {
				row.ByName[s.Name] = s.FCFF[year-1]
			}
			table = append(table, row)
		}
	}

	return Results{
		RunID:       runID,
		Scenarios:   scenarios,
		Sensitivity: sensitivity,
		FCFFTable:   table,
		Artifacts:   artifacts,
		DataPreview: preview,
	}
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
