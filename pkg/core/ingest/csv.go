// Package ingest supplies historical revenue series to the pipeline, either
// loaded from a CSV file or synthesized from the assumptions. It is an
// external collaborator of the valuation core: the engine itself never
// touches files.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dcf_valuation/pkg/core/validate"
)

// LoadCSV reads a revenue series from a CSV file. The header must contain a
// "revenue" column; a "year" column is optional (rows are numbered from the
// end when absent). Rows are returned in file order, which callers treat as
// chronological.
func LoadCSV(path string) ([]validate.RevenuePoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %s is empty", path)
	}

	header := records[0]
	revenueCol, yearCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "revenue":
			revenueCol = i
		case "year":
			yearCol = i
		}
	}
	if revenueCol == -1 {
		return nil, fmt.Errorf("CSV must contain a 'revenue' column")
	}

	rows := records[1:]
	series := make([]validate.RevenuePoint, 0, len(rows))
	for i, row := range rows {
		if revenueCol >= len(row) {
			return nil, fmt.Errorf("row %d: missing revenue value", i+1)
		}
		revenue, err := strconv.ParseFloat(strings.TrimSpace(row[revenueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid revenue %q: %w", i+1, row[revenueCol], err)
		}

		year := i - len(rows) + 1 // ...-2, -1, 0 when no year column
		if yearCol != -1 && yearCol < len(row) {
			year, err = strconv.Atoi(strings.TrimSpace(row[yearCol]))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid year %q: %w", i+1, row[yearCol], err)
			}
		}
		series = append(series, validate.RevenuePoint{Year: year, Revenue: revenue})
	}
	return series, nil
}

// WriteCSV persists a revenue series with a year,revenue header. Used for the
// synthetic series and the historical data preview artifact.
func WriteCSV(path string, series []validate.RevenuePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"year", "revenue"}); err != nil {
		return err
	}
	for _, point := range series {
		record := []string{
			strconv.Itoa(point.Year),
			strconv.FormatFloat(point.Revenue, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
