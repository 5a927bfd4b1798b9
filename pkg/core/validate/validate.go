// Package validate provides the plausibility checks run between assumption
// validation and scenario expansion, plus derived growth metrics over a
// historical revenue series. Everything here is pure; no partial state is
// produced on failure.
package validate

import (
	"fmt"
	"math"

	"dcf_valuation/pkg/core/assumption"
)

// RevenuePoint is one period of historical revenue. Series are ordered
// chronologically; the last entry is the latest period. Year values are
// relative or absolute, the checks only use ordering.
type RevenuePoint struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}

// How far below the latest historical revenue the starting revenue may sit
// before the assumption set is considered implausible.
const minStartingRevenueRatio = 0.5

// CheckPlausibility verifies the assumption set against historical revenue.
// A nil or empty series means no historical data is available and only the
// cross-parameter sanity check runs. Violations abort the run before any
// scenario is computed.
func CheckPlausibility(a assumption.Assumptions, historical []RevenuePoint) error {
	if len(historical) > 0 {
		for _, point := range historical {
			if point.Revenue <= 0 {
				return fmt.Errorf("historical revenues must be positive (year %d has %.2f)", point.Year, point.Revenue)
			}
		}
		latest := historical[len(historical)-1].Revenue
		if a.StartingRevenue < latest*minStartingRevenueRatio {
			return fmt.Errorf("starting revenue %.2f should be in line with recent history (latest %.2f)",
				a.StartingRevenue, latest)
		}
	}

	if a.TerminalGrowth >= a.WACC {
		return fmt.Errorf("terminal growth %.4f must remain below WACC %.4f", a.TerminalGrowth, a.WACC)
	}
	return nil
}

// YoY returns the year-over-year percentage change between two revenue values.
func YoY(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return (current - prior) / prior * 100
}

// CAGR computes the compound annual growth rate of the series as a percentage.
// Series shorter than two points have no growth to measure and return 0.
func CAGR(series []RevenuePoint) float64 {
	if len(series) < 2 {
		return 0
	}
	first := series[0].Revenue
	last := series[len(series)-1].Revenue
	periods := len(series) - 1
	if first <= 0 {
		return 0
	}
	return (math.Pow(last/first, 1.0/float64(periods)) - 1) * 100
}

// LatestRevenue returns the most recent revenue in the series, or 0 for an
// empty series.
func LatestRevenue(series []RevenuePoint) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].Revenue
}
