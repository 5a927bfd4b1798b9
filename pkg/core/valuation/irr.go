package valuation

import "math"

const (
	irrInitialRate   = 0.10
	irrMaxIterations = 100
	irrTolerance     = 1e-6
	irrDerivFloor    = 1e-9
	// Converged rates at or below -99.9% are rejected as economically
	// meaningless (total capital destruction is not a usable return figure).
	irrRateFloor = -0.999
)

// SolveIRR finds the rate at which the NPV of the cash-flow sequence is zero,
// using Newton-Raphson. It returns nil rather than an error when no usable
// root exists; the three no-result conditions are kept distinct:
//
//   - no sign change in the flows (no real positive-domain root),
//   - derivative magnitude collapses below 1e-9 (stalled iteration),
//   - 100 iterations without the update shrinking below 1e-6 (non-convergence).
//
// A converged root below the -99.9% floor is also discarded.
func SolveIRR(cashFlows []float64) *float64 {
	if len(cashFlows) == 0 {
		return nil
	}

	hasPositive, hasNegative := false, false
	for _, v := range cashFlows {
		if v > 0 {
			hasPositive = true
		}
		if v < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return nil
	}

	rate := irrInitialRate
	for i := 0; i < irrMaxIterations; i++ {
		npv := 0.0
		derivative := 0.0
		for period, value := range cashFlows {
			p := float64(period)
			npv += value / math.Pow(1+rate, p)
			// Period 0 is a constant with respect to the rate.
			if period > 0 {
				derivative -= p * value / math.Pow(1+rate, p+1)
			}
		}

		if math.Abs(derivative) < irrDerivFloor {
			return nil
		}

		newRate := rate - npv/derivative
		if math.Abs(newRate-rate) < irrTolerance {
			if newRate > irrRateFloor {
				return &newRate
			}
			return nil
		}
		rate = newRate
	}
	return nil
}
