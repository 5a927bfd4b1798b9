package valuation

import (
	"math"

	"dcf_valuation/pkg/core/assumption"
	"dcf_valuation/pkg/core/scenario"
)

const (
	sweepFloor = 0.02
	sweepCeil  = 0.30
	sweepSpan  = 0.04
	sweepStep  = 0.005
)

// SweepWACC re-runs the valuation across a WACC band of +/-0.04 around the
// baseline scenario, clamped to [0.02, 0.30], in 0.005 steps. Each swept WACC
// is rounded to 3 decimals so repeated float addition cannot drift the grid.
// Points come back in ascending WACC order.
func SweepWACC(a assumption.Assumptions, baseline scenario.Params) ([]SensitivityPoint, error) {
	start := math.Max(sweepFloor, baseline.WACC-sweepSpan)
	stop := math.Min(sweepCeil, baseline.WACC+sweepSpan)

	var points []SensitivityPoint
	for w := start; w <= stop+1e-4; w += sweepStep {
		wacc := math.Round(w*1000) / 1000
		params := scenario.Params{
			Name:       baseline.Name,
			GrowthRate: baseline.GrowthRate,
			WACC:       wacc,
		}
		result, err := RunDCF(a, params)
		if err != nil {
			return nil, err
		}
		points = append(points, SensitivityPoint{WACC: wacc, NPV: result.NPV})
	}
	return points, nil
}
