package ingest

import (
	"math/rand"

	"dcf_valuation/pkg/core/assumption"
	"dcf_valuation/pkg/core/validate"
)

// Fixed seed keeps the synthetic series reproducible across runs, so demo
// pipelines and tests see identical data.
const syntheticSeed = 42

// GenerateSynthetic builds a historical revenue series anchored so that one
// more growth step lands near the assumed starting revenue. Each period gets
// ±2% gaussian noise on top of the assumed growth rate; revenues are clamped
// at zero. Years run from -(periods-1) to 0.
func GenerateSynthetic(a assumption.Assumptions, periods int) []validate.RevenuePoint {
	rng := rand.New(rand.NewSource(syntheticSeed))

	current := a.StartingRevenue / (1 + a.GrowthRate)
	series := make([]validate.RevenuePoint, 0, periods)
	for i := 0; i < periods; i++ {
		noise := rng.NormFloat64() * 0.02
		current *= 1 + a.GrowthRate + noise
		if current < 0 {
			current = 0
		}
		series = append(series, validate.RevenuePoint{
			Year:    -periods + 1 + i,
			Revenue: current,
		})
	}
	return series
}
