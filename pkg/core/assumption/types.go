// Package assumption defines the validated input parameter set for a DCF run.
// All downstream stages (scenario expansion, valuation, sensitivity) borrow the
// same immutable Assumptions value; nothing mutates it after Validate passes.
package assumption

import "fmt"

// ValidationError identifies the offending field and why it was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid assumption %q: %s", e.Field, e.Reason)
}

// Assumptions holds the high-level financial assumptions shared across scenarios.
// Percentages are expressed as fractions (0.08 = 8%).
type Assumptions struct {
	// StartingRevenue is the base (year 0) revenue; GrowthRate the annual
	// revenue growth; OpexPct operating expenses and DeltaNWCPct the change
	// in net working capital, both as a share of revenue.
	StartingRevenue float64 `json:"starting_revenue" yaml:"starting_revenue"`
	GrowthRate      float64 `json:"growth_rate" yaml:"growth_rate"`
	GrossMargin     float64 `json:"gross_margin" yaml:"gross_margin"`
	OpexPct         float64 `json:"opex_pct" yaml:"opex_pct"`
	TaxRate         float64 `json:"tax_rate" yaml:"tax_rate"`
	WACC            float64 `json:"wacc" yaml:"wacc"`
	CapexPct        float64 `json:"capex_pct" yaml:"capex_pct"`
	DeltaNWCPct     float64 `json:"delta_nwc_pct" yaml:"delta_nwc_pct"`
	TerminalGrowth  float64 `json:"terminal_growth" yaml:"terminal_growth"`

	// Years is the explicit projection horizon.
	Years int `json:"years" yaml:"years"`

	// Scenario deltas applied by scenario.Expand.
	OptimisticGrowthDelta  float64 `json:"optimistic_growth_delta" yaml:"optimistic_growth_delta"`
	PessimisticGrowthDelta float64 `json:"pessimistic_growth_delta" yaml:"pessimistic_growth_delta"`
	OptimisticWACCDelta    float64 `json:"optimistic_wacc_delta" yaml:"optimistic_wacc_delta"`
	PessimisticWACCDelta   float64 `json:"pessimistic_wacc_delta" yaml:"pessimistic_wacc_delta"`
}

// Default returns an Assumptions value with the standard horizon and deltas
// filled in. Callers still set the company-specific fields before Validate.
func Default() Assumptions {
	return Assumptions{
		Years:                  5,
		OptimisticGrowthDelta:  0.02,
		PessimisticGrowthDelta: 0.02,
		OptimisticWACCDelta:    0.01,
		PessimisticWACCDelta:   0.01,
	}
}

// Validate enforces all field ranges and cross-field invariants. It returns a
// *ValidationError naming the first offending field, or nil when the set is
// usable for valuation.
func (a Assumptions) Validate() error {
	if a.StartingRevenue <= 0 {
		return &ValidationError{"starting_revenue", "must be positive"}
	}
	if a.GrowthRate < -0.5 || a.GrowthRate > 1.0 {
		return &ValidationError{"growth_rate", "must be within [-0.5, 1.0]"}
	}
	if a.GrossMargin <= 0 || a.GrossMargin >= 1 {
		return &ValidationError{"gross_margin", "must be within (0, 1)"}
	}
	if a.OpexPct <= 0 || a.OpexPct >= 1 {
		return &ValidationError{"opex_pct", "must be within (0, 1)"}
	}
	if a.TaxRate < 0 || a.TaxRate >= 1 {
		return &ValidationError{"tax_rate", "must be within [0, 1)"}
	}
	if a.WACC <= 0 || a.WACC >= 1 {
		return &ValidationError{"wacc", "must be within (0, 1)"}
	}
	if a.CapexPct < 0 || a.CapexPct >= 1 {
		return &ValidationError{"capex_pct", "must be within [0, 1)"}
	}
	if a.DeltaNWCPct < -1 || a.DeltaNWCPct >= 1 {
		return &ValidationError{"delta_nwc_pct", "must be within [-1, 1)"}
	}
	if a.TerminalGrowth < -0.05 || a.TerminalGrowth >= 0.2 {
		return &ValidationError{"terminal_growth", "must be within [-0.05, 0.2)"}
	}
	if a.Years < 1 || a.Years > 10 {
		return &ValidationError{"years", "projection horizon must be within [1, 10]"}
	}
	if a.OptimisticGrowthDelta < 0 || a.OptimisticGrowthDelta > 0.2 {
		return &ValidationError{"optimistic_growth_delta", "must be within [0, 0.2]"}
	}
	if a.PessimisticGrowthDelta < 0 || a.PessimisticGrowthDelta > 0.2 {
		return &ValidationError{"pessimistic_growth_delta", "must be within [0, 0.2]"}
	}
	if a.OptimisticWACCDelta < 0 || a.OptimisticWACCDelta > 0.1 {
		return &ValidationError{"optimistic_wacc_delta", "must be within [0, 0.1]"}
	}
	if a.PessimisticWACCDelta < 0 || a.PessimisticWACCDelta > 0.1 {
		return &ValidationError{"pessimistic_wacc_delta", "must be within [0, 0.1]"}
	}

	// Cross-field invariants.
	if a.WACC <= a.TerminalGrowth {
		return &ValidationError{"wacc", "must be greater than terminal growth rate"}
	}
	if a.GrossMargin+a.OpexPct >= 0.99 {
		return &ValidationError{"gross_margin", "gross margin plus opex must leave room for profit (sum < 0.99)"}
	}
	return nil
}
