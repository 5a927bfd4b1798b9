// Package valuation implements the deterministic DCF engine: revenue and FCFF
// projection, terminal value, discounting, NPV, the Newton-Raphson IRR solver,
// and the WACC sensitivity sweep.
package valuation

// Projection holds the intermediate cash-flow series for one scenario run.
// Revenues and FCFF are indexed from year 1 and always have exactly
// Assumptions.Years entries.
type Projection struct {
	Revenues      []float64
	FCFF          []float64
	TerminalValue float64
}

// ScenarioResult is the immutable output of one scenario valuation.
// IRR is nil when the solver found no economically meaningful root; the rest
// of the result is still valid in that case.
type ScenarioResult struct {
	Name          string    `json:"name"`
	WACC          float64   `json:"wacc"`
	NPV           float64   `json:"npv"`
	IRR           *float64  `json:"irr,omitempty"`
	Revenues      []float64 `json:"revenues"`
	FCFF          []float64 `json:"fcff"`
	TerminalValue float64   `json:"terminal_value"`
}

// SensitivityPoint is one (WACC, NPV) sample of the sensitivity curve.
type SensitivityPoint struct {
	WACC float64 `json:"wacc"`
	NPV  float64 `json:"npv"`
}
