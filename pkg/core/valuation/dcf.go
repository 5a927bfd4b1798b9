package valuation

import (
	"fmt"
	"math"

	"dcf_valuation/pkg/core/assumption"
	"dcf_valuation/pkg/core/scenario"
)

// TerminalValueError signals that the perpetuity formula is undefined because
// the scenario WACC is not above the terminal growth rate. Upstream validation
// prevents this for the base assumptions, but scenario deltas and sweeps build
// their own WACC values, so the engine re-checks.
type TerminalValueError struct {
	WACC           float64
	TerminalGrowth float64
}

func (e *TerminalValueError) Error() string {
	return fmt.Sprintf("terminal value requires WACC > terminal growth (wacc=%.4f, g=%.4f)", e.WACC, e.TerminalGrowth)
}

// projectRevenues compounds the starting revenue forward for the full horizon.
// The returned slice starts at year 1; year 0 is the starting revenue itself
// and is not emitted.
func projectRevenues(start, growthRate float64, years int) []float64 {
	revenues := make([]float64, 0, years)
	current := start
	for t := 1; t <= years; t++ {
		current *= 1 + growthRate
		revenues = append(revenues, current)
	}
	return revenues
}

// calculateFCFF derives free cash flow to firm for each projected year:
// FCFF = EBIT*(1-tax) - capex - change in net working capital, with every
// component expressed as a percentage of that year's revenue.
func calculateFCFF(a assumption.Assumptions, revenues []float64) []float64 {
	fcff := make([]float64, 0, len(revenues))
	for _, revenue := range revenues {
		grossProfit := revenue * a.GrossMargin
		opex := revenue * a.OpexPct
		ebit := grossProfit - opex
		nopat := ebit * (1 - a.TaxRate)
		capex := revenue * a.CapexPct
		deltaNWC := revenue * a.DeltaNWCPct
		fcff = append(fcff, nopat-capex-deltaNWC)
	}
	return fcff
}

// terminalValue capitalizes the final FCFF as a growing perpetuity
// (Gordon growth).
func terminalValue(lastFCFF, wacc, terminalGrowth float64) (float64, error) {
	if wacc <= terminalGrowth {
		return 0, &TerminalValueError{WACC: wacc, TerminalGrowth: terminalGrowth}
	}
	return lastFCFF * (1 + terminalGrowth) / (wacc - terminalGrowth), nil
}

// discount returns each value divided by (1+wacc)^t with t starting at 1.
func discount(values []float64, wacc float64) []float64 {
	discounted := make([]float64, len(values))
	for i, value := range values {
		discounted[i] = value / math.Pow(1+wacc, float64(i+1))
	}
	return discounted
}

// ProjectCashFlows generates the revenue and FCFF series plus terminal value
// for one scenario. It fails only when the terminal value is undefined.
func ProjectCashFlows(a assumption.Assumptions, s scenario.Params) (Projection, error) {
	revenues := projectRevenues(a.StartingRevenue, s.GrowthRate, a.Years)
	fcff := calculateFCFF(a, revenues)
	tv, err := terminalValue(fcff[len(fcff)-1], s.WACC, a.TerminalGrowth)
	if err != nil {
		return Projection{}, err
	}
	return Projection{Revenues: revenues, FCFF: fcff, TerminalValue: tv}, nil
}

// RunDCF computes the full valuation for one scenario: projection, NPV at the
// scenario WACC, and an advisory IRR. The IRR cash-flow sequence is
// [-starting_revenue, FCFF 1..years, terminal_value] with the terminal value
// appended as an ordinary extra flow; the model intentionally does not
// discount it as a separate period.
func RunDCF(a assumption.Assumptions, s scenario.Params) (ScenarioResult, error) {
	projection, err := ProjectCashFlows(a, s)
	if err != nil {
		return ScenarioResult{}, err
	}

	discountedFCFF := discount(projection.FCFF, s.WACC)
	discountedTerminal := projection.TerminalValue / math.Pow(1+s.WACC, float64(a.Years))

	npv := discountedTerminal
	for _, v := range discountedFCFF {
		npv += v
	}

	// Initial outlay approximated as a year-zero investment of the starting
	// revenue.
	flows := make([]float64, 0, a.Years+2)
	flows = append(flows, -a.StartingRevenue)
	flows = append(flows, projection.FCFF...)
	flows = append(flows, projection.TerminalValue)

	return ScenarioResult{
		Name:          s.Name,
		WACC:          s.WACC,
		NPV:           npv,
		IRR:           SolveIRR(flows),
		Revenues:      projection.Revenues,
		FCFF:          projection.FCFF,
		TerminalValue: projection.TerminalValue,
	}, nil
}
