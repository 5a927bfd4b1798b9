package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintScenarioTable renders the scenario summary to w.
func PrintScenarioTable(w io.Writer, results Results) {
	table := tablewriter.NewWriter(w)
	table.Header("Scenario", "WACC", "NPV", "IRR", "Terminal Value")

	for _, s := range results.Scenarios {
		irr := "n/a"
		if s.IRR != nil {
			irr = fmt.Sprintf("%.2f%%", *s.IRR*100)
		}
		table.Append(
			s.Name,
			fmt.Sprintf("%.2f%%", s.WACC*100),
			fmt.Sprintf("%.2f", s.NPV),
			irr,
			fmt.Sprintf("%.2f", s.TerminalValue),
		)
	}
	table.Render()
}

// PrintSensitivityTable renders the WACC sensitivity curve to w.
func PrintSensitivityTable(w io.Writer, results Results) {
	if len(results.Sensitivity) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header("WACC", "NPV")
	for _, p := range results.Sensitivity {
		table.Append(fmt.Sprintf("%.3f", p.WACC), fmt.Sprintf("%.2f", p.NPV))
	}
	table.Render()
}
