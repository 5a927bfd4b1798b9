package assumption

import (
	"errors"
	"testing"
)

func validAssumptions() Assumptions {
	a := Default()
	a.StartingRevenue = 1_000_000
	a.GrowthRate = 0.08
	a.GrossMargin = 0.5
	a.OpexPct = 0.3
	a.TaxRate = 0.21
	a.WACC = 0.1
	a.CapexPct = 0.05
	a.DeltaNWCPct = 0.02
	a.TerminalGrowth = 0.02
	return a
}

func TestValidate_AcceptsReasonableInputs(t *testing.T) {
	a := validAssumptions()
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid assumptions, got %v", err)
	}
}

func TestValidate_FieldRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Assumptions)
		field  string
	}{
		{"zero revenue", func(a *Assumptions) { a.StartingRevenue = 0 }, "starting_revenue"},
		{"negative revenue", func(a *Assumptions) { a.StartingRevenue = -5 }, "starting_revenue"},
		{"growth too low", func(a *Assumptions) { a.GrowthRate = -0.6 }, "growth_rate"},
		{"growth too high", func(a *Assumptions) { a.GrowthRate = 1.5 }, "growth_rate"},
		{"margin at one", func(a *Assumptions) { a.GrossMargin = 1.0 }, "gross_margin"},
		{"opex at zero", func(a *Assumptions) { a.OpexPct = 0 }, "opex_pct"},
		{"tax at one", func(a *Assumptions) { a.TaxRate = 1.0 }, "tax_rate"},
		{"wacc at zero", func(a *Assumptions) { a.WACC = 0 }, "wacc"},
		{"wacc at one", func(a *Assumptions) { a.WACC = 1.0 }, "wacc"},
		{"capex negative", func(a *Assumptions) { a.CapexPct = -0.01 }, "capex_pct"},
		{"nwc below minus one", func(a *Assumptions) { a.DeltaNWCPct = -1.5 }, "delta_nwc_pct"},
		{"terminal growth too high", func(a *Assumptions) { a.TerminalGrowth = 0.25 }, "terminal_growth"},
		{"zero years", func(a *Assumptions) { a.Years = 0 }, "years"},
		{"horizon too long", func(a *Assumptions) { a.Years = 11 }, "years"},
		{"negative delta", func(a *Assumptions) { a.OptimisticGrowthDelta = -0.01 }, "optimistic_growth_delta"},
		{"wacc delta too large", func(a *Assumptions) { a.PessimisticWACCDelta = 0.2 }, "pessimistic_wacc_delta"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAssumptions()
			tc.mutate(&a)
			err := a.Validate()
			if err == nil {
				t.Fatalf("expected validation failure for %s", tc.name)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestValidate_WACCMustExceedTerminalGrowth(t *testing.T) {
	a := validAssumptions()
	a.WACC = 0.02
	a.TerminalGrowth = 0.02
	if err := a.Validate(); err == nil {
		t.Fatal("expected failure when WACC equals terminal growth")
	}
}

func TestValidate_MarginOpexHeadroom(t *testing.T) {
	a := validAssumptions()
	a.GrossMargin = 0.7
	a.OpexPct = 0.3
	err := a.Validate()
	if err == nil {
		t.Fatal("expected failure when margin + opex >= 0.99")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestDefault_FillsHorizonAndDeltas(t *testing.T) {
	a := Default()
	if a.Years != 5 {
		t.Errorf("expected default horizon of 5 years, got %d", a.Years)
	}
	if a.OptimisticGrowthDelta != 0.02 || a.PessimisticGrowthDelta != 0.02 {
		t.Error("unexpected default growth deltas")
	}
	if a.OptimisticWACCDelta != 0.01 || a.PessimisticWACCDelta != 0.01 {
		t.Error("unexpected default WACC deltas")
	}
}
