package validate

import (
	"math"
	"strings"
	"testing"

	"dcf_valuation/pkg/core/assumption"
)

func plausibleAssumptions() assumption.Assumptions {
	a := assumption.Default()
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

func TestCheckPlausibility_NoHistoricalData(t *testing.T) {
	if err := CheckPlausibility(plausibleAssumptions(), nil); err != nil {
		t.Fatalf("expected nil series to pass, got %v", err)
	}
	if err := CheckPlausibility(plausibleAssumptions(), []RevenuePoint{}); err != nil {
		t.Fatalf("expected empty series to pass, got %v", err)
	}
}

func TestCheckPlausibility_ConsistentHistory(t *testing.T) {
	hist := []RevenuePoint{
		{Year: -2, Revenue: 850_000},
		{Year: -1, Revenue: 910_000},
		{Year: 0, Revenue: 980_000},
	}
	if err := CheckPlausibility(plausibleAssumptions(), hist); err != nil {
		t.Fatalf("expected consistent history to pass, got %v", err)
	}
}

func TestCheckPlausibility_NonPositiveRevenue(t *testing.T) {
	hist := []RevenuePoint{
		{Year: -1, Revenue: 900_000},
		{Year: 0, Revenue: -10},
	}
	err := CheckPlausibility(plausibleAssumptions(), hist)
	if err == nil {
		t.Fatal("expected rejection of non-positive historical revenue")
	}
	if !strings.Contains(err.Error(), "positive") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestCheckPlausibility_StartingRevenueTooLow(t *testing.T) {
	a := plausibleAssumptions()
	a.StartingRevenue = 100_000
	hist := []RevenuePoint{{Year: 0, Revenue: 1_000_000}}

	if err := CheckPlausibility(a, hist); err == nil {
		t.Fatal("expected rejection when starting revenue is below 50% of latest")
	}

	// Exactly at the 50% boundary is acceptable.
	a.StartingRevenue = 500_000
	if err := CheckPlausibility(a, hist); err != nil {
		t.Fatalf("expected 50%% boundary to pass, got %v", err)
	}
}

func TestCheckPlausibility_TerminalGrowthSanity(t *testing.T) {
	a := plausibleAssumptions()
	a.TerminalGrowth = a.WACC
	if err := CheckPlausibility(a, nil); err == nil {
		t.Fatal("expected rejection when terminal growth >= WACC")
	}
}

func TestYoY(t *testing.T) {
	if got := YoY(110, 100); math.Abs(got-10) > 1e-9 {
		t.Errorf("expected 10%%, got %.4f", got)
	}
	if got := YoY(0, 0); got != 0 {
		t.Errorf("expected 0 for flat zero, got %.4f", got)
	}
	if got := YoY(5, 0); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf for growth from zero, got %.4f", got)
	}
}

func TestCAGR(t *testing.T) {
	series := []RevenuePoint{
		{Year: 0, Revenue: 100},
		{Year: 1, Revenue: 121},
	}
	if got := CAGR(series); math.Abs(got-21) > 1e-9 {
		t.Errorf("expected 21%% single-period CAGR, got %.4f", got)
	}

	series = append(series, RevenuePoint{Year: 2, Revenue: 144})
	got := CAGR(series)
	want := (math.Pow(1.44, 0.5) - 1) * 100 // 20% over two periods
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %.4f%%, got %.4f", want, got)
	}

	if got := CAGR(series[:1]); got != 0 {
		t.Errorf("expected 0 for single-point series, got %.4f", got)
	}
}
