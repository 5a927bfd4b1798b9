package valuation

import (
	"math"
	"testing"

	"dcf_valuation/pkg/core/scenario"
)

func TestSweepWACC_GridShape(t *testing.T) {
	a := baseAssumptions()
	baseline := baseScenario(a)

	points, err := SweepWACC(a, baseline)
	if err != nil {
		t.Fatalf("SweepWACC failed: %v", err)
	}
	if len(points) == 0 {
		t.Fatal("expected a non-empty sensitivity curve")
	}

	lo := math.Max(0.02, baseline.WACC-0.04)
	hi := math.Min(0.30, baseline.WACC+0.04)
	for i, p := range points {
		if p.WACC < lo-1e-9 || p.WACC > hi+1e-9 {
			t.Errorf("point %d: WACC %.4f outside [%.3f, %.3f]", i, p.WACC, lo, hi)
		}
		if i > 0 {
			step := p.WACC - points[i-1].WACC
			if step <= 0 {
				t.Errorf("point %d: WACC not strictly increasing (%.4f after %.4f)", i, p.WACC, points[i-1].WACC)
			}
			if math.Abs(step-0.005) > 1e-9 {
				t.Errorf("point %d: step %.6f deviates from 0.005", i, step)
			}
		}
	}

	// Baseline 0.10 spans [0.06, 0.14]: 17 grid points.
	if len(points) != 17 {
		t.Errorf("expected 17 points for baseline WACC 0.10, got %d", len(points))
	}
}

func TestSweepWACC_NPVMonotonicallyDecreasing(t *testing.T) {
	a := baseAssumptions()
	points, err := SweepWACC(a, baseScenario(a))
	if err != nil {
		t.Fatalf("SweepWACC failed: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].NPV >= points[i-1].NPV {
			t.Errorf("NPV should fall as WACC rises: %.2f@%.3f >= %.2f@%.3f",
				points[i].NPV, points[i].WACC, points[i-1].NPV, points[i-1].WACC)
		}
	}
}

func TestSweepWACC_ClampsAtLowBound(t *testing.T) {
	a := baseAssumptions()
	a.WACC = 0.04
	a.TerminalGrowth = 0.0
	baseline := scenario.Params{Name: "Base", GrowthRate: a.GrowthRate, WACC: a.WACC}

	points, err := SweepWACC(a, baseline)
	if err != nil {
		t.Fatalf("SweepWACC failed: %v", err)
	}
	if points[0].WACC != 0.02 {
		t.Errorf("expected sweep to start at floor 0.02, got %.4f", points[0].WACC)
	}
	last := points[len(points)-1].WACC
	if math.Abs(last-0.08) > 1e-9 {
		t.Errorf("expected sweep to end at 0.08, got %.4f", last)
	}
}
