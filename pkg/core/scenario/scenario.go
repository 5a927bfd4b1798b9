// Package scenario expands one assumption set into the named Base, Optimistic,
// and Pessimistic parameter variants used to bound a valuation.
package scenario

import (
	"fmt"

	"dcf_valuation/pkg/core/assumption"
)

// Scenario names, in expansion order.
const (
	NameBase        = "Base"
	NameOptimistic  = "Optimistic"
	NamePessimistic = "Pessimistic"
)

// Params is a single scenario's growth/WACC pair. Derived from Assumptions and
// immutable afterwards.
type Params struct {
	Name       string  `json:"name"`
	GrowthRate float64 `json:"growth_rate"`
	WACC       float64 `json:"wacc"`
}

// Validate checks the scenario-level invariants. Growth below -50% or a WACC
// outside (0, 1) is rejected; deltas applied by Expand keep derived scenarios
// inside these bounds, but callers may construct Params directly (the
// sensitivity sweep does) so the check is repeated here.
func (p Params) Validate() error {
	if p.GrowthRate < -0.5 {
		return fmt.Errorf("scenario %q: growth rate %.4f is unrealistically low", p.Name, p.GrowthRate)
	}
	if p.WACC <= 0 || p.WACC >= 1 {
		return fmt.Errorf("scenario %q: WACC %.4f must be between 0 and 1", p.Name, p.WACC)
	}
	return nil
}

// Expand deterministically derives the three scenarios from validated
// assumptions, always in the order Base, Optimistic, Pessimistic. The
// optimistic WACC is floored at 0.01 and the pessimistic WACC capped at 0.99
// so the deltas cannot push a scenario outside the valid discount range.
func Expand(a assumption.Assumptions) ([]Params, error) {
	scenarios := []Params{
		{
			Name:       NameBase,
			GrowthRate: a.GrowthRate,
			WACC:       a.WACC,
		},
		{
			Name:       NameOptimistic,
			GrowthRate: a.GrowthRate + a.OptimisticGrowthDelta,
			WACC:       max(0.01, a.WACC-a.OptimisticWACCDelta),
		},
		{
			Name:       NamePessimistic,
			GrowthRate: a.GrowthRate - a.PessimisticGrowthDelta,
			WACC:       min(0.99, a.WACC+a.PessimisticWACCDelta),
		},
	}

	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return scenarios, nil
}
