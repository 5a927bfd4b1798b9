package valuation

// CAPMInput holds the market parameters used to derive a discount rate when
// the caller does not supply a WACC directly.
type CAPMInput struct {
	UnleveredBeta     float64 `json:"unlevered_beta" yaml:"unlevered_beta"`
	RiskFreeRate      float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
	MarketRiskPremium float64 `json:"market_risk_premium" yaml:"market_risk_premium"`
	PreTaxCostOfDebt  float64 `json:"pre_tax_cost_of_debt" yaml:"pre_tax_cost_of_debt"`
	TaxRate           float64 `json:"tax_rate" yaml:"tax_rate"`
	DebtToEquity      float64 `json:"debt_to_equity" yaml:"debt_to_equity"` // Target leverage (D/E)
}

// DeriveWACC computes a weighted average cost of capital from CAPM inputs,
// re-levering beta with the Hamada equation. It is a convenience for callers
// who start from market data instead of an explicit discount rate; the engine
// itself only ever sees the resulting WACC.
func DeriveWACC(in CAPMInput) float64 {
	leveredBeta := in.UnleveredBeta * (1 + (1-in.TaxRate)*in.DebtToEquity)
	costOfEquity := in.RiskFreeRate + leveredBeta*in.MarketRiskPremium
	afterTaxCostOfDebt := in.PreTaxCostOfDebt * (1 - in.TaxRate)

	// With D/E = x: Wd = x/(1+x), We = 1/(1+x).
	weightDebt := in.DebtToEquity / (1 + in.DebtToEquity)
	weightEquity := 1.0 / (1 + in.DebtToEquity)

	return costOfEquity*weightEquity + afterTaxCostOfDebt*weightDebt
}
