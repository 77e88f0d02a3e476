package valuation

import (
	"fmt"

	"company_valuation/pkg/core/calc"
)

// CostOfEquity via CAPM: Re = Rf + beta x ERP.
func CostOfEquity(riskFreeRate, beta, equityRiskPremium float64) float64 {
	return riskFreeRate + beta*equityRiskPremium
}

// CostOfEquityFromMarketReturn derives the ERP from an expected market
// return before applying CAPM.
func CostOfEquityFromMarketReturn(riskFreeRate, beta, marketReturn float64) float64 {
	return CostOfEquity(riskFreeRate, beta, marketReturn-riskFreeRate)
}

// UnleverBeta strips capital structure out of an observed beta (Hamada):
//
//	BetaU = BetaL / (1 + (1-T) x D/E)
//
// Zero equity is a configuration error, not a value to default around.
func UnleverBeta(leveredBeta, debt, equity, taxRate float64) (float64, error) {
	if equity == 0 {
		return 0, fmt.Errorf("valuation: equity cannot be zero when unlevering beta")
	}
	deRatio := debt / equity
	return leveredBeta / (1 + (1-taxRate)*deRatio), nil
}

// ReleverBeta applies a target capital structure to an asset beta:
//
//	BetaL = BetaU x (1 + (1-T) x D/E)
func ReleverBeta(unleveredBeta, debt, equity, taxRate float64) (float64, error) {
	if equity == 0 {
		return 0, fmt.Errorf("valuation: equity cannot be zero when relevering beta")
	}
	deRatio := debt / equity
	return unleveredBeta * (1 + (1-taxRate)*deRatio), nil
}

// BetaFromPeers unlevers each peer beta, takes the median asset beta, and
// relevers it at the target capital structure.
func BetaFromPeers(peerBetas, peerDebts, peerEquities []float64, taxRate,
	targetDebt, targetEquity float64) (float64, error) {

	if len(peerBetas) != len(peerDebts) || len(peerBetas) != len(peerEquities) {
		return 0, fmt.Errorf("valuation: peer beta/debt/equity lists must have the same length")
	}
	if len(peerBetas) == 0 {
		return 0, fmt.Errorf("valuation: at least one peer is required")
	}

	unlevered := make([]float64, 0, len(peerBetas))
	for i := range peerBetas {
		u, err := UnleverBeta(peerBetas[i], peerDebts[i], peerEquities[i], taxRate)
		if err != nil {
			return 0, err
		}
		unlevered = append(unlevered, u)
	}

	return ReleverBeta(calc.Median(unlevered), targetDebt, targetEquity, taxRate)
}

// WACCInput parameters for the cost of capital.
type WACCInput struct {
	EquityValue  float64 // market value of equity
	DebtValue    float64 // market value of debt
	CostOfEquity float64
	CostOfDebt   float64 // pre-tax, YTM on new debt
	TaxRate      float64
}

// WACCResult holds the blended rate and its components.
type WACCResult struct {
	WACC               float64
	CostOfEquity       float64
	AfterTaxCostOfDebt float64
	WeightEquity       float64
	WeightDebt         float64
}

// CalculateWACC computes the Weighted Average Cost of Capital:
//
//	WACC = (E/V x Re) + (D/V x Rd x (1-T))
func CalculateWACC(input WACCInput) WACCResult {
	total := input.EquityValue + input.DebtValue

	we, wd := 0.0, 0.0
	if total > 0 {
		we = input.EquityValue / total
		wd = input.DebtValue / total
	}

	kd := input.CostOfDebt * (1 - input.TaxRate)

	return WACCResult{
		WACC:               we*input.CostOfEquity + wd*kd,
		CostOfEquity:       input.CostOfEquity,
		AfterTaxCostOfDebt: kd,
		WeightEquity:       we,
		WeightDebt:         wd,
	}
}

// CalculateWACCFromCAPM derives the cost of equity via CAPM first, then
// blends. Convenience wrapper for the common path.
func CalculateWACCFromCAPM(equityValue, debtValue, riskFreeRate, beta,
	equityRiskPremium, costOfDebt, taxRate float64) WACCResult {

	return CalculateWACC(WACCInput{
		EquityValue:  equityValue,
		DebtValue:    debtValue,
		CostOfEquity: CostOfEquity(riskFreeRate, beta, equityRiskPremium),
		CostOfDebt:   costOfDebt,
		TaxRate:      taxRate,
	})
}
