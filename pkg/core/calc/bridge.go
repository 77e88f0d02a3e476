package calc

// EnterpriseValue from equity value:
// EV = Equity + Debt - Cash + Minority Interest + Preferred.
func EnterpriseValue(equityValue, totalDebt, cash, minorityInterest, preferredStock float64) float64 {
	return equityValue + totalDebt - cash + minorityInterest + preferredStock
}

// EquityValueFromEV reverses the bridge:
// Equity = EV - Debt + Cash - Minority Interest - Preferred.
func EquityValueFromEV(enterpriseValue, totalDebt, cash, minorityInterest, preferredStock float64) float64 {
	return enterpriseValue - totalDebt + cash - minorityInterest - preferredStock
}

// NetDebt = Total Debt - Cash. Negative means more cash than debt.
func NetDebt(totalDebt, cash float64) float64 {
	return totalDebt - cash
}

// LTM calendarizes a metric to the most recent twelve months:
// LTM = Fiscal Year + Current YTD - Prior-Year YTD.
func LTM(fiscalYear, ytdCurrent, ytdPrior float64) float64 {
	return fiscalYear + ytdCurrent - ytdPrior
}

// ImpliedPerpetualGrowth backs the growth rate out of a terminal value.
// From TV = FCF(1+g)/(r-g): g = (TV x r - FCF) / (TV + FCF).
// Used to sanity-check exit-multiple terminal values.
func ImpliedPerpetualGrowth(terminalValue, finalFCF, discountRate float64) float64 {
	denominator := terminalValue + finalFCF
	if denominator == 0 {
		return 0
	}
	return (terminalValue*discountRate - finalFCF) / denominator
}

// RuleOf40 = revenue growth + profit margin, both as decimals. A score at or
// above 0.40 is the usual health screen for SaaS businesses.
func RuleOf40(revenueGrowth, profitMargin float64) float64 {
	return revenueGrowth + profitMargin
}

// EquityBridge is the final EV-to-per-share step shared by DCF and comps.
type EquityBridge struct {
	EnterpriseValue     float64
	NetDebt             float64
	EquityValue         float64
	DilutedShares       float64
	EquityValuePerShare float64
}

// BridgeToEquity walks enterprise value down to per-share equity value.
func BridgeToEquity(enterpriseValue, netDebt, dilutedShares float64) EquityBridge {
	equityValue := enterpriseValue - netDebt
	perShare := 0.0
	if dilutedShares > 0 {
		perShare = equityValue / dilutedShares
	}
	return EquityBridge{
		EnterpriseValue:     enterpriseValue,
		NetDebt:             netDebt,
		EquityValue:         equityValue,
		DilutedShares:       dilutedShares,
		EquityValuePerShare: perShare,
	}
}
