package valuation

import (
	"company_valuation/pkg/core/calc"
)

// TargetMetrics holds the target company's current metrics (LTM or NTM).
type TargetMetrics struct {
	Revenue   float64
	EBITDA    float64
	EBIT      float64
	NetIncome float64
	NetDebt   float64
	SharesOut float64
}

// PeerMultiples is one comparable company's trading multiples. Multiples at
// or below zero are treated as unavailable and excluded from the screen.
type PeerMultiples struct {
	Name      string
	EVRevenue float64
	EVEBITDA  float64
	EVEBIT    float64
	PERatio   float64
}

// ValuationRange is a low/mid/high triple. Low and high are the 25th and
// 75th percentiles of the peer set, mid is the median.
type ValuationRange struct {
	Low  float64
	Mid  float64
	High float64
}

// CompsResult holds implied values for each multiple family plus the
// underlying multiple statistics.
type CompsResult struct {
	ImpliedEVFromRevenue ValuationRange
	ImpliedEVFromEBITDA  ValuationRange
	ImpliedEVFromEBIT    ValuationRange
	ImpliedPricePE       ValuationRange // per-share, direct equity value

	RevenueMultiples calc.Statistics
	EBITDAMultiples  calc.Statistics
	EBITMultiples    calc.Statistics
	PEMultiples      calc.Statistics
}

// CalculateComps performs Comparable Companies Analysis: collect each
// multiple family across the peer set, summarize, and apply the percentile
// range to the target's metrics.
func CalculateComps(target TargetMetrics, peers []PeerMultiples) CompsResult {
	var revMults, ebitdaMults, ebitMults, peMults []float64
	for _, p := range peers {
		if p.EVRevenue > 0 {
			revMults = append(revMults, p.EVRevenue)
		}
		if p.EVEBITDA > 0 {
			ebitdaMults = append(ebitdaMults, p.EVEBITDA)
		}
		if p.EVEBIT > 0 {
			ebitMults = append(ebitMults, p.EVEBIT)
		}
		if p.PERatio > 0 {
			peMults = append(peMults, p.PERatio)
		}
	}

	res := CompsResult{
		RevenueMultiples: calc.Describe(revMults),
		EBITDAMultiples:  calc.Describe(ebitdaMults),
		EBITMultiples:    calc.Describe(ebitMults),
		PEMultiples:      calc.Describe(peMults),
	}

	res.ImpliedEVFromRevenue = applyRange(res.RevenueMultiples, target.Revenue)
	res.ImpliedEVFromEBITDA = applyRange(res.EBITDAMultiples, target.EBITDA)
	res.ImpliedEVFromEBIT = applyRange(res.EBITMultiples, target.EBIT)

	// P/E applies to earnings and lands directly on per-share equity value.
	epsBase := 0.0
	if target.SharesOut > 0 {
		epsBase = target.NetIncome / target.SharesOut
	}
	res.ImpliedPricePE = applyRange(res.PEMultiples, epsBase)

	return res
}

// ImpliedEquityRange bridges an implied EV range to per-share equity values
// for the target.
func ImpliedEquityRange(evRange ValuationRange, target TargetMetrics) ValuationRange {
	if target.SharesOut <= 0 {
		return ValuationRange{}
	}
	return ValuationRange{
		Low:  (evRange.Low - target.NetDebt) / target.SharesOut,
		Mid:  (evRange.Mid - target.NetDebt) / target.SharesOut,
		High: (evRange.High - target.NetDebt) / target.SharesOut,
	}
}

func applyRange(stats calc.Statistics, metric float64) ValuationRange {
	if stats.Count == 0 {
		return ValuationRange{}
	}
	return ValuationRange{
		Low:  stats.P25 * metric,
		Mid:  stats.Median * metric,
		High: stats.P75 * metric,
	}
}
