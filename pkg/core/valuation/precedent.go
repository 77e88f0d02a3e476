package valuation

import (
	"time"

	"company_valuation/pkg/core/calc"
)

// Transaction is one precedent M&A deal. DealValue is the transaction
// enterprise value; multiples that lack a metric report as unavailable
// (ok == false) rather than zero.
type Transaction struct {
	TargetName   string
	AcquirerName string
	AnnounceDate time.Time
	Sector       string
	DealType     string // e.g. "strategic", "sponsor"

	DealValue   float64 // enterprise value of the deal
	EquityValue float64

	PreAnnouncementPrice float64
	DealPricePerShare    float64

	TargetLTMRevenue   float64
	TargetLTMEBITDA    float64
	TargetLTMEBIT      float64
	TargetLTMNetIncome float64
}

// ControlPremium is the premium paid over the unaffected share price.
func (t Transaction) ControlPremium() (float64, bool) {
	if t.PreAnnouncementPrice <= 0 || t.DealPricePerShare <= 0 {
		return 0, false
	}
	return (t.DealPricePerShare - t.PreAnnouncementPrice) / t.PreAnnouncementPrice, true
}

// EVRevenue is the transaction EV / LTM revenue multiple.
func (t Transaction) EVRevenue() (float64, bool) {
	if t.TargetLTMRevenue <= 0 {
		return 0, false
	}
	return t.DealValue / t.TargetLTMRevenue, true
}

// EVEBITDA is the transaction EV / LTM EBITDA multiple.
func (t Transaction) EVEBITDA() (float64, bool) {
	if t.TargetLTMEBITDA <= 0 {
		return 0, false
	}
	return t.DealValue / t.TargetLTMEBITDA, true
}

// EVEBIT is the transaction EV / LTM EBIT multiple.
func (t Transaction) EVEBIT() (float64, bool) {
	if t.TargetLTMEBIT <= 0 {
		return 0, false
	}
	return t.DealValue / t.TargetLTMEBIT, true
}

// PERatio is deal equity value / LTM net income.
func (t Transaction) PERatio() (float64, bool) {
	if t.TargetLTMNetIncome <= 0 {
		return 0, false
	}
	return t.EquityValue / t.TargetLTMNetIncome, true
}

// YearsSince the deal was announced, relative to reference.
func (t Transaction) YearsSince(reference time.Time) float64 {
	return reference.Sub(t.AnnounceDate).Hours() / (24 * 365.25)
}

// PrecedentAnalysis screens a set of precedent transactions.
type PrecedentAnalysis struct {
	Transactions []Transaction
}

// FilterByRecency keeps deals announced within maxYears of reference. Stale
// precedents carry old market conditions and are normally screened out.
func (a PrecedentAnalysis) FilterByRecency(maxYears float64, reference time.Time) PrecedentAnalysis {
	var kept []Transaction
	for _, t := range a.Transactions {
		if t.YearsSince(reference) <= maxYears {
			kept = append(kept, t)
		}
	}
	return PrecedentAnalysis{Transactions: kept}
}

// FilterBySector keeps deals in the given sector.
func (a PrecedentAnalysis) FilterBySector(sector string) PrecedentAnalysis {
	var kept []Transaction
	for _, t := range a.Transactions {
		if t.Sector == sector {
			kept = append(kept, t)
		}
	}
	return PrecedentAnalysis{Transactions: kept}
}

// FilterByDealType keeps deals of the given type.
func (a PrecedentAnalysis) FilterByDealType(dealType string) PrecedentAnalysis {
	var kept []Transaction
	for _, t := range a.Transactions {
		if t.DealType == dealType {
			kept = append(kept, t)
		}
	}
	return PrecedentAnalysis{Transactions: kept}
}

// EVEBITDAMultiples summarizes the EV/EBITDA multiples across the set.
func (a PrecedentAnalysis) EVEBITDAMultiples() calc.Statistics {
	return a.describe(Transaction.EVEBITDA)
}

// EVRevenueMultiples summarizes the EV/Revenue multiples across the set.
func (a PrecedentAnalysis) EVRevenueMultiples() calc.Statistics {
	return a.describe(Transaction.EVRevenue)
}

// EVEBITMultiples summarizes the EV/EBIT multiples across the set.
func (a PrecedentAnalysis) EVEBITMultiples() calc.Statistics {
	return a.describe(Transaction.EVEBIT)
}

// ControlPremiums summarizes the control premiums across the set.
func (a PrecedentAnalysis) ControlPremiums() calc.Statistics {
	return a.describe(Transaction.ControlPremium)
}

// ImpliedEVFromEBITDA applies the precedent EV/EBITDA percentile range to
// the target's EBITDA. Precedent multiples embed a control premium, so the
// range typically sits above trading comps.
func (a PrecedentAnalysis) ImpliedEVFromEBITDA(targetEBITDA float64) ValuationRange {
	return applyRange(a.EVEBITDAMultiples(), targetEBITDA)
}

// ImpliedEVFromRevenue applies the precedent EV/Revenue percentile range to
// the target's revenue.
func (a PrecedentAnalysis) ImpliedEVFromRevenue(targetRevenue float64) ValuationRange {
	return applyRange(a.EVRevenueMultiples(), targetRevenue)
}

func (a PrecedentAnalysis) describe(metric func(Transaction) (float64, bool)) calc.Statistics {
	var values []float64
	for _, t := range a.Transactions {
		if v, ok := metric(t); ok {
			values = append(values, v)
		}
	}
	return calc.Describe(values)
}
