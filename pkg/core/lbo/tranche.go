package lbo

// DebtTranche is one slice of the acquisition capital structure with its own
// pricing, amortization schedule, and cash-sweep priority. Names identify
// tranches and must be unique within a model.
type DebtTranche struct {
	Name               string
	Amount             float64 // initial amount drawn at close
	InterestRate       float64 // annual, e.g. 0.09 for 9%
	AmortizationRate   float64 // annual mandatory amortization as % of original principal
	IsRevolver         bool
	RevolverCommitment float64 // total available commitment for a revolver
	CashSweepPriority  int     // lower = paid first in the sweep
}

// InterestExpense on the balance passed in. Balances are owned by the debt
// schedule for the duration of a run, not stored on the tranche.
func (t DebtTranche) InterestExpense(balance float64) float64 {
	return balance * t.InterestRate
}

// AnnualAmortization is straight-line on the original principal, independent
// of the current balance. Callers cap the result at the remaining balance.
// Revolvers never mandatorily amortize; their AmortizationRate is ignored.
func (t DebtTranche) AnnualAmortization(originalAmount float64) float64 {
	return originalAmount * t.AmortizationRate
}

// LBOProjection is a single year of operating assumptions. Years are
// self-contained: growth must be pre-compounded into each year's EBITDA.
type LBOProjection struct {
	Year         int // 1-based, contiguous across the projection list
	EBITDA       float64
	Capex        float64
	DeltaNWC     float64
	TaxRate      float64
	Depreciation float64 // D&A, for the tax shield only
}
