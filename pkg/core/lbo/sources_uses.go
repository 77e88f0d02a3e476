package lbo

import "math"

// DefaultBalanceTolerance is the absolute tolerance used when checking that
// a Sources & Uses table balances.
const DefaultBalanceTolerance = 0.01

// SourcesAndUses is the ledger of funds raised against funds required at
// transaction close. It is a snapshot computed from entry assumptions and is
// never mutated after construction.
type SourcesAndUses struct {
	// Sources
	TermLoan       float64
	RevolverDraw   float64
	OtherDebt      float64
	SponsorEquity  float64
	RolloverEquity float64

	// Uses
	EquityPurchase  float64
	RefinanceDebt   float64
	TransactionFees float64
	FinancingFees   float64
}

// TotalSources sums all funding raised for the transaction.
func (s SourcesAndUses) TotalSources() float64 {
	return s.TermLoan + s.RevolverDraw + s.OtherDebt +
		s.SponsorEquity + s.RolloverEquity
}

// TotalUses sums all funds required to complete the transaction.
func (s SourcesAndUses) TotalUses() float64 {
	return s.EquityPurchase + s.RefinanceDebt +
		s.TransactionFees + s.FinancingFees
}

// TotalDebt is the debt raised at closing.
func (s SourcesAndUses) TotalDebt() float64 {
	return s.TermLoan + s.RevolverDraw + s.OtherDebt
}

// IsBalanced reports whether sources equal uses within tolerance. An
// unbalanced table is a diagnostic for the caller to act on, never an error.
func (s SourcesAndUses) IsBalanced(tolerance float64) bool {
	return math.Abs(s.TotalSources()-s.TotalUses()) < tolerance
}
