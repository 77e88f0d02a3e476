package lbo

import "fmt"

// Default fee assumptions applied by NewLBOModel.
const (
	DefaultTransactionFeesPct = 0.02 // % of purchase price
	DefaultFinancingFeesPct   = 0.02 // % of debt raised
)

// LBOModel holds the full set of deal assumptions for a leveraged buyout:
// entry pricing, capital structure, operating projections, and exit pricing.
//
// Answers: "what returns does this price produce given available debt
// financing?" and, through the solver, "what is the maximum price that still
// achieves a target IRR?"
//
// A model instance is not safe for concurrent RunModel calls without
// external synchronization.
type LBOModel struct {
	EntryEBITDA        float64
	EntryMultiple      float64 // EV / EBITDA at entry
	DebtTranches       []DebtTranche
	Projections        []LBOProjection
	ExitMultiple       float64 // EV / EBITDA at exit
	TransactionFeesPct float64 // advisory fees as % of EV
	FinancingFeesPct   float64 // financing fees as % of debt
	MinCash            float64 // reserved; the sweep does not hold back cash yet
}

// NewLBOModel builds a model with the standard 2% fee assumptions and
// validates the configuration. Invalid assumptions fail fast with a
// descriptive error; nothing else is defaulted silently.
func NewLBOModel(entryEBITDA, entryMultiple float64, tranches []DebtTranche,
	projections []LBOProjection, exitMultiple float64) (*LBOModel, error) {

	m := &LBOModel{
		EntryEBITDA:        entryEBITDA,
		EntryMultiple:      entryMultiple,
		DebtTranches:       tranches,
		Projections:        projections,
		ExitMultiple:       exitMultiple,
		TransactionFeesPct: DefaultTransactionFeesPct,
		FinancingFeesPct:   DefaultFinancingFeesPct,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks every entry invariant the simulator relies on. RunModel
// calls it before touching any state, so models built as struct literals get
// the same fail-fast treatment as ones built through NewLBOModel.
func (m *LBOModel) Validate() error {
	if m.EntryEBITDA <= 0 {
		return fmt.Errorf("lbo: entry EBITDA must be positive, got %.2f", m.EntryEBITDA)
	}
	if m.EntryMultiple <= 0 {
		return fmt.Errorf("lbo: entry multiple must be positive, got %.2f", m.EntryMultiple)
	}
	if m.ExitMultiple <= 0 {
		return fmt.Errorf("lbo: exit multiple must be positive, got %.2f", m.ExitMultiple)
	}
	if len(m.DebtTranches) == 0 {
		return fmt.Errorf("lbo: at least one debt tranche is required")
	}

	seen := make(map[string]bool, len(m.DebtTranches))
	revolvers := 0
	for _, t := range m.DebtTranches {
		if t.Name == "" {
			return fmt.Errorf("lbo: tranche name must not be empty")
		}
		if seen[t.Name] {
			return fmt.Errorf("lbo: duplicate tranche name %q", t.Name)
		}
		seen[t.Name] = true
		if t.Amount < 0 {
			return fmt.Errorf("lbo: tranche %q amount must be non-negative, got %.2f", t.Name, t.Amount)
		}
		if t.InterestRate < 0 {
			return fmt.Errorf("lbo: tranche %q interest rate must be non-negative, got %.4f", t.Name, t.InterestRate)
		}
		if t.AmortizationRate < 0 || t.AmortizationRate > 1 {
			return fmt.Errorf("lbo: tranche %q amortization rate must be in [0,1], got %.4f", t.Name, t.AmortizationRate)
		}
		if t.IsRevolver {
			revolvers++
			if t.RevolverCommitment < 0 {
				return fmt.Errorf("lbo: tranche %q revolver commitment must be non-negative, got %.2f", t.Name, t.RevolverCommitment)
			}
		}
	}
	// The draw/repay logic acts on a single facility; more than one revolver
	// is a configuration error rather than a silently mishandled structure.
	if revolvers > 1 {
		return fmt.Errorf("lbo: at most one revolver tranche is supported, got %d", revolvers)
	}

	if len(m.Projections) == 0 {
		return fmt.Errorf("lbo: at least one projection year is required")
	}
	for i, p := range m.Projections {
		if p.Year != i+1 {
			return fmt.Errorf("lbo: projection years must be contiguous starting at 1, got year %d at position %d", p.Year, i)
		}
		if p.TaxRate < 0 || p.TaxRate > 1 {
			return fmt.Errorf("lbo: year %d tax rate must be in [0,1], got %.4f", p.Year, p.TaxRate)
		}
	}
	return nil
}

// PurchasePrice is total enterprise value at entry.
func (m *LBOModel) PurchasePrice() float64 {
	return m.EntryEBITDA * m.EntryMultiple
}

// TotalInitialDebt is total debt at closing.
func (m *LBOModel) TotalInitialDebt() float64 {
	total := 0.0
	for _, t := range m.DebtTranches {
		total += t.Amount
	}
	return total
}

// TransactionFees are advisory fees on the purchase price.
func (m *LBOModel) TransactionFees() float64 {
	return m.PurchasePrice() * m.TransactionFeesPct
}

// FinancingFees are fees on the debt raised.
func (m *LBOModel) FinancingFees() float64 {
	return m.TotalInitialDebt() * m.FinancingFeesPct
}

// InitialEquity is the sponsor equity check at close, the balancing plug
// between uses and debt sources.
func (m *LBOModel) InitialEquity() float64 {
	return m.PurchasePrice() + m.TransactionFees() +
		m.FinancingFees() - m.TotalInitialDebt()
}

// SourcesAndUses generates the Sources & Uses table for the transaction.
func (m *LBOModel) SourcesAndUses() SourcesAndUses {
	termLoan := 0.0
	revolver := 0.0
	for _, t := range m.DebtTranches {
		if t.IsRevolver {
			revolver += t.Amount
		} else {
			termLoan += t.Amount
		}
	}

	return SourcesAndUses{
		TermLoan:        termLoan,
		RevolverDraw:    revolver,
		SponsorEquity:   m.InitialEquity(),
		EquityPurchase:  m.PurchasePrice(),
		TransactionFees: m.TransactionFees(),
		FinancingFees:   m.FinancingFees(),
	}
}
