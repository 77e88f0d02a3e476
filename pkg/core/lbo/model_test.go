package lbo

import (
	"strings"
	"testing"
)

func flatProjections(years int, ebitda, capex, taxRate, depreciation float64) []LBOProjection {
	out := make([]LBOProjection, 0, years)
	for y := 1; y <= years; y++ {
		out = append(out, LBOProjection{
			Year:         y,
			EBITDA:       ebitda,
			Capex:        capex,
			TaxRate:      taxRate,
			Depreciation: depreciation,
		})
	}
	return out
}

func TestNewLBOModelDefaults(t *testing.T) {
	tranches := []DebtTranche{{Name: "Unitranche", Amount: 600, InterestRate: 0.08}}
	m, err := NewLBOModel(100, 10, tranches, flatProjections(5, 105, 15, 0.25, 10), 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Purchase price = 100 * 10 = 1000
	// Transaction fees = 1000 * 0.02 = 20
	// Financing fees = 600 * 0.02 = 12
	// Sponsor equity (plug) = 1000 + 20 + 12 - 600 = 432
	if m.PurchasePrice() != 1000 {
		t.Errorf("Expected purchase price 1000, got %f", m.PurchasePrice())
	}
	if m.TransactionFees() != 20 {
		t.Errorf("Expected transaction fees 20, got %f", m.TransactionFees())
	}
	if m.FinancingFees() != 12 {
		t.Errorf("Expected financing fees 12, got %f", m.FinancingFees())
	}
	if m.InitialEquity() != 432 {
		t.Errorf("Expected initial equity 432, got %f", m.InitialEquity())
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	goodTranches := []DebtTranche{{Name: "TLA", Amount: 300, InterestRate: 0.07}}
	goodYears := flatProjections(3, 100, 10, 0.25, 10)

	cases := []struct {
		name    string
		mutate  func(m *LBOModel)
		wantErr string
	}{
		{"zero entry ebitda", func(m *LBOModel) { m.EntryEBITDA = 0 }, "entry EBITDA"},
		{"negative entry multiple", func(m *LBOModel) { m.EntryMultiple = -1 }, "entry multiple"},
		{"zero exit multiple", func(m *LBOModel) { m.ExitMultiple = 0 }, "exit multiple"},
		{"no tranches", func(m *LBOModel) { m.DebtTranches = nil }, "tranche"},
		{"no projections", func(m *LBOModel) { m.Projections = nil }, "projection"},
		{"duplicate tranche names", func(m *LBOModel) {
			m.DebtTranches = []DebtTranche{
				{Name: "TLA", Amount: 300, InterestRate: 0.07},
				{Name: "TLA", Amount: 100, InterestRate: 0.09},
			}
		}, "duplicate"},
		{"amortization above 1", func(m *LBOModel) {
			m.DebtTranches = []DebtTranche{{Name: "TLA", Amount: 300, InterestRate: 0.07, AmortizationRate: 1.5}}
		}, "amortization"},
		{"non-contiguous years", func(m *LBOModel) {
			m.Projections = []LBOProjection{{Year: 1, EBITDA: 100}, {Year: 3, EBITDA: 100}}
		}, "contiguous"},
		{"years not starting at 1", func(m *LBOModel) {
			m.Projections = []LBOProjection{{Year: 2, EBITDA: 100}}
		}, "contiguous"},
		{"two revolvers", func(m *LBOModel) {
			m.DebtTranches = []DebtTranche{
				{Name: "Rev A", IsRevolver: true, RevolverCommitment: 50},
				{Name: "Rev B", IsRevolver: true, RevolverCommitment: 50},
			}
		}, "revolver"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &LBOModel{
				EntryEBITDA:   100,
				EntryMultiple: 8,
				DebtTranches:  goodTranches,
				Projections:   goodYears,
				ExitMultiple:  8,
			}
			tc.mutate(m)
			err := m.Validate()
			if err == nil {
				t.Fatalf("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error mentioning %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestSourcesAndUsesBalances(t *testing.T) {
	tranches := []DebtTranche{
		{Name: "Term Loan", Amount: 450, InterestRate: 0.07},
		{Name: "Revolver", Amount: 50, InterestRate: 0.05, IsRevolver: true, RevolverCommitment: 100},
	}
	m, err := NewLBOModel(100, 10, tranches, flatProjections(5, 105, 15, 0.25, 10), 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	su := m.SourcesAndUses()

	if su.TermLoan != 450 {
		t.Errorf("Expected term loan 450, got %f", su.TermLoan)
	}
	if su.RevolverDraw != 50 {
		t.Errorf("Expected revolver draw 50, got %f", su.RevolverDraw)
	}
	if su.TotalDebt() != 500 {
		t.Errorf("Expected total debt 500, got %f", su.TotalDebt())
	}

	// Sponsor equity is the balancing plug, so the table must balance:
	// uses = 1000 + 20 + 10 = 1030; sources = 500 + 530 = 1030.
	if !su.IsBalanced(DefaultBalanceTolerance) {
		t.Errorf("Expected balanced sources and uses: sources %f, uses %f",
			su.TotalSources(), su.TotalUses())
	}
}

func TestIsBalancedDiagnosticOnly(t *testing.T) {
	// A hand-built table that is off by 5 reports unbalanced; it is a
	// diagnostic, not an error.
	su := SourcesAndUses{TermLoan: 500, SponsorEquity: 495, EquityPurchase: 1000}
	if su.IsBalanced(DefaultBalanceTolerance) {
		t.Errorf("Expected unbalanced table (sources 995, uses 1000)")
	}
	if !su.IsBalanced(10) {
		t.Errorf("Expected table balanced within tolerance 10")
	}
}
