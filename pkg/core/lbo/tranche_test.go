package lbo

import (
	"math"
	"testing"
)

func TestTrancheInterestExpense(t *testing.T) {
	tranche := DebtTranche{Name: "Term Loan A", Amount: 500, InterestRate: 0.09}

	// Interest is a pure function of the balance passed in, not the
	// tranche's original amount: 300 * 0.09 = 27.
	got := tranche.InterestExpense(300)
	if math.Abs(got-27) > 1e-12 {
		t.Errorf("Expected interest 27, got %f", got)
	}

	if tranche.InterestExpense(0) != 0 {
		t.Errorf("Expected zero interest on zero balance")
	}
}

func TestTrancheAnnualAmortization(t *testing.T) {
	tranche := DebtTranche{Name: "Term Loan A", Amount: 500, InterestRate: 0.09, AmortizationRate: 0.05}

	// Straight-line on original principal: 500 * 0.05 = 25, regardless of
	// how far the balance has already amortized.
	got := tranche.AnnualAmortization(500)
	if math.Abs(got-25) > 1e-12 {
		t.Errorf("Expected amortization 25, got %f", got)
	}

	// The schedule passes the original amount explicitly; a different
	// original gives a proportionally different payment.
	got = tranche.AnnualAmortization(200)
	if math.Abs(got-10) > 1e-12 {
		t.Errorf("Expected amortization 10, got %f", got)
	}
}
