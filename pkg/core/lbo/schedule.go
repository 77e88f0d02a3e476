package lbo

import (
	"math"
	"sort"
)

// Iteration defaults for the per-year interest/FCF circularity loop.
const (
	DefaultMaxIterations        = 10
	DefaultConvergenceThreshold = 0.01
)

// YearLedger is one audit row of the debt schedule, appended per projection
// year in year order. Rows are immutable once appended.
type YearLedger struct {
	Year                  int
	EBITDA                float64
	InterestExpense       float64
	FCF                   float64
	MandatoryAmortization float64
	CashSweep             float64
	RevolverChange        float64 // positive = draw, negative = repay
	EndingDebt            float64 // aggregate balance across all tranches
}

// LBOResult is the terminal snapshot of one model run. Constructed once at
// the end of RunModel and never mutated.
type LBOResult struct {
	EntryEquity         float64
	ExitEquity          float64
	MOIC                float64
	IRR                 float64
	ExitEnterpriseValue float64
	ExitNetDebt         float64
	TotalDebtPaydown    float64
	YearlyResults       []YearLedger

	// FinalBalances is the per-tranche breakdown of ExitNetDebt.
	FinalBalances map[string]float64

	// ConvergenceIterations records how many passes the interest/FCF loop
	// took for each year, for callers that want a convergence diagnostic.
	ConvergenceIterations []int
}

// RunModel runs the debt schedule with the default iteration cap and
// convergence threshold.
func (m *LBOModel) RunModel() (*LBOResult, error) {
	return m.RunModelOpts(DefaultMaxIterations, DefaultConvergenceThreshold)
}

// RunModelOpts simulates the full projection horizon: for each year it
// resolves the interest/FCF circularity, applies mandatory amortization,
// sweeps surplus cash across term tranches in priority order, and draws or
// repays the revolver. The circular reference is
//
//	Interest -> Debt Balance -> Paydown -> FCF -> Interest
//
// resolved by fixed-point iteration. Balances only move after the loop, so
// the loop settles on its second pass; maxIterations is still honored as a
// hard cap, and non-convergence is accepted silently with the last value.
//
// Working balances are a fresh per-call copy of the tranche amounts, so
// repeated runs on the same model are idempotent and caller-owned tranches
// are never mutated.
func (m *LBOModel) RunModelOpts(maxIterations int, convergenceThreshold float64) (*LBOResult, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	years := len(m.Projections)

	balances := make(map[string]float64, len(m.DebtTranches))
	original := make(map[string]float64, len(m.DebtTranches))
	for _, t := range m.DebtTranches {
		balances[t.Name] = t.Amount
		original[t.Name] = t.Amount
	}

	yearly := make([]YearLedger, 0, years)
	iterations := make([]int, 0, years)
	totalPaydown := 0.0

	for _, proj := range m.Projections {
		// Step A: interest/FCF fixed point for this year.
		var totalInterest, fcf float64
		prevInterest := 0.0
		iters := 0
		for i := 0; i < maxIterations; i++ {
			iters = i + 1

			totalInterest = 0
			for _, t := range m.DebtTranches {
				totalInterest += t.InterestExpense(balances[t.Name])
			}
			fcf = freeCashFlow(proj, totalInterest)

			if math.Abs(totalInterest-prevInterest) < convergenceThreshold {
				break
			}
			prevInterest = totalInterest
		}

		// Step B: mandatory amortization, straight-line on original
		// principal, capped so a balance never goes negative.
		mandatoryPaydown := 0.0
		for _, t := range m.DebtTranches {
			if t.IsRevolver {
				continue
			}
			amort := math.Min(t.AnnualAmortization(original[t.Name]), balances[t.Name])
			balances[t.Name] -= amort
			mandatoryPaydown += amort
		}

		cashForSweep := fcf - mandatoryPaydown

		// Step C: sweep surplus cash across term tranches, lowest priority
		// number first, until cash or term debt is exhausted.
		sweepPaydown := 0.0
		if cashForSweep > 0 {
			remaining := cashForSweep
			for _, t := range m.sweepOrder() {
				if remaining <= 0 {
					break
				}
				paydown := math.Min(remaining, balances[t.Name])
				balances[t.Name] -= paydown
				sweepPaydown += paydown
				remaining -= paydown
			}
		}

		// Step D: a cash deficit draws on the revolver up to its commitment;
		// a surplus repays the revolver only when no term debt absorbed it.
		// The two conditions are mutually exclusive within a year.
		revolverChange := 0.0
		for _, t := range m.DebtTranches {
			if !t.IsRevolver {
				continue
			}
			if cashForSweep < 0 {
				draw := math.Min(-cashForSweep, t.RevolverCommitment-balances[t.Name])
				balances[t.Name] += draw
				revolverChange = draw
			} else if cashForSweep > 0 && sweepPaydown == 0 {
				repay := math.Min(cashForSweep, balances[t.Name])
				balances[t.Name] -= repay
				revolverChange = -repay
			}
		}

		// Step E: ledger row. A revolver draw increases debt, so it enters
		// the paydown with a negative sign.
		yearPaydown := mandatoryPaydown + sweepPaydown - revolverChange
		totalPaydown += yearPaydown

		endingDebt := 0.0
		for _, t := range m.DebtTranches {
			endingDebt += balances[t.Name]
		}

		yearly = append(yearly, YearLedger{
			Year:                  proj.Year,
			EBITDA:                proj.EBITDA,
			InterestExpense:       totalInterest,
			FCF:                   fcf,
			MandatoryAmortization: mandatoryPaydown,
			CashSweep:             sweepPaydown,
			RevolverChange:        revolverChange,
			EndingDebt:            endingDebt,
		})
		iterations = append(iterations, iters)
	}

	// Exit calculation.
	finalEBITDA := m.Projections[years-1].EBITDA
	exitEV := finalEBITDA * m.ExitMultiple
	exitDebt := 0.0
	for _, t := range m.DebtTranches {
		exitDebt += balances[t.Name]
	}
	exitEquity := exitEV - exitDebt

	entryEquity := m.InitialEquity()
	moic := 0.0
	if entryEquity > 0 {
		moic = exitEquity / entryEquity
	}
	irr := 0.0
	if moic > 0 && years > 0 {
		irr = math.Pow(moic, 1.0/float64(years)) - 1
	}

	return &LBOResult{
		EntryEquity:           entryEquity,
		ExitEquity:            exitEquity,
		MOIC:                  moic,
		IRR:                   irr,
		ExitEnterpriseValue:   exitEV,
		ExitNetDebt:           exitDebt,
		TotalDebtPaydown:      totalPaydown,
		YearlyResults:         yearly,
		FinalBalances:         balances,
		ConvergenceIterations: iterations,
	}, nil
}

// freeCashFlow available for debt service in one year.
//
//	FCF = EBITDA - Interest - Taxes - CapEx - dNWC
//
// Taxes are floored at zero: no refund is modeled for negative taxable
// income.
func freeCashFlow(proj LBOProjection, interestExpense float64) float64 {
	taxableIncome := proj.EBITDA - proj.Depreciation - interestExpense
	taxes := math.Max(0, taxableIncome*proj.TaxRate)
	return proj.EBITDA - interestExpense - taxes - proj.Capex - proj.DeltaNWC
}

// sweepOrder returns the non-revolver tranches sorted ascending by sweep
// priority. The stable sort keeps declaration order for equal priorities.
func (m *LBOModel) sweepOrder() []DebtTranche {
	term := make([]DebtTranche, 0, len(m.DebtTranches))
	for _, t := range m.DebtTranches {
		if !t.IsRevolver {
			term = append(term, t)
		}
	}
	sort.SliceStable(term, func(i, j int) bool {
		return term[i].CashSweepPriority < term[j].CashSweepPriority
	})
	return term
}
