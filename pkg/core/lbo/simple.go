package lbo

import "math"

// SimpleLBO builds a quick single-tranche model: one unitranche loan at
// leverageTurns x EBITDA with 1% mandatory amortization, geometric EBITDA
// growth over the hold, D&A fixed at 10% of each year's EBITDA, capex as a
// fixed percentage of EBITDA, and zero change in working capital.
//
// Typical assumptions: 5 year hold, 5% growth, 20% capex, 25% tax.
func SimpleLBO(entryEBITDA, entryMultiple, leverageTurns, interestRate,
	exitMultiple float64, holdYears int, ebitdaGrowth, capexPct, taxRate float64) (*LBOModel, error) {

	debt := DebtTranche{
		Name:             "Unitranche",
		Amount:           entryEBITDA * leverageTurns,
		InterestRate:     interestRate,
		AmortizationRate: 0.01,
	}

	projections := make([]LBOProjection, 0, holdYears)
	for year := 1; year <= holdYears; year++ {
		ebitda := entryEBITDA * math.Pow(1+ebitdaGrowth, float64(year))
		projections = append(projections, LBOProjection{
			Year:         year,
			EBITDA:       ebitda,
			Capex:        ebitda * capexPct,
			TaxRate:      taxRate,
			Depreciation: ebitda * 0.10,
		})
	}

	return NewLBOModel(entryEBITDA, entryMultiple, []DebtTranche{debt},
		projections, exitMultiple)
}
