package sensitivity

import (
	"math"

	"company_valuation/pkg/core/lbo"
	"company_valuation/pkg/core/valuation"
)

// DCFTable builds the standard WACC vs terminal growth sensitivity of
// enterprise value. Cells where the DCF is undefined (growth at or above
// WACC) are NaN.
func DCFTable(base valuation.DCFInput, waccRange, growthRange []float64) Table {
	t := NewTable(func(wacc, growth float64) float64 {
		input := base
		input.WACC = wacc
		input.TerminalGrowth = growth
		res, err := valuation.CalculateDCF(input, valuation.TerminalPerpetuity)
		if err != nil {
			return math.NaN()
		}
		return res.EnterpriseValue
	}, "WACC", "Terminal Growth", waccRange, growthRange)

	t.MarkBaseCase(base.WACC, base.TerminalGrowth)
	return t
}

// LBOTable builds the standard entry multiple vs exit multiple sensitivity
// of IRR. Each cell runs the full debt schedule on a copy of the model, so
// the base model is never mutated. Tranche amounts are held fixed across
// entry multiples: the grid shows pure price sensitivity at the committed
// financing package.
func LBOTable(base *lbo.LBOModel, entryMultiples, exitMultiples []float64) Table {
	t := NewTable(func(entry, exit float64) float64 {
		trial := *base
		trial.EntryMultiple = entry
		trial.ExitMultiple = exit
		res, err := trial.RunModel()
		if err != nil {
			return math.NaN()
		}
		return res.IRR
	}, "Entry Multiple", "Exit Multiple", entryMultiples, exitMultiples)

	t.MarkBaseCase(base.EntryMultiple, base.ExitMultiple)
	return t
}
