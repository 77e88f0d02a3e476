package valuation

import (
	"fmt"
	"math"
)

// DDMInput holds the inputs for a two-stage Dividend Discount Model over an
// explicit per-share dividend stream.
type DDMInput struct {
	Dividends      []float64 // per-share dividends for each explicit year
	CostOfEquity   float64   // Ke
	TerminalGrowth float64   // g
}

// DDMResult holds the valuation outputs.
type DDMResult struct {
	PVDividends   float64
	TerminalValue float64 // undiscounted Gordon terminal price
	PVTerminal    float64
	ValuePerShare float64
}

// CalculateDDM values a share as the PV of explicit dividends plus a Gordon
// Growth terminal price:
//
//	P_n = D_n x (1+g) / (Ke - g)
func CalculateDDM(input DDMInput) (DDMResult, error) {
	if len(input.Dividends) == 0 {
		return DDMResult{}, fmt.Errorf("valuation: DDM requires at least one dividend period")
	}
	if input.CostOfEquity <= input.TerminalGrowth {
		return DDMResult{}, fmt.Errorf("valuation: terminal growth (%.2f%%) must be less than cost of equity (%.2f%%)",
			input.TerminalGrowth*100, input.CostOfEquity*100)
	}

	pvDivs := 0.0
	for i, div := range input.Dividends {
		pvDivs += div / math.Pow(1+input.CostOfEquity, float64(i+1))
	}

	n := len(input.Dividends)
	lastDiv := input.Dividends[n-1]
	terminal := lastDiv * (1 + input.TerminalGrowth) / (input.CostOfEquity - input.TerminalGrowth)
	pvTerminal := terminal / math.Pow(1+input.CostOfEquity, float64(n))

	return DDMResult{
		PVDividends:   pvDivs,
		TerminalValue: terminal,
		PVTerminal:    pvTerminal,
		ValuePerShare: pvDivs + pvTerminal,
	}, nil
}
