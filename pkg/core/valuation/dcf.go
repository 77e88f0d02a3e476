package valuation

import (
	"fmt"
	"math"
)

// UFCFProjection is a single period of unlevered free cash flow drivers.
//
//	UFCF = EBIT x (1 - Tax Rate) + D&A - CapEx - dNWC
//
// SBC can be treated as a cash expense (not added back, buy-side view) or
// non-cash (added back, sell-side convention) via AddBackSBC.
type UFCFProjection struct {
	Year                     int
	Revenue                  float64
	EBIT                     float64
	TaxRate                  float64
	DepreciationAmortization float64
	Capex                    float64 // cash outflow, positive number
	DeltaNWC                 float64 // increase = outflow, positive
	SBC                      float64
	AddBackSBC               bool
	EBITDA                   float64 // optional; zero falls back to EBIT + D&A
}

// NOPAT is Net Operating Profit After Tax.
func (p UFCFProjection) NOPAT() float64 {
	return p.EBIT * (1 - p.TaxRate)
}

// UFCF is the unlevered free cash flow for the period.
func (p UFCFProjection) UFCF() float64 {
	fcf := p.NOPAT() + p.DepreciationAmortization - p.Capex - p.DeltaNWC
	if p.AddBackSBC {
		fcf += p.SBC
	}
	return fcf
}

func (p UFCFProjection) ebitda() float64 {
	if p.EBITDA != 0 {
		return p.EBITDA
	}
	return p.EBIT + p.DepreciationAmortization
}

// TerminalMethod selects how the terminal value is computed.
type TerminalMethod string

const (
	TerminalPerpetuity   TerminalMethod = "perpetuity_growth"
	TerminalExitMultiple TerminalMethod = "exit_multiple"
)

// DCFInput encapsulates all inputs for a two-stage DCF.
type DCFInput struct {
	Projections       []UFCFProjection
	WACC              float64
	TerminalGrowth    float64 // perpetual growth rate for Gordon Growth
	ExitMultiple      float64 // exit EBITDA multiple, required for TerminalExitMultiple
	NetDebt           float64
	SharesOutstanding float64 // 0 skips the per-share step
	MidYearConvention bool
	StubFraction      float64 // first-period fraction; 0 means a full year
}

// DCFResult holds the valuation outputs.
type DCFResult struct {
	PVExplicitCashflows       float64
	TerminalValueUndiscounted float64
	PVTerminalValue           float64
	EnterpriseValue           float64
	EquityValue               float64
	EquityValuePerShare       float64
	TerminalMethod            TerminalMethod
	ImpliedPerpetualGrowth    float64 // populated for the exit multiple method
}

// TerminalValuePercentage is the share of enterprise value contributed by
// the terminal value, commonly 60-80% in practice.
func (r DCFResult) TerminalValuePercentage() float64 {
	if r.EnterpriseValue == 0 {
		return 0
	}
	return r.PVTerminalValue / r.EnterpriseValue
}

// CalculateDCF performs a standard two-stage DCF: discount the explicit
// forecast period (mid-year and stub-period aware), capitalize the terminal
// value by the chosen method, and bridge to equity.
func CalculateDCF(input DCFInput, method TerminalMethod) (DCFResult, error) {
	if len(input.Projections) == 0 {
		return DCFResult{}, fmt.Errorf("valuation: DCF requires at least one projection period")
	}

	stub := input.StubFraction
	if stub == 0 {
		stub = 1.0
	}

	// 1. PV of explicit forecast
	pvExplicit := 0.0
	for i, proj := range input.Projections {
		pvExplicit += proj.UFCF() * discountFactor(input.WACC, discountPeriod(i, stub, input.MidYearConvention))
	}

	final := input.Projections[len(input.Projections)-1]

	// 2. Terminal value (undiscounted)
	var tv float64
	impliedGrowth := 0.0
	switch method {
	case TerminalPerpetuity:
		// TV = UFCF_n x (1+g) / (WACC - g)
		if input.WACC <= input.TerminalGrowth {
			return DCFResult{}, fmt.Errorf("valuation: terminal growth (%.2f%%) must be less than WACC (%.2f%%)",
				input.TerminalGrowth*100, input.WACC*100)
		}
		tv = final.UFCF() * (1 + input.TerminalGrowth) / (input.WACC - input.TerminalGrowth)
	case TerminalExitMultiple:
		// TV = EBITDA_n x Multiple, cross-checked via the implied growth a
		// perpetuity would need to reproduce it.
		if input.ExitMultiple <= 0 {
			return DCFResult{}, fmt.Errorf("valuation: exit multiple must be positive for the exit multiple method")
		}
		tv = final.ebitda() * input.ExitMultiple
		if denom := tv + final.UFCF(); denom != 0 {
			impliedGrowth = (tv*input.WACC - final.UFCF()) / denom
		}
	default:
		return DCFResult{}, fmt.Errorf("valuation: unknown terminal method %q", method)
	}

	// 3. Discount TV from end of period n (never mid-year). Stub periods
	// shorten the terminal discount period accordingly.
	n := len(input.Projections)
	terminalPeriod := float64(n)
	if stub < 1 {
		terminalPeriod = stub + float64(n-1)
	}
	pvTerminal := tv * discountFactor(input.WACC, terminalPeriod)

	// 4. Aggregate and bridge
	ev := pvExplicit + pvTerminal
	equityValue := ev - input.NetDebt
	perShare := 0.0
	if input.SharesOutstanding > 0 {
		perShare = equityValue / input.SharesOutstanding
	}

	return DCFResult{
		PVExplicitCashflows:       pvExplicit,
		TerminalValueUndiscounted: tv,
		PVTerminalValue:           pvTerminal,
		EnterpriseValue:           ev,
		EquityValue:               equityValue,
		EquityValuePerShare:       perShare,
		TerminalMethod:            method,
		ImpliedPerpetualGrowth:    impliedGrowth,
	}, nil
}

// discountPeriod for projection index i, accounting for the stub fraction
// and mid-year convention. With mid-year on, cash flows are assumed to
// arrive at the middle of each period.
func discountPeriod(i int, stub float64, midYear bool) float64 {
	var base, midAdj float64
	if i == 0 {
		base = stub
		midAdj = stub / 2
	} else {
		base = stub + float64(i)
		midAdj = 0.5
	}
	if midYear {
		return base - midAdj
	}
	return base
}

func discountFactor(wacc, period float64) float64 {
	return 1 / math.Pow(1+wacc, period)
}
