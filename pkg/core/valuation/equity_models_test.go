package valuation

import (
	"math"
	"testing"
)

func TestCalculateDDM(t *testing.T) {
	// Single dividend of 3, Ke 8%, g 2%:
	// Terminal = 3 * 1.02 / 0.06 = 51
	// Value = (3 + 51) / 1.08 = 50
	result, err := CalculateDDM(DDMInput{
		Dividends:      []float64{3},
		CostOfEquity:   0.08,
		TerminalGrowth: 0.02,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Abs(result.TerminalValue-51) > 1e-9 {
		t.Errorf("Expected terminal value 51, got %f", result.TerminalValue)
	}
	if math.Abs(result.ValuePerShare-50) > 1e-9 {
		t.Errorf("Expected value per share 50, got %f", result.ValuePerShare)
	}
	if math.Abs(result.PVDividends-3/1.08) > 1e-9 {
		t.Errorf("Expected PV of dividends %f, got %f", 3/1.08, result.PVDividends)
	}
}

func TestCalculateDDMMultiPeriod(t *testing.T) {
	input := DDMInput{
		Dividends:      []float64{2.0, 2.2, 2.4},
		CostOfEquity:   0.10,
		TerminalGrowth: 0.03,
	}
	result, err := CalculateDDM(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantPV := 2.0/1.1 + 2.2/math.Pow(1.1, 2) + 2.4/math.Pow(1.1, 3)
	if math.Abs(result.PVDividends-wantPV) > 1e-9 {
		t.Errorf("Expected PV of dividends %f, got %f", wantPV, result.PVDividends)
	}

	// Terminal price capitalizes the final dividend and discounts from
	// year 3.
	wantTerminal := 2.4 * 1.03 / 0.07
	if math.Abs(result.TerminalValue-wantTerminal) > 1e-9 {
		t.Errorf("Expected terminal value %f, got %f", wantTerminal, result.TerminalValue)
	}
	wantPVTerminal := wantTerminal / math.Pow(1.1, 3)
	if math.Abs(result.PVTerminal-wantPVTerminal) > 1e-9 {
		t.Errorf("Expected PV terminal %f, got %f", wantPVTerminal, result.PVTerminal)
	}
	if math.Abs(result.ValuePerShare-(wantPV+wantPVTerminal)) > 1e-9 {
		t.Errorf("Value per share does not reconcile: %f", result.ValuePerShare)
	}
}

func TestCalculateDDMErrors(t *testing.T) {
	if _, err := CalculateDDM(DDMInput{CostOfEquity: 0.08, TerminalGrowth: 0.02}); err == nil {
		t.Errorf("Expected error for empty dividend stream")
	}
	if _, err := CalculateDDM(DDMInput{
		Dividends:      []float64{3},
		CostOfEquity:   0.05,
		TerminalGrowth: 0.05,
	}); err == nil {
		t.Errorf("Expected error when growth is not below cost of equity")
	}
}
