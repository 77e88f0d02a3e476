package valuation

import (
	"math"
	"testing"
)

func TestCalculateSOTP(t *testing.T) {
	input := SOTPInput{
		Segments: []Segment{
			{Name: "Payments", Metric: 100, Multiple: 8}, // 800
			{Name: "Software", Metric: 50, Multiple: 12}, // 600
		},
		CorporateCosts:       100,
		ConglomerateDiscount: 0.10,
		NetDebt:              170,
		SharesOutstanding:    100,
	}

	result := CalculateSOTP(input)

	// Gross EV = 800 + 600 - 100 = 1300
	// Discount = 130; adjusted = 1170; equity = 1000; 10.00 per share.
	if result.SegmentValues["Payments"] != 800 || result.SegmentValues["Software"] != 600 {
		t.Errorf("Unexpected segment values: %+v", result.SegmentValues)
	}
	if result.GrossEnterpriseValue != 1300 {
		t.Errorf("Expected gross EV 1300, got %f", result.GrossEnterpriseValue)
	}
	if math.Abs(result.DiscountApplied-130) > 1e-9 {
		t.Errorf("Expected discount 130, got %f", result.DiscountApplied)
	}
	if math.Abs(result.AdjustedEnterpriseValue-1170) > 1e-9 {
		t.Errorf("Expected adjusted EV 1170, got %f", result.AdjustedEnterpriseValue)
	}
	if math.Abs(result.EquityValue-1000) > 1e-9 {
		t.Errorf("Expected equity value 1000, got %f", result.EquityValue)
	}
	if math.Abs(result.ValuePerShare-10) > 1e-9 {
		t.Errorf("Expected 10 per share, got %f", result.ValuePerShare)
	}
}

func TestCalculateSOTPNoDiscountNoShares(t *testing.T) {
	input := SOTPInput{
		Segments: []Segment{{Name: "Core", Metric: 200, Multiple: 5}},
		NetDebt:  100,
	}

	result := CalculateSOTP(input)

	if result.AdjustedEnterpriseValue != 1000 {
		t.Errorf("Expected adjusted EV 1000 with no discount, got %f", result.AdjustedEnterpriseValue)
	}
	if result.EquityValue != 900 {
		t.Errorf("Expected equity value 900, got %f", result.EquityValue)
	}
	if result.ValuePerShare != 0 {
		t.Errorf("Expected per-share step skipped, got %f", result.ValuePerShare)
	}
}
