package valuation

import (
	"math"
	"testing"
)

func TestCalculateCompsEBITDARange(t *testing.T) {
	target := TargetMetrics{Revenue: 500, EBITDA: 100, NetDebt: 200, SharesOut: 10}
	peers := []PeerMultiples{
		{Name: "Peer A", EVEBITDA: 8},
		{Name: "Peer B", EVEBITDA: 10},
		{Name: "Peer C", EVEBITDA: 12},
	}

	result := CalculateComps(target, peers)

	// Sorted multiples [8, 10, 12]: P25 = 9, median = 10, P75 = 11.
	// Applied to 100 of EBITDA: 900 / 1000 / 1100.
	if result.EBITDAMultiples.Median != 10 {
		t.Errorf("Expected median multiple 10, got %f", result.EBITDAMultiples.Median)
	}
	r := result.ImpliedEVFromEBITDA
	if r.Low != 900 || r.Mid != 1000 || r.High != 1100 {
		t.Errorf("Expected implied EV 900/1000/1100, got %f/%f/%f", r.Low, r.Mid, r.High)
	}
}

func TestCalculateCompsExcludesMissingMultiples(t *testing.T) {
	target := TargetMetrics{EBITDA: 100}
	peers := []PeerMultiples{
		{Name: "Peer A", EVEBITDA: 8},
		{Name: "Peer B", EVEBITDA: 0},  // not available
		{Name: "Peer C", EVEBITDA: -2}, // negative EBITDA, meaningless
		{Name: "Peer D", EVEBITDA: 12},
	}

	result := CalculateComps(target, peers)

	if result.EBITDAMultiples.Count != 2 {
		t.Errorf("Expected 2 usable multiples, got %d", result.EBITDAMultiples.Count)
	}
	if result.EBITDAMultiples.Median != 10 {
		t.Errorf("Expected median 10 from [8, 12], got %f", result.EBITDAMultiples.Median)
	}
}

func TestCalculateCompsPEPerShare(t *testing.T) {
	// EPS = 50 / 10 = 5; median P/E 20 implies a 100 share price.
	target := TargetMetrics{NetIncome: 50, SharesOut: 10}
	peers := []PeerMultiples{
		{Name: "Peer A", PERatio: 15},
		{Name: "Peer B", PERatio: 20},
		{Name: "Peer C", PERatio: 25},
	}

	result := CalculateComps(target, peers)

	if result.ImpliedPricePE.Mid != 100 {
		t.Errorf("Expected implied mid price 100, got %f", result.ImpliedPricePE.Mid)
	}
}

func TestCalculateCompsEmptyPeerSet(t *testing.T) {
	result := CalculateComps(TargetMetrics{EBITDA: 100}, nil)
	if result.ImpliedEVFromEBITDA != (ValuationRange{}) {
		t.Errorf("Expected zero range for empty peer set, got %+v", result.ImpliedEVFromEBITDA)
	}
}

func TestImpliedEquityRange(t *testing.T) {
	target := TargetMetrics{NetDebt: 200, SharesOut: 10}
	evRange := ValuationRange{Low: 900, Mid: 1000, High: 1100}

	got := ImpliedEquityRange(evRange, target)

	// (EV - 200) / 10 per share.
	if got.Low != 70 || got.Mid != 80 || got.High != 90 {
		t.Errorf("Expected per-share range 70/80/90, got %f/%f/%f", got.Low, got.Mid, got.High)
	}
}

func TestImpliedEquityRangeNoShares(t *testing.T) {
	got := ImpliedEquityRange(ValuationRange{Low: 900, Mid: 1000, High: 1100}, TargetMetrics{})
	if got != (ValuationRange{}) {
		t.Errorf("Expected zero range without a share count, got %+v", got)
	}
}

func TestImpliedRangeOrdering(t *testing.T) {
	target := TargetMetrics{Revenue: 500, EBITDA: 100}
	peers := []PeerMultiples{
		{Name: "A", EVRevenue: 2.1, EVEBITDA: 9.5},
		{Name: "B", EVRevenue: 2.8, EVEBITDA: 11.0},
		{Name: "C", EVRevenue: 3.3, EVEBITDA: 12.5},
		{Name: "D", EVRevenue: 1.9, EVEBITDA: 8.0},
	}

	result := CalculateComps(target, peers)

	for name, r := range map[string]ValuationRange{
		"revenue": result.ImpliedEVFromRevenue,
		"ebitda":  result.ImpliedEVFromEBITDA,
	} {
		if r.Low > r.Mid || r.Mid > r.High {
			t.Errorf("%s range out of order: %f/%f/%f", name, r.Low, r.Mid, r.High)
		}
		if math.IsNaN(r.Low) || math.IsNaN(r.High) {
			t.Errorf("%s range contains NaN", name)
		}
	}
}
