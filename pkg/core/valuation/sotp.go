package valuation

// Segment is one business line valued on its own metric and multiple.
type Segment struct {
	Name     string
	Metric   float64 // EBITDA, revenue, or another EV driver
	Multiple float64
}

// EnterpriseValue implied for the segment.
func (s Segment) EnterpriseValue() float64 {
	return s.Metric * s.Multiple
}

// SOTPInput for a Sum-of-the-Parts valuation.
type SOTPInput struct {
	Segments             []Segment
	CorporateCosts       float64 // capitalized unallocated overhead, subtracted from gross EV
	ConglomerateDiscount float64 // e.g. 0.10 for a 10% holding-company discount
	NetDebt              float64
	SharesOutstanding    float64 // 0 skips the per-share step
}

// SOTPResult holds the aggregated valuation.
type SOTPResult struct {
	SegmentValues           map[string]float64
	GrossEnterpriseValue    float64 // sum of segment EVs less corporate costs
	DiscountApplied         float64
	AdjustedEnterpriseValue float64
	EquityValue             float64
	ValuePerShare           float64
}

// CalculateSOTP values each segment on its own multiple, nets out corporate
// costs, applies the conglomerate discount, and bridges to equity.
func CalculateSOTP(input SOTPInput) SOTPResult {
	segmentValues := make(map[string]float64, len(input.Segments))
	gross := -input.CorporateCosts
	for _, s := range input.Segments {
		ev := s.EnterpriseValue()
		segmentValues[s.Name] = ev
		gross += ev
	}

	discount := gross * input.ConglomerateDiscount
	adjusted := gross - discount
	equity := adjusted - input.NetDebt

	perShare := 0.0
	if input.SharesOutstanding > 0 {
		perShare = equity / input.SharesOutstanding
	}

	return SOTPResult{
		SegmentValues:           segmentValues,
		GrossEnterpriseValue:    gross,
		DiscountApplied:         discount,
		AdjustedEnterpriseValue: adjusted,
		EquityValue:             equity,
		ValuePerShare:           perShare,
	}
}
