package sensitivity

// Bar is a single bar in a football field chart: one valuation method's
// low/mid/high range, typically p25/median/p75.
type Bar struct {
	Method string
	Low    float64
	Mid    float64
	High   float64
}

// RangeWidth of the bar.
func (b Bar) RangeWidth() float64 {
	return b.High - b.Low
}

// Field is a football-field valuation summary: the ranges produced by each
// methodology side by side, with optional market context.
type Field struct {
	Bars             []Bar
	FiftyTwoWeekLow  float64
	FiftyTwoWeekHigh float64
	CurrentPrice     float64
}

// OverallRange spans all method ranges plus the 52-week trading range when
// one is supplied.
func (f Field) OverallRange() (float64, float64) {
	if len(f.Bars) == 0 {
		return 0, 0
	}
	low, high := f.Bars[0].Low, f.Bars[0].High
	for _, b := range f.Bars[1:] {
		if b.Low < low {
			low = b.Low
		}
		if b.High > high {
			high = b.High
		}
	}
	if f.FiftyTwoWeekLow > 0 && f.FiftyTwoWeekLow < low {
		low = f.FiftyTwoWeekLow
	}
	if f.FiftyTwoWeekHigh > high {
		high = f.FiftyTwoWeekHigh
	}
	return low, high
}

// ConsensusRange is the overlap of all method ranges, where every
// methodology agrees. ok is false when no overlap exists.
func (f Field) ConsensusRange() (low, high float64, ok bool) {
	if len(f.Bars) == 0 {
		return 0, 0, false
	}
	low, high = f.Bars[0].Low, f.Bars[0].High
	for _, b := range f.Bars[1:] {
		if b.Low > low {
			low = b.Low
		}
		if b.High < high {
			high = b.High
		}
	}
	if low > high {
		return 0, 0, false
	}
	return low, high, true
}
