package calc

import (
	"math"
	"sort"
)

// Mean of values. Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median of values. Returns 0 for an empty slice.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// Percentile computes the p-th percentile (0-100) using linear interpolation
// between closest ranks. Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Statistics is a descriptive summary of a sample.
type Statistics struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	P25    float64
	P75    float64
	Count  int
}

// Describe computes descriptive statistics. A zero-count summary is returned
// for an empty slice.
func Describe(values []float64) Statistics {
	if len(values) == 0 {
		return Statistics{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Statistics{
		Mean:   Mean(values),
		Median: Percentile(values, 50),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P25:    Percentile(values, 25),
		P75:    Percentile(values, 75),
		Count:  len(values),
	}
}

// FilterValid drops NaN entries, mirroring the treatment of missing peer
// metrics in comps and precedent screens.
func FilterValid(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
