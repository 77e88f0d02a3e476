package lbo

import (
	"errors"
	"math"
)

// ErrTargetNotAchievable is returned when the entry-multiple search exhausts
// its iteration budget without landing within tolerance of the target IRR.
// The solver never returns a best-effort approximate multiple.
var ErrTargetNotAchievable = errors.New("lbo: target IRR not achievable within multiple bounds")

// SolverOptions bound the binary search over the entry multiple.
type SolverOptions struct {
	MinMultiple   float64
	MaxMultiple   float64
	Tolerance     float64 // absolute IRR tolerance
	MaxIterations int
}

// DefaultSolverOptions cover the usual 5x-15x EV/EBITDA pricing range.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MinMultiple:   5.0,
		MaxMultiple:   15.0,
		Tolerance:     0.001,
		MaxIterations: 50,
	}
}

// SolveForEntryMultiple finds the maximum entry multiple that still achieves
// targetIRR, by binary search. Each trial runs the full debt schedule on a
// working copy of the model with every tranche amount rescaled by
// trial/original multiple, holding leverage constant in EBITDA turns rather
// than dollar terms. The receiver is never mutated on any exit path.
//
// Binary search relies on IRR being monotonic non-increasing in the entry
// multiple at fixed leverage turns; the relationship is not verified, and
// results are undefined for debt/projection sets that break it.
func (m *LBOModel) SolveForEntryMultiple(targetIRR float64, opts SolverOptions) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	low, high := opts.MinMultiple, opts.MaxMultiple

	for i := 0; i < opts.MaxIterations; i++ {
		mid := (low + high) / 2

		trial := m.withEntryMultiple(mid)
		result, err := trial.RunModel()
		if err != nil {
			return 0, err
		}

		if math.Abs(result.IRR-targetIRR) < opts.Tolerance {
			return mid, nil
		}

		if result.IRR > targetIRR {
			low = mid // can pay more
		} else {
			high = mid // need to pay less
		}
	}

	return 0, ErrTargetNotAchievable
}

// withEntryMultiple clones the model at a trial multiple, scaling each
// tranche amount so debt capacity moves with the purchase price. Projections
// are shared: the schedule never mutates them.
func (m *LBOModel) withEntryMultiple(multiple float64) *LBOModel {
	clone := *m
	clone.EntryMultiple = multiple

	scale := multiple / m.EntryMultiple
	tranches := make([]DebtTranche, len(m.DebtTranches))
	copy(tranches, m.DebtTranches)
	for i := range tranches {
		tranches[i].Amount *= scale
	}
	clone.DebtTranches = tranches

	return &clone
}
