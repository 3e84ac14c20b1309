// Package glr implements the escalation correction layer: when coherence
// stays low after feedback, the result is snapped to the nearest of a
// small set of candidate reference frequencies, weighted by coherence.
package glr

import (
	"errors"
	"fmt"
	"math"
)

// #region constants

// Reference frequencies of the synthetic observed series. Each is
// conceptually replicated seriesLength times with a uniform weight.
const (
	observedLow  = 3.10
	observedHigh = 36.34
)

// DefaultSeriesLength is the replication count per reference frequency of
// the synthetic observed series.
const DefaultSeriesLength = 10000

// #endregion constants

// #region candidates

// DefaultCandidates returns the standard candidate reference frequencies.
// A fresh slice is returned on every call; callers may mutate their copy
// without affecting other runs.
func DefaultCandidates() []float64 {
	return []float64{3.14159, 36.339691}
}

// #endregion candidates

// #region correction
// Correction is the outcome of a GLR escalation.
type Correction struct {
	Frequency float64 // selected candidate reference frequency
	Error     float64 // its weighted absolute deviation from the series
	Status    string
}

// #endregion correction

// #region correct

// Correct selects the candidate minimizing the weight-scaled sum of
// absolute deviations from the synthetic observed series. All series
// weights are equal, so the sum collapses to
//
//	weight * seriesLength * (|observedLow − c| + |observedHigh − c|)
//
// and the series is never materialized. Ties resolve to the first
// candidate in list order. seriesLength defaults when non-positive.
func Correct(weight float64, candidates []float64, seriesLength int) (Correction, error) {
	if len(candidates) == 0 {
		return Correction{}, errors.New("glr: no candidate frequencies")
	}
	if seriesLength <= 0 {
		seriesLength = DefaultSeriesLength
	}

	best := candidates[0]
	bestErr := weightedError(weight, candidates[0], seriesLength)
	for _, c := range candidates[1:] {
		if e := weightedError(weight, c, seriesLength); e < bestErr {
			best, bestErr = c, e
		}
	}

	return Correction{
		Frequency: best,
		Error:     bestErr,
		Status:    fmt.Sprintf("GLR correction applied: f_corrected=%.6f, error=%.6f", best, bestErr),
	}, nil
}

func weightedError(weight, candidate float64, seriesLength int) float64 {
	deviation := math.Abs(observedLow-candidate) + math.Abs(observedHigh-candidate)
	return weight * float64(seriesLength) * deviation
}

// #endregion correct
