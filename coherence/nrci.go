// Package coherence computes the NRCI, the normalized coherence index in
// [0,1] that drives all downstream correction branching.
package coherence

import (
	"fmt"
	"math"
)

// #region length-mismatch-error
// LengthMismatchError reports observed/target value vectors of different
// (or zero) length.
type LengthMismatchError struct {
	Observed int
	Target   int
}

func (e *LengthMismatchError) Error() string {
	if e.Observed == e.Target {
		return "coherence: empty value vectors"
	}
	return fmt.Sprintf("coherence: observed length %d does not match target length %d", e.Observed, e.Target)
}

// #endregion length-mismatch-error

// #region nrci

// NRCI computes the normalized coherence index between an observed value
// vector and a target value vector: the root-mean-square deviation is
// normalized by the target's population standard deviation, subtracted
// from 1, and clamped to [0,1]. 1.0 means the observed vector equals the
// target; 0.0 means the deviation is at least as large as the target's
// own spread. A constant target (stddev ≤ 0) falls back to a denominator
// of 1.0 instead of propagating a division error.
func NRCI(observed, target []float64) (float64, error) {
	if len(observed) != len(target) || len(observed) == 0 {
		return 0, &LengthMismatchError{Observed: len(observed), Target: len(target)}
	}

	var sumSq float64
	for i := range observed {
		d := observed[i] - target[i]
		sumSq += d * d
	}
	rms := math.Sqrt(sumSq / float64(len(observed)))

	den := stddev(target)
	if den <= 0 {
		den = 1.0
	}

	return clamp(1 - rms/den), nil
}

// #endregion nrci

// #region helpers

// stddev is the population standard deviation.
func stddev(v []float64) float64 {
	var mean float64
	for _, x := range v {
		mean += x
	}
	mean /= float64(len(v))

	var sumSq float64
	for _, x := range v {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(v)))
}

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// #endregion helpers
