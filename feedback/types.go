package feedback

import "github.com/ubpkit/a2-correction/go-correction/lattice"

// #region thresholds
// Thresholds partitions the NRCI range into correction regimes.
type Thresholds struct {
	Low  float64 // below: flip a random bit and remap
	Mid  float64 // below (after the loop): escalate to GLR
	High float64 // below: geometric correction sufficient, no mutation
}

// DefaultThresholds returns the standard regime boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 0.2, Mid: 0.5, High: 0.9997}
}

// #endregion thresholds

// #region history-entry
// HistoryEntry snapshots one feedback round. The history is append-only
// and lives only for the duration of one correction run.
type HistoryEntry struct {
	Round      int
	Coordinate lattice.Coordinate
	NRCI       float64
}

// #endregion history-entry

// #region outcome
// Outcome bundles everything the feedback loop produced.
type Outcome struct {
	Coordinate lattice.Coordinate
	NRCI       float64
	History    []HistoryEntry
	Details    []string
}

// #endregion outcome
