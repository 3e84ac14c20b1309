// Package feedback drives the fixed-round NRCI correction loop. The
// controller is the only component in the pipeline that mutates an OffBit.
package feedback

import (
	"fmt"
	"math/rand"

	"github.com/ubpkit/a2-correction/go-correction/coherence"
	"github.com/ubpkit/a2-correction/go-correction/lattice"
)

// #region controller

// Controller re-evaluates coherence for a fixed number of rounds,
// optionally mutating the bit vector, and records a per-round history.
type Controller struct {
	mapper     lattice.Mapper
	rounds     int
	thresholds Thresholds
	rng        *rand.Rand
}

// NewController wires a feedback controller. rng is the source for the
// uniformly-random bit index chosen during low-coherence correction; pass
// a seeded source for reproducible runs.
func NewController(mapper lattice.Mapper, rounds int, thresholds Thresholds, rng *rand.Rand) *Controller {
	return &Controller{
		mapper:     mapper,
		rounds:     rounds,
		thresholds: thresholds,
		rng:        rng,
	}
}

// #endregion controller

// #region run

// Run executes exactly the configured number of rounds; there is no early
// exit even once the high-coherence branch is reached, and every round
// appends one history entry. The resonance score is measured once by the
// caller and held fixed across rounds: after a bit flip only the
// coordinate components of the observed vector are refreshed.
//
// off is mutated in place by low-coherence rounds and must be non-empty.
func (c *Controller) Run(
	off lattice.OffBit,
	coord lattice.Coordinate,
	resonance float64,
	nrci float64,
	target []float64,
) (Outcome, error) {
	if len(off) == 0 {
		return Outcome{}, &lattice.ShapeError{Reason: "empty bit vector", Index: -1}
	}

	history := make([]HistoryEntry, 0, c.rounds)
	details := make([]string, 0, c.rounds)

	for round := 1; round <= c.rounds; round++ {
		switch {
		case nrci < c.thresholds.Low:
			idx := c.rng.Intn(len(off))
			off.Flip(idx)

			remapped, err := c.mapper.Map(off)
			if err != nil {
				return Outcome{}, fmt.Errorf("remap after flip: %w", err)
			}
			coord = remapped

			observed := []float64{resonance, coord.X / lattice.Scale, coord.Y / lattice.Scale}
			next, err := coherence.NRCI(observed, target)
			if err != nil {
				return Outcome{}, fmt.Errorf("recompute coherence: %w", err)
			}
			nrci = next

			details = append(details, fmt.Sprintf("round %d: NRCI low, bit %d flipped, new NRCI=%.6f", round, idx, nrci))
		case nrci < c.thresholds.High:
			details = append(details, fmt.Sprintf("round %d: NRCI moderate (%.6f), geometric correction sufficient", round, nrci))
		default:
			details = append(details, fmt.Sprintf("round %d: NRCI high (%.6f), no correction needed", round, nrci))
		}

		history = append(history, HistoryEntry{Round: round, Coordinate: coord, NRCI: nrci})
	}

	return Outcome{
		Coordinate: coord,
		NRCI:       nrci,
		History:    history,
		Details:    details,
	}, nil
}

// #endregion run
