// Package correction sequences the full pipeline: lattice mapping,
// resonance scoring, coherence evaluation, the feedback loop, and the GLR
// escalation decision.
package correction

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ubpkit/a2-correction/go-correction/coherence"
	"github.com/ubpkit/a2-correction/go-correction/feedback"
	"github.com/ubpkit/a2-correction/go-correction/geometry"
	"github.com/ubpkit/a2-correction/go-correction/glr"
	"github.com/ubpkit/a2-correction/go-correction/lattice"
	"github.com/ubpkit/a2-correction/go-correction/resonance"
)

// #region target

// coherenceTarget is the target value vector for every run: perfect
// resonance at index 0 and the lattice origin in the coordinate slots.
func coherenceTarget() []float64 {
	return []float64{1.0, 0.0, 0.0}
}

// #endregion target

// #region run

// Run executes the correction pipeline for one OffBit. symbolB serves as
// both the comparison operand and the resonance target (a self-consistency
// check against symbol B). The input OffBit is mutated in place by
// low-coherence feedback rounds; pass off.Clone() to keep the original.
//
// Run fails only on invalid shapes: a non-binary or empty bit vector, or a
// symbol that does not resolve in the geometry table.
func Run(off lattice.OffBit, symbolA, symbolB string, cfg Config) (*Result, error) {
	if len(off) == 0 {
		return nil, &lattice.ShapeError{Reason: "empty bit vector", Index: -1}
	}
	if err := off.Validate(); err != nil {
		return nil, err
	}
	cfg = withDefaults(cfg)

	if err := cfg.Table.Resolve(symbolA, symbolB); err != nil {
		return nil, err
	}
	segsA, _ := cfg.Table.Segments(symbolA)
	segsB, _ := cfg.Table.Segments(symbolB)

	coord, err := cfg.Mapper.Map(off)
	if err != nil {
		return nil, fmt.Errorf("initial mapping: %w", err)
	}

	// Scored once; the feedback loop holds this value fixed.
	res := resonance.Score(segsA, segsB, segsB)

	target := coherenceTarget()
	observed := []float64{res.Score, coord.X / lattice.Scale, coord.Y / lattice.Scale}
	nrci, err := coherence.NRCI(observed, target)
	if err != nil {
		return nil, fmt.Errorf("initial coherence: %w", err)
	}

	ctrl := feedback.NewController(cfg.Mapper, cfg.Rounds, cfg.Thresholds, cfg.Rand)
	outcome, err := ctrl.Run(off, coord, res.Score, nrci, target)
	if err != nil {
		return nil, fmt.Errorf("feedback loop: %w", err)
	}

	result := &Result{
		RunID:      uuid.New().String(),
		Realm:      cfg.Realm,
		Coordinate: outcome.Coordinate,
		Resonance:  res,
		NRCI:       outcome.NRCI,
		Details:    outcome.Details,
		History:    outcome.History,
	}

	switch {
	case outcome.NRCI < cfg.Thresholds.Mid:
		corr, err := glr.Correct(outcome.NRCI, cfg.Candidates, cfg.SeriesLength)
		if err != nil {
			return nil, fmt.Errorf("glr escalation: %w", err)
		}
		result.Coordinate.Layer = 1
		result.Recommendation = RecommendationEscalated
		result.GLRStatus = corr.Status
		result.Details = append(result.Details,
			fmt.Sprintf("NRCI (%.6f) below escalation threshold: invoked GLR correction", outcome.NRCI))
	case outcome.NRCI < cfg.Thresholds.High:
		result.Recommendation = RecommendationGeometricModerate
		result.Details = append(result.Details,
			fmt.Sprintf("NRCI (%.6f) moderate: geometric correction recommended", outcome.NRCI))
	default:
		result.Recommendation = RecommendationGeometricHigh
		result.Details = append(result.Details,
			fmt.Sprintf("NRCI (%.6f) high: geometric correction sufficient", outcome.NRCI))
	}

	log.Printf("[CORRECT] run=%s realm=%s nrci=%.6f resonance=%.4f → %s",
		result.RunID, result.Realm, result.NRCI, result.Resonance.Score, result.Recommendation)

	return result, nil
}

// #endregion run

// #region defaults

// withDefaults fills zero-value config fields from DefaultConfig so a
// partially populated Config never fails a valid-shape run.
func withDefaults(cfg Config) Config {
	if cfg.Realm == "" {
		cfg.Realm = "electromagnetic"
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = 2
	}
	if cfg.Thresholds == (feedback.Thresholds{}) {
		cfg.Thresholds = feedback.DefaultThresholds()
	}
	if len(cfg.Candidates) == 0 {
		cfg.Candidates = glr.DefaultCandidates()
	}
	if cfg.SeriesLength <= 0 {
		cfg.SeriesLength = glr.DefaultSeriesLength
	}
	if cfg.Mapper == nil {
		cfg.Mapper = lattice.VectorMapper{}
	}
	if cfg.Table == nil {
		cfg.Table = geometry.DefaultTable()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// #endregion defaults
