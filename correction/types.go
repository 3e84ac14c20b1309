package correction

import (
	"math/rand"
	"time"

	"github.com/ubpkit/a2-correction/go-correction/feedback"
	"github.com/ubpkit/a2-correction/go-correction/geometry"
	"github.com/ubpkit/a2-correction/go-correction/glr"
	"github.com/ubpkit/a2-correction/go-correction/lattice"
	"github.com/ubpkit/a2-correction/go-correction/resonance"
)

// #region recommendation

// Recommendation labels the regime the correction run ended in.
type Recommendation string

const (
	// RecommendationEscalated means final coherence stayed below the mid
	// threshold and the GLR layer fired.
	RecommendationEscalated Recommendation = "escalated"
	// RecommendationGeometricModerate means geometric correction is
	// sufficient; no escalation.
	RecommendationGeometricModerate Recommendation = "geometric-moderate"
	// RecommendationGeometricHigh means coherence ended at or above the
	// high threshold; no correction needed.
	RecommendationGeometricHigh Recommendation = "geometric-high"
)

// #endregion recommendation

// #region config

// Config holds everything a correction run needs. Zero-value fields fall
// back to the defaults of DefaultConfig at run time.
type Config struct {
	Realm        string
	Rounds       int
	Thresholds   feedback.Thresholds
	Candidates   []float64 // GLR reference frequencies
	SeriesLength int       // GLR synthetic series replication count
	Mapper       lattice.Mapper
	Table        *geometry.Table
	Rand         *rand.Rand // seed explicitly for reproducible runs
}

// DefaultConfig returns the standard pipeline configuration: the
// electromagnetic realm, two feedback rounds, the canonical vector-lattice
// mapper, the built-in glyph table, and a time-seeded random source.
func DefaultConfig() Config {
	return Config{
		Realm:        "electromagnetic",
		Rounds:       2,
		Thresholds:   feedback.DefaultThresholds(),
		Candidates:   glr.DefaultCandidates(),
		SeriesLength: glr.DefaultSeriesLength,
		Mapper:       lattice.VectorMapper{},
		Table:        geometry.DefaultTable(),
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// #endregion config

// #region result

// Result is the output record of one correction run. It is immutable
// after construction; ownership passes to the caller.
type Result struct {
	RunID          string
	Realm          string
	Coordinate     lattice.Coordinate // Layer is 1 when escalated
	Resonance      resonance.Result
	NRCI           float64
	Recommendation Recommendation
	GLRStatus      string // empty unless escalated
	Details        []string
	History        []feedback.HistoryEntry
}

// #endregion result
