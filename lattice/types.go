package lattice

import "fmt"

// #region offbit
// OffBit is a fixed-width binary feature vector. Every element is 0 or 1.
// An OffBit is mutated in place only by the feedback loop (single-bit
// flips); all other components treat it as read-only.
type OffBit []byte

// Validate checks that every element is binary.
func (o OffBit) Validate() error {
	for i, b := range o {
		if b > 1 {
			return &ShapeError{Reason: fmt.Sprintf("value %d is not binary", b), Index: i}
		}
	}
	return nil
}

// Clone returns an independent copy.
func (o OffBit) Clone() OffBit {
	c := make(OffBit, len(o))
	copy(c, o)
	return c
}

// Flip toggles the bit at index i.
func (o OffBit) Flip(i int) {
	o[i] ^= 1
}

// #endregion offbit

// #region coordinate
// Coordinate is a point on the 2D lattice. Layer stays 0 until the GLR
// escalation layer fires, which tags the coordinate with layer 1.
type Coordinate struct {
	X     float64
	Y     float64
	Layer int
}

// #endregion coordinate

// #region shape-error
// ShapeError reports an input that is not a fixed-length binary sequence.
type ShapeError struct {
	Reason string
	Index  int // offending element index, -1 when the whole vector is wrong
}

func (e *ShapeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("offbit: %s at index %d", e.Reason, e.Index)
	}
	return "offbit: " + e.Reason
}

// #endregion shape-error
