package lattice

import (
	"fmt"
	"math"
)

// #region basis
// basisVectors are the four directions of an A2 lattice cell, keyed by the
// decoded bit-pair value. The third and fourth carry a √3/2 vertical
// component, the 60° lattice angle.
var basisVectors = [4][2]float64{
	{0.0, 0.0},
	{1.0, 0.0},
	{0.5, math.Sqrt(3) / 2},
	{-0.5, math.Sqrt(3) / 2},
}

// Scale is the coordinate magnitude bound shared by both mapping
// strategies: a maximal input lands near magnitude Scale on each axis.
const Scale = 5.0

// #endregion basis

// #region mapper
// Mapper converts an OffBit into a lattice coordinate.
type Mapper interface {
	Map(off OffBit) (Coordinate, error)
	Width() int
}

// #endregion mapper

// #region vector-mapper

// VectorMapper is the canonical 32-bit vector-lattice strategy used by the
// correction pipeline. The input is right-padded with zeros (or truncated)
// to 32 bits, decoded as 16 bit-pairs into basis-vector indices, and the
// basis vectors are summed and scaled so an all-one input lands near
// magnitude Scale.
type VectorMapper struct{}

// Width returns the canonical bit width.
func (VectorMapper) Width() int { return 32 }

// Map never fails on length: padding absorbs short inputs and truncation
// absorbs long ones. It fails only on non-binary elements.
func (VectorMapper) Map(off OffBit) (Coordinate, error) {
	if err := off.Validate(); err != nil {
		return Coordinate{}, err
	}

	padded := make(OffBit, 32)
	copy(padded, off)

	var x, y float64
	for i := 0; i < 32; i += 2 {
		v := padded[i]*2 + padded[i+1]
		x += basisVectors[v][0]
		y += basisVectors[v][1]
	}

	// 16 pairs contribute at most magnitude 8 per axis direction.
	const scale = Scale / 8.0
	return Coordinate{X: x * scale, Y: y * scale}, nil
}

// #endregion vector-mapper

// #region linear-mapper

// LinearMapper is the legacy 24-bit linear-scaling strategy. It is not
// wired into the correction pipeline; the vector-lattice strategy
// superseded it. Kept as an alternate, uncoupled mapping.
type LinearMapper struct{}

// Width returns the legacy bit width.
func (LinearMapper) Width() int { return 24 }

// Map requires exactly 24 binary elements: the first 12 bits drive the X
// axis, the last 12 the Y axis. Each axis sums its 6 bit-pair values
// (0-18) and rescales linearly to [-Scale, Scale].
func (m LinearMapper) Map(off OffBit) (Coordinate, error) {
	if len(off) != m.Width() {
		return Coordinate{}, &ShapeError{
			Reason: fmt.Sprintf("want %d bits, got %d", m.Width(), len(off)),
			Index:  -1,
		}
	}
	if err := off.Validate(); err != nil {
		return Coordinate{}, err
	}

	return Coordinate{
		X: linearAxis(off[:12]),
		Y: linearAxis(off[12:]),
	}, nil
}

// linearAxis decodes 6 consecutive bit-pairs, sums the decoded values,
// and rescales the sum from [0, 18] to [-Scale, Scale].
func linearAxis(bits OffBit) float64 {
	sum := 0
	for i := 0; i < len(bits); i += 2 {
		sum += int(bits[i])*2 + int(bits[i+1])
	}
	const maxSum = 18.0
	return -Scale + 2*Scale*float64(sum)/maxSum
}

// #endregion linear-mapper
