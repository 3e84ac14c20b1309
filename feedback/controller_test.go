package feedback

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/ubpkit/a2-correction/go-correction/lattice"
)

var defaultTarget = []float64{1.0, 0.0, 0.0}

// helper: controller with seeded RNG.
func seededController(rounds int, seed int64) *Controller {
	return NewController(lattice.VectorMapper{}, rounds, DefaultThresholds(), rand.New(rand.NewSource(seed)))
}

func TestRunAlwaysProducesExactlyNHistoryEntries(t *testing.T) {
	for _, rounds := range []int{1, 2, 5} {
		for _, nrci := range []float64{0.0, 0.5, 1.0} { // one per branch
			off := make(lattice.OffBit, 32)
			c := seededController(rounds, 42)
			out, err := c.Run(off, lattice.Coordinate{}, 1.0, nrci, defaultTarget)
			if err != nil {
				t.Fatalf("rounds=%d nrci=%v: unexpected error: %v", rounds, nrci, err)
			}
			if len(out.History) != rounds {
				t.Errorf("rounds=%d nrci=%v: expected %d history entries, got %d", rounds, nrci, rounds, len(out.History))
			}
			if len(out.Details) != rounds {
				t.Errorf("rounds=%d nrci=%v: expected %d detail lines, got %d", rounds, nrci, rounds, len(out.Details))
			}
		}
	}
}

func TestRunHighBranchNeverMutates(t *testing.T) {
	off := make(lattice.OffBit, 32)
	before := off.Clone()
	c := seededController(3, 1)

	out, err := c.Run(off, lattice.Coordinate{X: 1, Y: 2}, 1.0, 0.9999, defaultTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(off, before) {
		t.Error("high-coherence branch mutated the bit vector")
	}
	if out.Coordinate != (lattice.Coordinate{X: 1, Y: 2}) {
		t.Errorf("high-coherence branch moved the coordinate: %v", out.Coordinate)
	}
	for _, line := range out.Details {
		if !strings.Contains(line, "no correction needed") {
			t.Errorf("expected high-branch detail, got %q", line)
		}
	}
}

func TestRunModerateBranchNeverMutates(t *testing.T) {
	off := make(lattice.OffBit, 32)
	before := off.Clone()
	c := seededController(2, 1)

	out, err := c.Run(off, lattice.Coordinate{}, 1.0, 0.5, defaultTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(off, before) {
		t.Error("moderate branch mutated the bit vector")
	}
	for _, line := range out.Details {
		if !strings.Contains(line, "geometric correction sufficient") {
			t.Errorf("expected moderate-branch detail, got %q", line)
		}
	}
}

func TestRunLowBranchFlipsOneBitPerRound(t *testing.T) {
	off := make(lattice.OffBit, 32)
	c := seededController(1, 7)

	out, err := c.Run(off, lattice.Coordinate{}, 0.0, 0.1, defaultTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flipped := 0
	for _, b := range off {
		if b == 1 {
			flipped++
		}
	}
	if flipped != 1 {
		t.Errorf("expected exactly one flipped bit after one low round, got %d", flipped)
	}
	if !strings.Contains(out.Details[0], "bit") || !strings.Contains(out.Details[0], "flipped") {
		t.Errorf("expected flip detail, got %q", out.Details[0])
	}
}

func TestRunLowBranchRefreshesCoordinateNotResonance(t *testing.T) {
	// Resonance stays pinned at its initial value inside the observed
	// vector; only the coordinate components move with the remap.
	off := make(lattice.OffBit, 32)
	c := seededController(1, 7)

	out, err := c.Run(off, lattice.Coordinate{}, 0.0, 0.1, defaultTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recompute what the controller should have observed.
	coord, err := lattice.VectorMapper{}.Map(off)
	if err != nil {
		t.Fatalf("remap: %v", err)
	}
	if out.Coordinate != coord {
		t.Errorf("outcome coordinate %v does not match remap of mutated bits %v", out.Coordinate, coord)
	}
	if out.History[0].Coordinate != coord {
		t.Errorf("history coordinate %v does not match remap %v", out.History[0].Coordinate, coord)
	}
}

func TestRunDeterministicUnderFixedSeed(t *testing.T) {
	run := func() (Outcome, lattice.OffBit) {
		off := make(lattice.OffBit, 32)
		c := seededController(4, 99)
		out, err := c.Run(off, lattice.Coordinate{}, 0.0, 0.0, defaultTarget)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return out, off
	}

	outA, offA := run()
	outB, offB := run()
	if !reflect.DeepEqual(outA, outB) {
		t.Errorf("outcomes differ under fixed seed:\n%+v\n%+v", outA, outB)
	}
	if !reflect.DeepEqual(offA, offB) {
		t.Errorf("mutated bit vectors differ under fixed seed: %v vs %v", offA, offB)
	}
}

func TestRunEmptyOffBit(t *testing.T) {
	c := seededController(2, 1)
	if _, err := c.Run(nil, lattice.Coordinate{}, 0, 0, defaultTarget); err == nil {
		t.Fatal("expected error for empty bit vector")
	}
}
