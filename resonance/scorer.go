// Package resonance scores the agreement between two symbolic geometric
// patterns. Segments present in both collections count positively; with a
// target collection supplied, segments of the combined result absent from
// the target count negatively.
package resonance

import "github.com/ubpkit/a2-correction/go-correction/geometry"

// #region result
// Result bundles a resonance score with its segment counts.
type Result struct {
	Score      float64
	Matched    int
	Mismatched int
	Total      int // union size
}

// #endregion result

// #region add
// Add merges two segment collections ("geometric addition"). It returns
// the normalized union, the number of coincident segments, and the union
// size.
func Add(a, b []geometry.Segment) (union []geometry.Segment, coincident, total int) {
	setA := geometry.Set(a)
	setB := geometry.Set(b)

	union = make([]geometry.Segment, 0, len(setA)+len(setB))
	for seg := range setA {
		union = append(union, seg)
		if _, ok := setB[seg]; ok {
			coincident++
		}
	}
	for seg := range setB {
		if _, ok := setA[seg]; !ok {
			union = append(union, seg)
		}
	}
	return union, coincident, len(union)
}

// #endregion add

// #region score

// Score compares two symbol segment collections. With a non-empty target,
// the score is signed: (matched − mismatched) / |target|, where matched
// counts union segments present in the target and mismatched those absent
// from it. With no target, the score is the unsigned coincidence ratio
// coincident / |union|, 0 when the union is empty.
func Score(a, b, target []geometry.Segment) Result {
	union, coincident, total := Add(a, b)

	if len(target) == 0 {
		score := 0.0
		if total > 0 {
			score = float64(coincident) / float64(total)
		}
		return Result{
			Score:      score,
			Matched:    coincident,
			Mismatched: total - coincident,
			Total:      total,
		}
	}

	targetSet := geometry.Set(target)
	matched, mismatched := 0, 0
	for _, seg := range union {
		if _, ok := targetSet[seg]; ok {
			matched++
		} else {
			mismatched++
		}
	}

	return Result{
		Score:      float64(matched-mismatched) / float64(len(targetSet)),
		Matched:    matched,
		Mismatched: mismatched,
		Total:      total,
	}
}

// #endregion score
