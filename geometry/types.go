package geometry

// #region segment
// Segment is an unordered pair of named vertices. Two segments are equal
// regardless of endpoint order once normalized: {A,B} == {B,A}.
type Segment struct {
	A string
	B string
}

// Normalize returns the segment with its endpoints in lexical order, so
// normalized segments can be used directly as set keys.
func (s Segment) Normalize() Segment {
	if s.B < s.A {
		s.A, s.B = s.B, s.A
	}
	return s
}

// #endregion segment

// #region set
// Set builds a normalized segment set from a collection.
func Set(segs []Segment) map[Segment]struct{} {
	set := make(map[Segment]struct{}, len(segs))
	for _, seg := range segs {
		set[seg.Normalize()] = struct{}{}
	}
	return set
}

// #endregion set
