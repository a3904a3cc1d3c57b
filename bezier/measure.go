package bezier

import (
	"github.com/npillmayer/pointwise/arithm"
)

// Arclen returns the arc length of a segment.
func (s Segment) Arclen() float64 {
	return s.seg().Arclen(Accuracy)
}

// ArclenRange returns the arc length of a segment between parameters t0 and
// t1, t0 ≤ t1.
func (s Segment) ArclenRange(t0, t1 float64) float64 {
	if t1 <= t0 {
		return 0
	}
	return s.seg().Subsegment(t0, t1).Arclen(Accuracy)
}

// TimeAtLength returns the parameter t where the arc length from the start of
// the segment equals l. The result is clamped to [0,1].
func (s Segment) TimeAtLength(l float64) float64 {
	if l <= 0 {
		return 0
	}
	seg := s.seg()
	if l >= seg.Arclen(Accuracy) {
		return 1
	}
	return clamp01(seg.SolveForArclen(l, Accuracy))
}

// Nearest returns the parameter of the point on s closest to pt.
func (s Segment) Nearest(pt arithm.Pair) float64 {
	_, t := s.seg().Nearest(pt.Pt(), Accuracy)
	return clamp01(t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
