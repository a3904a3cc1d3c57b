package pointwise

import (
	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/pointwise/pathinfo"
	"github.com/npillmayer/pointwise/satellite"
)

// BSplineWeight is the amount of a B-spline satellite on a cubic segment.
const BSplineWeight = 1.0 / 3.0

// MinSegmentLength is the control polygon length below which a segment is
// dropped from an edited curve before satellites are attached to it.
const MinSegmentLength = 0.01

// CurveOf flattens a vector of paths into the curve an engine works on,
// without segments shorter than MinSegmentLength.
func CurveOf(v bezier.Vector) bezier.Piecewise {
	return v.Piecewise().RemoveShortCuts(MinSegmentLength)
}

// Generate creates an engine for a vector of paths with one satellite per
// segment of CurveOf(v), copied from proto. The first node of an open
// subpath has no predecessor and its satellite is inactive.
//
// B-spline satellites get their amount from the segment: BSplineWeight for
// a curved segment with a proper first handle, 0 otherwise. Quadratic
// segments are judged by their cubic form.
func Generate(v bezier.Vector, proto satellite.Satellite) *Pointwise {
	curve := CurveOf(v)
	var entries []Entry
	index := 0
	for _, p := range curve.Paths(pathinfo.PathTolerance) {
		if p.Empty() {
			continue
		}
		n := p.Count(pathinfo.ClosingTolerance)
		for k := 0; k < n; k++ {
			sat := proto
			sat.IsEndOpen = false
			sat.Active = proto.Active && (k > 0 || p.Closed)
			if proto.Type == satellite.BSpline {
				sat.Amount = bsplineWeight(curve[index])
			}
			entries = append(entries, Entry{Index: index, Satellite: sat})
			index++
		}
	}
	tracer().Debugf("pointwise: generated %d satellite(s) of type %s", len(entries), proto.Type)
	return New(curve, entries)
}

func bsplineWeight(seg bezier.Segment) float64 {
	pts, ok := seg.Cubic()
	if !ok || pts[0].Near(pts[1], bezier.DefaultTolerance) {
		return 0
	}
	return BSplineWeight
}
