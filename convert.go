package pointwise

import (
	"math"

	"github.com/npillmayer/pointwise/arithm"
	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/pointwise/satellite"
)

// junction returns the segments meeting at the node of e: the segment
// preceding the node and the segment starting at it.
func (pw *Pointwise) junction(e Entry) (in, out bezier.Segment, ok bool) {
	pw.check()
	prev, ok := pw.info.Previous(e.Index)
	if !ok {
		return
	}
	if in, ok = pw.segment(prev); !ok {
		return
	}
	out, ok = pw.segment(e.Index)
	return
}

// RadiusToLength converts a radius into the distance along the curve from
// the node of e to where a circle of that radius, tangent to both segments
// at the node, touches the outgoing segment. The distance is given in the
// unit of e's satellite, i.e. as a curve parameter if IsTime is set.
//
// The circle's center is found by intersecting the offset curves of both
// segments. If they do not intersect, the opposite side of the curve is
// tried once. The result is 0 for nodes without a predecessor or if no
// center exists.
func (pw *Pointwise) RadiusToLength(r float64, e Entry) float64 {
	in, out, ok := pw.junction(e)
	if !ok {
		return 0
	}
	sat := e.Satellite
	if radiusToLength(r, in, out, &sat) {
		return sat.Amount
	}
	if r > 0 && radiusToLength(-r, in, out, &sat) {
		return sat.Amount
	}
	return 0
}

func radiusToLength(r float64, in, out bezier.Segment, sat *satellite.Satellite) bool {
	cs := in.Offset(r).Crossings(out.Offset(r))
	if len(cs) == 0 {
		return false
	}
	sat.SetPosition(out.Nearest(cs[0].Point), out)
	return true
}

// LengthToRadius converts a distance along the curve from the node of e into
// the radius of the circle touching both segments at that distance from the
// node. The distance is read in the unit of e's satellite. The result is 0
// for nodes without a predecessor or if the segments are (anti)parallel at
// the touching points.
func (pw *Pointwise) LengthToRadius(l float64, e Entry) float64 {
	in, out, ok := pw.junction(e)
	if !ok {
		return 0
	}
	sat := e.Satellite
	sat.Amount = l
	timeIn := sat.OppositeTime(in)
	timeOut := sat.Time(out)
	start, end := in.Eval(timeIn), out.Eval(timeOut)
	ray1 := arithm.RayThrough(start, in.End())
	if knot, isCubic := in.Subsegment(0, timeIn).Cubic(); isCubic {
		ray1 = arithm.RayThrough(knot[2], start)
	}
	ray2 := arithm.RayThrough(out.Start(), end)
	if knot, isCubic := out.Subsegment(timeOut, 1).Cubic(); isCubic {
		ray2 = arithm.RayThrough(end, knot[1])
	}
	ccw := (in.End() - start).Cross(end-start) < 0
	distance := start.Distance(start.Midpoint(end))
	angle := arithm.AngleBetween(ray1, ray2, ccw)
	if div := math.Sin(angle / 2); div > 0 {
		return distance / div
	}
	return 0
}
