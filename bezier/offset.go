package bezier

import (
	"github.com/npillmayer/pointwise/arithm"
	"github.com/npillmayer/pointwise/polygon"
	"honnef.co/go/curve"
)

// OffsetSamples is the number of polygon edges an offset curve is flattened to.
var OffsetSamples = 64

// offsetDimension is the feature size below which a cubic may be perturbed
// to keep its offset curve well defined.
const offsetDimension = 1e-6

// Offset returns the curve parallel to s at signed distance d, flattened to a
// polyline. Positive distances offset along the tangent rotated by +90°.
// Offsetting a straight segment yields a straight polyline of one edge.
func (s Segment) Offset(d float64) *polygon.Polygon {
	if s.Kind == LineKind {
		dir, _ := s.Tangents()
		n := dir.Unit().Rot90().Scaled(d)
		return polygon.FromPairs([]arithm.Pair{s.P[0] + n, s.P[1] + n})
	}
	co := curve.NewCubicOffset(s.seg().Cubic(), d, offsetDimension)
	pts := make([]arithm.Pair, 0, OffsetSamples+1)
	for i := 0; i <= OffsetSamples; i++ {
		t := float64(i) / float64(OffsetSamples)
		pts = append(pts, arithm.FromPoint(co.Eval(t)))
	}
	return polygon.FromPairs(pts)
}
