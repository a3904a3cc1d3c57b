package bezier

import (
	"math"
	"testing"

	"github.com/npillmayer/pointwise/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kappa = 0.5522847498 // cubic approximation of a quarter circle

func quarterCircle() Segment {
	return Cubic(arithm.P(1, 0), arithm.P(1, kappa), arithm.P(kappa, 1), arithm.P(0, 1))
}

func straightCubic() Segment {
	return Cubic(arithm.P(0, 0), arithm.P(1, 0), arithm.P(2, 0), arithm.P(3, 0))
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := quarterCircle()
	assert.True(t, c.Eval(0).Equal(c.Start()))
	assert.True(t, c.Eval(1).Equal(c.End()))
	assert.InDelta(t, 1.0, c.Eval(0.5).Abs(), 1e-3, "midpoint lies on the unit circle")
	q := Quad(arithm.P(0, 0), arithm.P(1, 2), arithm.P(2, 0))
	assert.True(t, q.Eval(0.5).Equal(arithm.P(1, 1)))
	assert.True(t, q.End().Equal(arithm.P(2, 0)))
	l := Line(arithm.P(1, 1), arithm.P(4, 5))
	assert.True(t, l.Eval(0.5).Equal(arithm.P(2.5, 3)))
}

func TestCubicQuery(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, ok := quarterCircle().Cubic()
	assert.True(t, ok)
	assert.True(t, pts[2].Equal(arithm.P(kappa, 1)))
	_, ok = Line(arithm.P(0, 0), arithm.P(1, 0)).Cubic()
	assert.False(t, ok)
	q := Quad(arithm.P(0, 0), arithm.P(3, 3), arithm.P(6, 0))
	pts, ok = q.Cubic()
	require.True(t, ok, "quadratic segments have a cubic form")
	assert.True(t, pts[1].Equal(arithm.P(2, 2)))
	assert.True(t, pts[2].Equal(arithm.P(4, 2)))
	assert.True(t, pts[3].Equal(q.End()))
}

func TestArclen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 5.0, Line(arithm.P(0, 0), arithm.P(3, 4)).Arclen(), 1e-12)
	assert.InDelta(t, 3.0, straightCubic().Arclen(), 1e-6)
	assert.InDelta(t, math.Pi/2, quarterCircle().Arclen(), 2e-3)
	assert.InDelta(t, 1.5, straightCubic().ArclenRange(0.25, 0.75), 1e-6)
	assert.Equal(t, 0.0, straightCubic().ArclenRange(0.5, 0.5))
}

func TestTimeAtLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := straightCubic()
	assert.InDelta(t, 0.5, c.TimeAtLength(1.5), 1e-6)
	assert.Equal(t, 0.0, c.TimeAtLength(-1))
	assert.Equal(t, 1.0, c.TimeAtLength(10))
	q := quarterCircle()
	tm := q.TimeAtLength(0.5)
	assert.InDelta(t, 0.5, q.ArclenRange(0, tm), 1e-5)
	assert.InDelta(t, 0.25, Line(arithm.P(0, 0), arithm.P(4, 0)).TimeAtLength(1), 1e-12)
}

func TestNearest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := quarterCircle()
	assert.InDelta(t, 0.5, q.Nearest(arithm.P(2, 2)), 1e-3)
	assert.InDelta(t, 0.0, q.Nearest(arithm.P(3, -1)), 1e-6)
	l := Line(arithm.P(0, 0), arithm.P(10, 0))
	assert.InDelta(t, 0.3, l.Nearest(arithm.P(3, 7)), 1e-12)
	assert.Equal(t, 1.0, l.Nearest(arithm.P(12, 1)))
}

func TestSubsegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := quarterCircle()
	first := c.Subsegment(0, 0.5)
	assert.True(t, first.End().Near(c.Eval(0.5), 1e-9))
	assert.True(t, first.Eval(0.5).Near(c.Eval(0.25), 1e-9))
	q := Quad(arithm.P(0, 0), arithm.P(1, 2), arithm.P(2, 0))
	second := q.Subsegment(0.5, 1)
	assert.True(t, second.Eval(0.5).Near(q.Eval(0.75), 1e-9))
	assert.Equal(t, LineKind, Line(arithm.P(0, 0), arithm.P(2, 0)).Subsegment(0, 0.5).Kind)
}

func TestTangents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Cubic(arithm.P(0, 0), arithm.P(0, 0), arithm.P(1, 1), arithm.P(2, 0))
	d0, d1 := c.Tangents()
	assert.InDelta(t, math.Sqrt2/2, d0.Unit().X(), 1e-9, "coincident handle falls back to next control point")
	assert.InDelta(t, math.Sqrt2/2, d0.Unit().Y(), 1e-9)
	assert.True(t, d1.Unit().Near(arithm.P(math.Sqrt2/2, -math.Sqrt2/2), 1e-9))
	dot := Cubic(arithm.P(1, 1), arithm.P(1, 1), arithm.P(1, 1), arithm.P(1, 1))
	assert.True(t, dot.IsDegenerate(DefaultTolerance))
}

func TestOffset(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	off := Line(arithm.P(0, 0), arithm.P(10, 0)).Offset(2)
	assert.Equal(t, 1, off.Edges())
	assert.True(t, off.Z(0).Equal(arithm.P(0, 2)))
	assert.True(t, off.Z(1).Equal(arithm.P(10, 2)))
	arc := quarterCircle().Offset(-0.5) // positive offsets of a ccw arc point to its center
	assert.Equal(t, OffsetSamples, arc.Edges())
	assert.InDelta(t, 1.5, arc.At(0.5).Abs(), 2e-3)
	q := Quad(arithm.P(0, 0), arithm.P(5, 0), arithm.P(10, 0)).Offset(-1)
	assert.Equal(t, OffsetSamples, q.Edges())
	assert.True(t, q.At(0.5).Near(arithm.P(5, -1), 1e-9))
}
