package satellite

import (
	"errors"
	"testing"

	"github.com/npillmayer/pointwise/arithm"
	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeCodes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, typ := range []Type{Fillet, InverseFillet, Chamfer, InverseChamfer, BSpline} {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
		parsed, err = ParseType(typ.Name())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	assert.Equal(t, "IC", InverseChamfer.String())
	typ, err := ParseType(" bs ")
	assert.NoError(t, err)
	assert.Equal(t, BSpline, typ)
	_, err = ParseType("spiral")
	assert.True(t, errors.Is(err, ErrUnknownSatelliteType))
	assert.Equal(t, "Type(9)", Type(9).String())
}

func TestSizeAndTimeOnLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := bezier.Line(arithm.P(0, 0), arithm.P(10, 0))
	assert.InDelta(t, 2.5, ToSize(0.25, l), 1e-12)
	assert.InDelta(t, 0.25, ToTime(2.5, l), 1e-12)
	assert.InDelta(t, 0.75, OppositeTime(2.5, l), 1e-12)
	assert.Equal(t, 1.0, OppositeTime(0, l))
	assert.Equal(t, 0.0, ToTime(0, l))
	assert.Equal(t, 0.0, ToSize(0, l))
	assert.Equal(t, 1.0, ToTime(20, l), "clamped to the end of the segment")
}

func TestDegenerateSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dot := bezier.Line(arithm.P(3, 3), arithm.P(3, 3))
	assert.Equal(t, 0.0, ToSize(0.5, dot))
	assert.Equal(t, 0.0, ToTime(1, dot))
}

func TestTimeSizeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := bezier.Cubic(arithm.P(0, 0), arithm.P(0, 10), arithm.P(10, 20), arithm.P(20, 0))
	for _, tm := range []float64{0.1, 0.33, 0.5, 0.9} {
		assert.InDelta(t, tm, ToTime(ToSize(tm, c), c), 1e-6)
	}
}

func TestSatelliteUnits(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := bezier.Line(arithm.P(0, 0), arithm.P(0, 8))
	sat := New(Fillet)
	assert.True(t, sat.Active)
	sat.Amount = 2
	assert.InDelta(t, 0.25, sat.Time(l), 1e-12)
	assert.InDelta(t, 2.0, sat.ArcDistance(l), 1e-12)
	assert.InDelta(t, 0.75, sat.OppositeTime(l), 1e-12)
	sat.IsTime = true
	sat.Amount = 0.5
	assert.InDelta(t, 0.5, sat.Time(l), 1e-12)
	assert.InDelta(t, 4.0, sat.ArcDistance(l), 1e-12)
	sat.Amount = 1.5
	assert.Equal(t, 1.0, sat.Time(l))
	sat.SetPosition(0.25, l)
	assert.Equal(t, 0.25, sat.Amount)
	sat.IsTime = false
	sat.SetPosition(0.25, l)
	assert.InDelta(t, 2.0, sat.Amount, 1e-12)
	t.Logf("satellite = %s", sat)
}
