package bezier

import (
	"errors"
	"testing"

	"github.com/npillmayer/pointwise/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func square(x, y, size float64) *Builder {
	return Nullpath().MoveTo(arithm.P(x, y)).LineTo(arithm.P(x+size, y)).
		LineTo(arithm.P(x+size, y+size)).LineTo(arithm.P(x, y+size))
}

func TestBuilderClosedAndOpen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := square(0, 0, 10).Close().MoveTo(arithm.P(20, 0)).LineTo(arithm.P(30, 0))
	v := b.Vector()
	require.Len(t, v, 2)
	assert.True(t, v[0].Closed)
	assert.Len(t, v[0].Segments, 3)
	assert.False(t, v[1].Closed)
	assert.Equal(t, 4, v[0].Count(DefaultTolerance), "closing line counts as a segment")
	assert.Equal(t, 1, v[1].Count(DefaultTolerance))
	t.Logf("paths =\n%s", AsString(v))
}

func TestBuilderPanicsOnEmptyPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { Nullpath().LineTo(arithm.P(1, 1)) })
	mustPanic(t, func() { Nullpath().CurveTo(arithm.P(1, 1), arithm.P(2, 2), arithm.P(3, 3)) })
	mustPanic(t, func() { Nullpath().MoveTo(arithm.P(1, 1)).Close() })
}

func TestPiecewiseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := square(0, 0, 10).Close().MoveTo(arithm.P(20, 0)).LineTo(arithm.P(30, 0)).Vector()
	pw := v.Piecewise()
	require.Len(t, pw, 5)
	paths := pw.Paths(DefaultTolerance)
	require.Len(t, paths, 2)
	assert.True(t, paths[0].Closed)
	assert.Len(t, paths[0].Segments, 4)
	assert.Equal(t, 4, paths[0].Count(DefaultTolerance), "degenerate closing segment is skipped")
	assert.True(t, paths[0].ClosingSegment().IsDegenerate(DefaultTolerance))
	assert.False(t, paths[1].Closed)
}

func TestExplicitlyClosedPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := square(0, 0, 10).LineTo(arithm.P(0, 0)).Close().Vector()
	require.Len(t, v, 1)
	assert.Equal(t, 4, v[0].Count(DefaultTolerance))
	assert.Len(t, v.Piecewise(), 4, "no closing line for a path returning to its start")
}

func TestRemoveShortCuts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pw := Piecewise{
		Line(arithm.P(0, 0), arithm.P(10, 0)),
		Line(arithm.P(10, 0), arithm.P(10.01, 0)),
		Line(arithm.P(10.01, 0), arithm.P(20, 0)),
		Line(arithm.P(20, 0), arithm.P(20.01, 0)),
	}
	r := pw.RemoveShortCuts(0.1)
	assert.Len(t, r, 3, "last segment is always kept")
	assert.Len(t, Piecewise(nil).RemoveShortCuts(0.1), 0)
}

func TestParsePathData(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v, err := ParsePathData("M 0 0 L 10 0 L 10 10 Z")
	require.NoError(t, err)
	require.Len(t, v, 1)
	assert.True(t, v[0].Closed)
	assert.Len(t, v.Piecewise(), 3)

	v, err = ParsePathData("m 0,0 h 10 v 10 h -10 z m 20 0 l 5 5 5 -5")
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.Len(t, v[0].Segments, 3)
	assert.False(t, v[1].Closed)
	require.Len(t, v[1].Segments, 2, "implicit lineto after moveto")
	assert.True(t, v[1].Segments[0].Start().Equal(arithm.P(20, 0)))
	assert.True(t, v[1].Segments[1].End().Equal(arithm.P(30, 0)))

	v, err = ParsePathData("M1e1 0 C 10,10 20,10 20,0 S 30,-10 30,0 Q 35 5 40 0 T 50 0")
	require.NoError(t, err)
	segs := v[0].Segments
	require.Len(t, segs, 4)
	assert.True(t, segs[0].Start().Equal(arithm.P(10, 0)))
	assert.True(t, segs[1].P[1].Equal(arithm.P(20, -10)), "reflected control point, is %v", segs[1].P[1])
	assert.Equal(t, QuadKind, segs[3].Kind)
	assert.True(t, segs[3].P[1].Equal(arithm.P(45, -5)))
}

func TestParsePathDataErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ParsePathData("L 1 2")
	assert.True(t, errors.Is(err, ErrEmptyPath), "got %v", err)
	_, err = ParsePathData("M 0 0 L x")
	assert.True(t, errors.Is(err, ErrPathSyntax), "got %v", err)
	_, err = ParsePathData("M 0 0 A 1 1 0 0 1 2 2")
	assert.True(t, errors.Is(err, ErrPathSyntax), "got %v", err)
	_, err = ParsePathData("10 10")
	assert.True(t, errors.Is(err, ErrPathSyntax), "got %v", err)
	v, err := ParsePathData("")
	assert.NoError(t, err)
	assert.Empty(t, v)
}

func TestPathDataString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := "M 0 0 L 10 0 C 15 0 15 10 10 10 Q 5 15 0 10 Z M 20 0 L 30 0"
	v := MustParsePathData(d)
	assert.Equal(t, d, PathDataString(v))
}
