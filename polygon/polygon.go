/*
Package polygon implements polylines, i.e. flattened paths.

Curves are flattened to polylines whenever a numeric answer is easier to find
on straight lines than on the curve itself, most notably for intersecting
offset curves. Polylines are backed by polyclip contours; edges are
intersected with package curve.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pointwise/arithm"
	"github.com/npillmayer/schuko/tracing"
	"honnef.co/go/curve"
)

// L traces with key 'graphics'.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is an open sequence of knots connected by straight lines.
type Polygon struct {
	contour polyclip.Contour
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPairs creates an open polygon (polyline) from a list of points.
func FromPairs(pts []arithm.Pair) *Polygon {
	pg := NullPolygon()
	pg.contour = make(polyclip.Contour, 0, len(pts))
	for _, pt := range pts {
		pg.Knot(pt)
	}
	return pg
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(pt arithm.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: pt.X(), Y: pt.Y()})
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Edges returns the number of straight edges.
func (pg *Polygon) Edges() int {
	return max(pg.N()-1, 0)
}

// Z returns knot i (mod N).
func (pg *Polygon) Z(i int) arithm.Pair {
	n := pg.N()
	i = ((i % n) + n) % n
	pt := pg.contour[i]
	return arithm.P(pt.X, pt.Y)
}

// At returns the point at parameter t ∈ [0,1], where every edge spans an
// equal part of the parameter range.
func (pg *Polygon) At(t float64) arithm.Pair {
	m := pg.Edges()
	if m == 0 {
		if pg.N() == 0 {
			return arithm.Origin
		}
		return pg.Z(0)
	}
	t = clamp01(t) * float64(m)
	i := int(t)
	if i >= m {
		i = m - 1
	}
	return pg.Z(i).Lerp(pg.Z(i+1), t-float64(i))
}

// BoundingBox returns the axis-parallel bounding box of all knots.
func (pg *Polygon) BoundingBox() polyclip.Rectangle {
	return pg.contour.BoundingBox()
}

// Crossing is an intersection of two polygons. Ta and Tb are the parameters
// of the intersection point on the first and second polygon, see At().
type Crossing struct {
	Ta, Tb float64
	Point  arithm.Pair
}

// Crossings finds all intersections between the edges of two polygons,
// ordered by their parameter on pg.
func (pg *Polygon) Crossings(other *Polygon) []Crossing {
	ma, mb := pg.Edges(), other.Edges()
	if ma == 0 || mb == 0 {
		return nil
	}
	if !pg.BoundingBox().Overlaps(other.BoundingBox()) {
		return nil
	}
	var cs []Crossing
	for i := 0; i < ma; i++ {
		a0, a1 := pg.Z(i), pg.Z(i+1)
		ea := edgeBox(a0, a1)
		for j := 0; j < mb; j++ {
			b0, b1 := other.Z(j), other.Z(j+1)
			if !ea.Overlaps(edgeBox(b0, b1)) {
				continue
			}
			ta, tb, ok := intersectEdges(a0, a1, b0, b1)
			if !ok {
				continue
			}
			c := Crossing{
				Ta:    (float64(i) + ta) / float64(ma),
				Tb:    (float64(j) + tb) / float64(mb),
				Point: a0.Lerp(a1, ta),
			}
			if n := len(cs); n > 0 && cs[n-1].Point.Near(c.Point, arithm.Epsilon) {
				continue // edge junction hit twice
			}
			cs = append(cs, c)
		}
	}
	sortCrossings(cs)
	L().Debugf("found %d crossing(s) between polygons", len(cs))
	return cs
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		pt := pg.Z(i)
		fmt.Fprintf(&b, "(%.4g,%.4g)", pt.X(), pt.Y())
	}
	return b.String()
}

func edgeBox(p, q arithm.Pair) polyclip.Rectangle {
	c := polyclip.Contour{{X: p.X(), Y: p.Y()}, {X: q.X(), Y: q.Y()}}
	return c.BoundingBox()
}

// intersectEdges intersects line segments a0–a1 and b0–b1. Parallel segments
// do not intersect.
func intersectEdges(a0, a1, b0, b1 arithm.Pair) (float64, float64, bool) {
	a := curve.Line{P0: a0.Pt(), P1: a1.Pt()}
	hits, n := a.IntersectLine(curve.Line{P0: b0.Pt(), P1: b1.Pt()})
	if n == 0 {
		return 0, 0, false
	}
	return clamp01(hits[0].SegmentT), hits[0].LineT, true
}

func sortCrossings(cs []Crossing) {
	slices.SortStableFunc(cs, func(a, b Crossing) int {
		return cmp.Compare(a.Ta, b.Ta)
	})
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
