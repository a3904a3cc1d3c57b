package bezier

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pointwise/arithm"
)

// Piecewise is a curve made of segments, flattened across subpaths. Index i
// of a Piecewise is the global segment index satellites refer to.
type Piecewise []Segment

// Path is a sequence of connected segments. A closed path connects its final
// point to its initial point, by a synthetic closing line if necessary.
type Path struct {
	Segments []Segment
	Closed   bool
}

// Vector is a list of paths, i.e. a shape consisting of subpaths.
type Vector []Path

// --- Piecewise -------------------------------------------------------------

// RemoveShortCuts drops segments whose control polygon is shorter than tol.
// The last segment is always kept.
func (pw Piecewise) RemoveShortCuts(tol float64) Piecewise {
	if len(pw) == 0 {
		return pw
	}
	r := make(Piecewise, 0, len(pw))
	for i, seg := range pw {
		if seg.ControlLength() >= tol || i == len(pw)-1 {
			r = append(r, seg)
		} else {
			tracer().Debugf("removing short cut #%d: %s", i, seg)
		}
	}
	return r
}

// Paths reconstructs discrete paths from a piecewise curve. A new path starts
// wherever a segment does not start within tol of its predecessor's end.
// Paths returning to their initial point (within tol) are marked closed.
func (pw Piecewise) Paths(tol float64) Vector {
	var v Vector
	var cur *Path
	for _, seg := range pw {
		if cur == nil || !cur.finalPoint().Near(seg.Start(), tol) {
			v = append(v, Path{})
			cur = &v[len(v)-1]
		}
		cur.Segments = append(cur.Segments, seg)
	}
	for i := range v {
		p := &v[i]
		if p.initialPoint().Near(p.finalPoint(), tol) {
			p.Closed = true
		}
	}
	return v
}

// --- Path ------------------------------------------------------------------

// Empty is a predicate: does the path contain no segments?
func (p Path) Empty() bool {
	return len(p.Segments) == 0
}

func (p Path) initialPoint() arithm.Pair {
	return p.Segments[0].Start()
}

func (p Path) finalPoint() arithm.Pair {
	return p.Segments[len(p.Segments)-1].End()
}

// ClosingSegment returns the synthetic line from the final point back to the
// initial point. It is zero-length if the path already returns to its start.
func (p Path) ClosingSegment() Segment {
	if p.Empty() {
		return Line(arithm.Origin, arithm.Origin)
	}
	return Line(p.finalPoint(), p.initialPoint())
}

// Count returns the number of segments of a path, including the closing
// segment of a closed path unless it is degenerate (shorter than tol).
func (p Path) Count(tol float64) int {
	n := len(p.Segments)
	if p.Closed && !p.Empty() {
		closing := p.ClosingSegment()
		if !closing.Start().Near(closing.End(), tol) {
			n++
		}
	}
	return n
}

// --- Vector ----------------------------------------------------------------

// Piecewise flattens a vector of paths into a piecewise curve. Closing
// segments of closed paths are inserted unless they are degenerate.
func (v Vector) Piecewise() Piecewise {
	var pw Piecewise
	for _, p := range v {
		pw = append(pw, p.Segments...)
		if p.Closed && p.Count(DefaultTolerance) > len(p.Segments) {
			pw = append(pw, p.ClosingSegment())
		}
	}
	return pw
}

// AsString returns a vector of paths as a (debugging) string, one path per
// line.
func AsString(v Vector) string {
	var b strings.Builder
	for i, p := range v {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, seg := range p.Segments {
			if j > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(seg.String())
		}
		if p.Closed {
			b.WriteString(" & cycle")
		}
	}
	return b.String()
}

// PathDataString renders a vector as SVG path data in absolute coordinates.
func PathDataString(v Vector) string {
	var b strings.Builder
	for _, p := range v {
		if p.Empty() {
			continue
		}
		fmt.Fprintf(&b, "M %g %g", p.initialPoint().X(), p.initialPoint().Y())
		for _, seg := range p.Segments {
			switch seg.Kind {
			case LineKind:
				fmt.Fprintf(&b, " L %g %g", seg.P[1].X(), seg.P[1].Y())
			case QuadKind:
				fmt.Fprintf(&b, " Q %g %g %g %g", seg.P[1].X(), seg.P[1].Y(),
					seg.P[2].X(), seg.P[2].Y())
			default:
				fmt.Fprintf(&b, " C %g %g %g %g %g %g", seg.P[1].X(), seg.P[1].Y(),
					seg.P[2].X(), seg.P[2].Y(), seg.P[3].X(), seg.P[3].Y())
			}
		}
		if p.Closed {
			b.WriteString(" Z")
		}
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}
