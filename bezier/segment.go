package bezier

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pointwise/arithm"
	"github.com/npillmayer/schuko/tracing"
	"honnef.co/go/curve"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// DefaultTolerance is the absolute tolerance for comparing points on a curve.
const DefaultTolerance = 0.001

// Accuracy is the accuracy requested from numeric curve queries (arc length,
// nearest point).
const Accuracy = curve.DefaultAccuracy

var (
	// ErrPathSyntax indicates malformed SVG path data.
	ErrPathSyntax = errors.New("syntax error in path data")
	// ErrEmptyPath indicates a path operation without a current point.
	ErrEmptyPath = errors.New("path has no current point")
)

// Kind tags the polynomial degree of a segment.
type Kind int8

// Segment kinds
const (
	LineKind Kind = iota + 1
	QuadKind
	CubicKind
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Segment is a single polynomial curve piece. Lines use P[0] and P[1],
// quadratic Béziers P[0]…P[2], and cubic Béziers all four points.
type Segment struct {
	Kind Kind
	P    [4]arithm.Pair
}

// Line creates a straight segment.
func Line(p0, p1 arithm.Pair) Segment {
	return Segment{Kind: LineKind, P: [4]arithm.Pair{p0, p1}}
}

// Quad creates a quadratic Bézier segment.
func Quad(p0, p1, p2 arithm.Pair) Segment {
	return Segment{Kind: QuadKind, P: [4]arithm.Pair{p0, p1, p2}}
}

// Cubic creates a cubic Bézier segment.
func Cubic(p0, p1, p2, p3 arithm.Pair) Segment {
	return Segment{Kind: CubicKind, P: [4]arithm.Pair{p0, p1, p2, p3}}
}

func (s Segment) String() string {
	switch s.Kind {
	case LineKind:
		return fmt.Sprintf("%s -- %s", s.P[0], s.P[1])
	case QuadKind:
		return fmt.Sprintf("%s .. control %s .. %s", s.P[0], s.P[1], s.P[2])
	}
	return fmt.Sprintf("%s .. controls %s and %s .. %s", s.P[0], s.P[1], s.P[2], s.P[3])
}

// degree is the polynomial degree, i.e. the index of the final point.
func (s Segment) degree() int {
	switch s.Kind {
	case LineKind:
		return 1
	case QuadKind:
		return 2
	}
	return 3
}

// Start is the initial point of a segment.
func (s Segment) Start() arithm.Pair {
	return s.P[0]
}

// End is the final point of a segment.
func (s Segment) End() arithm.Pair {
	return s.P[s.degree()]
}

// Cubic reports whether s is a curved segment and, if so, returns the control
// points of its cubic form. Quadratic segments are raised to cubics. Straight
// segments have no cubic form.
func (s Segment) Cubic() ([4]arithm.Pair, bool) {
	if s.Kind == LineKind {
		return [4]arithm.Pair{}, false
	}
	c := s.seg().Cubic()
	return [4]arithm.Pair{
		arithm.FromPoint(c.P0), arithm.FromPoint(c.P1),
		arithm.FromPoint(c.P2), arithm.FromPoint(c.P3),
	}, true
}

// Eval evaluates a segment at parameter t ∈ [0,1].
func (s Segment) Eval(t float64) arithm.Pair {
	return arithm.FromPoint(s.seg().Eval(t))
}

// Subsegment returns the part of a segment between parameters t0 and t1.
func (s Segment) Subsegment(t0, t1 float64) Segment {
	return fromSeg(s.seg().Subsegment(t0, t1))
}

// Tangents returns the directions of a segment at its start and at its end.
// The vectors are not normalized.
func (s Segment) Tangents() (arithm.Pair, arithm.Pair) {
	d0, d1 := s.seg().Tangents()
	return arithm.FromVec(d0), arithm.FromVec(d1)
}

// seg converts s to a segment of package curve. Both packages number the
// segment kinds alike.
func (s Segment) seg() curve.PathSegment {
	return curve.PathSegment{
		Kind: curve.PathSegmentKind(s.Kind),
		P0:   s.P[0].Pt(),
		P1:   s.P[1].Pt(),
		P2:   s.P[2].Pt(),
		P3:   s.P[3].Pt(),
	}
}

func fromSeg(c curve.PathSegment) Segment {
	return Segment{
		Kind: Kind(c.Kind),
		P: [4]arithm.Pair{
			arithm.FromPoint(c.P0), arithm.FromPoint(c.P1),
			arithm.FromPoint(c.P2), arithm.FromPoint(c.P3),
		},
	}
}

// ControlLength is the length of the control polygon, an upper bound of the
// arc length.
func (s Segment) ControlLength() float64 {
	l := 0.0
	for i := 0; i < s.degree(); i++ {
		l += s.P[i].Distance(s.P[i+1])
	}
	return l
}

// IsDegenerate is a predicate: do all control points lie within tol of the
// initial point?
func (s Segment) IsDegenerate(tol float64) bool {
	for i := 1; i <= s.degree(); i++ {
		if !s.P[i].Near(s.P[0], tol) {
			return false
		}
	}
	return true
}
