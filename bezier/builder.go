package bezier

import "github.com/npillmayer/pointwise/arithm"

// Builder constructs a vector of paths. Start with Nullpath() and extend it.
type Builder struct {
	paths   Vector
	current arithm.Pair
	started bool // has a current point
	open    bool // last path may still be extended
}

// Nullpath creates an empty builder, to be extended by subsequent builder
// calls. The following example builds a closed square and an open polyline:
//
//	v := Nullpath().MoveTo(P(0,0)).LineTo(P(1,0)).LineTo(P(1,1)).LineTo(P(0,1)).Close().
//		MoveTo(P(3,0)).LineTo(P(4,1)).Vector()
func Nullpath() *Builder {
	return &Builder{}
}

// MoveTo starts a new subpath at p. Part of builder functionality.
func (b *Builder) MoveTo(p arithm.Pair) *Builder {
	b.current = p
	b.started = true
	b.open = false
	return b
}

// LineTo adds a straight segment. Part of builder functionality.
func (b *Builder) LineTo(p arithm.Pair) *Builder {
	b.push(Line(b.mustCurrent("line"), p))
	return b
}

// QuadTo adds a quadratic Bézier segment. Part of builder functionality.
func (b *Builder) QuadTo(c, p arithm.Pair) *Builder {
	b.push(Quad(b.mustCurrent("quad"), c, p))
	return b
}

// CurveTo adds a cubic Bézier segment. Part of builder functionality.
func (b *Builder) CurveTo(c1, c2, p arithm.Pair) *Builder {
	b.push(Cubic(b.mustCurrent("curve"), c1, c2, p))
	return b
}

// Close closes the current subpath. The current point moves back to the
// subpath's initial point. Part of builder functionality.
func (b *Builder) Close() *Builder {
	if !b.open {
		panic("cannot close empty path")
	}
	p := &b.paths[len(b.paths)-1]
	p.Closed = true
	b.current = p.initialPoint()
	b.open = false
	return b
}

// Current returns the current point, if any.
func (b *Builder) Current() (arithm.Pair, bool) {
	return b.current, b.started
}

// Vector returns the paths built so far.
func (b *Builder) Vector() Vector {
	return b.paths
}

func (b *Builder) mustCurrent(what string) arithm.Pair {
	if !b.started {
		panic("cannot add " + what + " to empty path")
	}
	return b.current
}

func (b *Builder) push(seg Segment) {
	if !b.open {
		b.paths = append(b.paths, Path{})
		b.open = true
	}
	p := &b.paths[len(b.paths)-1]
	p.Segments = append(p.Segments, seg)
	b.current = seg.End()
}
