package bezier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/pointwise/arithm"
)

// ParsePathData reads SVG path data (the 'd' attribute of an SVG path
// element) into a vector of paths. Supported commands are M, L, H, V, C, S,
// Q, T and Z, in absolute and relative form. Elliptical arcs are not
// supported.
func ParsePathData(d string) (Vector, error) {
	sc := &pathScanner{src: d}
	b := Nullpath()
	var cmd byte
	var lastCtrl arithm.Pair // reflected control point for S and T
	var lastKind byte
	for {
		sc.skipSeparators()
		if sc.eof() {
			break
		}
		if c := sc.peek(); isCommand(c) {
			cmd = c
			sc.pos++
		} else if cmd == 0 {
			return nil, sc.errorf("expected command, found %q", c)
		}
		cur, _ := b.Current()
		rel := cmd >= 'a' && cmd <= 'z'
		abs := func(p arithm.Pair) arithm.Pair {
			if rel {
				return cur + p
			}
			return p
		}
		switch upper(cmd) {
		case 'Z':
			if err := needCurrent(b, cmd); err != nil {
				return nil, err
			}
			if b.open {
				b.Close()
			}
			cmd, lastKind = 0, 'Z'
			continue
		case 'M':
			p, err := sc.pair()
			if err != nil {
				return nil, err
			}
			b.MoveTo(abs(p))
			// subsequent pairs are implicit lineto commands
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			lastKind = 'M'
			continue
		}
		if err := needCurrent(b, cmd); err != nil {
			return nil, err
		}
		switch upper(cmd) {
		case 'L':
			p, err := sc.pair()
			if err != nil {
				return nil, err
			}
			b.LineTo(abs(p))
		case 'H':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X()
			}
			b.LineTo(arithm.P(x, cur.Y()))
		case 'V':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y()
			}
			b.LineTo(arithm.P(cur.X(), y))
		case 'C':
			pts, err := sc.pairs(3)
			if err != nil {
				return nil, err
			}
			b.CurveTo(abs(pts[0]), abs(pts[1]), abs(pts[2]))
			lastCtrl = abs(pts[1])
		case 'S':
			pts, err := sc.pairs(2)
			if err != nil {
				return nil, err
			}
			c1 := cur
			if lastKind == 'C' {
				c1 = cur.Scaled(2) - lastCtrl
			}
			b.CurveTo(c1, abs(pts[0]), abs(pts[1]))
			lastCtrl = abs(pts[0])
		case 'Q':
			pts, err := sc.pairs(2)
			if err != nil {
				return nil, err
			}
			b.QuadTo(abs(pts[0]), abs(pts[1]))
			lastCtrl = abs(pts[0])
		case 'T':
			p, err := sc.pair()
			if err != nil {
				return nil, err
			}
			c := cur
			if lastKind == 'Q' {
				c = cur.Scaled(2) - lastCtrl
			}
			b.QuadTo(c, abs(p))
			lastCtrl = c
		default:
			return nil, sc.errorf("unsupported command %q", cmd)
		}
		lastKind = smoothKind(upper(cmd))
	}
	tracer().Debugf("parsed path data into %d path(s)", len(b.Vector()))
	return b.Vector(), nil
}

// MustParsePathData is a helper which panics on malformed path data.
func MustParsePathData(d string) Vector {
	v, err := ParsePathData(d)
	if err != nil {
		panic(err)
	}
	return v
}

// S continues a C, T continues a Q.
func smoothKind(c byte) byte {
	switch c {
	case 'S':
		return 'C'
	case 'T':
		return 'Q'
	}
	return c
}

func isCommand(c byte) bool {
	return strings.IndexByte("MmLlHhVvCcSsQqTtZzAa", c) >= 0
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

type pathScanner struct {
	src string
	pos int
}

func (sc *pathScanner) eof() bool {
	return sc.pos >= len(sc.src)
}

func (sc *pathScanner) peek() byte {
	return sc.src[sc.pos]
}

func (sc *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrPathSyntax, sc.pos, fmt.Sprintf(format, args...))
}

func needCurrent(b *Builder, cmd byte) error {
	if _, ok := b.Current(); !ok {
		return fmt.Errorf("%w: command %q", ErrEmptyPath, cmd)
	}
	return nil
}

func (sc *pathScanner) skipSeparators() {
	for !sc.eof() {
		switch sc.peek() {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *pathScanner) number() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	if !sc.eof() && (sc.peek() == '+' || sc.peek() == '-') {
		sc.pos++
	}
	digits, dot := false, false
	for !sc.eof() {
		c := sc.peek()
		if c >= '0' && c <= '9' {
			digits = true
		} else if c == '.' && !dot {
			dot = true
		} else {
			break
		}
		sc.pos++
	}
	if digits && !sc.eof() && (sc.peek() == 'e' || sc.peek() == 'E') {
		save := sc.pos
		sc.pos++
		if !sc.eof() && (sc.peek() == '+' || sc.peek() == '-') {
			sc.pos++
		}
		exp := false
		for !sc.eof() && sc.peek() >= '0' && sc.peek() <= '9' {
			sc.pos++
			exp = true
		}
		if !exp {
			sc.pos = save
		}
	}
	if !digits {
		sc.pos = start
		return 0, sc.errorf("expected number")
	}
	f, err := strconv.ParseFloat(sc.src[start:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w at offset %d: %v", ErrPathSyntax, start, err)
	}
	return f, nil
}

func (sc *pathScanner) pair() (arithm.Pair, error) {
	x, err := sc.number()
	if err != nil {
		return arithm.Origin, err
	}
	y, err := sc.number()
	if err != nil {
		return arithm.Origin, err
	}
	return arithm.P(x, y), nil
}

func (sc *pathScanner) pairs(n int) ([]arithm.Pair, error) {
	pts := make([]arithm.Pair, n)
	for i := range pts {
		p, err := sc.pair()
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}
