/*
Package satellite implements the per-node parameter record attached to a
curve segment by path effects such as fillet/chamfer or B-spline smoothing.

A satellite lives at the start node of the segment it is attached to. Its
amount is stored either as a curve parameter ("time", IsTime set) or as an
arc length measured from the node. The conversion functions in this package
translate between both units on a given segment.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package satellite

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pointwise'
func tracer() tracing.Trace {
	return tracing.Select("pointwise")
}

// ErrUnknownSatelliteType is returned by ParseType for unrecognized type names.
var ErrUnknownSatelliteType = errors.New("unknown satellite type")

// Type is the kind of effect a satellite controls.
type Type int8

// Satellite types
const (
	Fillet Type = iota
	InverseFillet
	Chamfer
	InverseChamfer
	BSpline
)

var typeCodes = [...]string{"F", "IF", "C", "IC", "BS"}
var typeNames = [...]string{"fillet", "inverse-fillet", "chamfer", "inverse-chamfer", "bspline"}

// String returns the short code of a satellite type, as used in effect
// parameter strings.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeCodes) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeCodes[t]
}

// Name returns the long, human readable name of a satellite type.
func (t Type) Name() string {
	if t < 0 || int(t) >= len(typeNames) {
		return t.String()
	}
	return typeNames[t]
}

// ParseType accepts a short code ("F", "IC", …) or a long name ("chamfer",
// "inverse-fillet", …). Matching is case-insensitive.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for i := range typeCodes {
		if strings.EqualFold(s, typeCodes[i]) || strings.EqualFold(s, typeNames[i]) {
			return Type(i), nil
		}
	}
	return Fillet, fmt.Errorf("%w: %q", ErrUnknownSatelliteType, s)
}

// Satellite is a per-node parameter record. It is a plain value: copying a
// satellite copies all of its state.
type Satellite struct {
	Type      Type
	IsTime    bool    // Amount is a curve parameter, not an arc length
	IsEndOpen bool    // synthetic marker for the terminal node of an open subpath
	Active    bool    // effect is applied at this node
	HasMirror bool    // effect extends symmetrically onto the preceding segment
	Hidden    bool    // knot handles are not displayed
	Amount    float64 // size of the effect, unit according to IsTime
	Angle     float64 // chamfer angle, degrees
	Steps     int     // chamfer subdivisions
}

// New creates an active satellite of type t with all other fields zero.
func New(t Type) Satellite {
	return Satellite{Type: t, Active: true}
}

func (sat Satellite) String() string {
	var flags strings.Builder
	flag := func(on bool, c byte) {
		if on {
			flags.WriteByte(c)
		} else {
			flags.WriteByte('-')
		}
	}
	flag(sat.IsTime, 't')
	flag(sat.Active, 'a')
	flag(sat.HasMirror, 'm')
	flag(sat.Hidden, 'h')
	flag(sat.IsEndOpen, 'e')
	return fmt.Sprintf("%s[%s](%.4g,%.4g,%d)", sat.Type, flags.String(), sat.Amount,
		sat.Angle, sat.Steps)
}

// degenerate segments carry no satellite amount
func isDegenerate(seg bezier.Segment) bool {
	return seg.IsDegenerate(bezier.DefaultTolerance)
}

// ToSize converts a curve parameter t on seg to the arc length between the
// start of seg and the point at t. It returns 0 for t ≤ 0 or a degenerate
// segment.
func ToSize(t float64, seg bezier.Segment) float64 {
	if t <= 0 || isDegenerate(seg) {
		return 0
	}
	if t > 1 {
		t = 1
	}
	return seg.ArclenRange(0, t)
}

// ToTime converts an arc length s, measured from the start of seg, to the
// curve parameter of the point at that distance. The result is clamped to
// [0,1]. It returns 0 for s ≤ 0 or a degenerate segment.
func ToTime(s float64, seg bezier.Segment) float64 {
	if s <= 0 || isDegenerate(seg) {
		return 0
	}
	if math.IsNaN(s) {
		tracer().Errorf("satellite: NaN size on segment %s", seg)
		return 0
	}
	return seg.TimeAtLength(s)
}

// OppositeTime converts an arc length s, measured backwards from the end of
// seg, to a curve parameter. It returns 1 for s = 0.
func OppositeTime(s float64, seg bezier.Segment) float64 {
	if s == 0 {
		return 1
	}
	return ToTime(seg.Arclen()-s, seg)
}

// Time returns the satellite's amount as a curve parameter on seg, honoring
// IsTime. The result never exceeds 1.
func (sat Satellite) Time(seg bezier.Segment) float64 {
	t := sat.Amount
	if !sat.IsTime {
		t = ToTime(t, seg)
	}
	return math.Min(t, 1)
}

// OppositeTime returns the mirrored parameter of the satellite's amount,
// i.e. the point at the same distance measured from the end of seg. This is
// where a mirrored effect starts on the segment preceding the satellite's node.
func (sat Satellite) OppositeTime(seg bezier.Segment) float64 {
	return OppositeTime(sat.ArcDistance(seg), seg)
}

// ArcDistance returns the satellite's amount as an arc length on seg,
// honoring IsTime.
func (sat Satellite) ArcDistance(seg bezier.Segment) float64 {
	if sat.IsTime {
		return ToSize(sat.Amount, seg)
	}
	return sat.Amount
}

// SetPosition stores a curve parameter t on seg as the satellite's amount,
// converting it to the satellite's unit.
func (sat *Satellite) SetPosition(t float64, seg bezier.Segment) {
	if sat.IsTime {
		sat.Amount = t
		return
	}
	sat.Amount = ToSize(t, seg)
}
