/*
Package arithm implements points and rays used by the curve and satellite
packages.

Points are represented as complex numbers. This makes rotation by 90 degrees
a multiplication by i and lets clients use the operators + and - on points
directly. Curve numerics are delegated to package curve, which has its own
point and vector types; Pt, FromPoint and FromVec convert between them.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arithm

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
	"honnef.co/go/curve"
)

// tracer writes to trace with key 'arithm'
func tracer() tracing.Trace {
	return tracing.Select("arithm")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// === Pair Data Type ========================================================

// Pair is a 2D-point or a 2D-vector.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Pt converts a pair to a point of package curve.
func (p Pair) Pt() curve.Point {
	return curve.Pt(p.X(), p.Y())
}

// FromPoint converts a point of package curve to a pair.
func FromPoint(pt curve.Point) Pair {
	return P(pt.X, pt.Y)
}

// FromVec converts a vector of package curve to a pair.
func FromVec(v curve.Vec2) Pair {
	return P(v.X, v.Y)
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return p.Near(p2, Epsilon)
}

// Near compares two pairs coordinate-wise with an absolute tolerance.
func (p Pair) Near(p2 Pair, tol float64) bool {
	return math.Abs(p.X()-p2.X()) <= tol && math.Abs(p.Y()-p2.Y()) <= tol
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Abs is the length of a vector.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Distance returns the euclidean distance between p and q.
func (p Pair) Distance(q Pair) float64 {
	return (q - p).Abs()
}

// Midpoint returns the point halfway between p and q.
func (p Pair) Midpoint(q Pair) Pair {
	return (p + q).Scaled(0.5)
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return p + (q - p).Scaled(t)
}

// Dot is the dot product of two vectors.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross is the z-component of the cross product of two vectors.
// It is positive if q lies counter-clockwise of p.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Rot90 rotates a vector counter-clockwise by 90 degrees.
func (p Pair) Rot90() Pair {
	return Pair(p.C() * 1i)
}

// Unit returns the vector scaled to length 1. The zero vector is returned
// unchanged.
func (p Pair) Unit() Pair {
	l := p.Abs()
	if Is0(l) {
		return Origin
	}
	return p.Scaled(1 / l)
}

// === Rays ==================================================================

// Ray is a half-line, starting at Origin and heading towards Versor.
type Ray struct {
	Origin Pair
	Versor Pair
}

// RayThrough creates a ray starting at p, passing through q.
func RayThrough(p, q Pair) Ray {
	return Ray{Origin: p, Versor: q - p}
}

// Direction returns the (not normalized) direction vector of a ray.
func (r Ray) Direction() Pair {
	return r.Versor
}

// AngleBetween returns the angle between two rays, in [0,2π).
// With cw set, the angle is measured clockwise from r1 to r2, otherwise
// counter-clockwise. Rays without direction enclose an angle of 0.
func AngleBetween(r1, r2 Ray, cw bool) float64 {
	d1, d2 := r1.Direction(), r2.Direction()
	if d1.IsOrigin() || d2.IsOrigin() {
		tracer().Debugf("angle between rays with zero direction")
		return 0
	}
	angle := math.Atan2(d1.Cross(d2), d1.Dot(d2))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if !cw {
		angle = 2*math.Pi - angle
	}
	return angle
}
