/*
Package bezier provides the curve model consumed by the satellite engine:
straight, quadratic and cubic segments, flattened piecewise curves and their
decomposition into subpaths.

A piecewise curve (type Piecewise) is the flat, cross-subpath sequence of
segments. Satellites refer to segments by their index into this sequence.
Piecewise curves are decomposed into discrete paths (type Path) by endpoint
continuity:

	pw := bezier.Nullpath().MoveTo(arithm.P(0, 0)).LineTo(arithm.P(10, 0)).
		CurveTo(arithm.P(15, 0), arithm.P(15, 10), arithm.P(10, 10)).Close().
		Vector().Piecewise()
	paths := pw.RemoveShortCuts(0.1).Paths(0.001)

Segments answer the usual geometric queries (evaluation, tangents,
arc length, nearest point, offset). The numerics are delegated to package
honnef.co/go/curve. Offset curves are returned as flattened polygons, as
their only purpose is to be intersected with each other.

Path data in SVG syntax may be read with ParsePathData.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier
