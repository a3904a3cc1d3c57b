/*
Package pointwise keeps track of satellites attached to the segments of a
piecewise curve.

Path effects like fillet/chamfer or B-spline smoothing store a parameter
record for every node of a path. The engine holds these records (satellites)
in a flat table of entries, each referring to a segment by its index into the
flattened curve. As the curve is edited, segments get inserted or removed and
indices shift; Recalculate re-derives a valid table for the new curve:

	pw := pointwise.Generate(v, satellite.New(satellite.Fillet))
	…
	pw.Recalculate(edited.Piecewise())

Open subpaths have a terminal node without a segment of its own. MarkExtremes
styles the first node of every open subpath and appends an end marker for the
terminal node.

The engine converts a satellite's amount between two units: the distance
along the curve from the node ("length") and the radius of a circle tangent
to both segments meeting at the node ("radius"). See RadiusToLength and
LengthToRadius.

A Pointwise is not safe for concurrent use. All geometric queries degrade to
zero or empty results where no answer exists.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pointwise
