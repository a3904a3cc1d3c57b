package pointwise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/pointwise/pathinfo"
	"github.com/npillmayer/pointwise/satellite"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pointwise'
func tracer() tracing.Trace {
	return tracing.Select("pointwise")
}

// PointTolerance is the absolute tolerance for comparing segment start
// points during reconciliation.
const PointTolerance = 1e-3

// Unlimited disables the occurrence limit of FindSatellites.
const Unlimited = -1

var (
	// ErrIndexOutOfRange indicates a satellite referring to a non-existent segment.
	ErrIndexOutOfRange = errors.New("satellite index out of range")
	// ErrTopologyMismatch indicates a curve whose subpaths do not cover all of its segments.
	ErrTopologyMismatch = errors.New("subpaths do not cover curve")
)

// Debug switches on validation of the satellite table at entry to queries.
// Violations are reported to the trace.
var Debug = false

// Entry attaches a satellite to the segment with index Index.
type Entry struct {
	Index int
	satellite.Satellite
}

func (e Entry) String() string {
	return fmt.Sprintf("%d:%s", e.Index, e.Satellite)
}

// Pointwise is a piecewise curve together with a table of satellites.
// Entries are ordered by segment index; several entries may share an index.
type Pointwise struct {
	curve   bezier.Piecewise
	entries []Entry
	info    *pathinfo.PathInfo
}

// New creates an engine for a curve and an initial satellite table.
func New(curve bezier.Piecewise, entries []Entry) *Pointwise {
	pw := &Pointwise{}
	pw.SetCurve(curve)
	pw.SetSatellites(entries)
	return pw
}

// Curve returns the current curve.
func (pw *Pointwise) Curve() bezier.Piecewise {
	return pw.curve
}

// SetCurve replaces the curve and rebuilds the subpath partition. The
// satellite table is left alone; use Recalculate if the number of segments
// changes.
func (pw *Pointwise) SetCurve(curve bezier.Piecewise) {
	pw.curve = curve
	pw.info = pathinfo.Build(curve)
}

// Satellites returns a copy of the satellite table.
func (pw *Pointwise) Satellites() []Entry {
	return append([]Entry(nil), pw.entries...)
}

// SetSatellites replaces the satellite table with a copy of entries.
func (pw *Pointwise) SetSatellites(entries []Entry) {
	pw.entries = append([]Entry(nil), entries...)
	pw.check()
}

// Satellite returns the satellite at table position pos.
func (pw *Pointwise) Satellite(pos int) (Entry, bool) {
	if pos < 0 || pos >= len(pw.entries) {
		return Entry{}, false
	}
	return pw.entries[pos], true
}

// Update replaces the satellite at table position pos, keeping its index.
func (pw *Pointwise) Update(pos int, sat satellite.Satellite) bool {
	if pos < 0 || pos >= len(pw.entries) {
		return false
	}
	pw.entries[pos].Satellite = sat
	return true
}

// PathInfo returns the subpath partition of the current curve.
func (pw *Pointwise) PathInfo() *pathinfo.PathInfo {
	return pw.info
}

// segment returns the curve segment with index i.
func (pw *Pointwise) segment(i int) (bezier.Segment, bool) {
	if i < 0 || i >= len(pw.curve) {
		return bezier.Segment{}, false
	}
	return pw.curve[i], true
}

// FindSatellites returns the table positions of entries at segment index,
// in table order. At most limit positions are returned, unless limit is
// Unlimited.
func (pw *Pointwise) FindSatellites(index, limit int) []int {
	pw.check()
	var r []int
	for pos, e := range pw.entries {
		if e.Index != index {
			continue
		}
		if limit != Unlimited && len(r) >= limit {
			break
		}
		r = append(r, pos)
	}
	return r
}

// FindPreviousSatellites is FindSatellites for the segment preceding index.
// It returns nothing if index has no predecessor.
func (pw *Pointwise) FindPreviousSatellites(index, limit int) []int {
	prev, ok := pw.info.Previous(index)
	if !ok {
		return nil
	}
	return pw.FindSatellites(prev, limit)
}

// Validate checks that every satellite refers to an existing segment and
// that the subpaths cover the whole curve.
func (pw *Pointwise) Validate() error {
	for pos, e := range pw.entries {
		if e.Index < 0 || e.Index >= len(pw.curve) {
			return fmt.Errorf("%w: entry #%d = %s, curve has %d segments",
				ErrIndexOutOfRange, pos, e, len(pw.curve))
		}
	}
	if n := pw.info.Size(); n != len(pw.curve) {
		return fmt.Errorf("%w: %d of %d segments", ErrTopologyMismatch, n, len(pw.curve))
	}
	return nil
}

func (pw *Pointwise) check() {
	if !Debug {
		return
	}
	if err := pw.Validate(); err != nil {
		tracer().Errorf("pointwise: %v", err)
	}
}

// AsString returns the satellite table as a (debugging) string.
func AsString(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(e.String())
	}
	return b.String()
}
