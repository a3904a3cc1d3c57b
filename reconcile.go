package pointwise

import (
	"fmt"

	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/pointwise/satellite"
)

// Reconciliation reports what Recalculate did to the satellite table.
type Reconciliation struct {
	Carried  int // entries kept, possibly at a shifted index
	Inserted int // fresh entries for new segments
	Dropped  int // entries of removed segments, and end markers
}

func (r Reconciliation) String() string {
	return fmt.Sprintf("carried %d, inserted %d, dropped %d", r.Carried, r.Inserted, r.Dropped)
}

// Recalculate replaces the curve by curve and re-derives the satellite table
// if the number of segments changed. Segments are matched by their start
// points: where the new curve has extra segments, fresh satellites are
// inserted; where segments have gone, their satellites are dropped. All
// other satellites move to the index their segment has in the new curve.
//
// End markers are removed and must be regenerated with MarkExtremes.
func (pw *Pointwise) Recalculate(curve bezier.Piecewise) Reconciliation {
	var entries []Entry
	var r Reconciliation
	switch {
	case len(curve) > len(pw.curve):
		entries, r = grow(pw.curve, curve, pw.entries)
	case len(curve) < len(pw.curve):
		entries, r = shrink(pw.curve, curve, pw.entries)
	default:
		entries = pw.entries
		r.Carried = len(entries)
	}
	tracer().Debugf("pointwise: %d → %d segments, %s", len(pw.curve), len(curve), r)
	pw.SetCurve(curve)
	pw.entries = entries
	pw.check()
	return r
}

// withoutEndMarkers returns the entries which are not end markers.
func withoutEndMarkers(entries []Entry) []Entry {
	r := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.IsEndOpen {
			r = append(r, e)
		}
	}
	return r
}

// template is the satellite for a node without history: same type, unit and
// mirroring as the first satellite in the table, active and otherwise zero.
func template(entries []Entry) satellite.Satellite {
	sat := satellite.Satellite{Active: true}
	if len(entries) > 0 {
		sat.Type = entries[0].Type
		sat.IsTime = entries[0].IsTime
		sat.HasMirror = entries[0].HasMirror
	}
	return sat
}

func sameStart(oldCurve, newCurve bezier.Piecewise, oldIndex, newIndex int) bool {
	if oldIndex < 0 || oldIndex >= len(oldCurve) || newIndex < 0 || newIndex >= len(newCurve) {
		return false
	}
	return oldCurve[oldIndex].Start().Near(newCurve[newIndex].Start(), PointTolerance)
}

// byIndex groups entries by segment index, keeping table order within a
// group.
func byIndex(entries []Entry) map[int][]Entry {
	m := make(map[int][]Entry, len(entries))
	for _, e := range entries {
		m[e.Index] = append(m[e.Index], e)
	}
	return m
}

// grow walks the new curve. Each segment either matches the old segment at
// the same index minus the number of insertions so far, or is new.
func grow(oldCurve, newCurve bezier.Piecewise, entries []Entry) ([]Entry, Reconciliation) {
	var r Reconciliation
	stripped := withoutEndMarkers(entries)
	r.Dropped = len(entries) - len(stripped)
	fresh := template(stripped)
	groups := byIndex(stripped)
	result := make([]Entry, 0, len(stripped)+len(newCurve)-len(oldCurve))
	for i := range newCurve {
		old := i - r.Inserted
		if !sameStart(oldCurve, newCurve, old, i) {
			tracer().Debugf("pointwise: segment %d is new", i)
			result = append(result, Entry{Index: i, Satellite: fresh})
			r.Inserted++
			continue
		}
		for _, e := range groups[old] {
			e.Index = i
			result = append(result, e)
			r.Carried++
		}
		delete(groups, old)
	}
	for _, g := range groups { // indices outside the old curve
		r.Dropped += len(g)
	}
	return result, r
}

// shrink walks the old curve. Each segment either matches the new segment at
// the same index minus the number of removals so far, or has gone.
func shrink(oldCurve, newCurve bezier.Piecewise, entries []Entry) ([]Entry, Reconciliation) {
	var r Reconciliation
	stripped := withoutEndMarkers(entries)
	r.Dropped = len(entries) - len(stripped)
	target := make([]int, len(oldCurve))
	removed := 0
	for k := range oldCurve {
		shifted := k - removed
		if shifted >= len(newCurve) || !sameStart(oldCurve, newCurve, k, shifted) {
			tracer().Debugf("pointwise: segment %d has gone", k)
			target[k] = -1
			removed++
			continue
		}
		target[k] = shifted
	}
	result := make([]Entry, 0, len(stripped))
	for _, e := range stripped {
		if e.Index < 0 || e.Index >= len(target) || target[e.Index] < 0 {
			r.Dropped++
			continue
		}
		e.Index = target[e.Index]
		result = append(result, e)
		r.Carried++
	}
	return result, r
}
