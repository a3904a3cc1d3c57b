package pointwise

import "github.com/npillmayer/pointwise/satellite"

// Extremes is the styling applied to the end nodes of open subpaths.
type Extremes struct {
	Active bool
	Hidden bool
	Amount float64
	Angle  float64
}

// MarkExtremes styles the end nodes of every open subpath. Satellites at the
// first segment of an open subpath get the given flags and amount. The
// terminal node of an open subpath has no segment of its own; an end marker
// carrying the styling is appended after the satellites of its last
// segment. Previous end markers are replaced.
func (pw *Pointwise) MarkExtremes(x Extremes) {
	entries := withoutEndMarkers(pw.entries)
	proto := template(entries)
	if len(entries) > 0 {
		proto.Steps = entries[0].Steps
	}
	proto.IsEndOpen = true
	proto.Active, proto.Hidden = x.Active, x.Hidden
	proto.Amount, proto.Angle = x.Amount, x.Angle
	for _, sp := range pw.info.Subpaths() {
		if sp.Closed {
			continue
		}
		at := len(entries)
		for pos := range entries {
			if entries[pos].Index > sp.Last {
				at = pos
				break
			}
			if entries[pos].Index == sp.First {
				styleExtreme(&entries[pos].Satellite, x)
			}
		}
		tracer().Debugf("pointwise: end marker for subpath %s at position %d", sp, at)
		entries = insertAt(entries, at, Entry{Index: sp.Last, Satellite: proto})
	}
	pw.entries = entries
	pw.check()
}

func styleExtreme(sat *satellite.Satellite, x Extremes) {
	sat.Active = x.Active
	sat.Hidden = x.Hidden
	sat.Amount = x.Amount
	sat.Angle = x.Angle
}

func insertAt(entries []Entry, pos int, e Entry) []Entry {
	entries = append(entries, Entry{})
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = e
	return entries
}

// Reverse mirrors the satellites of table positions [start, end) about the
// middle of the range, as needed when a subpath changes direction. Segment
// indices stay in place, so the table remains ordered: the satellite found at
// an index afterwards is the one formerly found at the mirrored index.
func (pw *Pointwise) Reverse(start, end int) {
	start = max(start, 0)
	end = min(end, len(pw.entries))
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		pw.entries[i].Satellite, pw.entries[j].Satellite = pw.entries[j].Satellite, pw.entries[i].Satellite
	}
}
