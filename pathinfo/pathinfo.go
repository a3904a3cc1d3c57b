/*
Package pathinfo partitions the flat segment index space of a piecewise
curve into subpaths.

Satellites refer to segments by their index into the flattened curve. To
find the neighbours of a node, clients need to know which subpath a segment
belongs to, where this subpath starts and ends, and whether it is closed.
Closed subpaths wrap around: the successor of the last segment is the first
segment, and vice versa. Open subpaths have no predecessor for their first
segment and no successor for their last one.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pathinfo

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pointwise'
func tracer() tracing.Trace {
	return tracing.Select("pointwise")
}

// Tolerances used when decomposing a curve into subpaths.
const (
	ShortCutTolerance = 0.1   // segments shorter than this are dropped
	PathTolerance     = 0.001 // endpoint continuity between segments
	ClosingTolerance  = 1e-3  // closing segment counts as degenerate
)

// Subpath is a contiguous range of global segment indices. First is always
// 0 for the first subpath, else one past Last of the preceding subpath.
type Subpath struct {
	First  int
	Last   int
	Closed bool
}

// Size is the number of segments of a subpath.
func (sp Subpath) Size() int {
	return sp.Last - sp.First + 1
}

func (sp Subpath) String() string {
	kind := "open"
	if sp.Closed {
		kind = "closed"
	}
	return fmt.Sprintf("[%d..%d] %s", sp.First, sp.Last, kind)
}

// PathInfo holds the subpath partition of a curve. The zero value is an
// empty partition. A PathInfo is immutable after construction.
type PathInfo struct {
	subpaths []Subpath
	byLast   *treemap.Map // last index → position in subpaths
}

// Build decomposes a piecewise curve into subpaths. Short segments are
// removed first, then subpaths are reconstructed by endpoint continuity.
func Build(pw bezier.Piecewise) *PathInfo {
	return New(pw.RemoveShortCuts(ShortCutTolerance).Paths(PathTolerance))
}

// New creates the subpath partition for a vector of paths. Empty paths are
// skipped. The closing segment of a closed path is counted only if it is not
// degenerate.
func New(paths bezier.Vector) *PathInfo {
	pi := &PathInfo{byLast: treemap.NewWithIntComparator()}
	counter := 0
	for _, p := range paths {
		if p.Empty() {
			continue
		}
		first := counter
		counter += p.Count(ClosingTolerance)
		sp := Subpath{First: first, Last: counter - 1, Closed: p.Closed}
		pi.byLast.Put(sp.Last, len(pi.subpaths))
		pi.subpaths = append(pi.subpaths, sp)
	}
	tracer().Debugf("path info: %d segment(s) in %d subpath(s)", counter, len(pi.subpaths))
	return pi
}

// Subpaths returns the subpath entries in segment order.
func (pi *PathInfo) Subpaths() []Subpath {
	if pi == nil {
		return nil
	}
	r := make([]Subpath, len(pi.subpaths))
	copy(r, pi.subpaths)
	return r
}

// Size returns the total number of segments covered by all subpaths.
func (pi *PathInfo) Size() int {
	if pi == nil || len(pi.subpaths) == 0 {
		return 0
	}
	return pi.subpaths[len(pi.subpaths)-1].Last + 1
}

// Lookup finds the subpath containing segment index i. It returns false if i
// is out of range.
func (pi *PathInfo) Lookup(i int) (Subpath, bool) {
	pos, ok := pi.position(i)
	if !ok {
		return Subpath{}, false
	}
	return pi.subpaths[pos], true
}

// position of the first subpath whose last index is ≥ i
func (pi *PathInfo) position(i int) (int, bool) {
	if pi == nil || pi.byLast == nil || i < 0 {
		return 0, false
	}
	_, pos := pi.byLast.Ceiling(i)
	if pos == nil {
		return 0, false
	}
	return pos.(int), true
}

// SubpathIndex returns the position of the subpath containing segment
// index i. Out-of-range indices yield 0; use Lookup to tell them apart.
func (pi *PathInfo) SubpathIndex(i int) int {
	pos, _ := pi.position(i)
	return pos
}

// First returns the index of the first segment of the subpath containing i,
// or 0 if i is out of range.
func (pi *PathInfo) First(i int) int {
	sp, _ := pi.Lookup(i)
	return sp.First
}

// Last returns the index of the last segment of the subpath containing i,
// or 0 if i is out of range.
func (pi *PathInfo) Last(i int) int {
	sp, _ := pi.Lookup(i)
	return sp.Last
}

// IsClosed is a predicate: is the subpath containing i closed? Out-of-range
// indices yield false.
func (pi *PathInfo) IsClosed(i int) bool {
	sp, _ := pi.Lookup(i)
	return sp.Closed
}

// Previous returns the index of the segment preceding i. The first segment
// of a closed subpath is preceded by its last one. The first segment of an
// open subpath has no predecessor.
func (pi *PathInfo) Previous(i int) (int, bool) {
	sp, ok := pi.Lookup(i)
	if !ok {
		return 0, false
	}
	if i == sp.First {
		if sp.Closed {
			return sp.Last, true
		}
		return 0, false
	}
	return i - 1, true
}

// Next returns the index of the segment following i. The last segment of a
// closed subpath is followed by its first one. The last segment of an open
// subpath has no successor.
func (pi *PathInfo) Next(i int) (int, bool) {
	sp, ok := pi.Lookup(i)
	if !ok {
		return 0, false
	}
	if i == sp.Last {
		if sp.Closed {
			return sp.First, true
		}
		return 0, false
	}
	return i + 1, true
}

func (pi *PathInfo) String() string {
	var b strings.Builder
	for k, sp := range pi.Subpaths() {
		fmt.Fprintf(&b, "#%d %s\n", k, sp)
	}
	return b.String()
}
