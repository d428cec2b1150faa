// Package interval implements the winding-number interval set that
// tracks coverage along a single scanline, and the edge-clipping
// primitives (axis bisection, closed-form line intersection) the tiler
// uses to feed it.
package interval

import (
	"sort"

	"github.com/gogpu/tilerast/internal/core"
)

// Range is a half-open interval [Start, End) on the real line.
type Range struct {
	Start, End float64
}

// Interval is a Range annotated with a signed winding number.
type Interval struct {
	Range
	Winding int
}

// Set is an ordered, disjoint, coalesced collection of Intervals whose
// union exactly covers a fixed configured range. The zero value is not
// valid; use New.
type Set struct {
	covers Range
	ivs    []Interval
}

// New creates a Set covering [lo, hi) with a single zero-winding
// interval.
func New(lo, hi float64) *Set {
	s := &Set{covers: Range{lo, hi}}
	s.Clear()
	return s
}

// Clear resets the set to a single zero-winding interval spanning the
// configured range.
func (s *Set) Clear() {
	s.ivs = []Interval{{Range: s.covers, Winding: 0}}
}

// Ranges returns a snapshot of the set's current intervals, ordered by
// Start.
func (s *Set) Ranges() []Interval {
	out := make([]Interval, len(s.ivs))
	copy(out, s.ivs)
	return out
}

// Add splits existing intervals at r.Start and r.End, increments Winding
// by delta on every interval wholly inside [r.Start, r.End), then
// coalesces equal-winding neighbours.
//
// Tie-break on boundaries: a point exactly at r.Start belongs to the new
// range; a point exactly at r.End does not — this matches the half-open
// convention of Range itself.
func (s *Set) Add(r Range, delta int) {
	if r.Start >= r.End {
		return
	}
	s.splitAt(r.Start)
	s.splitAt(r.End)

	for i := range s.ivs {
		if s.ivs[i].Start >= r.Start && s.ivs[i].End <= r.End {
			s.ivs[i].Winding += delta
		}
	}
	s.coalesce()
}

// splitAt ensures x is a boundary between two intervals (or the edge of
// the covered range), splitting whichever interval currently straddles
// it.
func (s *Set) splitAt(x float64) {
	if x <= s.covers.Start || x >= s.covers.End {
		return
	}
	idx := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].End > x })
	if idx >= len(s.ivs) {
		return
	}
	iv := s.ivs[idx]
	if iv.Start >= x {
		return
	}
	left := Interval{Range: Range{iv.Start, x}, Winding: iv.Winding}
	right := Interval{Range: Range{x, iv.End}, Winding: iv.Winding}
	s.ivs = append(s.ivs[:idx], append([]Interval{left, right}, s.ivs[idx+1:]...)...)
}

// coalesce merges adjacent intervals that share a winding number.
func (s *Set) coalesce() {
	if len(s.ivs) < 2 {
		return
	}
	out := s.ivs[:1]
	for _, iv := range s.ivs[1:] {
		last := &out[len(out)-1]
		if last.Winding == iv.Winding && last.End == iv.Start {
			last.End = iv.End
			continue
		}
		out = append(out, iv)
	}
	s.ivs = out
}

// WindingAt returns the winding number of the interval covering x, or 0
// if x falls outside the configured range.
func (s *Set) WindingAt(x float64) int {
	if x < s.covers.Start || x >= s.covers.End {
		return 0
	}
	idx := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].End > x })
	if idx >= len(s.ivs) {
		return 0
	}
	return s.ivs[idx].Winding
}

// AxisClipPrecision is the bisection termination tolerance the tiler's
// axis-clip operation uses for quadratic edges.
const AxisClipPrecision = 1e-5

// ClipLineAtX intersects line segment e with the vertical clip line
// x = k in closed form, via the cross product of the two lines'
// homogeneous coordinates, and returns (before, after) split at that
// point. ok is false if the line does not cross x = k within the
// segment.
func ClipLineAtX(e core.Line, k float64) (before, after core.Line, ok bool) {
	// Homogeneous line through e.P0, e.P1: cross of the two homogeneous
	// points gives the line's (a, b, c) coefficients for ax+by+c=0.
	h0 := [3]float64{e.P0.X, e.P0.Y, 1}
	h1 := [3]float64{e.P1.X, e.P1.Y, 1}
	edgeLine := core.Cross3(h0, h1)

	// The vertical line x = k is {1, 0, -k} in homogeneous form.
	clipLine := [3]float64{1, 0, -k}

	p := core.Cross3(edgeLine, clipLine)
	if p[2] == 0 {
		return core.Line{}, core.Line{}, false
	}
	ix, iy := p[0]/p[2], p[1]/p[2]

	minX, maxX := e.P0.X, e.P1.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if ix < minX || ix > maxX {
		return core.Line{}, core.Line{}, false
	}

	mid := core.Pt(ix, iy)
	return core.Line{P0: e.P0, P1: mid}, core.Line{P0: mid, P1: e.P1}, true
}

// ClipEdgeAtY splits a (possibly quadratic) edge at the horizontal clip
// line y = k. Line edges are clipped in closed form; quadratic edges are
// clipped by bisecting the subdivision parameter on the sign of
// (y(t) - k) until the crossing is located to AxisClipPrecision, then
// subdividing there. ok is false if the edge does not cross y = k.
func ClipEdgeAtY(e core.Edge, k float64) (before, after core.Edge, ok bool) {
	y0, y1 := e.From.Y, e.To.Y
	if (y0-k)*(y1-k) > 0 {
		return core.Edge{}, core.Edge{}, false
	}
	if y0 == y1 {
		return core.Edge{}, core.Edge{}, false
	}

	if e.IsLine() {
		t := (k - y0) / (y1 - y0)
		before, after = e.Subdivide(t)
		return before, after, true
	}

	lo, hi := 0.0, 1.0
	sign := func(t float64) float64 { return e.Eval(t).Y - k }
	loSign := sign(lo)
	for hi-lo > AxisClipPrecision {
		mid := (lo + hi) / 2
		if sign(mid)*loSign > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	t := (lo + hi) / 2
	before, after = e.Subdivide(t)
	return before, after, true
}

// ClipEdgeAtX is the x-axis analogue of ClipEdgeAtY, used by the tiler's
// horizontal sweep.
func ClipEdgeAtX(e core.Edge, k float64) (before, after core.Edge, ok bool) {
	x0, x1 := e.From.X, e.To.X
	if (x0-k)*(x1-k) > 0 {
		return core.Edge{}, core.Edge{}, false
	}
	if x0 == x1 {
		return core.Edge{}, core.Edge{}, false
	}

	if e.IsLine() {
		before2, after2, ok2 := ClipLineAtX(e.AsLine(), k)
		if !ok2 {
			return core.Edge{}, core.Edge{}, false
		}
		return core.NewLineEdge(before2.P0, before2.P1), core.NewLineEdge(after2.P0, after2.P1), true
	}

	lo, hi := 0.0, 1.0
	sign := func(t float64) float64 { return e.Eval(t).X - k }
	loSign := sign(lo)
	for hi-lo > AxisClipPrecision {
		mid := (lo + hi) / 2
		if sign(mid)*loSign > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	t := (lo + hi) / 2
	before, after = e.Subdivide(t)
	return before, after, true
}

// WindingContribution returns the signed winding contribution of an edge
// oriented from p0 to p1: +1 if it runs bottom-to-top (p1.Y < p0.Y),
// -1 if top-to-bottom, 0 if horizontal.
func WindingContribution(p0, p1 core.Point) int {
	switch {
	case p1.Y < p0.Y:
		return 1
	case p1.Y > p0.Y:
		return -1
	default:
		return 0
	}
}
