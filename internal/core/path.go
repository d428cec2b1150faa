package core

import "fmt"

// FillRule selects how winding numbers are interpreted as inside/outside
// when a Tile is classified and when pixel coverage is accumulated.
type FillRule int

const (
	// FillNonZero treats any nonzero winding number as "inside".
	FillNonZero FillRule = iota
	// FillEvenOdd treats odd winding numbers as "inside".
	FillEvenOdd
)

func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "nonzero"
	case FillEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// EdgeKind distinguishes the two shapes an Edge can take.
type EdgeKind int

const (
	// EdgeLine is a straight segment; Control is unused.
	EdgeLine EdgeKind = iota
	// EdgeQuadratic is a quadratic Bezier segment.
	EdgeQuadratic
)

// Edge is the canonical curve primitive used from flattening through
// coverage computation: an ordered triple (From, Control?, To). When Kind
// is EdgeLine, Control is ignored and the edge is a straight segment from
// From to To; when Kind is EdgeQuadratic, it is a quadratic Bezier with
// control point Control. Edges are immutable once constructed — every
// transform on an Edge (subdivision, translation) returns new values.
type Edge struct {
	Kind    EdgeKind
	From    Point
	Control Point
	To      Point
}

// NewLineEdge constructs a line edge.
func NewLineEdge(from, to Point) Edge {
	return Edge{Kind: EdgeLine, From: from, To: to}
}

// NewQuadEdge constructs a quadratic edge.
func NewQuadEdge(from, control, to Point) Edge {
	return Edge{Kind: EdgeQuadratic, From: from, Control: control, To: to}
}

// IsLine reports whether e is a line edge.
func (e Edge) IsLine() bool { return e.Kind == EdgeLine }

// IsQuadratic reports whether e is a quadratic edge.
func (e Edge) IsQuadratic() bool { return e.Kind == EdgeQuadratic }

// AsLine returns e's line representation, valid for any Edge (a
// quadratic edge's chord from From to To).
func (e Edge) AsLine() Line {
	return Line{P0: e.From, P1: e.To}
}

// AsQuadBez returns e's quadratic representation. For a line edge the
// control point is placed at the chord's midpoint so the result still
// evaluates to the same straight path.
func (e Edge) AsQuadBez() QuadBez {
	if e.Kind == EdgeQuadratic {
		return QuadBez{P0: e.From, P1: e.Control, P2: e.To}
	}
	return QuadBez{P0: e.From, P1: e.From.Lerp(e.To, 0.5), P2: e.To}
}

// Eval evaluates the edge at parameter t in [0, 1].
func (e Edge) Eval(t float64) Point {
	if e.Kind == EdgeLine {
		return e.From.Lerp(e.To, t)
	}
	return e.AsQuadBez().Eval(t)
}

// BoundingBox returns e's axis-aligned bounding box.
func (e Edge) BoundingBox() Rect {
	if e.Kind == EdgeLine {
		return e.AsLine().BoundingBox()
	}
	return e.AsQuadBez().BoundingBox()
}

// Subdivide splits the edge at parameter t via de Casteljau, matching the
// interval engine's edge-clip algorithm: a line splits at its lerp
// midpoint, a quadratic splits via the standard two-level de Casteljau
// construction.
func (e Edge) Subdivide(t float64) (Edge, Edge) {
	if e.Kind == EdgeLine {
		mid := e.From.Lerp(e.To, t)
		return NewLineEdge(e.From, mid), NewLineEdge(mid, e.To)
	}
	a := e.From.Lerp(e.Control, t)
	b := e.Control.Lerp(e.To, t)
	mid := a.Lerp(b, t)
	return NewQuadEdge(e.From, a, mid), NewQuadEdge(mid, b, e.To)
}

// Translate returns e shifted by (dx, dy), used to move an edge into
// strip-local or tile-local coordinates.
func (e Edge) Translate(dx, dy float64) Edge {
	d := Point{X: dx, Y: dy}
	out := Edge{Kind: e.Kind, From: e.From.Add(d), To: e.To.Add(d)}
	if e.Kind == EdgeQuadratic {
		out.Control = e.Control.Add(d)
	}
	return out
}

// Subpath is an ordered sequence of endpoints with an optional control
// point per segment (nil when the segment to the following endpoint is a
// line), plus a flag for whether the subpath is closed. Endpoints[i] to
// Endpoints[i+1] is one segment; a closed subpath has an implicit final
// segment back to Endpoints[0].
//
// A Subpath with fewer than two endpoints is degenerate and callers must
// skip it rather than try to render it.
type Subpath struct {
	Endpoints []Point
	Controls  []*Point // len(Controls) == max(0, len(Endpoints)-1); the closing segment has no entry and is always a line
	Closed    bool
}

// NewSubpath creates an empty, open subpath.
func NewSubpath() *Subpath {
	return &Subpath{}
}

// Degenerate reports whether the subpath has too few endpoints to
// contribute any geometry.
func (s *Subpath) Degenerate() bool {
	return len(s.Endpoints) < 2
}

// LineTo appends a straight segment ending at p.
func (s *Subpath) LineTo(p Point) {
	s.Endpoints = append(s.Endpoints, p)
	if len(s.Endpoints) > 1 {
		s.Controls = append(s.Controls, nil)
	}
}

// QuadTo appends a quadratic segment with control point c, ending at p.
func (s *Subpath) QuadTo(c, p Point) {
	s.Endpoints = append(s.Endpoints, p)
	if len(s.Endpoints) > 1 {
		cc := c
		s.Controls = append(s.Controls, &cc)
	}
}

// Close marks the subpath closed. A closed subpath implicitly connects
// its last endpoint back to its first with a line segment.
func (s *Subpath) Close() {
	s.Closed = true
}

// Edges yields the subpath's segments as Edge values, including the
// closing segment if the subpath is closed. Degenerate subpaths yield no
// edges.
func (s *Subpath) Edges() []Edge {
	if s.Degenerate() {
		if len(s.Endpoints) > 0 {
			Logger().Warn("skipped degenerate subpath (fewer than two endpoints)",
				"endpoints", len(s.Endpoints))
		}
		return nil
	}
	n := len(s.Endpoints)
	edges := make([]Edge, 0, n)
	for i := 0; i < n-1; i++ {
		from, to := s.Endpoints[i], s.Endpoints[i+1]
		if c := s.Controls[i]; c != nil {
			edges = append(edges, NewQuadEdge(from, *c, to))
		} else {
			edges = append(edges, NewLineEdge(from, to))
		}
	}
	if s.Closed {
		edges = append(edges, NewLineEdge(s.Endpoints[n-1], s.Endpoints[0]))
	}
	return edges
}

// Transform returns a copy of s with every endpoint and control point
// mapped through m.
func (s *Subpath) Transform(m Affine) *Subpath {
	out := &Subpath{
		Endpoints: make([]Point, len(s.Endpoints)),
		Controls:  make([]*Point, len(s.Controls)),
		Closed:    s.Closed,
	}
	for i, p := range s.Endpoints {
		out.Endpoints[i] = m.TransformPoint(p)
	}
	for i, c := range s.Controls {
		if c == nil {
			continue
		}
		tc := m.TransformPoint(*c)
		out.Controls[i] = &tc
	}
	return out
}

// Path is an ordered sequence of subpaths sharing one fill rule. A Path
// exclusively owns its subpaths; nothing else holds a reference to them.
type Path struct {
	Subpaths []*Subpath
	Fill     FillRule
}

// NewPath creates an empty path with the given fill rule.
func NewPath(fill FillRule) *Path {
	return &Path{Fill: fill}
}

// MoveTo starts a new subpath at p. Per this implementation's policy,
// every MoveTo command — wherever it occurs in the command stream — always
// starts a new subpath; it never continues or reopens an existing one.
func (p *Path) MoveTo(pt Point) *Subpath {
	sp := NewSubpath()
	sp.Endpoints = append(sp.Endpoints, pt)
	p.Subpaths = append(p.Subpaths, sp)
	return sp
}

// Current returns the path's last subpath, or nil if the path is empty.
func (p *Path) Current() *Subpath {
	if len(p.Subpaths) == 0 {
		return nil
	}
	return p.Subpaths[len(p.Subpaths)-1]
}

// BoundingBox returns the union of every non-degenerate subpath's edge
// bounding boxes, or the empty rect if the path contributes no geometry.
func (p *Path) BoundingBox() Rect {
	bbox := EmptyRect()
	first := true
	for _, sp := range p.Subpaths {
		for _, e := range sp.Edges() {
			eb := e.BoundingBox()
			if first {
				bbox = eb
				first = false
			} else {
				bbox = bbox.Union(eb)
			}
		}
	}
	return bbox
}

// Edges returns every edge across every non-degenerate subpath, in
// subpath then segment order.
func (p *Path) Edges() []Edge {
	var edges []Edge
	for _, sp := range p.Subpaths {
		edges = append(edges, sp.Edges()...)
	}
	return edges
}

// Transform returns a new Path with every subpath mapped through m,
// leaving p itself untouched. Used to apply a caller-supplied placement
// matrix before the monotonize/tile stages, which otherwise only ever see
// path-space coordinates.
func (p *Path) Transform(m Affine) *Path {
	out := &Path{Fill: p.Fill, Subpaths: make([]*Subpath, len(p.Subpaths))}
	for i, sp := range p.Subpaths {
		out.Subpaths[i] = sp.Transform(m)
	}
	return out
}

// CommandKind tags the abstract path command tokens the flattener accepts
// as input, before canonicalization to the Line/Quadratic/Z-only form.
type CommandKind int

const (
	CmdMoveTo CommandKind = iota
	CmdLineTo
	CmdHorizontalTo
	CmdVerticalTo
	CmdCubicTo
	CmdQuadTo
	CmdSmoothCubicTo
	CmdSmoothQuadTo
	CmdArcTo
	CmdClose
)

// Command is one token of an abstract, SVG-path-like input command
// stream: the flattener's input format before canonicalization. Points
// are absolute or relative to the prior current point according to
// Relative; unused point fields for a given Kind are simply ignored.
type Command struct {
	Kind     CommandKind
	Relative bool

	Point Point // endpoint, for commands that have one

	// Control points, used by CmdCubicTo (Control1, Control2), CmdQuadTo
	// (Control1), CmdSmoothCubicTo (Control2 only — Control1 is inferred
	// from the previous segment). CmdSmoothQuadTo uses neither; its
	// control point is inferred from the previous segment.
	Control1 Point
	Control2 Point

	// H/V single-axis endpoint.
	Axis float64

	// Arc parameters (CmdArcTo).
	RadiusX, RadiusY float64
	XAxisRotation    float64
	LargeArc, Sweep  bool
}
