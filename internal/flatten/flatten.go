// Package flatten canonicalizes an abstract path command stream into a
// core.Path containing only line and quadratic segments in absolute
// coordinates, approximating cubic and arc segments within a tolerance.
package flatten

import (
	"context"
	"log/slog"
	"math"

	"github.com/gogpu/tilerast/internal/core"
)

// Canonicalize converts a command stream — which may use M, L, H, V, C,
// Q, S, T, A, Z in either absolute or relative form — into a Path whose
// subpaths contain only line and quadratic segments in absolute
// coordinates. Cubic segments are approximated by one or more quadratics
// within cfg.FlattenTolerance; arcs are approximated by a single chord to
// their endpoint (full elliptical-arc flattening is an external
// collaborator's responsibility per the core's scope).
func Canonicalize(cmds []core.Command, fill core.FillRule, cfg core.Config) (*core.Path, error) {
	st := &state{path: core.NewPath(fill), cfg: cfg}
	for _, c := range cmds {
		if err := st.apply(c); err != nil {
			return nil, err
		}
	}
	return st.path, nil
}

type state struct {
	path *core.Path
	cfg  core.Config

	current   core.Point
	subpath   *core.Subpath
	haveCur   bool
	lastCubic bool // true if the previous command was C/S (for smooth reflection)
	lastQuad  bool // true if the previous command was Q/T
	lastCtrl  core.Point
}

func (s *state) abs(p core.Point, relative bool) core.Point {
	if relative {
		return s.current.Add(p)
	}
	return p
}

func (s *state) apply(c core.Command) error {
	switch c.Kind {
	case core.CmdMoveTo:
		p := s.abs(c.Point, c.Relative)
		s.subpath = s.path.MoveTo(p)
		s.current = p
		s.haveCur = true
		s.lastCubic, s.lastQuad = false, false

	case core.CmdLineTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "L", Reason: "no current point"}
		}
		p := s.abs(c.Point, c.Relative)
		s.subpath.LineTo(p)
		s.current = p
		s.lastCubic, s.lastQuad = false, false

	case core.CmdHorizontalTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "H", Reason: "no current point"}
		}
		x := c.Axis
		if c.Relative {
			x += s.current.X
		}
		p := core.Pt(x, s.current.Y)
		s.subpath.LineTo(p)
		s.current = p
		s.lastCubic, s.lastQuad = false, false

	case core.CmdVerticalTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "V", Reason: "no current point"}
		}
		y := c.Axis
		if c.Relative {
			y += s.current.Y
		}
		p := core.Pt(s.current.X, y)
		s.subpath.LineTo(p)
		s.current = p
		s.lastCubic, s.lastQuad = false, false

	case core.CmdQuadTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "Q", Reason: "no current point"}
		}
		ctrl := s.abs(c.Control1, c.Relative)
		p := s.abs(c.Point, c.Relative)
		s.subpath.QuadTo(ctrl, p)
		s.current = p
		s.lastCtrl = ctrl
		s.lastQuad, s.lastCubic = true, false

	case core.CmdSmoothQuadTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "T", Reason: "no current point"}
		}
		ctrl := s.current
		if s.lastQuad {
			ctrl = reflect(s.lastCtrl, s.current)
		}
		p := s.abs(c.Point, c.Relative)
		s.subpath.QuadTo(ctrl, p)
		s.current = p
		s.lastCtrl = ctrl
		s.lastQuad, s.lastCubic = true, false

	case core.CmdCubicTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "C", Reason: "no current point"}
		}
		c1 := s.abs(c.Control1, c.Relative)
		c2 := s.abs(c.Control2, c.Relative)
		p := s.abs(c.Point, c.Relative)
		if err := s.emitCubic(s.current, c1, c2, p); err != nil {
			return err
		}
		s.current = p
		s.lastCtrl = c2
		s.lastCubic, s.lastQuad = true, false

	case core.CmdSmoothCubicTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "S", Reason: "no current point"}
		}
		c1 := s.current
		if s.lastCubic {
			c1 = reflect(s.lastCtrl, s.current)
		}
		c2 := s.abs(c.Control2, c.Relative)
		p := s.abs(c.Point, c.Relative)
		if err := s.emitCubic(s.current, c1, c2, p); err != nil {
			return err
		}
		s.current = p
		s.lastCtrl = c2
		s.lastCubic, s.lastQuad = true, false

	case core.CmdArcTo:
		if !s.haveCur {
			return &core.MalformedSegmentError{Command: "A", Reason: "no current point"}
		}
		p := s.abs(c.Point, c.Relative)
		s.subpath.LineTo(p)
		s.current = p
		s.lastCubic, s.lastQuad = false, false

	case core.CmdClose:
		if s.subpath != nil {
			s.subpath.Close()
			if len(s.subpath.Endpoints) > 0 {
				s.current = s.subpath.Endpoints[0]
			}
		}
		s.lastCubic, s.lastQuad = false, false

	default:
		return &core.MalformedSegmentError{Command: "?", Reason: "unrecognized command kind"}
	}
	return nil
}

// reflect mirrors ctrl through pivot — the construction S/T commands use
// to infer a missing leading control point from the previous segment.
func reflect(ctrl, pivot core.Point) core.Point {
	return core.Pt(2*pivot.X-ctrl.X, 2*pivot.Y-ctrl.Y)
}

// emitCubic approximates a cubic segment with one or more quadratics
// within the configured tolerance and appends them to the current
// subpath.
func (s *state) emitCubic(p0, p1, p2, p3 core.Point) error {
	quads, err := ApproximateCubic(core.NewCubicBez(p0, p1, p2, p3), s.cfg.FlattenTolerance, s.cfg.MaxSubdivisionDepth)
	if err != nil {
		return err
	}
	for _, q := range quads {
		s.subpath.QuadTo(q.P1, q.P2)
	}
	return nil
}

// worklistItem is one pending cubic segment awaiting either direct
// approximation or further subdivision.
type worklistItem struct {
	cubic core.CubicBez
	depth int
}

// ApproximateCubic approximates a cubic Bezier with a sequence of
// quadratics such that each quadratic's deviation from its source cubic
// segment, per Fischer's delta-control-point bound, is within tolerance.
// Segments that do not converge are subdivided via de Casteljau at
// t=0.5 and re-queued, up to maxDepth subdivisions per branch.
func ApproximateCubic(c core.CubicBez, tolerance float64, maxDepth int) ([]core.QuadBez, error) {
	var out []core.QuadBez
	work := []worklistItem{{cubic: c, depth: 0}}
	maxDepthSeen := 0

	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]

		q, errEst := fischerApprox(item.cubic)
		if errEst <= tolerance {
			out = append(out, q)
			if item.depth > maxDepthSeen {
				maxDepthSeen = item.depth
			}
			continue
		}
		if item.depth >= maxDepth {
			return nil, &core.SubdivisionDepthExceededError{MaxDepth: maxDepth}
		}
		left, right := item.cubic.Subdivide(0.5)
		// Push right first so left is processed first (stack order),
		// preserving left-to-right emission order in out.
		work = append(work, worklistItem{cubic: right, depth: item.depth + 1})
		work = append(work, worklistItem{cubic: left, depth: item.depth + 1})
	}

	core.Logger().LogAttrs(context.Background(), slog.LevelDebug, "approximated cubic segment",
		slog.Int("quads", len(out)), slog.Int("subdivision_depth", maxDepthSeen))

	return out, nil
}

// fischerApprox computes the single best-fit quadratic approximation of
// a cubic segment and an estimate of the approximation error, using
// Fischer's delta-control-point bound:
//
//	δ0 = p0 - 3p1 + 3p2 - p3   (mirrored for δ1)
//	error ≈ max(|δ0|, |δ1|) / 6
//
// and a quadratic control point at the average of the two half-control
// points, (3p1 - p0 + 3p2 - p3) / 4 for cubic control points p1, p2.
func fischerApprox(c core.CubicBez) (core.QuadBez, float64) {
	d0 := core.Pt(
		c.P0.X-3*c.P1.X+3*c.P2.X-c.P3.X,
		c.P0.Y-3*c.P1.Y+3*c.P2.Y-c.P3.Y,
	)
	d1 := core.Pt(-d0.X, -d0.Y)

	errEst := math.Max(d0.Length(), d1.Length()) / 6.0

	// Half-control points, per the de Casteljau-consistent two-quadratic
	// construction: c0 extends P0->P1 by half again, c1 extends P3->P2.
	// Their average is (3P1 - P0 + 3P2 - P3) / 4.
	c0 := core.Pt(1.5*c.P1.X-0.5*c.P0.X, 1.5*c.P1.Y-0.5*c.P0.Y)
	c1 := core.Pt(1.5*c.P2.X-0.5*c.P3.X, 1.5*c.P2.Y-0.5*c.P3.Y)
	ctrl := core.Pt((c0.X+c1.X)/2, (c0.Y+c1.Y)/2)

	return core.NewQuadBez(c.P0, ctrl, c.P3), errEst
}
