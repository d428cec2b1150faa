package flatten

import (
	"testing"

	"github.com/gogpu/tilerast/internal/core"
)

func TestCanonicalizeLineSquare(t *testing.T) {
	cmds := []core.Command{
		{Kind: core.CmdMoveTo, Point: core.Pt(0, 0)},
		{Kind: core.CmdLineTo, Point: core.Pt(10, 0)},
		{Kind: core.CmdLineTo, Point: core.Pt(10, 10)},
		{Kind: core.CmdLineTo, Point: core.Pt(0, 10)},
		{Kind: core.CmdClose},
	}
	p, err := Canonicalize(cmds, core.FillNonZero, core.DefaultConfig())
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	if len(p.Subpaths) != 1 {
		t.Fatalf("len(Subpaths) = %d, want 1", len(p.Subpaths))
	}
	sp := p.Subpaths[0]
	if !sp.Closed {
		t.Error("subpath should be closed")
	}
	edges := sp.Edges()
	if len(edges) != 4 {
		t.Fatalf("len(Edges()) = %d, want 4", len(edges))
	}
	for _, e := range edges {
		if !e.IsLine() {
			t.Errorf("edge %+v is not a line", e)
		}
	}
}

func TestCanonicalizeHVToLine(t *testing.T) {
	cmds := []core.Command{
		{Kind: core.CmdMoveTo, Point: core.Pt(0, 0)},
		{Kind: core.CmdHorizontalTo, Axis: 10},
		{Kind: core.CmdVerticalTo, Axis: 10},
	}
	p, err := Canonicalize(cmds, core.FillNonZero, core.DefaultConfig())
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	edges := p.Edges()
	if len(edges) != 2 {
		t.Fatalf("len(Edges()) = %d, want 2", len(edges))
	}
	if got := edges[0].To; !got.ApproxEq(core.Pt(10, 0)) {
		t.Errorf("H endpoint = %v, want (10,0)", got)
	}
	if got := edges[1].To; !got.ApproxEq(core.Pt(10, 10)) {
		t.Errorf("V endpoint = %v, want (10,10)", got)
	}
}

func TestCanonicalizeRelativeCoordinates(t *testing.T) {
	cmds := []core.Command{
		{Kind: core.CmdMoveTo, Point: core.Pt(5, 5)},
		{Kind: core.CmdLineTo, Relative: true, Point: core.Pt(5, 0)},
	}
	p, err := Canonicalize(cmds, core.FillNonZero, core.DefaultConfig())
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	edges := p.Edges()
	if got := edges[0].To; !got.ApproxEq(core.Pt(10, 5)) {
		t.Errorf("relative L endpoint = %v, want (10,5)", got)
	}
}

func TestCanonicalizeMoveToAlwaysStartsNewSubpath(t *testing.T) {
	cmds := []core.Command{
		{Kind: core.CmdMoveTo, Point: core.Pt(0, 0)},
		{Kind: core.CmdLineTo, Point: core.Pt(1, 0)},
		{Kind: core.CmdMoveTo, Point: core.Pt(5, 5)},
		{Kind: core.CmdLineTo, Point: core.Pt(6, 5)},
	}
	p, err := Canonicalize(cmds, core.FillNonZero, core.DefaultConfig())
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	if len(p.Subpaths) != 2 {
		t.Fatalf("len(Subpaths) = %d, want 2", len(p.Subpaths))
	}
}

func TestCanonicalizeMalformedSegment(t *testing.T) {
	cmds := []core.Command{
		{Kind: core.CmdLineTo, Point: core.Pt(1, 0)},
	}
	_, err := Canonicalize(cmds, core.FillNonZero, core.DefaultConfig())
	if err == nil {
		t.Fatal("expected error for L with no current point")
	}
	if _, ok := err.(*core.MalformedSegmentError); !ok {
		t.Errorf("error type = %T, want *core.MalformedSegmentError", err)
	}
}

func TestApproximateCubicOnlyQuadraticsOut(t *testing.T) {
	c := core.NewCubicBez(
		core.Pt(0, 0),
		core.Pt(0, 10),
		core.Pt(10, 10),
		core.Pt(10, 0),
	)
	quads, err := ApproximateCubic(c, 0.1, 32)
	if err != nil {
		t.Fatalf("ApproximateCubic() error = %v", err)
	}
	if len(quads) == 0 {
		t.Fatal("expected at least one quadratic")
	}
	if !quads[0].P0.ApproxEq(c.P0) {
		t.Errorf("first quad start = %v, want %v", quads[0].P0, c.P0)
	}
	last := quads[len(quads)-1]
	if !last.P2.ApproxEq(c.P3) {
		t.Errorf("last quad end = %v, want %v", last.P2, c.P3)
	}
	// Endpoints must chain continuously.
	for i := 1; i < len(quads); i++ {
		if !quads[i-1].P2.ApproxEq(quads[i].P0) {
			t.Errorf("quad chain discontinuity at %d: %v != %v", i, quads[i-1].P2, quads[i].P0)
		}
	}
}

func TestApproximateCubicStraightLineIsOneQuad(t *testing.T) {
	c := core.NewCubicBez(
		core.Pt(0, 0),
		core.Pt(3.33, 0),
		core.Pt(6.66, 0),
		core.Pt(10, 0),
	)
	quads, err := ApproximateCubic(c, 0.1, 32)
	if err != nil {
		t.Fatalf("ApproximateCubic() error = %v", err)
	}
	if len(quads) != 1 {
		t.Errorf("len(quads) = %d, want 1 for a collinear cubic", len(quads))
	}
}

func TestApproximateCubicDepthExceeded(t *testing.T) {
	c := core.NewCubicBez(
		core.Pt(0, 0),
		core.Pt(0, 1000),
		core.Pt(1000, -1000),
		core.Pt(10, 0),
	)
	_, err := ApproximateCubic(c, 1e-9, 2)
	if err == nil {
		t.Fatal("expected SubdivisionDepthExceededError with a tiny tolerance and depth cap")
	}
	if _, ok := err.(*core.SubdivisionDepthExceededError); !ok {
		t.Errorf("error type = %T, want *core.SubdivisionDepthExceededError", err)
	}
}
