package core

import "testing"

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(0, 0))
	if r.Min != (Point{}) || r.Max != Pt(10, 10) {
		t.Errorf("NewRect did not normalize: %+v", r)
	}
}

func TestRectDimensions(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(4, 6))
	if got := r.Width(); got != 4 {
		t.Errorf("Width = %v, want 4", got)
	}
	if got := r.Height(); got != 6 {
		t.Errorf("Height = %v, want 6", got)
	}
	if got := r.MaxX(); got != 4 {
		t.Errorf("MaxX = %v, want 4", got)
	}
	if got := r.MaxY(); got != 6 {
		t.Errorf("MaxY = %v, want 6", got)
	}
}

func TestRectEmpty(t *testing.T) {
	if !EmptyRect().Empty() {
		t.Error("EmptyRect should report Empty")
	}
	if NewRect(Pt(0, 0), Pt(1, 1)).Empty() {
		t.Error("non-degenerate rect should not report Empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(Pt(0, 0), Pt(2, 2))
	b := NewRect(Pt(1, 1), Pt(4, 3))
	got := a.Union(b)
	want := NewRect(Pt(0, 0), Pt(4, 3))
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestRectUnionPoint(t *testing.T) {
	a := NewRect(Pt(0, 0), Pt(2, 2))
	got := a.UnionPoint(Pt(5, -1))
	want := NewRect(Pt(0, -1), Pt(5, 2))
	if got != want {
		t.Errorf("UnionPoint = %+v, want %+v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10))
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(10, 10), true},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRectRoundOutToTiles(t *testing.T) {
	r := NewRect(Pt(3, 3), Pt(17, 30))
	got := r.RoundOutToTiles(16, 16)
	want := NewRect(Pt(0, 0), Pt(32, 32))
	if got != want {
		t.Errorf("RoundOutToTiles = %+v, want %+v", got, want)
	}
}
