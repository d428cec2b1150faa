package core

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, 4)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := q.Sub(p); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2,2)", got)
	}
	if got := p.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
	if got := q.Div(2); got != Pt(1.5, 2) {
		t.Errorf("Div = %v, want (1.5,2)", got)
	}
}

func TestPointDotCross(t *testing.T) {
	cases := []struct {
		name     string
		p, q     Point
		wantDot  float64
		wantCrss float64
	}{
		{"orthogonal", Pt(1, 0), Pt(0, 1), 0, 1},
		{"parallel", Pt(2, 0), Pt(3, 0), 6, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.Dot(c.q); got != c.wantDot {
				t.Errorf("Dot = %v, want %v", got, c.wantDot)
			}
			if got := c.p.Cross(c.q); got != c.wantCrss {
				t.Errorf("Cross = %v, want %v", got, c.wantCrss)
			}
		})
	}
}

func TestPointLength(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
	if got := Pt(0, 0).Distance(Pt(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointNormalize(t *testing.T) {
	got := Pt(3, 4).Normalize()
	if !got.ApproxEq(Pt(0.6, 0.8)) {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", got)
	}
	if got := Pt(0, 0).Normalize(); got != (Point{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}

func TestPointRotate(t *testing.T) {
	got := Pt(1, 0).Rotate(math.Pi / 2)
	if !got.ApproxEq(Pt(0, 1)) {
		t.Errorf("Rotate(pi/2) = %v, want (0,1)", got)
	}
}

func TestPointLerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(10, 20)
	if got := p.Lerp(q, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp(0.5) = %v, want (5,10)", got)
	}
	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want p", got)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want q", got)
	}
}

func TestPointApproxEq(t *testing.T) {
	if !Pt(1, 1).ApproxEq(Pt(1+Epsilon/2, 1)) {
		t.Error("points within epsilon should compare equal")
	}
	if Pt(1, 1).ApproxEq(Pt(1.1, 1)) {
		t.Error("points far apart should not compare equal")
	}
}

func TestCross3(t *testing.T) {
	// The cross product of two homogeneous line coordinates gives their
	// intersection point in homogeneous form; crossing the x-axis and
	// y-axis lines should recover the origin.
	xAxis := [3]float64{0, 1, 0}
	yAxis := [3]float64{1, 0, 0}
	got := Cross3(xAxis, yAxis)
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("Cross3 origin coords = (%v, %v), want (0, 0)", got[0], got[1])
	}
}
