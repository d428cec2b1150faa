package core

import (
	"math"
	"testing"
)

func TestIdentityAffine(t *testing.T) {
	m := IdentityAffine()
	if !m.IsIdentity() {
		t.Error("IdentityAffine should report IsIdentity")
	}
	p := Pt(7, -3)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("TransformPoint under identity = %v, want %v", got, p)
	}
}

func TestTranslateAffine(t *testing.T) {
	cases := []struct {
		name   string
		tx, ty float64
		in     Point
		want   Point
	}{
		{"positive", 5, 10, Pt(0, 0), Pt(5, 10)},
		{"negative", -5, -10, Pt(10, 20), Pt(5, 10)},
		{"zero", 0, 0, Pt(10, 20), Pt(10, 20)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := TranslateAffine(c.tx, c.ty)
			if got := m.TransformPoint(c.in); got != c.want {
				t.Errorf("TransformPoint = %v, want %v", got, c.want)
			}
			if !m.IsTranslation() {
				t.Error("TranslateAffine should report IsTranslation")
			}
		})
	}
}

func TestScaleAffine(t *testing.T) {
	m := ScaleAffine(2, 3)
	if got := m.TransformPoint(Pt(5, 5)); got != Pt(10, 15) {
		t.Errorf("TransformPoint = %v, want (10,15)", got)
	}
}

func TestRotateAffine(t *testing.T) {
	m := RotateAffine(math.Pi / 2)
	got := m.TransformPoint(Pt(1, 0))
	if !got.ApproxEq(Pt(0, 1)) {
		t.Errorf("RotateAffine(pi/2).TransformPoint((1,0)) = %v, want (0,1)", got)
	}
}

func TestAffineMultiply(t *testing.T) {
	// Translate then scale should apply translate first, scale second.
	translate := TranslateAffine(1, 0)
	scale := ScaleAffine(2, 2)
	combined := translate.Multiply(scale)
	got := combined.TransformPoint(Pt(0, 0))
	if got != Pt(2, 0) {
		t.Errorf("Multiply order: got %v, want (2,0)", got)
	}
}

func TestAffineTransformVectorIgnoresTranslation(t *testing.T) {
	m := TranslateAffine(100, 100)
	got := m.TransformVector(Pt(1, 1))
	if got != Pt(1, 1) {
		t.Errorf("TransformVector = %v, want (1,1) unaffected by translation", got)
	}
}

func TestAffineInvert(t *testing.T) {
	m := TranslateAffine(3, 4).Multiply(ScaleAffine(2, 2))
	inv := m.Invert()
	p := Pt(11, 17)
	got := inv.TransformPoint(m.TransformPoint(p))
	if !got.ApproxEq(p) {
		t.Errorf("round trip through Invert = %v, want %v", got, p)
	}
}

func TestAffineInvertSingular(t *testing.T) {
	singular := Affine{A: 1, B: 1, C: 0, D: 1, E: 1, F: 0}
	if got := singular.Invert(); !got.IsIdentity() {
		t.Errorf("Invert of singular matrix = %v, want identity fallback", got)
	}
}
