package core

import "math"

// This pipeline only ever needs quadratic roots: internal/coverage's
// xAtY resolves where a quadratic edge's y(t) crosses a pixel-row
// boundary, and QuadBez/CubicBez.Extrema resolve where a curve's
// derivative vanishes on an axis (a cubic's derivative is itself
// quadratic, so even cubic extrema reduce to this). Neither call site
// ever hands this a genuine cubic to solve, so unlike a general-purpose
// curve library this file stops at degree two.

// SolveQuadratic finds the real roots of ax^2 + bx + c = 0, sorted in
// ascending order. a is allowed to be zero or to make the scaled
// coefficients overflow; both fall back gracefully rather than
// propagating Inf/NaN into the caller.
func SolveQuadratic(a, b, c float64) []float64 {
	scaledB, scaledC := b/a, c/a
	if !isFinite(scaledB) || !isFinite(scaledC) {
		return solveLinear(b, c)
	}
	return solveScaledQuadratic(scaledB, scaledC)
}

// solveScaledQuadratic solves x^2 + b*x + c = 0. The two roots are
// recovered without cancellation: the quadratic formula gives the root
// of larger magnitude directly, and Vieta's identity (r1*r2 = c)
// recovers the other without subtracting two nearly equal values, the
// failure mode a textbook quadratic formula hits near a double root.
func solveScaledQuadratic(b, c float64) []float64 {
	discriminant := b*b - 4*c
	switch {
	case !isFinite(discriminant):
		return solveDominantLinearTerm(b, c)
	case discriminant < 0:
		return nil
	case discriminant == 0:
		return []float64{-0.5 * b}
	}

	r1 := -0.5 * (b + math.Copysign(math.Sqrt(discriminant), b))
	r2 := c / r1
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// solveDominantLinearTerm handles the case where b*b overflows: b so
// dominates c that the quadratic term is negligible next to it, so one
// root is effectively -b and the second follows from r1*r2 = c.
func solveDominantLinearTerm(b, c float64) []float64 {
	r1 := -b
	r2 := c / r1
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// solveLinear handles a zero (or numerically negligible) leading
// coefficient by solving b*x + c = 0 directly.
func solveLinear(b, c float64) []float64 {
	if root := -c / b; isFinite(root) {
		return []float64{root}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

// SolveQuadraticInUnitInterval returns the roots of ax^2 + bx + c = 0
// that fall in [0, 1] — the Bezier-parameter range every caller in this
// pipeline actually wants — clamping roots within a small tolerance of
// either boundary back onto it rather than discarding them.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	roots := SolveQuadratic(a, b, c)
	if len(roots) == 0 {
		return nil
	}
	var out []float64
	for _, r := range roots {
		if r < -eps || r > 1+eps {
			continue
		}
		switch {
		case r < 0:
			r = 0
		case r > 1:
			r = 1
		}
		out = append(out, r)
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
