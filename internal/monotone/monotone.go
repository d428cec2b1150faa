// Package monotone splits quadratic edges so that each resulting piece is
// monotone in both x and y, a precondition the edge/interval engine and
// the tiler both rely on.
package monotone

import "github.com/gogpu/tilerast/internal/core"

// Split decomposes e into one or more edges, each monotone in x and in y.
// Line edges are trivially monotone and are returned unchanged. A
// quadratic edge is split wherever its control coordinate falls outside
// the range spanned by its endpoints on a given axis, using:
//
//	t = (p0.k - c.k) / (p0.k - 2c.k + p1.k)   for axis k in {x, y}
//
// A split parameter outside [-ε, 1+ε] indicates malformed edge data and
// is reported as a DegenerateControlPointError rather than silently
// clamped.
func Split(e core.Edge) ([]core.Edge, error) {
	if e.IsLine() {
		return []core.Edge{e}, nil
	}

	pieces := []core.Edge{e}
	pieces, err := splitAxis(pieces, axisX)
	if err != nil {
		return nil, err
	}
	pieces, err = splitAxis(pieces, axisY)
	if err != nil {
		return nil, err
	}
	return pieces, nil
}

// SplitAll applies Split to every edge in order, concatenating results.
func SplitAll(edges []core.Edge) ([]core.Edge, error) {
	var out []core.Edge
	for _, e := range edges {
		pieces, err := Split(e)
		if err != nil {
			return nil, err
		}
		out = append(out, pieces...)
	}
	return out, nil
}

type axis int

const (
	axisX axis = iota
	axisY
)

func coord(p core.Point, a axis) float64 {
	if a == axisX {
		return p.X
	}
	return p.Y
}

func splitAxis(edges []core.Edge, a axis) ([]core.Edge, error) {
	var out []core.Edge
	for _, e := range edges {
		if e.IsLine() {
			out = append(out, e)
			continue
		}
		t, needsSplit, err := splitParam(e, a)
		if err != nil {
			return nil, err
		}
		if !needsSplit {
			out = append(out, e)
			continue
		}
		left, right := e.Subdivide(t)
		// Recurse: the sub-pieces can themselves still be non-monotone
		// (e.g. a cusp control point), so re-check each half.
		moreLeft, err := splitAxis([]core.Edge{left}, a)
		if err != nil {
			return nil, err
		}
		moreRight, err := splitAxis([]core.Edge{right}, a)
		if err != nil {
			return nil, err
		}
		out = append(out, moreLeft...)
		out = append(out, moreRight...)
	}
	return out, nil
}

// splitParam reports the split parameter for e on axis a, and whether a
// split is needed at all (the control coordinate already lies within the
// endpoint range requires no split).
func splitParam(e core.Edge, a axis) (t float64, needsSplit bool, err error) {
	p0k := coord(e.From, a)
	p1k := coord(e.To, a)
	ck := coord(e.Control, a)

	lo, hi := p0k, p1k
	if lo > hi {
		lo, hi = hi, lo
	}
	if ck >= lo && ck <= hi {
		return 0, false, nil
	}

	denom := p0k - 2*ck + p1k
	if denom == 0 {
		// No interior extremum on this axis (degenerates to linear in k);
		// nothing to split.
		return 0, false, nil
	}
	t = (p0k - ck) / denom

	const eps = core.Epsilon
	if t < -eps || t > 1+eps {
		axisName := "x"
		if a == axisY {
			axisName = "y"
		}
		return 0, false, &core.DegenerateControlPointError{Axis: axisName, Param: t}
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t, true, nil
}
