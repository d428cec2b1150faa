package core

import "math"

// Rect is an axis-aligned bounding box. Min is the top-left corner,
// Max is the bottom-right corner. A Rect may be empty (zero size) but
// never has negative size: construction always normalizes Min <= Max.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two corner points, normalizing so
// that Min <= Max on both axes.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect {
	return Rect{}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.Max.X }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Max.Y }

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// UnionPoint returns the smallest rectangle containing both r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains returns true if the point is inside the rectangle (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// RoundOutToTiles expands r outward to the nearest multiple of the given
// tile size on each axis, as the tiler does to compute its strip/column
// bounds from a path's geometric extent.
func (r Rect) RoundOutToTiles(tileWidth, tileHeight int) Rect {
	tw, th := float64(tileWidth), float64(tileHeight)
	return Rect{
		Min: Point{X: math.Floor(r.Min.X/tw) * tw, Y: math.Floor(r.Min.Y/th) * th},
		Max: Point{X: math.Ceil(r.Max.X/tw) * tw, Y: math.Ceil(r.Max.Y/th) * th},
	}
}
