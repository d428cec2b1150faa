// Package core holds the geometry primitives, path representation, and
// configuration types shared by every stage of the rasterizer pipeline.
// It is deliberately a leaf package: the public tilerast package imports
// it and re-exports its types, and every other internal package imports
// it too, so core itself must never import back up to tilerast.
package core

import "math"

// Epsilon is the default tolerance for approximate equality comparisons
// used throughout the geometry pipeline (spec default: 1e-6).
const Epsilon = 1e-6

// ApproxEq reports whether a and b are within Epsilon of each other.
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Lerp performs unclamped linear interpolation between a and b.
// t=0 returns a, t=1 returns b; values outside [0,1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Point represents a 2D point or displacement vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar), the z-component of the
// 3D cross product with z=0.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction, or the zero
// vector if p has zero length.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: Lerp(p.X, q.X, t), Y: Lerp(p.Y, q.Y, t)}
}

// ApproxEq reports whether p and q are within Epsilon of each other on
// both axes.
func (p Point) ApproxEq(q Point) bool {
	return ApproxEq(p.X, q.X) && ApproxEq(p.Y, q.Y)
}

// Cross3 computes the cross product of two homogeneous 3-vectors. The
// interval engine uses this to intersect two lines in closed form via
// their homogeneous line coordinates.
func Cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
