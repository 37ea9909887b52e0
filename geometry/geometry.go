// Package geometry provides the integer/float point and axis-aligned
// rectangle primitives shared by every other package in this module:
// outlines, chopping, denormalization and the structural units all
// measure positions and extents in terms of IPoint, FPoint and Box.
//
// Complexity: every operation here is O(1).
package geometry

import "math"

// IPoint is an integer point in image or blob-local coordinates.
type IPoint struct {
	X int16
	Y int16
}

// FPoint is a floating-point point, used once coordinates leave the
// integer pixel grid (polygonal approximation, denormalization).
type FPoint struct {
	X float32
	Y float32
}

// NewIPoint constructs an IPoint.
func NewIPoint(x, y int16) IPoint { return IPoint{X: x, Y: y} }

// NewFPoint constructs an FPoint.
func NewFPoint(x, y float32) FPoint { return FPoint{X: x, Y: y} }

// Rotate maps p by the unit direction (cx, cy) with cx²+cy² == 1:
// (x, y) -> (x·cx - y·cy, x·cy + y·cx).
func (p FPoint) Rotate(cx, cy float32) FPoint {
	return FPoint{
		X: p.X*cx - p.Y*cy,
		Y: p.X*cy + p.Y*cx,
	}
}

// ReverseRotate undoes Rotate(cx, cy): it rotates by (cx, -cy).
func (p FPoint) ReverseRotate(cx, cy float32) FPoint {
	return p.Rotate(cx, -cy)
}

// Add returns the component-wise sum.
func (p FPoint) Add(o FPoint) FPoint { return FPoint{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub returns the component-wise difference p - o.
func (p FPoint) Sub(o FPoint) FPoint { return FPoint{X: p.X - o.X, Y: p.Y - o.Y} }

// Length returns the Euclidean length of p treated as a vector.
func (p FPoint) Length() float32 {
	return float32(math.Sqrt(float64(p.X)*float64(p.X) + float64(p.Y)*float64(p.Y)))
}

// Cross returns the 2-D cross product (scalar) of p and o.
func (p FPoint) Cross(o FPoint) float32 { return p.X*o.Y - p.Y*o.X }

// ToFPoint widens an IPoint to floating point.
func (p IPoint) ToFPoint() FPoint { return FPoint{X: float32(p.X), Y: float32(p.Y)} }

// Rotate maps p by the unit direction (cx, cy), rounding back to int16.
func (p IPoint) Rotate(cx, cy float32) IPoint {
	r := p.ToFPoint().Rotate(cx, cy)
	return IPoint{X: int16(math.Round(float64(r.X))), Y: int16(math.Round(float64(r.Y)))}
}
