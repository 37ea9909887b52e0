package geometry

import (
	"math"
)

const maxInt16 = math.MaxInt16

// Box is an axis-aligned rectangle, bl (bottom-left) and tr (top-right).
// Empty iff bl.X >= tr.X or bl.Y >= tr.Y.
//
// Complexity: every method here is O(1).
type Box struct {
	Bl IPoint
	Tr IPoint
}

// NewBox builds a Box from the two opposite corners, without normalizing
// coordinate order: a bl that is not below-left of tr gives an empty Box.
func NewBox(bl, tr IPoint) Box { return Box{Bl: bl, Tr: tr} }

// NewBoxFromCoords is a convenience constructor matching the common
// (left, bottom, right, top) literal order used throughout the tests.
func NewBoxFromCoords(left, bottom, right, top int16) Box {
	return Box{Bl: IPoint{X: left, Y: bottom}, Tr: IPoint{X: right, Y: top}}
}

// EmptyBox returns the canonical empty box sentinel used by Intersection:
// (MAX_INT16, MAX_INT16, -MAX_INT16, -MAX_INT16).
func EmptyBox() Box {
	return Box{
		Bl: IPoint{X: maxInt16, Y: maxInt16},
		Tr: IPoint{X: -maxInt16, Y: -maxInt16},
	}
}

// IsEmpty reports whether the box has non-positive extent on either axis.
func (b Box) IsEmpty() bool { return b.Bl.X >= b.Tr.X || b.Bl.Y >= b.Tr.Y }

// Width returns tr.X - bl.X (may be negative for a degenerate box).
func (b Box) Width() int16 { return b.Tr.X - b.Bl.X }

// Height returns tr.Y - bl.Y.
func (b Box) Height() int16 { return b.Tr.Y - b.Bl.Y }

// Area returns width*height, clamped to 0 for an empty box.
func (b Box) Area() int32 {
	if b.IsEmpty() {
		return 0
	}
	return int32(b.Width()) * int32(b.Height())
}

// Overlap reports whether the open interiors of b and other intersect on
// both axes. Touching edges do not count as overlap.
func (b Box) Overlap(other Box) bool {
	return b.Bl.X < other.Tr.X && b.Tr.X > other.Bl.X &&
		b.Bl.Y < other.Tr.Y && b.Tr.Y > other.Bl.Y
}

// MajorOverlap reports whether b and other overlap by at least half the
// narrower extent on both axes.
func (b Box) MajorOverlap(other Box) bool {
	xOverlap := min16(b.Tr.X, other.Tr.X) - max16(b.Bl.X, other.Bl.X)
	if int32(xOverlap)*2 < int32(min16(b.Width(), other.Width())) {
		return false
	}
	yOverlap := min16(b.Tr.Y, other.Tr.Y) - max16(b.Bl.Y, other.Bl.Y)

	return int32(yOverlap)*2 >= int32(min16(b.Height(), other.Height()))
}

// XOverlap returns the signed overlap of the two x-intervals (negative
// when they do not overlap).
func (b Box) XOverlap(other Box) int16 {
	return min16(b.Tr.X, other.Tr.X) - max16(b.Bl.X, other.Bl.X)
}

// YOverlap is the y-axis analogue of XOverlap.
func (b Box) YOverlap(other Box) int16 {
	return min16(b.Tr.Y, other.Tr.Y) - max16(b.Bl.Y, other.Bl.Y)
}

// MajorXOverlap reports whether the x-intervals overlap by at least half
// of the narrower width.
func (b Box) MajorXOverlap(other Box) bool {
	return int32(b.XOverlap(other))*2 >= int32(min16(b.Width(), other.Width()))
}

// MajorYOverlap is the y-axis analogue of MajorXOverlap.
func (b Box) MajorYOverlap(other Box) bool {
	return int32(b.YOverlap(other))*2 >= int32(min16(b.Height(), other.Height()))
}

// XGap returns the x distance between the two boxes; negative when the
// x-intervals overlap (the magnitude of the overlap, reduced toward 0 by
// the closer-fitting orientation).
func (b Box) XGap(other Box) int16 {
	return max16(b.Bl.X-other.Tr.X, other.Bl.X-b.Tr.X)
}

// YGap is the y-axis analogue of XGap.
func (b Box) YGap(other Box) int16 {
	return max16(b.Bl.Y-other.Tr.Y, other.Bl.Y-b.Tr.Y)
}

// Intersection returns the component-wise inner box, or the canonical
// EmptyBox sentinel when b and other do not overlap.
func (b Box) Intersection(other Box) Box {
	if !b.Overlap(other) {
		return EmptyBox()
	}

	return Box{
		Bl: IPoint{X: max16(b.Bl.X, other.Bl.X), Y: max16(b.Bl.Y, other.Bl.Y)},
		Tr: IPoint{X: min16(b.Tr.X, other.Tr.X), Y: min16(b.Tr.Y, other.Tr.Y)},
	}
}

// BoundingUnion returns the minimum enclosing box of b and other.
func (b Box) BoundingUnion(other Box) Box {
	return Box{
		Bl: IPoint{X: min16(b.Bl.X, other.Bl.X), Y: min16(b.Bl.Y, other.Bl.Y)},
		Tr: IPoint{X: max16(b.Tr.X, other.Tr.X), Y: max16(b.Tr.Y, other.Tr.Y)},
	}
}

// OverlapFraction returns area(b∩other)/area(b), or 0 when b is empty.
func (b Box) OverlapFraction(other Box) float32 {
	area := b.Area()
	if area <= 0 {
		return 0
	}

	return float32(b.Intersection(other).Area()) / float32(area)
}

// XOverlapFraction returns the fraction of b's x-extent covered by other's
// x-interval. When b has zero x-extent, returns 1 if b's x lies within
// other's x-interval, else 0.
func (b Box) XOverlapFraction(other Box) float32 {
	if b.Width() == 0 {
		if b.Bl.X >= other.Bl.X && b.Bl.X <= other.Tr.X {
			return 1
		}

		return 0
	}
	ov := b.XOverlap(other)
	if ov <= 0 {
		return 0
	}

	return float32(ov) / float32(b.Width())
}

// YOverlapFraction is the y-axis analogue of XOverlapFraction.
func (b Box) YOverlapFraction(other Box) float32 {
	if b.Height() == 0 {
		if b.Bl.Y >= other.Bl.Y && b.Bl.Y <= other.Tr.Y {
			return 1
		}

		return 0
	}
	ov := b.YOverlap(other)
	if ov <= 0 {
		return 0
	}

	return float32(ov) / float32(b.Height())
}

// XAlmostEqual reports whether the x-extents match within tolerance.
func (b Box) XAlmostEqual(other Box, tolerance int16) bool {
	return abs16(b.Bl.X-other.Bl.X) <= tolerance && abs16(b.Tr.X-other.Tr.X) <= tolerance
}

// AlmostEqual reports whether both axes match within tolerance.
func (b Box) AlmostEqual(other Box, tolerance int16) bool {
	return b.XAlmostEqual(other, tolerance) &&
		abs16(b.Bl.Y-other.Bl.Y) <= tolerance && abs16(b.Tr.Y-other.Tr.Y) <= tolerance
}

// Rotate rotates the two stored corners by the unit direction (cx, cy).
// It does not guarantee containment of the rotated shape; use RotateLarge
// for that.
func (b Box) Rotate(cx, cy float32) Box {
	return Box{Bl: b.Bl.Rotate(cx, cy), Tr: b.Tr.Rotate(cx, cy)}
}

// RotateLarge rotates all four corners of b by (cx, cy) and returns their
// bounding union, guaranteeing the result contains the rotated shape.
func (b Box) RotateLarge(cx, cy float32) Box {
	corners := [4]IPoint{
		b.Bl,
		{X: b.Tr.X, Y: b.Bl.Y},
		b.Tr,
		{X: b.Bl.X, Y: b.Tr.Y},
	}
	result := Box{Bl: IPoint{X: maxInt16, Y: maxInt16}, Tr: IPoint{X: -maxInt16, Y: -maxInt16}}
	for _, c := range corners {
		r := c.Rotate(cx, cy)
		result.Bl.X = min16(result.Bl.X, r.X)
		result.Bl.Y = min16(result.Bl.Y, r.Y)
		result.Tr.X = max16(result.Tr.X, r.X)
		result.Tr.Y = max16(result.Tr.Y, r.Y)
	}

	return result
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}

	return b
}

func max16(a, b int16) int16 {
	if a > b {
		return a
	}

	return b
}

func abs16(a int16) int16 {
	if a < 0 {
		return -a
	}

	return a
}
