package structunit

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/docseg/denorm"
	"github.com/katalvlaran/docseg/geometry"
)

// Block is a polygonal layout region (produced by the external layout
// analyzer, spec.md §6.1) owning a row list plus the three rotations the
// core consults for denormalization and classification.
type Block struct {
	ID uuid.UUID

	// Polygon is the boundary as alternating left/right side vertices,
	// per spec.md §3.3; its bounding box equals Box.
	Polygon []geometry.IPoint
	Box     geometry.Box

	Rows []*Row

	// ReRotation maps layout space back to image space.
	ReRotation denorm.Rotation
	// ClassifyRotation maps image space to classifier space, consulted
	// inside the secondary normalization step (spec.md §6.1).
	ClassifyRotation denorm.Rotation
	// Skew is the horizontal direction in image coordinates.
	Skew denorm.Rotation

	Filename      string
	MedianBlobSize float32
	FixedPitch    bool
	XHeight       float32
}

// NewBlock constructs an empty Block with identity rotations.
func NewBlock() *Block {
	identity := denorm.Identity()

	return &Block{
		ID:               uuid.New(),
		ReRotation:       identity,
		ClassifyRotation: identity,
		Skew:             identity,
	}
}

// RecalcBox recomputes Box from Polygon's bounding extent.
func (b *Block) RecalcBox() {
	if len(b.Polygon) == 0 {
		b.Box = geometry.EmptyBox()

		return
	}
	box := geometry.NewBox(b.Polygon[0], b.Polygon[0])
	for _, p := range b.Polygon[1:] {
		box = box.BoundingUnion(geometry.NewBox(p, p))
	}
	b.Box = box
}
