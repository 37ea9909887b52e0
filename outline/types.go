// Package outline holds the two parallel outline representations named
// in spec.md §3.2: chain-coded COutline/CBlob (produced by an external
// edge extractor, preserving sub-pixel edge information) and polygonal
// Outline/PBlob (a lossy simplification). It also defines the chopped
// working representation TessLine/TBlob/TWerd used once a word enters
// the seam/chop subsystem, and the polygonal approximation algorithm
// (§4.2) that converts a COutline into a TessLine.
package outline

import (
	"errors"

	"github.com/katalvlaran/docseg/geometry"
)

// Sentinel errors for outline package operations.
var (
	// ErrStepCountExceeded indicates a chain-coded outline exceeded the
	// hard step-count limit intended to catch runaway outlines.
	ErrStepCountExceeded = errors.New("outline: chain-code step count exceeds limit")

	// ErrNotLegallyNested indicates a child outline's signed area does not
	// have the sign opposite its parent's, meaning containment has been
	// corrupted by the upstream edge extractor.
	ErrNotLegallyNested = errors.New("outline: child outline not legally nested in parent")

	// ErrEmptyOutline indicates an operation required at least one step
	// or point and received none.
	ErrEmptyOutline = errors.New("outline: outline has no steps")

	// ErrDegenerateVector names a zero-length direction vector. No
	// function in this package returns it: cutline meets a zero-length
	// |vecsum| by returning without fixing any point.
	ErrDegenerateVector = errors.New("outline: zero-length vector")
)

// MaxStepCount is the hard limit on chain-code steps per outline,
// guarding against runaway outlines from a misbehaving edge extractor.
const MaxStepCount = 16000

// ChainStep is one of the four chain-code directions.
type ChainStep uint8

// The four legal chain-code step directions.
const (
	StepRight ChainStep = iota // (1, 0)
	StepUp                     // (0, 1)
	StepLeft                   // (-1, 0)
	StepDown                   // (0, -1)
)

// Delta returns the unit displacement of the step.
func (s ChainStep) Delta() geometry.IPoint {
	switch s {
	case StepRight:
		return geometry.IPoint{X: 1, Y: 0}
	case StepUp:
		return geometry.IPoint{X: 0, Y: 1}
	case StepLeft:
		return geometry.IPoint{X: -1, Y: 0}
	default: // StepDown
		return geometry.IPoint{X: 0, Y: -1}
	}
}

// EdgeOffset carries sub-pixel edge-strength information for one
// chain-code step, when the edge extractor provides it.
type EdgeOffset struct {
	OffsetNumerator int8
	PixelDiff       uint8
	Direction       uint8
	// EdgeStrength is 0 when the gradient conflicts with the step
	// direction; such steps are skipped by classifiers.
	EdgeStrength uint8
}

// COutline is a chain-coded outline: a start position plus a sequence of
// unit steps, with optional per-step EdgeOffset, a cached bounding box,
// and child (hole) outlines.
type COutline struct {
	Start    geometry.IPoint
	Steps    []ChainStep
	Offsets  []EdgeOffset // parallel to Steps; nil if unavailable
	Box      geometry.Box
	Children []*COutline
}

// NewCOutline builds a COutline from steps, validating the hard step
// count limit and computing the bounding box.
func NewCOutline(start geometry.IPoint, steps []ChainStep) (*COutline, error) {
	if len(steps) > MaxStepCount {
		return nil, ErrStepCountExceeded
	}
	o := &COutline{Start: start, Steps: steps}
	o.Box = o.computeBox()

	return o, nil
}

func (o *COutline) computeBox() geometry.Box {
	pos := o.Start
	box := geometry.NewBox(pos, pos)
	for _, s := range o.Steps {
		d := s.Delta()
		pos = geometry.IPoint{X: pos.X + d.X, Y: pos.Y + d.Y}
		box = box.BoundingUnion(geometry.NewBox(pos, pos))
	}

	return box
}

// SignedArea returns twice the polygon area enclosed by the chain-code
// path (the shoelace formula over unit steps), whose sign distinguishes
// outer outlines from holes.
func (o *COutline) SignedArea() int64 {
	var area int64
	pos := o.Start
	for _, s := range o.Steps {
		d := s.Delta()
		next := geometry.IPoint{X: pos.X + d.X, Y: pos.Y + d.Y}
		area += int64(pos.X)*int64(next.Y) - int64(next.X)*int64(pos.Y)
		pos = next
	}

	return area
}

// ValidateNesting checks that every child's SignedArea sign is opposite
// this outline's, per spec.md §3.2's "legally nested" invariant.
func (o *COutline) ValidateNesting() error {
	parentSign := o.SignedArea() >= 0
	for _, c := range o.Children {
		if (c.SignedArea() >= 0) == parentSign {
			return ErrNotLegallyNested
		}
		if err := c.ValidateNesting(); err != nil {
			return err
		}
	}

	return nil
}

// CBlob is a chain-coded blob: a list of top-level COutlines it owns.
type CBlob struct {
	Outlines []*COutline
}

// BoundingBox returns the union of all outline boxes.
func (b *CBlob) BoundingBox() geometry.Box {
	if len(b.Outlines) == 0 {
		return geometry.EmptyBox()
	}
	box := b.Outlines[0].Box
	for _, o := range b.Outlines[1:] {
		box = box.BoundingUnion(o.Box)
	}

	return box
}
