// Package seam implements the chopping/seam subsystem of spec.md §3.5
// and §4.3, grounded on ccstruct/seam.{h,cpp}: splits between chopped
// blobs, a seam array parallel to the chopped blob list, width
// accounting, and the hide/reveal join protocol.
package seam

import (
	"errors"

	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
)

// Sentinel errors for seam package operations.
var (
	// ErrSplitNotFound indicates account_splits walked the whole word
	// without locating every split of a seam (a structural invariant
	// violation per spec.md §7).
	ErrSplitNotFound = errors.New("seam: split not found in blob")

	// ErrTooManySplits indicates an attempt to exceed the 3-split limit
	// on a single Seam.
	ErrTooManySplits = errors.New("seam: a seam holds at most 3 splits")

	// ErrInsertionIllegal indicates a proposed seam insertion disturbs a
	// pre-existing seam whose width cannot be re-accounted.
	ErrInsertionIllegal = errors.New("seam: insertion disturbs an unaccountable seam")
)

// maxSplitsPerSeam bounds Seam.Splits, per ccstruct/seam.h.
const maxSplitsPerSeam = 3

// Split describes two EdgePoints that, when connected, cut a single
// blob into two pieces.
type Split struct {
	Point1 *outline.EdgePoint
	Point2 *outline.EdgePoint
}

// Seam bundles up to three Splits and is associated with one index in a
// SeamArray parallel to the chopped blob list.
type Seam struct {
	Priority float32 // quality of the cut; 0 = hidden
	WidthP   int8    // chopped blobs spanned on the left
	WidthN   int8    // chopped blobs spanned on the right
	Location geometry.IPoint
	Splits   []Split
}

// NewSeam constructs a Seam from up to 3 splits.
func NewSeam(priority float32, location geometry.IPoint, splits ...Split) (*Seam, error) {
	if len(splits) > maxSplitsPerSeam {
		return nil, ErrTooManySplits
	}

	return &Seam{Priority: priority, Location: location, Splits: splits}, nil
}

// SeamArray is the parallel array of seams between consecutive chopped
// blobs; len(SeamArray) == numChopped-1 for a well-formed word.
type SeamArray []*Seam

// FindSplitInBlob reports whether some outline in blob contains either
// of split's EdgePoint positions, grounded on seam.cpp's
// find_split_in_blob.
func FindSplitInBlob(split Split, blob *outline.TBlob) bool {
	return ringContains(blob, split.Point1) || ringContains(blob, split.Point2)
}

func ringContains(blob *outline.TBlob, target *outline.EdgePoint) bool {
	for _, ring := range blob.Outlines {
		if ring.Head() == nil {
			continue
		}
		p := ring.Head()
		for {
			if p == target {
				return true
			}
			p = p.Next(false)
			if p == ring.Head() {
				break
			}
		}
	}

	return false
}

// PointInSeam reports whether any EdgePoint of other equals a point of
// any split of seam, grounded on seam.cpp's point_in_seam.
func PointInSeam(seam *Seam, other Split) bool {
	for _, s := range seam.Splits {
		if s.Point1 == other.Point1 || s.Point1 == other.Point2 ||
			s.Point2 == other.Point1 || s.Point2 == other.Point2 {
			return true
		}
	}

	return false
}

// PointUsedBySplit reports whether p is one of split's two points.
func PointUsedBySplit(split Split, p *outline.EdgePoint) bool {
	return split.Point1 == p || split.Point2 == p
}

// PointUsedBySeam reports whether p is used by any split of seam.
func PointUsedBySeam(seam *Seam, p *outline.EdgePoint) bool {
	for _, s := range seam.Splits {
		if PointUsedBySplit(s, p) {
			return true
		}
	}

	return false
}

// CombineSeams merges b's splits into a (up to the 3-split cap) and
// keeps the sharper (smaller) priority, matching seam.cpp's
// combine_seams used when two adjacent chop candidates coincide.
func CombineSeams(a, b *Seam) error {
	if len(a.Splits)+len(b.Splits) > maxSplitsPerSeam {
		return ErrTooManySplits
	}
	a.Splits = append(a.Splits, b.Splits...)
	if b.Priority < a.Priority {
		a.Priority = b.Priority
	}

	return nil
}
