// Package associate implements the segmentation-evaluation pass of
// spec.md §4.5, grounded on src/wordrec/associate.cpp: width/gap/shape
// cost computation for a candidate (col, row) segmentation step given
// its parent path's accumulated stats.
package associate

import "github.com/katalvlaran/docseg/denorm"

// Tuning constants, grounded on associate.cpp.
const (
	MaxFixedPitchCharAspectRatio = 2.0
	MinGap                       = 0.03
)

// Stats accumulates the per-path segmentation-quality signals described
// in spec.md §4.5.
type Stats struct {
	ShapeCost              float32
	BadShape               bool
	BadFixedPitchRightGap  bool
	GapSum                 int32
	FullWHRatio            float32
	FullWHRatioTotal       float32 // sum along the path
	FullWHRatioVar         float32 // variance along the path
}

// Clear resets s to its zero value in place.
func (s *Stats) Clear() { *s = Stats{} }

// RowInfo supplies the few Row fields ComputeStats needs without
// depending on the structunit package (keeping associate's dependency
// surface to geometry/denorm only, mirroring the teacher's layered
// package graph).
type RowInfo struct {
	BodySize   float32
	XHeight    float32
	Ascenders  float32
}

// WordInputs bundles the per-candidate inputs ComputeStats needs from a
// WordResult, named individually rather than importing wordres, so that
// associate does not depend on wordres.
type WordInputs struct {
	// BlobWidth(col, row) returns the pixel width of chopped blobs
	// col..row inclusive.
	BlobWidth func(col, row int) float32
	// BlobGap(c) returns the gap between chopped blob c and c+1.
	BlobGap func(c int) float32
	// SeamPriority(c) returns the priority of the seam at index c.
	SeamPriority func(c int) float32
	// Dimension is the ratings matrix side length (chopped blob count).
	Dimension int
	// Row is the word's blob_row, or nil if unknown.
	Row *RowInfo
	// YScale is the word's denorm.y_scale (Denorm chain's composed
	// y-axis scale factor from image to classifier space).
	YScale float32
}

// ComputeStats implements AssociateUtils::ComputeStats: given a
// candidate step (col, row), the parent path's Stats (nil at the path
// root), the parent path length, fixed-pitch mode and a
// maxCharWHRatio ceiling, produces this step's Stats.
func ComputeStats(col, row int, parentStats *Stats, parentPathLength int, fixedPitch bool,
	maxCharWHRatio float32, in WordInputs) *Stats {
	stats := &Stats{}

	normalizingHeight := float32(denorm.BlnXHeight)
	if fixedPitch && in.Row != nil {
		if in.Row.BodySize > 0 {
			normalizingHeight = in.YScale * in.Row.BodySize
		} else {
			normalizingHeight = in.YScale * (in.Row.XHeight + in.Row.Ascenders)
		}
	}

	whRatio := in.BlobWidth(col, row) / normalizingHeight
	if whRatio > maxCharWHRatio {
		stats.BadShape = true
	}

	var negativeGapSum float32
	for c := col; c < row; c++ {
		gap := in.BlobGap(c)
		if gap > 0 {
			stats.GapSum += int32(gap)
		} else {
			negativeGapSum += gap
		}
	}
	if stats.GapSum == 0 {
		stats.GapSum = int32(negativeGapSum)
	}

	if fixedPitch {
		endRow := row == in.Dimension-1

		if col > 0 {
			leftGap := in.BlobGap(col-1) / normalizingHeight
			leftPriority := in.SeamPriority(col - 1)
			if (!endRow && leftGap < MinGap) || leftPriority > 0 {
				stats.BadShape = true
			}
		}

		var rightGap float32
		if !endRow {
			rightGap = in.BlobGap(row) / normalizingHeight
			rightPriority := in.SeamPriority(row)
			if rightGap < MinGap || rightPriority > 0 {
				stats.BadShape = true
				if rightGap < MinGap {
					stats.BadFixedPitchRightGap = true
				}
			}
		}

		stats.FullWHRatio = whRatio + rightGap
		if parentStats != nil {
			stats.FullWHRatioTotal = parentStats.FullWHRatioTotal + stats.FullWHRatio
			mean := stats.FullWHRatioTotal / float32(parentPathLength+1)
			diff := mean - stats.FullWHRatio
			stats.FullWHRatioVar = parentStats.FullWHRatioVar + diff*diff
		} else {
			stats.FullWHRatioTotal = stats.FullWHRatio
		}

		stats.ShapeCost = FixedPitchWidthCost(whRatio, rightGap, endRow, maxCharWHRatio)
		if col == 0 && endRow && whRatio > maxCharWHRatio {
			stats.ShapeCost += 10
		}
		stats.ShapeCost += stats.FullWHRatioVar
	}

	return stats
}

// FixedPitchWidthCost implements AssociateUtils::FixedPitchWidthCost.
func FixedPitchWidthCost(normWidth, rightGap float32, endPos bool, maxCharWHRatio float32) float32 {
	var cost float32
	if normWidth > maxCharWHRatio {
		cost += normWidth
	}
	if normWidth > MaxFixedPitchCharAspectRatio {
		cost += normWidth * normWidth
	}
	if normWidth+rightGap < 0.5 && !endPos {
		cost += 1.0 - (normWidth + rightGap)
	}

	return cost
}
