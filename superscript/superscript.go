// Package superscript implements the superscript/subscript
// re-recognition pass of spec.md §4.7, grounded on
// src/ccmain/superscript.cpp: outlier detection by baseline-normalized
// position, a trimmed-mean certainty threshold, run-length extraction,
// re-recognition with altered y-penalties, and an acceptance test.
package superscript

import (
	"sort"

	"github.com/katalvlaran/docseg/denorm"
)

// Position classifies a blob's vertical placement relative to the
// baseline-normalized x-height band.
type Position int

// The three blob positions.
const (
	Normal Position = iota
	Superscript
	Subscript
)

// Options tunes the thresholds named in spec.md §4.7.
type Options struct {
	SuperscriptMinYBottom      float32 // fraction of x-height
	SubscriptMaxYTop           float32
	SuperscriptWorseCertainty  float32
	SuperscriptBetteredCert    float32
	SuperscriptScaledownRatio  float32
	// XhtFixupReject is an opaque legacy reject-mode toggle; see
	// SPEC_FULL.md §6 — semantics intentionally undocumented upstream.
	XhtFixupReject bool
}

// DefaultOptions returns the thresholds used by the original
// implementation.
func DefaultOptions() Options {
	return Options{
		SuperscriptMinYBottom:     0.6,
		SubscriptMaxYTop:          0.3,
		SuperscriptWorseCertainty: 2.0,
		SuperscriptBetteredCert:   1.0,
		SuperscriptScaledownRatio: 0.6,
	}
}

// BlobInfo is the per-rebuilt-blob input ClassifyPosition needs: the blob's
// baseline-normalized bounding box edges and its classifier certainty.
type BlobInfo struct {
	Bottom, Top float32
	Certainty   float32
}

// ClassifyPosition implements step 2 of fix_word: a blob is SUPERSCRIPT
// if its bottom sits at or above baselineOffset + xHeight *
// SuperscriptMinYBottom; SUBSCRIPT if its top sits at or below
// baselineOffset + xHeight * SubscriptMaxYTop; else NORMAL.
func ClassifyPosition(info BlobInfo, opts Options) Position {
	bandBottom := float32(denorm.BlnBaselineOffset)
	xHeight := float32(denorm.BlnXHeight)
	switch {
	case info.Bottom >= bandBottom+xHeight*opts.SuperscriptMinYBottom:
		return Superscript
	case info.Top <= bandBottom+xHeight*opts.SubscriptMaxYTop:
		return Subscript
	default:
		return Normal
	}
}

// AverageCertainty implements step 3: the mean certainty of blobs
// classified NORMAL, discarding the single worst one when at least 3
// normal blobs exist.
func AverageCertainty(blobs []BlobInfo, positions []Position) float32 {
	var normals []float32
	for i, p := range positions {
		if p == Normal {
			normals = append(normals, blobs[i].Certainty)
		}
	}
	if len(normals) == 0 {
		return 0
	}
	if len(normals) >= 3 {
		sort.Slice(normals, func(i, j int) bool { return normals[i] < normals[j] })
		normals = normals[1:] // drop the single worst (most negative-leaning outlier convention: index 0 after sort is worst)
	}
	var sum float32
	for _, c := range normals {
		sum += c
	}

	return sum / float32(len(normals))
}

// Run describes a maximal leading or trailing run of same-positioned
// outlier blobs trimmed to the prefix below the unlikely threshold.
type Run struct {
	Length         int
	MinCertainty   float32
	Position       Position
}

// FindRuns implements step 4: the longest leading run and longest
// trailing run of same-position outliers, each trimmed to the prefix of
// blobs whose certainty is below unlikelyThreshold.
func FindRuns(blobs []BlobInfo, positions []Position, unlikelyThreshold float32) (leading, trailing Run) {
	leading = findRun(blobs, positions, unlikelyThreshold, false)
	trailing = findRun(blobs, positions, unlikelyThreshold, true)

	return leading, trailing
}

func findRun(blobs []BlobInfo, positions []Position, threshold float32, reverse bool) Run {
	n := len(positions)
	if n == 0 {
		return Run{}
	}
	idx := func(i int) int {
		if reverse {
			return n - 1 - i
		}

		return i
	}
	first := positions[idx(0)]
	if first == Normal {
		return Run{}
	}
	run := Run{Position: first}
	min := blobs[idx(0)].Certainty
	for i := 0; i < n; i++ {
		p := positions[idx(i)]
		if p != first {
			break
		}
		c := blobs[idx(i)].Certainty
		if c >= threshold {
			break
		}
		run.Length++
		if c < min {
			min = c
		}
	}
	run.MinCertainty = min

	return run
}

// UnlikelyThreshold implements step 3's unlikely_threshold =
// avg_certainty * superscript_worse_certainty.
func UnlikelyThreshold(avgCertainty float32, opts Options) float32 {
	return avgCertainty * opts.SuperscriptWorseCertainty
}

// SubWordCheck is the per-retained-character input to AcceptRevision's
// step 8 test.
type SubWordCheck struct {
	IsPunctuation  bool
	IsItalic       bool
	Certainty      float32
	Height         float32
	ExpectedHeight float32 // 0 if unknown (unicharset top-bottom table unavailable)
}

// AcceptRevision implements step 8: a re-recognized super/subscript
// sub-word is accepted iff none of its characters are punctuation, none
// are italic, every retained certainty exceeds
// SuperscriptBetteredCert * originalRunCertainty, and every height is
// at least SuperscriptScaledownRatio * expected height (when known).
func AcceptRevision(chars []SubWordCheck, originalRunCertainty float32, opts Options) bool {
	for _, c := range chars {
		if c.IsPunctuation || c.IsItalic {
			return false
		}
		if c.Certainty <= opts.SuperscriptBetteredCert*originalRunCertainty {
			return false
		}
		if c.ExpectedHeight > 0 && c.Height < opts.SuperscriptScaledownRatio*c.ExpectedHeight {
			return false
		}
	}

	return true
}
