// Package structunit holds the structural units of spec.md §3.3: Werd,
// Row and Block, grounded on ccstruct/werd.h and ccstruct/ocrrow.h, plus
// the Row supplement named in SPEC_FULL.md §3 (the BoxWord supplement
// lives in package wordres).
package structunit

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
)

// WordFlag is one bit of a Werd's flag field, grounded on werd.h.
type WordFlag uint16

// Werd flags, grounded on ccstruct/werd.h.
const (
	FlagSegmented WordFlag = 1 << iota
	FlagItalic
	FlagBold
	FlagBOL // beginning of line
	FlagEOL // end of line
	FlagNormalized
	FlagPolygon
	FlagLinearc
	FlagDontChop
	FlagRepChar
	FlagFuzzySpace
	FlagFuzzyNonSpace
	FlagInverse
)

// Werd is a sequence of non-rejected CBlobs plus a reject list, a flag
// field, leading blank count, ground-truth text and script id.
type Werd struct {
	ID uuid.UUID

	Blobs       []*outline.CBlob
	RejectBlobs []*outline.CBlob

	Flags WordFlag

	LeadingBlanks int
	GroundTruth   string
	ScriptID      int32
}

// NewWerd constructs a Werd, assigning it a fresh correlation ID.
func NewWerd() *Werd { return &Werd{ID: uuid.New()} }

// HasFlag reports whether f is set.
func (w *Werd) HasFlag(f WordFlag) bool { return w.Flags&f != 0 }

// SetFlag sets or clears f.
func (w *Werd) SetFlag(f WordFlag, on bool) {
	if on {
		w.Flags |= f
	} else {
		w.Flags &^= f
	}
}

// BoundingBox returns the union of all non-rejected blob boxes.
func (w *Werd) BoundingBox() geometry.Box {
	if len(w.Blobs) == 0 {
		return geometry.EmptyBox()
	}
	box := w.Blobs[0].BoundingBox()
	for _, b := range w.Blobs[1:] {
		box = box.BoundingUnion(b.BoundingBox())
	}

	return box
}

// ReconcileInverse implements the invariant from spec.md §3.3: a Werd's
// INVERSE flag equals the majority vote of its outlines' invert flags;
// dissenting outlines move to the reject list. invertVotes[i] reports
// the invert vote of w.Blobs[i]'s outlines (true = majority invert).
func (w *Werd) ReconcileInverse(invertVotes []bool) {
	if len(invertVotes) != len(w.Blobs) {
		return
	}
	trueCount := 0
	for _, v := range invertVotes {
		if v {
			trueCount++
		}
	}
	majority := trueCount*2 > len(invertVotes)
	w.SetFlag(FlagInverse, majority)

	var kept []*outline.CBlob
	for i, blob := range w.Blobs {
		if invertVotes[i] == majority {
			kept = append(kept, blob)
		} else {
			w.RejectBlobs = append(w.RejectBlobs, blob)
		}
	}
	w.Blobs = kept
}
