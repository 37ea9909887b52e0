// Package wordres assembles the word-result pipeline of spec.md §4.8:
// SetupForRecognition, RebuildBestState, SetupBoxWord,
// ClipToOriginalWord and ConditionalBlobMerge, bundled on the
// WordResult type of spec.md §3.6. BoxWord's editing API is the
// supplemented feature named in SPEC_FULL.md §3, grounded on
// ccstruct/boxword.h.
package wordres

import (
	"errors"

	"github.com/katalvlaran/docseg/geometry"
)

// Sentinel errors for wordres package operations.
var (
	// ErrNoBlobs indicates SetupForRecognition was called on a word with
	// no blobs to approximate, or RebuildBestState was given a best_state
	// entry that is non-positive or runs past the chopped blobs.
	ErrNoBlobs = errors.New("wordres: word has no blobs")

	// ErrIndexOutOfRange indicates a BoxWord edit referenced an index
	// outside [0, length).
	ErrIndexOutOfRange = errors.New("wordres: box index out of range")
)

// BoxWord holds the bounding boxes of an output word's rebuilt blobs,
// grounded on ccstruct/boxword.h.
type BoxWord struct {
	boxes []geometry.Box
	bbox  geometry.Box
}

// NewBoxWord builds an empty BoxWord.
func NewBoxWord() *BoxWord { return &BoxWord{bbox: geometry.EmptyBox()} }

// Length returns the number of boxes.
func (bw *BoxWord) Length() int { return len(bw.boxes) }

// BlobBox returns the box at index.
func (bw *BoxWord) BlobBox(index int) (geometry.Box, error) {
	if index < 0 || index >= len(bw.boxes) {
		return geometry.Box{}, ErrIndexOutOfRange
	}

	return bw.boxes[index], nil
}

// BoundingBox returns the union of all boxes.
func (bw *BoxWord) BoundingBox() geometry.Box { return bw.bbox }

func (bw *BoxWord) recompute() {
	if len(bw.boxes) == 0 {
		bw.bbox = geometry.EmptyBox()

		return
	}
	box := bw.boxes[0]
	for _, b := range bw.boxes[1:] {
		box = box.BoundingUnion(b)
	}
	bw.bbox = box
}

// InsertBox inserts box immediately before index, recomputing the
// overall bounding box.
func (bw *BoxWord) InsertBox(index int, box geometry.Box) error {
	if index < 0 || index > len(bw.boxes) {
		return ErrIndexOutOfRange
	}
	bw.boxes = append(bw.boxes, geometry.Box{})
	copy(bw.boxes[index+1:], bw.boxes[index:])
	bw.boxes[index] = box
	bw.recompute()

	return nil
}

// DeleteBox removes the box at index, shuffling the rest up.
func (bw *BoxWord) DeleteBox(index int) error {
	if index < 0 || index >= len(bw.boxes) {
		return ErrIndexOutOfRange
	}
	bw.boxes = append(bw.boxes[:index], bw.boxes[index+1:]...)
	bw.recompute()

	return nil
}

// DeleteAllBoxes clears every stored box.
func (bw *BoxWord) DeleteAllBoxes() {
	bw.boxes = nil
	bw.bbox = geometry.EmptyBox()
}

// MergeBoxes merges the boxes from start to end (exclusive of end) into
// one box replacing position start, deleting the rest.
func (bw *BoxWord) MergeBoxes(start, end int) error {
	if start < 0 || end > len(bw.boxes) || start >= end {
		return ErrIndexOutOfRange
	}
	merged := bw.boxes[start]
	for i := start + 1; i < end; i++ {
		merged = merged.BoundingUnion(bw.boxes[i])
	}
	bw.boxes = append(bw.boxes[:start+1], bw.boxes[end:]...)
	bw.boxes[start] = merged
	bw.recompute()

	return nil
}

// AppendBox appends box to the end, used while assembling a BoxWord
// from a rebuilt TWerd (SetupBoxWord).
func (bw *BoxWord) AppendBox(box geometry.Box) {
	bw.boxes = append(bw.boxes, box)
	bw.recompute()
}

// ClipToOriginalWord expands each box by one pixel, then for each box
// finds original blobs with major x-overlap and snaps edges within
// tolerance pixels to the matching original edge, per spec.md §4.8.
func (bw *BoxWord) ClipToOriginalWord(originalBoxes []geometry.Box, tolerance int16) {
	for i, box := range bw.boxes {
		expanded := geometry.NewBoxFromCoords(box.Bl.X-1, box.Bl.Y-1, box.Tr.X+1, box.Tr.Y+1)
		for _, orig := range originalBoxes {
			if !expanded.MajorXOverlap(orig) {
				continue
			}
			if abs16(expanded.Bl.X-orig.Bl.X) <= tolerance {
				expanded.Bl.X = orig.Bl.X
			}
			if abs16(expanded.Tr.X-orig.Tr.X) <= tolerance {
				expanded.Tr.X = orig.Tr.X
			}
			if abs16(expanded.Bl.Y-orig.Bl.Y) <= tolerance {
				expanded.Bl.Y = orig.Bl.Y
			}
			if abs16(expanded.Tr.Y-orig.Tr.Y) <= tolerance {
				expanded.Tr.Y = orig.Tr.Y
			}
		}
		bw.boxes[i] = expanded
	}
	bw.recompute()
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}

	return v
}
