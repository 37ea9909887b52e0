package wordres

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/docseg/denorm"
	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
	"github.com/katalvlaran/docseg/structunit"
)

// BlobChoice is one classifier hypothesis for a blob, grounded on
// spec.md §6.4's classifier callback contract.
type BlobChoice struct {
	UnicharID    int32
	Rating       float32 // smaller is better
	Certainty    float32 // larger is better, typically negative
	FontInfoID   int16
	FontInfoID2  int16
	ScriptID     int32
	XGapBefore   int16
	XGapAfter    int16
	MinXHeight   int16
	MaxXHeight   int16
	Adapted      bool
}

// WordChoice is a best-path hypothesis parallel to BestState: one
// BlobChoice per rebuilt-blob position.
type WordChoice struct {
	Choices []BlobChoice
}

// Length returns the number of positions in the choice.
func (c *WordChoice) Length() int { return len(c.Choices) }

// WordResult bundles the input Werd, its chopped working word, the
// rebuilt word reflecting the chosen segmentation, and the derived
// outputs, per spec.md §3.6. It holds no seam array.
type WordResult struct {
	ID uuid.UUID

	InputWord *structunit.Werd
	Chopped   *outline.TWerd

	Denorm *denorm.Denorm

	BestState []int // merged-chopped-blob counts per rebuilt position
	Rebuild   *outline.TWerd
	BestChoice *WordChoice
	RawChoice  *WordChoice
	BoxWord    *BoxWord

	TessFailed bool

	GroundTruthBoxes []geometry.Box
	GroundTruthText  string

	FontIDVotes map[int16]int
	XHeightPostEstimate float32
	CapsHeightPostEstimate float32
}

// NewWordResult constructs an empty WordResult.
func NewWordResult() *WordResult {
	return &WordResult{
		ID:          uuid.New(),
		BestChoice:  &WordChoice{},
		RawChoice:   &WordChoice{},
		FontIDVotes: make(map[int16]int),
	}
}

// SetupForRecognition polygonally approximates every CBlob of the input
// Werd into chopped_word, populates Denorm from the row's baseline and
// x-height (or the word box bottom when row is nil), and seeds
// best/raw choice to empty placeholders. Returns ErrNoBlobs when
// the word has no blobs, leaving the WordResult in a consistent empty
// state, per spec.md §4.8.
func (wr *WordResult) SetupForRecognition(w *structunit.Werd, row *structunit.Row) error {
	wr.InputWord = w
	wr.BestChoice = &WordChoice{}
	wr.RawChoice = &WordChoice{}

	if len(w.Blobs) == 0 {
		wr.Chopped = &outline.TWerd{}
		wr.Rebuild = &outline.TWerd{}
		wr.BestState = nil
		wr.BoxWord = NewBoxWord()

		return ErrNoBlobs
	}

	chopped := &outline.TWerd{}
	for _, blob := range w.Blobs {
		tblob := &outline.TBlob{}
		for _, co := range blob.Outlines {
			tess, err := outline.ApproximateOutline(co)
			if err != nil {
				return err
			}
			tblob.Outlines = append(tblob.Outlines, tess)
		}
		chopped.Blobs = append(chopped.Blobs, tblob)
	}
	wr.Chopped = chopped

	var xHeight float32 = denorm.BlnXHeight
	var baseline denorm.BaselineFunc
	if row != nil {
		xHeight = row.XHeight
		baseline = row.Baseline
	} else {
		bottom := w.BoundingBox().Bl.Y
		baseline = func(float32) float32 { return float32(bottom) }
	}
	d := denorm.NewDenorm()
	d.Push(denorm.SetupBLNormalize(0, xHeight, baseline))
	wr.Denorm = d

	return nil
}

// RebuildBestState produces rebuild_word by joining consecutive chopped
// blobs according to best_state, where best_state[i] is the number of
// chopped blobs merged into rebuilt blob i, per spec.md §4.8.
func (wr *WordResult) RebuildBestState(bestState []int) error {
	rebuild := &outline.TWerd{}
	idx := 0
	for _, count := range bestState {
		if count <= 0 || idx+count > len(wr.Chopped.Blobs) {
			return ErrNoBlobs
		}
		merged := &outline.TBlob{}
		for k := 0; k < count; k++ {
			merged.Outlines = append(merged.Outlines, wr.Chopped.Blobs[idx+k].Outlines...)
		}
		rebuild.Blobs = append(rebuild.Blobs, merged)
		idx += count
	}
	wr.BestState = bestState
	wr.Rebuild = rebuild

	return nil
}

// SetupBoxWord denormalizes each rebuilt blob's bounding box into image
// coordinates and records it in wr.BoxWord.
func (wr *WordResult) SetupBoxWord() {
	bw := NewBoxWord()
	for _, blob := range wr.Rebuild.Blobs {
		box := blob.BoundingBox()
		bl := wr.Denorm.DenormTransform(box.Bl.ToFPoint())
		tr := wr.Denorm.DenormTransform(box.Tr.ToFPoint())
		bw.AppendBox(geometry.NewBox(
			geometry.IPoint{X: int16(bl.X), Y: int16(bl.Y)},
			geometry.IPoint{X: int16(tr.X), Y: int16(tr.Y)},
		))
	}
	wr.BoxWord = bw
}

// ClassMergeFunc reports whether two adjacent unichar ids can merge into
// a single recognized unichar, returning the merged id and true, or
// (0, false) when no merge applies.
type ClassMergeFunc func(leftID, rightID int32) (mergedID int32, ok bool)

// BoxMergeFunc optionally gates a merge on the two boxes' geometry; a
// nil BoxMergeFunc always permits the merge.
type BoxMergeFunc func(left, right geometry.Box) bool

// ConditionalBlobMerge walks adjacent positions in the rebuilt word;
// whenever classCb approves a merged unichar and boxCb (if non-nil)
// approves the boxes, it merges those two positions in BestChoice,
// BestState and BoxWord. RawChoice is not merged, and WordResult has no
// per-blob choice list to merge. Returns true iff any merge occurred,
// per spec.md §4.8.
func (wr *WordResult) ConditionalBlobMerge(classCb ClassMergeFunc, boxCb BoxMergeFunc) bool {
	merged := false
	i := 0
	for i < len(wr.BestChoice.Choices)-1 {
		left := wr.BestChoice.Choices[i]
		right := wr.BestChoice.Choices[i+1]
		mergedID, ok := classCb(left.UnicharID, right.UnicharID)
		if !ok {
			i++

			continue
		}
		if boxCb != nil {
			lb, errL := wr.BoxWord.BlobBox(i)
			rb, errR := wr.BoxWord.BlobBox(i + 1)
			if errL != nil || errR != nil || !boxCb(lb, rb) {
				i++

				continue
			}
		}

		newChoice := left
		newChoice.UnicharID = mergedID
		wr.BestChoice.Choices[i] = newChoice
		wr.BestChoice.Choices = append(wr.BestChoice.Choices[:i+1], wr.BestChoice.Choices[i+2:]...)

		wr.BestState[i] += wr.BestState[i+1]
		wr.BestState = append(wr.BestState[:i+1], wr.BestState[i+2:]...)

		_ = wr.BoxWord.MergeBoxes(i, i+2)

		merged = true
	}

	return merged
}
