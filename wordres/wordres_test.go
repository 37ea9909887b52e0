package wordres

import (
	"testing"

	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
	"github.com/katalvlaran/docseg/structunit"
	"github.com/stretchr/testify/require"
)

func squareOutline(t *testing.T, x int16) *outline.COutline {
	t.Helper()
	steps := []outline.ChainStep{}
	for i := 0; i < 5; i++ {
		steps = append(steps, outline.StepRight)
	}
	for i := 0; i < 5; i++ {
		steps = append(steps, outline.StepUp)
	}
	for i := 0; i < 5; i++ {
		steps = append(steps, outline.StepLeft)
	}
	for i := 0; i < 5; i++ {
		steps = append(steps, outline.StepDown)
	}
	o, err := outline.NewCOutline(geometry.IPoint{X: x, Y: 0}, steps)
	require.NoError(t, err)

	return o
}

func TestSetupForRecognition_EmptyWordErrors(t *testing.T) {
	wr := NewWordResult()
	w := structunit.NewWerd()
	err := wr.SetupForRecognition(w, nil)
	require.ErrorIs(t, err, ErrNoBlobs)
	require.NotNil(t, wr.Chopped)
	require.Equal(t, 0, len(wr.Chopped.Blobs))
}

func TestSetupForRecognitionAndRebuild(t *testing.T) {
	wr := NewWordResult()
	w := structunit.NewWerd()
	w.Blobs = []*outline.CBlob{
		{Outlines: []*outline.COutline{squareOutline(t, 0)}},
		{Outlines: []*outline.COutline{squareOutline(t, 10)}},
	}

	require.NoError(t, wr.SetupForRecognition(w, nil))
	require.Len(t, wr.Chopped.Blobs, 2)

	require.NoError(t, wr.RebuildBestState([]int{2}))
	require.Len(t, wr.Rebuild.Blobs, 1)

	wr.SetupBoxWord()
	require.Equal(t, 1, wr.BoxWord.Length())
}

func TestBoxWord_MergeAndClip(t *testing.T) {
	bw := NewBoxWord()
	bw.AppendBox(geometry.NewBoxFromCoords(0, 0, 10, 10))
	bw.AppendBox(geometry.NewBoxFromCoords(10, 0, 20, 10))
	bw.AppendBox(geometry.NewBoxFromCoords(20, 0, 30, 10))

	require.NoError(t, bw.MergeBoxes(0, 2))
	require.Equal(t, 2, bw.Length())
	box, err := bw.BlobBox(0)
	require.NoError(t, err)
	require.Equal(t, geometry.NewBoxFromCoords(0, 0, 20, 10), box)
}
