package seam

import (
	"testing"

	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
	"github.com/stretchr/testify/require"
)

func ringWithPoint(x, y float32) (*outline.TessLine, *outline.EdgePoint) {
	ring := outline.NewTessLineFromPoints([]geometry.FPoint{
		{X: x, Y: y}, {X: x + 1, Y: y}, {X: x, Y: y + 1},
	}, false)

	return ring, ring.Head()
}

func fiveBlobWord(t *testing.T) (*outline.TWerd, *outline.EdgePoint, *outline.EdgePoint) {
	t.Helper()
	word := &outline.TWerd{}
	var p2, p3 *outline.EdgePoint
	for i := 0; i < 5; i++ {
		ring, head := ringWithPoint(float32(i)*10, 0)
		if i == 2 {
			p2 = head
		}
		if i == 3 {
			p3 = head
		}
		word.Blobs = append(word.Blobs, &outline.TBlob{Outlines: []*outline.TessLine{ring}})
	}

	return word, p2, p3
}

func TestSeam_InsertionScenario(t *testing.T) {
	word, p2, p3 := fiveBlobWord(t)
	split := Split{Point1: p2, Point2: p3}
	newSeam, err := NewSeam(0.5, geometry.IPoint{X: 25, Y: 0}, split)
	require.NoError(t, err)

	seams := make(SeamArray, 4) // pre-existing empty seam array, length n-1=4
	for i := range seams {
		seams[i] = &Seam{}
	}

	result, err := InsertSeam(seams, 2, newSeam, word)
	require.NoError(t, err)
	require.Len(t, result, 5)

	w, err := AccountSplits(newSeam, word, 3, +1)
	require.NoError(t, err)
	require.Equal(t, 0, w)

	require.True(t, FindSplitInBlob(split, word.Blobs[2]))
	require.True(t, FindSplitInBlob(split, word.Blobs[3]))
}

func TestAccountSplits_NotFoundInRange(t *testing.T) {
	word, p2, _ := fiveBlobWord(t)
	split := Split{Point1: p2, Point2: p2} // degenerate, but point2 never in a later blob
	seam := &Seam{Splits: []Split{{Point1: p2, Point2: &outline.EdgePoint{}}}}
	_ = split

	// p2 lies in blob 2 and the other point in no blob, so walking right
	// from blob 3 never locates the split.
	_, err := AccountSplits(seam, word, 3, +1)
	require.ErrorIs(t, err, ErrSplitNotFound)
}
