package structunit

import (
	"testing"

	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
	"github.com/stretchr/testify/require"
)

func blobAt(box geometry.Box) *outline.CBlob {
	o := &outline.COutline{Box: box}

	return &outline.CBlob{Outlines: []*outline.COutline{o}}
}

func TestWerd_ReconcileInverse_MajorityWins(t *testing.T) {
	w := NewWerd()
	w.Blobs = []*outline.CBlob{
		blobAt(geometry.NewBoxFromCoords(0, 0, 10, 10)),
		blobAt(geometry.NewBoxFromCoords(10, 0, 20, 10)),
		blobAt(geometry.NewBoxFromCoords(20, 0, 30, 10)),
	}
	w.ReconcileInverse([]bool{true, true, false})

	require.True(t, w.HasFlag(FlagInverse))
	require.Len(t, w.Blobs, 2)
	require.Len(t, w.RejectBlobs, 1)
}

func TestRow_RecalcBoundingBox(t *testing.T) {
	r := NewRow(30, 10, 8, nil)
	w1 := NewWerd()
	w1.Blobs = []*outline.CBlob{blobAt(geometry.NewBoxFromCoords(0, 0, 10, 10))}
	w2 := NewWerd()
	w2.Blobs = []*outline.CBlob{blobAt(geometry.NewBoxFromCoords(20, 0, 40, 15))}
	r.Words = []*Werd{w1, w2}

	r.RecalcBoundingBox()
	require.Equal(t, geometry.NewBoxFromCoords(0, 0, 40, 15), r.BoundBox)
	require.Equal(t, float32(40), r.BodySize) // xheight+ascenders default
}
