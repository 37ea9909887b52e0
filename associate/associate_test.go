package associate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedPitchWidthCost_PenalizesOversizedAndSkinny(t *testing.T) {
	require.Equal(t, float32(0), FixedPitchWidthCost(1.0, 0.5, false, 2.0))

	over := FixedPitchWidthCost(3.0, 0.0, false, 2.0)
	require.Greater(t, over, float32(3.0)) // extra CJK-merge penalty applies above 2.0

	skinny := FixedPitchWidthCost(0.2, 0.1, false, 2.0)
	require.InDelta(t, float64(1.0-0.3), float64(skinny), 1e-6)
}

func TestComputeStats_NonFixedPitchOnlySetsBadShapeAndGapSum(t *testing.T) {
	in := WordInputs{
		BlobWidth: func(col, row int) float32 { return 300 }, // wide relative to x-height
		BlobGap:   func(c int) float32 { return 5 },
		SeamPriority: func(c int) float32 { return 0 },
		Dimension: 4,
	}
	stats := ComputeStats(0, 1, nil, 0, false, 1.5, in)

	require.True(t, stats.BadShape)
	require.Equal(t, int32(5), stats.GapSum)
	require.Equal(t, float32(0), stats.ShapeCost) // shape_cost only computed in fixed-pitch mode
}

func TestComputeStats_FixedPitchRightGapViolation(t *testing.T) {
	in := WordInputs{
		BlobWidth:    func(col, row int) float32 { return 64 },
		BlobGap:      func(c int) float32 { return 0.1 }, // below normalized MinGap once divided by xheight
		SeamPriority: func(c int) float32 { return 0 },
		Dimension:    3,
	}
	stats := ComputeStats(0, 0, nil, 0, true, 2.0, in)
	require.True(t, stats.BadFixedPitchRightGap)
	require.True(t, stats.BadShape)
}
