package eval

import (
	"testing"

	"github.com/katalvlaran/docseg/structunit"
	"github.com/stretchr/testify/require"
)

func TestBaselineAlignmentCost_IdenticalCurvesAreFree(t *testing.T) {
	flat := func(float32) float32 { return 10 }
	row := structunit.NewRow(128, 96, 48, flat)

	samples := SampleBaseline(row, 0, 100, 11)
	cost, err := BaselineAlignmentCost(samples, samples, -1)
	require.NoError(t, err)
	require.InDelta(t, 0, cost, 1e-9)
}

func TestBaselineAlignmentCost_SkewedRowCostsMore(t *testing.T) {
	flat := func(float32) float32 { return 10 }
	skewed := func(x float32) float32 { return 10 + x*0.2 }
	flatRow := structunit.NewRow(128, 96, 48, flat)
	skewedRow := structunit.NewRow(128, 96, 48, skewed)

	a := SampleBaseline(flatRow, 0, 100, 11)
	b := SampleBaseline(skewedRow, 0, 100, 11)

	cost, err := BaselineAlignmentCost(a, b, -1)
	require.NoError(t, err)
	require.Greater(t, cost, 0.0)
}
