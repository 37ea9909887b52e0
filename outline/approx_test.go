package outline

import (
	"testing"

	"github.com/katalvlaran/docseg/geometry"
	"github.com/stretchr/testify/require"
)

// square10 builds a 10x10 square chain-coded outline starting at origin.
func square10(t *testing.T) *COutline {
	t.Helper()
	var steps []ChainStep
	for i := 0; i < 10; i++ {
		steps = append(steps, StepRight)
	}
	for i := 0; i < 10; i++ {
		steps = append(steps, StepUp)
	}
	for i := 0; i < 10; i++ {
		steps = append(steps, StepLeft)
	}
	for i := 0; i < 10; i++ {
		steps = append(steps, StepDown)
	}
	o, err := NewCOutline(geometry.IPoint{}, steps)
	require.NoError(t, err)

	return o
}

func TestApproximateOutline_SquareProducesAtLeastThreePoints(t *testing.T) {
	o := square10(t)
	tess, err := ApproximateOutline(o)
	require.NoError(t, err)
	require.GreaterOrEqual(t, tess.Count(), 3) // spec.md §8: positive-area outlines approximate to >=3 points
}

func TestApproximateOutline_EmptyOutlineErrors(t *testing.T) {
	o := &COutline{}
	_, err := ApproximateOutline(o)
	require.ErrorIs(t, err, ErrEmptyOutline)
}

func TestCOutline_StepCountLimit(t *testing.T) {
	steps := make([]ChainStep, MaxStepCount+1)
	_, err := NewCOutline(geometry.IPoint{}, steps)
	require.ErrorIs(t, err, ErrStepCountExceeded)
}
