// Package eval scores a reconstructed Row baseline against a reference
// baseline sample (ground truth, or a neighboring row in a skewed
// scan), adapting the teacher's dtw package to the sampled-curve
// alignment problem instead of its original time-series domain. This
// is the "compare a fitted polyline against a reference" evaluation
// hook implied by spec.md §3.3's per-row baseline, supplemented per
// SPEC_FULL.md §3.
package eval

import (
	"github.com/katalvlaran/docseg/dtw"
	"github.com/katalvlaran/docseg/structunit"
)

// SampleBaseline evaluates row's baseline at n evenly spaced x positions
// across [xStart, xEnd], for use as one side of an alignment.
func SampleBaseline(row *structunit.Row, xStart, xEnd float32, n int) []float64 {
	if n <= 0 {
		return nil
	}
	samples := make([]float64, n)
	step := (xEnd - xStart) / float32(n-1)
	if n == 1 {
		step = 0
	}
	for i := 0; i < n; i++ {
		x := xStart + step*float32(i)
		samples[i] = float64(row.BaseLine(x))
	}

	return samples
}

// BaselineAlignmentCost runs DTW between two sampled baseline curves
// (e.g. a recognized row against a ground-truth row, or two rows
// suspected of belonging to the same skewed text line) and returns the
// cumulative warping distance: low cost means the curves track each
// other; a large cost flags a baseline-fitting regression.
func BaselineAlignmentCost(predicted, reference []float64, window int) (float64, error) {
	opts := dtw.DefaultOptions()
	opts.Window = window
	opts.MemoryMode = dtw.TwoRows

	dist, _, err := dtw.DTW(predicted, reference, &opts)

	return dist, err
}
