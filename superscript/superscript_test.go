package superscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPosition_SuperscriptScenario(t *testing.T) {
	opts := DefaultOptions()
	// spec.md §8 scenario 6: blob 1 bottom at 160, threshold ~141.
	pos := ClassifyPosition(BlobInfo{Bottom: 160, Top: 256, Certainty: -3.0}, opts)
	require.Equal(t, Superscript, pos)
}

func TestAverageCertaintyAndThreshold_Scenario6(t *testing.T) {
	opts := DefaultOptions()
	blobs := []BlobInfo{
		{Bottom: 64, Top: 192, Certainty: -0.5}, // normal
		{Bottom: 160, Top: 256, Certainty: -3.0}, // superscript outlier
	}
	positions := []Position{Normal, Superscript}

	avg := AverageCertainty(blobs, positions)
	require.InDelta(t, -0.5, float64(avg), 1e-6)

	threshold := UnlikelyThreshold(avg, opts)
	require.InDelta(t, -1.0, float64(threshold), 1e-6) // -0.5 * 2.0
}

func TestAcceptRevision_RejectsPunctuationAndItalic(t *testing.T) {
	opts := DefaultOptions()
	ok := AcceptRevision([]SubWordCheck{{IsPunctuation: true}}, -1.0, opts)
	require.False(t, ok)

	ok = AcceptRevision([]SubWordCheck{{Certainty: -0.4, Height: 96, ExpectedHeight: 128}}, -1.0, opts)
	require.True(t, ok) // scaled height ratio 0.75 >= required 0.6
}

func TestFixWord_AcceptsScenario6(t *testing.T) {
	opts := DefaultOptions()
	w := WordState{
		HasBestChoice: true,
		Blobs: []BlobInfo{
			{Bottom: 64, Top: 192, Certainty: -0.5},
			{Bottom: 160, Top: 256, Certainty: -3.0},
		},
	}
	reRecognize := func(numLeading, numTrailing int) ([]SubWordCheck, []SubWordCheck, float32, float32) {
		return nil, []SubWordCheck{{Certainty: -0.4, Height: 96, ExpectedHeight: 128}}, 0, -3.0
	}

	accepted, numLeading, numTrailing := FixWord(w, opts, reRecognize)
	require.True(t, accepted)
	require.Equal(t, 0, numLeading)
	require.Equal(t, 1, numTrailing)
}
