package superscript

// WordState is the minimal view of a WordResult FixWord needs: whether
// the word already failed recognition, is a repeated-character word,
// and has a best choice, plus the rebuilt blobs to classify.
type WordState struct {
	RecognitionFailed bool
	IsRepeatedChar    bool
	HasBestChoice     bool
	Blobs             []BlobInfo
}

// ReRecognizeFunc re-recognizes the rebuilt blobs covering
// [0, numLeading) and [len-numTrailing, len) with y-position penalties
// zeroed, returning the resulting sub-word character checks for the
// acceptance test (leading pieces first, then trailing).
type ReRecognizeFunc func(numLeading, numTrailing int) (leading, trailing []SubWordCheck, leadingCert, trailingCert float32)

// FixWord implements the fix_word procedure of spec.md §4.7. It returns
// false (no revision) whenever a precondition fails or no candidate
// qualifies; callers apply the revision themselves using the returned
// leading/trailing counts, in rebuilt blobs (WordState.Blobs), once
// accepted. It does not search part of a run's edge blob.
func FixWord(w WordState, opts Options, reRecognize ReRecognizeFunc) (accepted bool, numLeading, numTrailing int) {
	if w.RecognitionFailed || w.IsRepeatedChar || !w.HasBestChoice {
		return false, 0, 0
	}
	if len(w.Blobs) == 0 {
		return false, 0, 0
	}

	positions := make([]Position, len(w.Blobs))
	for i, b := range w.Blobs {
		positions[i] = ClassifyPosition(b, opts)
	}

	avg := AverageCertainty(w.Blobs, positions)
	threshold := UnlikelyThreshold(avg, opts)

	leadingRun, trailingRun := FindRuns(w.Blobs, positions, threshold)
	if leadingRun.Length == 0 && trailingRun.Length == 0 {
		return false, 0, 0
	}

	for leadingRun.Length > 0 || trailingRun.Length > 0 {
		leading, trailing, leadCert, trailCert := reRecognize(leadingRun.Length, trailingRun.Length)

		leadingOK := leadingRun.Length == 0 || AcceptRevision(leading, leadCert, opts)
		trailingOK := trailingRun.Length == 0 || AcceptRevision(trailing, trailCert, opts)

		if leadingOK && trailingOK {
			return true, leadingRun.Length, trailingRun.Length
		}

		// step 9: retry with a strict prefix/suffix of the run shortened.
		if !leadingOK && leadingRun.Length > 0 {
			leadingRun.Length--
		}
		if !trailingOK && trailingRun.Length > 0 {
			trailingRun.Length--
		}
		if leadingRun.Length == 0 && trailingRun.Length == 0 {
			return false, 0, 0
		}
	}

	return false, 0, 0
}
