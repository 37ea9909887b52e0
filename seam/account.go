package seam

import "github.com/katalvlaran/docseg/outline"

// AccountSplits walks blobs start, start+dir, ... within [0, n) counting
// how many blobs are required to locate every split of seam in the
// given direction, per seam.cpp's account_splits. Returns the width
// (0, 1, 2, ...) and ErrSplitNotFound if some split is never located
// before the word boundary is reached.
func AccountSplits(s *Seam, word *outline.TWerd, start, dir int) (int, error) {
	n := len(word.Blobs)
	found := make([]bool, len(s.Splits))
	width := 0
	for i := start; i >= 0 && i < n; i += dir {
		for si, split := range s.Splits {
			if found[si] {
				continue
			}
			if FindSplitInBlob(split, word.Blobs[i]) {
				found[si] = true
			}
		}
		if allTrue(found) {
			return width, nil
		}
		width++
	}

	return -1, ErrSplitNotFound
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}

	return true
}

// InsertSeam inserts newSeam at index i into seams (of a chopped word of
// length n = len(seams)+1), applying the width-update rules of spec.md
// §4.3.3: earlier seams whose span would be disturbed have WidthP
// incremented or re-accounted; later seams get the symmetric WidthN
// treatment. Returns ErrInsertionIllegal if any disturbed seam's width
// cannot be re-accounted.
func InsertSeam(seams SeamArray, i int, newSeam *Seam, word *outline.TWerd) (SeamArray, error) {
	for j := 0; j < i && j < len(seams); j++ {
		s := seams[j]
		if j+int(s.WidthP) >= i {
			s.WidthP++
		} else if j+int(s.WidthP) == i-1 {
			w, err := AccountSplits(s, word, i+1, +1)
			if err != nil {
				return nil, ErrInsertionIllegal
			}
			s.WidthP = int8(w)
		}
	}
	for j := i; j < len(seams); j++ {
		s := seams[j]
		idx := j + 1 // post-insertion index of this seam
		if idx-int(s.WidthN) <= i {
			s.WidthN++
		} else if idx-int(s.WidthN) == i+1 {
			w, err := AccountSplits(s, word, i-1, -1)
			if err != nil {
				return nil, ErrInsertionIllegal
			}
			s.WidthN = int8(w)
		}
	}

	result := make(SeamArray, 0, len(seams)+1)
	result = append(result, seams[:i]...)
	result = append(result, newSeam)
	result = append(result, seams[i:]...)

	return result, nil
}
