package seam

import "github.com/katalvlaran/docseg/outline"

// JoinRecord captures enough state from a JoinPieces call to let
// BreakPieces reverse it exactly: the boundary EdgePoint that used to
// precede each folded-in blob's original ring head, and the holes moved
// onto the target blob.
type JoinRecord struct {
	target         *outline.TBlob
	targetOutlines int                  // len(target.Outlines) before the join
	boundaries     []*outline.EdgePoint // one per folded blob, in fold order
	movedHoles     [][]*outline.TessLine
	foldedBlobs    []*outline.TBlob
}

// JoinPieces concatenates the outer rings of chopped blobs [first, last]
// (inclusive) in word into a single ring on word.Blobs[first], and hides
// every seam whose span lies fully inside [first, last], per spec.md
// §4.3.4. Returns a JoinRecord that BreakPieces can use to undo exactly
// this join.
func JoinPieces(seams SeamArray, first, last int, word *outline.TWerd) (*JoinRecord, error) {
	target := word.Blobs[first]
	rec := &JoinRecord{target: target, targetOutlines: len(target.Outlines)}
	if len(target.Outlines) == 0 {
		return rec, nil
	}
	targetRing := target.Outlines[0]

	for idx := first + 1; idx <= last; idx++ {
		src := word.Blobs[idx]
		rec.foldedBlobs = append(rec.foldedBlobs, src)
		if len(src.Outlines) == 0 {
			rec.boundaries = append(rec.boundaries, nil)
			rec.movedHoles = append(rec.movedHoles, nil)

			continue
		}
		boundary := ringLastPoint(targetRing)
		srcHead := src.Outlines[0].Head()
		if err := targetRing.Splice(boundary, src.Outlines[0]); err != nil {
			return nil, err
		}
		rec.boundaries = append(rec.boundaries, srcHead.Prev(false)) // the point now preceding src's old head
		rec.movedHoles = append(rec.movedHoles, src.Outlines[1:])
		target.Outlines = append(target.Outlines, src.Outlines[1:]...)
	}

	for i := first; i < last && i < len(seams); i++ {
		s := seams[i]
		if int(s.WidthN) <= i-first && i+int(s.WidthP) <= last {
			hideSeam(s)
		}
	}

	return rec, nil
}

// BreakPieces reverses the JoinPieces call that produced rec: reveals
// contained seams, then cuts the merged ring back into per-blob rings
// at the recorded boundaries, restoring word.Blobs[first] to holding
// only its original outlines.
func BreakPieces(seams SeamArray, first, last int, word *outline.TWerd, rec *JoinRecord) error {
	for i := first; i < last && i < len(seams); i++ {
		s := seams[i]
		if int(s.WidthN) <= i-first && i+int(s.WidthP) <= last {
			revealSeam(s)
		}
	}

	targetRing := rec.target.Outlines[0]
	restoredHoleCount := 0
	for i := len(rec.boundaries) - 1; i >= 0; i-- {
		boundary := rec.boundaries[i]
		folded := rec.foldedBlobs[i]
		if boundary == nil {
			continue
		}
		cutHead := boundary.Next(false)
		other, err := targetRing.CutAfter(boundary, ringPredecessorOf(targetRing, cutHead, boundary))
		if err != nil {
			return err
		}
		folded.Outlines = append([]*outline.TessLine{other}, rec.movedHoles[i]...)
		restoredHoleCount += len(rec.movedHoles[i])
	}
	if restoredHoleCount > 0 {
		rec.target.Outlines = rec.target.Outlines[:rec.targetOutlines]
	}

	return nil
}

func ringPredecessorOf(ring *outline.TessLine, from, stop *outline.EdgePoint) *outline.EdgePoint {
	p := from
	for p.Next(false) != stop && p.Next(false) != ring.Head() {
		p = p.Next(false)
	}

	return p
}

func ringLastPoint(t *outline.TessLine) *outline.EdgePoint {
	if t.Head() == nil {
		return nil
	}
	p := t.Head()
	for p.Next(false) != t.Head() {
		p = p.Next(false)
	}

	return p
}

// hideSeam marks every EdgePoint between each split's two points (in
// both directions) as hidden, until the partner point is reached,
// matching seam.cpp's hide_edge_pair.
func hideSeam(s *Seam) {
	for _, split := range s.Splits {
		hideEdgePair(split)
	}
}

// revealSeam clears the hidden bit set by hideSeam.
func revealSeam(s *Seam) {
	for _, split := range s.Splits {
		revealEdgePair(split)
	}
}

func hideEdgePair(split Split) {
	setHiddenRun(split.Point1, split.Point2, true)
	setHiddenRun(split.Point2, split.Point1, true)
}

func revealEdgePair(split Split) {
	setHiddenRun(split.Point1, split.Point2, false)
	setHiddenRun(split.Point2, split.Point1, false)
}

// setHiddenRun walks from start toward target (exclusive of start,
// inclusive of target) marking Hidden, matching the "hide every point
// in both directions away from the split until it reaches the partner
// point" rule of spec.md §4.3.4.
func setHiddenRun(start, target *outline.EdgePoint, hidden bool) {
	p := start.Next(false)
	for p != target && p != start {
		p.Hidden = hidden
		p = p.Next(false)
	}
	if p == target {
		target.Hidden = hidden
	}
}
