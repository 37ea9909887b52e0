package outline

import (
	"math"

	"github.com/katalvlaran/docseg/geometry"
)

// Tuning constants for the polygonal approximation algorithm, grounded
// on ccstruct/polyaprx.cpp. ApproxDist is exposed as a tunable via
// ApproxOptions rather than hardwired, matching the functional-options
// convention used across this module.
const (
	defaultApproxDist  = 15
	minBoundingArea    = 450
	minFixedPoints     = 3
	longVecSumDecision = 126
)

// ApproxOptions configures ApproximateOutline.
type ApproxOptions struct {
	approxDist float64
}

// ApproxOption customizes ApproxOptions before approximation runs.
type ApproxOption func(*ApproxOptions)

// WithApproxDist overrides the default approx_dist tuning constant (15).
func WithApproxDist(d float64) ApproxOption {
	return func(o *ApproxOptions) { o.approxDist = d }
}

func newApproxOptions(opts ...ApproxOption) ApproxOptions {
	o := ApproxOptions{approxDist: defaultApproxDist}
	for _, f := range opts {
		f(&o)
	}

	return o
}

// edgeStepPoint is an intermediate edgepoint produced by Phase A, before
// fixed/unfixed classification.
type edgeStepPoint struct {
	pos       geometry.FPoint
	vec       geometry.FPoint
	runLength int
	dir       uint8
	fixed     bool
}

// ApproximateOutline runs the three-phase algorithm of spec.md §4.2 on a
// chain-coded COutline (and recursively on its children), producing a
// TessLine ring approximating it with fewer, straighter segments.
//
// Complexity: O(L) where L is the outline's step count.
func ApproximateOutline(o *COutline, opts ...ApproxOption) (*TessLine, error) {
	if len(o.Steps) == 0 {
		return nil, ErrEmptyOutline
	}
	options := newApproxOptions(opts...)

	pts := edgestepsToEdgepts(o)
	area := math.Abs(float64(o.SignedArea())) / 2
	if area < minBoundingArea {
		area = minBoundingArea
	}
	fix2(pts, area)
	poly2(pts, area, options.approxDist)

	tess := buildTessLine(pts, false)

	for _, child := range o.Children {
		childTess, err := ApproximateOutline(child, opts...)
		if err != nil {
			return nil, err
		}
		childTess.IsHole = true
		tess.Children = append(tess.Children, childTess)
	}

	return tess, nil
}

// edgestepsToEdgepts implements Phase A: collapse runs of identical
// chain-code direction into a single edgepoint, merging 45-degree step
// pairs into one diagonal edgepoint.
func edgestepsToEdgepts(o *COutline) []*edgeStepPoint {
	var pts []*edgeStepPoint
	pos := o.Start
	n := len(o.Steps)
	i := 0
	for i < n {
		dir := stepDir(o.Steps[i])
		runStart := pos
		vec := geometry.FPoint{}
		run := 0
		for i < n && stepDir(o.Steps[i]) == dir {
			d := o.Steps[i].Delta()
			pos = geometry.IPoint{X: pos.X + d.X, Y: pos.Y + d.Y}
			vec = vec.Add(d.ToFPoint())
			run++
			i++
		}
		// 45-degree pair merge: the next code is the twin direction
		// (dir-1 mod 4 expressed in the 0..7 space) immediately following.
		if i < n {
			nextDir := stepDir(o.Steps[i])
			if isDiagonalTwin(dir, nextDir) {
				d := o.Steps[i].Delta()
				pos = geometry.IPoint{X: pos.X + d.X, Y: pos.Y + d.Y}
				vec = vec.Add(d.ToFPoint())
				i++
			}
		}
		pts = append(pts, &edgeStepPoint{
			pos:       runStart.ToFPoint(),
			vec:       vec,
			runLength: run,
			dir:       dir,
		})
	}

	return pts
}

func stepDir(s ChainStep) uint8 { return uint8(s) * 2 } // spread 4 steps into the 0..7 octant space

func isDiagonalTwin(a, b uint8) bool {
	diff := int(a) - int(b)
	if diff < 0 {
		diff = -diff
	}

	return diff == 2 // a 90-degree-apart pair combines into one diagonal run
}

// fix2 implements Phase B: mark sharp bends FIXED, unfix false-positive
// isolated fixes, then enforce the minimum-gap rule.
func fix2(pts []*edgeStepPoint, area float64) {
	n := len(pts)
	if n == 0 {
		return
	}
	for i, p := range pts {
		prevDir := pts[(i-1+n)%n].dir
		dirDelta := int(p.dir) - int(prevDir)
		if dirDelta < 0 {
			dirDelta = -dirDelta
		}
		if dirDelta > 2 || p.runLength >= 8 {
			p.fixed = true
		}
	}
	// unfix isolated fixed points between two runs of identical direction
	for i, p := range pts {
		if !p.fixed {
			continue
		}
		prevP := pts[(i-1+n)%n]
		nextP := pts[(i+1)%n]
		if prevP.dir == nextP.dir && (!prevP.fixed && !nextP.fixed) {
			p.fixed = false
		}
	}

	gapMin := area * 400 / 44000
	enforceMinGap(pts, gapMin)
}

func enforceMinGap(pts []*edgeStepPoint, gapMin float64) {
	for {
		fixedIdx := fixedIndices(pts)
		if len(fixedIdx) <= minFixedPoints {
			return
		}
		unfixedAny := false
		for w := 0; w+3 < len(fixedIdx); w++ {
			f0, f1, f2, f3 := pts[fixedIdx[w]], pts[fixedIdx[w+1]], pts[fixedIdx[w+2]], pts[fixedIdx[w+3]]
			d := f1.pos.Sub(f2.pos)
			sq := float64(d.X)*float64(d.X) + float64(d.Y)*float64(d.Y)
			if sq < gapMin {
				left := f0.pos.Sub(f1.pos).Length()
				right := f2.pos.Sub(f3.pos).Length()
				if left < right {
					f1.fixed = false
				} else {
					f2.fixed = false
				}
				unfixedAny = true

				break
			}
		}
		if !unfixedAny {
			return
		}
		if len(fixedIndices(pts)) <= minFixedPoints {
			return
		}
	}
}

func fixedIndices(pts []*edgeStepPoint) []int {
	var idx []int
	for i, p := range pts {
		if p.fixed {
			idx = append(idx, i)
		}
	}

	return idx
}

// poly2 implements Phase C: recursive cutline refinement between
// consecutive fixed points, retrying with halved area if fewer than
// three points end up fixed.
func poly2(pts []*edgeStepPoint, area, approxDist float64) {
	for {
		fixedIdx := fixedIndices(pts)
		if len(fixedIdx) >= minFixedPoints {
			break
		}
		area /= 2
		if area < 1 {
			break
		}
		fix2(pts, area)
	}
	fixedIdx := fixedIndices(pts)
	if len(fixedIdx) < 2 {
		return
	}
	for i := 0; i < len(fixedIdx); i++ {
		first := fixedIdx[i]
		last := fixedIdx[(i+1)%len(fixedIdx)]
		cutline(pts, first, last, area, approxDist)
	}
}

// cutline recursively fixes the interior point of maximum perpendicular
// deviation from the chord (first, last) whenever that deviation exceeds
// the area-scaled threshold, per spec.md §4.2's cutline pseudocode.
func cutline(pts []*edgeStepPoint, first, last int, area, approxDist float64) {
	n := len(pts)
	span := last - first
	if span < 0 {
		span += n
	}
	if span <= 1 {
		return
	}
	vecsum := pts[last].pos.Sub(pts[first].pos)
	if vecsum.Length() == 0 {
		vecsum = pts[(first-1+n)%n].vec
	}

	var acc geometry.FPoint
	var maxPerp float64
	var sumSquares float64
	maxIdx := -1
	count := 0
	for i := (first + 1) % n; i != last; i = (i + 1) % n {
		acc = acc.Add(pts[i].vec)
		perp := float64(acc.Cross(vecsum))
		sumSquares += perp * perp
		count++
		if absF(perp) > maxPerp {
			maxPerp = absF(perp)
			maxIdx = i
		}
	}
	if maxIdx < 0 {
		return
	}
	vlen := float64(vecsum.Length())
	if vlen == 0 {
		return
	}
	maxPerp /= vlen
	msd := sumSquares / (vlen * float64(count))

	par1 := 4500 / (approxDist * approxDist)
	par2 := 6750 / (approxDist * approxDist)
	decide := maxPerp*par1 >= 10*area ||
		msd*par2 >= 10*area ||
		vlen >= longVecSumDecision

	if decide {
		pts[maxIdx].fixed = true
		cutline(pts, first, maxIdx, area, approxDist)
		cutline(pts, maxIdx, last, area, approxDist)
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func buildTessLine(pts []*edgeStepPoint, isHole bool) *TessLine {
	var fixedPts []geometry.FPoint
	var fixedMeta []*edgeStepPoint
	for _, p := range pts {
		if p.fixed {
			fixedPts = append(fixedPts, p.pos)
			fixedMeta = append(fixedMeta, p)
		}
	}
	tess := NewTessLineFromPoints(fixedPts, isHole)
	// carry RunLength/Dir metadata onto the built ring, matching the
	// spec's instruction that surviving points keep flags[RUNLENGTH]/[DIR].
	if tess.head != nil {
		p := tess.head
		for i := range fixedMeta {
			p.RunLength = fixedMeta[i].runLength
			p.Dir = fixedMeta[i].dir
			p.Fixed = true
			p = p.next
		}
	}

	return tess
}
