package denorm

import "github.com/katalvlaran/docseg/geometry"

// LocalNormTransform applies just this stage's forward transform (origin
// shift, scale, final shift, then rotation), without the predecessor
// chain. Mirrors normalis.cpp's DENORM::LocalNormTransform.
func (s Stage) LocalNormTransform(p geometry.FPoint) geometry.FPoint {
	x := (p.X-s.XOrigin)*s.XScale + s.FinalXShift
	y := (p.Y-s.y0(p.X))*s.yScaleAt(p.X) + s.FinalYShift
	out := geometry.FPoint{X: x, Y: y}
	if s.HasRotation {
		out = out.Rotate(s.Rotation.Cx, s.Rotation.Cy)
	}

	return out
}

// LocalDenormTransform applies the inverse of LocalNormTransform.
func (s Stage) LocalDenormTransform(p geometry.FPoint) geometry.FPoint {
	in := p
	if s.HasRotation {
		in = in.ReverseRotate(s.Rotation.Cx, s.Rotation.Cy)
	}
	x := s.XOrigin
	if s.XScale != 0 {
		x = (in.X-s.FinalXShift)/s.XScale + s.XOrigin
	}
	scale := s.yScaleAt(x)
	y := s.y0(x)
	if scale != 0 {
		y = (in.Y-s.FinalYShift)/scale + s.y0(x)
	}

	return geometry.FPoint{X: x, Y: y}
}

// NormTransform applies the full forward chain: the predecessor stages
// first (outermost to innermost, i.e. Stages[0] first), then this
// stage's LocalNormTransform, or — for the chain's first stage, when
// HasBlockRotation is set — the inverse of the block's re-rotation
// before the local transform, per spec.md §3.4.
func (d *Denorm) NormTransform(p geometry.FPoint) geometry.FPoint {
	out := p
	for i, s := range d.Stages {
		if i == 0 && s.HasBlockRotation {
			out = out.ReverseRotate(s.BlockRotation.Cx, s.BlockRotation.Cy)
		}
		out = s.LocalNormTransform(out)
	}

	return out
}

// DenormTransform applies the full inverse chain, right-to-left.
func (d *Denorm) DenormTransform(p geometry.FPoint) geometry.FPoint {
	out := p
	for i := len(d.Stages) - 1; i >= 0; i-- {
		s := d.Stages[i]
		out = s.LocalDenormTransform(out)
		if i == 0 && s.HasBlockRotation {
			out = out.Rotate(s.BlockRotation.Cx, s.BlockRotation.Cy)
		}
	}

	return out
}

// LocalNormBlob applies LocalNormTransform to every point of a ring of
// positions, returning the transformed positions in order. Used to
// baseline-normalize a TBlob's points for classification.
func (s Stage) LocalNormBlob(pts []geometry.FPoint) []geometry.FPoint {
	out := make([]geometry.FPoint, len(pts))
	for i, p := range pts {
		out[i] = s.LocalNormTransform(p)
	}

	return out
}

// XHeightRange reports whether a candidate character's bln-normalized
// height band [bottom, top] is an acceptable fit for ordinary (non-sub/
// superscript) x-height text, per normalis.cpp's XHeightRange
// acceptance test: the band must reach at least minCoverage of
// [BlnBaselineOffset, BlnBaselineOffset+BlnXHeight] and not overshoot
// by more than maxOvershoot on either side.
func XHeightRange(bottom, top float32, minCoverage, maxOvershoot float32) bool {
	bandBottom := float32(BlnBaselineOffset)
	bandTop := float32(BlnBaselineOffset + BlnXHeight)
	if bottom > bandTop || top < bandBottom {
		return false
	}
	coverage := minF(top, bandTop) - maxF(bottom, bandBottom)
	if coverage < minCoverage*float32(BlnXHeight) {
		return false
	}
	overshootBelow := bandBottom - bottom
	overshootAbove := top - bandTop

	return overshootBelow <= maxOvershoot*float32(BlnXHeight) &&
		overshootAbove <= maxOvershoot*float32(BlnXHeight)
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}
