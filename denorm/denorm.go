// Package denorm implements the coordinate denormalization chain of
// spec.md §3.4: a sequence of Denorm stages mapping image space to
// baseline-normalized classifier space and back, grounded on
// ccstruct/normalis.{h,cpp}.
//
// Per the Design Notes (§9) and the Open Question decision recorded in
// SPEC_FULL.md §6, the chain is represented as an explicit slice of
// stages rather than recursive predecessor pointers: NormTransform
// applies left-to-right, DenormTransform (inverse) applies right-to-left.
package denorm

import "errors"

// Baseline-normalized classifier-space constants, per spec.md §6.5.
const (
	BlnCellHeight     = 256
	BlnXHeight        = 128
	BlnBaselineOffset = 64
)

// Sentinel errors for denorm package operations.
var (
	// ErrNoSegments names an empty y-segment table. No function in this
	// package returns it: a stage with an empty table skips the lookup.
	ErrNoSegments = errors.New("denorm: y-segment table is empty")
)

// YSegment is one entry of the optional per-x-range y lookup table.
type YSegment struct {
	XStart int32
	YCoord float32
	YScale float32
}

// BaselineFunc evaluates a row's baseline at a given x, standing in for
// the original QSPLINE::y(x) lookup (spec.md §3.3's Row.baseline).
type BaselineFunc func(x float32) float32

// Options configure a whole Denorm chain's legacy behavior toggles.
type Options struct {
	// PitSyncProjectionFix is an opaque legacy behavior toggle; see
	// SPEC_FULL.md §6 — semantics intentionally undocumented upstream.
	PitSyncProjectionFix bool
}

// Option customizes Options.
type Option func(*Options)

// WithPitSyncProjectionFix enables the legacy pit-sync projection fix.
func WithPitSyncProjectionFix(enabled bool) Option {
	return func(o *Options) { o.PitSyncProjectionFix = enabled }
}

// Rotation is a unit direction (cx, cy) with cx²+cy² == 1.
type Rotation struct {
	Cx, Cy float32
}

// Identity returns the no-op rotation.
func Identity() Rotation { return Rotation{Cx: 1, Cy: 0} }

// Stage is one step of the transform sequence image -> classifier space.
type Stage struct {
	XOrigin, YOrigin         float32
	XScale, YScale           float32
	FinalXShift, FinalYShift float32

	// Baseline, when non-nil, shifts the y origin per-x via Baseline(x).
	Baseline BaselineFunc
	// YSegments, when non-empty, overrides Baseline/YOrigin/YScale for
	// x ranges it covers; sorted ascending by XStart.
	YSegments []YSegment

	// Rotation is applied after scale.
	Rotation Rotation
	HasRotation bool

	// BlockRotation is the source block's re-rotation; NormTransform
	// applies its inverse (and DenormTransform the rotation itself) only
	// when this is the chain's first stage (spec.md §3.4).
	BlockRotation Rotation
	HasBlockRotation bool

	Inverse bool // source is white-on-black
}

// Denorm is an ordered sequence of Stages; Forward[0] is applied first.
type Denorm struct {
	Stages  []Stage
	Options Options
}

// NewDenorm builds a Denorm with no stages and the given options; add
// stages, outermost first, with Push.
func NewDenorm(opts ...Option) *Denorm {
	o := Options{}
	for _, f := range opts {
		f(&o)
	}

	return &Denorm{Options: o}
}

// Push appends a stage to the chain.
func (d *Denorm) Push(s Stage) { d.Stages = append(d.Stages, s) }

// SetupBLNormalize configures a single stage mapping a row's baseline at
// x_origin to BlnBaselineOffset, scaling so x_height maps to BlnXHeight,
// matching normalis.cpp's SetupBLNormalize.
func SetupBLNormalize(xOrigin, xHeight float32, baseline BaselineFunc) Stage {
	scale := float32(BlnXHeight)
	if xHeight > 0 {
		scale = float32(BlnXHeight) / xHeight
	}

	return Stage{
		XOrigin:     xOrigin,
		XScale:      scale,
		YScale:      scale,
		Baseline:    baseline,
		FinalYShift: BlnBaselineOffset,
	}
}

// y0 resolves the per-x y-origin for a stage: y-segment lookup first,
// else the row baseline plus y-origin, else plain y-origin.
func (s Stage) y0(x float32) float32 {
	if len(s.YSegments) > 0 {
		return s.ySegmentLookup(x).YCoord
	}
	if s.Baseline != nil {
		return s.Baseline(x) + s.YOrigin
	}

	return s.YOrigin
}

func (s Stage) yScaleAt(x float32) float32 {
	if len(s.YSegments) > 0 {
		return s.ySegmentLookup(x).YScale
	}

	return s.YScale
}

// ySegmentLookup performs binary search for the segment with the
// greatest XStart <= x, per spec.md §3.4's stated invariant.
func (s Stage) ySegmentLookup(x float32) YSegment {
	segs := s.YSegments
	lo, hi := 0, len(segs)-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if float32(segs[mid].XStart) <= x {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return segs[best]
}
