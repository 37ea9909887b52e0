package structunit

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/docseg/denorm"
	"github.com/katalvlaran/docseg/geometry"
)

// ParagraphRef is an opaque back-reference to a paragraph, matching
// ccstruct/ocrrow.h's PARA* field: paragraph analysis itself is out of
// scope (spec.md §1), so this module never dereferences it.
type ParagraphRef any

// Row bundles baseline-normalization and spacing statistics plus the
// word list for one text line, grounded on ccstruct/ocrrow.h.
type Row struct {
	ID uuid.UUID

	Words []*Werd

	Baseline denorm.BaselineFunc
	BoundBox geometry.Box

	XHeight    float32
	Ascenders  float32 // ascender rise
	Descenders float32 // descender drop (stored as a positive size)
	BodySize   float32 // CJK body size; defaults to xheight+ascenders

	Kerning int32
	Spacing int32

	// Set after block analysis, per ocrrow.h.
	HasDropCap bool
	LMargin    int16
	RMargin    int16

	// Set during paragraph analysis, per ocrrow.h.
	Paragraph ParagraphRef
}

// NewRow constructs a Row with BodySize defaulted to XHeight+Ascenders,
// matching ocrrow.h's documented default.
func NewRow(xHeight, ascenders, descenders float32, baseline denorm.BaselineFunc) *Row {
	return &Row{
		ID:         uuid.New(),
		XHeight:    xHeight,
		Ascenders:  ascenders,
		Descenders: descenders,
		BodySize:   xHeight + ascenders,
		Baseline:   baseline,
	}
}

// BaseLine evaluates the row's baseline spline at xpos.
func (r *Row) BaseLine(xpos float32) float32 {
	if r.Baseline == nil {
		return 0
	}

	return r.Baseline(xpos)
}

// RecalcBoundingBox recomputes BoundBox as the union of all word boxes,
// matching the spec.md §3.3 invariant "a row's bounding box equals the
// union of its words' bounding boxes".
func (r *Row) RecalcBoundingBox() {
	if len(r.Words) == 0 {
		r.BoundBox = geometry.EmptyBox()

		return
	}
	box := r.Words[0].BoundingBox()
	for _, w := range r.Words[1:] {
		box = box.BoundingUnion(w.BoundingBox())
	}
	r.BoundBox = box
}
