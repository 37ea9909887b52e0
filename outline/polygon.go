package outline

import "github.com/katalvlaran/docseg/geometry"

// PolyPoint is one vertex of a polygonal (non-chopped) Outline ring.
type PolyPoint struct {
	Pos geometry.FPoint
	Vec geometry.FPoint // to the next point
}

// Outline is a polygonal simplification of a COutline: an ordered ring
// of PolyPoints plus its own children (holes).
type Outline struct {
	Points   []PolyPoint
	Box      geometry.Box
	Children []*Outline
}

// PBlob is a polygonal blob: a list of top-level Outlines it owns.
type PBlob struct {
	Outlines []*Outline
}

// EdgePoint is a vertex of a chopped-representation ring (TessLine). It
// replaces the original four opaque `flags` bytes with named fields, per
// the Open Question decision recorded in SPEC_FULL.md §6: only the
// polygonal approximator exercises Fixed/RunLength/Dir, so they are
// ordinary fields rather than a bitfield.
type EdgePoint struct {
	Pos geometry.FPoint
	Vec geometry.FPoint

	// Hidden marks a point folded away by a join (seam package); a
	// TessLine traversal that respects hiding skips these points.
	Hidden bool
	// Fixed marks a point retained as a polygon vertex by the poly2 pass.
	Fixed bool
	// RunLength is the number of chain-code steps collapsed into this
	// point by the edgesteps_to_edgepts phase.
	RunLength int
	// Dir is the step direction code (0..7) of the run that starts at
	// this point.
	Dir uint8

	prev, next *EdgePoint
}

// Next returns the following point in the ring, respecting Hidden only
// if skipHidden is true.
func (p *EdgePoint) Next(skipHidden bool) *EdgePoint {
	n := p.next
	for skipHidden && n.Hidden && n != p {
		n = n.next
	}

	return n
}

// Prev is the mirror of Next.
func (p *EdgePoint) Prev(skipHidden bool) *EdgePoint {
	n := p.prev
	for skipHidden && n.Hidden && n != p {
		n = n.prev
	}

	return n
}

// TessLine is a ring of EdgePoints forming one chopped outline (or hole,
// when IsHole is true), with a cached bounding box.
type TessLine struct {
	head   *EdgePoint
	count  int
	Box    geometry.Box
	IsHole bool
	// Children holds nested hole TessLines; populated only by
	// ApproximateOutline, ignored by the chopping/seam subsystem.
	Children []*TessLine
}

// NewTessLineFromPoints builds a circular TessLine from an ordered slice
// of point positions, one EdgePoint per position (Vec and prev/next
// links are computed from Pos).
func NewTessLineFromPoints(pts []geometry.FPoint, isHole bool) *TessLine {
	t := &TessLine{IsHole: isHole}
	if len(pts) == 0 {
		return t
	}
	nodes := make([]*EdgePoint, len(pts))
	for i, p := range pts {
		nodes[i] = &EdgePoint{Pos: p, Fixed: true}
	}
	for i := range nodes {
		nodes[i].next = nodes[(i+1)%len(nodes)]
		nodes[i].prev = nodes[(i-1+len(nodes))%len(nodes)]
		nodes[i].Vec = nodes[i].next.Pos.Sub(nodes[i].Pos)
	}
	t.head = nodes[0]
	t.count = len(nodes)
	t.Box = t.computeBox()

	return t
}

// Head returns the ring's entry point, or nil for an empty TessLine.
func (t *TessLine) Head() *EdgePoint { return t.head }

// Count returns the number of points in the ring (not skipping hidden
// points, since Hidden is a seam-join property, not a removal).
func (t *TessLine) Count() int { return t.count }

func (t *TessLine) computeBox() geometry.Box {
	if t.head == nil {
		return geometry.EmptyBox()
	}
	toI := func(p geometry.FPoint) geometry.IPoint {
		return geometry.IPoint{X: int16(p.X), Y: int16(p.Y)}
	}
	box := geometry.NewBox(toI(t.head.Pos), toI(t.head.Pos))
	for p := t.head.next; p != t.head; p = p.next {
		box = box.BoundingUnion(geometry.NewBox(toI(p.Pos), toI(p.Pos)))
	}

	return box
}

// Splice concatenates other's ring onto t immediately after at, used by
// the seam package's join_pieces to merge two chopped blobs' outline
// rings into one. Returns an error if at does not belong to t's ring.
func (t *TessLine) Splice(at *EdgePoint, other *TessLine) error {
	if other.head == nil {
		return nil
	}
	if !t.contains(at) {
		return ErrEmptyOutline
	}
	after := at.next
	last := other.head
	for last.next != other.head {
		last = last.next
	}
	at.next = other.head
	other.head.prev = at
	last.next = after
	after.prev = last
	t.count += other.count
	t.Box = t.computeBox()

	return nil
}

func (t *TessLine) contains(target *EdgePoint) bool {
	if t.head == nil {
		return false
	}
	p := t.head
	for {
		if p == target {
			return true
		}
		p = p.next
		if p == t.head {
			return false
		}
	}
}

// CutAfter breaks the ring immediately after at, removing the span
// (at, boundary] into a new TessLine whose head is at's old successor
// and whose last point is boundary; at is relinked to boundary's old
// successor — used by break_pieces (seam package) to restore per-blob
// rings after a join is undone.
func (t *TessLine) CutAfter(at *EdgePoint, boundary *EdgePoint) (*TessLine, error) {
	if !t.contains(at) || !t.contains(boundary) {
		return nil, ErrEmptyOutline
	}
	newHead := at.next
	afterBoundary := boundary.next
	at.next = afterBoundary
	afterBoundary.prev = at
	boundary.next = newHead
	newHead.prev = boundary

	count := 1
	for p := newHead; p != boundary; p = p.next {
		count++
	}
	other := &TessLine{head: newHead, count: count}
	other.Box = other.computeBox()

	t.count -= count
	t.Box = t.computeBox()

	return other, nil
}

// TBlob is a chopped blob: the finest unit the segmentation search
// considers, owning one or more TessLine rings (outer plus holes).
type TBlob struct {
	Outlines []*TessLine
}

// BoundingBox returns the union of all owned TessLine boxes.
func (b *TBlob) BoundingBox() geometry.Box {
	if len(b.Outlines) == 0 {
		return geometry.EmptyBox()
	}
	box := b.Outlines[0].Box
	for _, o := range b.Outlines[1:] {
		box = box.BoundingUnion(o.Box)
	}

	return box
}

// TWerd is the chopped working representation of a Werd: an ordered
// list of TBlobs (left to right, per spec.md §5) plus a script flag.
// No function in this module reads LatinScript; the superscript package
// takes its inputs through its own types.
type TWerd struct {
	Blobs       []*TBlob
	LatinScript bool
}

// BlobBox returns the bounding box of the blob at index i.
func (w *TWerd) BlobBox(i int) geometry.Box { return w.Blobs[i].BoundingBox() }
