// Package debugrender rasterizes geometry/outline types to a PNG for
// developers inspecting segmentation decisions, per SPEC_FULL.md §2's
// wiring of golang.org/x/image. This is plumbing around the in-scope
// geometry and outline types, not the "display/plotting surfaces"
// external collaborator spec.md §1 names out of scope.
package debugrender

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
	xdraw "golang.org/x/image/draw"
)

// Palette indices used by the rendered canvas.
var palette = color.Palette{
	color.White,
	color.Black,
	color.RGBA{R: 220, G: 20, B: 60, A: 255},  // boxes
	color.RGBA{R: 30, G: 144, B: 255, A: 255}, // outlines
}

const (
	colorBackground = 0
	colorBoxes      = 2
	colorOutlines   = 3
)

// Canvas is a paletted raster used to accumulate debug drawings before
// encoding to PNG.
type Canvas struct {
	img *image.Paletted
}

// NewCanvas allocates a blank Canvas spanning bounds.
func NewCanvas(bounds geometry.Box) *Canvas {
	rect := image.Rect(int(bounds.Bl.X), int(bounds.Bl.Y), int(bounds.Tr.X)+1, int(bounds.Tr.Y)+1)
	img := image.NewPaletted(rect, palette)
	draw.Draw(img, rect, image.NewUniform(palette[colorBackground]), image.Point{}, draw.Src)

	return &Canvas{img: img}
}

// DrawBox outlines box on the canvas.
func (c *Canvas) DrawBox(box geometry.Box) {
	c.drawRectOutline(int(box.Bl.X), int(box.Bl.Y), int(box.Tr.X), int(box.Tr.Y), colorBoxes)
}

// DrawOutline draws a TessLine ring's polyline on the canvas.
func (c *Canvas) DrawOutline(t *outline.TessLine) {
	head := t.Head()
	if head == nil {
		return
	}
	p := head
	for {
		n := p.Next(false)
		c.drawLine(int(p.Pos.X), int(p.Pos.Y), int(n.Pos.X), int(n.Pos.Y), colorOutlines)
		p = n
		if p == head {
			break
		}
	}
}

func (c *Canvas) drawRectOutline(x0, y0, x1, y1 int, idx uint8) {
	c.drawLine(x0, y0, x1, y0, idx)
	c.drawLine(x1, y0, x1, y1, idx)
	c.drawLine(x1, y1, x0, y1, idx)
	c.drawLine(x0, y1, x0, y0, idx)
}

// drawLine is a minimal Bresenham rasterizer; debug output only.
func (c *Canvas) drawLine(x0, y0, x1, y1 int, idx uint8) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		c.img.SetColorIndex(x0, y0, idx)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Scaled returns a copy of the canvas scaled by factor using
// golang.org/x/image/draw's nearest-neighbor scaler, useful for magnifying
// small blobs in the rendered dump.
func (c *Canvas) Scaled(factor int) *Canvas {
	src := c.img.Bounds()
	dstRect := image.Rect(0, 0, src.Dx()*factor, src.Dy()*factor)
	dst := image.NewPaletted(dstRect, palette)
	xdraw.NearestNeighbor.Scale(dst, dstRect, c.img, src, xdraw.Src, nil)

	return &Canvas{img: dst}
}

// Image exposes the underlying raster for PNG encoding by the caller.
func (c *Canvas) Image() image.Image { return c.img }

// Summary renders a short human-readable caption for the canvas,
// wiring go-humanize per SPEC_FULL.md §2.
func Summary(boxCount, outlineCount int) string {
	return humanize.Comma(int64(boxCount)) + " boxes, " + humanize.Comma(int64(outlineCount)) + " outlines"
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
