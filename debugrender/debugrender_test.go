package debugrender

import (
	"testing"

	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
	"github.com/stretchr/testify/require"
)

func TestCanvas_DrawBoxAndOutline(t *testing.T) {
	bounds := geometry.NewBoxFromCoords(0, 0, 20, 20)
	c := NewCanvas(bounds)

	c.DrawBox(geometry.NewBoxFromCoords(2, 2, 10, 10))

	pts := []geometry.FPoint{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 5, Y: 5},
		{X: 0, Y: 5},
	}
	line := outline.NewTessLineFromPoints(pts, false)
	c.DrawOutline(line)

	img := c.Image()
	require.NotNil(t, img)
	require.Equal(t, 21, img.Bounds().Dx())

	scaled := c.Scaled(2)
	require.Equal(t, img.Bounds().Dx()*2, scaled.Image().Bounds().Dx())
}

func TestSummary(t *testing.T) {
	require.Equal(t, "1,000 boxes, 5 outlines", Summary(1000, 5))
}
