package internal

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Padding around the shape, in pixels
const drawPadding = 20

// Render a triangulation, for eyeballing results. Each triangle is filled green
// and outlined in cyan, so gaps show up black and overlaps show up as crossed
// outlines. The origin is at the bottom left, like the source coordinates.
func DrawTriangulation(points []Point, triangles []Triangle, scale float64) image.Image {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	c.SetLineWidth(1)

	for _, tri := range triangles {
		c.MoveTo(points[tri[0]].X, points[tri[0]].Y)
		c.LineTo(points[tri[1]].X, points[tri[1]].Y)
		c.LineTo(points[tri[2]].X, points[tri[2]].Y)
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	return c.Image()
}
