package intersect

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// RenderPNG draws the input polygons as outlines and the intersection as
// filled shapes. Used by the demo binary, and handy when debugging a sweep.
func RenderPNG(path string, inputs PolygonList, results []*ResultPolygon, scale float64) error {
	var all []*Point
	for _, poly := range inputs {
		all = append(all, poly.Points...)
	}
	for _, r := range results {
		all = append(all, r.Outer.Points...)
	}
	if len(all) == 0 {
		return nil
	}
	box := BoundingBoxOf(all)

	width := int(scale*float64(box.MaxX-box.MinX)) + drawPadding*2
	height := int(scale*float64(box.MaxY-box.MinY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-float64(box.MinX), -float64(box.MinY))

	// The result first, filled. Tracing holes into the same path and filling
	// even-odd leaves them unpainted.
	c.SetLineWidth(2)
	for _, r := range results {
		tracePolygon(c, r.Outer)
		for _, hole := range r.Holes {
			tracePolygon(c, hole)
		}
	}
	c.SetRGBA(0, 0.8, 0, 0.6)
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.Stroke()

	// Input outlines on top
	for _, poly := range inputs {
		tracePolygon(c, poly)
	}
	c.SetRGBA(0.3, 0.3, 1, 0.9)
	c.Stroke()

	return c.SavePNG(path)
}

func tracePolygon(c *gg.Context, poly *Polygon) {
	c.MoveTo(float64(poly.Points[0].X), float64(poly.Points[0].Y))
	for _, p := range poly.Points[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
}

// Render and print inline in the terminal (iTerm only). Debugging helper.
func dbgShow(inputs PolygonList, results []*ResultPolygon, scale float64) {
	if err := RenderPNG("/tmp/intersection.png", inputs, results, scale); err != nil {
		return
	}
	imgcat.CatFile("/tmp/intersection.png", os.Stdout)
}
