package advanced

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geometry/internal/dbg"
	"github.com/pkg/errors"
)

// This is for debugging purposes only

// Padding around the shapes so that nothing sits on the image edge
const dbgDrawPadding = 20

// Draw segments and triangles onto a fresh context, with the origin at the
// bottom left. Each shape is labelled with its debug name. Non-finite points
// are left out of the bounds, so they won't blow up the canvas size.
func DbgRender(scale float64, segments []Segment, triangles []Triangle) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p Point) {
		if !p.IsFinite() {
			return
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, s := range segments {
		grow(s.Start)
		grow(s.End)
	}
	for _, t := range triangles {
		for _, p := range t.Vertices() {
			grow(p)
		}
	}
	if minX > maxX { // Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, t := range triangles {
		v := t.Vertices()
		c.MoveTo(v[0].X, v[0].Y)
		c.LineTo(v[1].X, v[1].Y)
		c.LineTo(v[2].X, v[2].Y)
		c.ClosePath()
		if t.IsRight() {
			c.SetRGBA(0, 0.8, 0.8, 0.5)
		} else {
			c.SetRGBA(0, 0.5, 0, 0.5)
		}
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
		dbgLabel(c, dbg.Name(t), (v[0].X+v[1].X+v[2].X)/3, (v[0].Y+v[1].Y+v[2].Y)/3)
	}

	for i := range segments {
		s := &segments[i]
		c.MoveTo(s.Start.X, s.Start.Y)
		c.LineTo(s.End.X, s.End.Y)
		c.SetRGB(1, 1, 0)
		c.Stroke()
		mid := s.Midpoint()
		dbgLabel(c, dbg.Name(s), mid.X, mid.Y)
	}
	return c
}

// Text has to be drawn without the flip, or it comes out upside down. So get
// the point in native coordinates and draw from the identity matrix.
func dbgLabel(c *gg.Context, text string, x, y float64) {
	x, y = c.TransformPoint(x, y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(text, x, y, 0.5, 0.5)
	c.Pop()
}

// Render, save the PNG to path, and print it to w (iTerm only).
func DbgDraw(w io.Writer, path string, scale float64, segments []Segment, triangles []Triangle) error {
	c := DbgRender(scale, segments, triangles)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving debug render to %s", path)
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing debug render")
}
