package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels, so that unbounded shapes visibly run
// off the edge.
const drawPadding = 50

// Draw a set of shapes into a new context, with the origin at the bottom left.
// Areas are filled (holes in a different color) and stroked; lines and rays
// are clipped to the drawing. The scale is pixels per unit.
func Draw(shapes []Shape, scale float64) *gg.Context {
	var bounds *AABB
	for _, s := range shapes {
		var b *AABB
		switch s := s.(type) {
		case Bounded:
			b = s.AABB()
		case *Line:
			b = NewAABB(s.P(), s.Q())
		case *Ray:
			b = NewAABB(s.Start(), s.Line().Q())
		}
		if b == nil {
			continue
		}
		if bounds == nil {
			bounds = b.Clone()
		} else {
			bounds = bounds.Union(b)
		}
	}
	if bounds == nil {
		bounds = NewAABBFromExtents(0, 1, 0, 1)
	}

	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.XMin(), -bounds.YMin())

	// Long enough to cross the whole drawing from anywhere on it
	reach := (float64(width) + float64(height)) / scale

	c.SetLineWidth(2)
	for _, s := range shapes {
		drawShape(c, s, reach)
	}
	return c
}

func drawShape(c *gg.Context, s Shape, reach float64) {
	switch s := s.(type) {
	case Point:
		c.SetRGB(1, 0.3, 0.3)
		c.DrawPoint(s.X(), s.Y(), 3)
		c.Fill()
	case *Segment:
		c.SetRGB(0, 1, 1)
		c.DrawLine(s.P().X(), s.P().Y(), s.Q().X(), s.Q().Y())
		c.Stroke()
	case *Line:
		u := s.Direction().Unit().Scale(reach)
		a, b := s.P().Translate(u.Reverse()), s.P().Translate(u)
		c.SetRGB(1, 1, 0)
		c.DrawLine(a.X(), a.Y(), b.X(), b.Y())
		c.Stroke()
	case *Ray:
		end := s.Start().Translate(s.Direction().Unit().Scale(reach))
		c.SetRGB(1, 0.6, 0)
		c.DrawLine(s.Start().X(), s.Start().Y(), end.X(), end.Y())
		c.Stroke()
	case *Polygon:
		drawRing(c, s.Points(), s.IsHole())
		for _, h := range s.HoleList() {
			drawShape(c, h, reach)
		}
	case Finite:
		drawRing(c, s.Points(), false)
	}
}

func drawRing(c *gg.Context, points []Point, hole bool) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X(), points[0].Y())
	for _, p := range points[1:] {
		c.LineTo(p.X(), p.Y())
	}
	c.ClosePath()
	if hole {
		c.SetRGBA(1, 1, 0, 0.5)
	} else {
		c.SetRGBA(0, 0.5, 0, 0.7)
	}
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
}

// Draw shapes to a PNG file and, if show is set, print the image in the
// terminal (iTerm only).
func SavePNG(shapes []Shape, scale float64, path string, show bool) error {
	c := Draw(shapes, scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if show {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

// A scale that fits the shapes' larger extent into size pixels.
func FitScale(shapes []Shape, size float64) float64 {
	extent := 0.0
	for _, s := range shapes {
		if b, ok := s.(Bounded); ok {
			extent = math.Max(extent, math.Max(b.AABB().Width(), b.AABB().Height()))
		}
	}
	if extent == 0 {
		return 1
	}
	return size / extent
}
