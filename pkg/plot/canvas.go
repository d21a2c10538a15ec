package plot

import (
	"image/color"

	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/philipparndt/goplot3d/pkg/viewer"
)

// Canvas collects the primitives of one frame
type Canvas struct {
	Frame     *draw.Frame
	Projector *viewer.Projector
	Measurer  draw.TextMeasurer
}

// NewCanvas wraps a frame whose transforms are already set
func NewCanvas(frame *draw.Frame, measurer draw.TextMeasurer) *Canvas {
	if measurer == nil {
		measurer = draw.NewBasicMeasurer()
	}
	return &Canvas{
		Frame:     frame,
		Projector: viewer.ForFrame(frame),
		Measurer:  measurer,
	}
}

// WorldQuad adds a filled quad in data coordinates
func (c *Canvas) WorldQuad(col color.RGBA, corners ...geometry.Vector3) {
	c.Frame.Add(draw.Primitive{Kind: draw.Quad, Space: draw.World, Vertices: draw.Opaque(corners...), Color: col})
}

// WorldLines adds separate segments, one per pair of points
func (c *Canvas) WorldLines(col color.RGBA, width float64, points ...geometry.Vector3) {
	if len(points) < 2 {
		return
	}
	c.Frame.Add(draw.Primitive{Kind: draw.Lines, Space: draw.World, Vertices: draw.Opaque(points...), Color: col, Width: width})
}

// ScreenQuad adds a filled rectangle in pixels spanning the two corners
func (c *Canvas) ScreenQuad(col color.RGBA, x0, y0, x1, y1 float64) {
	c.Frame.Add(draw.Primitive{
		Kind:  draw.Quad,
		Space: draw.Screen,
		Vertices: draw.Opaque(
			geometry.NewVector3(x0, y0, 0),
			geometry.NewVector3(x1, y0, 0),
			geometry.NewVector3(x1, y1, 0),
			geometry.NewVector3(x0, y1, 0),
		),
		Color: col,
	})
}

// ScreenRect adds the outline of a rectangle in pixels
func (c *Canvas) ScreenRect(col color.RGBA, x0, y0, x1, y1 float64) {
	c.Frame.Add(draw.Primitive{
		Kind:  draw.LineStrip,
		Space: draw.Screen,
		Vertices: draw.Opaque(
			geometry.NewVector3(x0, y0, 0),
			geometry.NewVector3(x1, y0, 0),
			geometry.NewVector3(x1, y1, 0),
			geometry.NewVector3(x0, y1, 0),
			geometry.NewVector3(x0, y0, 0),
		),
		Color: col,
		Width: 1,
	})
}

// Text adds a string with its baseline starting at the pixel (x, y)
func (c *Canvas) Text(text string, font style.Font, col color.RGBA, x, y float64) {
	c.Frame.Add(draw.Primitive{
		Kind:     draw.Text,
		Space:    draw.Screen,
		Vertices: draw.Opaque(geometry.NewVector3(x, y, 0)),
		Color:    col,
		Text:     text,
		Font:     font,
	})
}

// TextAtWorld adds a string centered on the projection of a data point.
// Points that do not project are skipped.
func (c *Canvas) TextAtWorld(text string, font style.Font, col color.RGBA, world geometry.Vector3) {
	if c.Projector.EyeDepth(world) <= 0 {
		return
	}
	screen, ok := c.Projector.Project(world)
	if !ok {
		return
	}
	w, h := c.Measurer.Measure(text, font)
	c.Text(text, font, col, screen.X-w/2, screen.Y+h/2)
}
