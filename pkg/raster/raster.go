// Package raster draws a frame into an image without a GPU.
//
// Primitives are painted in frame order. Filled geometry carries a per-vertex
// alpha that is interpolated across each triangle and blended over the image.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/viewer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Renderer rasterizes frames with a single font face
type Renderer struct {
	Face font.Face
}

// New creates a renderer drawing text with the 7x13 bitmap face
func New() *Renderer {
	return &Renderer{Face: basicfont.Face7x13}
}

// Render draws frame into a new image of the frame's viewport size
func (r *Renderer) Render(frame *draw.Frame) *image.RGBA {
	w := int(math.Ceil(frame.Viewport.Width))
	h := int(math.Ceil(frame.Viewport.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.RenderInto(img, frame)
	return img
}

// RenderInto clears img to the frame background and draws all primitives
func (r *Renderer) RenderInto(img *image.RGBA, frame *draw.Frame) {
	bg := frame.Background
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}

	proj := viewer.ForFrame(frame)
	for _, p := range frame.Items {
		switch p.Kind {
		case draw.Quad, draw.TriangleStrip:
			for _, t := range proj.Triangles(p) {
				fillTriangle(img, t[0], t[1], t[2], p.Color)
			}
		case draw.Lines, draw.LineStrip:
			for _, s := range proj.Segments(p) {
				strokeLine(img, s[0], s[1], p.Width, p.Color)
			}
		case draw.Text:
			if at, ok := proj.Anchor(p); ok {
				r.drawText(img, p.Text, at.Pos, p.Color)
			}
		}
	}
}

func (r *Renderer) drawText(img *image.RGBA, text string, at geometry.Vector3, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: r.Face,
		Dot:  fixed.P(int(math.Round(at.X)), int(math.Round(at.Y))),
	}
	d.DrawString(text)
}

// strokeLine draws thin lines with Bresenham and wider ones as filled strips
func strokeLine(img *image.RGBA, a, b draw.Vertex, width float64, col color.RGBA) {
	if width <= 1 {
		bounds := img.Bounds()
		x0, y0, x1, y1, ok := clipLine(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y,
			-1, -1, float64(bounds.Max.X), float64(bounds.Max.Y))
		if ok {
			drawLine(img, int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), col)
		}
		return
	}
	strip := viewer.ScreenQuad(a.Pos, b.Pos, width+1)
	for i := range strip {
		// keep the core opaque; only the outer edge fades
		if strip[i].Alpha == 0 {
			strip[i].Alpha = 0.25
		}
	}
	for i := 2; i < len(strip); i++ {
		fillTriangle(img, strip[i-2], strip[i-1], strip[i], col)
	}
}

// blend paints col over the pixel at x, y with coverage alpha
func blend(img *image.RGBA, x, y int, col color.RGBA, alpha float64) {
	a := alpha * float64(col.A) / 255
	if a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	p[0] = uint8(float64(col.R)*a + float64(p[0])*(1-a) + 0.5)
	p[1] = uint8(float64(col.G)*a + float64(p[1])*(1-a) + 0.5)
	p[2] = uint8(float64(col.B)*a + float64(p[2])*(1-a) + 0.5)
	p[3] = uint8(255*a + float64(p[3])*(1-a) + 0.5)
}

// fillTriangle fills a triangle with the scanline algorithm, interpolating vertex alpha
func fillTriangle(img *image.RGBA, v1, v2, v3 draw.Vertex, col color.RGBA) {
	vertices := [3][3]float64{
		{v1.Pos.X, v1.Pos.Y, v1.Alpha},
		{v2.Pos.X, v2.Pos.Y, v2.Alpha},
		{v3.Pos.X, v3.Pos.Y, v3.Alpha},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, a1 := vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, a2 := vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, a3 := vertices[2][0], vertices[2][1], vertices[2][2]

	bounds := img.Bounds()
	yStart := int(math.Max(0, math.Ceil(y1-0.5)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(y3-0.5)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y) + 0.5

		// Long edge 1-3 always spans the scanline
		t := (fy - y1) / (y3 - y1)
		xLong, aLong := x1+t*(x3-x1), a1+t*(a3-a1)

		var xShort, aShort float64
		if fy < y2 {
			if y2 == y1 {
				continue
			}
			t = (fy - y1) / (y2 - y1)
			xShort, aShort = x1+t*(x2-x1), a1+t*(a2-a1)
		} else {
			if y3 == y2 {
				continue
			}
			t = (fy - y2) / (y3 - y2)
			xShort, aShort = x2+t*(x3-x2), a2+t*(a3-a2)
		}

		xStart, xEnd, aStart, aEnd := xLong, xShort, aLong, aShort
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			aStart, aEnd = aEnd, aStart
		}

		xs := int(math.Max(0, math.Ceil(xStart-0.5)))
		xe := int(math.Min(float64(bounds.Max.X-1), math.Floor(xEnd-0.5)))
		for x := xs; x <= xe; x++ {
			s := 0.0
			if xEnd != xStart {
				s = (float64(x) + 0.5 - xStart) / (xEnd - xStart)
			}
			blend(img, x, y, col, aStart+s*(aEnd-aStart))
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			blend(img, x1, y1, col, 1)
		}
		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Outcodes of a point relative to the clip rectangle
const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outcode(x, y, xmin, ymin, xmax, ymax float64) int {
	code := 0
	if x < xmin {
		code |= outLeft
	} else if x > xmax {
		code |= outRight
	}
	if y < ymin {
		code |= outTop
	} else if y > ymax {
		code |= outBottom
	}
	return code
}

// clipLine clips a segment to the rectangle with the Cohen-Sutherland algorithm.
// ok is false when the segment misses it.
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	c0 := outcode(x0, y0, xmin, ymin, xmax, ymax)
	c1 := outcode(x1, y1, xmin, ymin, xmax, ymax)
	for {
		switch {
		case c0|c1 == 0:
			return x0, y0, x1, y1, true
		case c0&c1 != 0:
			return 0, 0, 0, 0, false
		}

		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x, y = x0+(x1-x0)*(ymax-y0)/(y1-y0), ymax
		case out&outTop != 0:
			x, y = x0+(x1-x0)*(ymin-y0)/(y1-y0), ymin
		case out&outRight != 0:
			x, y = xmax, y0+(y1-y0)*(xmax-x0)/(x1-x0)
		default:
			x, y = xmin, y0+(y1-y0)*(xmin-x0)/(x1-x0)
		}

		if out == c0 {
			x0, y0 = x, y
			c0 = outcode(x0, y0, xmin, ymin, xmax, ymax)
		} else {
			x1, y1 = x, y
			c1 = outcode(x1, y1, xmin, ymin, xmax, ymax)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
