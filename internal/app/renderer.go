package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/philipparndt/goplot3d/pkg/viewer"
)

// fontMeasurer measures text the way raylib draws it
type fontMeasurer struct {
	font rl.Font
}

// Measure implements draw.TextMeasurer
func (m *fontMeasurer) Measure(text string, f style.Font) (float64, float64) {
	size := float32(f.Size)
	v := rl.MeasureTextEx(m.font, text, size, spacing(size))
	return float64(v.X), float64(v.Y)
}

func spacing(size float32) float32 {
	return size / 10
}

func toRaylib(c color.RGBA, alpha float64) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, uint8(math.Round(float64(c.A)*alpha)))
}

func vec2(v draw.Vertex) rl.Vector2 {
	return rl.Vector2{X: float32(v.Pos.X), Y: float32(v.Pos.Y)}
}

// drawFrame paints a frame in order. World primitives are projected here so the
// window shows exactly what the software rasterizer would.
func drawFrame(frame *draw.Frame, font rl.Font) {
	rl.ClearBackground(toRaylib(frame.Background, 1))
	proj := viewer.ForFrame(frame)

	for _, p := range frame.Items {
		switch p.Kind {
		case draw.Quad, draw.TriangleStrip:
			for _, t := range proj.Triangles(p) {
				drawTriangle(t[0], t[1], t[2], p.Color)
			}
		case draw.Lines, draw.LineStrip:
			for _, s := range proj.Segments(p) {
				rl.DrawLineEx(vec2(s[0]), vec2(s[1]), lineWidth(p.Width), toRaylib(p.Color, 1))
			}
		case draw.Text:
			at, ok := proj.Anchor(p)
			if !ok {
				continue
			}
			// raylib places text by its top-left corner, frames by the baseline
			size := float32(p.Font.Size)
			pos := vec2(at)
			pos.Y -= size
			rl.DrawTextEx(font, p.Text, pos, size, spacing(size), toRaylib(p.Color, 1))
		}
	}
}

func lineWidth(w float64) float32 {
	if w < 1 {
		return 1
	}
	return float32(w)
}

// drawTriangle fills a triangle with the mean alpha of its vertices. raylib
// culls clockwise triangles, so the winding is fixed up first.
func drawTriangle(a, b, c draw.Vertex, col color.RGBA) {
	alpha := (a.Alpha + b.Alpha + c.Alpha) / 3
	if alpha <= 0 {
		return
	}
	cross := (b.Pos.X-a.Pos.X)*(c.Pos.Y-a.Pos.Y) - (b.Pos.Y-a.Pos.Y)*(c.Pos.X-a.Pos.X)
	if cross > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(vec2(a), vec2(b), vec2(c), toRaylib(col, alpha))
}
