package raster

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goplot3d/pkg/dataset"
	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/plot"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func screenFrame(w, h float64) *draw.Frame {
	return &draw.Frame{
		Viewport:   draw.Viewport{Width: w, Height: h},
		Background: white,
		ModelView:  mgl64.Ident4(),
		Projection: mgl64.Ident4(),
	}
}

func TestRenderBackground(t *testing.T) {
	frame := screenFrame(4, 3)
	frame.Background = color.RGBA{R: 255, A: 255}
	img := New().Render(frame)

	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, frame.Background, img.RGBAAt(x, y))
		}
	}
}

func TestRenderScreenQuadAndLine(t *testing.T) {
	frame := screenFrame(20, 20)
	frame.Add(draw.Primitive{
		Kind:  draw.Quad,
		Space: draw.Screen,
		Vertices: draw.Opaque(
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(10, 0, 0),
			geometry.NewVector3(10, 10, 0),
			geometry.NewVector3(0, 10, 0),
		),
		Color: black,
	})
	frame.Add(draw.Primitive{
		Kind:     draw.Lines,
		Space:    draw.Screen,
		Vertices: draw.Opaque(geometry.NewVector3(0, 15, 0), geometry.NewVector3(19, 15, 0)),
		Color:    color.RGBA{R: 255, A: 255},
		Width:    1,
	})
	img := New().Render(frame)

	assert.Equal(t, black, img.RGBAAt(5, 5))
	assert.Equal(t, white, img.RGBAAt(15, 5))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(10, 15))
	assert.Equal(t, white, img.RGBAAt(10, 17))
}

func TestRenderBlendsTranslucentColor(t *testing.T) {
	frame := screenFrame(10, 10)
	frame.Add(draw.Primitive{
		Kind:  draw.Quad,
		Space: draw.Screen,
		Vertices: draw.Opaque(
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(10, 0, 0),
			geometry.NewVector3(10, 10, 0),
			geometry.NewVector3(0, 10, 0),
		),
		Color: color.RGBA{A: 128},
	})
	img := New().Render(frame)

	got := img.RGBAAt(5, 5)
	assert.InDelta(t, 127, int(got.R), 1)
	assert.Equal(t, got.R, got.G)
}

func TestRenderDropsPrimitivesBehindEye(t *testing.T) {
	frame := screenFrame(10, 10)
	frame.Projection = mgl64.Frustum(-1, 1, -1, 1, 1, 100)
	frame.Add(draw.Primitive{
		Kind:     draw.Quad,
		Space:    draw.World,
		Vertices: draw.Opaque(geometry.NewVector3(-1, -1, 2), geometry.NewVector3(1, -1, 2), geometry.NewVector3(1, 1, 2), geometry.NewVector3(-1, 1, 2)),
		Color:    black,
	})
	img := New().Render(frame)
	assert.Equal(t, white, img.RGBAAt(5, 5))
}

func TestRenderClipsStripCrossingNearPlane(t *testing.T) {
	frame := screenFrame(100, 100)
	frame.Projection = mgl64.Frustum(-1, 1, -1, 1, 1, 100)
	frame.Add(draw.Primitive{
		Kind:  draw.LineStrip,
		Space: draw.World,
		Vertices: draw.Opaque(
			geometry.NewVector3(-1, 0, -2),
			geometry.NewVector3(1, 0, -2),
			geometry.NewVector3(1, 0, 5),
		),
		Color: black,
		Width: 1,
	})
	img := New().Render(frame)

	lit := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) != white {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 50)
	assert.Equal(t, black, img.RGBAAt(50, 50))
	assert.Equal(t, black, img.RGBAAt(90, 50))
}

func TestRenderClipsQuadCrossingNearPlane(t *testing.T) {
	frame := screenFrame(100, 100)
	frame.Projection = mgl64.Frustum(-1, 1, -1, 1, 1, 100)
	frame.Add(draw.Primitive{
		Kind:  draw.Quad,
		Space: draw.World,
		Vertices: draw.Opaque(
			geometry.NewVector3(-1, -0.5, -2),
			geometry.NewVector3(1, -0.5, -2),
			geometry.NewVector3(1, -0.5, 5),
			geometry.NewVector3(-1, -0.5, 5),
		),
		Color: black,
	})
	img := New().Render(frame)

	// the visible part of the floor spans rows 62.5 to 75
	assert.Equal(t, black, img.RGBAAt(50, 68))
	assert.Equal(t, white, img.RGBAAt(50, 40))
	assert.Equal(t, white, img.RGBAAt(50, 90))
}

func TestClipLine(t *testing.T) {
	x0, y0, x1, y1, ok := clipLine(-1e10, 5, 1e10, 5, 0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 5, 10, 5}, []float64{x0, y0, x1, y1})

	x0, y0, x1, y1, ok = clipLine(-10, -10, 20, 20, 0, 0, 10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, x0, 1e-9)
	assert.InDelta(t, 0, y0, 1e-9)
	assert.InDelta(t, 10, x1, 1e-9)
	assert.InDelta(t, 10, y1, 1e-9)

	_, _, _, _, ok = clipLine(-5, -5, 20, -1, 0, 0, 10, 10)
	assert.False(t, ok)

	x0, y0, x1, y1, ok = clipLine(2, 3, 4, 5, 0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, []float64{2, 3, 4, 5}, []float64{x0, y0, x1, y1})
}

func TestRenderFarOffscreenLine(t *testing.T) {
	frame := screenFrame(20, 20)
	frame.Add(draw.Primitive{
		Kind:     draw.Lines,
		Space:    draw.Screen,
		Vertices: draw.Opaque(geometry.NewVector3(-1e10, 10, 0), geometry.NewVector3(1e10, 10, 0)),
		Color:    black,
		Width:    1,
	})
	img := New().Render(frame)

	assert.Equal(t, black, img.RGBAAt(0, 10))
	assert.Equal(t, black, img.RGBAAt(19, 10))
}

func TestRenderText(t *testing.T) {
	frame := screenFrame(40, 20)
	frame.Add(draw.Primitive{
		Kind:     draw.Text,
		Space:    draw.Screen,
		Vertices: draw.Opaque(geometry.NewVector3(2, 15, 0)),
		Text:     "Az",
		Color:    black,
	})
	img := New().Render(frame)

	inked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y) != white {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 10)
}

func TestRenderScene(t *testing.T) {
	demo, err := dataset.LoadDemo("boxes")
	require.NoError(t, err)

	scene := plot.NewScene(style.Default())
	for _, c := range demo.Curves {
		scene.AddCurve(c)
	}
	scene.Resize(200, 150)
	img := New().Render(scene.Frame(draw.NewBasicMeasurer()))

	require.Equal(t, 200, img.Bounds().Dx())
	colors := map[color.RGBA]bool{}
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			colors[img.RGBAAt(x, y)] = true
		}
	}
	assert.Greater(t, len(colors), 5)
}
