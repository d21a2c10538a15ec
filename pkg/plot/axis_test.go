package plot

import (
	"testing"

	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/philipparndt/goplot3d/pkg/ticks"
	"github.com/philipparndt/goplot3d/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(lo, hi float64) geometry.Range {
	return geometry.NewRange(geometry.NewVector3(lo, lo, lo), geometry.NewVector3(hi, hi, hi))
}

func TestAxisDims(t *testing.T) {
	u, v, n := XAxis.Dims()
	assert.Equal(t, []int{0, 1, 2}, []int{u, v, n})
	u, v, n = YAxis.Dims()
	assert.Equal(t, []int{1, 2, 0}, []int{u, v, n})
	u, v, n = ZAxis.Dims()
	assert.Equal(t, []int{2, 0, 1}, []int{u, v, n})
}

func TestAxisPlaneSetRange(t *testing.T) {
	p := NewAxisPlane(YAxis)
	p.SetRange(geometry.NewRange(geometry.NewVector3(-3, 0, 0), geometry.NewVector3(7, 100, 97)))

	assert.Equal(t, ticks.Set{0, 20, 40, 60, 80, 100}, p.UTicks())
	assert.Equal(t, ticks.Set{0, 20, 40, 60, 80, 100}, p.VTicks())
	assert.InDelta(t, -4.0, p.NTicks().First(), 1e-12)
	assert.InDelta(t, 8.0, p.NTicks().Last(), 1e-12)
	assert.InDelta(t, -4.0, p.PlaneTranslate(), 1e-12)
}

func TestAxisPlaneEmptyRange(t *testing.T) {
	p := NewAxisPlane(XAxis)
	p.SetRange(geometry.EmptyRange())

	for _, set := range []ticks.Set{p.UTicks(), p.VTicks(), p.NTicks()} {
		assert.Equal(t, ticks.Set{-1, 1}, set)
	}
	assert.Equal(t, -1.0, p.PlaneTranslate())
}

func TestAxisPlaneFlipsToFarFace(t *testing.T) {
	p := NewAxisPlane(XAxis)
	p.SetRange(cube(0, 10))

	p.AdjustOrientation(viewer.Orientation{Position: geometry.NewVector3(5, 5, 100), Azimuth: 10, Elevation: 45})
	assert.Equal(t, 0.0, p.PlaneTranslate())
	assert.Equal(t, TickSides{Lower: true, Right: true}, p.Sides())

	p.AdjustOrientation(viewer.Orientation{Position: geometry.NewVector3(5, 5, -100), Azimuth: 10, Elevation: -45})
	assert.Equal(t, 10.0, p.PlaneTranslate())
}

func TestAxisPlaneWithoutAdjustKeepsPlacement(t *testing.T) {
	p := NewAxisPlane(ZAxis)
	p.SetRange(cube(0, 10))
	p.SetAdjustOrientation(false)
	before := p.Sides()

	p.AdjustOrientation(viewer.Orientation{Position: geometry.NewVector3(5, -100, 5), Azimuth: 100, Elevation: 30})
	assert.Equal(t, 0.0, p.PlaneTranslate())
	assert.Equal(t, before, p.Sides())

	p.ToggleAdjustOrientation()
	p.AdjustOrientation(viewer.Orientation{Position: geometry.NewVector3(5, -100, 5), Azimuth: 100, Elevation: 30})
	assert.Equal(t, 10.0, p.PlaneTranslate())
}

func newTestCanvas(r geometry.Range) *Canvas {
	cam := viewer.NewCamera()
	cam.Rescale(r)
	frame := &draw.Frame{
		Viewport:   draw.Viewport{Width: 640, Height: 480},
		ModelView:  cam.ModelView(),
		Projection: cam.Projection(640, 480),
	}
	return NewCanvas(frame, draw.NewBasicMeasurer())
}

func TestAxisPlaneDraw(t *testing.T) {
	r := cube(0, 10)
	p := NewAxisPlane(XAxis)
	p.SetRange(r)
	p.SetULabel("x")
	p.SetSides(TickSides{Lower: true})

	c := newTestCanvas(r)
	p.Draw(c, style.Default())

	require.Equal(t, 1, c.Frame.Count(draw.Quad))
	texts := c.Frame.Texts()
	assert.Contains(t, texts, "0")
	assert.Contains(t, texts, "10")
	assert.Contains(t, texts, "x")

	// grid: four interior lines per direction
	grid := c.Frame.Items[1]
	assert.Equal(t, draw.Lines, grid.Kind)
	assert.Len(t, grid.Vertices, 16)
}

func TestAxisPlaneDrawToggles(t *testing.T) {
	r := cube(0, 10)
	p := NewAxisPlane(XAxis)
	p.SetRange(r)
	p.SetShowPlane(false)
	p.SetShowGrid(false)
	p.SetShowAxis(false)
	p.SetShowLabel(false)

	c := newTestCanvas(r)
	p.Draw(c, style.Default())
	assert.Empty(t, c.Frame.Items)

	p.ToggleAxisBox()
	p.Draw(c, style.Default())
	require.Len(t, c.Frame.Items, 1)
	assert.Len(t, c.Frame.Items[0].Vertices, 24)
}
