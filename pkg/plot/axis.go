package plot

import (
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/philipparndt/goplot3d/pkg/ticks"
	"github.com/philipparndt/goplot3d/pkg/viewer"
)

// AxisID names one of the three axis planes
type AxisID int

const (
	// XAxis spans x and y and lies at a fixed z
	XAxis AxisID = iota
	// YAxis spans y and z and lies at a fixed x
	YAxis
	// ZAxis spans z and x and lies at a fixed y
	ZAxis
)

// String returns the axis name
func (a AxisID) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	case ZAxis:
		return "z"
	}
	return "?"
}

// Dims returns the data dimensions of the plane's first and second in-plane
// direction and of its normal
func (a AxisID) Dims() (u, v, n int) {
	switch a {
	case YAxis:
		return 1, 2, 0
	case ZAxis:
		return 2, 0, 1
	}
	return 0, 1, 2
}

// Offsets of tick marks, tick labels and axis names beyond an edge, as fractions
// of the plane's extent perpendicular to that edge
const (
	tickLength  = 0.03
	tickLabelAt = 0.08
	axisNameAt  = 0.2
)

// AxisPlane is one of the three grid planes bounding the data box. It plans ticks
// for its dimensions and decides which of its edges carry ticks and on which face
// of the box it is drawn.
type AxisPlane struct {
	id         AxisID
	tickTarget int

	rng    geometry.Range
	uTicks ticks.Set
	vTicks ticks.Set
	nTicks ticks.Set

	sides     TickSides
	translate float64

	showPlane   bool
	showGrid    bool
	showAxis    bool
	showLabel   bool
	showAxisBox bool
	adjust      bool

	uLabel string
	vLabel string
}

// NewAxisPlane creates a plane with everything visible and automatic orientation on
func NewAxisPlane(id AxisID) *AxisPlane {
	p := &AxisPlane{
		id:         id,
		tickTarget: ticks.DefaultTarget,
		sides:      TickSides{Lower: true, Left: true},
		showPlane:  true,
		showGrid:   true,
		showAxis:   true,
		showLabel:  true,
		adjust:     true,
	}
	p.SetRange(geometry.NewRange(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1)))
	return p
}

// ID returns which plane this is
func (p *AxisPlane) ID() AxisID { return p.id }

// SetTickTarget sets the number of intervals aimed for; ticks are replanned on the next SetRange
func (p *AxisPlane) SetTickTarget(target int) { p.tickTarget = target }

// SetRange replans the ticks of all three dimensions for a data range and moves
// the plane to the lower bound of its normal dimension
func (p *AxisPlane) SetRange(r geometry.Range) {
	p.rng = r
	u, v, n := p.id.Dims()
	p.uTicks = p.plan(r, u)
	p.vTicks = p.plan(r, v)
	p.nTicks = p.plan(r, n)
	p.translate = p.nTicks.First()
}

func (p *AxisPlane) plan(r geometry.Range, dim int) ticks.Set {
	set, err := ticks.Plan(r.Min.Component(dim), r.Max.Component(dim), p.tickTarget)
	if err != nil {
		Logger().Debug("degenerate axis interval", "plane", p.id.String(), "dim", dim, "err", err)
	}
	return set
}

// Range returns the data range the ticks were planned for
func (p *AxisPlane) Range() geometry.Range { return p.rng }

// UTicks returns the ticks along the first in-plane dimension
func (p *AxisPlane) UTicks() ticks.Set { return p.uTicks }

// VTicks returns the ticks along the second in-plane dimension
func (p *AxisPlane) VTicks() ticks.Set { return p.vTicks }

// NTicks returns the ticks along the normal dimension
func (p *AxisPlane) NTicks() ticks.Set { return p.nTicks }

// TickBox returns the box spanned by the first and last tick of every dimension
func (p *AxisPlane) TickBox() geometry.Range {
	u, v, n := p.id.Dims()
	var lo, hi geometry.Vector3
	lo = lo.WithComponent(u, p.uTicks.First()).WithComponent(v, p.vTicks.First()).WithComponent(n, p.nTicks.First())
	hi = hi.WithComponent(u, p.uTicks.Last()).WithComponent(v, p.vTicks.Last()).WithComponent(n, p.nTicks.Last())
	return geometry.Range{Min: lo, Max: hi}
}

// Sides returns the edges currently carrying ticks
func (p *AxisPlane) Sides() TickSides { return p.sides }

// SetSides overrides the tick edges; the next orientation update replaces them
// unless automatic orientation is off
func (p *AxisPlane) SetSides(s TickSides) { p.sides = s }

// PlaneTranslate returns the normal coordinate the plane is drawn at
func (p *AxisPlane) PlaneTranslate() float64 { return p.translate }

// AdjustOrientation moves the plane to the face of the tick box farther from the
// camera and selects the tick edges for the view direction
func (p *AxisPlane) AdjustOrientation(o viewer.Orientation) {
	if !p.adjust {
		return
	}
	_, _, n := p.id.Dims()
	far := FarFaces(p.TickBox(), o.Position)
	if far[n] {
		p.translate = p.nTicks.Last()
	} else {
		p.translate = p.nTicks.First()
	}
	p.sides = SidesFor(p.id, o.Azimuth, o.Elevation)
}

// SetULabel sets the name drawn along the first in-plane dimension
func (p *AxisPlane) SetULabel(label string) { p.uLabel = label }

// SetVLabel sets the name drawn along the second in-plane dimension
func (p *AxisPlane) SetVLabel(label string) { p.vLabel = label }

// ULabel returns the first dimension's name
func (p *AxisPlane) ULabel() string { return p.uLabel }

// VLabel returns the second dimension's name
func (p *AxisPlane) VLabel() string { return p.vLabel }

// SetShowPlane toggles the filled plane
func (p *AxisPlane) SetShowPlane(v bool) { p.showPlane = v }

// SetShowGrid toggles the grid lines
func (p *AxisPlane) SetShowGrid(v bool) { p.showGrid = v }

// SetShowAxis toggles edge lines, tick marks and tick labels
func (p *AxisPlane) SetShowAxis(v bool) { p.showAxis = v }

// SetShowLabel toggles the axis names
func (p *AxisPlane) SetShowLabel(v bool) { p.showLabel = v }

// SetShowAxisBox toggles the twelve box edges
func (p *AxisPlane) SetShowAxisBox(v bool) { p.showAxisBox = v }

// SetAdjustOrientation toggles automatic placement
func (p *AxisPlane) SetAdjustOrientation(v bool) { p.adjust = v }

// ShowPlane reports whether the plane is filled
func (p *AxisPlane) ShowPlane() bool { return p.showPlane }

// ShowGrid reports whether grid lines are drawn
func (p *AxisPlane) ShowGrid() bool { return p.showGrid }

// ShowAxis reports whether ticks are drawn
func (p *AxisPlane) ShowAxis() bool { return p.showAxis }

// ShowLabel reports whether axis names are drawn
func (p *AxisPlane) ShowLabel() bool { return p.showLabel }

// ShowAxisBox reports whether the box is drawn
func (p *AxisPlane) ShowAxisBox() bool { return p.showAxisBox }

// AdjustsOrientation reports whether placement follows the camera
func (p *AxisPlane) AdjustsOrientation() bool { return p.adjust }

// TogglePlane flips ShowPlane
func (p *AxisPlane) TogglePlane() { p.showPlane = !p.showPlane }

// ToggleGrid flips ShowGrid
func (p *AxisPlane) ToggleGrid() { p.showGrid = !p.showGrid }

// ToggleAxis flips ShowAxis
func (p *AxisPlane) ToggleAxis() { p.showAxis = !p.showAxis }

// ToggleLabel flips ShowLabel
func (p *AxisPlane) ToggleLabel() { p.showLabel = !p.showLabel }

// ToggleAxisBox flips ShowAxisBox
func (p *AxisPlane) ToggleAxisBox() { p.showAxisBox = !p.showAxisBox }

// ToggleAdjustOrientation flips AdjustsOrientation
func (p *AxisPlane) ToggleAdjustOrientation() { p.adjust = !p.adjust }

// point maps plane coordinates to a data point
func (p *AxisPlane) point(u, v, n float64) geometry.Vector3 {
	du, dv, dn := p.id.Dims()
	var out geometry.Vector3
	return out.WithComponent(du, u).WithComponent(dv, v).WithComponent(dn, n)
}

// Draw emits the plane, its grid, the ticks on the selected edges and the axis box.
// Nothing is drawn when a tick set is unusable.
func (p *AxisPlane) Draw(c *Canvas, st style.Style) {
	if !p.uTicks.Valid() || !p.vTicks.Valid() || !p.nTicks.Valid() {
		Logger().Debug("skipping axis plane without ticks", "plane", p.id.String())
		return
	}

	u0, u1 := p.uTicks.First(), p.uTicks.Last()
	v0, v1 := p.vTicks.First(), p.vTicks.Last()
	n := p.translate

	if p.showPlane {
		c.WorldQuad(st.PlaneColor, p.point(u0, v0, n), p.point(u1, v0, n), p.point(u1, v1, n), p.point(u0, v1, n))
	}

	if p.showGrid {
		var grid []geometry.Vector3
		for _, u := range p.uTicks[1 : len(p.uTicks)-1] {
			grid = append(grid, p.point(u, v0, n), p.point(u, v1, n))
		}
		for _, v := range p.vTicks[1 : len(p.vTicks)-1] {
			grid = append(grid, p.point(u0, v, n), p.point(u1, v, n))
		}
		c.WorldLines(st.GridColor, 1, grid...)
	}

	du := u1 - u0
	dv := v1 - v0
	if p.sides.Lower {
		p.drawUSide(c, st, v0, -dv)
	}
	if p.sides.Upper {
		p.drawUSide(c, st, v1, dv)
	}
	if p.sides.Left {
		p.drawVSide(c, st, u0, -du)
	}
	if p.sides.Right {
		p.drawVSide(c, st, u1, du)
	}

	if p.showAxisBox {
		p.drawBox(c, st)
	}
}

// drawUSide draws the edge at v carrying the u ticks; out points away from the plane
func (p *AxisPlane) drawUSide(c *Canvas, st style.Style, v, out float64) {
	n := p.translate
	u0, u1 := p.uTicks.First(), p.uTicks.Last()
	step := p.uTicks.Step()
	if p.showAxis {
		lines := []geometry.Vector3{p.point(u0, v, n), p.point(u1, v, n)}
		for _, u := range p.uTicks {
			lines = append(lines, p.point(u, v, n), p.point(u, v+out*tickLength, n))
		}
		c.WorldLines(st.AxisColor, 1, lines...)
		for _, u := range p.uTicks {
			c.TextAtWorld(ticks.Format(u, step), st.TicksFont, st.TickLabelColor, p.point(u, v+out*tickLabelAt, n))
		}
	}
	if p.showLabel && p.uLabel != "" {
		c.TextAtWorld(p.uLabel, st.LabelFont, st.LabelColor, p.point((u0+u1)/2, v+out*axisNameAt, n))
	}
}

// drawVSide draws the edge at u carrying the v ticks
func (p *AxisPlane) drawVSide(c *Canvas, st style.Style, u, out float64) {
	n := p.translate
	v0, v1 := p.vTicks.First(), p.vTicks.Last()
	step := p.vTicks.Step()
	if p.showAxis {
		lines := []geometry.Vector3{p.point(u, v0, n), p.point(u, v1, n)}
		for _, v := range p.vTicks {
			lines = append(lines, p.point(u, v, n), p.point(u+out*tickLength, v, n))
		}
		c.WorldLines(st.AxisColor, 1, lines...)
		for _, v := range p.vTicks {
			c.TextAtWorld(ticks.Format(v, step), st.TicksFont, st.TickLabelColor, p.point(u+out*tickLabelAt, v, n))
		}
	}
	if p.showLabel && p.vLabel != "" {
		c.TextAtWorld(p.vLabel, st.LabelFont, st.LabelColor, p.point(u+out*axisNameAt, (v0+v1)/2, n))
	}
}

// drawBox draws the twelve edges of the tick box
func (p *AxisPlane) drawBox(c *Canvas, st style.Style) {
	u0, u1 := p.uTicks.First(), p.uTicks.Last()
	v0, v1 := p.vTicks.First(), p.vTicks.Last()
	n0, n1 := p.nTicks.First(), p.nTicks.Last()

	var edges []geometry.Vector3
	for _, n := range []float64{n0, n1} {
		edges = append(edges,
			p.point(u0, v0, n), p.point(u1, v0, n),
			p.point(u1, v0, n), p.point(u1, v1, n),
			p.point(u1, v1, n), p.point(u0, v1, n),
			p.point(u0, v1, n), p.point(u0, v0, n),
		)
	}
	for _, uv := range [][2]float64{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}} {
		edges = append(edges, p.point(uv[0], uv[1], n0), p.point(uv[0], uv[1], n1))
	}
	c.WorldLines(st.AxisColor, 1, edges...)
}
