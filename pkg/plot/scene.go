// Package plot composes camera, axis planes and curves into drawable frames and
// maps pointer input to camera motion.
package plot

import (
	"fmt"

	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/series"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/philipparndt/goplot3d/pkg/viewer"
)

// Buttons is a set of pressed pointer buttons
type Buttons int

const (
	// ButtonLeft is the primary button
	ButtonLeft Buttons = 1 << iota
	// ButtonRight is the secondary button
	ButtonRight
)

const (
	// WheelNotch is the wheel delta of one detent, in eighths of a degree
	WheelNotch = 120.0
	// inputDivisor converts pixels and wheel units into view-space units
	inputDivisor = 32.0
)

// Legend layout in pixels
const (
	legendMargin = 5.0
	legendSwatch = 20.0
)

// Scene is the plot orchestrator. It owns the camera and the three axis planes,
// holds non-owning references to the registered curves and keeps the axis planes
// oriented after every camera or range change.
type Scene struct {
	style  style.Style
	camera *viewer.Camera
	axes   [3]*AxisPlane
	curves []*series.Series
	rng    geometry.Range

	viewport    draw.Viewport
	showLegend  bool
	showOverlay bool

	lastX, lastY float64
}

// NewScene creates an empty scene drawn with st
func NewScene(st style.Style) *Scene {
	s := &Scene{
		style:       st,
		camera:      viewer.NewCamera(),
		rng:         geometry.EmptyRange(),
		viewport:    draw.Viewport{Width: 640, Height: 480},
		showLegend:  true,
		showOverlay: true,
	}
	for i := range s.axes {
		s.axes[i] = NewAxisPlane(AxisID(i))
		s.axes[i].SetTickTarget(st.TickTarget)
	}
	s.SetXLabel("x")
	s.SetYLabel("y")
	s.SetZLabel("z")
	s.updateRange()
	return s
}

// Style returns the drawing style
func (s *Scene) Style() style.Style { return s.style }

// SetStyle replaces the drawing style and replans ticks for its tick target
func (s *Scene) SetStyle(st style.Style) {
	s.style = st
	for _, a := range s.axes {
		a.SetTickTarget(st.TickTarget)
	}
	s.updateRange()
}

// Camera returns the camera. Callers changing it directly must call Reorient.
func (s *Scene) Camera() *viewer.Camera { return s.camera }

// Axis returns one of the three axis planes
func (s *Scene) Axis(id AxisID) *AxisPlane { return s.axes[id] }

// Range returns the merged data range of all curves added so far
func (s *Scene) Range() geometry.Range { return s.rng }

// Curves returns the registered curves in drawing order
func (s *Scene) Curves() []*series.Series { return s.curves }

// AddCurve registers a curve and merges its range into the scene range.
// Curves already registered are ignored.
func (s *Scene) AddCurve(c *series.Series) {
	if c == nil {
		return
	}
	for _, existing := range s.curves {
		if existing == c {
			return
		}
	}
	s.curves = append(s.curves, c)
	s.rng.Merge(c.Range())
	Logger().Info("curve added", "name", c.Name(), "points", c.Len())
	s.updateRange()
}

// RemoveCurve unregisters a curve by identity. The scene range is not shrunk;
// call RecomputeRange for that.
func (s *Scene) RemoveCurve(c *series.Series) bool {
	for i, existing := range s.curves {
		if existing == c {
			s.curves = append(s.curves[:i], s.curves[i+1:]...)
			Logger().Info("curve removed", "name", c.Name())
			return true
		}
	}
	return false
}

// ClearCurves unregisters all curves and resets the range
func (s *Scene) ClearCurves() {
	s.curves = nil
	s.rng = geometry.EmptyRange()
	s.updateRange()
}

// RecomputeRange rebuilds the scene range from the curves currently registered
func (s *Scene) RecomputeRange() {
	s.rng = geometry.EmptyRange()
	for _, c := range s.curves {
		s.rng.Merge(c.Range())
	}
	s.updateRange()
}

func (s *Scene) updateRange() {
	for _, a := range s.axes {
		a.SetRange(s.rng)
	}
	if s.camera.Rescale(s.rng) {
		Logger().Debug("degenerate scene range", "min", s.rng.Min, "max", s.rng.Max)
	}
	s.Reorient()
}

// Reorient updates every axis plane for the current camera
func (s *Scene) Reorient() {
	o := s.camera.Orientation()
	for _, a := range s.axes {
		a.AdjustOrientation(o)
	}
}

// SetAzimuth sets the horizontal view angle in degrees
func (s *Scene) SetAzimuth(degrees float64) {
	s.camera.SetAzimuth(degrees)
	s.Reorient()
}

// SetElevation sets the vertical view angle in degrees
func (s *Scene) SetElevation(degrees float64) {
	s.camera.SetElevation(degrees)
	s.Reorient()
}

// SetZoom sets the camera distance; values that are not negative are ignored
func (s *Scene) SetZoom(value float64) {
	if s.camera.SetZoom(value) {
		s.Reorient()
	}
}

// SetPan sets the view-space offset; Z is the zoom distance and is ignored
// unless negative
func (s *Scene) SetPan(pan geometry.Vector3) {
	s.camera.SetPan(pan)
	s.Reorient()
}

// AxisEqual reports whether all axes share one scale factor
func (s *Scene) AxisEqual() bool { return s.camera.FitMode() == viewer.FitEqual }

// SetAxisEqual selects equal or tight fitting
func (s *Scene) SetAxisEqual(equal bool) {
	mode := viewer.FitTight
	if equal {
		mode = viewer.FitEqual
	}
	s.camera.SetFitMode(mode)
	Logger().Info("fit mode changed", "mode", mode.String())
	s.updateRange()
}

// ToggleAxisEqual flips the fit mode
func (s *Scene) ToggleAxisEqual() { s.SetAxisEqual(!s.AxisEqual()) }

// ShowLegend reports whether the legend is drawn
func (s *Scene) ShowLegend() bool { return s.showLegend }

// SetShowLegend toggles the legend
func (s *Scene) SetShowLegend(show bool) { s.showLegend = show }

// ShowAzimuthElevation reports whether the view angle overlay is drawn
func (s *Scene) ShowAzimuthElevation() bool { return s.showOverlay }

// SetShowAzimuthElevation toggles the view angle overlay
func (s *Scene) SetShowAzimuthElevation(show bool) { s.showOverlay = show }

// SetShowAxis toggles tick edges, tick labels and axis names on all planes
func (s *Scene) SetShowAxis(show bool) {
	for _, a := range s.axes {
		a.SetShowAxis(show)
		a.SetShowLabel(show)
	}
}

// SetShowGrid toggles grid lines on all planes
func (s *Scene) SetShowGrid(show bool) {
	for _, a := range s.axes {
		a.SetShowGrid(show)
	}
}

// SetShowAxisBox toggles the box edges. One plane draws the box for all.
func (s *Scene) SetShowAxisBox(show bool) {
	s.axes[XAxis].SetShowAxisBox(show)
}

// SetAdjustPlaneView toggles automatic orientation of all planes
func (s *Scene) SetAdjustPlaneView(adjust bool) {
	for _, a := range s.axes {
		a.SetAdjustOrientation(adjust)
	}
	s.Reorient()
}

// HideAxes hides every part of the axis planes
func (s *Scene) HideAxes() { s.setAxesVisible(false) }

// ShowAxes shows planes, grids, ticks and labels again
func (s *Scene) ShowAxes() { s.setAxesVisible(true) }

func (s *Scene) setAxesVisible(visible bool) {
	for _, a := range s.axes {
		a.SetShowPlane(visible)
		a.SetShowGrid(visible)
		a.SetShowAxis(visible)
		a.SetShowLabel(visible)
	}
}

// SetXLabel names the x dimension
func (s *Scene) SetXLabel(label string) {
	s.axes[XAxis].SetULabel(label)
	s.axes[ZAxis].SetVLabel(label)
}

// SetYLabel names the y dimension
func (s *Scene) SetYLabel(label string) {
	s.axes[YAxis].SetULabel(label)
	s.axes[XAxis].SetVLabel(label)
}

// SetZLabel names the z dimension
func (s *Scene) SetZLabel(label string) {
	s.axes[ZAxis].SetULabel(label)
	s.axes[YAxis].SetVLabel(label)
}

// Viewport returns the pixel rectangle frames are built for
func (s *Scene) Viewport() draw.Viewport { return s.viewport }

// Resize sets the viewport size in pixels
func (s *Scene) Resize(width, height float64) {
	s.viewport = draw.Viewport{Width: width, Height: height}
}

// PointerPress records the position a drag starts from
func (s *Scene) PointerPress(x, y float64) {
	s.lastX, s.lastY = x, y
}

// PointerMove applies the motion since the last press or move
func (s *Scene) PointerMove(x, y float64, buttons Buttons, ctrl bool) {
	dx, dy := x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y
	s.Drag(dx, dy, buttons, ctrl)
}

// Drag applies a pointer motion of dx, dy pixels. The right button pans; the
// left button rotates, with ctrl turning about the Y axis instead.
func (s *Scene) Drag(dx, dy float64, buttons Buttons, ctrl bool) {
	switch {
	case buttons&ButtonRight != 0:
		pan := s.camera.Pan()
		pan.X += dx / inputDivisor
		pan.Y -= dy / inputDivisor
		s.camera.SetPan(pan)
	case buttons&ButtonLeft != 0 && ctrl:
		s.camera.SetPitch(s.camera.Pitch() + dx)
	case buttons&ButtonLeft != 0:
		s.camera.SetRoll(s.camera.Roll() + dy)
		s.camera.SetYaw(s.camera.Yaw() + dx)
	default:
		return
	}
	s.Reorient()
}

// Wheel zooms by delta, in eighths of a degree as reported by most toolkits
func (s *Scene) Wheel(delta float64) {
	s.SetZoom(s.camera.Zoom() + delta/inputDivisor)
}

// DoubleClick toggles between equal and tight fitting
func (s *Scene) DoubleClick() { s.ToggleAxisEqual() }

// OverlayText returns the view angle text shown in the lower left corner
func (s *Scene) OverlayText() string {
	return fmt.Sprintf("Az: %.1f El: %.1f", s.camera.Azimuth(), s.camera.Elevation())
}

// Frame builds the primitives of one redraw: axis planes first, then curves,
// then the legend and the overlay on top
func (s *Scene) Frame(measurer draw.TextMeasurer) *draw.Frame {
	s.Reorient()
	frame := &draw.Frame{
		Viewport:   s.viewport,
		Background: s.style.Background,
		ModelView:  s.camera.ModelView(),
		Projection: s.camera.Projection(s.viewport.Width, s.viewport.Height),
	}
	c := NewCanvas(frame, measurer)

	for _, a := range s.axes {
		a.Draw(c, s.style)
	}
	for _, curve := range s.curves {
		s.drawCurve(c, curve)
	}
	if s.showLegend && len(s.curves) > 0 {
		s.drawLegend(c)
	}
	if s.showOverlay {
		s.drawOverlay(c)
	}
	if n := c.Projector.Sentinels(); n > 0 {
		Logger().Debug("points projected onto the eye plane", "count", n)
	}
	return frame
}

func (s *Scene) drawCurve(c *Canvas, curve *series.Series) {
	points := curve.Points()
	if len(points) < 2 {
		return
	}
	if !s.style.ScreenSpaceLines {
		c.Frame.Add(draw.Primitive{
			Kind:     draw.LineStrip,
			Space:    draw.World,
			Vertices: draw.Opaque(points...),
			Color:    curve.Color(),
			Width:    curve.LineWidth(),
		})
		return
	}
	for i := 1; i < len(points); i++ {
		strip, ok := c.Projector.ScreenLine(points[i-1], points[i], curve.LineWidth())
		if !ok {
			continue
		}
		c.Frame.Add(draw.Primitive{
			Kind:     draw.TriangleStrip,
			Space:    draw.Screen,
			Vertices: strip,
			Color:    curve.Color(),
			Width:    curve.LineWidth(),
		})
	}
}

// LegendBounds returns the pixel rectangle of the legend for the registered curves
func (s *Scene) LegendBounds(m draw.TextMeasurer) (x0, y0, width, height float64) {
	textWidth, textHeight := s.legendMetrics(m)
	width = legendMargin + legendSwatch + legendMargin + textWidth + legendMargin
	height = legendMargin + float64(len(s.curves))*textHeight + legendMargin
	x0 = s.viewport.Width - width - legendMargin
	y0 = legendMargin
	return x0, y0, width, height
}

func (s *Scene) legendMetrics(m draw.TextMeasurer) (maxWidth, lineHeight float64) {
	if m == nil {
		m = draw.NewBasicMeasurer()
	}
	for _, curve := range s.curves {
		w, h := m.Measure(curve.Name(), s.style.LegendFont)
		if w > maxWidth {
			maxWidth = w
		}
		if h > lineHeight {
			lineHeight = h
		}
	}
	return maxWidth, lineHeight
}

func (s *Scene) drawLegend(c *Canvas) {
	x0, y0, width, height := s.LegendBounds(c.Measurer)
	_, lineHeight := s.legendMetrics(c.Measurer)

	c.ScreenQuad(s.style.LegendFill, x0, y0, x0+width, y0+height)
	c.ScreenRect(s.style.LegendBorder, x0, y0, x0+width, y0+height)

	y := y0 + legendMargin
	for _, curve := range s.curves {
		mid := y + 0.5*lineHeight
		c.Frame.Add(draw.Primitive{
			Kind:  draw.Lines,
			Space: draw.Screen,
			Vertices: draw.Opaque(
				geometry.NewVector3(x0+legendMargin, mid, 0),
				geometry.NewVector3(x0+legendMargin+legendSwatch, mid, 0),
			),
			Color: curve.Color(),
			Width: curve.LineWidth(),
		})
		y += lineHeight
		c.Text(curve.Name(), s.style.LegendFont, s.style.LegendTextColor, x0+2*legendMargin+legendSwatch, y)
	}
}

// OverlayAnchor returns the baseline position of the overlay text
func (s *Scene) OverlayAnchor() (x, y float64) {
	return 10, s.viewport.Height - 15
}

func (s *Scene) drawOverlay(c *Canvas) {
	text := s.OverlayText()
	x, y := s.OverlayAnchor()
	w, h := c.Measurer.Measure(text, s.style.OverlayFont)
	c.ScreenQuad(s.style.OverlayFill, x-5, y-h-5, x+10+w, y+5)
	c.Text(text, s.style.OverlayFont, s.style.OverlayText, x, y)
}
