// Package gui provides a fyne widget showing a plot scene.
package gui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/plot"
	"github.com/philipparndt/goplot3d/pkg/raster"
)

// scrollPerNotch is the fyne scroll distance of one wheel detent
const scrollPerNotch = 10.0

// PlotWidget renders a scene with the software rasterizer and maps pointer
// events to scene input
type PlotWidget struct {
	widget.BaseWidget

	mu       sync.Mutex
	scene    *plot.Scene
	renderer *raster.Renderer
	measurer draw.TextMeasurer
	raster   *canvas.Raster

	buttons plot.Buttons
	ctrl    bool
	scale   float64
	onView  func()
}

// NewPlotWidget creates a widget for scene
func NewPlotWidget(scene *plot.Scene) *PlotWidget {
	w := &PlotWidget{
		scene:    scene,
		renderer: raster.New(),
		measurer: draw.NewBasicMeasurer(),
		scale:    1,
	}
	w.raster = canvas.NewRaster(w.draw)
	w.ExtendBaseWidget(w)
	return w
}

// Scene returns the scene shown
func (w *PlotWidget) Scene() *plot.Scene {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scene
}

// SetScene replaces the scene shown
func (w *PlotWidget) SetScene(scene *plot.Scene) {
	w.mu.Lock()
	w.scene = scene
	w.mu.Unlock()
	w.Refresh()
}

// SetOnViewChanged registers a callback run after the camera moved
func (w *PlotWidget) SetOnViewChanged(callback func()) {
	w.onView = callback
}

// Update runs fn with the scene and redraws
func (w *PlotWidget) Update(fn func(*plot.Scene)) {
	w.mu.Lock()
	fn(w.scene)
	w.mu.Unlock()
	w.Refresh()
}

func (w *PlotWidget) draw(width, height int) image.Image {
	w.mu.Lock()
	defer w.mu.Unlock()

	if size := w.Size(); size.Width > 0 {
		w.scale = float64(width) / float64(size.Width)
	}
	w.scene.Resize(float64(width), float64(height))
	return w.renderer.Render(w.scene.Frame(w.measurer))
}

func (w *PlotWidget) viewChanged() {
	w.Refresh()
	if w.onView != nil {
		w.onView()
	}
}

// MouseDown records which button drives the next drag
func (w *PlotWidget) MouseDown(event *desktop.MouseEvent) {
	w.mu.Lock()
	switch event.Button {
	case desktop.MouseButtonPrimary:
		w.buttons |= plot.ButtonLeft
	case desktop.MouseButtonSecondary:
		w.buttons |= plot.ButtonRight
	}
	w.ctrl = event.Modifier&fyne.KeyModifierControl != 0
	w.scene.PointerPress(float64(event.Position.X)*w.scale, float64(event.Position.Y)*w.scale)
	w.mu.Unlock()
}

// MouseUp ends the drag of a button
func (w *PlotWidget) MouseUp(event *desktop.MouseEvent) {
	w.mu.Lock()
	switch event.Button {
	case desktop.MouseButtonPrimary:
		w.buttons &^= plot.ButtonLeft
	case desktop.MouseButtonSecondary:
		w.buttons &^= plot.ButtonRight
	}
	w.mu.Unlock()
}

// Dragged rotates or pans the camera
func (w *PlotWidget) Dragged(event *fyne.DragEvent) {
	w.mu.Lock()
	buttons := w.buttons
	if buttons == 0 {
		// drags without a desktop mouse event, e.g. touch
		buttons = plot.ButtonLeft
	}
	w.scene.Drag(float64(event.Dragged.DX)*w.scale, float64(event.Dragged.DY)*w.scale, buttons, w.ctrl)
	w.mu.Unlock()
	w.viewChanged()
}

// DragEnd handles the end of a drag event
func (w *PlotWidget) DragEnd() {
	w.mu.Lock()
	w.buttons = 0
	w.mu.Unlock()
}

// Scrolled zooms
func (w *PlotWidget) Scrolled(event *fyne.ScrollEvent) {
	w.mu.Lock()
	w.scene.Wheel(float64(event.Scrolled.DY) / scrollPerNotch * plot.WheelNotch)
	w.mu.Unlock()
	w.viewChanged()
}

// DoubleTapped toggles equal axes
func (w *PlotWidget) DoubleTapped(*fyne.PointEvent) {
	w.mu.Lock()
	w.scene.DoubleClick()
	w.mu.Unlock()
	w.viewChanged()
}

// CreateRenderer creates the renderer for the widget
func (w *PlotWidget) CreateRenderer() fyne.WidgetRenderer {
	return &plotWidgetRenderer{widget: w}
}

// plotWidgetRenderer implements fyne.WidgetRenderer
type plotWidgetRenderer struct {
	widget *PlotWidget
}

func (r *plotWidgetRenderer) Layout(size fyne.Size) {
	r.widget.raster.Resize(size)
}

func (r *plotWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *plotWidgetRenderer) Refresh() {
	canvas.Refresh(r.widget.raster)
}

func (r *plotWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.raster}
}

func (r *plotWidgetRenderer) Destroy() {}
