package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/plot"
)

const doubleClickInterval = 300 * time.Millisecond

// handleInput maps keyboard and mouse to scene operations
func (app *App) handleInput() {
	scene := app.Session.Scene()
	app.handleKeys(scene)

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) || rl.IsMouseButtonPressed(rl.MouseRightButton) {
		now := time.Now()
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
			now.Sub(app.Interaction.lastPress) < doubleClickInterval &&
			rl.Vector2Distance(mouse, app.Interaction.lastPressPos) < 4 {
			scene.DoubleClick()
			app.Interaction.lastPress = time.Time{}
		} else {
			app.Interaction.lastPress = now
		}
		app.Interaction.lastPressPos = mouse
		app.Interaction.dragging = true
		scene.PointerPress(x, y)
	}

	var buttons plot.Buttons
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		buttons |= plot.ButtonLeft
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		buttons |= plot.ButtonRight
	}
	if buttons == 0 {
		app.Interaction.dragging = false
	}
	if app.Interaction.dragging {
		ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		scene.PointerMove(x, y, buttons, ctrl)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		scene.Wheel(float64(wheel) * plot.WheelNotch)
	}
}

func (app *App) handleKeys(scene *plot.Scene) {
	switch {
	case rl.IsKeyPressed(rl.KeyH):
		app.View.showHelp = !app.View.showHelp
	case rl.IsKeyPressed(rl.KeyL):
		scene.SetShowLegend(!scene.ShowLegend())
	case rl.IsKeyPressed(rl.KeyO):
		scene.SetShowAzimuthElevation(!scene.ShowAzimuthElevation())
	case rl.IsKeyPressed(rl.KeyE):
		scene.ToggleAxisEqual()
	case rl.IsKeyPressed(rl.KeyA):
		app.View.showAxes = !app.View.showAxes
		if app.View.showAxes {
			scene.ShowAxes()
			scene.SetShowGrid(app.View.showGrid)
		} else {
			scene.HideAxes()
		}
	case rl.IsKeyPressed(rl.KeyG):
		app.View.showGrid = !app.View.showGrid
		scene.SetShowGrid(app.View.showGrid)
	case rl.IsKeyPressed(rl.KeyB):
		app.View.showBox = !app.View.showBox
		scene.SetShowAxisBox(app.View.showBox)
	case rl.IsKeyPressed(rl.KeyP):
		app.View.adjustView = !app.View.adjustView
		scene.SetAdjustPlaneView(app.View.adjustView)
	case rl.IsKeyPressed(rl.KeyR), rl.IsKeyPressed(rl.KeyHome):
		app.resetView()
	case rl.IsKeyPressed(rl.KeyT):
		scene.SetAzimuth(0)
		scene.SetElevation(90)
	case rl.IsKeyPressed(rl.KeyOne):
		scene.SetAzimuth(0)
		scene.SetElevation(0)
	case rl.IsKeyPressed(rl.KeyTwo):
		scene.SetAzimuth(90)
		scene.SetElevation(0)
	}
}

// resetView restores the camera of a freshly opened plot
func (app *App) resetView() {
	scene := app.Session.Scene()
	cam := scene.Camera()
	cam.SetPitch(0)
	scene.SetPan(geometry.NewVector3(0, 0, -20))
	scene.SetAzimuth(130)
	scene.SetElevation(30)
}
