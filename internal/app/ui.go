package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goplot3d/version"
)

var helpLines = []string{
	"Left drag: rotate   Ctrl+left drag: tilt",
	"Right drag: pan     Wheel: zoom",
	"Double click / E: equal axes",
	"L: legend   O: angles   A: axes   G: grid",
	"B: box   P: auto planes   R: reset view",
	"T: top   1: front   2: side   H: help",
}

// drawUI draws the status line and the help panel
func (app *App) drawUI() {
	fontSize := float32(14)
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	status := fmt.Sprintf("%s | %d curve(s) | goplot3d %s | H: help", app.Session.Title(), len(app.Session.Curves()), version.GetVersion())
	if !app.Reload.lastReload.IsZero() && time.Since(app.Reload.lastReload) < 2*time.Second {
		status = "Reloaded | " + status
	}
	size := rl.MeasureTextEx(app.UI.font, status, fontSize, spacing(fontSize))
	rl.DrawTextEx(app.UI.font, status, rl.Vector2{X: screenWidth - size.X - 10, Y: screenHeight - size.Y - 8}, fontSize, spacing(fontSize), rl.Gray)

	if !app.View.showHelp {
		return
	}

	lineHeight := float32(20)
	boxPadding := float32(10)
	width := float32(0)
	for _, line := range helpLines {
		if w := rl.MeasureTextEx(app.UI.font, line, fontSize, spacing(fontSize)).X; w > width {
			width = w
		}
	}
	boxWidth := width + boxPadding*2
	boxHeight := float32(len(helpLines))*lineHeight + boxPadding*2
	boxX := (screenWidth - boxWidth) / 2
	boxY := (screenHeight - boxHeight) / 2

	rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 200))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.LightGray)
	for i, line := range helpLines {
		pos := rl.Vector2{X: boxX + boxPadding, Y: boxY + boxPadding + float32(i)*lineHeight}
		rl.DrawTextEx(app.UI.font, line, pos, fontSize, spacing(fontSize), rl.White)
	}
}
