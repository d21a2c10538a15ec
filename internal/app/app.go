// Package app is the interactive raylib viewer.
package app

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goplot3d/internal/session"
)

// Run opens a window showing the input named by opts and blocks until it is closed
func Run(opts session.Options) error {
	s, err := session.New(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if opts.Watch {
		if err := s.StartWatching(ctx); err != nil {
			fmt.Printf("Warning: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			fmt.Printf("Watching %d file(s) for changes\n", len(opts.Files))
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(s.Options().Width), int32(s.Options().Height), "goplot3d - "+s.Title())
	rl.SetTargetFPS(60)

	app := &App{
		Session: s,
		View: ViewSettings{
			showAxes:   true,
			showGrid:   true,
			adjustView: true,
		},
		UI: UIState{font: rl.GetFontDefault()},
	}
	measurer := &fontMeasurer{font: app.UI.font}

	for {
		if rl.WindowShouldClose() {
			break
		}
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Reloads are parsed in the background and applied here on the main thread
		if s.ApplyPending() {
			app.Reload.lastReload = time.Now()
		}

		scene := s.Scene()
		scene.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		app.handleInput()

		frame := scene.Frame(measurer)

		rl.BeginDrawing()
		drawFrame(frame, app.UI.font)
		app.drawUI()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}
