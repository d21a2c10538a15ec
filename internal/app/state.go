package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goplot3d/internal/session"
)

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastPress    time.Time
	lastPressPos rl.Vector2
	dragging     bool
}

// ViewSettings mirrors the scene toggles driven from the keyboard
type ViewSettings struct {
	showHelp   bool
	showAxes   bool
	showGrid   bool
	showBox    bool
	adjustView bool
}

// ReloadState tracks background reloads for the status line
type ReloadState struct {
	lastReload time.Time
}

// UIState holds UI-related state
type UIState struct {
	font rl.Font
}

// App is the raylib viewer
type App struct {
	Session     *session.Session
	Interaction InteractionState
	View        ViewSettings
	Reload      ReloadState
	UI          UIState
}
