package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goplot3d/internal/gui"
	"github.com/philipparndt/goplot3d/internal/session"
	"github.com/philipparndt/goplot3d/pkg/dataset"
	"github.com/philipparndt/goplot3d/pkg/plot"
	"github.com/spf13/cobra"
)

type App struct {
	window  fyne.Window
	session *session.Session
	plot    *gui.PlotWidget
	status  *widget.Label
	cancel  context.CancelFunc
}

var guiFlags session.Flags

var rootCmd = &cobra.Command{
	Use:   "goplot3d-gui [file...]",
	Short: "3D line plot viewer with a fyne user interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		guiFlags.InstallLogger()
		if len(args) == 0 && guiFlags.Demo == "" {
			guiFlags.Demo = "boxes"
		}
		opts, err := guiFlags.Options(cmd.Flags(), args)
		if err != nil {
			return err
		}
		return run(opts)
	},
}

func init() {
	guiFlags.Register(rootCmd.Flags(), true)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts session.Options) error {
	s, err := session.New(opts)
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("goplot3d - " + s.Title())
	appInstance := &App{
		window: w,
		plot:   gui.NewPlotWidget(s.Scene()),
		status: widget.NewLabel(""),
	}
	appInstance.setSession(s)
	appInstance.plot.SetOnViewChanged(appInstance.updateStatus)

	w.SetContent(container.NewBorder(appInstance.toolbar(), appInstance.status, nil, nil, appInstance.plot))
	w.Resize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))
	w.SetOnClosed(func() {
		appInstance.closeSession()
	})
	w.ShowAndRun()
	return nil
}

func (a *App) setSession(s *session.Session) {
	a.closeSession()
	a.session = s
	a.plot.SetScene(s.Scene())
	a.window.SetTitle("goplot3d - " + s.Title())

	if s.Options().Watch {
		ctx, cancel := context.WithCancel(context.Background())
		a.cancel = cancel
		if err := s.StartWatching(ctx); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			go a.pollReloads(ctx, s)
		}
	}
	a.updateStatus()
}

func (a *App) closeSession() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.session != nil {
		a.session.Close()
	}
}

// pollReloads applies background reloads on the fyne main goroutine
func (a *App) pollReloads(ctx context.Context, s *session.Session) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fyne.Do(func() {
				a.plot.Update(func(*plot.Scene) {
					if s.ApplyPending() {
						a.status.SetText("Reloaded " + s.Title())
					}
				})
			})
		}
	}
}

func (a *App) updateStatus() {
	cam := a.plot.Scene().Camera()
	a.status.SetText(fmt.Sprintf("%s | %d curve(s) | Az %.1f El %.1f | %s fit",
		a.session.Title(), len(a.session.Curves()), cam.Azimuth(), cam.Elevation(), cam.FitMode()))
}

func (a *App) toolbar() fyne.CanvasObject {
	legend := widget.NewCheck("Legend", func(on bool) {
		a.plot.Update(func(s *plot.Scene) { s.SetShowLegend(on) })
	})
	legend.SetChecked(a.plot.Scene().ShowLegend())

	overlay := widget.NewCheck("Angles", func(on bool) {
		a.plot.Update(func(s *plot.Scene) { s.SetShowAzimuthElevation(on) })
	})
	overlay.SetChecked(a.plot.Scene().ShowAzimuthElevation())

	axes := widget.NewCheck("Axes", func(on bool) {
		a.plot.Update(func(s *plot.Scene) {
			if on {
				s.ShowAxes()
			} else {
				s.HideAxes()
			}
		})
	})
	axes.SetChecked(true)

	box := widget.NewCheck("Box", func(on bool) {
		a.plot.Update(func(s *plot.Scene) { s.SetShowAxisBox(on) })
	})

	equal := widget.NewCheck("Equal axes", func(on bool) {
		a.plot.Update(func(s *plot.Scene) { s.SetAxisEqual(on) })
		a.updateStatus()
	})
	equal.SetChecked(a.plot.Scene().AxisEqual())

	open := widget.NewButton("Open...", a.showOpenDialog)

	demoNames := dataset.DemoNames()
	demo := widget.NewSelect(demoNames, func(name string) {
		opts := a.session.Options()
		opts.Files = nil
		opts.Demo = name
		a.load(opts)
	})
	demo.PlaceHolder = "Demo"

	return container.NewHBox(open, demo, legend, overlay, axes, box, equal)
}

func (a *App) showOpenDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		opts := a.session.Options()
		opts.Files = []string{path}
		opts.Demo = ""
		a.load(opts)
	}, a.window)
}

func (a *App) load(opts session.Options) {
	s, err := session.New(opts)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.setSession(s)
}
