// Package session loads curves into a scene and keeps them in sync with their
// source files.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/goplot3d/pkg/dataset"
	"github.com/philipparndt/goplot3d/pkg/plot"
	"github.com/philipparndt/goplot3d/pkg/series"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/philipparndt/goplot3d/pkg/watcher"
)

// ErrNoInput is returned when neither files nor a demo were given
var ErrNoInput = errors.New("no input: pass a point file or --demo")

// ReloadDebounce is the quiet time after a change before a file is re-read
const ReloadDebounce = 500 * time.Millisecond

// Options selects what is shown and how
type Options struct {
	Files []string
	Demo  string
	// Style defaults to style.Default() when left zero
	Style style.Style

	// Azimuth and Elevation override the initial view when set
	Azimuth   *float64
	Elevation *float64
	AxisEqual bool
	NoLegend  bool
	NoOverlay bool
	Labels    [3]string

	Width  int
	Height int
	Watch  bool

	Logger *slog.Logger
}

type reload struct {
	curves []*series.Series
	err    error
}

// Session owns a scene and the curves loaded into it
type Session struct {
	opts    Options
	logger  *slog.Logger
	scene   *plot.Scene
	curves  []*series.Series
	title   string
	reloads chan reload
	watcher *watcher.FileWatcher
}

// New loads the input named by opts and configures the scene
func New(opts Options) (*Session, error) {
	if len(opts.Files) == 0 && opts.Demo == "" {
		return nil, ErrNoInput
	}
	if opts.Style.TickTarget == 0 {
		opts.Style = style.Default()
	}
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 768
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		opts:    opts,
		logger:  logger,
		scene:   plot.NewScene(opts.Style),
		reloads: make(chan reload, 1),
	}
	s.scene.Resize(float64(opts.Width), float64(opts.Height))

	labels := [3]string{"x", "y", "z"}
	equal := opts.AxisEqual
	var curves []*series.Series
	if opts.Demo != "" {
		demo, err := dataset.LoadDemo(opts.Demo)
		if err != nil {
			return nil, fmt.Errorf("failed to load demo: %w", err)
		}
		curves = demo.Curves
		labels = demo.Labels
		equal = equal || demo.AxisEqual
		s.title = demo.Name
	}
	if len(opts.Files) > 0 {
		loaded, err := loadFiles(opts.Files)
		if err != nil {
			return nil, err
		}
		curves = append(curves, loaded...)
		s.title = strings.Join(baseNames(opts.Files), ", ")
	}

	for i, l := range opts.Labels {
		if l != "" {
			labels[i] = l
		}
	}
	s.scene.SetXLabel(labels[0])
	s.scene.SetYLabel(labels[1])
	s.scene.SetZLabel(labels[2])

	s.scene.SetAxisEqual(equal)
	s.scene.SetShowLegend(!opts.NoLegend)
	s.scene.SetShowAzimuthElevation(!opts.NoOverlay)
	if opts.Azimuth != nil {
		s.scene.SetAzimuth(*opts.Azimuth)
	}
	if opts.Elevation != nil {
		s.scene.SetElevation(*opts.Elevation)
	}

	s.Replace(curves)
	logger.Info("session loaded", "title", s.title, "curves", len(curves))
	return s, nil
}

func loadFiles(files []string) ([]*series.Series, error) {
	var out []*series.Series
	for _, f := range files {
		curves, err := dataset.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
		out = append(out, curves...)
	}
	return out, nil
}

func baseNames(files []string) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	return names
}

// Scene returns the scene; it must only be used from the UI goroutine
func (s *Session) Scene() *plot.Scene { return s.scene }

// Curves returns the curves currently shown
func (s *Session) Curves() []*series.Series { return s.curves }

// Title names what is shown
func (s *Session) Title() string { return s.title }

// Options returns the options the session was created with
func (s *Session) Options() Options { return s.opts }

// Replace swaps the shown curves and rebuilds the scene range from the new set
func (s *Session) Replace(curves []*series.Series) {
	for _, c := range s.curves {
		s.scene.RemoveCurve(c)
	}
	s.curves = curves
	for _, c := range curves {
		s.scene.AddCurve(c)
	}
	s.scene.RecomputeRange()
}

// Reload re-reads the input files synchronously
func (s *Session) Reload() error {
	if len(s.opts.Files) == 0 {
		return nil
	}
	curves, err := loadFiles(s.opts.Files)
	if err != nil {
		return err
	}
	s.Replace(curves)
	return nil
}

// StartWatching re-reads the input files in the background whenever one changes.
// Results are handed to the UI goroutine through ApplyPending.
func (s *Session) StartWatching(ctx context.Context) error {
	if len(s.opts.Files) == 0 || s.watcher != nil {
		return nil
	}
	fw, err := watcher.NewFileWatcher(ReloadDebounce, s.logger)
	if err != nil {
		return fmt.Errorf("failed to set up file watching: %w", err)
	}
	for _, f := range s.opts.Files {
		if err := fw.Watch(f, s.onChange); err != nil {
			fw.Close()
			return fmt.Errorf("failed to watch files: %w", err)
		}
	}
	s.watcher = fw
	go fw.Run(ctx)
	return nil
}

func (s *Session) onChange(string) {
	curves, err := loadFiles(s.opts.Files)
	r := reload{curves: curves, err: err}
	select {
	case s.reloads <- r:
	default:
		// replace a reload the UI has not picked up yet
		select {
		case <-s.reloads:
		default:
		}
		s.reloads <- r
	}
}

// ApplyPending applies a finished background reload. It reports whether the scene changed.
func (s *Session) ApplyPending() bool {
	select {
	case r := <-s.reloads:
		if r.err != nil {
			s.logger.Warn("reload failed", "err", r.err)
			return false
		}
		s.Replace(r.curves)
		s.logger.Info("reloaded", "curves", len(r.curves))
		return true
	default:
		return false
	}
}

// Close stops file watching
func (s *Session) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}
