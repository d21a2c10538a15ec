package session

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/goplot3d/pkg/plot"
	"github.com/philipparndt/goplot3d/pkg/style"
	"github.com/spf13/pflag"
)

// Flags are the command line options shared by the viewers and the renderer
type Flags struct {
	StylePath string
	Demo      string
	Azimuth   float64
	Elevation float64
	Equal     bool
	NoLegend  bool
	NoOverlay bool
	XLabel    string
	YLabel    string
	ZLabel    string
	Width     int
	Height    int
	Watch     bool
	Verbose   bool
}

// Register adds the flags to fs. withWatch adds --watch for interactive commands.
func (f *Flags) Register(fs *pflag.FlagSet, withWatch bool) {
	fs.StringVar(&f.StylePath, "style", "", "YAML style file")
	fs.StringVar(&f.Demo, "demo", "", "show a built-in dataset (boxes, big-spiral)")
	fs.Float64Var(&f.Azimuth, "azimuth", 130, "initial azimuth in degrees")
	fs.Float64Var(&f.Elevation, "elevation", 30, "initial elevation in degrees")
	fs.BoolVar(&f.Equal, "equal", false, "scale all axes equally")
	fs.BoolVar(&f.NoLegend, "no-legend", false, "hide the legend")
	fs.BoolVar(&f.NoOverlay, "no-overlay", false, "hide the azimuth/elevation overlay")
	fs.StringVar(&f.XLabel, "xlabel", "", "name of the x axis")
	fs.StringVar(&f.YLabel, "ylabel", "", "name of the y axis")
	fs.StringVar(&f.ZLabel, "zlabel", "", "name of the z axis")
	fs.IntVar(&f.Width, "width", 1024, "width in pixels")
	fs.IntVar(&f.Height, "height", 768, "height in pixels")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "log debug messages")
	if withWatch {
		fs.BoolVarP(&f.Watch, "watch", "w", false, "reload point files when they change")
	}
}

// Options converts the parsed flags. Angles are only applied when given
// explicitly so demos and defaults keep their own view.
func (f *Flags) Options(fs *pflag.FlagSet, files []string) (Options, error) {
	st := style.Default()
	if f.StylePath != "" {
		loaded, err := style.Load(f.StylePath)
		if err != nil {
			return Options{}, fmt.Errorf("failed to load style: %w", err)
		}
		st = loaded
	}

	opts := Options{
		Files:     files,
		Demo:      f.Demo,
		Style:     st,
		AxisEqual: f.Equal,
		NoLegend:  f.NoLegend,
		NoOverlay: f.NoOverlay,
		Labels:    [3]string{f.XLabel, f.YLabel, f.ZLabel},
		Width:     f.Width,
		Height:    f.Height,
		Watch:     f.Watch,
		Logger:    f.Logger(),
	}
	if fs.Changed("azimuth") {
		az := f.Azimuth
		opts.Azimuth = &az
	}
	if fs.Changed("elevation") {
		el := f.Elevation
		opts.Elevation = &el
	}
	return opts, nil
}

// Logger returns a stderr logger at info level, or debug with --verbose
func (f *Flags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// InstallLogger routes library logging to the flag-selected logger
func (f *Flags) InstallLogger() {
	plot.SetLogger(f.Logger())
}
