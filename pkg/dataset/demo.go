package dataset

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/series"
)

// Demo is a ready-made set of curves with the view settings that suit it
type Demo struct {
	Name      string
	Curves    []*series.Series
	Labels    [3]string
	AxisEqual bool
}

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	black = color.RGBA{A: 255}
)

var demos = map[string]func() Demo{
	"boxes": func() Demo {
		fat := Box("Fat Box", geometry.NewVector3(0, 5, -5), black)
		fat.SetLineWidth(5)
		return Demo{
			Name: "boxes",
			Curves: []*series.Series{
				Box("Box 1", geometry.NewVector3(5, 0, 0), red),
				Box("Box 2", geometry.NewVector3(-5, 0, 0), green),
				Box("Box 3", geometry.NewVector3(0, 0, 5), blue),
				fat,
				Spiral(),
			},
			Labels:    [3]string{"x", "y", "z"},
			AxisEqual: true,
		}
	},
	"big-spiral": func() Demo {
		return Demo{
			Name:   "big-spiral",
			Curves: []*series.Series{BigSpiral()},
			Labels: [3]string{"North", "East", "Down"},
		}
	},
}

// DemoNames lists the available demos
func DemoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDemo builds the demo with the given name
func LoadDemo(name string) (Demo, error) {
	build, ok := demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("unknown demo %q, available: %v", name, DemoNames())
	}
	return build(), nil
}

// boxPath walks the edges of the unit cube around the origin, scaled to half-size 1
var boxPath = [][3]float64{
	// front
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1},
	// left
	{-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1},
	// back
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	// bottom
	{1, -1, -1}, {1, -1, 1}, {-1, -1, 1}, {-1, -1, -1},
	// right
	{1, -1, -1}, {1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1},
	// top
	{1, 1, 1}, {-1, 1, 1}, {-1, 1, -1}, {1, 1, -1}, {1, 1, 1},
}

// Box traces the edges of a cube of side 2 around center
func Box(name string, center geometry.Vector3, c color.RGBA) *series.Series {
	s := series.New(name)
	s.SetColor(c)
	for _, p := range boxPath {
		s.Append(center.Add(geometry.NewVector3(p[0], p[1], p[2])))
	}
	return s
}

// Spiral is a conical helix around the z axis for z in [-5, 5)
func Spiral() *series.Series {
	s := series.New("Spiral")
	s.SetColor(blue)
	s.SetLineWidth(2)
	for i := 0; i < 1000; i++ {
		z := -5 + float64(i)*0.01
		s.AppendXYZ(0.5*z*math.Cos(z*math.Pi), 0.5*z*math.Sin(z*math.Pi), z)
	}
	return s
}

// BigSpiral is a widening helix far away from the origin
func BigSpiral() *series.Series {
	s := series.New("Big Spiral")
	s.SetColor(red)
	s.SetLineWidth(2)
	for i := 0; i < 1000; i++ {
		theta := float64(i) * 0.01
		z := theta * 100
		s.AppendXYZ(-10000+0.5*z*math.Cos(theta*math.Pi), -10000+0.5*z*math.Sin(theta*math.Pi), -100+z)
	}
	return s
}
