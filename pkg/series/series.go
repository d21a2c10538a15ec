// Package series holds the polylines displayed by a plot.
package series

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// ErrInvalidArgument is returned when bulk input has an invalid shape.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultColor is the color of a newly created series
var DefaultColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// Series is a named, colored polyline together with the range of its points.
// The range only grows: points mutated in place through ValueAt are not
// re-examined until Rescan is called.
type Series struct {
	name      string
	color     color.RGBA
	lineWidth float64
	points    []geometry.Vector3
	rng       geometry.Range
}

// New creates an empty series
func New(name string) *Series {
	return &Series{
		name:      name,
		color:     DefaultColor,
		lineWidth: 1,
		points:    make([]geometry.Vector3, 0),
		rng:       geometry.EmptyRange(),
	}
}

// Name returns the legend name
func (s *Series) Name() string { return s.name }

// SetName changes the legend name
func (s *Series) SetName(name string) { s.name = name }

// Color returns the line color
func (s *Series) Color() color.RGBA { return s.color }

// SetColor changes the line color
func (s *Series) SetColor(c color.RGBA) { s.color = c }

// LineWidth returns the line width in pixels
func (s *Series) LineWidth() float64 { return s.lineWidth }

// SetLineWidth changes the line width in pixels
func (s *Series) SetLineWidth(width float64) { s.lineWidth = width }

// Range returns the bounding range of all appended points
func (s *Series) Range() geometry.Range { return s.rng }

// Len returns the number of points
func (s *Series) Len() int { return len(s.points) }

// Append adds a point to the end of the polyline
func (s *Series) Append(point geometry.Vector3) {
	s.points = append(s.points, point)
	s.rng.ExpandToInclude(point)
}

// AppendXYZ adds a single point given by its coordinates
func (s *Series) AppendXYZ(x, y, z float64) {
	s.Append(geometry.NewVector3(x, y, z))
}

// AppendPoints adds all points in order
func (s *Series) AppendPoints(points []geometry.Vector3) {
	for _, p := range points {
		s.Append(p)
	}
}

// AppendColumns adds points built from three coordinate slices.
// The slices must have equal length; otherwise nothing is appended.
func (s *Series) AppendColumns(xs, ys, zs []float64) error {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return fmt.Errorf("%w: column lengths differ (x=%d, y=%d, z=%d)", ErrInvalidArgument, len(xs), len(ys), len(zs))
	}
	for i := range xs {
		s.AppendXYZ(xs[i], ys[i], zs[i])
	}
	return nil
}

// ValueAt returns a pointer to the stored point at index so callers can
// modify it in place. It panics if index is out of range.
func (s *Series) ValueAt(index int) *geometry.Vector3 {
	return &s.points[index]
}

// Points returns the stored points. The slice must not be modified.
func (s *Series) Points() []geometry.Vector3 {
	return s.points
}

// Clear removes all points and resets the range
func (s *Series) Clear() {
	s.points = s.points[:0]
	s.rng = geometry.EmptyRange()
}

// Rescan rebuilds the range from the stored points
func (s *Series) Rescan() {
	s.rng = geometry.EmptyRange()
	for _, p := range s.points {
		s.rng.ExpandToInclude(p)
	}
}
