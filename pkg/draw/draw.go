// Package draw describes the primitives a plot emits for a rendering backend.
//
// A Frame is an ordered list of primitives. World-space primitives are given in
// data coordinates and are transformed with the frame's ModelView and Projection;
// screen-space primitives are in pixels with the origin at the top-left corner.
package draw

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/style"
)

// Kind identifies the geometry of a primitive
type Kind int

const (
	// Quad is four vertices forming a filled quadrilateral
	Quad Kind = iota
	// Lines is pairs of vertices, each pair a separate segment
	Lines
	// LineStrip is a connected polyline
	LineStrip
	// TriangleStrip is a filled strip with per-vertex alpha
	TriangleStrip
	// Text is a string placed at its anchor's baseline
	Text
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Quad:
		return "quad"
	case Lines:
		return "lines"
	case LineStrip:
		return "line-strip"
	case TriangleStrip:
		return "triangle-strip"
	case Text:
		return "text"
	}
	return "unknown"
}

// Space tells whether vertices are in data or pixel coordinates
type Space int

const (
	// World vertices are data coordinates
	World Space = iota
	// Screen vertices are pixel coordinates; Z carries depth in [0,1]
	Screen
)

// Vertex is a position with an alpha multiplier applied to the primitive color
type Vertex struct {
	Pos   geometry.Vector3
	Alpha float64
}

// Primitive is one draw command
type Primitive struct {
	Kind     Kind
	Space    Space
	Vertices []Vertex
	Color    color.RGBA
	Width    float64
	Text     string
	Font     style.Font
}

// Viewport is the pixel rectangle the scene is drawn into
type Viewport struct {
	X, Y, Width, Height float64
}

// Center returns the pixel at the middle of the viewport
func (v Viewport) Center() (float64, float64) {
	return v.X + v.Width/2, v.Y + v.Height/2
}

// Frame is everything needed to render one redraw
type Frame struct {
	Viewport   Viewport
	Background color.RGBA
	ModelView  mgl64.Mat4
	Projection mgl64.Mat4
	Items      []Primitive
}

// Add appends a primitive
func (f *Frame) Add(p Primitive) {
	f.Items = append(f.Items, p)
}

// Count returns how many primitives of kind are in the frame
func (f *Frame) Count(kind Kind) int {
	n := 0
	for _, p := range f.Items {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings of all text primitives in order
func (f *Frame) Texts() []string {
	var out []string
	for _, p := range f.Items {
		if p.Kind == Text {
			out = append(out, p.Text)
		}
	}
	return out
}

// Opaque returns vertices with full alpha
func Opaque(points ...geometry.Vector3) []Vertex {
	out := make([]Vertex, len(points))
	for i, p := range points {
		out[i] = Vertex{Pos: p, Alpha: 1}
	}
	return out
}
