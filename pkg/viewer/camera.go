package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goplot3d/pkg/geometry"
)

const (
	// ScaleConstant is the view-space size the data range is fitted to
	ScaleConstant = 10.0
	// MinExtent is the smallest extent divided by when fitting
	MinExtent = 1e-9

	zNear          = 0.01
	zFar           = 1000.0
	halfFovDegrees = 25.0

	defaultZoom      = -20.0
	defaultAzimuth   = 130.0
	defaultElevation = 30.0
)

// FitMode selects how the data range is scaled into view space
type FitMode int

const (
	// FitTight scales every axis independently to fill the view
	FitTight FitMode = iota
	// FitEqual scales all axes by the same factor, preserving shapes
	FitEqual
)

// String returns the mode name
func (m FitMode) String() string {
	if m == FitEqual {
		return "equal"
	}
	return "tight"
}

// Orientation is the view-dependent state axis planes orient against
type Orientation struct {
	Position  geometry.Vector3 // camera position in world coordinates
	Azimuth   float64          // degrees in [0, 360)
	Elevation float64          // degrees
}

// Camera orbits the center of the data range. Rotation is kept as three angles in
// degrees (roll about X, pitch about Y, yaw about Z); pan holds the view-space
// offset with the zoom distance as its Z component.
type Camera struct {
	rotation mgl64.Vec3
	pan      mgl64.Vec3
	scale    geometry.Vector3
	center   geometry.Vector3
	fit      FitMode
}

// NewCamera creates a camera 20 units behind the origin at azimuth 130 and elevation 30
func NewCamera() *Camera {
	c := &Camera{
		pan:   mgl64.Vec3{0, 0, defaultZoom},
		scale: geometry.NewVector3(1, 1, 1),
		fit:   FitTight,
	}
	c.SetAzimuth(defaultAzimuth)
	c.SetElevation(defaultElevation)
	return c
}

// Roll returns the rotation about X in degrees
func (c *Camera) Roll() float64 { return c.rotation[0] }

// Pitch returns the rotation about Y in degrees
func (c *Camera) Pitch() float64 { return c.rotation[1] }

// Yaw returns the rotation about Z in degrees
func (c *Camera) Yaw() float64 { return c.rotation[2] }

// SetRoll sets the rotation about X in degrees
func (c *Camera) SetRoll(degrees float64) { c.rotation[0] = degrees }

// SetPitch sets the rotation about Y in degrees
func (c *Camera) SetPitch(degrees float64) { c.rotation[1] = degrees }

// SetYaw sets the rotation about Z in degrees
func (c *Camera) SetYaw(degrees float64) { c.rotation[2] = degrees }

// Azimuth returns the horizontal orbit angle normalized into [0, 360)
func (c *Camera) Azimuth() float64 {
	a := -c.Yaw()
	return a - math.Floor(a/360.0)*360.0
}

// Elevation returns the vertical orbit angle. Values beyond +-180 are wrapped
// modulo 90, not 360.
func (c *Camera) Elevation() float64 {
	e := c.Roll()
	if e > 180 || e < -180 {
		return e - math.Floor(e/90.0)*90.0
	}
	return e
}

// SetAzimuth sets the horizontal orbit angle in degrees
func (c *Camera) SetAzimuth(degrees float64) { c.SetYaw(-degrees) }

// SetElevation sets the vertical orbit angle in degrees
func (c *Camera) SetElevation(degrees float64) { c.SetRoll(degrees) }

// Pan returns the view-space offset; Z is the zoom distance
func (c *Camera) Pan() geometry.Vector3 { return geometry.FromVec3(c.pan) }

// SetPan replaces the view-space offset. The zoom component follows the rules of
// SetZoom: a Z that is not negative keeps the current zoom.
func (c *Camera) SetPan(pan geometry.Vector3) {
	c.pan[0], c.pan[1] = pan.X, pan.Y
	c.SetZoom(pan.Z)
}

// Zoom returns the distance along the view axis; always negative
func (c *Camera) Zoom() float64 { return c.pan[2] }

// SetZoom sets the zoom distance. Values that are not negative are rejected and
// leave the camera unchanged; the result reports whether value was applied.
func (c *Camera) SetZoom(value float64) bool {
	if !(value < 0) {
		return false
	}
	c.pan[2] = value
	return true
}

// FitMode returns the active scale-fit mode
func (c *Camera) FitMode() FitMode { return c.fit }

// SetFitMode changes the scale-fit mode. Call Rescale afterwards.
func (c *Camera) SetFitMode(mode FitMode) { c.fit = mode }

// Scale returns the per-axis world-to-view scale
func (c *Camera) Scale() geometry.Vector3 { return c.scale }

// Center returns the world point the camera orbits
func (c *Camera) Center() geometry.Vector3 { return c.center }

// Rescale fits the data range into view space using the active mode and reports
// whether any axis extent had to be substituted.
func (c *Camera) Rescale(r geometry.Range) bool {
	clean, replaced := r.Sanitized()
	degenerate := replaced[0] || replaced[1] || replaced[2]

	c.center = clean.Center()
	extent := clean.Extent()
	for dim := 0; dim < 3; dim++ {
		if extent.Component(dim) < MinExtent {
			extent = extent.WithComponent(dim, MinExtent)
			degenerate = true
		}
	}

	switch c.fit {
	case FitEqual:
		s := ScaleConstant / extent.MaxComponent()
		c.scale = geometry.NewVector3(s, s, s)
	default:
		c.scale = geometry.NewVector3(
			ScaleConstant/extent.X,
			ScaleConstant/extent.Y,
			ScaleConstant/extent.Z,
		)
	}
	return degenerate
}

// Rotation returns the orbit rotation, composed roll first then pitch then yaw
func (c *Camera) Rotation() mgl64.Quat {
	roll := mgl64.QuatRotate(mgl64.DegToRad(c.Roll()-90), mgl64.Vec3{1, 0, 0})
	pitch := mgl64.QuatRotate(mgl64.DegToRad(c.Pitch()), mgl64.Vec3{0, 1, 0})
	yaw := mgl64.QuatRotate(mgl64.DegToRad(c.Yaw()), mgl64.Vec3{0, 0, 1})
	return roll.Mul(pitch).Mul(yaw)
}

// ModelView maps world coordinates to eye coordinates:
// translate(pan) * rotation * scale * translate(-center)
func (c *Camera) ModelView() mgl64.Mat4 {
	return mgl64.Translate3D(c.pan[0], c.pan[1], c.pan[2]).
		Mul4(c.Rotation().Mat4()).
		Mul4(mgl64.Scale3D(c.scale.X, c.scale.Y, c.scale.Z)).
		Mul4(mgl64.Translate3D(-c.center.X, -c.center.Y, -c.center.Z))
}

// Projection returns the perspective frustum for a viewport of the given size
func (c *Camera) Projection(width, height float64) mgl64.Mat4 {
	aspect := 1.0
	if width > 0 && height > 0 {
		aspect = width / height
	}
	fW := math.Tan(mgl64.DegToRad(halfFovDegrees)) * zNear
	fH := fW / aspect
	return mgl64.Frustum(-fW, fW, -fH, fH, zNear, zFar)
}

// WorldPosition reconstructs the eye position in world coordinates by undoing the
// model-view transform for the eye-space origin
func (c *Camera) WorldPosition() geometry.Vector3 {
	return c.unview(c.pan.Mul(-1))
}

// Target returns the world point shown at the viewport center
func (c *Camera) Target() geometry.Vector3 {
	return c.unview(mgl64.Vec3{-c.pan[0], -c.pan[1], 0})
}

// Orientation returns the state axis planes orient against
func (c *Camera) Orientation() Orientation {
	return Orientation{
		Position:  c.WorldPosition(),
		Azimuth:   c.Azimuth(),
		Elevation: c.Elevation(),
	}
}

func (c *Camera) unview(offset mgl64.Vec3) geometry.Vector3 {
	rotated := geometry.FromVec3(c.Rotation().Inverse().Rotate(offset))
	return c.center.Add(rotated.DivVec(c.scale))
}
