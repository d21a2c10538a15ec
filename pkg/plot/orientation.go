package plot

import (
	"math"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// TickSides selects on which edges of a plane tick marks and labels are drawn.
// Lower and Upper are the edges at the minimum and maximum of the plane's second
// in-plane dimension; Left and Right those of the first.
type TickSides struct {
	Lower bool
	Right bool
	Upper bool
	Left  bool
}

// Quadrant returns the 90 degree sector, 0 to 3, of a normalized azimuth
func Quadrant(azimuth float64) int {
	a := azimuth - math.Floor(azimuth/360.0)*360.0
	q := int(a / 90.0)
	if q > 3 {
		q = 3
	}
	return q
}

// sideTable is indexed by axis, quadrant and elevation (0 above the horizon, 1 below).
// The floor plane carries x and y ticks on the two edges nearest to the viewer; z ticks
// go to the front vertical edge of one of the walls.
var sideTable = [3][4][2]TickSides{
	XAxis: {
		{{Lower: true, Right: true}, {Lower: true, Right: true}},
		{{Upper: true, Right: true}, {Upper: true, Right: true}},
		{{Upper: true, Left: true}, {Upper: true, Left: true}},
		{{Lower: true, Left: true}, {Lower: true, Left: true}},
	},
	YAxis: {
		{{Left: true}, {}},
		{{}, {Right: true}},
		{{Right: true}, {}},
		{{}, {Left: true}},
	},
	ZAxis: {
		{{}, {Upper: true}},
		{{Upper: true}, {}},
		{{}, {Lower: true}},
		{{Lower: true}, {}},
	},
}

// SidesFor looks up the visible tick sides of an axis plane for a view direction
func SidesFor(axis AxisID, azimuth, elevation float64) TickSides {
	below := 0
	if elevation < 0 {
		below = 1
	}
	return sideTable[axis][Quadrant(azimuth)][below]
}

// FarFaces reports, per dimension, whether the upper face of box is farther from
// position than the lower face
func FarFaces(box geometry.Range, position geometry.Vector3) [3]bool {
	var far [3]bool
	center := box.Center()
	for dim := 0; dim < 3; dim++ {
		lower := center.WithComponent(dim, box.Min.Component(dim))
		upper := center.WithComponent(dim, box.Max.Component(dim))
		far[dim] = position.Distance(upper) > position.Distance(lower)
	}
	return far
}
