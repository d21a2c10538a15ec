package plot

import (
	"testing"

	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func countSides(s TickSides) int {
	n := 0
	for _, v := range []bool{s.Lower, s.Right, s.Upper, s.Left} {
		if v {
			n++
		}
	}
	return n
}

func TestQuadrant(t *testing.T) {
	cases := map[float64]int{0: 0, 45: 0, 89.9: 0, 90: 1, 180: 2, 269: 2, 270: 3, 359.9: 3, 360: 0, -10: 3}
	for az, want := range cases {
		assert.Equal(t, want, Quadrant(az), "azimuth %v", az)
	}
}

func TestSidesForEveryBucket(t *testing.T) {
	const above, below = false, true
	cases := []struct {
		axis     AxisID
		quadrant int
		below    bool
		want     TickSides
	}{
		{XAxis, 0, above, TickSides{Lower: true, Right: true}},
		{XAxis, 0, below, TickSides{Lower: true, Right: true}},
		{XAxis, 1, above, TickSides{Upper: true, Right: true}},
		{XAxis, 1, below, TickSides{Upper: true, Right: true}},
		{XAxis, 2, above, TickSides{Upper: true, Left: true}},
		{XAxis, 2, below, TickSides{Upper: true, Left: true}},
		{XAxis, 3, above, TickSides{Lower: true, Left: true}},
		{XAxis, 3, below, TickSides{Lower: true, Left: true}},
		{YAxis, 0, above, TickSides{Left: true}},
		{YAxis, 0, below, TickSides{}},
		{YAxis, 1, above, TickSides{}},
		{YAxis, 1, below, TickSides{Right: true}},
		{YAxis, 2, above, TickSides{Right: true}},
		{YAxis, 2, below, TickSides{}},
		{YAxis, 3, above, TickSides{}},
		{YAxis, 3, below, TickSides{Left: true}},
		{ZAxis, 0, above, TickSides{}},
		{ZAxis, 0, below, TickSides{Upper: true}},
		{ZAxis, 1, above, TickSides{Upper: true}},
		{ZAxis, 1, below, TickSides{}},
		{ZAxis, 2, above, TickSides{}},
		{ZAxis, 2, below, TickSides{Lower: true}},
		{ZAxis, 3, above, TickSides{Lower: true}},
		{ZAxis, 3, below, TickSides{}},
	}

	for _, c := range cases {
		start := float64(c.quadrant) * 90
		azimuths := []float64{start, start + 45, start + 89.999, start + 360, start - 360}
		elevations := []float64{0, 30, 89.9}
		if c.below {
			elevations = []float64{-1e-9, -30, -89.9}
		}
		for _, az := range azimuths {
			for _, el := range elevations {
				assert.Equal(t, c.want, SidesFor(c.axis, az, el), "%v plane at az %v el %v", c.axis, az, el)
			}
		}
	}
}

func TestSidesForFloorPlane(t *testing.T) {
	assert.Equal(t, TickSides{Lower: true, Right: true}, SidesFor(XAxis, 10, 30))
	assert.Equal(t, TickSides{Upper: true, Right: true}, SidesFor(XAxis, 100, 30))
	assert.Equal(t, TickSides{Upper: true, Left: true}, SidesFor(XAxis, 200, 30))
	assert.Equal(t, TickSides{Lower: true, Left: true}, SidesFor(XAxis, 300, 30))

	for q := 0; q < 4; q++ {
		az := float64(q)*90 + 45
		assert.Equal(t, SidesFor(XAxis, az, 30), SidesFor(XAxis, az, -30), "floor ticks do not depend on elevation")
		assert.Equal(t, 2, countSides(SidesFor(XAxis, az, 30)))
	}
}

func TestSidesForWallsShowOneVerticalAxis(t *testing.T) {
	for _, el := range []float64{30, -30} {
		for q := 0; q < 4; q++ {
			az := float64(q)*90 + 45
			y := countSides(SidesFor(YAxis, az, el))
			z := countSides(SidesFor(ZAxis, az, el))
			assert.Equal(t, 1, y+z, "az %v el %v", az, el)
		}
	}
	assert.Equal(t, TickSides{Left: true}, SidesFor(YAxis, 10, 30))
	assert.Equal(t, TickSides{Upper: true}, SidesFor(ZAxis, 100, 30))
	assert.Equal(t, TickSides{Right: true}, SidesFor(YAxis, 100, -30))
	assert.Equal(t, TickSides{Lower: true}, SidesFor(ZAxis, 200, -30))
	assert.Equal(t, TickSides{}, SidesFor(YAxis, 10, -30))
}

func TestSidesForZeroElevationCountsAsAbove(t *testing.T) {
	assert.Equal(t, SidesFor(YAxis, 10, 1), SidesFor(YAxis, 10, 0))
	assert.Equal(t, SidesFor(ZAxis, 100, 1), SidesFor(ZAxis, 100, 0))
}

func TestFarFaces(t *testing.T) {
	box := geometry.NewRange(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1))

	far := FarFaces(box, geometry.NewVector3(0.5, 0.5, 10))
	assert.Equal(t, [3]bool{false, false, false}, far)

	far = FarFaces(box, geometry.NewVector3(-5, 3, -10))
	assert.Equal(t, [3]bool{true, false, true}, far)
}
