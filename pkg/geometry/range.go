package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateGeometry reports a zero or non-finite extent that was replaced by a fallback.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Range is an axis-aligned bounding box that only grows as points are merged.
// The zero value is not empty; use EmptyRange.
type Range struct {
	Min Vector3
	Max Vector3
}

// EmptyRange returns the sentinel range that contains nothing
func EmptyRange() Range {
	inf := math.Inf(1)
	return Range{
		Min: Vector3{X: inf, Y: inf, Z: inf},
		Max: Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// NewRange creates a range spanning two corners in any order
func NewRange(a, b Vector3) Range {
	r := EmptyRange()
	r.ExpandToInclude(a)
	r.ExpandToInclude(b)
	return r
}

// ExpandToInclude grows the range so that it contains point.
// NaN coordinates are ignored.
func (r *Range) ExpandToInclude(point Vector3) {
	for dim := 0; dim < 3; dim++ {
		c := point.Component(dim)
		if math.IsNaN(c) {
			continue
		}
		if c < r.Min.Component(dim) {
			r.Min = r.Min.WithComponent(dim, c)
		}
		if c > r.Max.Component(dim) {
			r.Max = r.Max.WithComponent(dim, c)
		}
	}
}

// Merge grows the range so that it contains other
func (r *Range) Merge(other Range) {
	if other.IsEmpty() {
		return
	}
	r.ExpandToInclude(other.Min)
	r.ExpandToInclude(other.Max)
}

// IsEmpty reports whether no point has been merged into one of the dimensions
func (r Range) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y || r.Min.Z > r.Max.Z
}

// Contains reports whether point lies inside the range, boundary included
func (r Range) Contains(point Vector3) bool {
	return point.X >= r.Min.X && point.X <= r.Max.X &&
		point.Y >= r.Min.Y && point.Y <= r.Max.Y &&
		point.Z >= r.Min.Z && point.Z <= r.Max.Z
}

// Center returns the center point of the range
func (r Range) Center() Vector3 {
	return Vector3{
		X: (r.Min.X + r.Max.X) / 2.0,
		Y: (r.Min.Y + r.Max.Y) / 2.0,
		Z: (r.Min.Z + r.Max.Z) / 2.0,
	}
}

// Extent returns the dimensions of the range
func (r Range) Extent() Vector3 {
	return r.Max.Sub(r.Min)
}

// Sanitized returns a copy where every dimension with a zero or non-finite extent
// is replaced by the interval [v-1, v+1]. v is the finite bound of that dimension,
// or 0 when neither bound is finite. The second result flags the replaced dimensions.
func (r Range) Sanitized() (Range, [3]bool) {
	var replaced [3]bool
	out := r
	for dim := 0; dim < 3; dim++ {
		lo, hi := r.Min.Component(dim), r.Max.Component(dim)
		lo, hi, ok := FallbackInterval(lo, hi)
		if ok {
			continue
		}
		replaced[dim] = true
		out.Min = out.Min.WithComponent(dim, lo)
		out.Max = out.Max.WithComponent(dim, hi)
	}
	return out, replaced
}

// FallbackInterval returns lo and hi unchanged with ok=true when hi-lo is positive and
// finite. Otherwise it returns the two-unit interval around the finite value. Finite
// bounds whose distance overflows have no finite-width cover, so they also fall back
// around lo; ticks.Plan handles that case separately.
func FallbackInterval(lo, hi float64) (float64, float64, bool) {
	d := hi - lo
	if d > 0 && !math.IsInf(d, 0) && !math.IsNaN(d) {
		return lo, hi, true
	}
	v := 0.0
	switch {
	case isFinite(lo):
		v = lo
	case isFinite(hi):
		v = hi
	}
	return v - 1, v + 1, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
