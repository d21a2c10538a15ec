package geometry

import (
	"math"
	"math/rand"
	"testing"
)

func TestRangeExpandToInclude(t *testing.T) {
	r := EmptyRange()

	r.ExpandToInclude(NewVector3(1, 2, 3))
	r.ExpandToInclude(NewVector3(4, 5, 6))
	r.ExpandToInclude(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if r.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, r.Min)
	}
	if r.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, r.Max)
	}
}

func TestRangeEmpty(t *testing.T) {
	r := EmptyRange()
	if !r.IsEmpty() {
		t.Errorf("EmptyRange should be empty, got %v", r)
	}
	if !math.IsInf(r.Min.X, 1) || !math.IsInf(r.Max.Z, -1) {
		t.Errorf("EmptyRange sentinel failed: got %v", r)
	}

	r.ExpandToInclude(NewVector3(1, 1, 1))
	if r.IsEmpty() {
		t.Errorf("Range with one point should not be empty")
	}
	if r.Extent() != (Vector3{}) {
		t.Errorf("Single point extent failed: got %v", r.Extent())
	}
}

func TestRangeInvariantHoldsForRandomPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := EmptyRange()
	points := make([]Vector3, 0, 200)

	for i := 0; i < 200; i++ {
		p := NewVector3(rng.NormFloat64()*100, rng.NormFloat64(), rng.Float64()-0.5)
		points = append(points, p)
		r.ExpandToInclude(p)

		if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y || r.Min.Z > r.Max.Z {
			t.Fatalf("min <= max violated after %d points: %v", i+1, r)
		}
	}

	for _, p := range points {
		if !r.Contains(p) {
			t.Errorf("Range %v does not contain %v", r, p)
		}
	}
}

func TestRangeMergeIsCommutativeAndIdempotent(t *testing.T) {
	a := NewRange(NewVector3(0, 0, 0), NewVector3(1, 1, 1))
	b := NewRange(NewVector3(5, -3, 2), NewVector3(6, -2, 9))

	ab := a
	ab.Merge(b)
	ba := b
	ba.Merge(a)

	if ab != ba {
		t.Errorf("Merge not commutative: %v vs %v", ab, ba)
	}

	again := ab
	again.Merge(a)
	again.ExpandToInclude(NewVector3(0.5, 0.5, 0.5))
	if again != ab {
		t.Errorf("Merge not idempotent: %v vs %v", again, ab)
	}

	expected := NewRange(NewVector3(0, -3, 0), NewVector3(6, 1, 9))
	if ab != expected {
		t.Errorf("Merge failed: expected %v, got %v", expected, ab)
	}
}

func TestRangeMergeEmpty(t *testing.T) {
	a := NewRange(NewVector3(0, 0, 0), NewVector3(1, 1, 1))
	merged := a
	merged.Merge(EmptyRange())
	if merged != a {
		t.Errorf("Merging empty range changed %v to %v", a, merged)
	}
}

func TestRangeIgnoresNaN(t *testing.T) {
	r := EmptyRange()
	r.ExpandToInclude(NewVector3(1, math.NaN(), 2))

	if r.Min.X != 1 || r.Max.Z != 2 {
		t.Errorf("finite components not merged: %v", r)
	}
	if !math.IsInf(r.Min.Y, 1) {
		t.Errorf("NaN component should be skipped, got %v", r.Min.Y)
	}
}

func TestRangeCenter(t *testing.T) {
	r := NewRange(NewVector3(0, 0, 0), NewVector3(10, 20, 30))

	expected := NewVector3(5, 10, 15)
	if r.Center() != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, r.Center())
	}
}

func TestRangeSanitized(t *testing.T) {
	r := NewRange(NewVector3(0, 3, 0), NewVector3(10, 3, 5))
	clean, replaced := r.Sanitized()

	if replaced != [3]bool{false, true, false} {
		t.Errorf("replaced flags failed: got %v", replaced)
	}
	if clean.Min.Y != 2 || clean.Max.Y != 4 {
		t.Errorf("fallback interval failed: got [%v, %v]", clean.Min.Y, clean.Max.Y)
	}
	if clean.Min.X != 0 || clean.Max.X != 10 {
		t.Errorf("healthy dimension changed: got [%v, %v]", clean.Min.X, clean.Max.X)
	}

	empty, replaced := EmptyRange().Sanitized()
	if replaced != [3]bool{true, true, true} {
		t.Errorf("empty range flags failed: got %v", replaced)
	}
	expected := NewRange(NewVector3(-1, -1, -1), NewVector3(1, 1, 1))
	if empty != expected {
		t.Errorf("empty range fallback failed: expected %v, got %v", expected, empty)
	}
}

func TestFallbackInterval(t *testing.T) {
	if lo, hi, ok := FallbackInterval(-2, 5); !ok || lo != -2 || hi != 5 {
		t.Errorf("healthy interval failed: got [%v, %v] ok=%v", lo, hi, ok)
	}
	if lo, hi, ok := FallbackInterval(7, 7); ok || lo != 6 || hi != 8 {
		t.Errorf("flat interval failed: got [%v, %v] ok=%v", lo, hi, ok)
	}
	// the unit offsets vanish at this magnitude
	if lo, hi, ok := FallbackInterval(-1e308, 1e308); ok || lo != -1e308 || hi != -1e308 {
		t.Errorf("overflowing interval failed: got [%v, %v] ok=%v", lo, hi, ok)
	}
}
