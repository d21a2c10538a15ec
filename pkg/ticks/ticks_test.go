package ticks

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

func assertTicks(t *testing.T, name string, got Set, expected []float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s failed: expected %v, got %v", name, expected, got)
	}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-9 {
			t.Errorf("%s failed at %d: expected %v, got %v", name, i, expected[i], got[i])
		}
	}
}

func assertWellFormed(t *testing.T, set Set, min, max float64) {
	t.Helper()
	if !set.Valid() {
		t.Fatalf("expected at least two ticks for [%v, %v], got %v", min, max, set)
	}
	if set.First() > min {
		t.Errorf("first tick %v above min %v", set.First(), min)
	}
	if set.Last() < max {
		t.Errorf("last tick %v below max %v", set.Last(), max)
	}
	step := set.Step()
	for i := 1; i < len(set); i++ {
		d := set[i] - set[i-1]
		if d <= 0 {
			t.Fatalf("ticks not strictly increasing: %v", set)
		}
		if math.Abs(d-step) > 1e-9*math.Max(1, math.Abs(step)) {
			t.Errorf("ticks not uniform: %v", set)
		}
	}
}

func TestComputeZeroToHundred(t *testing.T) {
	set := Compute(0, 100, 5)
	assertTicks(t, "Compute(0,100)", set, []float64{0, 20, 40, 60, 80, 100})
}

func TestComputeRoundsToNiceStep(t *testing.T) {
	set := Compute(0, 97, 5)
	assertTicks(t, "Compute(0,97)", set, []float64{0, 20, 40, 60, 80, 100})
}

func TestComputeDegenerate(t *testing.T) {
	set, err := Plan(3, 3, 5)
	assertTicks(t, "Plan(3,3)", set, []float64{2, 4})
	if !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestComputeEmptyRangeSentinel(t *testing.T) {
	set := Compute(math.Inf(1), math.Inf(-1), 5)
	assertTicks(t, "Compute(+inf,-inf)", set, []float64{-1, 1})
	for _, v := range set {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("non-finite tick in fallback: %v", set)
		}
	}
}

func TestComputeNaN(t *testing.T) {
	set := Compute(math.NaN(), 1, 5)
	assertTicks(t, "Compute(NaN,1)", set, []float64{0, 2})
}

func TestComputeOverflowingWidth(t *testing.T) {
	for _, c := range [][2]float64{{-1e308, 1e308}, {-1.7e308, 1.7e308}, {-math.MaxFloat64, math.MaxFloat64}} {
		set, err := Plan(c[0], c[1], 5)
		if err != nil {
			t.Errorf("Plan(%v, %v) failed: %v", c[0], c[1], err)
		}
		if !set.Valid() || set.First() > c[0] || set.Last() < c[1] {
			t.Errorf("ticks %v do not cover [%v, %v]", set, c[0], c[1])
		}
		for i, v := range set {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				t.Errorf("non-finite tick in %v", set)
			}
			if i > 0 && !(v > set[i-1]) {
				t.Errorf("ticks not strictly increasing: %v", set)
			}
		}
	}
}

func TestComputeUnderflowingStep(t *testing.T) {
	tiny := math.SmallestNonzeroFloat64
	set, err := Plan(0, tiny, 5)
	assertTicks(t, "Plan(0,tiny)", set, []float64{0, tiny})
	if set.Last() != tiny {
		t.Errorf("fallback should keep the interval bounds, got %v", set)
	}
	if !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestComputeWellFormed(t *testing.T) {
	cases := [][2]float64{
		{0, 1}, {-5, 5}, {0.001, 0.0013}, {-10000, -9000}, {1e6, 3.7e6},
		{-0.7, 12.3}, {4.5, 4.6}, {-100, 900}, {0, 9},
	}
	for _, c := range cases {
		for _, target := range []int{3, 5, 10} {
			assertWellFormed(t, Compute(c[0], c[1], target), c[0], c[1])
		}
	}
}

func TestComputeSwapsInvertedInterval(t *testing.T) {
	set := Compute(100, 0, 5)
	assertTicks(t, "Compute(100,0)", set, []float64{0, 20, 40, 60, 80, 100})
}

func TestComputeDefaultTarget(t *testing.T) {
	assertTicks(t, "Compute(0,100,0)", Compute(0, 100, 0), []float64{0, 20, 40, 60, 80, 100})
}

func TestFormat(t *testing.T) {
	cases := []struct {
		value, step float64
		expected    string
	}{
		{20, 20, "20"},
		{0.30000000000000004, 0.1, "0.3"},
		{1.5, 1.5, "1.5"},
		{-0.25, 0.25, "-0.25"},
		{1e-17, 0.5, "0.0"},
		{-10000, 500, "-10000"},
	}
	for _, c := range cases {
		if got := Format(c.value, c.step); got != c.expected {
			t.Errorf("Format(%v, %v) failed: expected %q, got %q", c.value, c.step, c.expected, got)
		}
	}
}
