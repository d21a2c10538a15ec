// Package ticks computes evenly spaced "nice" graduation values for an axis.
package ticks

import (
	"fmt"
	"math"
	"strconv"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// DefaultTarget is the number of intervals aimed for when none is given
const DefaultTarget = 5

// Set is an ascending, uniformly spaced sequence of tick values
type Set []float64

// First returns the lowest tick
func (s Set) First() float64 { return s[0] }

// Last returns the highest tick
func (s Set) Last() float64 { return s[len(s)-1] }

// Step returns the spacing between consecutive ticks, or 0 for fewer than two ticks
func (s Set) Step() float64 {
	if len(s) < 2 {
		return 0
	}
	return s[1] - s[0]
}

// Valid reports whether the set can be drawn
func (s Set) Valid() bool {
	return len(s) >= 2
}

// Compute returns ticks covering [min, max]. A degenerate interval yields the two
// ticks of its fallback interval. For finite bounds whose distance overflows, the
// outermost ticks are clamped to the largest finite values, so only those two
// steps can be shorter than the rest.
func Compute(min, max float64, target int) Set {
	set, _ := Plan(min, max, target)
	return set
}

// Plan is Compute that also reports, through an error wrapping
// geometry.ErrDegenerateGeometry, when the fallback interval was used.
func Plan(min, max float64, target int) (Set, error) {
	if target <= 0 {
		target = DefaultTarget
	}
	if min > max && !math.IsInf(min, 1) {
		min, max = max, min
	}

	lo, hi, ok := geometry.FallbackInterval(min, max)
	if !ok && !wide(min, max) {
		return Set{lo, hi}, fmt.Errorf("%w: tick interval [%g, %g]", geometry.ErrDegenerateGeometry, min, max)
	}
	t := float64(target)
	raw := (hi - lo) / t
	if !ok {
		// finite bounds whose width overflows
		lo, hi = min, max
		raw = hi/t - lo/t
	}

	step := niceStep(raw, t)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return Set{lo, hi}, fmt.Errorf("%w: tick step for [%g, %g]", geometry.ErrDegenerateGeometry, min, max)
	}

	first := math.Floor(lo / step)
	last := math.Ceil(hi / step)
	if last <= first {
		last = first + 1
	}

	n := int(last-first) + 1
	set := make(Set, n)
	for i := 0; i < n; i++ {
		// the outermost ticks of a huge interval may exceed the float range
		set[i] = clamp((first + float64(i)) * step)
	}
	return set, nil
}

// wide reports whether lo and hi are finite with lo < hi. FallbackInterval
// rejects such bounds only when hi-lo overflows.
func wide(lo, hi float64) bool {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return false
	}
	return lo < hi
}

func clamp(v float64) float64 {
	return math.Max(-math.MaxFloat64, math.Min(math.MaxFloat64, v))
}

// niceStep snaps rawStep to a multiple of half its decade
func niceStep(rawStep, target float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(rawStep)))
	normalized := rawStep / magnitude

	var step float64
	if normalized < target {
		step = math.Round(normalized*2) / 2 * magnitude
	} else {
		step = math.Floor(normalized*0.5) / 2 * magnitude
	}
	if step <= 0 {
		return magnitude
	}
	return step
}

// Format renders a tick value with just enough decimals for the given step
func Format(value, step float64) string {
	decimals := 0
	if step > 0 {
		if d := int(math.Ceil(-math.Log10(step) - 1e-9)); d > 0 {
			decimals = d
		}
		for decimals < 12 {
			scaled := step * math.Pow(10, float64(decimals))
			if math.Abs(scaled-math.Round(scaled)) <= 1e-9*math.Max(1, scaled) {
				break
			}
			decimals++
		}
	}
	if math.Abs(value) < step*1e-9 {
		value = 0
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}
