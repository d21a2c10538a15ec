// Package analysis summarizes curves for reports.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/series"
	"github.com/philipparndt/goplot3d/pkg/ticks"
)

// Segment is one straight piece of a curve
type Segment struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Series string
	Index  int
}

// SeriesResult contains the measurements of one curve
type SeriesResult struct {
	Name             string
	PointCount       int
	Range            geometry.Range
	PathLength       float64
	MinSegmentLength float64
	MaxSegmentLength float64
	AvgSegmentLength float64
}

// Result contains the measurements of all curves of a plot
type Result struct {
	Series   []SeriesResult
	Range    geometry.Range
	Ticks    [3]ticks.Set
	Segments []Segment
}

// Analyze measures every curve and plans the axis ticks for their merged range
func Analyze(curves []*series.Series, tickTarget int) *Result {
	result := &Result{
		Range:    geometry.EmptyRange(),
		Segments: make([]Segment, 0),
	}

	for _, c := range curves {
		sr := SeriesResult{
			Name:       c.Name(),
			PointCount: c.Len(),
			Range:      c.Range(),
		}
		result.Range.Merge(c.Range())

		points := c.Points()
		minLength := math.MaxFloat64
		maxLength := 0.0
		for i := 1; i < len(points); i++ {
			length := points[i-1].Distance(points[i])
			result.Segments = append(result.Segments, Segment{
				Start:  points[i-1],
				End:    points[i],
				Length: length,
				Series: c.Name(),
				Index:  i - 1,
			})

			sr.PathLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
		if len(points) > 1 {
			sr.MinSegmentLength = minLength
			sr.MaxSegmentLength = maxLength
			sr.AvgSegmentLength = sr.PathLength / float64(len(points)-1)
		}
		result.Series = append(result.Series, sr)
	}

	for dim := 0; dim < 3; dim++ {
		result.Ticks[dim] = ticks.Compute(result.Range.Min.Component(dim), result.Range.Max.Component(dim), tickTarget)
	}
	return result
}

// TotalPoints returns the number of points over all curves
func (r *Result) TotalPoints() int {
	n := 0
	for _, s := range r.Series {
		n += s.PointCount
	}
	return n
}

// FindLongestSegments returns the N longest segments over all curves
func FindLongestSegments(result *Result, count int) []Segment {
	segments := make([]Segment, len(result.Segments))
	copy(segments, result.Segments)

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Length > segments[j].Length
	})

	if count > len(segments) {
		count = len(segments)
	}
	return segments[:count]
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatTicks formats a tick set with the decimals its step needs
func FormatTicks(set ticks.Set) string {
	out := ""
	step := set.Step()
	for i, v := range set {
		if i > 0 {
			out += " "
		}
		out += ticks.Format(v, step)
	}
	return out
}
