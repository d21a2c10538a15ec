package main

import (
	"fmt"

	"github.com/philipparndt/goplot3d/pkg/analysis"
	"github.com/philipparndt/goplot3d/pkg/dataset"
	"github.com/spf13/cobra"
)

var infoTickTarget int

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a point file",
	Long:  "Show per-series point counts, path lengths and ranges, the merged range and the axis ticks.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().IntVar(&infoTickTarget, "target", 5, "number of tick intervals aimed for")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	curves, err := dataset.Parse(filename)
	if err != nil {
		return fmt.Errorf("error parsing point file: %w", err)
	}
	result := analysis.Analyze(curves, infoTickTarget)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Point File Information")
	fmt.Fprintln(out, "======================")
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Series: %d\n", len(result.Series))
	fmt.Fprintf(out, "Points: %d\n\n", result.TotalPoints())

	for _, s := range result.Series {
		fmt.Fprintf(out, "Series %q:\n", s.Name)
		fmt.Fprintf(out, "  Points: %d\n", s.PointCount)
		if s.PointCount == 0 {
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(s.Range.Min))
		fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(s.Range.Max))
		fmt.Fprintf(out, "  Path Length: %.6f units\n", s.PathLength)
		if s.PointCount > 1 {
			fmt.Fprintf(out, "  Segments: min %.6f, max %.6f, avg %.6f\n", s.MinSegmentLength, s.MaxSegmentLength, s.AvgSegmentLength)
		}
		fmt.Fprintln(out)
	}

	if result.Range.IsEmpty() {
		fmt.Fprintln(out, "Range: empty")
		return nil
	}
	fmt.Fprintln(out, "Range:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.Range.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.Range.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.Range.Center()))

	fmt.Fprintln(out, "Ticks:")
	for i, name := range []string{"x", "y", "z"} {
		fmt.Fprintf(out, "  %s: %s\n", name, analysis.FormatTicks(result.Ticks[i]))
	}
	return nil
}
