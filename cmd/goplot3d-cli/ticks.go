package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/philipparndt/goplot3d/pkg/analysis"
	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/ticks"
	"github.com/spf13/cobra"
)

var ticksTarget int

var ticksCmd = &cobra.Command{
	Use:   "ticks [min] [max]",
	Short: "Plan axis ticks for an interval",
	Args:  cobra.ExactArgs(2),
	RunE:  runTicks,
}

func init() {
	ticksCmd.Flags().IntVar(&ticksTarget, "target", ticks.DefaultTarget, "number of intervals aimed for")
	rootCmd.AddCommand(ticksCmd)
}

func runTicks(cmd *cobra.Command, args []string) error {
	lo, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid min %q: %w", args[0], err)
	}
	hi, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid max %q: %w", args[1], err)
	}

	set, err := ticks.Plan(lo, hi, ticksTarget)
	out := cmd.OutOrStdout()
	if errors.Is(err, geometry.ErrDegenerateGeometry) {
		fmt.Fprintf(out, "Note: %v, using fallback interval\n", err)
	}
	fmt.Fprintf(out, "Ticks: %s\n", analysis.FormatTicks(set))
	fmt.Fprintf(out, "Step: %s\n", ticks.Format(set.Step(), set.Step()))
	fmt.Fprintf(out, "Count: %d\n", len(set))
	return nil
}
