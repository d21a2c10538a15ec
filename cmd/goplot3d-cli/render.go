package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/philipparndt/goplot3d/internal/session"
	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/raster"
	"github.com/spf13/cobra"
)

var (
	renderFlags  session.Flags
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render [file...]",
	Short: "Render a plot to a PNG image",
	Long:  "Rasterize one frame of the plot of the given point files, or of a demo, into a PNG file.",
	RunE:  runRender,
}

func init() {
	renderFlags.Register(renderCmd.Flags(), false)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "plot.png", "output PNG file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	renderFlags.InstallLogger()
	opts, err := renderFlags.Options(cmd.Flags(), args)
	if err != nil {
		return err
	}
	s, err := session.New(opts)
	if err != nil {
		return err
	}

	img := raster.New().Render(s.Scene().Frame(draw.NewBasicMeasurer()))

	file, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s (%dx%d, %d curve(s)) to %s\n",
		s.Title(), img.Bounds().Dx(), img.Bounds().Dy(), len(s.Curves()), renderOutput)
	return nil
}
