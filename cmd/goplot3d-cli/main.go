package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplot3d/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goplot3d-cli",
	Short: "Inspect and render 3D line plots without a window",
	Long: `goplot3d-cli reports on point files, plans axis ticks and renders plots
to PNG images with the built-in software rasterizer.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
