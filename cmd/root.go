package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplot3d/internal/app"
	"github.com/philipparndt/goplot3d/internal/session"
	"github.com/philipparndt/goplot3d/version"
	"github.com/spf13/cobra"
)

var viewFlags session.Flags

var rootCmd = &cobra.Command{
	Use:   "goplot3d [file...]",
	Short: "Interactive 3D line plot viewer",
	Long: `goplot3d shows 3D polylines from point files in an orbiting view with
automatically placed axis planes, ticks and a legend.`,
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		viewFlags.InstallLogger()
		opts, err := viewFlags.Options(cmd.Flags(), args)
		if err != nil {
			return err
		}
		return app.Run(opts)
	},
}

func init() {
	viewFlags.Register(rootCmd.Flags(), true)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
