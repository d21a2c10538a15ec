package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplot3d/pkg/dataset"
	"github.com/spf13/cobra"
)

var demoOutput string

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Write a built-in dataset as a point file",
	Long:  fmt.Sprintf("Write one of the built-in datasets %v in point file format.", dataset.DemoNames()),
	Args:  cobra.ExactArgs(1),
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	demo, err := dataset.LoadDemo(args[0])
	if err != nil {
		return err
	}
	if demoOutput == "" {
		return dataset.Write(cmd.OutOrStdout(), demo.Curves)
	}

	file, err := os.Create(demoOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	return dataset.Write(file, demo.Curves)
}
