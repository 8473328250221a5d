// Package main provides the entry point for the stereoprep CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for stereoprep.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stereoprep",
		Short: "Validate stereo correlation invocations before running the pipeline",
		Long: `stereoprep validates the positional arguments of a stereo correlation
invocation before the heavy pipeline tools run.

It disambiguates input images from camera model files, detects an
optional trailing terrain model, validates the output prefix, and
verifies that every input exists on disk. Validated runs are recorded
so past invocations can be listed and replayed.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
