package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata set at build time via ldflags. Anything left empty is
// filled in from the information the Go toolchain embeds in the binary.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildMetadata resolves the version, commit hash, and build date in one
// pass over debug.ReadBuildInfo, with ldflags values taking precedence.
func buildMetadata() (v, c, d string) {
	v, c, d = version, commit, date

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "" {
			v = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if c == "" {
					c = shortHash(setting.Value)
				}
			case "vcs.time":
				if d == "" {
					d = setting.Value
				}
			}
		}
	}

	if v == "" {
		v = "(devel)"
	}
	if c == "" {
		c = "unknown"
	}
	if d == "" {
		d = "unknown"
	}
	return v, c, d
}

// shortHash abbreviates a VCS revision to the conventional seven
// characters.
func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// getVersion returns the version string alone, for the root command and
// the run log banner.
func getVersion() string {
	v, _, _ := buildMetadata()
	return v
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of stereoprep.`,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := buildMetadata()
			fmt.Fprintf(cmd.OutOrStdout(), "stereoprep %s (commit %s, built %s)\n", v, c, d)
		},
	}
}
