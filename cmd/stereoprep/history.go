package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/config"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously validated invocations",
		Long: `History lists invocations that check has validated and recorded,
newest first. Each entry shows when the run was checked, its output
prefix, and its inputs, so a past invocation can be replayed.`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of runs to list")
	cmd.Flags().String("dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	if dir == "" {
		dir = config.XDGDataDir()
	}

	// Listing never creates a database; an empty history is reported as
	// such rather than materialized on disk. Any other open failure is a
	// real error and must surface.
	db, err := history.Open(dir, history.Options{CreateIfNotExists: false, EnableWAL: true})
	if errors.Is(err, history.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "No run history recorded yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No run history recorded yet.")
		return nil
	}

	for _, run := range runs {
		printRun(cmd, run)
	}
	return nil
}

// printRun writes one history entry.
func printRun(cmd *cobra.Command, run history.Run) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "[%d] %s  %s\n", run.ID, run.Timestamp.Format("2006-01-02 15:04"), run.Prefix)
	fmt.Fprintf(out, "    images:  %s\n", strings.Join(run.Images, " "))
	if len(run.Cameras) > 0 {
		fmt.Fprintf(out, "    cameras: %s\n", strings.Join(run.Cameras, " "))
	}
	if run.DEMPath != "" {
		fmt.Fprintf(out, "    dem:     %s\n", run.DEMPath)
	}
	if run.TargetName != "" {
		fmt.Fprintf(out, "    target:  %s\n", run.TargetName)
	}
}
