package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/config"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/georef"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/history"
	applog "github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/log"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/pathtype"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/report"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/runlog"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/stereo"
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/vecmath"
	"github.com/spf13/cobra"
)

// checkFlags holds the structured option values parsed by the check
// command. They are validated at flag-parse time so a malformed value
// fails before any input is touched.
type checkFlags struct {
	corrSearch   vecmath.BBox2i
	imageCropWin vecmath.BBox2i
	searchOffset vecmath.Vector2i
	lonLatCrop   vecmath.BBox2
	roi          vecmath.BBox3
}

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <images> [<cameras>] <output-prefix> [<dem>]",
		Short: "Validate the positional arguments of a stereo invocation",
		Long: `Check parses and validates the positional arguments of a stereo
correlation invocation.

The accepted grammar is:

  <image> ... <image> [<camera> ... <camera>] <output-prefix> [<dem>]

The last argument is probed as a georeferenced raster to detect an
optional terrain model. The output prefix must not look like an image
or a camera file, and every input must exist on disk.

Examples:
  # Two ISIS cubes with embedded cameras
  stereoprep check left.cub right.cub out/run

  # Images with explicit camera models and an input DEM
  stereoprep check left.tif right.tif left.tsai right.tsai out/run dem.tif

  # Pass a correlation search window as a structured value
  stereoprep check --corr-search "-80 -2 20 2" left.cub right.cub out/run`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd, args, flags)
		},
	}

	// Behavior flags
	cmd.Flags().BoolP("equalize", "E", false,
		"Pad the camera list with empty entries to match the image count")
	cmd.Flags().Bool("no-dem", false,
		"Do not probe the last argument for a terrain model")
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .stereoprep in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Structured option values shared with the pipeline tools. These are
	// validated here so a typo fails fast instead of hours into a run.
	cmd.Flags().Var(&flags.corrSearch, "corr-search",
		"Correlation search window as \"min_x min_y max_x max_y\"")
	cmd.Flags().Var(&flags.imageCropWin, "image-crop-win",
		"Image crop window as \"x y width height\"")
	cmd.Flags().Var(&flags.searchOffset, "search-offset",
		"Disparity search offset as \"x y\"")
	cmd.Flags().Var(&flags.lonLatCrop, "lon-lat-crop",
		"Longitude-latitude crop window as \"min_lon min_lat max_lon max_lat\"")
	cmd.Flags().Var(&flags.roi, "roi",
		"Region of interest as \"min_x min_y min_z max_x max_y max_z\"")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string, flags *checkFlags) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	jsonReport, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if jsonReport && cfg.MarkdownReport {
		return fmt.Errorf("--json and --markdown are mutually exclusive")
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Environment injection happens before anything touches the inputs
	// because path resolution for ISIS cubes can depend on it.
	if err := config.ApplyEnv(cfg.Env); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}

	return runCheck(cmd, args, cfg, flags, jsonReport, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. File values apply first so explicit flags win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.EqualizeSizes, err = cmd.Flags().GetBool("equalize")
	if err != nil {
		return nil, err
	}

	cfg.SkipDEMCheck, err = cmd.Flags().GetBool("no-dem")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	if noHistory {
		cfg.RecordHistory = false
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if markdown {
		cfg.MarkdownReport = true
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// noopProber never detects a terrain model. It implements the probe
// interface for runs where the trailing DEM check is disabled.
type noopProber struct{}

func (noopProber) Probe(string) bool { return false }

// warningCollector records warning lines while passing them through.
type warningCollector struct {
	lines []string
}

// Write satisfies io.Writer, splitting the input into trimmed lines.
func (c *warningCollector) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			c.lines = append(c.lines, line)
		}
	}
	return len(p), nil
}

// runCheck executes the validation.
func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags, jsonReport bool, logger *slog.Logger) error {
	var prober stereo.GeoProber = georef.NewProber()
	if cfg.SkipDEMCheck {
		prober = noopProber{}
	}

	warnings := &warningCollector{}
	parser := stereo.NewParser(prober,
		stereo.WithWarningWriter(io.MultiWriter(cmd.ErrOrStderr(), warnings)))

	inv, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cfg.EqualizeSizes {
		for len(inv.Cameras) < len(inv.Images) {
			inv.Cameras = append(inv.Cameras, "")
		}
	}

	logger.Debug("invocation validated",
		"images", len(inv.Images),
		"cameras", len(inv.Cameras),
		"prefix", inv.Prefix,
		"dem", inv.DEMPath,
	)
	logStructuredValues(logger, cmd, flags)

	// The run log lives next to the output prefix and doubles as a
	// second slog sink so console messages are preserved with the run.
	logFile, err := setupRunLog(cfg, inv, logger)
	if err != nil {
		return err
	}

	targetName := readTarget(inv)

	summary := &report.Summary{
		Tool:       runlog.ProgName(os.Args[0]),
		Date:       time.Now(),
		Invocation: *inv,
		TargetName: targetName,
		Warnings:   warnings.lines,
		LogFile:    logFile,
	}

	if cfg.RecordHistory {
		if err := saveRun(context.Background(), cfg, summary); err != nil {
			// History is a convenience; a failed save never fails the check.
			slog.Warn("failed to record run history", "error", err)
		}
	}

	return outputReport(cmd, cfg, jsonReport, summary)
}

// logStructuredValues logs the structured option values that were set.
func logStructuredValues(logger *slog.Logger, cmd *cobra.Command, flags *checkFlags) {
	if cmd.Flags().Changed("corr-search") {
		logger.Debug("correlation search window", "value", flags.corrSearch.String())
	}
	if cmd.Flags().Changed("image-crop-win") {
		logger.Debug("image crop window", "value", flags.imageCropWin.String())
	}
	if cmd.Flags().Changed("search-offset") {
		logger.Debug("search offset", "value", flags.searchOffset.String())
	}
	if cmd.Flags().Changed("lon-lat-crop") {
		logger.Debug("lon-lat crop window", "value", flags.lonLatCrop.String())
	}
	if cmd.Flags().Changed("roi") {
		logger.Debug("region of interest", "value", flags.roi.String())
	}
}

// setupRunLog creates the per-run log file and tees subsequent slog
// output into it. Returns the log file path.
func setupRunLog(cfg *config.Config, inv *stereo.Invocation, logger *slog.Logger) (string, error) {
	w, err := runlog.Create(inv.Prefix, getVersion(), os.Args)
	if err != nil {
		return "", err
	}
	w.AppendHostInfo()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	tee := applog.NewTeeHandler(logger.Handler(), w.Handler(level))
	slog.SetDefault(slog.New(tee))

	// The file stays open for the life of the process; the OS closes it
	// on exit along with everything else.
	return w.Path(), nil
}

// readTarget reads the target body name from the first ISIS cube input.
// Returns empty when no input is a cube.
func readTarget(inv *stereo.Invocation) string {
	for _, img := range inv.Images {
		if strings.EqualFold(pathtype.Ext(img), "cub") {
			return stereo.ReadTargetName(img)
		}
	}
	return ""
}

// saveRun records the validated run in the history database.
func saveRun(ctx context.Context, cfg *config.Config, summary *report.Summary) error {
	db, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.SaveRun(ctx, &history.Run{
		Tool:       summary.Tool,
		Images:     summary.Invocation.Images,
		Cameras:    summary.Invocation.Cameras,
		Prefix:     summary.Invocation.Prefix,
		DEMPath:    summary.Invocation.DEMPath,
		TargetName: summary.TargetName,
	})
	return err
}

// outputReport outputs the check summary in the requested format.
func outputReport(cmd *cobra.Command, cfg *config.Config, jsonReport bool, summary *report.Summary) error {
	var output io.Writer = cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer report.Writer
	switch {
	case jsonReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(summary)
	return err
}
