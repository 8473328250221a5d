package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "stereoprep"

	// DefaultHistoryLimit is how many past runs the history command
	// lists when no limit is given. Twenty covers a typical working
	// session without scrolling the terminal.
	DefaultHistoryLimit = 20
)

// Config holds all options for a stereoprep invocation check.
// This struct is populated from CLI flags and the optional .stereoprep
// file and passed through the application via dependency injection
// rather than global state.
type Config struct {
	// EqualizeSizes pads the camera list with empty placeholders until
	// it matches the image list in length. Downstream consumers that
	// iterate images and cameras in lockstep rely on this.
	EqualizeSizes bool

	// SkipDEMCheck disables the georeference probe on the final
	// positional argument, forcing it to be treated as part of the
	// ordinary grammar.
	SkipDEMCheck bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When empty the
	// report is written to stdout.
	ReportFile string

	// RecordHistory controls whether validated runs are recorded in the
	// history database.
	RecordHistory bool

	// HistoryDir is the directory holding the run history database.
	// Defaults to the XDG data directory.
	HistoryDir string

	// HistoryLimit is how many past runs the history command lists.
	HistoryLimit int

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .stereoprep in the current directory and
	// then in the user's home directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Env holds environment variables to inject before the pipeline
	// tools run, loaded from the configuration file.
	Env map[string]string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (history recording
// is on by default, and the history directory follows XDG). This also
// serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		RecordHistory: true,
		HistoryDir:    XDGDataDir(),
		HistoryLimit:  DefaultHistoryLimit,
	}
}

// XDGDataDir returns the XDG data directory for stereoprep.
// On Linux: ~/.local/share/stereoprep
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for stereoprep.
// On Linux: ~/.config/stereoprep
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid. It returns the first
// error found: fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.RecordHistory && c.HistoryDir == "" {
		return ErrNoHistoryDir
	}
	if c.HistoryLimit <= 0 {
		return ErrInvalidHistoryLimit
	}
	return nil
}
