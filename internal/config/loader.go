package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".stereoprep"

// File holds project-level defaults loaded from a .stereoprep file.
// Everything in it is optional; flags always win over file values.
type File struct {
	// Markdown makes Markdown the default report format.
	Markdown bool `yaml:"markdown"`

	// RecordHistory overrides the history recording default when set.
	RecordHistory *bool `yaml:"record_history"`

	// HistoryDir overrides the history database directory.
	HistoryDir string `yaml:"history_dir"`

	// Env lists environment variables to inject before the pipeline
	// tools run, for example ISISROOT or GDAL_DATA.
	Env map[string]string `yaml:"env"`
}

// LoadConfigFile loads project defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this error based on whether the path was explicitly
// specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Env == nil {
		cf.Env = make(map[string]string)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .stereoprep in the current directory
// 3. Look for .stereoprep in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply folds file values into the config. Flag handling happens after
// this, so explicit flags override anything set here.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Markdown {
		c.MarkdownReport = true
	}
	if f.RecordHistory != nil {
		c.RecordHistory = *f.RecordHistory
	}
	if f.HistoryDir != "" {
		c.HistoryDir = f.HistoryDir
	}
	if len(f.Env) > 0 {
		if c.Env == nil {
			c.Env = make(map[string]string, len(f.Env))
		}
		for k, v := range f.Env {
			c.Env[k] = v
		}
	}
}
