package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoHistoryDir is returned when run recording is enabled but no
	// history directory is configured.
	ErrNoHistoryDir = errors.New("no history directory: set one or disable run recording")

	// ErrInvalidHistoryLimit is returned when the history listing limit
	// is not positive.
	ErrInvalidHistoryLimit = errors.New("invalid history limit: must be positive")

	// ErrConfigNotFound is returned when the configuration file does not
	// exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
