// Package log provides slog handler utilities for stereoprep.
// Its TeeHandler duplicates console log records into a per-run log file
// so that the file records everything the user saw.
package log
