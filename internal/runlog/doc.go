// Package runlog creates the per-run log file written next to the output
// prefix. The file records the tool version, the exact command line, and
// best-effort host information, and can serve as an slog sink so console
// messages are copied into it.
//
// Log files are named <prefix>-log-<tool>-<MM-DD-HHMM>-<pid>.txt so that
// repeated runs against the same prefix never overwrite each other.
package runlog
