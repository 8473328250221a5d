package runlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ProgName returns the program name from an argv[0] value: the basename
// with its extension removed and a leading libtool "lt-" prefix dropped.
func ProgName(arg0 string) string {
	name := filepath.Base(arg0)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimPrefix(name, "lt-")
}

// Timestamp formats t for use in a log file name: month-day-hourminute.
// The year is deliberately omitted to keep the names short; the pid
// suffix disambiguates collisions.
func Timestamp(t time.Time) string {
	return t.Format("01-02-1504")
}

// FilePath builds the log file path for a run.
func FilePath(prefix, progName string, t time.Time, pid int) string {
	return fmt.Sprintf("%s-log-%s-%s-%d.txt", prefix, progName, Timestamp(t), pid)
}

// Writer owns one open run log file.
type Writer struct {
	// file is the open log file.
	file *os.File

	// path is the log file location, reported to the user.
	path string
}

// Create opens a new run log next to the output prefix, creating the
// prefix directory if needed, and writes the version banner and the
// quoted command line.
func Create(prefix, version string, args []string) (*Writer, error) {
	if prefix == "" {
		return nil, fmt.Errorf("output prefix was not set")
	}

	if dir := filepath.Dir(prefix); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	prog := "unknown"
	if len(args) > 0 {
		prog = ProgName(args[0])
	}
	path := FilePath(prefix, prog, time.Now(), os.Getpid())

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Path derives from the validated prefix
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	w := &Writer{file: f, path: path}
	if err := w.writeBanner(version, args); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// writeBanner records the version and the command line that started the
// run, quoting tokens containing whitespace so the line can be replayed.
func (w *Writer) writeBanner(version string, args []string) error {
	if _, err := fmt.Fprintf(w.file, "stereoprep %s\n\n", version); err != nil {
		return fmt.Errorf("failed to write log banner: %w", err)
	}

	tokens := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == " " {
			continue
		}
		if strings.ContainsAny(arg, " \t") {
			arg = `"` + arg + `"`
		}
		tokens = append(tokens, arg)
	}
	if _, err := fmt.Fprintf(w.file, "%s\n\n", strings.Join(tokens, " ")); err != nil {
		return fmt.Errorf("failed to write command line: %w", err)
	}
	return nil
}

// Path returns the log file location.
func (w *Writer) Path() string {
	return w.path
}

// Write appends raw bytes to the log file, satisfying io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.file.Write(p)
}

// Handler returns an slog handler that appends text records to the log
// file, for use as the secondary side of a tee.
func (w *Writer) Handler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(w.file, &slog.HandlerOptions{Level: level})
}

// Close closes the log file.
func (w *Writer) Close() error {
	return w.file.Close()
}

// hostInfoCommands are run by AppendHostInfo. Not all succeed on all
// machines; failures are recorded and skipped.
var hostInfoCommands = [][]string{
	{"uname", "-a"},
	{"sh", "-c", "grep MemTotal /proc/meminfo 2>/dev/null"},
	{"sh", "-c", "tail -n 25 /proc/cpuinfo 2>/dev/null"},
}

// AppendHostInfo appends best-effort host information to the log: each
// command is echoed, then its combined output follows. Errors never
// propagate; a run log without host info is still a valid run log.
func (w *Writer) AppendHostInfo() {
	for _, cmd := range hostInfoCommands {
		fmt.Fprintf(w.file, "%s\n", strings.Join(cmd, " "))
		out, err := exec.Command(cmd[0], cmd[1:]...).CombinedOutput() //nolint:gosec // Fixed command table
		if err != nil {
			fmt.Fprintf(w.file, "(failed: %v)\n\n", err)
			continue
		}
		_, _ = w.file.Write(out)
		fmt.Fprintln(w.file)
	}
}

// interface checks
var _ io.Writer = (*Writer)(nil)
