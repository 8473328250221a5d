package report

import (
	"fmt"
	"io"
	"strings"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeInputs(&sb, summary)
	w.writeWarnings(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with invocation information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, summary *Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      STEREO INVOCATION CHECK\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Tool:           %s\n", summary.Tool))
	sb.WriteString(fmt.Sprintf("Date:           %s\n", summary.Date.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Output Prefix:  %s\n", summary.Invocation.Prefix))

	if summary.Invocation.DEMPath != "" {
		sb.WriteString(fmt.Sprintf("Input DEM:      %s\n", summary.Invocation.DEMPath))
	}
	if summary.TargetName != "" {
		sb.WriteString(fmt.Sprintf("Target:         %s\n", summary.TargetName))
	}
	if w.verbose && summary.LogFile != "" {
		sb.WriteString(fmt.Sprintf("Run Log:        %s\n", summary.LogFile))
	}

	sb.WriteString("\n")
}

// writeInputs writes the image and camera pairing section.
func (w *SimpleWriter) writeInputs(sb *strings.Builder, summary *Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("INPUTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for i, pair := range summary.Pairs() {
		camera := pair[1]
		if camera == "" {
			camera = "(embedded in image)"
		}
		sb.WriteString(fmt.Sprintf("  [%d] image:  %s\n", i+1, pair[0]))
		sb.WriteString(fmt.Sprintf("      camera: %s\n", camera))
	}
	sb.WriteString("\n")
}

// writeWarnings writes advisory messages raised during validation.
func (w *SimpleWriter) writeWarnings(sb *strings.Builder, summary *Summary) {
	if len(summary.Warnings) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("WARNINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, warning := range summary.Warnings {
		sb.WriteString(fmt.Sprintf("  ! %s\n", warning))
	}
	sb.WriteString("\n")
}
