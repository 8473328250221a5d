package report

import (
	"io"
	"time"

	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/stereo"
)

// Summary is the result of checking one invocation, in the form the
// report writers consume.
type Summary struct {
	// Tool is the program the invocation was checked for.
	Tool string

	// Date is when the check ran.
	Date time.Time

	// Invocation is the validated image, camera, prefix, and terrain
	// assignment.
	Invocation stereo.Invocation

	// TargetName is the target body read from the first cube file, or
	// "UNKNOWN" when none of the inputs carried one.
	TargetName string

	// Warnings are the advisory messages produced during validation,
	// such as an output prefix that names an existing file.
	Warnings []string

	// LogFile is the path of the run log, when one was written.
	LogFile string
}

// Pairs returns the image and camera paths side by side. When the
// camera list is shorter than the image list the missing entries are
// empty strings, mirroring how embedded-camera inputs are stored.
func (s *Summary) Pairs() [][2]string {
	pairs := make([][2]string, len(s.Invocation.Images))
	for i, img := range s.Invocation.Images {
		pairs[i][0] = img
		if i < len(s.Invocation.Cameras) {
			pairs[i][1] = s.Invocation.Cameras[i]
		}
	}
	return pairs
}

// Writer defines the interface for report output.
// Implementations write check results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write summaries, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
