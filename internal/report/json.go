package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// jsonSummary is the wire form of a Summary.
//
// Design decision: We keep a separate struct with json tags rather than
// tagging Summary itself because this allows us to rename output fields
// without touching the type the rest of the program passes around.
type jsonSummary struct {
	Tool       string    `json:"tool"`
	Date       time.Time `json:"date"`
	Images     []string  `json:"images"`
	Cameras    []string  `json:"cameras"`
	Prefix     string    `json:"output_prefix"`
	DEMPath    string    `json:"input_dem,omitempty"`
	TargetName string    `json:"target,omitempty"`
	Warnings   []string  `json:"warnings,omitempty"`
	LogFile    string    `json:"run_log,omitempty"`
}

// Write outputs the summary in JSON format.
func (w *JSONWriter) Write(summary *Summary) (int, error) {
	out := jsonSummary{
		Tool:       summary.Tool,
		Date:       summary.Date,
		Images:     summary.Invocation.Images,
		Cameras:    summary.Invocation.Cameras,
		Prefix:     summary.Invocation.Prefix,
		DEMPath:    summary.Invocation.DEMPath,
		TargetName: summary.TargetName,
		Warnings:   summary.Warnings,
		LogFile:    summary.LogFile,
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(out, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// interface checks
var (
	_ Writer = (*SimpleWriter)(nil)
	_ Writer = (*MarkdownWriter)(nil)
	_ Writer = (*JSONWriter)(nil)
	_ Writer = (*MultiWriter)(nil)
)
