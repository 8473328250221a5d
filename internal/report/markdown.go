package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeInputs(md, summary)
	w.writeWarnings(md, summary)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with invocation information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *Summary) {
	md.H1("Stereo Invocation Check")
	md.PlainText("")

	rows := [][]string{
		{"Tool", "`" + summary.Tool + "`"},
		{"Date", summary.Date.Format("2006-01-02 15:04:05 MST")},
		{"Output Prefix", "`" + summary.Invocation.Prefix + "`"},
		{"Image Count", strconv.Itoa(len(summary.Invocation.Images))},
	}
	if summary.Invocation.DEMPath != "" {
		rows = append(rows, []string{"Input DEM", "`" + summary.Invocation.DEMPath + "`"})
	}
	if summary.TargetName != "" {
		rows = append(rows, []string{"Target", summary.TargetName})
	}
	if summary.LogFile != "" {
		rows = append(rows, []string{"Run Log", "`" + summary.LogFile + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeInputs writes the image and camera pairing table.
func (w *MarkdownWriter) writeInputs(md *markdown.Markdown, summary *Summary) {
	md.H2("Inputs")
	md.PlainText("")

	pairs := summary.Pairs()
	rows := make([][]string, len(pairs))
	for i, pair := range pairs {
		camera := pair[1]
		if camera == "" {
			camera = "*(embedded in image)*"
		} else {
			camera = "`" + camera + "`"
		}
		rows[i] = []string{strconv.Itoa(i + 1), "`" + pair[0] + "`", camera}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Image", "Camera"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeWarnings writes advisory messages raised during validation.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, summary *Summary) {
	if len(summary.Warnings) == 0 {
		md.Tip("No warnings were raised while checking this invocation.")
		md.PlainText("")
		return
	}

	md.H2("Warnings")
	md.PlainText("")
	for _, warning := range summary.Warnings {
		md.Warningf("%s", warning)
	}
	md.PlainText("")
}
