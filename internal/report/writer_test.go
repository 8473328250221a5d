package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/stereo"
)

// createTestSummary creates a summary with sample data for testing.
func createTestSummary() *Summary {
	return &Summary{
		Tool: "stereoprep",
		Date: time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC),
		Invocation: stereo.Invocation{
			Images:  []string{"left.tif", "right.tif"},
			Cameras: []string{"left.tsai", "right.tsai"},
			Prefix:  "out/run",
			DEMPath: "terrain.tif",
		},
		TargetName: "MARS",
		Warnings:   []string{"The output prefix out/run is an existing file."},
		LogFile:    "out/run-log-stereoprep-08-24-1530-42.txt",
	}
}

func TestSummary_Pairs(t *testing.T) {
	t.Parallel()

	t.Run("pairs images with cameras", func(t *testing.T) {
		t.Parallel()
		pairs := createTestSummary().Pairs()
		if len(pairs) != 2 {
			t.Fatalf("expected 2 pairs, got %d", len(pairs))
		}
		if pairs[0] != [2]string{"left.tif", "left.tsai"} {
			t.Errorf("unexpected first pair: %v", pairs[0])
		}
	})

	t.Run("missing cameras become empty strings", func(t *testing.T) {
		t.Parallel()
		s := &Summary{Invocation: stereo.Invocation{
			Images: []string{"left.cub", "right.cub"},
		}}
		pairs := s.Pairs()
		if pairs[0][1] != "" || pairs[1][1] != "" {
			t.Errorf("expected empty camera slots: %v", pairs)
		}
	})
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and inputs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "STEREO INVOCATION CHECK") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "Output Prefix:  out/run") {
			t.Error("expected output to contain the prefix")
		}
		if !strings.Contains(output, "left.tif") || !strings.Contains(output, "left.tsai") {
			t.Error("expected output to contain the first pair")
		}
		if !strings.Contains(output, "Target:         MARS") {
			t.Error("expected output to contain the target name")
		}
	})

	t.Run("writes warnings section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "! The output prefix out/run is an existing file.") {
			t.Error("expected output to contain the warning")
		}
	})

	t.Run("embedded cameras are labeled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		s := createTestSummary()
		s.Invocation.Cameras = nil

		if _, err := w.Write(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "(embedded in image)") {
			t.Error("expected embedded camera label")
		}
	})

	t.Run("verbose includes the run log path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))

		if _, err := w.Write(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Run Log:") {
			t.Error("expected run log line in verbose mode")
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes title and tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Stereo Invocation Check") {
			t.Error("expected markdown title")
		}
		if !strings.Contains(output, "Output Prefix") {
			t.Error("expected properties table")
		}
		if !strings.Contains(output, "`left.tif`") {
			t.Error("expected inputs table to contain the first image")
		}
	})

	t.Run("no warnings produces a tip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		s := createTestSummary()
		s.Warnings = nil

		if _, err := w.Write(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!TIP]") {
			t.Error("expected a tip alert when there are no warnings")
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}
		if decoded["tool"] != "stereoprep" {
			t.Errorf("unexpected tool: %v", decoded["tool"])
		}
		if decoded["output_prefix"] != "out/run" {
			t.Errorf("unexpected prefix: %v", decoded["output_prefix"])
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"") {
			t.Error("expected indented JSON output")
		}
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		s := createTestSummary()
		s.Invocation.DEMPath = ""
		s.TargetName = ""
		s.Warnings = nil
		s.LogFile = ""

		if _, err := w.Write(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, field := range []string{"input_dem", "target", "warnings", "run_log"} {
			if strings.Contains(output, field) {
				t.Errorf("expected %q to be omitted", field)
			}
		}
	})
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, md bytes.Buffer
	w := NewMultiWriter(NewSimpleWriter(&text), NewMarkdownWriter(&md))

	if _, err := w.Write(createTestSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.Len() == 0 || md.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}
