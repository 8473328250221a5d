package stereo

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadList(t *testing.T) {
	t.Parallel()

	t.Run("reads whitespace separated entries", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "list.txt")
		if err := os.WriteFile(path, []byte("a.tif b.tif\nc.tif\n"), 0600); err != nil {
			t.Fatalf("failed to write list: %v", err)
		}
		got, err := ReadList(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"a.tif", "b.tif", "c.tif"}) {
			t.Errorf("unexpected list: %v", got)
		}
	})

	t.Run("empty file fails", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty.txt")
		if err := os.WriteFile(path, []byte("  \n\t\n"), 0600); err != nil {
			t.Fatalf("failed to write list: %v", err)
		}
		if _, err := ReadList(path); err == nil {
			t.Error("expected error for empty list")
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()
		if _, err := ReadList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestReadVec(t *testing.T) {
	t.Parallel()

	t.Run("reads floats", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "vec.txt")
		if err := os.WriteFile(path, []byte("1.5 -2\n3e2\n"), 0600); err != nil {
			t.Fatalf("failed to write vector: %v", err)
		}
		got, err := ReadVec(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, []float64{1.5, -2, 300}) {
			t.Errorf("unexpected values: %v", got)
		}
	})

	t.Run("stops quietly at the first non-number", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "vec.txt")
		if err := os.WriteFile(path, []byte("1 2 # comment 3"), 0600); err != nil {
			t.Fatalf("failed to write vector: %v", err)
		}
		got, err := ReadVec(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, []float64{1, 2}) {
			t.Errorf("unexpected values: %v", got)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()
		if _, err := ReadVec(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
