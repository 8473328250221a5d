package vecmath

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{"comma delimited", []string{"1,2"}, []string{"1", "2"}},
		{"space delimited", []string{"1", "2"}, []string{"1", "2"}},
		{"comma and space mixed", []string{"1, 2"}, []string{"1", "2"}},
		{"consecutive delimiters collapse", []string{"1,, ,2"}, []string{"1", "2"}},
		{"fragments join across tokens", []string{"0,0", "10,10"}, []string{"0", "0", "10", "10"}},
		{"empty input", nil, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitTokens(tt.raw)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTokens(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseVector2i(t *testing.T) {
	t.Parallel()

	t.Run("parses comma delimited", func(t *testing.T) {
		t.Parallel()
		got, err := ParseVector2i([]string{"1,2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != (Vector2i{X: 1, Y: 2}) {
			t.Errorf("expected (1,2), got %+v", got)
		}
	})

	t.Run("parses space delimited", func(t *testing.T) {
		t.Parallel()
		got, err := ParseVector2i([]string{"1", "2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != (Vector2i{X: 1, Y: 2}) {
			t.Errorf("expected (1,2), got %+v", got)
		}
	})

	t.Run("negative values", func(t *testing.T) {
		t.Parallel()
		got, err := ParseVector2i([]string{"-80,-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != (Vector2i{X: -80, Y: -2}) {
			t.Errorf("expected (-80,-2), got %+v", got)
		}
	})

	t.Run("wrong arity fails with ErrMissingParameter", func(t *testing.T) {
		t.Parallel()
		_, err := ParseVector2i([]string{"1,2,3"})
		if !errors.Is(err, ErrMissingParameter) {
			t.Errorf("expected ErrMissingParameter, got %v", err)
		}
	})

	t.Run("non-numeric token fails with ErrInvalidValue", func(t *testing.T) {
		t.Parallel()
		_, err := ParseVector2i([]string{"a,b"})
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("float token fails for integer point", func(t *testing.T) {
		t.Parallel()
		_, err := ParseVector2i([]string{"1.5,2"})
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue, got %v", err)
		}
	})
}

func TestParseVector2(t *testing.T) {
	t.Parallel()

	got, err := ParseVector2([]string{"1.5, -2.25"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (Vector2{X: 1.5, Y: -2.25}) {
		t.Errorf("expected (1.5,-2.25), got %+v", got)
	}
}

func TestParseBBox2i(t *testing.T) {
	t.Parallel()

	t.Run("parses four values into two corners", func(t *testing.T) {
		t.Parallel()
		got, err := ParseBBox2i([]string{"0,0,10,10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := BBox2i{Min: Vector2i{X: 0, Y: 0}, Max: Vector2i{X: 10, Y: 10}}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("corners are not reordered", func(t *testing.T) {
		t.Parallel()
		got, err := ParseBBox2i([]string{"10,10,0,0"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := BBox2i{Min: Vector2i{X: 10, Y: 10}, Max: Vector2i{X: 0, Y: 0}}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("two fragments of two values each", func(t *testing.T) {
		t.Parallel()
		got, err := ParseBBox2i([]string{"0,0", "10,10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := BBox2i{Min: Vector2i{X: 0, Y: 0}, Max: Vector2i{X: 10, Y: 10}}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("wrong arity fails", func(t *testing.T) {
		t.Parallel()
		_, err := ParseBBox2i([]string{"0,0,10"})
		if !errors.Is(err, ErrMissingParameter) {
			t.Errorf("expected ErrMissingParameter, got %v", err)
		}
	})
}

func TestParseBBox3(t *testing.T) {
	t.Parallel()

	got, err := ParseBBox3([]string{"0,0,0,1,2,3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BBox3{
		Min: Vector3{X: 0, Y: 0, Z: 0},
		Max: Vector3{X: 1, Y: 2, Z: 3},
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestFlagValues(t *testing.T) {
	t.Parallel()

	t.Run("Vector2i round trips through Set and String", func(t *testing.T) {
		t.Parallel()
		var v Vector2i
		if err := v.Set("3, 4"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := v.String(); got != "3 4" {
			t.Errorf("expected %q, got %q", "3 4", got)
		}
		if v.Type() != "int-point" {
			t.Errorf("unexpected type name: %s", v.Type())
		}
	})

	t.Run("BBox2i rejects bad values without mutating", func(t *testing.T) {
		t.Parallel()
		b := BBox2i{Min: Vector2i{X: 1, Y: 1}, Max: Vector2i{X: 2, Y: 2}}
		if err := b.Set("x,y,z,w"); err == nil {
			t.Fatal("expected error")
		}
		if b.Min.X != 1 || b.Max.Y != 2 {
			t.Errorf("box mutated on failed Set: %+v", b)
		}
	})

	t.Run("BBox3 parses six values", func(t *testing.T) {
		t.Parallel()
		var b BBox3
		if err := b.Set("0 0 0 1 1 1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Max != (Vector3{X: 1, Y: 1, Z: 1}) {
			t.Errorf("unexpected max corner: %+v", b.Max)
		}
	})
}
