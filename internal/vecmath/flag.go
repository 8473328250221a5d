package vecmath

import (
	"fmt"

	"github.com/spf13/pflag"
)

// The tuple types implement pflag.Value so they register directly as
// cobra flag values. pflag hands Set a single raw string per occurrence;
// SplitTokens still accepts commas and embedded whitespace, so
// --corr-search "-80 -2 20 2" and --corr-search=-80,-2,20,2 both work.
var (
	_ pflag.Value = (*Vector2i)(nil)
	_ pflag.Value = (*Vector2)(nil)
	_ pflag.Value = (*BBox2i)(nil)
	_ pflag.Value = (*BBox2)(nil)
	_ pflag.Value = (*BBox3)(nil)
)

// Set parses the flag value into the point.
func (v *Vector2i) Set(s string) error {
	parsed, err := ParseVector2i([]string{s})
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the point as a space separated token list.
func (v *Vector2i) String() string {
	return fmt.Sprintf("%d %d", v.X, v.Y)
}

// Type returns the flag type name shown in help output.
func (v *Vector2i) Type() string { return "int-point" }

// Set parses the flag value into the point.
func (v *Vector2) Set(s string) error {
	parsed, err := ParseVector2([]string{s})
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the point as a space separated token list.
func (v *Vector2) String() string {
	return fmt.Sprintf("%g %g", v.X, v.Y)
}

// Type returns the flag type name shown in help output.
func (v *Vector2) Type() string { return "point" }

// Set parses the flag value into the box.
func (b *BBox2i) Set(s string) error {
	parsed, err := ParseBBox2i([]string{s})
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// String returns the box corners as a space separated token list.
func (b *BBox2i) String() string {
	return fmt.Sprintf("%d %d %d %d", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// Type returns the flag type name shown in help output.
func (b *BBox2i) Type() string { return "int-box" }

// Set parses the flag value into the box.
func (b *BBox2) Set(s string) error {
	parsed, err := ParseBBox2([]string{s})
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// String returns the box corners as a space separated token list.
func (b *BBox2) String() string {
	return fmt.Sprintf("%g %g %g %g", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// Type returns the flag type name shown in help output.
func (b *BBox2) Type() string { return "box" }

// Set parses the flag value into the box.
func (b *BBox3) Set(s string) error {
	parsed, err := ParseBBox3([]string{s})
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// String returns the box corners as a space separated token list.
func (b *BBox3) String() string {
	return fmt.Sprintf("%g %g %g %g %g %g",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// Type returns the flag type name shown in help output.
func (b *BBox3) Type() string { return "box3d" }
