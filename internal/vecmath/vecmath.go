package vecmath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Vector2i is a 2D integer point.
type Vector2i struct {
	X, Y int
}

// Vector2 is a 2D floating point point.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a 3D floating point point.
type Vector3 struct {
	X, Y, Z float64
}

// BBox2i is a 2D integer box given by two corner points. Min and Max are
// positional labels only; no ordering between the corners is enforced.
type BBox2i struct {
	Min, Max Vector2i
}

// BBox2 is a 2D floating point box given by two corner points.
type BBox2 struct {
	Min, Max Vector2
}

// BBox3 is a 3D floating point box given by two corner points.
type BBox3 struct {
	Min, Max Vector3
}

// SplitTokens joins the raw option fragments with a single space and
// re-splits on any run of comma and whitespace characters, so comma and
// space delimited values can be mixed freely. Consecutive delimiters
// collapse to one split point.
func SplitTokens(raw []string) []string {
	joined := strings.Join(raw, " ")
	return strings.FieldsFunc(joined, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseTokens re-tokenizes raw, checks the arity, and converts every token
// with conv. A wrong token count fails with ErrMissingParameter; a single
// unconvertible token fails the whole operation with ErrInvalidValue.
func parseTokens[T any](raw []string, arity int, conv func(string) (T, error)) ([]T, error) {
	tokens := SplitTokens(raw)
	if len(tokens) != arity {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMissingParameter, arity, len(tokens))
	}
	out := make([]T, 0, arity)
	for _, tok := range tokens {
		v, err := conv(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, tok)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseInt converts one token to int.
func parseInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int(v), err
}

// parseFloat converts one token to float64.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ParseVector2i parses raw option tokens into a 2-element integer point.
func ParseVector2i(raw []string) (Vector2i, error) {
	vals, err := parseTokens(raw, 2, parseInt)
	if err != nil {
		return Vector2i{}, err
	}
	return Vector2i{X: vals[0], Y: vals[1]}, nil
}

// ParseVector2 parses raw option tokens into a 2-element float point.
func ParseVector2(raw []string) (Vector2, error) {
	vals, err := parseTokens(raw, 2, parseFloat)
	if err != nil {
		return Vector2{}, err
	}
	return Vector2{X: vals[0], Y: vals[1]}, nil
}

// ParseBBox2i parses raw option tokens into a 4-element integer box:
// the first corner point followed by the second corner point.
func ParseBBox2i(raw []string) (BBox2i, error) {
	vals, err := parseTokens(raw, 4, parseInt)
	if err != nil {
		return BBox2i{}, err
	}
	return BBox2i{
		Min: Vector2i{X: vals[0], Y: vals[1]},
		Max: Vector2i{X: vals[2], Y: vals[3]},
	}, nil
}

// ParseBBox2 parses raw option tokens into a 4-element float box.
func ParseBBox2(raw []string) (BBox2, error) {
	vals, err := parseTokens(raw, 4, parseFloat)
	if err != nil {
		return BBox2{}, err
	}
	return BBox2{
		Min: Vector2{X: vals[0], Y: vals[1]},
		Max: Vector2{X: vals[2], Y: vals[3]},
	}, nil
}

// ParseBBox3 parses raw option tokens into a 6-element float box from two
// consecutive 3-element points.
func ParseBBox3(raw []string) (BBox3, error) {
	vals, err := parseTokens(raw, 6, parseFloat)
	if err != nil {
		return BBox3{}, err
	}
	return BBox3{
		Min: Vector3{X: vals[0], Y: vals[1], Z: vals[2]},
		Max: Vector3{X: vals[3], Y: vals[4], Z: vals[5]},
	}, nil
}
