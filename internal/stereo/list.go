package stereo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadList reads a list of strings from a file, with spaces and newlines
// acting as separators. An empty list is an error.
func ReadList(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, err
	}
	list := strings.Fields(string(data))
	if len(list) == 0 {
		return nil, fmt.Errorf("could not read any entries from: %s", path)
	}
	return list, nil
}

// ReadVec reads whitespace-separated floating point values from a file.
// Reading stops quietly at the first token that is not a number, so a
// trailing comment does not poison the values before it.
func ReadVec(path string) ([]float64, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided vector path is intentional
	if err != nil {
		return nil, fmt.Errorf("could not open file: %s", path)
	}
	var vals []float64
	for _, tok := range strings.Fields(string(data)) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			break
		}
		vals = append(vals, v)
	}
	return vals, nil
}
