package stereo

import (
	"fmt"
	"strings"
)

// ParseAppendMetadata parses a "VAR1=VAL1 VAR2=VAL2" string and appends
// the pairs to keywords. Existing entries are kept unless overwritten by
// a pair with the same key. A fragment without both a key and a value
// fails the whole parse.
func ParseAppendMetadata(metadata string, keywords map[string]string) error {
	for _, meta := range strings.Fields(metadata) {
		parts := strings.Fields(strings.ReplaceAll(meta, "=", " "))
		if len(parts) < 2 {
			return fmt.Errorf("could not parse: %s", meta)
		}
		keywords[parts[0]] = parts[1]
	}
	return nil
}
