package stereo

import (
	"bufio"
	"os"
	"strings"
)

// targetNameUnknown is returned when no target body can be determined.
const targetNameUnknown = "UNKNOWN"

// targetScanLineLimit caps how far into a file ReadTargetName looks.
// An ISIS cube states its target within the first few dozen header lines;
// a multi-gigabyte tif handed to this function by mistake must not be
// scanned to the end.
const targetScanLineLimit = 1000

// ReadTargetName reads the target body name (the planet) from the plain
// text label section of an ISIS cube file. It returns "UNKNOWN" when the
// file cannot be opened, the label ends, or the line limit is reached
// without finding a TargetName entry.
func ReadTargetName(path string) string {
	f, err := os.Open(path) //nolint:gosec // User-provided cube path is intentional
	if err != nil {
		return targetNameUnknown
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "End" {
			return targetNameUnknown
		}

		count++
		if count > targetScanLineLimit {
			break
		}

		line = strings.ToLower(line)
		if !strings.Contains(line, "targetname") {
			continue
		}

		// "TargetName = Mars" reads as key, value after the equal sign
		// becomes a field separator.
		parts := strings.Fields(strings.ReplaceAll(line, "=", " "))
		if len(parts) < 2 {
			continue
		}
		return strings.ToUpper(parts[1])
	}
	return targetNameUnknown
}
