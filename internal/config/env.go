package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// SetEnv sets one environment variable with an explicit error return.
// The pipeline tools read variables such as ISISROOT and GDAL_DATA at
// startup; this is the single seam through which stereoprep injects them.
func SetEnv(key, value string) error {
	if key == "" || strings.Contains(key, "=") {
		return fmt.Errorf("invalid environment variable name: %q", key)
	}
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// ApplyEnv sets every variable in env, in sorted key order so failures
// are deterministic. The first failure aborts.
func ApplyEnv(env map[string]string) error {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := SetEnv(k, env[k]); err != nil {
			return err
		}
	}
	return nil
}
