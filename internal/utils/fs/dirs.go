package fs

import (
	"fmt"
	"os"
	"vidgrab/internal/domain/consts"
)

// EnsureDir creates dir and any missing parents. An existing directory is not an error.
func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is empty")
	}
	if err := os.MkdirAll(dir, consts.PermsOutputDir); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	return nil
}
