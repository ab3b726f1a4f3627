// Package validation checks command-line paths before any work is done.
package validation

import (
	"fmt"
	"os"
)

// StdStream is the path that stands for stdin or stdout.
const StdStream = "-"

// IsValidInputPath checks that path is StdStream or an existing regular file.
func IsValidInputPath(path string) error {
	if path == "" {
		return fmt.Errorf("input path is empty")
	}
	if path == StdStream {
		return nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputPath checks that path is StdStream or does not name an
// existing directory.
func IsValidOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}
	if path == StdStream {
		return nil
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	return nil
}
