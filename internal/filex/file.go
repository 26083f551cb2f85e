// Package filex holds filesystem helpers shared by the CLI commands.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubdDir creates dirName under the working directory when missing
// and returns its absolute path. Nested names such as "a/b" are allowed.
func EnsureSubdDir(dirName string) (string, error) {
	if dirName == "" || filepath.IsAbs(dirName) {
		return "", fmt.Errorf("directory %q must be relative and not empty", dirName)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
