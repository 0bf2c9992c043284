package errors

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateSourceDir checks that dir names an existing directory.
// A missing folder, a regular file, or an unreadable path are all INVALID_PATH.
func ValidateSourceDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "source folder cannot be empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return New(ErrCodeInvalidPath, "folder %s does not exist", dir)
		}
		return Wrap(ErrCodeInvalidPath, err, "cannot access folder %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "%s is not a directory", dir)
	}
	return nil
}

// ValidateOutputPath validates the output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Path cannot name an existing directory
//   - The parent directory must exist
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(ErrCodeInvalidPath, "output path %s is a directory", path)
	}

	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "output directory %s is not accessible", parent)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "output directory %s is not a directory", parent)
	}
	return nil
}
