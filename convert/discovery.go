package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when an input path does not exist or is neither
// a regular file nor a directory.
var ErrNotFound = errors.New("input path not found")

// EnumeratePaths resolves an input path into the list of candidate files
// for a batch. A regular file yields a single-element list regardless of
// its extension; whether it is actually an image is decided by the decode
// step. A directory yields its direct children that are regular files,
// sorted by name so repeated runs see the same order. Subdirectories are
// skipped, recursive traversal is not implemented.
func EnumeratePaths(input string) ([]string, error) {
	fi, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, input)
	}

	if fi.Mode().IsRegular() {
		return []string{input}, nil
	}

	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is neither a regular file nor a directory", ErrNotFound, input)
	}

	// os.ReadDir returns entries sorted by filename, which keeps
	// enumeration deterministic across runs.
	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", input, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(input, entry.Name()))
	}

	return files, nil
}

// IsImageFile checks if the given file extension is one of the known raster
// image extensions. Conversion does not pre-filter on this (decode failures
// surface per task instead), but the duplicates scan uses it to skip
// obvious non-images.
func IsImageFile(path string) bool {
	var desiredExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"}

	ext := filepath.Ext(path)
	ext = strings.ToLower(ext) // handle cases where extension is upper case

	for _, v := range desiredExtensions {
		if v == ext {
			return true
		}
	}
	return false
}
