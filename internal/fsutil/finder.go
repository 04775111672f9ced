// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files
// whose extension is one of extensions, compared case-insensitively. It
// returns a sorted slice of their full paths.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if slices.Contains(extensions, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// ResolveFile returns path unchanged unless it names a directory. A
// directory must contain exactly one file with one of the extensions, and
// that file's path is returned.
func ResolveFile(path string, extensions ...string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		// Missing files are reported by whoever opens them.
		return path, nil
	}

	files, err := FindFilesByExtension(path, extensions...)
	if err != nil {
		return "", fmt.Errorf("failed to search %s: %w", path, err)
	}
	switch len(files) {
	case 0:
		return "", fmt.Errorf("no document with extension %s found in %s", strings.Join(extensions, ", "), path)
	case 1:
		return files[0], nil
	default:
		return "", fmt.Errorf("directory %s holds %d documents, name one of them: %s", path, len(files), strings.Join(files, ", "))
	}
}
