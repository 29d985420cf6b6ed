// Package fs provides filesystem-backed extraction, listing, and renaming.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docname"
)

// HiddenPrefix marks file names that are never processed.
const HiddenPrefix = "."

// ListFiles returns the paths of regular, non-hidden files directly inside
// dir, in the name order os.ReadDir returns them. Symlinks are followed when
// deciding whether an entry is a regular file.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, mapError(err, dir)
	}

	var paths []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), HiddenPrefix) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Exists reports whether path resolves to an existing file.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// mapError converts missing-file and permission errors to application errors.
// Other errors are returned unchanged.
func mapError(err error, path string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, iofs.ErrNotExist):
		return docname.Errorf(docname.ENOTFOUND, "file not found: %s", path)
	case errors.Is(err, iofs.ErrPermission):
		return docname.Errorf(docname.EPERMISSION, "permission denied: %s", path)
	}
	return err
}
