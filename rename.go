package docname

import (
	"context"
	"path/filepath"
	"strings"
)

// RenameDirective describes a rename of one file within its directory.
type RenameDirective struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Validate returns an error if the directive contains invalid fields.
func (d *RenameDirective) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "rename path required")
	}
	if d.Name == "" {
		return Errorf(EINVALID, "rename name required")
	}
	if strings.ContainsAny(d.Name, `/\`) {
		return Errorf(EINVALID, "rename name %q must not contain a path separator", d.Name)
	}
	if strings.ContainsAny(d.Category, `/\`) {
		return Errorf(EINVALID, "rename category %q must not contain a path separator", d.Category)
	}
	return nil
}

// BaseName returns the new file name without directory.
// The original extension (from the last dot of the base name) is kept
// byte for byte.
func (d *RenameDirective) BaseName() string {
	ext := filepath.Ext(filepath.Base(d.Path))
	if d.Category != "" {
		return d.Category + "_" + d.Name + ext
	}
	return d.Name + ext
}

// Target returns the full path the file is renamed to.
func (d *RenameDirective) Target() string {
	return filepath.Join(filepath.Dir(d.Path), d.BaseName())
}

// Renamer renames files on disk.
type Renamer interface {
	// Rename moves d.Path to d.Target() and returns the new path.
	// Returns ENOTFOUND if the source does not exist and EPERMISSION if the
	// filesystem refuses the rename. The filesystem is unchanged on error.
	Rename(ctx context.Context, d RenameDirective) (string, error)
}
