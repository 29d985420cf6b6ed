package fs

import (
	"context"
	"os"

	"github.com/fwojciec/docname"
)

// Ensure Renamer implements docname.Renamer at compile time.
var _ docname.Renamer = (*Renamer)(nil)

// Renamer renames files in place with os.Rename.
type Renamer struct{}

// NewRenamer creates a new Renamer.
func NewRenamer() *Renamer {
	return &Renamer{}
}

// Rename moves d.Path to d.Target() within the same directory. An existing
// file at the target is never replaced; ECONFLICT is returned instead.
func (r *Renamer) Rename(ctx context.Context, d docname.RenameDirective) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	target := d.Target()
	if target != d.Path && Exists(target) {
		return "", docname.Errorf(docname.ECONFLICT, "target already exists: %s", target)
	}
	if err := Move(ctx, d.Path, target); err != nil {
		return "", err
	}
	return target, nil
}

// Move renames from to to. Returns ENOTFOUND if from does not exist and
// EPERMISSION if the rename is denied.
func Move(ctx context.Context, from, to string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Lstat(from); err != nil {
		return mapError(err, from)
	}
	if err := os.Rename(from, to); err != nil {
		return mapError(err, from)
	}
	return nil
}
