package mock

import (
	"context"

	"github.com/fwojciec/docname"
)

var _ docname.Renamer = (*Renamer)(nil)

// Renamer is a mock implementation of docname.Renamer.
type Renamer struct {
	RenameFn func(ctx context.Context, d docname.RenameDirective) (string, error)
}

func (r *Renamer) Rename(ctx context.Context, d docname.RenameDirective) (string, error) {
	return r.RenameFn(ctx, d)
}
