package mock

import (
	"context"

	"github.com/fwojciec/docname"
)

var _ docname.RenameIndex = (*RenameIndex)(nil)

// RenameIndex is a mock implementation of docname.RenameIndex.
type RenameIndex struct {
	RenamedFn func(ctx context.Context, path string) (bool, error)
	AddFn     func(path string)
}

func (i *RenameIndex) Renamed(ctx context.Context, path string) (bool, error) {
	return i.RenamedFn(ctx, path)
}

func (i *RenameIndex) Add(path string) {
	if i.AddFn != nil {
		i.AddFn(path)
	}
}
