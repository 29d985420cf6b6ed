package mock

import (
	"context"

	"github.com/fwojciec/docname"
)

var _ docname.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docname.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path string) (*docname.Content, error)
}

func (e *Extractor) Extract(ctx context.Context, path string) (*docname.Content, error) {
	return e.ExtractFn(ctx, path)
}
