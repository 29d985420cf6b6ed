// Package extract dispatches content extraction to format strategies by
// file extension.
package extract

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docname"
)

var _ docname.ExtractorRegistry = (*Registry)(nil)

// Source code and markup extensions that are read as plain text.
var CodeExtensions = []string{
	".py", ".java", ".cpp", ".c", ".js", ".ts", ".go", ".rb", ".swift", ".kt",
	".scala", ".php", ".perl", ".ruby", ".bash", ".sh", ".zsh", ".html",
}

// Registry maps file extensions to extraction strategies.
// Extensions are matched case-insensitively against the final suffix of
// the file name.
type Registry struct {
	strategies map[string]docname.Extractor
	order      []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]docname.Extractor)}
}

// Register adds a strategy for each extension.
// If a strategy is already registered for an extension, it is replaced.
func (r *Registry) Register(e docname.Extractor, exts ...string) {
	for _, ext := range exts {
		ext = normalize(ext)
		if _, ok := r.strategies[ext]; !ok {
			r.order = append(r.order, ext)
		}
		r.strategies[ext] = e
	}
}

// Get returns the strategy for ext, or nil if none is registered.
func (r *Registry) Get(ext string) docname.Extractor {
	return r.strategies[normalize(ext)]
}

// Extensions returns registered extensions in registration order.
func (r *Registry) Extensions() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Extract finds the strategy for path's extension and runs it.
func (r *Registry) Extract(ctx context.Context, path string) (*docname.Content, error) {
	ext := filepath.Ext(path)
	strategy := r.Get(ext)
	if strategy == nil {
		return nil, docname.Errorf(docname.EUNSUPPORTED, "unsupported file type %q: %s", ext, path)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, docname.Errorf(docname.ENOTFOUND, "file not found: %s", path)
		}
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return strategy.Extract(ctx, path)
}

func normalize(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
