// Package pdf extracts plain text from PDF documents using
// github.com/ledongthuc/pdf.
package pdf

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"strings"

	"github.com/fwojciec/docname"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements docname.Extractor at compile time.
var _ docname.Extractor = (*Extractor)(nil)

// PageSeparator ends the text of every page.
const PageSeparator = "\f"

// Extractor extracts the plain text of every page in order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads all pages of the PDF at path. The parser panics on some
// malformed inputs; those panics are returned as errors.
func (e *Extractor) Extract(ctx context.Context, path string) (_ *docname.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, docname.Errorf(docname.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := page.Font(name)
				fonts[name] = &font
			}
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString(PageSeparator)
	}

	return docname.TextContent(sb.String()), nil
}
