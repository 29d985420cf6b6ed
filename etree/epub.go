package etree

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/docname"
)

// Ensure EpubExtractor implements docname.Extractor at compile time.
var _ docname.Extractor = (*EpubExtractor)(nil)

const (
	epubContainerPart = "META-INF/container.xml"
	epubDocumentType  = "application/xhtml+xml"
)

// EpubExtractor extracts the text of EPUB e-books.
type EpubExtractor struct {
	converter docname.Converter
}

// NewEpubExtractor creates a new EpubExtractor. Each XHTML document is
// passed through converter; a nil converter keeps the raw markup.
func NewEpubExtractor(converter docname.Converter) *EpubExtractor {
	return &EpubExtractor{converter: converter}
}

// Extract concatenates every XHTML document item of the package manifest in
// manifest order. The navigation document is skipped.
func (e *EpubExtractor) Extract(ctx context.Context, p string) (*docname.Content, error) {
	zr, err := openArchive(p)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	container, err := readXML(&zr.Reader, epubContainerPart)
	if err != nil {
		return nil, err
	}
	rootfile := container.FindElement("//rootfile")
	if rootfile == nil {
		return nil, fmt.Errorf("epub %s: container has no rootfile", p)
	}
	opfPath := rootfile.SelectAttrValue("full-path", "")
	if opfPath == "" {
		return nil, fmt.Errorf("epub %s: rootfile has no full-path", p)
	}

	opf, err := readXML(&zr.Reader, opfPath)
	if err != nil {
		return nil, err
	}
	manifest := opf.Root().SelectElement("manifest")
	if manifest == nil {
		return nil, fmt.Errorf("epub %s: package has no manifest", p)
	}

	var parts []string
	for _, item := range manifest.SelectElements("item") {
		if item.SelectAttrValue("media-type", "") != epubDocumentType {
			continue
		}
		if isNav(item.SelectAttrValue("properties", "")) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		href, err := url.PathUnescape(item.SelectAttrValue("href", ""))
		if err != nil {
			return nil, fmt.Errorf("epub %s: bad href: %w", p, err)
		}
		raw, err := readPart(&zr.Reader, resolvePart(path.Dir(opfPath), href))
		if err != nil {
			return nil, err
		}

		text, err := e.convert(string(raw))
		if err != nil {
			return nil, fmt.Errorf("epub %s: convert %s: %w", p, href, err)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return docname.TextContent(strings.Join(parts, "\n\n")), nil
}

func (e *EpubExtractor) convert(html string) (string, error) {
	if e.converter == nil || strings.TrimSpace(html) == "" {
		return html, nil
	}
	text, err := e.converter.Convert(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func isNav(properties string) bool {
	for _, p := range strings.Fields(properties) {
		if p == "nav" {
			return true
		}
	}
	return false
}
