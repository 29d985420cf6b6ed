package etree

import (
	"context"
	"strings"

	"github.com/fwojciec/docname"
)

// Ensure DocxExtractor implements docname.Extractor at compile time.
var _ docname.Extractor = (*DocxExtractor)(nil)

const docxMainPart = "word/document.xml"

// docxSkip lists elements whose text is not part of the paragraph itself.
var docxSkip = map[string]bool{
	"txbxContent": true,
	"instrText":   true,
	"delText":     true,
}

// DocxExtractor extracts paragraph text from Word documents.
type DocxExtractor struct{}

// NewDocxExtractor creates a new DocxExtractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract returns the text of the body's top-level paragraphs in document
// order, one paragraph per line. Paragraphs inside tables are not included.
func (e *DocxExtractor) Extract(ctx context.Context, path string) (*docname.Content, error) {
	zr, err := openArchive(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	doc, err := readXML(&zr.Reader, docxMainPart)
	if err != nil {
		return nil, err
	}

	body := doc.Root().SelectElement("body")
	if body == nil {
		return docname.TextContent(""), nil
	}

	var paragraphs []string
	for _, p := range body.SelectElements("p") {
		var sb strings.Builder
		runText(p, &sb, docxSkip)
		paragraphs = append(paragraphs, sb.String())
	}

	return docname.TextContent(strings.Join(paragraphs, "\n")), nil
}
