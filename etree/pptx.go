package etree

import (
	"archive/zip"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/fwojciec/docname"
)

// Ensure PptxExtractor implements docname.Extractor at compile time.
var _ docname.Extractor = (*PptxExtractor)(nil)

const (
	pptxPresentationPart = "ppt/presentation.xml"
	pptxRelsPart         = "ppt/_rels/presentation.xml.rels"
)

// PptxExtractor extracts shape text from PowerPoint presentations.
// Legacy binary .ppt files are not zip archives and fail to open.
type PptxExtractor struct{}

// NewPptxExtractor creates a new PptxExtractor.
func NewPptxExtractor() *PptxExtractor {
	return &PptxExtractor{}
}

// Extract walks slides in presentation order and, within each slide, the
// top-level shapes that carry a text body. Paragraphs of a shape are
// separated by newlines, shapes by newlines, and slides by blank lines.
func (e *PptxExtractor) Extract(ctx context.Context, p string) (*docname.Content, error) {
	zr, err := openArchive(p)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	slides, err := slideParts(&zr.Reader)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, part := range slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := slideText(&zr.Reader, part)
		if err != nil {
			return nil, err
		}
		if text != "" {
			out = append(out, text)
		}
	}

	return docname.TextContent(strings.Join(out, "\n\n")), nil
}

// slideParts returns the archive paths of slides in presentation order.
func slideParts(zr *zip.Reader) ([]string, error) {
	pres, err := readXML(zr, pptxPresentationPart)
	if err != nil {
		return nil, err
	}
	rels, err := readXML(zr, pptxRelsPart)
	if err != nil {
		return nil, err
	}

	targets := make(map[string]string)
	for _, rel := range rels.Root().SelectElements("Relationship") {
		targets[rel.SelectAttrValue("Id", "")] = rel.SelectAttrValue("Target", "")
	}

	list := pres.Root().SelectElement("sldIdLst")
	if list == nil {
		return nil, nil
	}

	var parts []string
	for _, id := range list.SelectElements("sldId") {
		rid := id.SelectAttrValue("r:id", "")
		target, ok := targets[rid]
		if !ok {
			return nil, fmt.Errorf("slide relationship %q not found", rid)
		}
		parts = append(parts, resolvePart(path.Dir(pptxPresentationPart), target))
	}
	return parts, nil
}

// slideText returns the text of every top-level shape with a text body.
func slideText(zr *zip.Reader, part string) (string, error) {
	doc, err := readXML(zr, part)
	if err != nil {
		return "", err
	}

	csld := doc.Root().SelectElement("cSld")
	if csld == nil {
		return "", nil
	}
	tree := csld.SelectElement("spTree")
	if tree == nil {
		return "", nil
	}

	var shapes []string
	for _, sp := range tree.SelectElements("sp") {
		body := sp.SelectElement("txBody")
		if body == nil {
			continue
		}
		var paragraphs []string
		for _, para := range body.SelectElements("p") {
			var sb strings.Builder
			runText(para, &sb, nil)
			paragraphs = append(paragraphs, sb.String())
		}
		shapes = append(shapes, strings.Join(paragraphs, "\n"))
	}
	return strings.Join(shapes, "\n"), nil
}
