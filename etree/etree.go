// Package etree extracts text from zip-packaged XML documents (DOCX, PPTX,
// EPUB) using github.com/beevik/etree.
package etree

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docname"
)

// openArchive opens a zip container, mapping a missing file to ENOTFOUND.
func openArchive(name string) (*zip.ReadCloser, error) {
	zr, err := zip.OpenReader(name)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, docname.Errorf(docname.ENOTFOUND, "file not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return zr, nil
}

// readPart reads a member of the archive.
func readPart(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open part %s: %w", name, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// readXML parses a member of the archive as XML.
func readXML(zr *zip.Reader, name string) (*etree.Document, error) {
	b, err := readPart(zr, name)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(b); err != nil {
		return nil, fmt.Errorf("parse part %s: %w", name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse part %s: no root element", name)
	}
	return doc, nil
}

// resolvePart resolves a relationship or manifest reference against the
// directory of the part that contains it. Absolute targets are rooted at
// the archive.
func resolvePart(baseDir, ref string) string {
	ref = strings.SplitN(ref, "#", 2)[0]
	if strings.HasPrefix(ref, "/") {
		return strings.TrimPrefix(path.Clean(ref), "/")
	}
	return path.Join(baseDir, ref)
}

// runText concatenates run text beneath e in document order. Elements named
// t contribute their text, tab a tab, and br or cr a newline. Property
// elements (pPr, rPr, tabLst inside them) and elements in skip are not
// descended into.
func runText(e *etree.Element, sb *strings.Builder, skip map[string]bool) {
	for _, c := range e.ChildElements() {
		if skip[c.Tag] || isProperties(c.Tag) {
			continue
		}
		switch c.Tag {
		case "t":
			sb.WriteString(c.Text())
		case "tab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		default:
			runText(c, sb, skip)
		}
	}
}

// isProperties reports whether tag names an OOXML property element such as
// w:pPr, w:rPr, a:pPr, or a:endParaRPr.
func isProperties(tag string) bool {
	return strings.HasSuffix(tag, "Pr")
}
