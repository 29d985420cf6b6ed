// Package goquery renders HTML as plain text using github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docname"
	"golang.org/x/net/html"
)

// Ensure TextConverter implements docname.Converter at compile time.
var _ docname.Converter = (*TextConverter)(nil)

// blockTags end a line of text.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "section": true, "article": true,
	"dt": true, "dd": true, "table": true, "ul": true, "ol": true,
}

// newlines flattens line breaks inside text nodes; lines are ended only by
// block elements.
var newlines = strings.NewReplacer("\r", " ", "\n", " ")

// TextConverter strips markup and returns the visible text of an HTML
// document, one block per line.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert returns the text of the document body. Scripts, styles, and the
// document head are dropped and runs of whitespace collapse to one space.
func (c *TextConverter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", docname.Errorf(docname.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", docname.Errorf(docname.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("head, script, style, noscript, template").Remove()

	var sb strings.Builder
	for _, n := range doc.Selection.Nodes {
		writeText(&sb, n)
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(newlines.Replace(n.Data))
		return
	case html.ElementNode:
		if blockTags[n.Data] {
			defer sb.WriteByte('\n')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
}
