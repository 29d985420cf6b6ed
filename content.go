package docname

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
)

// ContentKind identifies the shape of extracted content.
type ContentKind string

// ContentKind constants.
const (
	ContentText ContentKind = "text"
	ContentJSON ContentKind = "json"
	ContentRows ContentKind = "rows"
)

// Content is the normalized result of extracting a document.
// Exactly one of Text, Value, or Rows is meaningful, selected by Kind.
type Content struct {
	Kind ContentKind

	// Text holds the document text for ContentText.
	Text string

	// Value holds the decoded JSON value for ContentJSON.
	Value any

	// Rows holds parsed records for ContentRows.
	Rows [][]string
}

// TextContent returns text content.
func TextContent(text string) *Content {
	return &Content{Kind: ContentText, Text: text}
}

// JSONContent returns structured content decoded from JSON.
func JSONContent(v any) *Content {
	return &Content{Kind: ContentJSON, Value: v}
}

// RowsContent returns tabular content.
func RowsContent(rows [][]string) *Content {
	return &Content{Kind: ContentRows, Rows: rows}
}

// IsEmpty reports whether the content carries nothing to summarize.
func (c *Content) IsEmpty() bool {
	if c == nil {
		return true
	}
	switch c.Kind {
	case ContentJSON:
		return c.Value == nil
	case ContentRows:
		return len(c.Rows) == 0
	default:
		return c.Text == ""
	}
}

// String renders the content as text suitable for a prompt.
// JSON is re-encoded compactly and rows are written as CSV.
func (c *Content) String() string {
	if c == nil {
		return ""
	}
	switch c.Kind {
	case ContentJSON:
		b, err := json.Marshal(c.Value)
		if err != nil {
			return fmt.Sprint(c.Value)
		}
		return string(b)
	case ContentRows:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		_ = w.WriteAll(c.Rows)
		return buf.String()
	default:
		return c.Text
	}
}

// Extractor extracts content from a file on disk.
type Extractor interface {
	// Extract reads the file at path and returns its content.
	// Returns ENOTFOUND if the file does not exist and EUNSUPPORTED if
	// no strategy handles the file's extension.
	Extract(ctx context.Context, path string) (*Content, error)
}

// ExtractorRegistry maps file extensions to extraction strategies.
type ExtractorRegistry interface {
	Extractor

	// Register adds a strategy for one or more extensions (with leading dot).
	// Registering an extension again replaces the previous strategy.
	Register(e Extractor, exts ...string)

	// Get returns the strategy for an extension, or nil if none.
	Get(ext string) Extractor

	// Extensions returns registered extensions in registration order.
	Extensions() []string
}
