package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/docname"
)

// Ensure extractors implement docname.Extractor at compile time.
var (
	_ docname.Extractor = (*TextExtractor)(nil)
	_ docname.Extractor = (*JSONExtractor)(nil)
	_ docname.Extractor = (*CSVExtractor)(nil)
)

// TextExtractor reads a file as raw text. It serves plain text and source code.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the file's bytes as text. Invalid UTF-8 sequences are
// replaced with U+FFFD.
func (e *TextExtractor) Extract(ctx context.Context, path string) (*docname.Content, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, mapError(err, path)
	}
	return docname.TextContent(strings.ToValidUTF8(string(b), "�")), nil
}

// JSONExtractor decodes a JSON file into a structured value.
type JSONExtractor struct{}

// NewJSONExtractor creates a new JSONExtractor.
func NewJSONExtractor() *JSONExtractor {
	return &JSONExtractor{}
}

// Extract decodes the file's single top-level JSON value.
func (e *JSONExtractor) Extract(ctx context.Context, path string) (*docname.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mapError(err, path)
	}
	defer f.Close()

	var v any
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json %s: %w", path, err)
	}
	return docname.JSONContent(v), nil
}

// CSVExtractor parses a CSV file into rows.
type CSVExtractor struct{}

// NewCSVExtractor creates a new CSVExtractor.
func NewCSVExtractor() *CSVExtractor {
	return &CSVExtractor{}
}

// Extract reads every record. Rows may have differing field counts.
func (e *CSVExtractor) Extract(ctx context.Context, path string) (*docname.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mapError(err, path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	return docname.RowsContent(rows), nil
}
