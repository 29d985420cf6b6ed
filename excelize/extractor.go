// Package excelize extracts spreadsheet content using github.com/xuri/excelize/v2.
package excelize

import (
	"bytes"
	"context"
	"errors"
	iofs "io/fs"
	"strconv"

	"github.com/fwojciec/docname"
	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"
)

// Ensure Extractor implements docname.Extractor at compile time.
var _ docname.Extractor = (*Extractor)(nil)

// Extractor renders the first worksheet of an .xlsx workbook as a text table.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract loads the first sheet and renders it as a table. The first row
// is the header and each data row is prefixed with its zero-based index.
func (e *Extractor) Extract(ctx context.Context, path string) (*docname.Content, error) {
	f, err := excelize.OpenFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, docname.Errorf(docname.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return docname.TextContent(""), nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return docname.TextContent(RenderTable(rows)), nil
}

// RenderTable formats rows as an aligned table without borders.
// Short rows are padded to the widest row.
func RenderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	pad := func(r []string) []string {
		out := make([]string, width)
		copy(out, r)
		return out
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(append([]string{""}, pad(rows[0])...))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, r := range rows[1:] {
		table.Append(append([]string{strconv.Itoa(i)}, pad(r)...))
	}
	table.Render()

	return buf.String()
}
