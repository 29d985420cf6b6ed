package etree_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docxDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Quarterly </w:t></w:r><w:r><w:t>Report</w:t></w:r></w:p>
    <w:p><w:r><w:t>Revenue</w:t><w:tab/><w:t>up 12%</w:t></w:r></w:p>
    <w:tbl><w:tr><w:tc><w:p><w:r><w:t>table cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
    <w:p><w:hyperlink><w:r><w:t>see appendix</w:t></w:r></w:hyperlink></w:p>
    <w:p><w:del><w:r><w:delText>removed</w:delText></w:r></w:del><w:r><w:t>kept</w:t></w:r></w:p>
    <w:sectPr/>
  </w:body>
</w:document>`

func TestDocxExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("concatenates body paragraphs in order", func(t *testing.T) {
		t.Parallel()

		path := writeZip(t, "report.docx",
			part{name: "[Content_Types].xml", body: `<Types/>`},
			part{name: "word/document.xml", body: docxDocument},
		)

		content, err := etree.NewDocxExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, docname.ContentText, content.Kind)
		assert.Equal(t, "Quarterly Report\nRevenue\tup 12%\nsee appendix\nkept", content.Text)
	})

	t.Run("ignores tab stops in paragraph properties", func(t *testing.T) {
		t.Parallel()

		doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/><w:tab w:val="right" w:pos="9000"/></w:tabs></w:pPr>
<w:r><w:rPr><w:b/></w:rPr><w:t>Invoice</w:t></w:r></w:p>
</w:body></w:document>`
		path := writeZip(t, "invoice.docx", part{name: "word/document.xml", body: doc})

		content, err := etree.NewDocxExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "Invoice", content.Text)
	})

	t.Run("skips table paragraphs", func(t *testing.T) {
		t.Parallel()

		path := writeZip(t, "report.docx", part{name: "word/document.xml", body: docxDocument})

		content, err := etree.NewDocxExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.NotContains(t, content.Text, "table cell")
	})

	t.Run("missing file returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewDocxExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "x.docx"))

		require.Error(t, err)
		assert.Equal(t, docname.ENOTFOUND, docname.ErrorCode(err))
	})

	t.Run("non-zip file returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "fake.docx")
		require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

		_, err := etree.NewDocxExtractor().Extract(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, docname.EINTERNAL, docname.ErrorCode(err))
	})

	t.Run("archive without document part returns error", func(t *testing.T) {
		t.Parallel()

		path := writeZip(t, "empty.docx", part{name: "[Content_Types].xml", body: `<Types/>`})

		_, err := etree.NewDocxExtractor().Extract(context.Background(), path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "word/document.xml")
	})
}
