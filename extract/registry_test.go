package extract_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/extract"
	"github.com/fwojciec/docname/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func stubExtractor(text string) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(context.Context, string) (*docname.Content, error) {
			return docname.TextContent(text), nil
		},
	}
}

func TestRegistry_Extract(t *testing.T) {
	t.Parallel()

	t.Run("dispatches by extension", func(t *testing.T) {
		t.Parallel()

		r := extract.NewRegistry()
		r.Register(stubExtractor("plain"), ".txt")
		r.Register(stubExtractor("pdf"), ".pdf")

		path := writeFile(t, "report.pdf", "%PDF")

		content, err := r.Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "pdf", content.Text)
	})

	t.Run("matches extension case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := extract.NewRegistry()
		r.Register(stubExtractor("plain"), ".txt")

		path := writeFile(t, "NOTES.TXT", "hi")

		content, err := r.Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "plain", content.Text)
	})

	t.Run("passes path to strategy", func(t *testing.T) {
		t.Parallel()

		var got string
		r := extract.NewRegistry()
		r.Register(&mock.Extractor{
			ExtractFn: func(_ context.Context, path string) (*docname.Content, error) {
				got = path
				return docname.TextContent("x"), nil
			},
		}, ".go")

		path := writeFile(t, "main.go", "package main")

		_, err := r.Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		r := extract.NewRegistry()
		r.Register(stubExtractor("plain"), ".txt")

		_, err := r.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Equal(t, docname.ENOTFOUND, docname.ErrorCode(err))
	})

	t.Run("returns EUNSUPPORTED for unknown extension", func(t *testing.T) {
		t.Parallel()

		r := extract.NewRegistry()
		r.Register(stubExtractor("plain"), ".txt")

		path := writeFile(t, "image.png", "\x89PNG")

		_, err := r.Extract(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, docname.EUNSUPPORTED, docname.ErrorCode(err))
	})

	t.Run("returns EUNSUPPORTED for file without extension", func(t *testing.T) {
		t.Parallel()

		r := extract.NewRegistry()
		r.Register(stubExtractor("plain"), ".txt")

		path := writeFile(t, "Makefile", "all:")

		_, err := r.Extract(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, docname.EUNSUPPORTED, docname.ErrorCode(err))
	})

	t.Run("propagates strategy errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("corrupt document")
		r := extract.NewRegistry()
		r.Register(&mock.Extractor{
			ExtractFn: func(context.Context, string) (*docname.Content, error) {
				return nil, boom
			},
		}, ".docx")

		path := writeFile(t, "broken.docx", "not a zip")

		_, err := r.Extract(context.Background(), path)

		assert.ErrorIs(t, err, boom)
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("later registration replaces earlier", func(t *testing.T) {
		t.Parallel()

		first := stubExtractor("first")
		second := stubExtractor("second")
		r := extract.NewRegistry()
		r.Register(first, ".txt")
		r.Register(second, ".txt")

		assert.Same(t, second, r.Get(".txt"))
		assert.Equal(t, []string{".txt"}, r.Extensions())
	})

	t.Run("accepts extension without dot", func(t *testing.T) {
		t.Parallel()

		e := stubExtractor("x")
		r := extract.NewRegistry()
		r.Register(e, "csv")

		assert.Same(t, e, r.Get(".csv"))
	})

	t.Run("extensions keep registration order", func(t *testing.T) {
		t.Parallel()

		e := stubExtractor("x")
		r := extract.NewRegistry()
		r.Register(e, ".txt", ".json")
		r.Register(e, ".ppt", ".pptx")

		assert.Equal(t, []string{".txt", ".json", ".ppt", ".pptx"}, r.Extensions())
	})

	t.Run("get returns nil for unknown extension", func(t *testing.T) {
		t.Parallel()

		r := extract.NewRegistry()

		assert.Nil(t, r.Get(".xyz"))
	})
}

func TestCodeExtensions(t *testing.T) {
	t.Parallel()

	assert.Contains(t, extract.CodeExtensions, ".go")
	assert.Contains(t, extract.CodeExtensions, ".html")
	assert.Contains(t, extract.CodeExtensions, ".zsh")
	assert.Len(t, extract.CodeExtensions, 18)
}
