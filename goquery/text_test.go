package goquery_test

import (
	"testing"

	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("returns block text one per line", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Ignored</title></head>
<body><h1>Chapter One</h1><p>It was a   dark
night.</p><ul><li>first</li><li>second</li></ul></body></html>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Chapter One\nIt was a dark night.\nfirst\nsecond", text)
	})

	t.Run("keeps inline elements on the same line", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert(`<p>Total <b>due</b> <em>today</em></p>`)

		require.NoError(t, err)
		assert.Equal(t, "Total due today", text)
	})

	t.Run("drops scripts and styles", func(t *testing.T) {
		t.Parallel()

		html := `<body><style>p{color:red}</style><script>alert(1)</script><p>Visible</p></body>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Visible", text)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTextConverter().Convert("")

		require.Error(t, err)
		assert.Equal(t, docname.EINVALID, docname.ErrorCode(err))
	})
}
