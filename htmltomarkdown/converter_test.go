package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements docgrab.Converter at compile time.
var _ docgrab.Converter = (*htmltomarkdown.Converter)(nil)

const pageURL = "https://docs.widget.dev/guide/intro"

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Guide</h1><h2>Setup</h2><p>Read this first.</p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "# Guide")
		assert.Contains(t, md, "## Setup")
		assert.Contains(t, md, "Read this first.")
	})

	t.Run("keeps absolute links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://api.widget.dev/ref">the reference</a>.</p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "[the reference](https://api.widget.dev/ref)")
	})

	t.Run("resolves relative links against the page origin", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Next: <a href="/guide/install">Install</a></p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "https://docs.widget.dev/guide/install")
	})

	t.Run("converts code blocks", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code>widget init</code></pre>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "widget init")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Flag</th><th>Default</th></tr></thead>` +
			`<tbody><tr><td>--verbose</td><td>false</td></tr></tbody></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "| Flag")
		assert.Contains(t, md, "--verbose")
	})

	t.Run("converts without a page URL", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>plain</p>`, "")

		require.NoError(t, err)
		assert.Contains(t, md, "plain")
	})

	t.Run("returns invalid error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("\n\t", pageURL)

		require.Error(t, err)
		assert.Equal(t, docgrab.EINVALID, docgrab.ErrorCode(err))
	})
}
