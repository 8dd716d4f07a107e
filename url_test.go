package docgrab_test

import (
	"testing"

	"github.com/fwojciec/docgrab"
	"github.com/stretchr/testify/assert"
)

func TestExtractURLs(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates repeated URLs", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("see https://a.com/x and https://a.com/x again")

		assert.Equal(t, []string{"https://a.com/x"}, urls)
	})

	t.Run("preserves first-occurrence order", func(t *testing.T) {
		t.Parallel()

		text := "https://b.com/2 then https://a.com/1 then https://b.com/2 then http://c.com"

		urls := docgrab.ExtractURLs(text)

		assert.Equal(t, []string{"https://b.com/2", "https://a.com/1", "http://c.com"}, urls)
	})

	t.Run("stops at markdown link delimiters", func(t *testing.T) {
		t.Parallel()

		text := `[Guide](https://example.com/guide) and [[https://example.com/ref]] and "https://example.com/q"`

		urls := docgrab.ExtractURLs(text)

		assert.Equal(t, []string{
			"https://example.com/guide",
			"https://example.com/ref",
			"https://example.com/q",
		}, urls)
	})

	t.Run("stops at whitespace", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("https://example.com/a\thttps://example.com/b\nhttps://example.com/c next")

		assert.Equal(t, []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}, urls)
	})

	t.Run("keeps trailing sentence punctuation", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("Read the docs at https://example.com/docs.")

		assert.Equal(t, []string{"https://example.com/docs."}, urls)
	})

	t.Run("treats URLs differing by trailing slash as distinct", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("https://example.com/docs https://example.com/docs/")

		assert.Equal(t, []string{"https://example.com/docs", "https://example.com/docs/"}, urls)
	})

	t.Run("scheme is case-sensitive", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("HTTPS://example.com/upper https://example.com/lower")

		assert.Equal(t, []string{"https://example.com/lower"}, urls)
	})

	t.Run("drops matches without a host", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("broken https:///path and ok https://example.com")

		assert.Equal(t, []string{"https://example.com"}, urls)
	})

	t.Run("keeps matches with bad escapes in the path", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("https://example.com/%zz https://example.com/ok")

		assert.Equal(t, []string{"https://example.com/%zz", "https://example.com/ok"}, urls)
	})

	t.Run("keeps a URL wrapped in backticks with the closing backtick attached", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("Use `https://api.example.com` as base")

		assert.Equal(t, []string{"https://api.example.com`"}, urls)
	})

	t.Run("keeps a URL with a non-numeric port", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("see https://example.com:abc/x")

		assert.Equal(t, []string{"https://example.com:abc/x"}, urls)
	})

	t.Run("keeps a URL with a pipe in the host", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("see https://example.com|foo")

		assert.Equal(t, []string{"https://example.com|foo"}, urls)
	})

	t.Run("drops matches with an unbalanced IPv6 bracket", func(t *testing.T) {
		t.Parallel()

		urls := docgrab.ExtractURLs("https://[::1/x https://example.com/ok")

		assert.Equal(t, []string{"https://example.com/ok"}, urls)
	})

	t.Run("returns nil when text has no URLs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docgrab.ExtractURLs("no links here"))
		assert.Nil(t, docgrab.ExtractURLs(""))
	})

	t.Run("every result is valid and unique", func(t *testing.T) {
		t.Parallel()

		text := `Title: Docs
URL Source: https://docs.example.com/

Markdown Content:
[Home](https://docs.example.com/) [API](https://docs.example.com/api)
![logo](https://docs.example.com/logo.png "Logo")
[API again](https://docs.example.com/api) https:///nohost`

		urls := docgrab.ExtractURLs(text)

		seen := make(map[string]bool)
		for _, u := range urls {
			assert.True(t, docgrab.IsValidURL(u), "invalid URL returned: %s", u)
			assert.False(t, seen[u], "duplicate URL returned: %s", u)
			seen[u] = true
		}
		assert.Equal(t, []string{
			"https://docs.example.com/",
			"https://docs.example.com/api",
			"https://docs.example.com/logo.png",
		}, urls)
	})
}

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "https URL", url: "https://example.com/docs", want: true},
		{name: "http URL with port", url: "http://localhost:8080", want: true},
		{name: "missing scheme", url: "example.com/docs", want: false},
		{name: "missing host", url: "https:///docs", want: false},
		{name: "relative path", url: "/docs/intro", want: false},
		{name: "empty string", url: "", want: false},
		{name: "bullet prefix", url: "- https://example.com", want: false},
		{name: "bad escape", url: "https://example.com/%zz", want: true},
		{name: "trailing backtick", url: "https://api.example.com`", want: true},
		{name: "non-numeric port", url: "https://example.com:abc/x", want: true},
		{name: "pipe in host", url: "https://example.com|foo", want: true},
		{name: "query right after host", url: "https://example.com?q=1", want: true},
		{name: "empty authority before query", url: "https://?q=1", want: false},
		{name: "scheme starting with digit", url: "1http://example.com", want: false},
		{name: "unbalanced bracket", url: "http://[::1/x", want: false},
		{name: "bracketed IPv6 host", url: "http://[::1]:8080/x", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docgrab.IsValidURL(tt.url))
		})
	}
}

func TestNormalizeSeedURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare domain gets https", in: "example.com", want: "https://example.com"},
		{name: "https kept", in: "https://example.com/docs", want: "https://example.com/docs"},
		{name: "http kept", in: "http://example.com", want: "http://example.com"},
		{name: "whitespace trimmed", in: "  docs.example.com/intro \n", want: "https://docs.example.com/intro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docgrab.NormalizeSeedURL(tt.in))
		})
	}
}

func TestHostname(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "docs.example.com", docgrab.Hostname("https://docs.example.com/intro"))
	assert.Equal(t, "localhost:8080", docgrab.Hostname("http://localhost:8080/"))
	assert.Equal(t, "example.com", docgrab.Hostname("https://example.com/%zz"))
	assert.Equal(t, "example.com:abc", docgrab.Hostname("https://example.com:abc/x"))
	assert.Equal(t, "example.com", docgrab.Hostname("https://user:pw@example.com/"))
	assert.Empty(t, docgrab.Hostname("example.com/docs"))
}
