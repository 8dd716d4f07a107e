// Package readability extracts article content with go-readability. It is
// used as a second opinion when the primary extractor finds nothing.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docgrab"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Relative links
// are made absolute against pageURL when it parses.
func (e *Extractor) Extract(rawHTML, pageURL string) (*docgrab.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docgrab.Errorf(docgrab.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	return &docgrab.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
