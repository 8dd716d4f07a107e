package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docgrab"
)

// Ensure DirectFetcher implements docgrab.Fetcher at compile time.
var _ docgrab.Fetcher = (*DirectFetcher)(nil)

// DirectFetcher fetches pages without the reader proxy by running raw HTML
// through extraction and Markdown conversion locally. Its output mirrors the
// proxy's text layout so the rest of the pipeline treats both alike.
type DirectFetcher struct {
	fetcher   docgrab.Fetcher
	extractor docgrab.Extractor
	converter docgrab.Converter
}

// NewDirectFetcher creates a DirectFetcher from its pipeline stages.
func NewDirectFetcher(fetcher docgrab.Fetcher, extractor docgrab.Extractor, converter docgrab.Converter) *DirectFetcher {
	return &DirectFetcher{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
	}
}

// Fetch returns the main content of the page at url as Markdown text.
func (f *DirectFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	result, err := f.extractor.Extract(html, url)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", url, err)
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return "", docgrab.Errorf(docgrab.ENOTFOUND, "no main content in %s", url)
	}

	markdown, err := f.converter.Convert(result.ContentHTML, url)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", url, err)
	}

	var b strings.Builder
	if result.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n\n", result.Title)
	}
	fmt.Fprintf(&b, "URL Source: %s\n\nMarkdown Content:\n%s", url, markdown)
	return b.String(), nil
}

// Close releases the underlying fetcher.
func (f *DirectFetcher) Close() error {
	return f.fetcher.Close()
}

// Ensure FallbackExtractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = FallbackExtractor(nil)

// FallbackExtractor tries each extractor in order and returns the first
// result that has content.
type FallbackExtractor []docgrab.Extractor

// Extract returns the first non-empty extraction. If every extractor comes
// back empty, the last empty result is returned; if all fail, the last error.
func (fe FallbackExtractor) Extract(html, pageURL string) (*docgrab.ExtractResult, error) {
	var empty *docgrab.ExtractResult
	var lastErr error
	for _, e := range fe {
		result, err := e.Extract(html, pageURL)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(result.ContentHTML) != "" {
			return result, nil
		}
		empty = result
	}
	if empty != nil {
		return empty, nil
	}
	if lastErr == nil {
		lastErr = docgrab.Errorf(docgrab.EINTERNAL, "no extractors configured")
	}
	return nil, lastErr
}
