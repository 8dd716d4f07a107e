package docgrab

import "context"

// Fetcher retrieves the readable text of a page.
// Implementations may go through an extraction proxy or fetch the page
// directly and extract its content locally.
type Fetcher interface {
	// Fetch returns the extracted text of the page at url.
	// Any error is treated as transient by callers that retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// FetchResult is the outcome of fetching one URL.
// A non-nil Err marks the content as absent.
type FetchResult struct {
	URL     string
	Content string
	Err     error
}

// OK reports whether the fetch produced usable content.
func (r FetchResult) OK() bool {
	return r.Err == nil && r.Content != ""
}

// FetchProgress reports progress while URLs are fetched.
type FetchProgress struct {
	URL       string
	Index     int // 0-based position in the input list
	Completed int
	Total     int
	Error     error
}

// FetchProgressFunc is called as each URL finishes.
type FetchProgressFunc func(FetchProgress)
