package docgrab

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML. Links are kept so that
	// link discovery still sees them once the content is converted to text.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Used in direct mode, where pages are fetched without the reader proxy.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL.
	Extract(html, pageURL string) (*ExtractResult, error)
}
