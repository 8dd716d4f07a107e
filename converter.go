package docgrab

// Converter converts extracted HTML to the Markdown text that ends up in
// the output document.
type Converter interface {
	// Convert renders html as Markdown. Relative links are resolved
	// against pageURL so they remain discoverable as absolute URLs.
	Convert(html, pageURL string) (string, error)
}
