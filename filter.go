package docgrab

import (
	"context"
	"fmt"
	"strings"
)

// RelevanceFilter narrows discovered links down to documentation pages.
type RelevanceFilter interface {
	// Filter returns the candidates judged relevant to the documentation
	// hosted at seedURL. Every returned string is a valid URL, but it is not
	// guaranteed to be one of the candidates verbatim.
	Filter(ctx context.Context, seedURL string, candidates []string) ([]string, error)
}

// ParseURLList parses a newline-separated list of URLs as returned by a
// language model. A surrounding Markdown code fence is removed, each line
// is trimmed and lines that are not valid URLs are dropped.
func ParseURLList(text string) []string {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var urls []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if IsValidURL(line) {
			urls = append(urls, line)
		}
	}
	return urls
}

// stripCodeFence removes a ``` fence (with optional language tag) wrapping text.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// Drop a language tag such as "text" on the opening line.
	if idx := strings.Index(text, "\n"); idx >= 0 && !strings.Contains(text[:idx], "://") {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// FilterSystemPrompt is the system instruction sent to every relevance
// filter backend.
const FilterSystemPrompt = "You are a URL curator tasked with filtering out obviously unrelated content from a list of URLs for a software tool or API."

// BuildFilterPrompt builds the user prompt asking a model to keep only the
// documentation-related candidates for the site hosting seedURL.
func BuildFilterPrompt(seedURL string, candidates []string) string {
	domain := Hostname(seedURL)

	var sb strings.Builder
	fmt.Fprintf(&sb, "We need to extract documentation for a tool with the base domain %s. Here's a list of URLs we've found:\n\n", domain)
	sb.WriteString(strings.Join(candidates, "\n"))
	sb.WriteString("\n\nPlease filter this list based on the following criteria:\n")
	sb.WriteString("1. Keep URLs that appear to be related to documentation, guides, tutorials, or API references.\n")
	fmt.Fprintf(&sb, "2. Include relevant subdomains like 'docs.%[1]s', 'api.%[1]s', or 'developer.%[1]s'.\n", domain)
	sb.WriteString("3. Remove URLs for obviously unrelated content such as community forums, status pages, blog posts, or contact pages.\n\n")
	sb.WriteString("Respond with a list of filtered URLs, one per line, without any additional text or formatting. Ensure all URLs are valid.")
	return sb.String()
}
