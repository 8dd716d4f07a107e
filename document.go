package docgrab

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// separator frames each section header in the assembled document.
var separator = strings.Repeat("=", 80)

// Section is one fetched page within the assembled document.
type Section struct {
	Index   int // 1-based position in the fetched URL list
	URL     string
	Content string
}

// String renders the section with its delimited header.
func (s Section) String() string {
	return fmt.Sprintf("\n%s\nSection %d: Content from %s\n%s\n\n%s\n\n",
		separator, s.Index, s.URL, separator, s.Content)
}

// Sections returns a section for each usable result, in order.
// Index is the result's position among all results, so failed fetches
// leave a gap in the numbering.
func Sections(results []FetchResult) []Section {
	var sections []Section
	for i, r := range results {
		if !r.OK() {
			continue
		}
		sections = append(sections, Section{
			Index:   i + 1,
			URL:     r.URL,
			Content: r.Content,
		})
	}
	return sections
}

// Assemble renders results into a single text document.
func Assemble(results []FetchResult) string {
	var b strings.Builder
	for _, s := range Sections(results) {
		b.WriteString(s.String())
	}
	return b.String()
}

// OutputFilename derives the output file name from the seed URL's host.
//
//	https://www.example.com        → example_docs.txt
//	https://docs.example.com/intro → example_docs.txt
//	https://api.tools.dev          → api_tools_docs.txt
//	https://example.com            → example_docs.txt
func OutputFilename(seedURL string) string {
	return domainLabel(seedURL) + "_docs.txt"
}

func domainLabel(seedURL string) string {
	var host string
	if u, err := url.Parse(seedURL); err == nil {
		host = u.Hostname()
	}
	if host == "" {
		return "site"
	}

	parts := strings.Split(host, ".")
	switch {
	case len(parts) > 1 && parts[0] == "www":
		return parts[1]
	case len(parts) > 2 && parts[0] == "docs":
		return parts[1]
	case len(parts) > 2:
		return parts[0] + "_" + parts[1]
	default:
		return parts[0]
	}
}

// DocumentWriter persists an assembled document.
type DocumentWriter interface {
	// WriteDocument stores content under name, replacing any previous version.
	WriteDocument(ctx context.Context, name, content string) error
}

// TokenCounter estimates how many model tokens a document occupies.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
