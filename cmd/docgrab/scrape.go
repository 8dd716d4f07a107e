package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/crawl"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	raw := c.URL
	if raw == "" {
		fmt.Fprint(deps.Stdout, "Please enter a URL for the documentation: ")
		line, err := readLine(deps.Stdin)
		if err != nil {
			return err
		}
		raw = line
	}

	seed := docgrab.NormalizeSeedURL(raw)
	fmt.Fprintf(deps.Stdout, "You entered: %s\n", seed)

	initial := docgrab.FetchResult{URL: seed}
	if docgrab.IsValidURL(seed) {
		initial = deps.Engine.FetchOne(deps.Ctx, seed)
	}
	if !initial.OK() {
		deps.Logger.Warn("seed fetch failed", "url", seed, "err", initial.Err)
		fmt.Fprintln(deps.Stdout, "❌ Failed to scrape the initial URL. ❌")
		return nil
	}

	urls := docgrab.ExtractURLs(initial.Content)
	fmt.Fprintf(deps.Stdout, "Found %d unique URLs.\n", len(urls))

	kept, err := deps.Filter.Filter(deps.Ctx, seed, urls)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docgrab.ErrorMessage(err))
		return err
	}
	filtered := make([]string, 0, len(kept))
	for _, u := range kept {
		if !docgrab.IsValidURL(u) {
			deps.Logger.Warn("dropping invalid filtered URL", "url", u)
			continue
		}
		filtered = append(filtered, u)
	}
	fmt.Fprintf(deps.Stdout, "Filtered down to %d relevant URLs.\n", len(filtered))

	name := docgrab.OutputFilename(seed)
	results := deps.Engine.FetchAll(deps.Ctx, filtered, func(p docgrab.FetchProgress) {
		deps.Logger.Debug("page done",
			"url", p.URL,
			"completed", p.Completed,
			"total", p.Total,
			"err", p.Error,
		)
	})
	if err := deps.Ctx.Err(); err != nil {
		return err
	}

	for i, r := range results {
		if r.OK() {
			fmt.Fprintf(deps.Stdout, "URL #%d Scraped ✅ - %s\n", i+1, r.URL)
		} else {
			fmt.Fprintf(deps.Stdout, "URL #%d Found an Error and Skipped ❌ - %s\n", i+1, r.URL)
		}
	}

	content := docgrab.Assemble(results)
	if err := deps.Writer.WriteDocument(deps.Ctx, name, content); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", name, err)
		return err
	}

	path := filepath.Join(c.Output, name)
	fmt.Fprintf(deps.Stdout, "📃 Content saved to %s. 📃\n", path)
	deps.Logger.Info("document saved",
		"file", path,
		"document", crawl.Summarize(results, content),
	)

	if deps.Tokens != nil {
		count, err := deps.Tokens.CountTokens(deps.Ctx, content)
		if err != nil {
			deps.Logger.Warn("token count failed", "err", err)
			return nil
		}
		fmt.Fprintf(deps.Stdout, "Estimated tokens: %d\n", count)
	}

	return nil
}

// readLine reads a single line from r. A final line without a newline is
// accepted; an empty stream yields "".
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read URL: %w", err)
	}
	return line, nil
}
