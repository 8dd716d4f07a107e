// Package crawl fetches pages concurrently with per-URL retry.
package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/docgrab"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs fetched at once when
// Engine.Concurrency is not set.
const DefaultConcurrency = 10

// Engine fetches many URLs through a shared Fetcher.
//
// Each URL is retried independently. A URL that exhausts its attempts
// yields a result with Err set; it never fails the batch or holds up the
// other URLs.
type Engine struct {
	Fetcher     docgrab.Fetcher
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// indexedResult carries a result back to the collector with its input position.
type indexedResult struct {
	index  int
	result docgrab.FetchResult
}

// FetchAll fetches every URL and returns one result per URL in input order,
// regardless of the order in which fetches complete.
// The progress callback, if provided, is called from the calling goroutine
// once per URL as it finishes.
func (e *Engine) FetchAll(ctx context.Context, urls []string, progress docgrab.FetchProgressFunc) []docgrab.FetchResult {
	results := make([]docgrab.FetchResult, len(urls))
	if len(urls) == 0 {
		return results
	}

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan indexedResult, len(urls))

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- indexedResult{index: i, result: e.FetchOne(ctx, url)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for r := range resultCh {
		completed++
		results[r.index] = r.result

		if progress != nil {
			progress(docgrab.FetchProgress{
				URL:       r.result.URL,
				Index:     r.index,
				Completed: completed,
				Total:     len(urls),
				Error:     r.result.Err,
			})
		}
	}

	return results
}

// FetchOne fetches a single URL with the engine's retry policy.
func (e *Engine) FetchOne(ctx context.Context, url string) docgrab.FetchResult {
	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	text, err := FetchWithRetryDelays(ctx, url, e.Fetcher.Fetch, e.Logger, delays)
	return docgrab.FetchResult{
		URL:     url,
		Content: text,
		Err:     err,
	}
}
