// Package jina implements docgrab.Fetcher on top of the r.jina.ai reader
// proxy, which renders a page and returns its readable text.
package jina

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/docgrab"
)

// DefaultEndpoint is the reader proxy base URL. The target URL is appended to it.
const DefaultEndpoint = "https://r.jina.ai/"

// clientSlack is added to the proxy's own timeout for the local HTTP deadline.
const clientSlack = 20 * time.Second

// Ensure Fetcher implements docgrab.Fetcher at compile time.
var _ docgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page text through the reader proxy.
// It is safe for concurrent use; all requests share one connection pool.
type Fetcher struct {
	client   *http.Client
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithEndpoint overrides the proxy base URL.
func WithEndpoint(endpoint string) Option {
	return func(f *Fetcher) {
		f.endpoint = endpoint
	}
}

// WithTimeout sets the fetch timeout hint sent to the proxy.
// Defaults to docgrab.DefaultProxyTimeout (10s).
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a Fetcher authenticating with apiKey.
// An empty key is sent as-is and rejected by the proxy at request time.
func NewFetcher(apiKey string, opts ...Option) *Fetcher {
	f := &Fetcher{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		timeout:  docgrab.DefaultProxyTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout + clientSlack,
		}
	}

	return f
}

// Fetch returns the text the proxy extracted from url.
// Non-2xx responses are returned as EUNAVAILABLE errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint+url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("X-Timeout", strconv.Itoa(int(f.timeout/time.Second)))

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", docgrab.Errorf(docgrab.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read proxy response: %w", err)
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
