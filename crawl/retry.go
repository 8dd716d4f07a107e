package crawl

import (
	"context"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// MaxAttempts is the number of times a URL is tried before giving up.
const MaxAttempts = 3

// DefaultRetryDelays returns the backoff delays between attempts: 1s, 2s.
// Delay k follows failed attempt k and is 2^k seconds.
func DefaultRetryDelays() []time.Duration {
	delays := make([]time.Duration, MaxAttempts-1)
	for k := range delays {
		delays[k] = time.Duration(1<<k) * time.Second
	}
	return delays
}

// FetchWithRetryDelays fetches a URL, retrying after each failure with the
// given delays. It makes len(delays)+1 attempts. The logger, if provided, is
// called before each retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := fetch(ctx, url)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// No wait after the final attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		if logger != nil {
			logger("retry %s (attempt %d/%d) in %s: %v", url, attempt+2, maxAttempts, delays[attempt], err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return "", lastErr
}
