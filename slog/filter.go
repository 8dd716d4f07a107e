package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure LoggingFilter implements docgrab.RelevanceFilter.
var _ docgrab.RelevanceFilter = (*LoggingFilter)(nil)

// LoggingFilter wraps a RelevanceFilter with debug logging.
type LoggingFilter struct {
	next   docgrab.RelevanceFilter
	logger *slog.Logger
}

// NewLoggingFilter creates a new LoggingFilter.
func NewLoggingFilter(next docgrab.RelevanceFilter, logger *slog.Logger) *LoggingFilter {
	return &LoggingFilter{next: next, logger: logger}
}

// Filter delegates to the wrapped filter and logs how many links survived.
func (f *LoggingFilter) Filter(ctx context.Context, seedURL string, candidates []string) (urls []string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("relevance filter",
			"url", seedURL,
			"candidates", len(candidates),
			"kept", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Filter(ctx, seedURL, candidates)
}
