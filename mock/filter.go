package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.RelevanceFilter = (*RelevanceFilter)(nil)

// RelevanceFilter is a mock implementation of docgrab.RelevanceFilter.
type RelevanceFilter struct {
	FilterFn func(ctx context.Context, seedURL string, candidates []string) ([]string, error)
}

func (f *RelevanceFilter) Filter(ctx context.Context, seedURL string, candidates []string) ([]string, error) {
	return f.FilterFn(ctx, seedURL, candidates)
}
