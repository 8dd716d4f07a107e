package crawl

import (
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docgrab"
)

// ComputeHash returns a short hex checksum of content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Summary describes an assembled document and the fetches behind it.
type Summary struct {
	Pages    int
	Sections int
	Failed   int
	Bytes    int
	Checksum string
}

// Summarize tallies results and fingerprints the content they were
// assembled into.
func Summarize(results []docgrab.FetchResult, content string) Summary {
	s := Summary{
		Pages:    len(results),
		Bytes:    len(content),
		Checksum: ComputeHash(content),
	}
	for _, r := range results {
		if r.OK() {
			s.Sections++
		} else {
			s.Failed++
		}
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("pages", s.Pages),
		slog.Int("sections", s.Sections),
		slog.Int("failed", s.Failed),
		slog.Int("bytes", s.Bytes),
		slog.String("checksum", s.Checksum),
	)
}
