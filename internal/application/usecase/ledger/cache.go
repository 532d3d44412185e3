package ledger

import "context"

// SummaryCache memoizes computed summaries keyed by Filter.CacheKey. It is a
// pure optimization: implementations may lose entries at any time and the
// use case recomputes on miss or error, so cache health never affects
// correctness.
type SummaryCache interface {
	// Get returns the cached summary for key, or nil on miss.
	Get(ctx context.Context, key string) (*Summary, error)

	// Set stores summary under key.
	Set(ctx context.Context, key string, summary *Summary) error
}
