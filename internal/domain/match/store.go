package match

import "context"

// StatsStore records query statistics. Implementations are best-effort: the
// service logs failures and never lets them break a match response.
type StatsStore interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	RecordMiss(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
	TopMisses(ctx context.Context, limit int) ([]TrendingQuery, error)
}
