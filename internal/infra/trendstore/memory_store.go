package trendstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/faq-match/internal/domain/match"
)

// MemoryStore is an in-memory StatsStore used for tests/dev and as the
// fallback when no Valkey address is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	queries  map[string]int64
	misses   map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		queries:  make(map[string]int64),
		misses:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// IncrementQuery bumps the counter for a canonical query and records the
// first display string seen for it.
func (s *MemoryStore) IncrementQuery(_ context.Context, canonical, display string) error {
	s.increment(s.queries, canonical, display)
	return nil
}

// RecordMiss tracks queries that matched nothing.
func (s *MemoryStore) RecordMiss(_ context.Context, canonical, display string) error {
	s.increment(s.misses, canonical, display)
	return nil
}

func (s *MemoryStore) increment(counters map[string]int64, canonical, display string) {
	if canonical == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	counters[canonical]++
	if _, exists := s.displays[canonical]; !exists && display != "" {
		s.displays[canonical] = display
	}
}

// TopQueries returns the most frequent matched questions.
func (s *MemoryStore) TopQueries(_ context.Context, limit int) ([]match.TrendingQuery, error) {
	return s.top(s.queries, limit), nil
}

// TopMisses returns the most frequent unmatched questions.
func (s *MemoryStore) TopMisses(_ context.Context, limit int) ([]match.TrendingQuery, error) {
	return s.top(s.misses, limit), nil
}

func (s *MemoryStore) top(counters map[string]int64, limit int) []match.TrendingQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(counters)
	}
	items := make([]match.TrendingQuery, 0, len(counters))
	for canonical, count := range counters {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, match.TrendingQuery{Query: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

var _ match.StatsStore = (*MemoryStore)(nil)
