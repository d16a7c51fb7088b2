package trendstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faq-match/internal/domain/match"
)

func TestMemoryStoreTopQueries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementQuery(ctx, "환불", "환불"))
	}
	require.NoError(t, store.IncrementQuery(ctx, "영업시간", "영업 시간"))
	require.NoError(t, store.RecordMiss(ctx, "택배", "택배"))

	queries, err := store.TopQueries(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []match.TrendingQuery{
		{Query: "환불", Count: 3},
		{Query: "영업 시간", Count: 1},
	}, queries)

	misses, err := store.TopMisses(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []match.TrendingQuery{{Query: "택배", Count: 1}}, misses)
}

func TestMemoryStoreFirstDisplayWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.IncrementQuery(ctx, "환불방법", "환불 방법"))
	require.NoError(t, store.IncrementQuery(ctx, "환불방법", "환불  방법?"))

	queries, err := store.TopQueries(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []match.TrendingQuery{{Query: "환불 방법", Count: 2}}, queries)
}

func TestMemoryStoreLimitAndTieBreak(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.IncrementQuery(ctx, "b", "b"))
	require.NoError(t, store.IncrementQuery(ctx, "a", "a"))
	require.NoError(t, store.IncrementQuery(ctx, "c", "c"))
	require.NoError(t, store.IncrementQuery(ctx, "c", "c"))

	queries, err := store.TopQueries(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []match.TrendingQuery{
		{Query: "c", Count: 2},
		{Query: "a", Count: 1},
	}, queries)
}

func TestMemoryStoreIgnoresEmptyCanonical(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.IncrementQuery(ctx, "", "whitespace only"))

	queries, err := store.TopQueries(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, queries)
}
