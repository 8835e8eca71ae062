package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-locator-service/internal/adapters/repositories"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/db"
)

func openCacheDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, repositories.InitSchema(context.Background(), conn, repositories.DialectSQLite))
	return conn
}

func TestSqliteSuggestionCacheRoundTripAndUpsert(t *testing.T) {
	c := NewSqliteSuggestionCache(openCacheDB(t), time.Hour)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "local|kandy")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "local|kandy", []domain.PlaceSuggestion{{ID: "k1"}}))
	require.NoError(t, c.Put(ctx, "local|kandy", []domain.PlaceSuggestion{{ID: "k2", TypeTags: []string{"locality"}}}))

	got, ok, err := c.Get(ctx, "local|kandy")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "k2", got[0].ID)
	assert.Equal(t, []string{"locality"}, got[0].TypeTags)
}

func TestSqliteSuggestionCacheTTL(t *testing.T) {
	c := NewSqliteSuggestionCache(openCacheDB(t), time.Minute)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	require.NoError(t, c.Put(ctx, "k", []domain.PlaceSuggestion{{ID: "x"}}))

	c.now = func() time.Time { return base.Add(30 * time.Second) }
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSqliteSuggestionCacheNilDB(t *testing.T) {
	c := &SqliteSuggestionCache{}
	_, _, err := c.Get(context.Background(), "k")
	require.Error(t, err)
	require.Error(t, c.Put(context.Background(), "k", nil))
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.False(t, expired(now.Add(-time.Hour), 0, now))
	assert.True(t, expired(now.Add(-time.Hour), time.Minute, now))
	assert.False(t, expired(now.Add(-time.Second), time.Minute, now))
}
