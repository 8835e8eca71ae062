package places

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-locator-service/internal/domain"
)

type memCache struct {
	mu      sync.Mutex
	m       map[string][]domain.PlaceSuggestion
	failGet bool
	failPut bool
}

func (c *memCache) Get(ctx context.Context, key string) ([]domain.PlaceSuggestion, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, false, errors.New("cache down")
	}
	v, ok := c.m[key]
	return v, ok, nil
}

func (c *memCache) Put(ctx context.Context, key string, s []domain.PlaceSuggestion) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failPut {
		return errors.New("cache down")
	}
	c.m[key] = s
	return nil
}

func TestCachedProviderServesRepeatQueriesFromCache(t *testing.T) {
	mock := NewMockProvider("remote", map[string][]domain.PlaceSuggestion{
		"Galle Fort": {{ID: "g1", Description: "Galle Fort, Galle, Sri Lanka"}},
	})
	cache := &memCache{m: map[string][]domain.PlaceSuggestion{}}
	p := NewCachedProvider(mock, cache, nil)

	first, err := p.Suggest(context.Background(), "Galle Fort")
	require.NoError(t, err)
	second, err := p.Suggest(context.Background(), "galle   FORT")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, mock.Calls())
	assert.Contains(t, cache.m, "remote|galle fort")
}

func TestCachedProviderSkipsEmptyAnswersAndErrors(t *testing.T) {
	mock := NewMockProvider("remote", nil)
	cache := &memCache{m: map[string][]domain.PlaceSuggestion{}}
	p := NewCachedProvider(mock, cache, nil)

	got, err := p.Suggest(context.Background(), "Nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, cache.m)

	mock.Err = errors.New("boom")
	_, err = p.Suggest(context.Background(), "Nothing")
	require.Error(t, err)
	assert.Empty(t, cache.m)
}

func TestCachedProviderIgnoresCacheFailures(t *testing.T) {
	mock := NewMockProvider("remote", map[string][]domain.PlaceSuggestion{
		"Kandy": {{ID: "k1"}},
	})
	cache := &memCache{m: map[string][]domain.PlaceSuggestion{}, failGet: true, failPut: true}
	p := NewCachedProvider(mock, cache, nil)

	got, err := p.Suggest(context.Background(), "Kandy")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "k1", got[0].ID)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "google_places|sigiriya rock", CacheKey("google_places", "  Sigiriya \t Rock "))
}
