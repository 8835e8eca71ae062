package places

import (
	"context"
	"log/slog"
	"strings"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/logger"
	"travel-locator-service/internal/ports"
)

// CachedProvider consults a SuggestionCache before delegating to the wrapped
// provider. Cache failures are logged and otherwise ignored; only non-empty
// successful answers are stored.
type CachedProvider struct {
	next  ports.SuggestionProvider
	cache ports.SuggestionCache
	log   *slog.Logger
}

func NewCachedProvider(next ports.SuggestionProvider, cache ports.SuggestionCache, log *slog.Logger) *CachedProvider {
	if log == nil {
		log = slog.Default()
	}
	return &CachedProvider{next: next, cache: cache, log: log}
}

func (c *CachedProvider) Name() string { return c.next.Name() }

func (c *CachedProvider) Suggest(ctx context.Context, query string) ([]domain.PlaceSuggestion, error) {
	if c.cache == nil {
		return c.next.Suggest(ctx, query)
	}

	key := CacheKey(c.next.Name(), query)
	l := logger.WithContext(ctx, c.log)

	hits, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		l.Warn("suggestion cache read failed", slog.String("key", key), slog.Any("err", err))
	} else if ok {
		return hits, nil
	}

	fresh, err := c.next.Suggest(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(fresh) > 0 {
		if err := c.cache.Put(ctx, key, fresh); err != nil {
			l.Warn("suggestion cache write failed", slog.String("key", key), slog.Any("err", err))
		}
	}

	return fresh, nil
}

// CacheKey collapses whitespace and case so "  Galle  Fort" and "galle fort"
// share an entry.
func CacheKey(provider, query string) string {
	return provider + "|" + strings.ToLower(strings.Join(strings.Fields(query), " "))
}
