package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "suggest:"

// RedisSuggestionCache stores provider answers in Redis with a TTL.
// Shared across service instances, unlike the SQLite variant.
type RedisSuggestionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSuggestionCache(client *redis.Client, ttl time.Duration) *RedisSuggestionCache {
	return &RedisSuggestionCache{Client: client, TTL: ttl}
}

func (r *RedisSuggestionCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.PlaceSuggestion, _ bool, err error) {
	defer obs.Time(ctx, "suggestion.cache.redis.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("redis suggestion cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get redis suggestion cache: key must not be empty")
	}

	b, err := r.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get redis suggestion cache key=%q: %w", key, err)
	}

	out, err := decodeSuggestions(b)
	if err != nil {
		return nil, false, fmt.Errorf("get redis suggestion cache key=%q: %w", key, err)
	}

	return out, true, nil
}

// Put stores suggestions under key. A zero TTL keeps entries until evicted.
func (r *RedisSuggestionCache) Put(ctx context.Context, key string, suggestions []domain.PlaceSuggestion) error {
	if r.Client == nil {
		return errors.New("redis suggestion cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert redis suggestion cache: key must not be empty")
	}

	b, err := encodeSuggestions(suggestions)
	if err != nil {
		return fmt.Errorf("insert redis suggestion cache key=%q: %w", key, err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, b, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert redis suggestion cache key=%q: %w", key, err)
	}

	return nil
}
