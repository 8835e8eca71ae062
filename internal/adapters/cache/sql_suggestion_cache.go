package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/obs"
)

// SQLSuggestionCache is a Postgres-backed cache of provider answers.
// Entries older than TTL are reported as misses and overwritten on the next Put.
type SQLSuggestionCache struct {
	DB  *sql.DB
	TTL time.Duration
	now func() time.Time
}

func NewSQLSuggestionCache(db *sql.DB, ttl time.Duration) *SQLSuggestionCache {
	return &SQLSuggestionCache{DB: db, TTL: ttl, now: time.Now}
}

// Fetch the cached suggestions for a normalized query key.
func (s *SQLSuggestionCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.PlaceSuggestion, _ bool, err error) {
	defer obs.Time(ctx, "suggestion.cache.GetSQL")(&err)

	if s.DB == nil {
		return nil, false, errors.New("suggestion cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get suggestion cache: key must not be empty")
	}

	q := `
	SELECT payload, created_at
    FROM suggestion_cache
    WHERE cache_key = $1;
	`

	var payload []byte
	var createdAt time.Time
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get suggestion cache: query suggestion_cache table: %w", err)
	}

	if expired(createdAt, s.TTL, s.now()) {
		return nil, false, nil
	}

	out, err := decodeSuggestions(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get suggestion cache key=%q: %w", key, err)
	}

	return out, true, nil
}

// Store suggestions for a key, replacing any previous entry.
func (s *SQLSuggestionCache) Put(ctx context.Context, key string, suggestions []domain.PlaceSuggestion) error {
	if s.DB == nil {
		return errors.New("suggestion cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert suggestion cache: key must not be empty")
	}

	payload, err := encodeSuggestions(suggestions)
	if err != nil {
		return fmt.Errorf("insert suggestion cache key=%q: %w", key, err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO suggestion_cache (cache_key, payload, created_at)
    VALUES ($1, $2, $3)
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		created_at = EXCLUDED.created_at;
	`, key, payload, s.now().UTC())
	if err != nil {
		return fmt.Errorf("insert suggestion cache key=%q: %w", key, err)
	}

	return nil
}

// A zero TTL never expires.
func expired(createdAt time.Time, ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(createdAt) > ttl
}
