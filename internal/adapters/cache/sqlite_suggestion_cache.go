package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel-locator-service/internal/domain"
)

// SQLite backed cache of provider answers for single-instance local runs.
// Keys are expected to be normalized by the caller.
type SqliteSuggestionCache struct {
	DB  *sql.DB
	TTL time.Duration
	now func() time.Time
}

func NewSqliteSuggestionCache(db *sql.DB, ttl time.Duration) *SqliteSuggestionCache {
	return &SqliteSuggestionCache{DB: db, TTL: ttl, now: time.Now}
}

// Fetch the cached suggestions for a normalized query key.
func (s *SqliteSuggestionCache) Get(ctx context.Context, key string) ([]domain.PlaceSuggestion, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("suggestion cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get suggestion cache: key must not be empty")
	}

	q := `
	SELECT
        payload,
        created_at_unix
    FROM suggestion_cache
    WHERE cache_key = ?;
	`

	var payload []byte
	var createdUnix int64
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&payload, &createdUnix)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get suggestion cache: query suggestion_cache table: %w", err)
	}

	if expired(time.Unix(createdUnix, 0), s.TTL, s.now()) {
		return nil, false, nil
	}

	out, err := decodeSuggestions(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get suggestion cache key=%q: %w", key, err)
	}

	return out, true, nil
}

// Store suggestions for a key, replacing any previous entry.
func (s *SqliteSuggestionCache) Put(ctx context.Context, key string, suggestions []domain.PlaceSuggestion) error {
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
	INSERT OR REPLACE INTO suggestion_cache (
        cache_key,
        payload,
        created_at_unix
    )
    VALUES (?, ?, ?);
	`, key, payload, s.now().Unix())
	if err != nil {
		return fmt.Errorf("insert suggestion cache key=%q: %w", key, err)
	}

	return nil
}
