package ports

import (
	"context"
	"travel-locator-service/internal/domain"
)

// Optional store for provider answers keyed by normalized query.
type SuggestionCache interface {
	// Report ok=false on a miss or an expired entry.
	Get(ctx context.Context, key string) (_ []domain.PlaceSuggestion, ok bool, err error)
	Put(ctx context.Context, key string, suggestions []domain.PlaceSuggestion) error
}
