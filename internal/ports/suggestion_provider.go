package ports

import (
	"context"
	"errors"
	"travel-locator-service/internal/domain"
)

// Returned when a provider is missing its credential or still carries the
// placeholder value. Callers must be able to tell this apart from an
// unreachable provider.
var ErrProviderNotConfigured = errors.New("place search provider is not configured")

// Contract for turning a free-text query into place suggestions.
type SuggestionProvider interface {
	// Stable identifier used in logs and cache keys.
	Name() string
	// Return suggestions in provider relevance order.
	Suggest(ctx context.Context, query string) ([]domain.PlaceSuggestion, error)
}
