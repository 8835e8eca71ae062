package ports

import (
	"context"
	"travel-locator-service/internal/domain"
)

// Port: a boundary for loading the offline place catalog from a data source.
type CatalogRepository interface {
	// Retrieve catalog entries in their stored order.
	ListPlaces(ctx context.Context) ([]domain.PlaceSuggestion, error)
}
