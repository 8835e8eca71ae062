package places

import (
	"context"
	"strings"
	"travel-locator-service/internal/domain"
)

// LocalCatalog implements SuggestionProvider over a fixed in-memory list.
// It performs no I/O and never returns an error.
type LocalCatalog struct {
	entries []domain.PlaceSuggestion
}

// NewLocalCatalog copies entries; nil uses BuiltinCatalog.
func NewLocalCatalog(entries []domain.PlaceSuggestion) *LocalCatalog {
	if entries == nil {
		return &LocalCatalog{entries: BuiltinCatalog()}
	}
	return &LocalCatalog{entries: append([]domain.PlaceSuggestion(nil), entries...)}
}

func (c *LocalCatalog) Name() string { return "local_catalog" }

func (c *LocalCatalog) Len() int { return len(c.entries) }

// Suggest returns entries whose description or primary label contains the
// query, ignoring case, in catalog order.
func (c *LocalCatalog) Suggest(ctx context.Context, query string) ([]domain.PlaceSuggestion, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.PlaceSuggestion, 0)
	if needle == "" {
		return out, nil
	}

	for _, p := range c.entries {
		if strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.PrimaryLabel), needle) {
			p.TypeTags = append([]string(nil), p.TypeTags...)
			out = append(out, p)
		}
	}

	return out, nil
}
