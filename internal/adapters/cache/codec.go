package cache

import (
	"encoding/json"
	"fmt"
	"travel-locator-service/internal/domain"
)

// Suggestions are stored as a JSON array; icon categories are derived on
// read by callers and never persisted.
func encodeSuggestions(s []domain.PlaceSuggestion) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode suggestions: %w", err)
	}
	return b, nil
}

func decodeSuggestions(b []byte) ([]domain.PlaceSuggestion, error) {
	var out []domain.PlaceSuggestion
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	if out == nil {
		out = []domain.PlaceSuggestion{}
	}
	return out, nil
}
