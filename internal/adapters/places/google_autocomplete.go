package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/apperr"
	"travel-locator-service/internal/platform/obs"
	"travel-locator-service/internal/ports"
)

const statusOK = "OK"

type autocompleteResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Predictions  []prediction `json:"predictions"`
}

type prediction struct {
	PlaceID              string `json:"place_id"`
	Description          string `json:"description"`
	StructuredFormatting struct {
		MainText      string `json:"main_text"`
		SecondaryText string `json:"secondary_text"`
	} `json:"structured_formatting"`
	Types []string `json:"types"`
}

// Suggest queries /autocomplete/json and normalizes the predictions.
//
// A status other than "OK" (ZERO_RESULTS, OVER_QUERY_LIMIT, ...) is a valid
// empty answer. Transport and decode failures are returned as errors; the
// caller decides how to degrade.
func (g *GooglePlacesProvider) Suggest(
	ctx context.Context,
	query string,
) (_ []domain.PlaceSuggestion, err error) {
	defer obs.Time(ctx, "places.google.Suggest")(&err)

	if !g.configured() {
		return nil, apperr.Configuration("places.google.Suggest", ports.ErrProviderNotConfigured)
	}

	input := strings.TrimSpace(query)
	if input == "" {
		return []domain.PlaceSuggestion{}, nil
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("autocomplete %q: rate limit wait: %w", input, err)
		}
	}

	endpoint := g.baseURL + "/autocomplete/json"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("input", input)
		q.Set("types", typeFilter)
		q.Set("components", regionFilter)
		q.Set("key", g.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: execute request: %w", input, err)
	}
	defer resp.Body.Close()

	var decoded autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("autocomplete %q: decode response: %w", input, err)
	}

	if decoded.Status != statusOK {
		return []domain.PlaceSuggestion{}, nil
	}

	return normalizePredictions(decoded.Predictions), nil
}

// normalizePredictions keeps the provider's relevance order.
func normalizePredictions(preds []prediction) []domain.PlaceSuggestion {
	out := make([]domain.PlaceSuggestion, 0, len(preds))
	for _, p := range preds {
		tags := p.Types
		if tags == nil {
			tags = []string{}
		}
		out = append(out, domain.PlaceSuggestion{
			ID:             p.PlaceID,
			Description:    p.Description,
			PrimaryLabel:   p.StructuredFormatting.MainText,
			SecondaryLabel: p.StructuredFormatting.SecondaryText,
			TypeTags:       tags,
		})
	}
	return out
}
