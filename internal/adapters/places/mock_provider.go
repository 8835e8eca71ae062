package places

import (
	"context"
	"sync/atomic"
	"travel-locator-service/internal/domain"
)

// MockProvider returns canned answers keyed by exact query.
// Err, when set, is returned for every call. Calls counts Suggest invocations.
type MockProvider struct {
	ProviderName string
	Answers      map[string][]domain.PlaceSuggestion
	Err          error

	calls atomic.Int64
}

func NewMockProvider(name string, answers map[string][]domain.PlaceSuggestion) *MockProvider {
	if answers == nil {
		answers = map[string][]domain.PlaceSuggestion{}
	}
	return &MockProvider{ProviderName: name, Answers: answers}
}

func (m *MockProvider) Name() string { return m.ProviderName }

func (m *MockProvider) Suggest(ctx context.Context, query string) ([]domain.PlaceSuggestion, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.PlaceSuggestion{}, m.Answers[query]...), nil
}

func (m *MockProvider) Calls() int { return int(m.calls.Load()) }
