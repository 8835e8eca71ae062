package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/apperr"
	"travel-locator-service/internal/platform/logger"
	"travel-locator-service/internal/platform/obs"
	"travel-locator-service/internal/ports"
)

const DefaultSuggestionTimeout = 12 * time.Second

// SuggestionResolver answers search-box queries through one provider per mode.
//
// Failure policy:
//   - queries under MinQueryLength return empty without calling a provider
//   - provider configuration errors are returned to the caller
//   - every other provider error is logged and collapses to an empty result
//
// The resolver keeps no per-query state; superseded queries are the
// caller's concern.
type SuggestionResolver struct {
	providers map[domain.Mode]ports.SuggestionProvider
	timeout   time.Duration
	log       *slog.Logger
}

// NewSuggestionResolver wires the remote and local strategies. Either may be
// nil, in which case queries in that mode fail with a configuration error.
func NewSuggestionResolver(
	remote ports.SuggestionProvider,
	local ports.SuggestionProvider,
	timeout time.Duration,
	log *slog.Logger,
) *SuggestionResolver {
	if timeout <= 0 {
		timeout = DefaultSuggestionTimeout
	}
	if log == nil {
		log = slog.Default()
	}

	providers := make(map[domain.Mode]ports.SuggestionProvider, 2)
	if remote != nil {
		providers[domain.ModeRemote] = remote
	}
	if local != nil {
		providers[domain.ModeLocal] = local
	}

	return &SuggestionResolver{providers: providers, timeout: timeout, log: log}
}

// ResolveSuggestions returns suggestions for query using the provider for mode.
// The slice is never nil. The only non-nil error is a configuration error
// (see apperr.KindConfiguration).
func (r *SuggestionResolver) ResolveSuggestions(
	ctx context.Context,
	query string,
	mode domain.Mode,
) (_ []domain.PlaceSuggestion, err error) {
	defer obs.Time(ctx, "suggestions.Resolve")(&err)

	if domain.QueryTooShort(query) {
		return []domain.PlaceSuggestion{}, nil
	}

	provider, ok := r.providers[mode]
	if !ok {
		return []domain.PlaceSuggestion{}, apperr.Configuration(
			"suggestions.Resolve",
			fmt.Errorf("no provider for mode %q: %w", mode, ports.ErrProviderNotConfigured),
		)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := provider.Suggest(ctx, query)
	if err != nil {
		if isConfigurationError(err) {
			if !apperr.Is(err, apperr.KindConfiguration) {
				err = apperr.Configuration("suggestions.Resolve", err)
			}
			return []domain.PlaceSuggestion{}, err
		}
		logger.WithContext(ctx, r.log).Error("suggestion provider failed",
			slog.String("provider", provider.Name()),
			slog.String("mode", string(mode)),
			slog.Any("err", err),
		)
		return []domain.PlaceSuggestion{}, nil
	}

	if out == nil {
		out = []domain.PlaceSuggestion{}
	}
	return out, nil
}

func isConfigurationError(err error) bool {
	return apperr.Is(err, apperr.KindConfiguration) || errors.Is(err, ports.ErrProviderNotConfigured)
}
