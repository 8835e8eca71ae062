package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"travel-locator-service/internal/api/dto"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// Resolver is the subset of services.SuggestionResolver the handler needs.
type Resolver interface {
	ResolveSuggestions(ctx context.Context, query string, mode domain.Mode) ([]domain.PlaceSuggestion, error)
}

// SuggestionHandler exposes place suggestions and icon classification.
type SuggestionHandler struct {
	Resolver    Resolver
	DefaultMode domain.Mode
	Validate    *validator.Validate
}

// List handles GET /v1/suggestions?q=...&mode=remote|local.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	req := dto.SuggestionsQuery{
		Query: r.URL.Query().Get("q"),
		Mode:  strings.ToLower(strings.TrimSpace(r.URL.Query().Get("mode"))),
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "mode must be remote or local and q at most 200 characters")
		return
	}

	mode := h.DefaultMode
	if req.Mode != "" {
		mode = domain.Mode(req.Mode)
	}

	suggestions, err := h.Resolver.ResolveSuggestions(r.Context(), req.Query, mode)
	if err != nil {
		logger.WithContext(r.Context(), nil).Error("resolve suggestions failed",
			slog.String("mode", string(mode)),
			slog.Any("err", err),
		)
		writeAppError(w, r, err)
		return
	}

	res := dto.ListSuggestionsResponse{
		Mode:        string(mode),
		Suggestions: make([]dto.SuggestionResponse, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		icon := s.Icon()
		res.Suggestions = append(res.Suggestions, dto.SuggestionResponse{
			ID:             s.ID,
			Description:    s.Description,
			PrimaryLabel:   s.PrimaryLabel,
			SecondaryLabel: s.SecondaryLabel,
			Types:          s.TypeTags,
			Icon:           string(icon),
			Glyph:          icon.Glyph(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Icon handles GET /v1/icons?types=a,b and classifies the given tags.
func (h *SuggestionHandler) Icon(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	tags := []string{}
	for _, t := range strings.Split(r.URL.Query().Get("types"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	icon := domain.Classify(tags)
	writeJSON(w, r, http.StatusOK, dto.IconResponse{Icon: string(icon), Glyph: icon.Glyph()})
}
