package handlers

import (
	"log/slog"
	"net/http"
	"travel-locator-service/internal/api/dto"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/ports"
	"travel-locator-service/internal/services"
)

// EndpointHandler runs a fresh endpoint resolution on each request.
type EndpointHandler struct {
	Prober ports.LivenessProber
	Config domain.EndpointConfig
	Log    *slog.Logger
}

// Resolve handles GET /v1/endpoint. A fallback answer is still a 200; the
// fell_back flag tells clients they are in degraded mode.
func (h *EndpointHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	resolved := services.ResolveEndpoint(r.Context(), h.Prober, h.Config, h.Log)

	writeJSON(w, r, http.StatusOK, dto.EndpointResponse{
		Host:     resolved.Host,
		BaseURL:  resolved.BaseURL(),
		FellBack: resolved.FellBack,
	})
}
