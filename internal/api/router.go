package api

import (
	"log/slog"
	"net/http"
	"travel-locator-service/internal/api/handlers"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/ports"

	"github.com/go-playground/validator/v10"
)

// Dependencies needed to build the HTTP API.
type Deps struct {
	Resolver    handlers.Resolver
	DefaultMode domain.Mode
	Prober      ports.LivenessProber
	Endpoint    domain.EndpointConfig
	Log         *slog.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = slog.Default()
	}

	mux := http.NewServeMux()

	suggestionHandler := &handlers.SuggestionHandler{
		Resolver:    d.Resolver,
		DefaultMode: d.DefaultMode,
		Validate:    validator.New(),
	}
	endpointHandler := &handlers.EndpointHandler{
		Prober: d.Prober,
		Config: d.Endpoint,
		Log:    d.Log,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/v1/suggestions", suggestionHandler.List)
	mux.HandleFunc("/v1/icons", suggestionHandler.Icon)
	mux.HandleFunc("/v1/endpoint", endpointHandler.Resolve)

	return requestIDMiddleware(loggingMiddleware(d.Log, mux))
}
