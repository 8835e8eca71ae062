package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"travel-locator-service/internal/platform/apperr"
	"travel-locator-service/internal/platform/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithContext(r.Context(), nil).Error("encode failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeAppError maps typed errors to a status and a client-safe message.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	msg := ae.Message
	switch ae.Kind {
	case apperr.KindConfiguration:
		msg = "place search provider is not configured"
	case apperr.KindInternal, apperr.KindUnknown:
		msg = "internal server error"
	}
	writeError(w, r, ae.HTTPStatus(), msg)
}

func allowOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}
