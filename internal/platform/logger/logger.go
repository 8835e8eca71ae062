// Package logger configures structured logging for the service.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"travel-locator-service/internal/platform/obs"
)

// New builds a slog.Logger writing to stdout. Development environments get
// human-readable text at debug level; everything else gets JSON at info.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithContext attaches the request id carried by ctx, if any.
func WithContext(ctx context.Context, l *slog.Logger) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	if ctx == nil {
		return l
	}
	if reqID, ok := ctx.Value(obs.RequestIDKey).(string); ok && reqID != "" {
		return l.With(slog.String("req_id", reqID))
	}
	return l
}
