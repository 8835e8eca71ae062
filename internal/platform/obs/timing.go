package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs the duration of an operation when the returned func is deferred.
//
//	defer obs.Time(ctx, "places.Suggest")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		attrs := []any{
			slog.String("req_id", reqID),
			slog.String("op", name),
			slog.Int64("dur_ms", dur.Milliseconds()),
		}
		if errp != nil && *errp != nil {
			slog.Default().Debug("op", append(attrs, slog.Any("err", *errp))...)
			return
		}
		slog.Default().Debug("op", attrs...)
	}
}
