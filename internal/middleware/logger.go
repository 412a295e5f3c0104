package middleware

import (
	"context"
	"log/slog"
	"net/http"
)

type loggerKey struct{}

// WithRequestLogger stores a child of base tagged with the request's method,
// path, client IP and request ID. It must run after RequestID. RequireAuth
// adds user_id to the same logger.
func WithRequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base.With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("client_ip", GetClientIP(r)),
			)
			if id := GetRequestID(r.Context()); id != "" {
				logger = logger.With(slog.String("request_id", id))
			}
			next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
		})
	}
}

func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the request logger, else the first non-nil fallback,
// else slog.Default().
func GetLogger(ctx context.Context, fallback ...*slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	for _, l := range fallback {
		if l != nil {
			return l
		}
	}
	return slog.Default()
}
