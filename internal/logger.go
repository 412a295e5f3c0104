package internal

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger writes JSON in prod and text elsewhere. An unknown level falls
// back to info and is reported on the returned logger.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	var lvl slog.Level
	badLevel := lvl.UnmarshalText([]byte(level)) != nil
	if badLevel {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if env == "prod" {
		opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		}
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	if badLevel {
		logger.Warn("unknown LOG_LEVEL, using info", "value", level)
	}
	return logger
}
