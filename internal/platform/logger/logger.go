package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/catalog-api/internal/config"
)

type contextKey struct{}

// ParseLevel maps a configured level name to a slog.Level, case-insensitively.
// The boolean is false for unknown names, which fall back to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	if !ok {
		l.Warn("invalid log level configured, using default level",
			slog.String("configured_level", level),
			slog.String("default_level", "info"))
	}
	return l
}

// Setup creates the application's JSON logger on stdout from the server
// configuration and installs it as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	l := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(l)
	return l, nil
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or fallback when
// none is set. Component loggers pass themselves as fallback so request
// attributes win when present.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	if fallback == nil {
		return slog.Default()
	}
	return fallback
}
