// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", logging.FormatCloud, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("ce_id", id)))
//	logging.FromContext(ctx).WarnContext(ctx, "Token failed", ...)
//
// Error logs name the operation, the entity ids and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to resolve workspace name",
//	    slog.String("operation", "ResolveWorkspaceName"),
//	    slog.String("workspace_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler redacts credentials and device tokens before writing.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
	// FormatCloud is JSON with the field names Cloud Logging reads
	// severity, message and source location from.
	FormatCloud = "cloud"
)

type contextKey struct{}

// New returns a logger writing to w at the given level ("debug", "info",
// "warn" or "error", case-insensitive, info otherwise). format selects the
// handler; unknown formats fall back to JSON. Debug loggers add source
// locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	redact := newRedactAttr()

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: redact,
	}

	switch format {
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts))
	case FormatCloud:
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			return redact(groups, cloudAttr(groups, a))
		}
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// cloudAttr renames the built-in top-level keys to Cloud Logging's
// structured-log fields.
func cloudAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.LevelKey:
		a.Key = "severity"
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(cloudSeverity(lvl))
		}
	case slog.MessageKey:
		a.Key = "message"
	case slog.TimeKey:
		a.Key = "timestamp"
	case slog.SourceKey:
		a.Key = "logging.googleapis.com/sourceLocation"
	}
	return a
}

func cloudSeverity(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
