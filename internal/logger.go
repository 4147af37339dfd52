package internal

import (
	"io"
	"log/slog"
	"time"
)

// Environment names accepted by Config.Env.
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// NewLogger builds the application logger: JSON with RFC3339Nano timestamps
// in prod for the log pipeline, the readable text handler everywhere else.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	l := new(slog.LevelVar) // Info unless overridden
	switch level {
	case "debug":
		l.Set(slog.LevelDebug)
	case "warn":
		l.Set(slog.LevelWarn)
	case "error":
		l.Set(slog.LevelError)
	case "info":
	default:
		slog.Default().Warn("Unknown log level, staying at info", slog.String("value", level))
	}

	opts := &slog.HandlerOptions{Level: l}
	if env != EnvProd {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
		}
		return a
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
