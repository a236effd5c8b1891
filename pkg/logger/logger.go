package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yanqian/weather-proxy/internal/infra/config"
)

// New constructs the service-wide JSON slog logger.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg.Log.Level)
}

func newWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler).With("service", "weather-proxy")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
