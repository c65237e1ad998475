package configs

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger настраивает slog как логгер по умолчанию
func InitLogger(env, level string) {
	var handler slog.Handler

	if env == "production" {
		// Продакшен: JSON формат
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLevel(level),
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       parseLevel(level),
			ReplaceAttr: replaceTimeAttr,
			AddSource:   true,
		})
	}

	slog.SetDefault(slog.New(handler))

	slog.Info("Logger initialized successfully", "env", env, "level", level)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String("time", a.Value.Time().Local().Format("2006-01-02 15:04:05"))
	}
	return a
}
