package logger

import (
	"os"
	"strings"
	"time"

	"github.com/auto-dns/docker-event-tap/internal/config"
	"github.com/rs/zerolog"
)

// SetupLogger builds the diagnostic logger. It writes to stderr only:
// stdout is reserved for the rendered event stream.
func SetupLogger(cfg *config.LoggingConfig) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}

	levelStr := strings.ToLower(cfg.Level)
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(consoleWriter).
		With().
		Timestamp().
		Str("service", "docker_event_tap").
		Logger()

	return logger
}
