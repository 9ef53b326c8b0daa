// Package logging wraps zerolog for birdmap. Terminals get a human-readable
// console writer, everything else gets one JSON object per line.
//
//	log := logging.Default()
//	log.Info().Str("bird", "Tiê-preto").Msg("Updated image URL")
//
//	ctx := logging.WithBird(ctx, "Tiê-preto")
//	logging.FromContext(ctx).Warn().Err(err).Msg("Fetch failed")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

func init() {
	defaultLogger = createDefaultLogger()
}

func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr
	if stderrIsTerminal() && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := levelFromEnv()
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default logger and zerolog's global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func levelFromEnv() zerolog.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
