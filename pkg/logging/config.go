package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/birdmap/pkg/constants"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	Level string

	// Format is json, console, or auto (console on a terminal).
	Format string

	// Output is stderr, stdout, discard, or a file path opened for append.
	Output string

	// TimeFormat is kitchen, rfc3339, unix, or a Go layout string.
	TimeFormat string

	NoColor   bool
	AddCaller bool

	// Fields are attached to every line.
	Fields map[string]any
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
		Fields:     make(map[string]any),
	}
}

// NewLoggerFromConfig builds a logger from cfg. A nil cfg means DefaultConfig.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writerFor(cfg)).Level(level).With().Timestamp().Logger()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	if len(cfg.Fields) > 0 {
		logCtx := logger.With()
		for k, v := range cfg.Fields {
			logCtx = logCtx.Interface(k, v)
		}
		logger = logCtx.Logger()
	}
	return logger
}

func writerFor(cfg *Config) io.Writer {
	var out io.Writer
	isStderr := false
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		out, isStderr = os.Stderr, true
	case "stdout":
		out = os.Stdout
	case "discard", "none":
		out = io.Discard
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			out, isStderr = os.Stderr, true
		} else {
			out = f
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "auto" || format == "" {
		format = "json"
		if isStderr && stderrIsTerminal() {
			format = "console"
		}
	}

	if format == "console" || format == "pretty" {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: timeLayout(cfg.TimeFormat),
			NoColor:    cfg.NoColor,
		}
	}
	return out
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}

func timeLayout(format string) string {
	switch strings.ToLower(format) {
	case "rfc3339":
		return time.RFC3339
	case "unix", "epoch":
		return ""
	case "kitchen", "":
		return time.Kitchen
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
