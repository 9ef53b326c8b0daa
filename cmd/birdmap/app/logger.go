package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/birdmap/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. LOG_LEVEL environment variable or log_level config key
//  5. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	logConfig := logging.DefaultConfig()
	logConfig.Level = level
	if config.LogFormat != "" {
		logConfig.Format = config.LogFormat
	}
	if config.LogOutput != "" {
		logConfig.Output = config.LogOutput
	}
	logConfig.NoColor = logConfig.NoColor || config.NoColor
	logConfig.AddCaller = level == "debug" || level == "trace"

	return logging.NewLoggerFromConfig(logConfig)
}

func determineLogLevel(config *Config) string {
	if config.Verbose && config.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	}
	if config.LogLevel != "" && !config.Verbose && !config.Quiet {
		validated := validateLogLevel(config.LogLevel)
		if validated != config.LogLevel {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, validated)
		}
		return validated
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}
	return "info"
}

func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	return "info"
}
