package app

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/birdmap/pkg/constants"
	pkgerrors "github.com/agentstation/birdmap/pkg/errors"
)

// EnvPrefix prefixes every config key read from the environment.
const EnvPrefix = "BIRDMAP"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Store
	JSONPath string

	// Spreadsheet
	SheetPath     string
	SheetName     string
	NameColumn    string
	PictureColumn string
	LinkColumn    string

	// Overrides
	OverridesTable string
	OverridesFile  string
	OverridesMode  string

	// Fetching
	UserAgent   string
	Delay       time.Duration
	DelayMax    time.Duration
	DelaySet    bool
	HTTPTimeout time.Duration
	ThumbWidth  int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by the commands)
// 2. Environment variables (BIRDMAP_JSON_PATH, ...)
// 3. .env files
// 4. Config file (./.birdmap.yaml or ~/.birdmap.yaml, or configFile)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, pkgerrors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(".birdmap")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, pkgerrors.NewConfigError("config", "reading .birdmap.yaml", err)
			}
		}
	}

	config := &Config{
		ConfigFile: v.ConfigFileUsed(),

		JSONPath: v.GetString("json_path"),

		SheetPath:     v.GetString("sheet_path"),
		SheetName:     v.GetString("sheet_name"),
		NameColumn:    v.GetString("name_column"),
		PictureColumn: v.GetString("picture_column"),
		LinkColumn:    v.GetString("link_column"),

		OverridesTable: v.GetString("overrides_table"),
		OverridesFile:  v.GetString("overrides_file"),
		OverridesMode:  v.GetString("overrides_mode"),

		UserAgent:   v.GetString("user_agent"),
		Delay:       v.GetDuration("delay"),
		DelayMax:    v.GetDuration("delay_max"),
		DelaySet:    v.IsSet("delay") || v.IsSet("delay_max"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		ThumbWidth:  v.GetInt("thumb_width"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}
	if config.DelayMax < config.Delay {
		config.DelayMax = config.Delay
	}

	return config, config.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("json_path", constants.DefaultJSONPath)
	v.SetDefault("sheet_path", constants.DefaultSheetPath)
	v.SetDefault("name_column", constants.ColumnCommonName)
	v.SetDefault("picture_column", constants.ColumnPicture)
	v.SetDefault("link_column", constants.ColumnLink)
	v.SetDefault("overrides_mode", "extend")
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("thumb_width", constants.DefaultThumbWidth)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Delay < 0 || c.DelayMax < 0 {
		return pkgerrors.NewConfigError("delay", "delay must be non-negative", nil)
	}
	if c.HTTPTimeout < 0 {
		return pkgerrors.NewConfigError("http_timeout", "timeout must be non-negative", nil)
	}
	switch strings.ToLower(c.OverridesMode) {
	case "", "extend", "replace":
	default:
		return pkgerrors.NewConfigError("overrides_mode", "must be extend or replace", nil)
	}
	return nil
}

// UpdateFromFlags copies global flag values into the config. Flag values
// win over config file and environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win; godotenv never overrides
// variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
