// Package app provides the application context and dependency management
// for the birdmap CLI. It centralizes configuration, logging and the
// Birdmap instance so commands only see the application.Application
// interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/birdmap"
	"github.com/agentstation/birdmap/cmd/application"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/overrides"
	"github.com/agentstation/birdmap/pkg/sheet"
)

// App represents the birdmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Default Birdmap instance (lazy-initialized)
	mu      sync.RWMutex
	birdmap birdmap.Birdmap
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string { return a.config.Format }

// Columns returns the configured spreadsheet headers.
func (a *App) Columns() application.Columns {
	return application.Columns{
		Name:    a.config.NameColumn,
		Picture: a.config.PictureColumn,
		Link:    a.config.LinkColumn,
	}
}

// Sheet opens path, or the configured spreadsheet when path is empty.
func (a *App) Sheet(path string) (*sheet.Table, error) {
	if path == "" {
		path = a.config.SheetPath
	}
	var opts []sheet.Option
	if a.config.SheetName != "" {
		opts = append(opts, sheet.WithSheet(a.config.SheetName))
	}
	return sheet.Open(path, opts...)
}

// Birdmap returns the default instance when called without options, creating
// it lazily. With options it builds a new instance each call.
func (a *App) Birdmap(opts ...birdmap.Option) (birdmap.Birdmap, error) {
	if len(opts) > 0 {
		bm, err := birdmap.New(append(a.birdmapOptions(), opts...)...)
		if err != nil {
			return nil, errors.WrapResource("create", "birdmap", "with custom options", err)
		}
		return bm, nil
	}

	a.mu.RLock()
	if a.birdmap != nil {
		bm := a.birdmap
		a.mu.RUnlock()
		return bm, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.birdmap != nil {
		return a.birdmap, nil
	}

	bm, err := birdmap.New(a.birdmapOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "birdmap", "", err)
	}
	a.birdmap = bm
	return bm, nil
}

// birdmapOptions constructs birdmap options from the app configuration.
func (a *App) birdmapOptions() []birdmap.Option {
	c := a.config
	opts := []birdmap.Option{
		birdmap.WithJSONPath(c.JSONPath),
		birdmap.WithSheet(c.SheetPath, c.SheetName),
		birdmap.WithColumns(c.NameColumn, c.PictureColumn, c.LinkColumn),
		birdmap.WithOverrides(overrides.Options{
			Table: c.OverridesTable,
			File:  c.OverridesFile,
			Mode:  c.OverridesMode,
		}),
		birdmap.WithHTTPTimeout(c.HTTPTimeout),
		birdmap.WithThumbWidth(c.ThumbWidth),
	}
	if c.UserAgent != "" {
		opts = append(opts, birdmap.WithUserAgent(c.UserAgent))
	}
	if c.DelaySet {
		opts = append(opts, birdmap.WithDelay(c.Delay, c.DelayMax))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithBirdmap sets a custom Birdmap instance (useful for testing).
func WithBirdmap(bm birdmap.Birdmap) Option {
	return func(a *App) error {
		a.birdmap = bm
		return nil
	}
}

var _ application.Application = (*App)(nil)
