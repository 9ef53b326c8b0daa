package birdmap

import (
	"net/http"
	"strings"
	"time"

	"github.com/agentstation/birdmap/pkg/constants"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/overrides"
)

type config struct {
	jsonPath string

	sheetPath     string
	sheetName     string
	nameColumn    string
	pictureColumn string
	linkColumn    string

	overrides    overrides.Options
	overrideTbl  *overrides.Table
	userAgent    string
	delay        time.Duration
	delayMax     time.Duration
	delaySet     bool
	httpTimeout  time.Duration
	thumbWidth   int
	httpClient   *http.Client
	wikiAvesBase string
}

func defaultConfig() *config {
	return &config{
		jsonPath:      constants.DefaultJSONPath,
		sheetPath:     constants.DefaultSheetPath,
		nameColumn:    constants.ColumnCommonName,
		pictureColumn: constants.ColumnPicture,
		linkColumn:    constants.ColumnLink,
		httpTimeout:   constants.DefaultHTTPTimeout,
		thumbWidth:    constants.DefaultThumbWidth,
		wikiAvesBase:  constants.WikiAvesBaseURL,
	}
}

func (c *config) validate() error {
	if strings.TrimSpace(c.jsonPath) == "" {
		return &errors.ValidationError{Field: "json_path", Message: "path is required"}
	}
	if c.delay < 0 || c.delayMax < 0 {
		return &errors.ValidationError{Field: "delay", Message: "delay must be non-negative"}
	}
	return nil
}

// Option configures a Birdmap instance.
type Option func(*config) error

// WithJSONPath sets the bird catalog file.
func WithJSONPath(path string) Option {
	return func(c *config) error {
		c.jsonPath = path
		return nil
	}
}

// WithSheet sets the spreadsheet file and, optionally, the worksheet name.
func WithSheet(path, sheetName string) Option {
	return func(c *config) error {
		if path != "" {
			c.sheetPath = path
		}
		c.sheetName = sheetName
		return nil
	}
}

// WithColumns overrides the spreadsheet headers. Empty values keep defaults.
func WithColumns(name, picture, link string) Option {
	return func(c *config) error {
		if name != "" {
			c.nameColumn = name
		}
		if picture != "" {
			c.pictureColumn = picture
		}
		if link != "" {
			c.linkColumn = link
		}
		return nil
	}
}

// WithOverrides selects the override table and optional file.
func WithOverrides(opts overrides.Options) Option {
	return func(c *config) error {
		c.overrides = opts
		return nil
	}
}

// WithOverrideTable uses t instead of building one from WithOverrides.
func WithOverrideTable(t overrides.Table) Option {
	return func(c *config) error {
		c.overrideTbl = &t
		return nil
	}
}

// WithUserAgent sends ua on every page fetch instead of the per-site default.
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		c.userAgent = ua
		return nil
	}
}

// WithDelay sets the pause between fetches. A max above min makes the pause
// random within [min, max].
func WithDelay(min, max time.Duration) Option {
	return func(c *config) error {
		c.delay = min
		c.delayMax = max
		c.delaySet = true
		return nil
	}
}

// WithHTTPTimeout bounds each page fetch.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d > 0 {
			c.httpTimeout = d
		}
		return nil
	}
}

// WithHTTPClient replaces the HTTP client used for fetches.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		c.httpClient = hc
		return nil
	}
}

// WithThumbWidth sets the width used by the Special:FilePath rewrite.
func WithThumbWidth(px int) Option {
	return func(c *config) error {
		c.thumbWidth = px
		return nil
	}
}

// WithWikiAvesBaseURL sets the base for relative WikiAves links.
func WithWikiAvesBaseURL(base string) Option {
	return func(c *config) error {
		c.wikiAvesBase = base
		return nil
	}
}
