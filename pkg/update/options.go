// Package update provides options and results for one image-URL update run.
package update

import (
	"io"
	"strings"
	"time"

	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/save"
)

// Source names where candidate URLs come from.
type Source string

// Sources.
const (
	SourceOverrides Source = "overrides" // curated table
	SourceSheet     Source = "sheet"     // spreadsheet Picture column
	SourceWikipedia Source = "wikipedia" // scrape the record's wikipediaUrl page
	SourceWikiAves  Source = "wikiaves"  // scrape the spreadsheet link page
	SourceFilePath  Source = "filepath"  // rewrite Special:FilePath urls
)

// Sources lists every source in CLI order.
func Sources() []Source {
	return []Source{SourceOverrides, SourceSheet, SourceWikipedia, SourceWikiAves, SourceFilePath}
}

// String implements fmt.Stringer.
func (s Source) String() string { return string(s) }

// IsValid reports whether s is a known source.
func (s Source) IsValid() bool {
	for _, known := range Sources() {
		if s == known {
			return true
		}
	}
	return false
}

// Scrapes reports whether the source fetches pages.
func (s Source) Scrapes() bool {
	return s == SourceWikipedia || s == SourceWikiAves
}

// ParseSource parses a source name, case-insensitively.
func ParseSource(name string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(name)))
	if !s.IsValid() {
		return "", &errors.ValidationError{
			Field:   "source",
			Value:   name,
			Message: "must be one of overrides, sheet, wikipedia, wikiaves, filepath",
		}
	}
	return s, nil
}

// Options controls one Update run.
type Options struct {
	Source  Source        // where candidate urls come from
	DryRun  bool          // compute changes without writing the store
	Timeout time.Duration // bound for the whole run, 0 means none

	// Preview receives the merged document on dry runs. Nil means no preview.
	Preview       io.Writer
	PreviewFormat save.Format
}

// Defaults returns the default update options.
func Defaults() *Options {
	return &Options{
		Source:        SourceOverrides,
		PreviewFormat: save.FormatJSON,
	}
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks the options.
func (o *Options) Validate() error {
	if !o.Source.IsValid() {
		return &errors.ValidationError{Field: "Source", Value: o.Source, Message: "unknown source"}
	}
	if o.Timeout < 0 {
		return &errors.ValidationError{Field: "Timeout", Value: o.Timeout, Message: "timeout must be non-negative"}
	}
	if o.Preview != nil && !o.PreviewFormat.IsValid() {
		return &errors.ValidationError{Field: "PreviewFormat", Value: o.PreviewFormat, Message: "unsupported format"}
	}
	return nil
}

// Option configures update Options.
type Option func(*Options)

// New returns defaults with opts applied.
func New(opts ...Option) *Options {
	return Defaults().Apply(opts...)
}

// WithSource selects the candidate source.
func WithSource(s Source) Option {
	return func(o *Options) { o.Source = s }
}

// WithDryRun toggles dry-run mode.
func WithDryRun(dryRun bool) Option {
	return func(o *Options) { o.DryRun = dryRun }
}

// WithTimeout bounds the whole run.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithPreview writes the merged document to w on dry runs.
func WithPreview(w io.Writer, format save.Format) Option {
	return func(o *Options) {
		o.Preview = w
		o.PreviewFormat = format
	}
}
