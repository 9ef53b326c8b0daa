// Package save holds the options accepted by store writes.
package save

import (
	"fmt"
	"io"
	"strings"
)

// Format is the serialization used when writing records.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat converts a name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("unknown save format %q", s)
}

// Options is the configuration for save.
type Options struct {
	path   string
	writer io.Writer
	format Format
	indent string
}

// Path returns the target file path.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer that replaces the file, if any.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the output format.
func (s *Options) Format() Format {
	return s.format
}

// Indent returns the JSON indentation unit.
func (s *Options) Indent() string {
	return s.indent
}

// Defaults returns the default save options: JSON, two-space indent.
func Defaults() *Options {
	return &Options{
		format: FormatJSON,
		indent: "  ",
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter sends output to w instead of the file.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}

// WithIndent overrides the JSON indentation unit.
func WithIndent(indent string) Option {
	return func(s *Options) {
		s.indent = indent
	}
}
