// Package application provides a mock of the command application
// interface for tests.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/birdmap"
	app "github.com/agentstation/birdmap/cmd/application"
	"github.com/agentstation/birdmap/pkg/constants"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/sheet"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
//	mock := &application.Mock{
//	    BirdmapFunc: func(...birdmap.Option) (birdmap.Birdmap, error) {
//	        return birdmap.New(birdmap.WithJSONPath(path))
//	    },
//	}
//	cmd := list.NewCommand(mock)
type Mock struct {
	BirdmapFunc      func(opts ...birdmap.Option) (birdmap.Birdmap, error)
	SheetFunc        func(path string) (*sheet.Table, error)
	ColumnsFunc      func() app.Columns
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Birdmap returns a Birdmap using the mock function or an error.
func (m *Mock) Birdmap(opts ...birdmap.Option) (birdmap.Birdmap, error) {
	if m.BirdmapFunc != nil {
		return m.BirdmapFunc(opts...)
	}
	return nil, errors.NewConfigError("mock", "BirdmapFunc not set", nil)
}

// Sheet opens a sheet using the mock function or sheet.Open.
func (m *Mock) Sheet(path string) (*sheet.Table, error) {
	if m.SheetFunc != nil {
		return m.SheetFunc(path)
	}
	return sheet.Open(path)
}

// Columns returns columns using the mock function or the defaults.
func (m *Mock) Columns() app.Columns {
	if m.ColumnsFunc != nil {
		return m.ColumnsFunc()
	}
	return app.Columns{
		Name:    constants.ColumnCommonName,
		Picture: constants.ColumnPicture,
		Link:    constants.ColumnLink,
	}
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

var _ app.Application = (*Mock)(nil)
