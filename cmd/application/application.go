// Package application provides the application interface for birdmap
// commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with internal/cmd/application.Mock:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            bm, err := app.Birdmap()
//	            if err != nil {
//	                return err
//	            }
//	            records, err := bm.Records(cmd.Context())
//	            // ...
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/birdmap"
	"github.com/agentstation/birdmap/pkg/sheet"
)

// Columns names the spreadsheet headers commands read.
type Columns struct {
	Name    string
	Picture string
	Link    string
}

// Application provides what commands need from the running app.
type Application interface {
	// Birdmap returns a Birdmap configured from the app config, with opts
	// applied last.
	Birdmap(opts ...birdmap.Option) (birdmap.Birdmap, error)

	// Sheet opens the spreadsheet at path, or the configured one when path
	// is empty.
	Sheet(path string) (*sheet.Table, error)

	// Columns returns the configured spreadsheet headers.
	Columns() Columns

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
