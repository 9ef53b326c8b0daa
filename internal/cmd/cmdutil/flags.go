// Package cmdutil provides shared flags for birdmap commands.
package cmdutil

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/birdmap"
	"github.com/agentstation/birdmap/pkg/overrides"
)

// UpdateFlags holds the flags of the update command.
type UpdateFlags struct {
	DryRun         bool
	Preview        bool
	PreviewFormat  string
	JSONPath       string
	SheetPath      string
	OverridesTable string
	OverridesFile  string
	OverridesMode  string
	Delay          time.Duration
	DelayMax       time.Duration
	Timeout        time.Duration
}

// AddUpdateFlags adds update flags to cmd.
func AddUpdateFlags(cmd *cobra.Command) *UpdateFlags {
	flags := &UpdateFlags{}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"Compute changes without writing the catalog")
	cmd.Flags().BoolVar(&flags.Preview, "preview", false,
		"With --dry-run, print the merged catalog to stdout")
	cmd.Flags().StringVar(&flags.PreviewFormat, "preview-format", "json",
		"Format of the --preview document: json or yaml")
	cmd.Flags().StringVar(&flags.JSONPath, "json", "",
		"Bird catalog file (default from config)")
	cmd.Flags().StringVar(&flags.SheetPath, "sheet", "",
		"Spreadsheet file, .xlsx or .csv (default from config)")
	cmd.Flags().StringVar(&flags.OverridesTable, "table", "",
		"Built-in override table: wikimedia or wikiaves")
	cmd.Flags().StringVar(&flags.OverridesFile, "overrides-file", "",
		"YAML file of name: url overrides")
	cmd.Flags().StringVar(&flags.OverridesMode, "overrides-mode", "",
		"How the overrides file combines with the table: extend or replace")
	cmd.Flags().DurationVar(&flags.Delay, "delay", 0,
		"Pause between page fetches")
	cmd.Flags().DurationVar(&flags.DelayMax, "delay-max", 0,
		"Upper bound for a random pause between page fetches")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0,
		"Bound for the whole run (0 means none)")

	return flags
}

// BirdmapOptions converts flags the user set into birdmap options. Override
// flags replace the configured override selection as a whole.
func (f *UpdateFlags) BirdmapOptions(cmd *cobra.Command) []birdmap.Option {
	var opts []birdmap.Option
	changed := cmd.Flags().Changed

	if f.JSONPath != "" {
		opts = append(opts, birdmap.WithJSONPath(f.JSONPath))
	}
	if f.SheetPath != "" {
		opts = append(opts, birdmap.WithSheet(f.SheetPath, ""))
	}
	if changed("table") || changed("overrides-file") || changed("overrides-mode") {
		opts = append(opts, birdmap.WithOverrides(overrides.Options{
			Table: f.OverridesTable,
			File:  f.OverridesFile,
			Mode:  f.OverridesMode,
		}))
	}
	if changed("delay") || changed("delay-max") {
		max := f.DelayMax
		if max < f.Delay {
			max = f.Delay
		}
		opts = append(opts, birdmap.WithDelay(f.Delay, max))
	}
	return opts
}

// SheetFlags holds the flags of the sheet commands.
type SheetFlags struct {
	Path   string
	Rows   int
	Column string
}

// AddSheetFlags adds sheet flags to cmd.
func AddSheetFlags(cmd *cobra.Command, defaultRows int) *SheetFlags {
	flags := &SheetFlags{}

	cmd.PersistentFlags().StringVar(&flags.Path, "sheet", "",
		"Spreadsheet file, .xlsx or .csv (default from config)")
	cmd.PersistentFlags().IntVarP(&flags.Rows, "rows", "n", defaultRows,
		"Number of rows to preview")
	cmd.PersistentFlags().StringVar(&flags.Column, "column", "",
		"Value column to preview (default is the picture column)")

	return flags
}
