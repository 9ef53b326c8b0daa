// Package sheet provides commands that inspect the bird spreadsheet.
package sheet

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/birdmap/cmd/application"
	"github.com/agentstation/birdmap/internal/cmd/cmdutil"
	"github.com/agentstation/birdmap/internal/cmd/output"
	"github.com/agentstation/birdmap/pkg/constants"
	pkgsheet "github.com/agentstation/birdmap/pkg/sheet"
)

// NewCommand creates the sheet command with its subcommands.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Inspect the bird spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := cmdutil.AddSheetFlags(cmd, constants.PreviewRows)
	cmd.AddCommand(newColumnsCommand(app, flags))
	cmd.AddCommand(newPreviewCommand(app, flags))
	return cmd
}

func newColumnsCommand(app application.Application, flags *cmdutil.SheetFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the spreadsheet headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := app.Sheet(flags.Path)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), tbl.Headers)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (sheet %q, %d rows)\n", tbl.Source, tbl.Sheet, tbl.Len())
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.ColumnsTable(tbl.Headers))
		},
	}
}

func newPreviewCommand(app application.Application, flags *cmdutil.SheetFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the first name/value rows of the spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := app.Sheet(flags.Path)
			if err != nil {
				return err
			}

			cols := app.Columns()
			column := flags.Column
			if column == "" {
				column = cols.Picture
			}
			pairs, err := preview(tbl, flags.Rows, cols.Name, column)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), pairs)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.PairsTable(pairs, column))
		},
	}
}

func preview(tbl *pkgsheet.Table, rows int, nameColumn, valueColumn string) ([]pkgsheet.Pair, error) {
	for _, col := range []string{nameColumn, valueColumn} {
		if !tbl.HasColumn(col) {
			return nil, fmt.Errorf("column %q not in %s (have %v)", col, tbl.Source, tbl.Headers)
		}
	}
	return tbl.Head(rows, nameColumn, valueColumn), nil
}
