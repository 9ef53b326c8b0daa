// Package update provides the update command.
package update

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/birdmap/cmd/application"
	"github.com/agentstation/birdmap/internal/cmd/cmdutil"
	"github.com/agentstation/birdmap/internal/cmd/emoji"
	"github.com/agentstation/birdmap/internal/cmd/output"
	"github.com/agentstation/birdmap/pkg/save"
	"github.com/agentstation/birdmap/pkg/update"
)

// NewCommand creates the update command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *cmdutil.UpdateFlags

	validArgs := make([]string, 0, len(update.Sources()))
	for _, s := range update.Sources() {
		validArgs = append(validArgs, s.String())
	}

	cmd := &cobra.Command{
		Use:   "update <source>",
		Short: "Update image URLs from one source",
		Long: `Update resolves a candidate image URL for every bird from one source and
writes the catalog back with the changed imageUrl values.

Sources:
  overrides  curated name to URL table (built-in, optionally extended by a file)
  sheet      the Picture column of the spreadsheet
  wikipedia  overrides first, then the image on each bird's wikipediaUrl page,
             then a rewrite of Special:FilePath links; direct images are skipped
  wikiaves   the photo on the WikiAves page in the spreadsheet link column
  filepath   rewrite Special:FilePath links to direct thumbnails`,
		Example: `  birdmap update overrides
  birdmap update wikipedia --dry-run
  birdmap update sheet --sheet attached_assets/aves_Toca_v2.xlsx
  birdmap update wikiaves --delay 1s --delay-max 3s`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := update.ParseSource(args[0])
			if err != nil {
				return err
			}
			return run(cmd, app, flags, source)
		},
	}

	flags = cmdutil.AddUpdateFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *cmdutil.UpdateFlags, source update.Source) error {
	bm, err := app.Birdmap(flags.BirdmapOptions(cmd)...)
	if err != nil {
		return err
	}

	opts := []update.Option{
		update.WithSource(source),
		update.WithDryRun(flags.DryRun),
		update.WithTimeout(flags.Timeout),
	}
	if flags.DryRun && flags.Preview {
		format, err := save.ParseFormat(flags.PreviewFormat)
		if err != nil {
			return err
		}
		opts = append(opts, update.WithPreview(cmd.OutOrStdout(), format))
	}

	result, err := bm.Update(cmd.Context(), opts...)
	if err != nil {
		return fmt.Errorf("update %s: %w", source, err)
	}
	if flags.Preview && flags.DryRun {
		return nil
	}

	format := output.DetectFormat(app.OutputFormat())
	if format == output.FormatJSON || format == output.FormatYAML {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), result)
	}
	return printSummary(cmd.OutOrStdout(), result)
}

func printSummary(w io.Writer, result *update.Result) error {
	symbol := emoji.Success
	if result.DryRun {
		symbol = emoji.Info
	}
	fmt.Fprintf(w, "%s %s\n", symbol, result)

	table := output.NewFormatter(output.FormatTable)
	if len(result.Changes) > 0 {
		fmt.Fprintln(w)
		if err := table.Format(w, output.ChangesTable(result.Changes)); err != nil {
			return err
		}
	}
	if len(result.Report.Failures) > 0 {
		fmt.Fprintf(w, "\n%s %d failure(s)\n", emoji.Error, len(result.Report.Failures))
		if err := table.Format(w, output.FailuresTable(result.Report.Failures)); err != nil {
			return err
		}
	}
	switch {
	case result.DryRun:
		fmt.Fprintf(w, "\n%s Dry run, %s was not modified\n", emoji.Info, result.Path)
	case result.Written:
		fmt.Fprintf(w, "\n%s Saved %s\n", emoji.Success, result.Path)
	default:
		fmt.Fprintf(w, "\n%s Nothing to change in %s\n", emoji.Success, result.Path)
	}
	return nil
}
