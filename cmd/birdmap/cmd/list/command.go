// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/birdmap"
	"github.com/agentstation/birdmap/cmd/application"
	"github.com/agentstation/birdmap/internal/cmd/output"
	"github.com/agentstation/birdmap/internal/matcher"
	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/urlfix"
)

// Flags holds the list flags.
type Flags struct {
	JSONPath  string
	Name      string
	NotDirect bool
}

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List birds and where their images are hosted",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []birdmap.Option
			if flags.JSONPath != "" {
				opts = append(opts, birdmap.WithJSONPath(flags.JSONPath))
			}
			bm, err := app.Birdmap(opts...)
			if err != nil {
				return err
			}
			records, err := bm.Records(cmd.Context())
			if err != nil {
				return err
			}
			if flags.Name != "" {
				m, err := matcher.New(matcher.Auto, flags.Name)
				if err != nil {
					return err
				}
				records = m.Filter(records)
			}
			if flags.NotDirect {
				records = notDirect(records)
			}

			format := output.DetectFormat(app.OutputFormat())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), records)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.RecordsTable(records))
		},
	}

	cmd.Flags().StringVar(&flags.JSONPath, "json", "", "Bird catalog file (default from config)")
	cmd.Flags().StringVar(&flags.Name, "name", "", "Only birds whose name matches a glob or regex (case-insensitive)")
	cmd.Flags().BoolVar(&flags.NotDirect, "not-direct", false, "Only birds whose image is not on the direct media host")
	return cmd
}

func notDirect(records birds.Records) birds.Records {
	out := birds.Records{}
	for _, r := range records {
		if !urlfix.IsDirectHost(r.ImageURL()) {
			out = append(out, r)
		}
	}
	return out
}
