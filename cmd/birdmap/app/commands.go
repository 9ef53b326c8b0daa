package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/birdmap/cmd/birdmap/cmd/completion"
	"github.com/agentstation/birdmap/cmd/birdmap/cmd/list"
	"github.com/agentstation/birdmap/cmd/birdmap/cmd/sheet"
	"github.com/agentstation/birdmap/cmd/birdmap/cmd/update"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(update.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(sheet.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(a.newVersionCommand())
	rootCmd.AddCommand(newManCommand())
}

func newManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "BIRDMAP",
				Section: "1",
				Source:  "birdmap",
				Manual:  "birdmap Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "birdmap %s\n  commit:   %s\n  built:    %s\n  built by: %s\n",
				a.version, a.commit, a.date, a.builtBy)
			return err
		},
	}
}
