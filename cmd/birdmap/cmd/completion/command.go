// Package completion provides the completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/birdmap/internal/cmd/completion"
)

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	var install, uninstall bool

	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate or install shell completion scripts",
		Long: `To load completions:

Bash:

  $ source <(birdmap completion bash)

Zsh:

  $ birdmap completion zsh > "${fpath[1]}/_birdmap"

Fish:

  $ birdmap completion fish | source

Use --install to write the script to a per-user location and --uninstall
to remove it again.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completion.Shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			switch {
			case uninstall:
				return completion.Uninstall(shell, cmd.OutOrStdout())
			case install:
				return completion.Install(cmd.Root(), shell, cmd.OutOrStdout())
			}
			return completion.Generate(cmd.Root(), shell, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&install, "install", false, "Install the completion script for the shell")
	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "Remove an installed completion script")
	cmd.MarkFlagsMutuallyExclusive("install", "uninstall")
	return cmd
}
