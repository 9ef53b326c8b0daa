package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/birdmap/pkg/logging"
)

// Execute runs the birdmap CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "birdmap",
		Short:   "Repair bird catalog image URLs",
		Version: a.version,
		Long: `Birdmap keeps the imageUrl of every bird in a JSON catalog pointing at a
working image. Each update run asks one source for candidate URLs (a
curated table, a spreadsheet, Wikipedia or WikiAves pages, or a rewrite of
legacy Special:FilePath links) and merges them into the catalog by name.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is ./.birdmap.yaml or $HOME/.birdmap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("birdmap {{.Version}}\n")

	a.registerCommands(rootCmd)
	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	if cmd.Flags().Changed("config") {
		config, err := LoadConfig(mustGetString(cmd, "config"))
		if err != nil {
			return err
		}
		a.config = config
		a.mu.Lock()
		a.birdmap = nil
		a.mu.Unlock()
	}
	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
