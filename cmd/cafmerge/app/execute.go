package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aztfmod/cafmerge/cmd/cafmerge/cmd/merge"
	"github.com/aztfmod/cafmerge/internal/cmd/emoji"
)

// Execute runs the cafmerge CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root command. The root command itself is
// the merge command; reference and version hang off it.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := merge.NewCommand(a)
	rootCmd.Version = a.version
	rootCmd.PersistentPreRunE = a.setupCommand
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate("cafmerge {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// addGlobalFlags defines the flags shared by every command.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default is $HOME/.cafmerge.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		config, err := LoadConfigFile(path)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetBool(cmd, "no-color"),
		mustGetString(cmd, "log-level"),
	)

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreateReferenceCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
	rootCmd.AddCommand(a.CreateManCommand())
}

// ExitOnError prints err to stderr and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		writeError(os.Stderr, err)
		os.Exit(1)
	}
}

func writeError(w io.Writer, err error) {
	//nolint:errcheck // Ignoring write error since we're exiting anyway
	_, _ = fmt.Fprintf(w, "%s %s\n", emoji.Error, err)
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
