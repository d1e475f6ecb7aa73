// Package commands implements the CLI commands for hearth.
package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/hearth/internal/app"
	"go.trai.ch/hearth/internal/build"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for hearth.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions) func(context.Context) error
	Sync(ctx context.Context) error
	OpenDay(ctx context.Context, opts app.OpenOptions) error
	Today(ctx context.Context, opts app.TodayOptions) error
	Toggle(ctx context.Context, id int64) error
	Skip(ctx context.Context, id int64) error
	Unskip(ctx context.Context, id int64) error
	Move(ctx context.Context, id int64, direction string) error
	Add(ctx context.Context, key string, opts app.AddOptions) error
	History(ctx context.Context, id int64) error
	Backfill(ctx context.Context, from, to string) error
	Daemon(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hearth",
		Short:         "Recurring household chores, one ordered list per day",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to hearth.yaml or hearth.toml (default: search upwards)")
	flags.Bool("json", false, "Write logs as JSON lines")
	flags.Bool("trace", false, "Log engine spans as they finish")
	flags.String("actor", "", "Name recorded on completions (default: the plan's actor)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		jsonLogs, _ := cmd.Flags().GetBool("json")
		trace, _ := cmd.Flags().GetBool("trace")
		actor, _ := cmd.Flags().GetString("actor")

		c.shutdown = c.app.Configure(app.GlobalOptions{
			ConfigPath: configPath,
			JSON:       jsonLogs,
			Trace:      trace,
			Actor:      actor,
		})
	}

	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newOpenCmd())
	rootCmd.AddCommand(c.newTodayCmd())
	rootCmd.AddCommand(c.newToggleCmd())
	rootCmd.AddCommand(c.newSkipCmd())
	rootCmd.AddCommand(c.newUnskipCmd())
	rootCmd.AddCommand(c.newMoveCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newBackfillCmd())
	rootCmd.AddCommand(c.newDaemonCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		if shutdownErr := c.shutdown(context.WithoutCancel(ctx)); err == nil {
			err = shutdownErr
		}
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidInstanceID, "parse instance id"), "id", arg)
	}
	return id, nil
}
