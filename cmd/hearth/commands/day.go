package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hearth/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Write the plan file into the task catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Sync(cmd.Context())
		},
	}
}

func (c *CLI) newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Generate a day's chores and carry over yesterday's leftovers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, _ := cmd.Flags().GetString("date")
			noRollover, _ := cmd.Flags().GetBool("no-rollover")

			return c.app.OpenDay(cmd.Context(), app.OpenOptions{
				Date:       date,
				NoRollover: noRollover,
			})
		},
	}
	cmd.Flags().StringP("date", "d", "", "Day to open: YYYY-MM-DD, today, yesterday or tomorrow")
	cmd.Flags().Bool("no-rollover", false, "Do not carry over the previous day's incomplete chores")
	return cmd
}

func (c *CLI) newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the ordered chore list for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, _ := cmd.Flags().GetString("date")
			interactive, _ := cmd.Flags().GetBool("interactive")
			outputMode, _ := cmd.Flags().GetString("output-mode")

			// -i is shorthand for --output-mode=board
			if interactive {
				outputMode = "board"
			}

			return c.app.Today(cmd.Context(), app.TodayOptions{
				Date:       date,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("date", "d", "", "Day to show: YYYY-MM-DD, today, yesterday or tomorrow")
	cmd.Flags().BoolP("interactive", "i", false, "Open the interactive board")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, board, or linear")
	return cmd
}

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add KEY",
		Short: "Put a task from the plan on a day by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			opts := app.AddOptions{Date: date}
			if cmd.Flags().Changed("order") {
				order, _ := cmd.Flags().GetInt("order")
				opts.Order = &order
			}
			return c.app.Add(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringP("date", "d", "", "Day to add the task to (default: today)")
	cmd.Flags().Int("order", 0, "Position in the day's list (default: after the last entry)")
	return cmd
}

func (c *CLI) newBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill FROM TO",
		Short: "Generate scheduled chores for every day in a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Backfill(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *CLI) newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Open each day on schedule and follow plan file edits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Daemon(cmd.Context())
		},
	}
}
