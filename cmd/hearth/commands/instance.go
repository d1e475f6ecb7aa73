package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *CLI) newToggleCmd() *cobra.Command {
	return c.newInstanceCmd("toggle ID", "Complete a chore, or reopen a completed one", c.app.Toggle)
}

func (c *CLI) newSkipCmd() *cobra.Command {
	return c.newInstanceCmd("skip ID", "Skip a chore for its day", c.app.Skip)
}

func (c *CLI) newUnskipCmd() *cobra.Command {
	return c.newInstanceCmd("unskip ID", "Put a skipped chore back on the list", c.app.Unskip)
}

func (c *CLI) newHistoryCmd() *cobra.Command {
	return c.newInstanceCmd("history ID", "Show every status change of a chore", c.app.History)
}

func (c *CLI) newInstanceCmd(use, short string, run func(context.Context, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), id)
		},
	}
}

func (c *CLI) newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "move ID up|down",
		Short:     "Move an open chore one place up or down",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.app.Move(cmd.Context(), id, args[1])
		},
	}
}
