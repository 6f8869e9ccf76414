package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/tui"
)

// ReplCmd implements the interactive loop, the default action when daybook
// runs with no subcommand.
type ReplCmd struct {
	flags *Flags
}

// NewReplCmd creates a new repl command.
func NewReplCmd(flags *Flags) *ReplCmd {
	return &ReplCmd{flags: flags}
}

// Register adds the repl command to the application.
func (cmd *ReplCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "repl",
		Usage: "Open the interactive command loop",
		Description: `Opens a prompt accepting the keyword commands bound in the config
file. Run "help" at the prompt for the keyword list and file syntax.`,
		Action: cmd.Run,
	})
	return app
}

// Run starts the loop. Exposed so main can use it as the default action.
func (cmd *ReplCmd) Run(_ context.Context, c *cli.Command) error {
	// Materialize today's log up front, as the first session of the day
	// turns the master list into the day's snapshot.
	if err := cmd.flags.Service.Snapshot(); err != nil {
		return fmt.Errorf("create today's log: %w", err)
	}

	return tui.Run(cmd.flags.Service, cmd.flags.Config)
}
