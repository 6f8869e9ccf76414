package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/daybook"
)

// ListCmd implements the daybook list command.
type ListCmd struct {
	flags *Flags
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List today's todo items with completion stats",
		Description: `Prints the current working list: today's dated log when one exists,
otherwise the master task list. Each item is shown with the display
index used by the item commands.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *ListCmd) run(_ context.Context, c *cli.Command) error {
	items, err := cmd.flags.Service.List()
	if err != nil {
		return err
	}

	fmt.Fprint(c.Root().Writer, daybook.RenderList(items))
	return nil
}
