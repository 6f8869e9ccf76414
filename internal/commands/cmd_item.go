package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/core/todo"
	"github.com/colonyops/daybook/internal/daybook"
)

// ItemCmd implements the daybook item command group: every mutation that
// addresses an item by its display index.
type ItemCmd struct {
	flags *Flags
}

// NewItemCmd creates a new item command.
func NewItemCmd(flags *Flags) *ItemCmd {
	return &ItemCmd{flags: flags}
}

// Register adds the item command group to the application.
func (cmd *ItemCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "item",
		Usage: "Mutate items in today's list by index",
		Description: `Item commands address entries by the display index shown by
"daybook list". Every mutation rewrites today's dated log in full.

Examples:
  daybook item complete 2
  daybook item finish 2 45m     # complete with the actual time spent
  daybook item duplicate 0
  daybook item delete 3`,
		Commands: []*cli.Command{
			cmd.indexCmd("complete", "Mark an item as completed", (*daybook.Service).Complete),
			cmd.indexCmd("uncomplete", "Clear an item's completion flag", (*daybook.Service).Uncomplete),
			cmd.indexCmd("toggle", "Flip an item's completion flag", (*daybook.Service).Toggle),
			cmd.indexCmd("duplicate", "Insert a copy right after an item", (*daybook.Service).Duplicate),
			cmd.indexCmd("redo", "Insert a completed copy right after an item", (*daybook.Service).DuplicateDone),
			cmd.indexCmd("delete", "Remove an item", (*daybook.Service).Delete),
			cmd.durationCmd("retime", "Change an item's duration", (*daybook.Service).SetDuration),
			cmd.durationCmd("finish", "Complete an item with the actual time spent", (*daybook.Service).FinishWithDuration),
		},
	})
	return app
}

func (cmd *ItemCmd) indexCmd(name, usage string, fn func(*daybook.Service, int) (todo.Log, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		UsageText: fmt.Sprintf("daybook item %s <index>", name),
		Action: func(_ context.Context, c *cli.Command) error {
			idx, err := indexArg(c)
			if err != nil {
				return err
			}
			items, err := fn(cmd.flags.Service, idx)
			if err != nil {
				return err
			}
			fmt.Fprint(c.Root().Writer, daybook.RenderList(items))
			return nil
		},
	}
}

func (cmd *ItemCmd) durationCmd(name, usage string, fn func(*daybook.Service, int, int) (todo.Log, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		UsageText: fmt.Sprintf("daybook item %s <index> <duration>, e.g. 45m", name),
		Action: func(_ context.Context, c *cli.Command) error {
			idx, err := indexArg(c)
			if err != nil {
				return err
			}
			if c.Args().Len() < 2 {
				return fmt.Errorf("missing duration argument, e.g. 45m")
			}
			minutes, err := todo.ParseDuration(c.Args().Get(1))
			if err != nil {
				return err
			}
			items, err := fn(cmd.flags.Service, idx, minutes)
			if err != nil {
				return err
			}
			fmt.Fprint(c.Root().Writer, daybook.RenderList(items))
			return nil
		},
	}
}

func indexArg(c *cli.Command) (int, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("missing item index argument")
	}
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid item index %q", arg)
	}
	return idx, nil
}
