package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/core/todo"
	"github.com/colonyops/daybook/internal/daybook"
)

// NewCmd implements the daybook new command.
type NewCmd struct {
	flags *Flags

	// form fields
	name     string
	duration string
	tag      string
}

// NewNewCmd creates a new new command.
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application.
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Add a todo item to today's list",
		UsageText: `daybook new [item line]`,
		Description: `Appends an item written in the file grammar, without the leading "#":

  daybook new read a chapter (30m) %books
  daybook new DONE morning run (25m)

When no line is given, an interactive form prompts for input.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *NewCmd) run(_ context.Context, c *cli.Command) error {
	raw := strings.Join(c.Args().Slice(), " ")

	// Show interactive form if no line was provided
	if strings.TrimSpace(raw) == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
		raw = cmd.itemLine()
	}

	items, err := cmd.flags.Service.New(raw)
	if err != nil {
		return err
	}

	fmt.Fprint(c.Root().Writer, daybook.RenderList(items))
	return nil
}

func (cmd *NewCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Description("What needs doing").
				Validate(validateName).
				Value(&cmd.name),
			huh.NewInput().
				Title("Duration").
				Description("Planned minutes, e.g. 30m").
				Validate(validateDuration).
				Value(&cmd.duration),
			huh.NewInput().
				Title("Tag").
				Description("Optional grouping tag").
				Value(&cmd.tag),
		),
	).Run()
}

func (cmd *NewCmd) itemLine() string {
	line := fmt.Sprintf("%s (%s)", strings.TrimSpace(cmd.name), strings.TrimSpace(cmd.duration))
	if tag := strings.TrimSpace(cmd.tag); tag != "" {
		line += " %" + tag
	}
	return line
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a task name is required")
	}
	if strings.Contains(s, " (") {
		return fmt.Errorf("task names cannot contain %q", " (")
	}
	return nil
}

func validateDuration(s string) error {
	_, err := todo.ParseDuration(strings.TrimSpace(s))
	return err
}
