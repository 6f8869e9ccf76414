package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/core/styles"
	"github.com/colonyops/daybook/internal/daybook"
)

// DocCmd implements the daybook doc command group.
type DocCmd struct {
	flags *Flags
}

// NewDocCmd creates a new doc command.
func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

// Register adds the doc command to the application.
func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Documentation",
		Commands: []*cli.Command{
			{
				Name:   "syntax",
				Usage:  "Show the todo file format guide",
				Action: cmd.runSyntax,
			},
			{
				Name:   "keywords",
				Usage:  "Show the interactive command keywords currently bound",
				Action: cmd.runKeywords,
			},
		},
	})
	return app
}

func (cmd *DocCmd) runSyntax(_ context.Context, c *cli.Command) error {
	out, err := styles.RenderMarkdown(daybook.SyntaxGuide)
	if err != nil {
		return fmt.Errorf("render syntax guide: %w", err)
	}
	fmt.Fprint(c.Root().Writer, out)
	return nil
}

func (cmd *DocCmd) runKeywords(_ context.Context, c *cli.Command) error {
	fmt.Fprint(c.Root().Writer, daybook.KeywordHelp(cmd.flags.Config))
	return nil
}
