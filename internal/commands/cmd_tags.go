package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/daybook"
)

// TagsCmd implements the daybook tags command.
type TagsCmd struct {
	flags *Flags

	all bool
}

// NewTagsCmd creates a new tags command.
func NewTagsCmd(flags *Flags) *TagsCmd {
	return &TagsCmd{flags: flags}
}

// Register adds the tags command to the application.
func (cmd *TagsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "tags",
		Usage: "Show completed time grouped by tag",
		Description: `Groups completed items by tag with counts and minutes. Items without
a tag are grouped under "[untagged]". Unfinished items are excluded.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "aggregate over all dated logs",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *TagsCmd) run(_ context.Context, c *cli.Command) error {
	var (
		header = "Todays tags:"
		fetch  = cmd.flags.Service.TagsToday
	)
	if cmd.all {
		header = "All tags:"
		fetch = cmd.flags.Service.TagsCumulative
	}

	counts, minutes, err := fetch()
	if err != nil {
		return err
	}

	fmt.Fprint(c.Root().Writer, daybook.RenderTags(header, counts, minutes))
	return nil
}
