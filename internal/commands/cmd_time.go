package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/daybook"
)

// TimeCmd implements the daybook time command.
type TimeCmd struct {
	flags *Flags

	week bool
	all  bool
}

// NewTimeCmd creates a new time command.
func NewTimeCmd(flags *Flags) *TimeCmd {
	return &TimeCmd{flags: flags}
}

// Register adds the time command to the application.
func (cmd *TimeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "time",
		Usage: "Show completed time totals",
		Description: `Sums completed minutes, by default for today only.

Examples:
  daybook time          # today
  daybook time --week   # trailing 7 calendar days, skipping absent logs
  daybook time --all    # every dated log in the working directory`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "week",
				Aliases:     []string{"w"},
				Usage:       "aggregate over the trailing 7 calendar days",
				Destination: &cmd.week,
			},
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

func (cmd *TimeCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer

	switch {
	case cmd.all:
		done, _, days, err := cmd.flags.Service.TimeCumulative()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, daybook.RenderTimeOver("Cumulative", done, days))
	case cmd.week:
		done, _, days, err := cmd.flags.Service.TimeWeek()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, daybook.RenderTimeOver("Weekly", done, days))
	default:
		done, total, err := cmd.flags.Service.TimeToday()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, daybook.RenderTimeToday(done, total))
	}

	return nil
}
