package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CacheCmd implements the daybook cache command.
type CacheCmd struct {
	flags *Flags
}

// NewCacheCmd creates a new cache command.
func NewCacheCmd(flags *Flags) *CacheCmd {
	return &CacheCmd{flags: flags}
}

// Register adds the cache command to the application.
func (cmd *CacheCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "cache",
		Usage: "Show parse cache statistics",
		Description: `Prints hit/miss counters for the file parse cache. Counters cover the
current session; a single CLI invocation rarely sees hits, the numbers
are most interesting inside the interactive loop.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *CacheCmd) run(_ context.Context, c *cli.Command) error {
	st := cmd.flags.Service.CacheStats()
	fmt.Fprintf(c.Root().Writer, "cache hits/misses: %d/%d\n", st.Hits, st.Misses)
	return nil
}
