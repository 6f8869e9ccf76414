package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/daybook/internal/commands"
	"github.com/colonyops/daybook/internal/core/cache"
	"github.com/colonyops/daybook/internal/core/config"
	"github.com/colonyops/daybook/internal/core/daylog"
	"github.com/colonyops/daybook/internal/core/todo"
	"github.com/colonyops/daybook/internal/daybook"
	"github.com/colonyops/daybook/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "daybook",
		Usage:     "Track a daily task list as a plain-text log",
		UsageText: "daybook [global options] command [command options]",
		Description: `Daybook keeps your task list in a plain text file and snapshots each
day's progress to a dated log file next to it.

The working list for a day is today's log when one exists, otherwise
the master task list. Every change rewrites today's log in full.

Run 'daybook' with no arguments to open the interactive loop.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DAYBOOK_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("DAYBOOK_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DAYBOOK_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "working directory holding the dated log files",
				Sources:     cli.EnvVars("DAYBOOK_DIR"),
				Value:       ".",
				Destination: &flags.Dir,
			},
			&cli.StringFlag{
				Name:        "master",
				Aliases:     []string{"m"},
				Usage:       "master task-list file (defaults to the config's master)",
				Sources:     cli.EnvVars("DAYBOOK_MASTER"),
				Destination: &flags.Master,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			master := flags.Master
			if master == "" {
				master = cfg.Master
			}

			parseCache := cache.New[todo.Log]()
			store := daylog.NewStore(flags.Dir, master, parseCache)

			flags.Config = cfg
			flags.Service = daybook.NewService(store, parseCache)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	replCmd := commands.NewReplCmd(flags)

	app = commands.NewListCmd(flags).Register(app)
	app = commands.NewItemCmd(flags).Register(app)
	app = commands.NewNewCmd(flags).Register(app)
	app = commands.NewTimeCmd(flags).Register(app)
	app = commands.NewTagsCmd(flags).Register(app)
	app = commands.NewCacheCmd(flags).Register(app)
	app = commands.NewDocCmd(flags).Register(app)
	app = replCmd.Register(app)

	// Open the interactive loop when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'daybook --help' for usage", c.Args().First())
		}
		return replCmd.Run(ctx, c)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
