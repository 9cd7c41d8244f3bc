// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/google/subcommands"

	"github.com/boasync/boa-sync/internal/app"
	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/tui"
	"github.com/boasync/boa-sync/models"
)

const programName = "boa-sync"

// env is the state shared by all commands of one invocation.
type env struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo
	stdout    io.Writer
	stderr    io.Writer

	newApp       func(ctx context.Context, cfg *config.Config, needs app.Needs, buildInfo models.AppBuildInfo, log *logger.Logger) (*app.App, error)
	newLogger    func(level string) *logger.Logger
	serverLogger func() *logger.Logger
	confirm      func(message string) (bool, error)
	pick         func(title string, items []models.Item) (string, error)
	copy         func(text string) error
}

func newEnv(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *env {
	return &env{
		buildInfo: buildInfo,
		stdout:    stdout,
		stderr:    stderr,
		newApp:    app.New,
		newLogger: func(level string) *logger.Logger {
			return logger.NewCLILogger(programName, level)
		},
		serverLogger: func() *logger.Logger {
			return logger.NewLogger(programName + "-server")
		},
		confirm: func(message string) (bool, error) {
			return tui.Confirm(message)
		},
		pick: func(title string, items []models.Item) (string, error) {
			return tui.PickItem(title, items)
		},
		copy: clipboard.WriteAll,
	}
}

// Execute runs the command named in args (without the program name) and
// returns the process exit status.
func Execute(ctx context.Context, args []string, buildInfo models.AppBuildInfo) int {
	return newEnv(buildInfo, os.Stdout, os.Stderr).execute(ctx, args)
}

func (e *env) execute(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	e.flags = config.RegisterFlags(fs)

	commander := subcommands.NewCommander(fs, programName)
	commander.Output = e.stdout
	commander.Error = e.stderr
	e.register(commander)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return int(subcommands.ExitSuccess)
		}
		return int(subcommands.ExitUsageError)
	}

	return int(commander.Execute(ctx))
}

func (e *env) register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&itemsCmd{env: e}, "items")
	c.Register(&statusCmd{env: e}, "items")
	c.Register(&removeCmd{env: e}, "items")

	c.Register(&linkTokenCmd{env: e}, "link")
	c.Register(&exchangeCmd{env: e}, "link")
	c.Register(&sandboxLinkCmd{env: e}, "link")

	c.Register(&syncCmd{env: e}, "ledger")
	c.Register(&reconcileCmd{env: e}, "ledger")
	c.Register(&migrateCmd{env: e}, "ledger")

	c.Register(&serveCmd{env: e}, "server")
	c.Register(&versionCmd{env: e}, "")
}

// open loads the configuration and wires the application with a console
// logger on stderr.
func (e *env) open(ctx context.Context, needs app.Needs) (*app.App, error) {
	return e.wire(ctx, needs, func(cfg *config.Config) *logger.Logger {
		return e.newLogger(cfg.LogLevel)
	})
}

func (e *env) wire(ctx context.Context, needs app.Needs, newLogger func(cfg *config.Config) *logger.Logger) (*app.App, error) {
	cfg, err := config.GetConfig(e.flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	a, err := e.newApp(ctx, cfg, needs, e.buildInfo, newLogger(cfg))
	if err != nil {
		return nil, err
	}
	return a, nil
}

// fail prints err and returns the failure status.
func (e *env) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(e.stderr, "%s: %v\n", programName, err)
	return subcommands.ExitFailure
}

// usage prints msg and the command usage and returns the usage status.
func (e *env) usage(f *flag.FlagSet, msg string) subcommands.ExitStatus {
	fmt.Fprintf(e.stderr, "%s: %s\n", programName, msg)
	f.SetOutput(e.stderr)
	f.Usage()
	return subcommands.ExitUsageError
}

// itemArg returns the single positional item id, or lets the user pick one
// when none is given.
func (e *env) itemArg(ctx context.Context, a *app.App, f *flag.FlagSet, title string) (string, error) {
	switch f.NArg() {
	case 0:
		return e.pick(title, a.Services.ItemService.List(ctx, ""))
	case 1:
		return f.Arg(0), nil
	default:
		return "", errTooManyArgs
	}
}
