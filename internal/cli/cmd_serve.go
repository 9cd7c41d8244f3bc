// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/boasync/boa-sync/internal/app"
	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/logger"
)

type serveCmd struct {
	*env
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the Link page and webhook server" }
func (*serveCmd) Usage() string {
	return `boa-sync [-a host:port] serve

  Serves the Plaid Link page, the token exchange endpoint and the webhook
  receiver, and syncs all items every WORKERS_SYNC_INTERVAL. Stops gracefully
  on SIGINT or SIGTERM.
`
}

func (*serveCmd) SetFlags(*flag.FlagSet) {}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return c.usage(f, errTooManyArgs.Error())
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := c.wire(ctx, app.NeedGateway|app.NeedLedger, func(*config.Config) *logger.Logger {
		return c.serverLogger()
	})
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	if err = a.Serve(ctx); err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

type migrateCmd struct {
	*env
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply ledger database migrations" }
func (*migrateCmd) Usage() string {
	return `boa-sync [-db <dsn>] migrate

  Brings the ledger schema up to date and prints the applied version.
  postgres:// DSNs (Supabase) and SQLite file paths are supported.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return c.usage(f, errTooManyArgs.Error())
	}

	// opening the ledger applies pending migrations
	a, err := c.open(ctx, app.NeedLedger)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	db := a.Storages.DB()
	version, err := db.SchemaVersion()
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintf(c.stdout, "%s ledger schema at version %d\n", db.Dialect(), version)
	return subcommands.ExitSuccess
}

type versionCmd struct {
	*env
}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "print build information" }
func (*versionCmd) Usage() string {
	return `boa-sync version
`
}

func (*versionCmd) SetFlags(*flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprint(c.stdout, c.buildInfo.String())
	return subcommands.ExitSuccess
}
