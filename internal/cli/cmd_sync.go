// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/boasync/boa-sync/internal/app"
	"github.com/boasync/boa-sync/internal/tui"
	"github.com/boasync/boa-sync/internal/validators"
	"github.com/boasync/boa-sync/models"
)

type syncCmd struct {
	*env
	itemID string
	full   bool
	json   bool
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "pull new transactions into the ledger" }
func (*syncCmd) Usage() string {
	return `boa-sync sync [-item <item_id>] [-full] [-json]

  Pulls transactions for one item, or for every syncable item, into the
  ledger. The stored cursor advances after each page, so an interrupted
  sync resumes where it stopped. -full resets the cursor and drops the
  item's synced transactions first.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.itemID, "item", "", "Only sync this item.")
	f.BoolVar(&c.full, "full", false, "Reset the cursor and resync the whole history.")
	f.BoolVar(&c.json, "json", false, "Print JSON instead of a table.")
}

func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return c.usage(f, errTooManyArgs.Error())
	}

	a, err := c.open(ctx, app.NeedGateway|app.NeedLedger)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	opts := models.SyncOptions{Full: c.full}

	var results []models.SyncResult
	if c.itemID != "" {
		result, _ := a.Services.SyncService.SyncItem(ctx, c.itemID, opts)
		results = []models.SyncResult{result}
	} else {
		results = a.Services.SyncService.SyncAll(ctx, opts)
	}

	if c.json {
		if err = writeJSON(c.stdout, syncResultViews(results)); err != nil {
			return c.fail(err)
		}
	} else {
		writeLine(c.stdout, tui.SyncResultsTable(results))
	}

	for _, r := range results {
		if r.Err != nil {
			return c.fail(errSyncFailed)
		}
	}
	return subcommands.ExitSuccess
}

type syncResultView struct {
	models.SyncResult
	Error string `json:"error,omitempty"`
}

func syncResultViews(results []models.SyncResult) []syncResultView {
	views := make([]syncResultView, 0, len(results))
	for _, r := range results {
		v := syncResultView{SyncResult: r}
		if r.Err != nil {
			v.Error = r.Err.Error()
		}
		views = append(views, v)
	}
	return views
}

type reconcileCmd struct {
	*env
	itemID    string
	statement string
	tolerance int
	pending   bool
	json      bool
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "match a statement against synced transactions" }
func (*reconcileCmd) Usage() string {
	return `boa-sync reconcile -statement <file.json> [-item <item_id>] [-tolerance 3] [-pending] [-json]

  Matches the transactions of a parsed statement one to one with the synced
  transactions of the item: same amount, dates at most -tolerance days apart,
  closest date first. Statement amounts are negative for debits.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.itemID, "item", "", "Item the statement belongs to; picked interactively when empty.")
	f.StringVar(&c.statement, "statement", "", "Path of the statement JSON file.")
	f.IntVar(&c.tolerance, "tolerance", models.DefaultToleranceDays, "Maximum distance in days between matched dates.")
	f.BoolVar(&c.pending, "pending", false, "Also match pending transactions.")
	f.BoolVar(&c.json, "json", false, "Print JSON instead of a report.")
}

func (c *reconcileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return c.usage(f, errTooManyArgs.Error())
	}
	if c.statement == "" {
		return c.usage(f, "-statement is required")
	}

	statement, err := readStatement(ctx, c.statement)
	if err != nil {
		return c.fail(err)
	}

	a, err := c.open(ctx, app.NeedLedger)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	itemID := c.itemID
	if itemID == "" {
		if itemID, err = c.pick("Reconcile against which item?", a.Services.ItemService.List(ctx, "")); err != nil {
			return c.fail(err)
		}
	}

	report, err := a.Services.ReconcileService.Reconcile(ctx, itemID, statement, models.ReconcileOptions{
		ToleranceDays:  c.tolerance,
		IncludePending: c.pending,
	})
	if err != nil {
		return c.fail(err)
	}

	if c.json {
		if err = writeJSON(c.stdout, report); err != nil {
			return c.fail(err)
		}
		return subcommands.ExitSuccess
	}

	writeLine(c.stdout, tui.ReconcileReport(report))
	return subcommands.ExitSuccess
}

// readStatement decodes and checks a statement file before anything is
// opened.
func readStatement(ctx context.Context, path string) (models.Statement, error) {
	var statement models.Statement

	b, err := os.ReadFile(path)
	if err != nil {
		return statement, fmt.Errorf("error reading statement: %w", err)
	}
	if err = json.Unmarshal(b, &statement); err != nil {
		return statement, fmt.Errorf("error decoding statement %s: %w", path, err)
	}
	if err = validators.NewRequestValidator().Validate(ctx, statement); err != nil {
		return statement, fmt.Errorf("invalid statement %s: %w", path, err)
	}
	return statement, nil
}
