// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/boasync/boa-sync/internal/app"
	"github.com/boasync/boa-sync/internal/tui"
	"github.com/boasync/boa-sync/models"
)

type itemsCmd struct {
	*env
	userID string
	json   bool
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list linked items" }
func (*itemsCmd) Usage() string {
	return `boa-sync items [-user <id>] [-json]

  Lists the items stored in the items file. Access tokens are masked.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "Only list items of this user.")
	f.BoolVar(&c.json, "json", false, "Print JSON instead of a table.")
}

func (c *itemsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return c.usage(f, errTooManyArgs.Error())
	}

	a, err := c.open(ctx, 0)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	items := a.Services.ItemService.List(ctx, c.userID)
	if c.json {
		views := make([]models.LinkedItem, 0, len(items))
		for _, it := range items {
			views = append(views, it.PublicView())
		}
		if err = writeJSON(c.stdout, views); err != nil {
			return c.fail(err)
		}
		return subcommands.ExitSuccess
	}

	writeLine(c.stdout, tui.ItemsTable(items))
	return subcommands.ExitSuccess
}

type statusCmd struct {
	*env
	json bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "check an item with the provider" }
func (*statusCmd) Usage() string {
	return `boa-sync status [-json] [<item_id>]

  Asks the provider about an item and updates its local status when the
  provider reports a login or item error. Without an item id an interactive
  picker is shown.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print JSON instead of a report.")
}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := c.open(ctx, app.NeedGateway)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	itemID, err := c.itemArg(ctx, a, f, "Check which item?")
	if errors.Is(err, errTooManyArgs) {
		return c.usage(f, err.Error())
	}
	if err != nil {
		return c.fail(err)
	}

	report, err := a.Services.ItemService.Status(ctx, itemID)
	if err != nil {
		return c.fail(err)
	}

	if c.json {
		out := struct {
			Item     models.LinkedItem  `json:"item"`
			Provider models.ItemDetails `json:"provider"`
			Changed  bool               `json:"changed"`
		}{report.Item.PublicView(), report.Provider, report.Changed}
		if err = writeJSON(c.stdout, out); err != nil {
			return c.fail(err)
		}
		return subcommands.ExitSuccess
	}

	writeLine(c.stdout, tui.StatusReport(report))
	return subcommands.ExitSuccess
}

type removeCmd struct {
	*env
	yes bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "disconnect an item" }
func (*removeCmd) Usage() string {
	return `boa-sync remove [-yes] [<item_id>]

  Invalidates the item's access token at the provider, then deletes the local
  record and its synced transactions. Asks for confirmation unless -yes is
  given.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Do not ask for confirmation.")
}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := c.open(ctx, app.NeedGateway|app.NeedLedger)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	itemID, err := c.itemArg(ctx, a, f, "Remove which item?")
	if errors.Is(err, errTooManyArgs) {
		return c.usage(f, err.Error())
	}
	if err != nil {
		return c.fail(err)
	}

	if !c.yes {
		ok, err := c.confirm(fmt.Sprintf("Remove item %s? This cannot be undone.", itemID))
		if err != nil {
			return c.fail(err)
		}
		if !ok {
			return c.fail(errRemovalCancelled)
		}
	}

	if err = a.Services.ItemService.Remove(ctx, itemID); err != nil {
		return c.fail(err)
	}

	fmt.Fprintf(c.stdout, "item %s removed\n", itemID)
	return subcommands.ExitSuccess
}
