// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/internal/app"
	"github.com/boasync/boa-sync/models"
)

type linkTokenCmd struct {
	*env
	userID    string
	itemID    string
	products  string
	clipboard bool
}

func (*linkTokenCmd) Name() string     { return "link-token" }
func (*linkTokenCmd) Synopsis() string { return "create a Plaid Link token" }
func (*linkTokenCmd) Usage() string {
	return `boa-sync link-token [-user <id>] [-products a,b] [-item <item_id>] [-copy]

  Creates a short-lived Link token. With -item the token opens Link in update
  mode to repair the login of an existing item.
`
}

func (c *linkTokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "Application user id; generated when empty.")
	f.StringVar(&c.itemID, "item", "", "Create an update-mode token for this item.")
	f.StringVar(&c.products, "products", "", "Comma separated products (default from config).")
	f.BoolVar(&c.clipboard, "copy", false, "Copy the token to the clipboard.")
}

func (c *linkTokenCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return c.usage(f, errTooManyArgs.Error())
	}

	a, err := c.open(ctx, app.NeedGateway)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	var token models.LinkToken
	if c.itemID != "" {
		token, err = a.Services.ItemService.CreateUpdateLinkToken(ctx, c.itemID)
	} else {
		token, err = a.Services.ItemService.CreateLinkToken(ctx, c.userID, splitList(c.products))
	}
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.stdout, token.LinkToken)
	if !token.Expiration.IsZero() {
		fmt.Fprintf(c.stderr, "expires at %s\n", token.Expiration.Local().Format(time.RFC3339))
	}

	if c.clipboard {
		if err = c.copy(token.LinkToken); err != nil {
			return c.fail(fmt.Errorf("error copying link token: %w", err))
		}
		fmt.Fprintln(c.stderr, "link token copied to clipboard")
	}
	return subcommands.ExitSuccess
}

type exchangeCmd struct {
	*env
	userID string
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "exchange a public token and store the item" }
func (*exchangeCmd) Usage() string {
	return `boa-sync exchange [-user <id>] <public_token>

  Exchanges the public token returned by Plaid Link for an access token and
  stores the new item immediately.
`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "Application user owning the item.")
}

func (c *exchangeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.usage(f, "exactly one public token is required")
	}

	a, err := c.open(ctx, app.NeedGateway)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	item, err := a.Services.ItemService.Link(ctx, f.Arg(0), c.userID)
	if err != nil {
		return c.fail(err)
	}

	if err = writeJSON(c.stdout, item.PublicView()); err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

type sandboxLinkCmd struct {
	*env
	institution string
	products    string
	userID      string
}

func (*sandboxLinkCmd) Name() string     { return "sandbox-link" }
func (*sandboxLinkCmd) Synopsis() string { return "link a sandbox item without the Link UI" }
func (*sandboxLinkCmd) Usage() string {
	return `boa-sync sandbox-link [-institution <id>] [-products a,b] [-user <id>]

  Creates a sandbox public token and links it. Only works with PLAID_ENV=sandbox.
`
}

func (c *sandboxLinkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.institution, "institution", adapter.DefaultSandboxInstitution, "Sandbox institution id.")
	f.StringVar(&c.products, "products", "", "Comma separated products (default transactions).")
	f.StringVar(&c.userID, "user", "", "Application user owning the item.")
}

func (c *sandboxLinkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return c.usage(f, errTooManyArgs.Error())
	}

	a, err := c.open(ctx, app.NeedGateway)
	if err != nil {
		return c.fail(err)
	}
	defer a.Close()

	item, err := a.Services.ItemService.SandboxLink(ctx, c.institution, splitList(c.products), c.userID)
	if err != nil {
		return c.fail(err)
	}

	if err = writeJSON(c.stdout, item.PublicView()); err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
