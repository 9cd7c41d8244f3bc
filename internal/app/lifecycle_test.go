// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/models"
)

const (
	sandboxItemID      = "item-boa"
	sandboxAccessToken = "access-sandbox-8f2c1e"
)

// sandboxPlaid serves the endpoints a link, sync and remove cycle touches.
// The transaction feed has two pages up to cursor c2 and is idle after that.
type sandboxPlaid struct {
	*httptest.Server
	removed atomic.Bool
}

func newSandboxPlaid(t *testing.T) *sandboxPlaid {
	t.Helper()
	p := &sandboxPlaid{}

	mux := http.NewServeMux()
	mux.HandleFunc("/sandbox/public_token/create", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, `{"public_token":"public-sandbox-1","request_id":"r1"}`)
	})
	mux.HandleFunc("/item/public_token/exchange", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, fmt.Sprintf(`{"access_token":%q,"item_id":%q,"request_id":"r2"}`, sandboxAccessToken, sandboxItemID))
	})
	mux.HandleFunc("/item/get", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, fmt.Sprintf(`{"item":{"item_id":%q,"institution_id":"ins_127989","billed_products":["transactions"],"error":null},"request_id":"r3"}`, sandboxItemID))
	})
	mux.HandleFunc("/institutions/get_by_id", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, `{"institution":{"institution_id":"ins_127989","name":"Bank of America","country_codes":["US"]},"request_id":"r4"}`)
	})
	mux.HandleFunc("/accounts/get", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, fmt.Sprintf(`{"accounts":[{"account_id":"acc-1","name":"Adv Plus Banking","mask":"1234","type":"depository","subtype":"checking",
			"balances":{"available":100.5,"current":110,"iso_currency_code":"USD"}}],"item":{"item_id":%q}}`, sandboxItemID))
	})
	mux.HandleFunc("/transactions/sync", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cursor, _ := body["cursor"].(string)

		switch cursor {
		case "":
			reply(w, `{"added":[`+sandboxTx("t1", "COFFEE", "4.50")+`,`+sandboxTx("t2", "GROCERIES", "62.10")+`],
				"modified":[],"removed":[],"next_cursor":"c1","has_more":true,"request_id":"r5"}`)
		case "c1":
			reply(w, `{"added":[],"modified":[`+sandboxTx("t1", "COFFEE SHOP", "4.75")+`],
				"removed":[{"transaction_id":"t2"}],"next_cursor":"c2","has_more":false,"request_id":"r6"}`)
		default:
			reply(w, `{"added":[],"modified":[],"removed":[],"next_cursor":"c2","has_more":false,"request_id":"r7"}`)
		}
	})
	mux.HandleFunc("/item/remove", func(w http.ResponseWriter, _ *http.Request) {
		p.removed.Store(true)
		reply(w, `{"request_id":"r8"}`)
	})

	p.Server = httptest.NewServer(mux)
	t.Cleanup(p.Close)
	return p
}

func sandboxTx(id, name, amount string) string {
	return fmt.Sprintf(`{"transaction_id":%q,"account_id":"acc-1","amount":%s,"iso_currency_code":"USD","date":"2026-10-01","name":%q,"pending":false}`,
		id, amount, name)
}

func reply(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprint(w, body)
}

func TestItemLifecycle_SandboxLinkSyncRemove(t *testing.T) {
	plaid := newSandboxPlaid(t)
	cfg := testConfig(t)
	cfg.Plaid.ClientID = "client"
	cfg.Plaid.Secret = "secret"
	cfg.Plaid.BaseURL = plaid.URL
	ctx := context.Background()
	buildInfo := models.NewAppBuildInfo("", "", "")

	a, err := New(ctx, cfg, NeedGateway|NeedLedger, buildInfo, logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	items := a.Storages.Items
	ledger := a.Storages.Ledger

	// link
	linked, err := a.Services.ItemService.SandboxLink(ctx, "", nil, "user-1")
	require.NoError(t, err)
	assert.Equal(t, sandboxItemID, linked.ItemID)
	assert.Equal(t, "Bank of America", linked.InstitutionName)
	assert.Equal(t, models.ItemStatusActive, linked.Status)
	assert.Empty(t, linked.SyncCursor)
	assert.Nil(t, linked.LastSyncAt)

	// first sync drains both pages
	first, err := a.Services.SyncService.SyncItem(ctx, sandboxItemID, models.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Pages)
	assert.Equal(t, 2, first.Added)
	assert.Equal(t, 1, first.Modified)
	assert.Equal(t, 1, first.Removed)
	assert.Equal(t, "c2", first.Cursor)

	synced, ok := items.GetItem(ctx, sandboxItemID)
	require.True(t, ok)
	assert.Equal(t, "c2", synced.SyncCursor)
	require.NotNil(t, synced.LastSyncAt)

	accounts, err := ledger.ListAccounts(ctx, sandboxItemID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "1234", accounts[0].Mask)

	txs, err := ledger.ListTransactions(ctx, models.TransactionFilter{ItemID: sandboxItemID})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "t1", txs[0].TransactionID)
	assert.Equal(t, "COFFEE SHOP", txs[0].Name)

	// idle resync keeps the cursor and still records the sync
	idle, err := a.Services.SyncService.SyncItem(ctx, sandboxItemID, models.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, idle.Pages)
	assert.Zero(t, idle.Added+idle.Modified+idle.Removed)

	resynced, ok := items.GetItem(ctx, sandboxItemID)
	require.True(t, ok)
	assert.Equal(t, "c2", resynced.SyncCursor)
	require.NotNil(t, resynced.LastSyncAt)
	assert.True(t, resynced.LastSyncAt.After(*synced.LastSyncAt))

	// a fresh process sees the same record
	reopened, err := New(ctx, cfg, 0, buildInfo, logger.Nop())
	require.NoError(t, err)
	reloaded, ok := reopened.Storages.Items.GetItem(ctx, sandboxItemID)
	require.True(t, ok)
	assert.Equal(t, sandboxAccessToken, reloaded.AccessToken)
	assert.Equal(t, "c2", reloaded.SyncCursor)
	require.NoError(t, reopened.Close())

	// remove
	require.NoError(t, a.Services.ItemService.Remove(ctx, sandboxItemID))
	assert.True(t, plaid.removed.Load())

	_, ok = items.GetItem(ctx, sandboxItemID)
	assert.False(t, ok)
	_, ok = items.GetItemByAccessToken(ctx, sandboxAccessToken)
	assert.False(t, ok)

	txs, err = ledger.ListTransactions(ctx, models.TransactionFilter{ItemID: sandboxItemID, IncludeRemoved: true})
	require.NoError(t, err)
	assert.Empty(t, txs)

	afterRemove, err := New(ctx, cfg, 0, buildInfo, logger.Nop())
	require.NoError(t, err)
	defer afterRemove.Close()
	assert.Empty(t, afterRemove.Storages.Items.GetAllItems(ctx))
}
