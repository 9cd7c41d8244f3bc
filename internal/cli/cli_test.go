// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boasync/boa-sync/internal/app"
	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/mock"
	"github.com/boasync/boa-sync/internal/service"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/internal/tui"
	"github.com/boasync/boa-sync/models"
)

const testToken = "access-sandbox-de3ce8ef-33f8-4"

type harness struct {
	env    *env
	stdout *bytes.Buffer
	stderr *bytes.Buffer

	items     *mock.MockItemService
	sync      *mock.MockSyncService
	reconcile *mock.MockReconcileService

	globalArgs []string
	needs      app.Needs
	opened     bool
	confirmed  bool
	picked     string
	copied     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		items:     mock.NewMockItemService(ctrl),
		sync:      mock.NewMockSyncService(ctrl),
		reconcile: mock.NewMockReconcileService(ctrl),
	}

	e := newEnv(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), h.stdout, h.stderr)
	e.newLogger = func(string) *logger.Logger { return logger.Nop() }
	e.serverLogger = logger.Nop
	e.newApp = func(_ context.Context, cfg *config.Config, needs app.Needs, buildInfo models.AppBuildInfo, _ *logger.Logger) (*app.App, error) {
		h.needs = needs
		h.opened = true
		return &app.App{
			Config:   cfg,
			Storages: &store.Storages{},
			Services: &service.Services{
				ItemService:      h.items,
				SyncService:      h.sync,
				ReconcileService: h.reconcile,
			},
			BuildInfo: buildInfo,
		}, nil
	}
	e.confirm = func(string) (bool, error) { return h.confirmed, nil }
	e.pick = func(string, []models.Item) (string, error) {
		if h.picked == "" {
			return "", tui.ErrNoItems
		}
		return h.picked, nil
	}
	e.copy = func(text string) error {
		h.copied = text
		return nil
	}
	h.env = e

	itemsFile := filepath.Join(t.TempDir(), "items.json")
	h.globalArgs = []string{"-items-file", itemsFile, "-plaid-env", config.PlaidSandbox}
	return h
}

func (h *harness) run(args ...string) int {
	return h.env.execute(context.Background(), append(append([]string{}, h.globalArgs...), args...))
}

func TestExecute_NoCommand(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run())
}

func TestExecute_UnknownCommand(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("frobnicate"))
}

func TestExecute_BadGlobalFlag(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.env.execute(context.Background(), []string{"-no-such-flag"}))
}

func TestExecute_InvalidConfig(t *testing.T) {
	h := newHarness(t)

	code := h.env.execute(context.Background(), []string{"-plaid-env", "moon", "items"})

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "invalid Plaid environment")
	assert.False(t, h.opened)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 0, h.run("version"))
	assert.Equal(t, "Build version: 1.2.3\nBuild date: 2026-10-01\nBuild commit: abc123\n", h.stdout.String())
	assert.False(t, h.opened)
}

func TestItems_Table(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().List(gomock.Any(), "u-1").Return([]models.Item{
		{ItemID: "item-1", AccessToken: testToken, InstitutionName: "Bank of America", UserID: "u-1", Status: models.ItemStatusActive},
	})

	assert.Equal(t, 0, h.run("items", "-user", "u-1"))
	assert.Equal(t, app.Needs(0), h.needs)
	assert.Contains(t, h.stdout.String(), "Bank of America")
	assert.NotContains(t, h.stdout.String(), testToken)
}

func TestItems_JSON(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().List(gomock.Any(), "").Return([]models.Item{
		{ItemID: "item-1", AccessToken: testToken, Status: models.ItemStatusActive},
	})

	assert.Equal(t, 0, h.run("items", "-json"))
	assert.Contains(t, h.stdout.String(), `"item-1"`)
	assert.NotContains(t, h.stdout.String(), testToken)
}

func TestItems_ExtraArgs(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("items", "extra"))
}

func TestStatus(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Status(gomock.Any(), "item-1").Return(models.ItemStatusReport{
		Item:     models.Item{ItemID: "item-1", AccessToken: testToken, Status: models.ItemStatusRequiresReauth},
		Provider: models.ItemDetails{ItemID: "item-1", Error: &models.ProviderError{ErrorType: "ITEM_ERROR", ErrorCode: "ITEM_LOGIN_REQUIRED"}},
		Changed:  true,
	}, nil)

	assert.Equal(t, 0, h.run("status", "item-1"))
	assert.Equal(t, app.NeedGateway, h.needs)
	assert.Contains(t, h.stdout.String(), "ITEM_LOGIN_REQUIRED")
	assert.NotContains(t, h.stdout.String(), testToken)
}

func TestStatus_PicksItem(t *testing.T) {
	h := newHarness(t)
	h.picked = "item-2"
	h.items.EXPECT().List(gomock.Any(), "").Return([]models.Item{{ItemID: "item-2"}})
	h.items.EXPECT().Status(gomock.Any(), "item-2").Return(models.ItemStatusReport{
		Item: models.Item{ItemID: "item-2", Status: models.ItemStatusActive},
	}, nil)

	assert.Equal(t, 0, h.run("status"))
	assert.Contains(t, h.stdout.String(), "item-2")
}

func TestStatus_NotFound(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Status(gomock.Any(), "missing").Return(models.ItemStatusReport{}, store.ErrItemNotFound)

	assert.Equal(t, 1, h.run("status", "missing"))
	assert.Contains(t, h.stderr.String(), store.ErrItemNotFound.Error())
}

func TestStatus_TooManyArgs(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("status", "a", "b"))
}

func TestRemove_Confirmed(t *testing.T) {
	h := newHarness(t)
	h.confirmed = true
	h.items.EXPECT().Remove(gomock.Any(), "item-1").Return(nil)

	assert.Equal(t, 0, h.run("remove", "item-1"))
	assert.Equal(t, app.NeedGateway|app.NeedLedger, h.needs)
	assert.Contains(t, h.stdout.String(), "item item-1 removed")
}

func TestRemove_Declined(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("remove", "item-1"))
	assert.Contains(t, h.stderr.String(), errRemovalCancelled.Error())
}

func TestRemove_Yes(t *testing.T) {
	h := newHarness(t)
	h.env.confirm = func(string) (bool, error) {
		t.Fatal("confirmation must be skipped with -yes")
		return false, nil
	}
	h.items.EXPECT().Remove(gomock.Any(), "item-1").Return(nil)

	assert.Equal(t, 0, h.run("remove", "-yes", "item-1"))
}

func TestLinkToken(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().CreateLinkToken(gomock.Any(), "u-1", []string{"transactions", "auth"}).
		Return(models.LinkToken{LinkToken: "link-sandbox-123", Expiration: time.Now().Add(4 * time.Hour)}, nil)

	assert.Equal(t, 0, h.run("link-token", "-user", "u-1", "-products", "transactions, auth", "-copy"))
	assert.Equal(t, "link-sandbox-123\n", h.stdout.String())
	assert.Equal(t, "link-sandbox-123", h.copied)
	assert.Contains(t, h.stderr.String(), "expires at")
}

func TestLinkToken_UpdateMode(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().CreateUpdateLinkToken(gomock.Any(), "item-1").Return(models.LinkToken{LinkToken: "link-sandbox-upd"}, nil)

	assert.Equal(t, 0, h.run("link-token", "-item", "item-1"))
	assert.Equal(t, "link-sandbox-upd\n", h.stdout.String())
	assert.Empty(t, h.copied)
}

func TestLinkToken_ClipboardFailure(t *testing.T) {
	h := newHarness(t)
	h.env.copy = func(string) error { return errors.New("no clipboard") }
	h.items.EXPECT().CreateLinkToken(gomock.Any(), "", nil).Return(models.LinkToken{LinkToken: "link-sandbox-123"}, nil)

	assert.Equal(t, 1, h.run("link-token", "-copy"))
	assert.Contains(t, h.stderr.String(), "no clipboard")
}

func TestExchange(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Link(gomock.Any(), "public-sandbox-abc", "u-1").Return(models.Item{
		ItemID: "item-1", AccessToken: testToken, InstitutionName: "Bank of America", Status: models.ItemStatusActive,
	}, nil)

	assert.Equal(t, 0, h.run("exchange", "-user", "u-1", "public-sandbox-abc"))
	assert.Contains(t, h.stdout.String(), `"item-1"`)
	assert.NotContains(t, h.stdout.String(), testToken)
}

func TestExchange_MissingToken(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("exchange"))
	assert.False(t, h.opened)
}

func TestSandboxLink(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().SandboxLink(gomock.Any(), "ins_109508", nil, "").Return(models.Item{ItemID: "item-9", AccessToken: testToken}, nil)

	assert.Equal(t, 0, h.run("sandbox-link"))
	assert.Contains(t, h.stdout.String(), `"item-9"`)
	assert.NotContains(t, h.stdout.String(), testToken)
}

func TestSync_All(t *testing.T) {
	h := newHarness(t)
	h.sync.EXPECT().SyncAll(gomock.Any(), models.SyncOptions{}).Return([]models.SyncResult{
		{ItemID: "item-1", Pages: 1, Added: 4, Status: models.ItemStatusActive},
	})

	assert.Equal(t, 0, h.run("sync"))
	assert.Equal(t, app.NeedGateway|app.NeedLedger, h.needs)
	assert.Contains(t, h.stdout.String(), "item-1")
}

func TestSync_ItemFailure(t *testing.T) {
	h := newHarness(t)
	syncErr := errors.New("item login required")
	h.sync.EXPECT().SyncItem(gomock.Any(), "item-1", models.SyncOptions{Full: true}).
		Return(models.SyncResult{ItemID: "item-1", Status: models.ItemStatusRequiresReauth, Err: syncErr}, syncErr)

	assert.Equal(t, 1, h.run("sync", "-item", "item-1", "-full"))
	assert.Contains(t, h.stdout.String(), "item login required")
	assert.Contains(t, h.stderr.String(), errSyncFailed.Error())
}

func TestSync_JSON(t *testing.T) {
	h := newHarness(t)
	h.sync.EXPECT().SyncAll(gomock.Any(), models.SyncOptions{}).Return([]models.SyncResult{
		{ItemID: "item-1", Added: 2, Cursor: "secret-cursor", Status: models.ItemStatusActive},
	})

	assert.Equal(t, 0, h.run("sync", "-json"))
	assert.Contains(t, h.stdout.String(), `"added": 2`)
	assert.NotContains(t, h.stdout.String(), "secret-cursor")
}

func writeStatement(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.json")
	body := `{
  "account_last_four": "1234",
  "period_start": "2026-02-01",
  "period_end": "2026-02-28",
  "transactions": [
    {"date": "2026-02-03", "description": "GROCERY STORE", "amount": "-42.50"}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReconcile(t *testing.T) {
	h := newHarness(t)
	path := writeStatement(t)

	h.reconcile.EXPECT().
		Reconcile(gomock.Any(), "item-1", gomock.Any(), models.ReconcileOptions{ToleranceDays: 3}).
		DoAndReturn(func(_ context.Context, _ string, st models.Statement, _ models.ReconcileOptions) (models.ReconcileReport, error) {
			assert.Equal(t, "1234", st.AccountLastFour)
			require.Len(t, st.Transactions, 1)
			assert.Equal(t, "GROCERY STORE", st.Transactions[0].Description)
			return models.ReconcileReport{ItemID: "item-1", StatementOnly: st.Transactions}, nil
		})

	assert.Equal(t, 0, h.run("reconcile", "-item", "item-1", "-statement", path))
	assert.Equal(t, app.NeedLedger, h.needs)
	assert.Contains(t, h.stdout.String(), "GROCERY STORE")
}

func TestReconcile_Options(t *testing.T) {
	h := newHarness(t)
	path := writeStatement(t)

	h.reconcile.EXPECT().
		Reconcile(gomock.Any(), "item-1", gomock.Any(), models.ReconcileOptions{ToleranceDays: 1, IncludePending: true}).
		Return(models.ReconcileReport{ItemID: "item-1"}, nil)

	assert.Equal(t, 0, h.run("reconcile", "-item", "item-1", "-statement", path, "-tolerance", "1", "-pending", "-json"))
	assert.Contains(t, h.stdout.String(), `"item_id": "item-1"`)
}

func TestReconcile_MissingStatement(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("reconcile", "-item", "item-1"))
}

func TestReconcile_UnreadableStatement(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("reconcile", "-item", "item-1", "-statement", filepath.Join(t.TempDir(), "missing.json")))
	assert.Contains(t, h.stderr.String(), "error reading statement")
	assert.False(t, h.opened)
}

func TestReconcile_InvalidStatement(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "statement.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"period_start":"2026-02-28","period_end":"2026-02-01","transactions":[]}`), 0o600))

	assert.Equal(t, 1, h.run("reconcile", "-item", "item-1", "-statement", path))
	assert.Contains(t, h.stderr.String(), "invalid statement")
	assert.False(t, h.opened)
}

func TestServe_WithoutGateway(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("serve"))
	assert.Equal(t, app.NeedGateway|app.NeedLedger, h.needs)
	assert.Contains(t, h.stderr.String(), app.ErrGatewayNotConfigured.Error())
}

func TestMigrate_SQLite(t *testing.T) {
	h := newHarness(t)
	h.env.newApp = app.New
	dsn := filepath.Join(t.TempDir(), "ledger.db")

	assert.Equal(t, 0, h.run("-db", dsn, "migrate"))
	assert.Contains(t, h.stdout.String(), "sqlite ledger schema at version")
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
