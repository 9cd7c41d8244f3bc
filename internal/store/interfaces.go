// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/boasync/boa-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemStore is the durable mapping from item id to [models.Item].
//
// Reads never fail: a missing record is reported through the boolean result.
// Within one process every call observes the effect of all calls that
// returned before it. Across processes the last writer wins.
type ItemStore interface {
	// GetItem returns the item stored under itemID.
	GetItem(ctx context.Context, itemID string) (models.Item, bool)
	// GetItemByAccessToken resolves an item by its access token. An empty
	// token never matches. If two records ever share a token the one created
	// first is returned.
	GetItemByAccessToken(ctx context.Context, accessToken string) (models.Item, bool)
	// GetItemsByUserID returns the items owned by userID, oldest first.
	GetItemsByUserID(ctx context.Context, userID string) []models.Item
	// GetAllItems returns every stored item, oldest first.
	GetAllItems(ctx context.Context) []models.Item

	// SaveItem inserts or replaces the record keyed by item.ItemID and returns
	// the stored value.
	SaveItem(ctx context.Context, item models.Item) (models.Item, error)
	// UpdateItem merges the non-nil fields of update into an existing record.
	UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error)
	// UpdateSyncCursor stores a non-empty cursor and stamps LastSyncAt.
	UpdateSyncCursor(ctx context.Context, itemID, cursor string) (models.Item, error)
	// ResetSyncCursor clears the cursor so the next sync starts from scratch.
	ResetSyncCursor(ctx context.Context, itemID string) (models.Item, error)
	// UpdateStatus changes the status of an existing record.
	UpdateStatus(ctx context.Context, itemID string, status models.ItemStatus) (models.Item, error)
	// DeleteItem removes the record. Deleting a missing item is not an error.
	DeleteItem(ctx context.Context, itemID string) error
}

// LedgerRepository persists provider accounts and transactions for
// reconciliation and the Supabase import.
type LedgerRepository interface {
	UpsertAccounts(ctx context.Context, itemID string, accounts []models.Account) error
	ListAccounts(ctx context.Context, itemID string) ([]models.Account, error)

	UpsertTransactions(ctx context.Context, itemID string, txs []models.Transaction) error
	MarkTransactionsRemoved(ctx context.Context, itemID string, transactionIDs []string) error
	DeleteItemTransactions(ctx context.Context, itemID string) error
	PurgeItem(ctx context.Context, itemID string) error
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
