// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/models"
)

// maxPaginationRestarts bounds how often one sync run starts over after the
// provider reported that the feed changed mid-pagination.
const maxPaginationRestarts = 3

type syncService struct {
	items   store.ItemStore
	ledger  store.LedgerRepository
	gateway adapter.PlaidGateway

	pageSize int
	now      func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	logger *logger.Logger
}

// NewSyncService constructs a [SyncService].
func NewSyncService(items store.ItemStore, ledger store.LedgerRepository, gateway adapter.PlaidGateway, log *logger.Logger) SyncService {
	return &syncService{
		items:    items,
		ledger:   ledger,
		gateway:  gateway,
		pageSize: adapter.DefaultSyncPageSize,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
		logger:   log,
	}
}

// itemLock serialises syncs of one item between the ticker, webhooks and the
// CLI.
func (s *syncService) itemLock(itemID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[itemID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[itemID] = l
	}
	return l
}

// forgetLock drops the lock of an item that no longer exists. Callers still
// waiting on the old mutex find the item missing as well.
func (s *syncService) forgetLock(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, itemID)
}

func (s *syncService) SyncItem(ctx context.Context, itemID string, opts models.SyncOptions) (models.SyncResult, error) {
	result := models.SyncResult{ItemID: itemID}

	if s.ledger == nil {
		return s.finish(result, ErrLedgerNotAvailable)
	}

	lock := s.itemLock(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, ok := s.items.GetItem(ctx, itemID)
	if !ok {
		s.forgetLock(itemID)
		return s.finish(result, fmt.Errorf("%w: %s", store.ErrItemNotFound, itemID))
	}
	result.Status = item.Status

	if !item.Status.Syncable() {
		return s.finish(result, fmt.Errorf("%w: %s is %s", ErrItemNeedsAttention, itemID, item.Status))
	}

	if opts.Full {
		if err := s.resetItem(ctx, itemID); err != nil {
			return s.finish(result, err)
		}
		item.SyncCursor = ""
	}
	result.Cursor = item.SyncCursor

	err := s.syncItem(ctx, item, &result)
	if err != nil {
		if status, ok := statusForError(err); ok {
			result.Status = s.updateStatus(ctx, item, status)
		}
		s.logger.Error().Err(err).
			Str("func", "syncService.SyncItem").
			Str("item_id", itemID).
			Int("pages", result.Pages).
			Msg("sync failed")
		return s.finish(result, err)
	}

	result.Status = s.updateStatus(ctx, item, models.ItemStatusActive)

	s.logger.Info().
		Str("func", "syncService.SyncItem").
		Str("item_id", itemID).
		Int("pages", result.Pages).
		Int("added", result.Added).
		Int("modified", result.Modified).
		Int("removed", result.Removed).
		Msg("sync finished")
	return s.finish(result, nil)
}

func (s *syncService) resetItem(ctx context.Context, itemID string) error {
	if _, err := s.items.ResetSyncCursor(ctx, itemID); err != nil {
		return fmt.Errorf("reset sync cursor: %w", err)
	}
	if err := s.ledger.DeleteItemTransactions(ctx, itemID); err != nil {
		return fmt.Errorf("delete synced transactions: %w", err)
	}
	return nil
}

func (s *syncService) syncItem(ctx context.Context, item models.Item, result *models.SyncResult) error {
	accounts, err := s.gateway.GetAccounts(ctx, item.AccessToken)
	if err != nil {
		return fmt.Errorf("get accounts: %w", err)
	}
	if err = s.ledger.UpsertAccounts(ctx, item.ItemID, accounts); err != nil {
		return fmt.Errorf("store accounts: %w", err)
	}
	result.Accounts = len(accounts)

	startCursor := item.SyncCursor
	for attempt := 1; ; attempt++ {
		err = s.drain(ctx, item, startCursor, result)
		if !errors.Is(err, adapter.ErrSyncMutationDuringPagination) || attempt >= maxPaginationRestarts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "syncService.syncItem").
			Str("item_id", item.ItemID).
			Int("attempt", attempt).
			Msg("transactions changed during pagination, restarting")

		if err = s.restoreCursor(ctx, item.ItemID, startCursor); err != nil {
			return err
		}
		*result = models.SyncResult{ItemID: item.ItemID, Accounts: result.Accounts, Status: result.Status}
	}
}

// drain walks the feed from cursor until has_more is false. The stored cursor
// advances only after a page has been written to the ledger.
func (s *syncService) drain(ctx context.Context, item models.Item, cursor string, result *models.SyncResult) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := s.gateway.SyncTransactions(ctx, item.AccessToken, cursor, s.pageSize)
		if err != nil {
			return fmt.Errorf("sync transactions: %w", err)
		}
		result.Pages++

		changed := dedupeTransactions(page.Added, page.Modified)
		if err = s.ledger.UpsertTransactions(ctx, item.ItemID, changed); err != nil {
			return fmt.Errorf("store transactions: %w", err)
		}

		removed := make([]string, 0, len(page.Removed))
		for _, r := range page.Removed {
			removed = append(removed, r.TransactionID)
		}
		if err = s.ledger.MarkTransactionsRemoved(ctx, item.ItemID, removed); err != nil {
			return fmt.Errorf("store removed transactions: %w", err)
		}

		result.Added += len(page.Added)
		result.Modified += len(page.Modified)
		result.Removed += len(page.Removed)

		if page.NextCursor != "" {
			if _, err = s.items.UpdateSyncCursor(ctx, item.ItemID, page.NextCursor); err != nil {
				return fmt.Errorf("advance sync cursor: %w", err)
			}
			cursor = page.NextCursor
			result.Cursor = cursor
		}

		if !page.HasMore {
			return nil
		}
	}
}

// dedupeTransactions joins the added and modified lists of a page. A
// transaction id listed twice keeps the position of its first occurrence
// and the contents of its last, so one upsert statement touches each row once.
func dedupeTransactions(lists ...[]models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0)
	seen := make(map[string]int)
	for _, list := range lists {
		for _, tx := range list {
			if i, ok := seen[tx.TransactionID]; ok {
				out[i] = tx
				continue
			}
			seen[tx.TransactionID] = len(out)
			out = append(out, tx)
		}
	}
	return out
}

// restoreCursor rewinds the stored cursor without stamping lastSyncAt; a
// rollback is not a sync.
func (s *syncService) restoreCursor(ctx context.Context, itemID, cursor string) error {
	var err error
	if cursor == "" {
		_, err = s.items.ResetSyncCursor(ctx, itemID)
	} else {
		_, err = s.items.UpdateItem(ctx, itemID, models.ItemUpdate{SyncCursor: &cursor})
	}
	if err != nil {
		return fmt.Errorf("restore sync cursor: %w", err)
	}
	return nil
}

func (s *syncService) updateStatus(ctx context.Context, item models.Item, status models.ItemStatus) models.ItemStatus {
	if item.Status == status {
		return status
	}
	if _, err := s.items.UpdateStatus(ctx, item.ItemID, status); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "syncService.updateStatus").
			Str("item_id", item.ItemID).
			Str("status", string(status)).
			Msg("could not persist item status")
		return item.Status
	}
	return status
}

func (s *syncService) finish(result models.SyncResult, err error) (models.SyncResult, error) {
	result.FinishedAt = s.now().UTC()
	result.Err = err
	return result, err
}

func (s *syncService) SyncAll(ctx context.Context, opts models.SyncOptions) []models.SyncResult {
	items := s.items.GetAllItems(ctx)
	results := make([]models.SyncResult, 0, len(items))

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		if !item.Status.Syncable() {
			s.logger.Debug().
				Str("func", "syncService.SyncAll").
				Str("item_id", item.ItemID).
				Str("status", string(item.Status)).
				Msg("skipping item")
			continue
		}

		result, _ := s.SyncItem(ctx, item.ItemID, opts)
		results = append(results, result)
	}
	return results
}
