// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/models"
)

// fileItemStore keeps every item in memory and mirrors the whole map to a
// single JSON file after each mutation. The file is replaced atomically
// (temp file + rename) so a crash leaves either the old or the new copy.
//
// The file holds access tokens in plaintext; it is created with mode 0600
// inside a 0700 directory.
type fileItemStore struct {
	path        string
	onCorrupt   config.CorruptPolicy
	writePolicy config.WritePolicy
	now         func() time.Time
	logger      *logger.Logger

	mu    sync.RWMutex
	items map[string]models.Item
}

// NewFileItemStore opens the items file described by cfg. A missing or empty
// file yields an empty store. An unreadable or malformed file is discarded
// with a warning, or reported as [ErrCorruptItemsFile] when cfg.OnCorrupt is
// [config.CorruptFail].
func NewFileItemStore(cfg config.Items, log *logger.Logger) (ItemStore, error) {
	return newFileItemStore(cfg, log, time.Now)
}

func newFileItemStore(cfg config.Items, log *logger.Logger, now func() time.Time) (*fileItemStore, error) {
	if cfg.File == "" {
		return nil, errors.New("items file path is empty")
	}

	s := &fileItemStore{
		path:        cfg.File,
		onCorrupt:   cfg.OnCorrupt,
		writePolicy: cfg.WritePolicy,
		now:         now,
		logger:      log,
		items:       make(map[string]models.Item),
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	log.Debug().Str("path", s.path).Int("items", len(s.items)).Msg("items store opened")
	return s, nil
}

func (s *fileItemStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return s.corrupt(fmt.Errorf("read items file: %w", err))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var items map[string]models.Item
	if err = json.Unmarshal(data, &items); err != nil {
		return s.corrupt(fmt.Errorf("decode items file: %w", err))
	}

	for key, item := range items {
		if key == "" {
			s.logger.Warn().Str("path", s.path).Msg("dropping items file entry with empty key")
			continue
		}
		if item.ItemID != key {
			if item.ItemID != "" {
				s.logger.Warn().Str("key", key).Str("item_id", item.ItemID).Msg("items file entry id differs from its key; using key")
			}
			item.ItemID = key
		}
		if item.Status == "" {
			item.Status = models.ItemStatusActive
		}
		s.items[key] = item
	}

	return nil
}

// corrupt applies the corrupt-file policy to cause.
func (s *fileItemStore) corrupt(cause error) error {
	if s.onCorrupt == config.CorruptFail {
		return fmt.Errorf("%w: %s: %w", ErrCorruptItemsFile, s.path, cause)
	}

	s.logger.Warn().Err(cause).Str("path", s.path).
		Msg("items file is unreadable; starting with an empty store, previously linked items are not available")
	return nil
}

func (s *fileItemStore) GetItem(_ context.Context, itemID string) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	return cloneItem(item), ok
}

func (s *fileItemStore) GetItemByAccessToken(_ context.Context, accessToken string) (models.Item, bool) {
	if accessToken == "" {
		return models.Item{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		found models.Item
		ok    bool
	)
	for _, item := range s.items {
		if item.AccessToken != accessToken {
			continue
		}
		if !ok || olderThan(item, found) {
			found, ok = item, true
		}
	}
	return cloneItem(found), ok
}

func (s *fileItemStore) GetItemsByUserID(_ context.Context, userID string) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Item, 0)
	for _, item := range s.items {
		if item.UserID == userID {
			items = append(items, cloneItem(item))
		}
	}
	sortItems(items)
	return items
}

func (s *fileItemStore) GetAllItems(_ context.Context) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, cloneItem(item))
	}
	sortItems(items)
	return items
}

func (s *fileItemStore) SaveItem(_ context.Context, item models.Item) (models.Item, error) {
	if item.ItemID == "" || item.AccessToken == "" {
		return models.Item{}, ErrInvalidItem
	}
	if item.Status == "" {
		item.Status = models.ItemStatusActive
	}
	if !item.Status.Valid() {
		return models.Item{}, fmt.Errorf("%w: %q", ErrInvalidStatus, item.Status)
	}

	var saved models.Item
	err := s.mutate(func(items map[string]models.Item) error {
		for id, other := range items {
			if id != item.ItemID && other.AccessToken == item.AccessToken {
				return ErrDuplicateAccessToken
			}
		}

		item.CreatedAt = item.CreatedAt.UTC()
		item.UpdatedAt = item.UpdatedAt.UTC()
		if item.LastSyncAt != nil {
			last := item.LastSyncAt.UTC()
			item.LastSyncAt = &last
		}

		if prev, exists := items[item.ItemID]; exists {
			if prev.AccessToken != item.AccessToken {
				return ErrAccessTokenImmutable
			}
			item.CreatedAt = prev.CreatedAt
			if !item.UpdatedAt.After(prev.UpdatedAt) {
				item.UpdatedAt = s.touch(prev.UpdatedAt)
			}
		} else {
			if item.CreatedAt.IsZero() {
				item.CreatedAt = s.touch(time.Time{})
			}
			if item.UpdatedAt.IsZero() {
				item.UpdatedAt = item.CreatedAt
			}
		}

		items[item.ItemID] = item
		saved = cloneItem(item)
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}

	s.logger.Debug().Str("item_id", saved.ItemID).Str("status", string(saved.Status)).Msg("item saved")
	return saved, nil
}

func (s *fileItemStore) UpdateItem(_ context.Context, itemID string, update models.ItemUpdate) (models.Item, error) {
	if update.Status != nil && !update.Status.Valid() {
		return models.Item{}, fmt.Errorf("%w: %q", ErrInvalidStatus, *update.Status)
	}
	if update.SyncCursor != nil && *update.SyncCursor == "" {
		return models.Item{}, ErrEmptyCursor
	}

	return s.apply(itemID, func(item *models.Item) {
		if update.InstitutionID != nil {
			item.InstitutionID = *update.InstitutionID
		}
		if update.InstitutionName != nil {
			item.InstitutionName = *update.InstitutionName
		}
		if update.UserID != nil {
			item.UserID = *update.UserID
		}
		if update.Status != nil {
			item.Status = *update.Status
		}
		if update.SyncCursor != nil {
			item.SyncCursor = *update.SyncCursor
		}
		if update.LastSyncAt != nil {
			last := update.LastSyncAt.UTC()
			item.LastSyncAt = &last
		}
	})
}

func (s *fileItemStore) UpdateSyncCursor(_ context.Context, itemID, cursor string) (models.Item, error) {
	if cursor == "" {
		return models.Item{}, ErrEmptyCursor
	}

	return s.apply(itemID, func(item *models.Item) {
		item.SyncCursor = cursor
		prev := time.Time{}
		if item.LastSyncAt != nil {
			prev = *item.LastSyncAt
		}
		last := s.touch(prev)
		item.LastSyncAt = &last
	})
}

func (s *fileItemStore) ResetSyncCursor(_ context.Context, itemID string) (models.Item, error) {
	return s.apply(itemID, func(item *models.Item) {
		item.SyncCursor = ""
	})
}

func (s *fileItemStore) UpdateStatus(_ context.Context, itemID string, status models.ItemStatus) (models.Item, error) {
	if !status.Valid() {
		return models.Item{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.apply(itemID, func(item *models.Item) {
		item.Status = status
	})
}

func (s *fileItemStore) DeleteItem(_ context.Context, itemID string) error {
	return s.mutate(func(items map[string]models.Item) error {
		if _, ok := items[itemID]; !ok {
			return errNoChange
		}
		delete(items, itemID)
		return nil
	})
}

// cloneItem detaches the returned record from the stored one so callers
// cannot change store state through LastSyncAt.
func cloneItem(item models.Item) models.Item {
	if item.LastSyncAt != nil {
		last := *item.LastSyncAt
		item.LastSyncAt = &last
	}
	return item
}

// errNoChange aborts a mutation without persisting and without failing.
var errNoChange = errors.New("no change")

// apply runs fn on a copy of the stored item, bumps UpdatedAt and persists.
func (s *fileItemStore) apply(itemID string, fn func(item *models.Item)) (models.Item, error) {
	var updated models.Item
	err := s.mutate(func(items map[string]models.Item) error {
		item, ok := items[itemID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}

		fn(&item)
		item.UpdatedAt = s.touch(item.UpdatedAt)
		if item.LastSyncAt != nil && item.LastSyncAt.After(item.UpdatedAt) {
			item.UpdatedAt = *item.LastSyncAt
		}

		items[itemID] = item
		updated = cloneItem(item)
		return nil
	})
	return updated, err
}

// mutate applies fn to the live map under the write lock and persists the
// result. With the strict write policy a failed write rolls the map back.
func (s *fileItemStore) mutate(fn func(items map[string]models.Item) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := maps.Clone(s.items)
	if err := fn(s.items); err != nil {
		s.items = snapshot
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}

	if err := s.flush(); err != nil {
		if s.writePolicy == config.WriteStrict {
			s.items = snapshot
			return fmt.Errorf("%w: %w", ErrPersistItems, err)
		}
		s.logger.Warn().Err(err).Str("path", s.path).
			Msg("items file not written; in-memory state stays authoritative for this process")
	}
	return nil
}

// flush writes the whole map to a temp file next to the target and renames
// it into place.
func (s *fileItemStore) flush() error {
	payload, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create items dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp items file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp items file: %w", err)
	}
	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp items file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp items file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp items file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace items file: %w", err)
	}

	return nil
}

// touch returns the current UTC time, or prev+1ns when the clock has not
// moved past prev, so timestamps on one record strictly increase.
func (s *fileItemStore) touch(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond).UTC()
	}
	return now
}

func olderThan(a, b models.Item) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return strings.Compare(a.ItemID, b.ItemID) < 0
}

func sortItems(items []models.Item) {
	slices.SortFunc(items, func(a, b models.Item) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ItemID, b.ItemID)
	})
}
