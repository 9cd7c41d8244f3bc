// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/logger"
)

// Storages bundles the item store and the ledger behind one handle.
type Storages struct {
	Items  ItemStore
	Ledger LedgerRepository

	db *DB
}

// NewStorages opens the items file, connects to the ledger database and
// applies pending migrations.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	items, err := NewFileItemStore(cfg.Items, log)
	if err != nil {
		return nil, err
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting ledger database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		Items:  items,
		Ledger: NewLedgerRepository(db, log),
		db:     db,
	}, nil
}

// NewItemsOnly opens only the items file, for commands that never touch the
// ledger.
func NewItemsOnly(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	items, err := NewFileItemStore(cfg.Items, log)
	if err != nil {
		return nil, err
	}
	return &Storages{Items: items}, nil
}

// DB exposes the ledger connection. Nil for [NewItemsOnly].
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the ledger connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
