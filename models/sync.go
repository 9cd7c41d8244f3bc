// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncOptions tunes a single item sync.
type SyncOptions struct {
	// Full clears the stored cursor and previously synced transactions before
	// syncing, replaying the whole history from the provider.
	Full bool
}

// SyncResult summarises one item sync.
type SyncResult struct {
	ItemID     string     `json:"item_id"`
	Pages      int        `json:"pages"`
	Added      int        `json:"added"`
	Modified   int        `json:"modified"`
	Removed    int        `json:"removed"`
	Accounts   int        `json:"accounts"`
	Cursor     string     `json:"-"`
	Status     ItemStatus `json:"status"`
	FinishedAt time.Time  `json:"finished_at"`
	Err        error      `json:"-"`
}

// ErrMessage returns the sync failure message, if any.
func (r SyncResult) ErrMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// TransactionFilter narrows a ledger transaction listing. Zero fields are
// ignored.
type TransactionFilter struct {
	ItemID         string
	AccountIDs     []string
	From           Date
	To             Date
	IncludeRemoved bool
}
